package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"text/tabwriter"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/nikbrunner/diario/internal/browser"
	"github.com/nikbrunner/diario/internal/exporter"
	"github.com/nikbrunner/diario/internal/model"
	"github.com/nikbrunner/diario/internal/picker"
	"github.com/nikbrunner/diario/internal/render"
	"github.com/nikbrunner/diario/internal/search"
	"github.com/nikbrunner/diario/internal/storage"
)

func newListCmd(e *env) *cobra.Command {
	var (
		term   string
		status string
	)

	cmd := &cobra.Command{
		Use:     "list",
		Short:   "List the weeks of the journal",
		Aliases: []string{"ls"},
		Long: `List the weeks of the journal.

Examples:
  diario list                    # every week
  diario list --search graphql   # weeks mentioning GraphQL
  diario list --status exam      # exam weeks only`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			catalog, err := e.loadCatalog()
			if err != nil {
				return err
			}

			entries := search.Filter(catalog.Entries(), term)
			if status != "" {
				entries = filterStatus(entries, model.Status(status))
			}
			return writeList(cmd.OutOrStdout(), entries)
		},
	}

	cmd.Flags().StringVarP(&term, "search", "s", "", "filter by title, description or tag")
	cmd.Flags().StringVar(&status, "status", "", "filter by status (completed, in-progress, upcoming, exam)")

	return cmd
}

func filterStatus(entries []model.Entry, status model.Status) []model.Entry {
	out := make([]model.Entry, 0, len(entries))
	for _, entry := range entries {
		if entry.Status == status {
			out = append(out, entry)
		}
	}
	return out
}

func writeList(w io.Writer, entries []model.Entry) error {
	if len(entries) == 0 {
		_, err := fmt.Fprintln(w, "Sin resultados")
		return err
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "SEMANA\tESTADO\tTÍTULO\tETIQUETAS")
	for _, entry := range entries {
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\n",
			entry.ID, entry.Status.Label(), entry.Title, strings.Join(entry.Tags, ", "))
	}
	return tw.Flush()
}

func newShowCmd(e *env) *cobra.Command {
	return &cobra.Command{
		Use:   "show <week>",
		Short: "Print one week in full",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("invalid week %q: %w", args[0], err)
			}

			catalog, err := e.loadCatalog()
			if err != nil {
				return err
			}

			entry, ok := catalog.Entry(id)
			if !ok {
				return fmt.Errorf("%w: %d", browser.ErrUnknownEntry, id)
			}
			return writeEntry(cmd.OutOrStdout(), entry)
		},
	}
}

// writeEntry prints an entry as plain text.
func writeEntry(w io.Writer, entry model.Entry) error {
	var b strings.Builder

	fmt.Fprintf(&b, "Semana %d · %s\n", entry.ID, entry.Status.Label())
	b.WriteString(entry.Title + "\n")
	if entry.Subtitle != "" {
		b.WriteString(entry.Subtitle + "\n")
	}
	if entry.Description != "" {
		b.WriteString("\n" + entry.Description + "\n")
	}
	if content := render.PlainText(entry.Content); content != "" {
		b.WriteString("\n" + content + "\n")
	}
	if len(entry.Tags) > 0 {
		b.WriteString("\nTECNOLOGÍAS Y TEMAS: " + strings.Join(entry.Tags, ", ") + "\n")
	}

	_, err := io.WriteString(w, b.String())
	return err
}

func newSearchCmd(e *env) *cobra.Command {
	return &cobra.Command{
		Use:   "search <query...>",
		Short: "Fuzzy search week titles",
		Long: `Fuzzy search week titles. A single match is printed directly;
several matches open a picker.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			catalog, err := e.loadCatalog()
			if err != nil {
				return err
			}

			query := strings.Join(args, " ")
			results := search.FuzzySearch(catalog.Entries(), query)
			e.logger.WithFields(logrus.Fields{
				"term":    query,
				"entries": len(results),
			}).Debug("fuzzy search")

			out := cmd.OutOrStdout()
			switch len(results) {
			case 0:
				fmt.Fprintf(out, "No se encontraron semanas para '%s'\n", query)
				return nil
			case 1:
				return writeEntry(out, results[0].Entry)
			}

			finalModel, err := tea.NewProgram(picker.New(results, query)).Run()
			if err != nil {
				return fmt.Errorf("run picker: %w", err)
			}

			p := finalModel.(picker.Picker)
			entry, ok := p.SelectedEntry()
			if p.Cancelled() || !ok {
				return nil
			}
			return writeEntry(out, entry)
		},
	}
}

func newExportCmd(e *env) *cobra.Command {
	return &cobra.Command{
		Use:   "export [path]",
		Short: "Write the journal as a static HTML page",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			outputPath := exporter.DefaultExportPath(e.config.ExportDir)
			if len(args) == 1 {
				outputPath = storage.ExpandHome(args[0])
			}

			catalog, err := e.loadCatalog()
			if err != nil {
				return err
			}

			if err := os.MkdirAll(filepath.Dir(outputPath), 0755); err != nil {
				return fmt.Errorf("create export directory: %w", err)
			}
			if err := os.WriteFile(outputPath, []byte(exporter.ExportHTML(catalog)), 0644); err != nil {
				return fmt.Errorf("write export: %w", err)
			}

			e.logger.WithField("path", outputPath).Info("exported html")
			fmt.Fprintf(cmd.OutOrStdout(), "Exported %d weeks to %s\n", catalog.Len(), outputPath)
			return nil
		},
	}
}

func newDumpCmd(e *env) *cobra.Command {
	return &cobra.Command{
		Use:   "dump <file.db>",
		Short: "Write the journal into a SQLite database",
		Long: `Write the journal into a SQLite database. The database can be used
as a catalog source with --catalog.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			catalog, err := e.loadCatalog()
			if err != nil {
				return err
			}

			path := storage.ExpandHome(args[0])
			db, err := storage.NewSQLiteStorage(path)
			if err != nil {
				return err
			}
			defer db.Close()

			journal := catalog.Journal()
			if err := db.Save(&journal); err != nil {
				return fmt.Errorf("dump catalog: %w", err)
			}

			export, err := db.LastExport()
			if err != nil {
				return fmt.Errorf("read export: %w", err)
			}

			e.logger.WithField("path", path).Info("dumped sqlite")
			fmt.Fprintf(cmd.OutOrStdout(), "Wrote %d weeks to %s (export %s)\n", catalog.Len(), path, export.ID)
			return nil
		},
	}
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "diario %s\n", version)
		},
	}
}
