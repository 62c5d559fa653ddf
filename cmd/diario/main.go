package main

import (
	"fmt"
	"io"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/nikbrunner/diario/internal/logging"
	"github.com/nikbrunner/diario/internal/model"
	"github.com/nikbrunner/diario/internal/storage"
	"github.com/nikbrunner/diario/internal/tui"
)

// version is set at build time with -ldflags "-X main.version=...".
var version = "dev"

func main() {
	e := &env{v: storage.NewViper()}
	if err := run(e, newRootCmd(e)); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// run executes root and releases e's resources whether or not the command
// failed. Cobra skips post-run hooks after a RunE error.
func run(e *env, root *cobra.Command) error {
	err := root.Execute()
	if cerr := e.close(); err == nil {
		err = cerr
	}
	return err
}

// env is the state shared by all commands, set up once before a command runs.
type env struct {
	v          *viper.Viper
	configPath string
	config     *storage.Config
	logger     *logrus.Logger
	closers    []io.Closer
	catalog    *model.Catalog
}

func newRootCmd(e *env) *cobra.Command {
	root := &cobra.Command{
		Use:           "diario",
		Short:         "Browse a course-week learning journal in the terminal",
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return e.setup()
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return e.runTUI()
		},
	}

	flags := root.PersistentFlags()
	flags.StringVar(&e.configPath, "config", "", "config file (default ~/.config/diario/config.yaml)")
	flags.String("catalog", "", "journal file (.yaml, .json or .db); empty uses the built-in journal")
	flags.String("log-file", "", "write logs to this file")
	flags.String("log-level", "", "log level (debug, info, warn, error)")

	if err := bindFlags(e.v, flags, map[string]string{
		"catalog":   "catalog",
		"log_file":  "log-file",
		"log_level": "log-level",
	}); err != nil {
		// Flags are declared right above; a missing one is a programming error.
		panic(err)
	}

	root.AddCommand(
		newListCmd(e),
		newShowCmd(e),
		newSearchCmd(e),
		newExportCmd(e),
		newDumpCmd(e),
		newVersionCmd(),
	)

	return root
}

// bindFlags binds config keys to persistent flags so flags override the file.
func bindFlags(v *viper.Viper, flags *pflag.FlagSet, keys map[string]string) error {
	for key, name := range keys {
		flag := flags.Lookup(name)
		if flag == nil {
			return fmt.Errorf("unknown flag %q", name)
		}
		if err := v.BindPFlag(key, flag); err != nil {
			return fmt.Errorf("bind flag %q: %w", name, err)
		}
	}
	return nil
}

// setup loads the configuration and builds the logger.
func (e *env) setup() error {
	config, err := storage.LoadConfig(e.v, e.configPath)
	if err != nil {
		return err
	}
	e.config = config

	logger, closer, err := logging.New(config.LogFile, config.LogLevel)
	if err != nil {
		return err
	}
	e.logger = logger
	e.closers = append(e.closers, closer)
	return nil
}

// loadCatalog opens the configured catalog source once.
func (e *env) loadCatalog() (*model.Catalog, error) {
	if e.catalog != nil {
		return e.catalog, nil
	}

	source := e.config.Catalog
	if source == "" {
		source = "embedded"
	}

	s, err := storage.OpenStorage(e.config.Catalog)
	if err != nil {
		return nil, err
	}
	if c, ok := s.(io.Closer); ok {
		e.closers = append(e.closers, c)
	}

	catalog, err := storage.LoadCatalog(s)
	if err != nil {
		return nil, fmt.Errorf("load catalog %s: %w", source, err)
	}

	for _, id := range catalog.UnknownStatuses() {
		entry, _ := catalog.Entry(id)
		e.logger.WithFields(logrus.Fields{
			"id":     id,
			"status": string(entry.Status),
		}).Warn("unknown status, showing as \"Sin estado\"")
	}
	e.logger.WithFields(logrus.Fields{
		"source":  source,
		"entries": catalog.Len(),
	}).Info("catalog loaded")

	e.catalog = catalog
	return catalog, nil
}

// close releases the log file and any open storage.
func (e *env) close() error {
	var first error
	for i := len(e.closers) - 1; i >= 0; i-- {
		if err := e.closers[i].Close(); err != nil && first == nil {
			first = err
		}
	}
	e.closers = nil
	return first
}

// runTUI runs the full interactive TUI.
func (e *env) runTUI() error {
	catalog, err := e.loadCatalog()
	if err != nil {
		return err
	}

	app := tui.NewApp(tui.AppParams{
		Catalog: catalog,
		Logger:  e.logger,
		Mouse:   e.config.Mouse,
	})

	opts := []tea.ProgramOption{tea.WithAltScreen()}
	if e.config.Mouse {
		opts = append(opts, tea.WithMouseCellMotion())
	}

	if _, err := tea.NewProgram(app, opts...).Run(); err != nil {
		return fmt.Errorf("run app: %w", err)
	}
	return nil
}
