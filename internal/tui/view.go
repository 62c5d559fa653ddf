package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/nikbrunner/diario/internal/model"
	"github.com/nikbrunner/diario/internal/render"
	"github.com/nikbrunner/diario/internal/tui/layout"
)

// detailTagsHeading titles the tag list at the bottom of the detail body.
const detailTagsHeading = "TECNOLOGÍAS Y TEMAS"

// renderView creates the complete view for the current state.
func (a App) renderView() string {
	switch {
	case a.showHelp:
		return a.renderHelpOverlay()
	case a.InDetail():
		return a.renderDetail()
	default:
		return a.renderBrowse()
	}
}

// renderBrowse renders the header, the card grid and the footer.
func (a App) renderBrowse() string {
	grid := a.gridLayout()

	header := a.renderHeader(grid.Width)
	body := lipgloss.NewStyle().
		Height(grid.Height).
		MaxHeight(grid.Height).
		Render(a.renderGrid(grid))
	footer := a.renderHelpBar(grid.Width)

	content := a.styles.App.Render(
		lipgloss.JoinVertical(lipgloss.Left, header, body, footer),
	)

	// Use Place to ensure exact terminal dimensions and prevent overflow
	return lipgloss.Place(a.width, a.height, lipgloss.Left, lipgloss.Top, content)
}

// renderHeader renders the journal chrome above the grid, one entry per
// header line so the search field stays on its configured row.
func (a App) renderHeader(width int) string {
	info := a.browser.Catalog().Info()
	text := a.layoutConfig.Text

	profile := info.Author
	if p := info.Profile(); p != "" {
		if profile != "" {
			profile += " · "
		}
		profile += p
	}

	section := a.styles.Section.Render("Semanas del Cuatrimestre")
	if a.browser.SearchTerm() != "" {
		section += a.styles.Profile.Render(fmt.Sprintf("  (%d de %d)", len(a.visible), a.browser.Catalog().Len()))
	}

	lines := []string{
		a.styles.Title.Render(info.Title),
		a.styles.Profile.Render(profile),
		"",
		section,
		a.search.Input.View(),
		"",
	}
	for i, line := range lines {
		lines[i], _ = layout.TruncateText(line, width, text)
	}
	return strings.Join(lines, "\n")
}

// renderGrid renders the visible rows of cards.
func (a App) renderGrid(g layout.GridLayout) string {
	if len(a.visible) == 0 {
		msg := "Sin resultados"
		if term := a.browser.SearchTerm(); term != "" {
			msg = fmt.Sprintf("Sin resultados para %q", term)
		}
		return a.styles.Empty.Render(msg)
	}

	start, end := g.VisibleRange()
	gap := strings.Repeat(" ", g.ColumnGap)

	var rows []string
	for rowStart := start; rowStart < end; rowStart += g.Columns {
		if len(rows) > 0 {
			for i := 0; i < g.RowGap; i++ {
				rows = append(rows, "")
			}
		}

		cards := make([]string, 0, 2*g.Columns)
		for i := rowStart; i < min(rowStart+g.Columns, end); i++ {
			if i > rowStart && gap != "" {
				cards = append(cards, gap)
			}
			cards = append(cards, a.renderCard(a.visible[i], i == a.cursor, g.CardWidth, g.CardHeight))
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, cards...))
	}

	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

// renderCard renders one entry card of exactly width x height cells.
func (a App) renderCard(e model.Entry, active bool, width, height int) string {
	cfg := a.layoutConfig
	inner := max(1, width-4) // border + horizontal padding

	style := a.styles.Card.BorderForeground(EntryColor(e.Color))
	if active {
		style = a.styles.CardActive
	}

	week := a.styles.Week.Render(Icon(e.Icon) + " Semana " + strconv.Itoa(e.ID))
	title, _ := layout.TruncateText(e.Title, inner, cfg.Text)

	lines := []string{
		layout.SpreadLine(week, "", a.styles.Badge(e.Status), inner),
		a.styles.CardTitle.Bold(true).Render(title),
	}

	desc := layout.ClampLines(e.Description, inner, cfg.Grid.DescriptionLines, cfg.Text)
	for len(desc) < cfg.Grid.DescriptionLines {
		desc = append(desc, "")
	}
	for _, line := range desc {
		lines = append(lines, a.styles.Text.Render(line))
	}
	lines = append(lines, a.renderCardTags(e.Tags, inner))

	return style.
		Width(width - 2).
		Height(height - 2).
		MaxHeight(height).
		Render(strings.Join(lines, "\n"))
}

// renderCardTags shows the first few tags and a "+K" count for the rest.
func (a App) renderCardTags(tags []string, width int) string {
	n := min(len(tags), a.layoutConfig.Grid.VisibleTags)

	parts := make([]string, 0, n+1)
	for _, tag := range tags[:n] {
		parts = append(parts, a.styles.Tag.Render(tag))
	}
	if rest := len(tags) - n; rest > 0 {
		parts = append(parts, a.styles.TagMore.Render("+"+strconv.Itoa(rest)))
	}

	line, _ := layout.TruncateText(strings.Join(parts, "  "), width, a.layoutConfig.Text)
	return line
}

// renderDetail renders the overlay for the open entry.
func (a App) renderDetail() string {
	entry, ok := a.browser.Selected()
	if !ok {
		return a.renderBrowse()
	}

	dl := a.detailLayout()
	cfg := a.layoutConfig
	width := dl.InnerWidth
	color := EntryColor(entry.Color)

	week := lipgloss.NewStyle().
		Bold(true).
		Foreground(color).
		Render(Icon(entry.Icon) + " Semana " + strconv.Itoa(entry.ID))
	closeButton := a.styles.NavButton.Render(layout.CloseLabel)

	title, _ := layout.TruncateText(entry.Title, width, cfg.Text)
	subtitle, _ := layout.TruncateText(entry.Subtitle, width, cfg.Text)

	header := []string{
		layout.SpreadLine(week, "", closeButton, width),
		a.styles.CardTitle.Bold(true).Render(title),
		a.styles.Text.Italic(true).Render(subtitle),
		a.styles.Badge(entry.Status),
		"",
	}

	rule := a.styles.Dot.Render(strings.Repeat("─", width))
	if a.messageText != "" {
		rule, _ = layout.TruncateText(a.renderMessageLine(), width, cfg.Text)
	}
	footer := []string{
		rule,
		a.renderDetailNav(width, color),
	}

	content := strings.Join(header, "\n") + "\n" +
		a.detail.Viewport.View() + "\n" +
		strings.Join(footer, "\n")

	modal := a.styles.Modal.
		BorderForeground(color).
		Padding(cfg.Detail.PaddingY, cfg.Detail.PaddingX).
		Width(dl.Width - 2).
		Height(dl.Height - 2).
		Render(content)

	// Explicit offsets keep the overlay where DetailLayout.HitTest expects it
	placed := lipgloss.NewStyle().
		PaddingLeft(dl.Left).
		PaddingTop(dl.Top).
		Render(modal)

	return lipgloss.Place(a.width, a.height, lipgloss.Left, lipgloss.Top, placed)
}

// renderDetailNav renders "< Anterior", the position dots and "Siguiente >".
// Dots that do not fit collapse to "k/N".
func (a App) renderDetailNav(width int, color lipgloss.TerminalColor) string {
	prev := a.styles.NavButton.Render(layout.PrevLabel)
	next := a.styles.NavButton.Render(layout.NextLabel)
	pos, total := a.browser.Position()

	dots := make([]string, total)
	for i := range dots {
		if i+1 == pos {
			dots[i] = a.styles.DotActive.Foreground(color).Render("●")
		} else {
			dots[i] = a.styles.Dot.Render("○")
		}
	}
	indicator := strings.Join(dots, " ")

	room := width - ansi.StringWidth(layout.PrevLabel) - ansi.StringWidth(layout.NextLabel) - 2
	if ansi.StringWidth(indicator) > room {
		indicator = a.styles.DotActive.Foreground(color).Render(fmt.Sprintf("%d/%d", pos, total))
	}

	return layout.SpreadLine(prev, indicator, next, width)
}

// renderDetailBody renders the scrollable part of the overlay: the
// description, the entry content and the full tag list.
func (a App) renderDetailBody(entry model.Entry, width int) string {
	lines := render.EntryLines(entry, width)
	if len(lines) > 0 {
		lines = append(lines, "")
	}

	lines = append(lines, a.styles.Heading.Render(detailTagsHeading))
	lines = append(lines, a.renderTagLines(entry.Tags, width)...)

	return strings.Join(lines, "\n")
}

// renderTagLines packs tags into as few lines of width as possible.
func (a App) renderTagLines(tags []string, width int) []string {
	var lines []string
	var line string
	lineWidth := 0

	for _, tag := range tags {
		tag, _ = layout.TruncateText(tag, width, a.layoutConfig.Text)
		w := ansi.StringWidth(tag)

		if lineWidth > 0 && lineWidth+2+w > width {
			lines = append(lines, line)
			line, lineWidth = "", 0
		}
		if lineWidth > 0 {
			line += "  "
			lineWidth += 2
		}
		line += a.styles.Tag.Render(tag)
		lineWidth += w
	}
	if lineWidth > 0 {
		lines = append(lines, line)
	}
	return lines
}

// renderHelpBar renders the status line and keyboard hints below the grid.
func (a App) renderHelpBar(width int) string {
	status := a.styles.Footer.Render(a.browser.Catalog().Info().Footer)
	if a.messageText != "" {
		status = a.renderMessageLine()
	}

	lines := []string{
		"",
		status,
		a.renderHints(a.getContextualHints()),
	}
	for i, line := range lines {
		lines[i], _ = layout.TruncateText(line, width, a.layoutConfig.Text)
	}
	return strings.Join(lines, "\n")
}

// renderMessageLine renders the styled message with prefix icon based on type.
func (a App) renderMessageLine() string {
	switch a.messageType {
	case MessageError:
		return a.styles.Error.Render("✗ " + a.messageText)
	case MessageSuccess:
		return a.styles.Success.Render("✓ " + a.messageText)
	default:
		return a.styles.Footer.Render(a.messageText)
	}
}

// renderHelpOverlay renders the help overlay.
func (a App) renderHelpOverlay() string {
	modalStyle := lipgloss.NewStyle().
		Padding(1, 2)

	// Left column: grid + search
	var left strings.Builder
	left.WriteString(a.styles.Title.Render("semanas") + "\n")
	left.WriteString("←↑↓→ hjkl  move\n")
	left.WriteString("gg   first\n")
	left.WriteString("G    last\n")
	left.WriteString("enter open\n")
	left.WriteString("\n")
	left.WriteString(a.styles.Title.Render("buscar") + "\n")
	left.WriteString("/    focus search\n")
	left.WriteString("enter keep term\n")
	left.WriteString("esc  clear term\n")

	// Right column: detail overlay
	var right strings.Builder
	right.WriteString(a.styles.Title.Render("detalle") + "\n")
	right.WriteString("←/h  previous week\n")
	right.WriteString("→/l  next week\n")
	right.WriteString("j/k  scroll\n")
	right.WriteString("pgup/pgdn page\n")
	right.WriteString("y    yank title\n")
	right.WriteString("esc  close\n")
	right.WriteString("\n")
	right.WriteString(a.styles.Help.Render("[?/q/esc] close"))

	leftCol := lipgloss.NewStyle().Width(a.layoutConfig.Modal.HelpLeftColumnWidth).Render(left.String())
	rightCol := lipgloss.NewStyle().Width(a.layoutConfig.Modal.HelpRightColumnWidth).Render(right.String())
	cols := lipgloss.JoinHorizontal(lipgloss.Top, leftCol, "  ", rightCol)

	return lipgloss.Place(
		a.width,
		a.height,
		lipgloss.Left,
		lipgloss.Top,
		modalStyle.Render(cols),
	)
}
