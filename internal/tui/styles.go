package tui

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/nikbrunner/diario/internal/model"
)

// Styles holds all lipgloss styles for the TUI.
type Styles struct {
	App        lipgloss.Style
	Title      lipgloss.Style // journal title in the header
	Profile    lipgloss.Style // author and profile line
	Section    lipgloss.Style // "Semanas del Cuatrimestre"
	Card       lipgloss.Style
	CardActive lipgloss.Style // card under the grid cursor
	Week       lipgloss.Style // "Semana N"
	CardTitle  lipgloss.Style
	Text       lipgloss.Style
	Tag        lipgloss.Style
	TagMore    lipgloss.Style // "+K" overflow count
	Modal      lipgloss.Style
	Dot        lipgloss.Style
	DotActive  lipgloss.Style
	NavButton  lipgloss.Style // "< Anterior" / "Siguiente >"
	Heading    lipgloss.Style // "TECNOLOGÍAS Y TEMAS"
	Help       lipgloss.Style
	Empty      lipgloss.Style
	Footer     lipgloss.Style
	HintKey    lipgloss.Style // Key portion of hints (e.g., "Enter", "j/k")
	HintDesc   lipgloss.Style // Description portion of hints (e.g., "confirm", "move")
	Error      lipgloss.Style
	Success    lipgloss.Style
}

// DefaultStyles returns the default style configuration.
// Warm header accent over a neutral grayscale body.
func DefaultStyles() Styles {
	primary := lipgloss.AdaptiveColor{Light: "#374151", Dark: "#D1D5DB"} // main text
	subtle := lipgloss.AdaptiveColor{Light: "#6B7280", Dark: "#6B7280"}  // secondary text
	accent := lipgloss.AdaptiveColor{Light: "#B45309", Dark: "#F59E0B"}  // amber, from the header gradient
	border := lipgloss.AdaptiveColor{Light: "#D1D5DB", Dark: "#4B5563"}  // inactive borders

	return Styles{
		App: lipgloss.NewStyle().
			PaddingTop(1).
			PaddingLeft(2).
			PaddingRight(2),

		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(accent),

		Profile: lipgloss.NewStyle().
			Foreground(subtle),

		Section: lipgloss.NewStyle().
			Bold(true).
			Foreground(primary),

		Card: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(border).
			Padding(0, 1),

		CardActive: lipgloss.NewStyle().
			Border(lipgloss.ThickBorder()).
			BorderForeground(accent).
			Padding(0, 1),

		Week: lipgloss.NewStyle().
			Bold(true).
			Foreground(primary),

		CardTitle: lipgloss.NewStyle().
			Foreground(primary),

		Text: lipgloss.NewStyle().
			Foreground(subtle),

		Tag: lipgloss.NewStyle().
			Foreground(lipgloss.AdaptiveColor{Light: "#1E40AF", Dark: "#93C5FD"}),

		TagMore: lipgloss.NewStyle().
			Foreground(subtle),

		Modal: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()),

		Dot: lipgloss.NewStyle().
			Foreground(border),

		DotActive: lipgloss.NewStyle().
			Foreground(accent),

		NavButton: lipgloss.NewStyle().
			Foreground(primary),

		Heading: lipgloss.NewStyle().
			Bold(true).
			Foreground(subtle),

		Help: lipgloss.NewStyle().
			Foreground(subtle).
			Padding(1, 0),

		Empty: lipgloss.NewStyle().
			Foreground(subtle),

		Footer: lipgloss.NewStyle().
			Foreground(subtle),

		HintKey: lipgloss.NewStyle().
			Foreground(accent),

		HintDesc: lipgloss.NewStyle().
			Foreground(subtle),

		Error: lipgloss.NewStyle().
			Foreground(lipgloss.AdaptiveColor{Light: "#CC3333", Dark: "#FF6666"}).
			Bold(true),

		Success: lipgloss.NewStyle().
			Foreground(lipgloss.AdaptiveColor{Light: "#338833", Dark: "#66CC66"}).
			Bold(true),
	}
}

// badgeColors holds background and foreground per status.
var badgeColors = map[model.Status][2]lipgloss.Color{
	model.StatusCompleted:  {"#DCFCE7", "#166534"},
	model.StatusInProgress: {"#DBEAFE", "#1E40AF"},
	model.StatusUpcoming:   {"#F3F4F6", "#1F2937"},
	model.StatusExam:       {"#FEF9C3", "#854D0E"},
}

// Badge renders the status badge. Unknown statuses share the upcoming grey.
func (s Styles) Badge(status model.Status) string {
	colors, ok := badgeColors[status]
	if !ok {
		colors = badgeColors[model.StatusUpcoming]
	}
	return lipgloss.NewStyle().
		Background(colors[0]).
		Foreground(colors[1]).
		Padding(0, 1).
		Render(status.Label())
}

// tailwind maps the entry colour names to hex values.
var tailwind = map[string]string{
	"blue-500":    "#3B82F6",
	"cyan-500":    "#06B6D4",
	"emerald-500": "#10B981",
	"green-500":   "#22C55E",
	"green-600":   "#16A34A",
	"indigo-500":  "#6366F1",
	"indigo-600":  "#4F46E5",
	"orange-500":  "#F97316",
	"pink-500":    "#EC4899",
	"purple-500":  "#A855F7",
	"red-500":     "#EF4444",
	"teal-500":    "#14B8A6",
	"violet-500":  "#8B5CF6",
	"yellow-500":  "#EAB308",
	"gray-500":    "#6B7280",
}

// EntryColor resolves an entry colour name ("blue-500", "bg-blue-500" or a
// "#rrggbb" value). Unknown names fall back to grey.
func EntryColor(name string) lipgloss.Color {
	if len(name) > 0 && name[0] == '#' {
		return lipgloss.Color(name)
	}
	if len(name) > 3 && name[:3] == "bg-" {
		name = name[3:]
	}
	if hex, ok := tailwind[name]; ok {
		return lipgloss.Color(hex)
	}
	return lipgloss.Color(tailwind["gray-500"])
}

// icons maps entry icon names to single-cell glyphs.
var icons = map[string]string{
	"database":  "≣",
	"calendar":  "◷",
	"code":      "λ",
	"monitor":   "▭",
	"search":    "⌕",
	"layers":    "≋",
	"file-text": "✎",
	"shield":    "◈",
	"trophy":    "★",
	"eye":       "◉",
}

// Icon returns the glyph for an entry icon name.
func Icon(name string) string {
	if glyph, ok := icons[name]; ok {
		return glyph
	}
	return "•"
}
