package render

import "github.com/charmbracelet/lipgloss"

var (
	colorBlue     = lipgloss.Color("#60a5fa")
	colorIndigo   = lipgloss.Color("#818cf8")
	colorPurple   = lipgloss.Color("#c084fc")
	colorTeal     = lipgloss.Color("#2dd4bf")
	colorAmber    = lipgloss.Color("#fbbf24")
	colorSlate    = lipgloss.Color("#94a3b8")
	colorCodeText = lipgloss.Color("#f9a8d4")

	headingStyle = lipgloss.NewStyle().Bold(true).Foreground(colorIndigo)
	headingBars  = []lipgloss.Style{
		lipgloss.NewStyle().Bold(true).Foreground(colorBlue),
		lipgloss.NewStyle().Bold(true).Foreground(colorIndigo),
		lipgloss.NewStyle().Bold(true).Foreground(colorPurple),
		lipgloss.NewStyle().Bold(true).Foreground(colorTeal),
		lipgloss.NewStyle().Bold(true).Foreground(colorAmber),
		lipgloss.NewStyle().Bold(true).Foreground(colorSlate),
	}
	strongStyle    = lipgloss.NewStyle().Bold(true)
	emphasisStyle  = lipgloss.NewStyle().Italic(true)
	codeStyle      = lipgloss.NewStyle().Foreground(colorCodeText)
	codeBlockStyle = lipgloss.NewStyle().Foreground(colorSlate)
)
