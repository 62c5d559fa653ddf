package tui

import tea "github.com/charmbracelet/bubbletea"

// clipboardMsg is sent after a clipboard copy operation.
type clipboardMsg struct {
	content string
	err     error
}

// copyToClipboard copies text with write.
// Returns a tea.Cmd that will send a clipboardMsg when complete.
func copyToClipboard(write func(string) error, text string) tea.Cmd {
	return func() tea.Msg {
		return clipboardMsg{content: text, err: write(text)}
	}
}
