package tui

import (
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	"github.com/nikbrunner/diario/internal/tui/layout"
)

// Focus is the part of the browsing screen receiving keys.
type Focus int

const (
	FocusGrid Focus = iota
	FocusSearch
)

// SearchState holds the live search field.
type SearchState struct {
	Input textinput.Model
}

// NewSearchState creates a new SearchState with an initialized input.
func NewSearchState(cfg layout.LayoutConfig) SearchState {
	input := textinput.New()
	input.Prompt = "⌕ "
	input.Placeholder = "Buscar por semana, tema o tecnología..."
	input.CharLimit = cfg.Input.SearchCharLimit
	input.Width = cfg.Input.SearchWidth
	return SearchState{Input: input}
}

// Reset clears the search field.
func (s *SearchState) Reset() {
	s.Input.Reset()
	s.Input.Blur()
}

// DetailState holds the scroll state of the detail overlay.
type DetailState struct {
	Viewport viewport.Model
	EntryID  int // entry whose content is loaded; 0 = none
	Width    int // content width the lines were rendered for
}

// NewDetailState creates an empty DetailState.
func NewDetailState() DetailState {
	return DetailState{Viewport: viewport.New(0, 0)}
}

// Reset forgets the loaded entry.
func (d *DetailState) Reset() {
	d.EntryID = 0
	d.Width = 0
	d.Viewport.SetContent("")
	d.Viewport.GotoTop()
}

// MessageType distinguishes status line messages.
type MessageType int

const (
	MessageInfo MessageType = iota
	MessageSuccess
	MessageError
)
