package tui

import (
	"fmt"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/sirupsen/logrus"

	"github.com/nikbrunner/diario/internal/browser"
	"github.com/nikbrunner/diario/internal/logging"
	"github.com/nikbrunner/diario/internal/model"
	"github.com/nikbrunner/diario/internal/tui/layout"
)

// App is the main bubbletea model for the journal browser.
type App struct {
	browser      browser.Browser
	keys         KeyMap
	styles       Styles
	layoutConfig layout.LayoutConfig
	logger       *logrus.Logger
	mouse        bool
	copyText     func(string) error

	// Browsing state
	focus   Focus
	cursor  int           // card index into visible
	visible []model.Entry // filtered view, recomputed when the term changes

	search   SearchState
	detail   DetailState
	showHelp bool

	// For gg command
	lastKeyWasG bool

	// Status line message
	messageText string
	messageType MessageType

	// Window dimensions
	width  int
	height int
}

// AppParams holds parameters for creating a new App.
type AppParams struct {
	Catalog      *model.Catalog
	Keys         *KeyMap              // optional, uses default if nil
	Styles       *Styles              // optional, uses default if nil
	LayoutConfig *layout.LayoutConfig // optional, uses default if nil
	Logger       *logrus.Logger       // optional, discards if nil
	Mouse        bool
	CopyText     func(string) error // optional, uses the system clipboard if nil
}

// NewApp creates a new App with the given parameters.
func NewApp(params AppParams) App {
	keys := DefaultKeyMap()
	if params.Keys != nil {
		keys = *params.Keys
	}

	styles := DefaultStyles()
	if params.Styles != nil {
		styles = *params.Styles
	}

	layoutConfig := layout.DefaultConfig()
	if params.LayoutConfig != nil {
		layoutConfig = *params.LayoutConfig
	}

	logger := params.Logger
	if logger == nil {
		logger = logging.Discard()
	}

	copyText := params.CopyText
	if copyText == nil {
		copyText = clipboard.WriteAll
	}

	app := App{
		browser:      browser.New(params.Catalog),
		keys:         keys,
		styles:       styles,
		layoutConfig: layoutConfig,
		logger:       logger,
		mouse:        params.Mouse,
		copyText:     copyText,
		search:       NewSearchState(layoutConfig),
		detail:       NewDetailState(),
		width:        80,
		height:       24,
	}

	app.visible = app.browser.Visible()
	return app
}

// WithDimensions returns a copy of the app sized to width x height.
func (a App) WithDimensions(width, height int) App {
	a.width = width
	a.height = height
	a.syncDetail()
	return a
}

// Cursor returns the current card cursor.
func (a App) Cursor() int {
	return a.cursor
}

// Visible returns the entries currently shown in the grid.
func (a App) Visible() []model.Entry {
	return a.visible
}

// SearchTerm returns the active search term.
func (a App) SearchTerm() string {
	return a.browser.SearchTerm()
}

// SelectedID returns the open entry's id.
func (a App) SelectedID() (int, bool) {
	return a.browser.SelectedID()
}

// Mode returns the browser mode.
func (a App) Mode() browser.Mode {
	return a.browser.Mode()
}

// InDetail reports whether the detail overlay is open.
func (a App) InDetail() bool {
	return a.browser.Mode() == browser.ModeDetail
}

// Focus returns which part of the browsing screen receives keys.
func (a App) Focus() Focus {
	return a.focus
}

// ShowingHelp reports whether the help overlay is shown.
func (a App) ShowingHelp() bool {
	return a.showHelp
}

// Message returns the status line message.
func (a App) Message() string {
	return a.messageText
}

// DetailOffset returns the scroll offset of the detail body.
func (a App) DetailOffset() int {
	return a.detail.Viewport.YOffset
}

// Init implements tea.Model.
func (a App) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.syncDetail()
		return a, nil

	case clipboardMsg:
		a.handleClipboard(msg)
		return a, nil

	case tea.MouseMsg:
		if !a.mouse {
			return a, nil
		}
		return a.handleMouse(msg)

	case tea.KeyMsg:
		return a.handleKey(msg)
	}

	// Cursor blink and friends
	if a.focus == FocusSearch {
		var cmd tea.Cmd
		a.search.Input, cmd = a.search.Input.Update(msg)
		return a, cmd
	}
	return a, nil
}

func (a App) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.Type == tea.KeyCtrlC {
		return a, tea.Quit
	}
	a.messageText = ""

	if a.showHelp {
		if key.Matches(msg, a.keys.Help, a.keys.Quit, a.keys.Close) {
			a.showHelp = false
		}
		return a, nil
	}

	switch {
	case a.InDetail():
		return a.handleDetailKey(msg)
	case a.focus == FocusSearch:
		return a.handleSearchKey(msg)
	default:
		return a.handleGridKey(msg)
	}
}

// handleGridKey handles keys while browsing the card grid.
// Esc, Left and Right only move the cursor here.
func (a App) handleGridKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// Handle gg sequence
	if key.Matches(msg, a.keys.Top) {
		if a.lastKeyWasG {
			a.cursor = 0
			a.lastKeyWasG = false
			return a, nil
		}
		a.lastKeyWasG = true
		return a, nil
	}
	a.lastKeyWasG = false

	grid := a.gridLayout()

	switch {
	case key.Matches(msg, a.keys.Quit):
		return a, tea.Quit

	case key.Matches(msg, a.keys.Help):
		a.showHelp = true

	case key.Matches(msg, a.keys.Search):
		a.focus = FocusSearch
		return a, a.search.Input.Focus()

	case key.Matches(msg, a.keys.Open):
		a.openAt(a.cursor)

	case key.Matches(msg, a.keys.Up):
		a.cursor = grid.MoveCursor(a.cursor, 0, -1)

	case key.Matches(msg, a.keys.Down):
		a.cursor = grid.MoveCursor(a.cursor, 0, 1)

	case key.Matches(msg, a.keys.Left):
		a.cursor = grid.MoveCursor(a.cursor, -1, 0)

	case key.Matches(msg, a.keys.Right):
		a.cursor = grid.MoveCursor(a.cursor, 1, 0)

	case key.Matches(msg, a.keys.Bottom):
		if len(a.visible) > 0 {
			a.cursor = len(a.visible) - 1
		}
	}

	return a, nil
}

// handleSearchKey handles keys while the search field has focus.
func (a App) handleSearchKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, a.keys.Cancel):
		a.search.Reset()
		a.focus = FocusGrid
		a.applySearch("")
		return a, nil

	case key.Matches(msg, a.keys.Apply):
		a.search.Input.Blur()
		a.focus = FocusGrid
		return a, nil
	}

	var cmd tea.Cmd
	a.search.Input, cmd = a.search.Input.Update(msg)
	if term := a.search.Input.Value(); term != a.browser.SearchTerm() {
		a.applySearch(term)
	}
	return a, cmd
}

// handleDetailKey handles keys while the detail overlay is open.
func (a App) handleDetailKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, a.keys.Close):
		a.closeDetail()

	case key.Matches(msg, a.keys.Prev):
		a.step(a.browser.Prev)

	case key.Matches(msg, a.keys.Next):
		a.step(a.browser.Next)

	case key.Matches(msg, a.keys.ScrollDown):
		a.detail.Viewport.LineDown(1)

	case key.Matches(msg, a.keys.ScrollUp):
		a.detail.Viewport.LineUp(1)

	case key.Matches(msg, a.keys.PageDown):
		a.detail.Viewport.ViewDown()

	case key.Matches(msg, a.keys.PageUp):
		a.detail.Viewport.ViewUp()

	case key.Matches(msg, a.keys.Yank):
		return a, a.yankSelected()

	case key.Matches(msg, a.keys.Help):
		a.showHelp = true

	case key.Matches(msg, a.keys.Quit):
		return a, tea.Quit
	}

	return a, nil
}

// applySearch updates the term and recomputes the visible cards.
func (a *App) applySearch(term string) {
	a.browser.SetSearchTerm(term)
	a.visible = a.browser.Visible()
	a.cursor = 0
	a.logger.WithFields(logrus.Fields{
		"term":    term,
		"entries": len(a.visible),
	}).Debug("search")
}

// openAt opens the visible entry at index idx.
func (a *App) openAt(idx int) {
	if idx < 0 || idx >= len(a.visible) {
		return
	}
	id := a.visible[idx].ID
	if err := a.browser.Select(id); err != nil {
		a.logger.WithError(err).WithField("id", id).Warn("open entry")
		a.setMessage(MessageError, err.Error())
		return
	}
	a.syncDetail()
	a.logger.WithField("id", id).Debug("open entry")
}

// step moves the overlay to the neighbouring entry using move.
func (a *App) step(move func() bool) {
	if !move() {
		return
	}
	a.syncDetail()
	if id, ok := a.browser.SelectedID(); ok {
		a.logger.WithField("id", id).Debug("step entry")
	}
}

// closeDetail closes the overlay and puts the cursor on the entry that
// was open when it is part of the filtered view.
func (a *App) closeDetail() {
	id, ok := a.browser.SelectedID()
	a.browser.Close()
	a.detail.Reset()
	if !ok {
		return
	}
	for i, e := range a.visible {
		if e.ID == id {
			a.cursor = i
			break
		}
	}
}

// syncDetail sizes the detail viewport and loads the open entry's body.
// The scroll position resets only when the entry changes.
func (a *App) syncDetail() {
	entry, ok := a.browser.Selected()
	if !ok {
		a.detail.Reset()
		return
	}

	dl := a.detailLayout()
	a.detail.Viewport.Width = dl.InnerWidth
	a.detail.Viewport.Height = dl.BodyHeight

	if entry.ID == a.detail.EntryID && dl.InnerWidth == a.detail.Width {
		return
	}
	changed := entry.ID != a.detail.EntryID
	a.detail.Viewport.SetContent(a.renderDetailBody(entry, dl.InnerWidth))
	if changed {
		a.detail.Viewport.GotoTop()
	}
	a.detail.EntryID = entry.ID
	a.detail.Width = dl.InnerWidth
}

// yankSelected copies a one-line summary of the open entry.
func (a App) yankSelected() tea.Cmd {
	entry, ok := a.browser.Selected()
	if !ok {
		return nil
	}
	return copyToClipboard(a.copyText, fmt.Sprintf("Semana %d: %s", entry.ID, entry.Title))
}

func (a *App) handleClipboard(msg clipboardMsg) {
	if msg.err != nil {
		a.logger.WithError(msg.err).Warn("clipboard")
		a.setMessage(MessageError, "No se pudo copiar: "+msg.err.Error())
		return
	}
	a.setMessage(MessageSuccess, "Copiado: "+msg.content)
}

func (a *App) setMessage(t MessageType, text string) {
	a.messageType = t
	a.messageText = text
}

func (a App) gridLayout() layout.GridLayout {
	return layout.CalculateGrid(a.width, a.height, len(a.visible), a.cursor, a.layoutConfig)
}

func (a App) detailLayout() layout.DetailLayout {
	return layout.CalculateDetailLayout(a.width, a.height, a.layoutConfig)
}

// View implements tea.Model.
func (a App) View() string {
	return a.renderView()
}
