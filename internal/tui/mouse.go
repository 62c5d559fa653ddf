package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/nikbrunner/diario/internal/tui/layout"
)

func isLeftClick(msg tea.MouseMsg) bool {
	return msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft
}

func (a App) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if a.showHelp {
		if isLeftClick(msg) {
			a.showHelp = false
		}
		return a, nil
	}
	if a.InDetail() {
		return a.handleDetailMouse(msg)
	}
	return a.handleGridMouse(msg)
}

// handleDetailMouse scrolls the body with the wheel and resolves clicks on
// the close marker and the prev/next controls.
func (a App) handleDetailMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	step := a.layoutConfig.Detail.ScrollStep

	switch msg.Button {
	case tea.MouseButtonWheelUp:
		a.detail.Viewport.LineUp(step)
		return a, nil
	case tea.MouseButtonWheelDown:
		a.detail.Viewport.LineDown(step)
		return a, nil
	}

	if !isLeftClick(msg) {
		return a, nil
	}

	switch a.detailLayout().HitTest(msg.X, msg.Y) {
	case layout.ZoneClose:
		a.closeDetail()
	case layout.ZonePrev:
		a.step(a.browser.Prev)
	case layout.ZoneNext:
		a.step(a.browser.Next)
	}
	return a, nil
}

// handleGridMouse moves the cursor with the wheel, focuses the search row
// and opens the clicked card.
func (a App) handleGridMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	grid := a.gridLayout()

	switch msg.Button {
	case tea.MouseButtonWheelUp:
		a.cursor = grid.MoveCursor(a.cursor, 0, -1)
		return a, nil
	case tea.MouseButtonWheelDown:
		a.cursor = grid.MoveCursor(a.cursor, 0, 1)
		return a, nil
	}

	if !isLeftClick(msg) {
		return a, nil
	}

	chrome := a.layoutConfig.Chrome
	if msg.Y == chrome.PaddingTop+chrome.SearchRow {
		a.focus = FocusSearch
		return a, a.search.Input.Focus()
	}

	if idx, ok := grid.CardAt(msg.X, msg.Y); ok {
		a.search.Input.Blur()
		a.focus = FocusGrid
		a.cursor = idx
		a.openAt(idx)
	}
	return a, nil
}
