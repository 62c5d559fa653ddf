package tui

import "strings"

// Hint represents a single keybind hint for display.
type Hint struct {
	Key  string // Display key (e.g., "j/k", "Enter")
	Desc string // Short description (e.g., "move", "open")
}

// renderHint renders a single hint as "key:desc" with styling.
func (a App) renderHint(h Hint) string {
	return a.styles.HintKey.Render(h.Key) + ":" + a.styles.HintDesc.Render(h.Desc)
}

// renderHints renders hints in horizontal format for bottom bar: "j/k:move ←/→:week esc:close"
func (a App) renderHints(hints HintSet) string {
	allHints := hints.All()
	if len(allHints) == 0 {
		return ""
	}

	parts := make([]string, len(allHints))
	for i, h := range allHints {
		parts[i] = a.renderHint(h)
	}
	return strings.Join(parts, " ")
}

// HintSet is an ordered collection of hints by group.
type HintSet struct {
	Nav    []Hint // Navigation hints (arrows, j/k, etc.)
	Action []Hint // Action hints (Enter, /, y)
	System []Hint // System hints (?, q, Esc)
}

// All returns all hints flattened in display order: Nav + Action + System.
func (h HintSet) All() []Hint {
	result := make([]Hint, 0, len(h.Nav)+len(h.Action)+len(h.System))
	result = append(result, h.Nav...)
	result = append(result, h.Action...)
	result = append(result, h.System...)
	return result
}

// getContextualHints returns the appropriate hints for the current screen.
func (a App) getContextualHints() HintSet {
	switch {
	case a.showHelp:
		// Help overlay covers screen, minimal hints
		return HintSet{
			System: []Hint{{Key: "?/q/esc", Desc: "close"}},
		}
	case a.InDetail():
		return a.getDetailHints()
	case a.focus == FocusSearch:
		return a.getSearchHints()
	default:
		return a.getGridHints()
	}
}

// getGridHints returns hints while browsing the card grid.
func (a App) getGridHints() HintSet {
	return HintSet{
		Nav: []Hint{
			{Key: "←↑↓→", Desc: "move"},
		},
		Action: []Hint{
			{Key: "enter", Desc: "open"},
			{Key: "/", Desc: "search"},
		},
		System: []Hint{
			{Key: "?", Desc: "help"},
			{Key: "q", Desc: "quit"},
		},
	}
}

// getSearchHints returns hints while the search field has focus.
func (a App) getSearchHints() HintSet {
	return HintSet{
		Nav: []Hint{
			{Key: "type", Desc: "filter"},
		},
		Action: []Hint{
			{Key: "enter", Desc: "keep"},
		},
		System: []Hint{
			{Key: "esc", Desc: "clear"},
		},
	}
}

// getDetailHints returns hints while a week is open.
func (a App) getDetailHints() HintSet {
	return HintSet{
		Nav: []Hint{
			{Key: "←/→", Desc: "week"},
			{Key: "j/k", Desc: "scroll"},
		},
		Action: []Hint{
			{Key: "y", Desc: "yank"},
		},
		System: []Hint{
			{Key: "esc", Desc: "close"},
			{Key: "?", Desc: "help"},
		},
	}
}
