package layout

import "github.com/charmbracelet/x/ansi"

// Labels of the detail overlay's click targets.
const (
	CloseLabel = "[x]"
	PrevLabel  = "< Anterior"
	NextLabel  = "Siguiente >"
)

// Zone identifies a click target inside the detail overlay.
type Zone int

const (
	ZoneNone Zone = iota // outside the overlay
	ZoneBody
	ZoneClose
	ZonePrev
	ZoneNext
)

// DetailLayout holds the calculated detail overlay geometry.
type DetailLayout struct {
	Left, Top     int // outer top-left corner
	Width, Height int // outer size including border
	ContentX      int // x of the first content column
	ContentY      int // y of the first content row
	InnerWidth    int
	InnerHeight   int
	BodyHeight    int // rows left for the scrollable body
}

// CalculateModalWidth computes responsive modal width based on percentage of terminal width.
// Uses widthPercent of terminal width, clamped between MinWidth and MaxWidth.
func CalculateModalWidth(terminalWidth, widthPercent int, cfg ModalConfig) int {
	width := terminalWidth * widthPercent / 100

	// Apply min/max constraints
	if width < cfg.MinWidth {
		width = cfg.MinWidth
	}
	if width > cfg.MaxWidth {
		width = cfg.MaxWidth
	}

	// Don't exceed terminal width
	if width > terminalWidth-4 {
		width = terminalWidth - 4
	}
	if width < 1 {
		return 1
	}

	return width
}

// CalculateDetailLayout centers the detail overlay on the terminal.
func CalculateDetailLayout(terminalWidth, terminalHeight int, cfg LayoutConfig) DetailLayout {
	d := cfg.Detail
	chrome := 2 + 2*d.PaddingY + d.HeaderLines + d.FooterLines

	l := DetailLayout{
		Width:  CalculateModalWidth(terminalWidth, cfg.Modal.DetailWidthPercent, cfg.Modal),
		Height: max(chrome+1, terminalHeight-2*d.VerticalMargin),
	}
	l.Left = max(0, (terminalWidth-l.Width)/2)
	l.Top = max(0, (terminalHeight-l.Height)/2)
	l.InnerWidth = max(1, l.Width-2-2*d.PaddingX)
	l.InnerHeight = l.Height - 2 - 2*d.PaddingY
	l.ContentX = l.Left + 1 + d.PaddingX
	l.ContentY = l.Top + 1 + d.PaddingY
	l.BodyHeight = max(1, l.InnerHeight-d.HeaderLines-d.FooterLines)
	return l
}

// NavRow returns the y of the prev/next row.
func (l DetailLayout) NavRow() int {
	return l.ContentY + l.InnerHeight - 1
}

// HitTest returns the zone under the cell (x, y).
func (l DetailLayout) HitTest(x, y int) Zone {
	if x < l.Left || x >= l.Left+l.Width || y < l.Top || y >= l.Top+l.Height {
		return ZoneNone
	}
	right := l.ContentX + l.InnerWidth

	if y == l.ContentY && x >= right-ansi.StringWidth(CloseLabel) && x < right {
		return ZoneClose
	}
	if y == l.NavRow() {
		if x >= l.ContentX && x < l.ContentX+ansi.StringWidth(PrevLabel) {
			return ZonePrev
		}
		if x >= right-ansi.StringWidth(NextLabel) && x < right {
			return ZoneNext
		}
	}
	return ZoneBody
}

// CalculateVisibleListItems computes the start and end indices for a scrollable list.
// Returns (start, end) where items[start:end] should be displayed.
func CalculateVisibleListItems(maxVisible, selectedIdx, totalItems int) (start, end int) {
	if totalItems <= maxVisible {
		return 0, totalItems
	}

	if selectedIdx >= maxVisible {
		start = selectedIdx - maxVisible + 1
	}

	end = start + maxVisible
	if end > totalItems {
		end = totalItems
	}

	return start, end
}
