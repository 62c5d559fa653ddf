package layout

// GridLayout holds the calculated card grid geometry for one frame.
// Coordinates are terminal cells with the origin at the top-left corner.
type GridLayout struct {
	Left       int // x of the first column
	Top        int // y of the first visible row
	Width      int // width available to the grid
	Height     int // height available to the grid
	Columns    int
	CardWidth  int // full card width including border
	CardHeight int // full card height including border
	ColumnGap  int
	RowGap     int
	Total      int // number of cards
	RowStart   int // first visible row
	RowEnd     int // one past the last visible row
}

// CalculateGrid computes the grid geometry for total cards with the cursor
// on card index cursor. The visible rows always include the cursor row.
func CalculateGrid(terminalWidth, terminalHeight, total, cursor int, cfg LayoutConfig) GridLayout {
	g := GridLayout{
		Left:       cfg.Chrome.PaddingX,
		Top:        cfg.Chrome.PaddingTop + cfg.Chrome.HeaderLines,
		Width:      max(1, terminalWidth-2*cfg.Chrome.PaddingX),
		CardHeight: cfg.Grid.CardHeight,
		ColumnGap:  cfg.Grid.ColumnGap,
		RowGap:     cfg.Grid.RowGap,
		Total:      total,
	}
	g.Height = max(1, terminalHeight-g.Top-cfg.Chrome.FooterLines)

	g.Columns = CalculateColumns(g.Width, cfg.Grid)
	g.CardWidth = max(1, (g.Width-g.ColumnGap*(g.Columns-1))/g.Columns)

	visibleRows := CalculateVisibleRows(g.Height, cfg.Grid)
	totalRows := (total + g.Columns - 1) / g.Columns
	cursorRow := 0
	if cursor > 0 {
		cursorRow = cursor / g.Columns
	}
	g.RowStart, g.RowEnd = CalculateVisibleListItems(visibleRows, cursorRow, totalRows)

	return g
}

// CalculateColumns returns how many cards fit side by side.
func CalculateColumns(width int, cfg GridConfig) int {
	cols := (width + cfg.ColumnGap) / (cfg.MinCardWidth + cfg.ColumnGap)
	if cols < 1 {
		return 1
	}
	if cols > cfg.MaxColumns {
		return cfg.MaxColumns
	}
	return cols
}

// CalculateVisibleRows returns how many card rows fit in height. At least one.
func CalculateVisibleRows(height int, cfg GridConfig) int {
	rows := (height + cfg.RowGap) / (cfg.CardHeight + cfg.RowGap)
	if rows < 1 {
		return 1
	}
	return rows
}

// VisibleRange returns the card indices shown this frame as [start, end).
func (g GridLayout) VisibleRange() (start, end int) {
	start = g.RowStart * g.Columns
	end = min(g.Total, g.RowEnd*g.Columns)
	return start, end
}

// CardAt returns the card index under the cell (x, y).
// Gaps between cards and empty grid slots hit nothing.
func (g GridLayout) CardAt(x, y int) (int, bool) {
	relX := x - g.Left
	relY := y - g.Top
	if relX < 0 || relY < 0 || g.Columns == 0 {
		return 0, false
	}

	stepX := g.CardWidth + g.ColumnGap
	col := relX / stepX
	if col >= g.Columns || relX%stepX >= g.CardWidth {
		return 0, false
	}

	stepY := g.CardHeight + g.RowGap
	row := relY / stepY
	if row >= g.RowEnd-g.RowStart || relY%stepY >= g.CardHeight {
		return 0, false
	}

	idx := (g.RowStart+row)*g.Columns + col
	if idx >= g.Total {
		return 0, false
	}
	return idx, true
}

// MoveCursor returns the cursor after moving dx columns and dy rows,
// clamped to the grid. Moving down from a partial last row lands on the
// final card.
func (g GridLayout) MoveCursor(cursor, dx, dy int) int {
	if g.Total == 0 {
		return 0
	}
	switch {
	case dx != 0:
		cursor += dx
	case dy > 0:
		next := cursor + dy*g.Columns
		lastRow := (g.Total - 1) / g.Columns
		if next >= g.Total && cursor/g.Columns < lastRow {
			next = g.Total - 1
		}
		if next < g.Total {
			cursor = next
		}
	case dy < 0:
		if prev := cursor + dy*g.Columns; prev >= 0 {
			cursor = prev
		}
	}
	return min(max(cursor, 0), g.Total-1)
}
