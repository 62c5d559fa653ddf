package layout

import "testing"

func TestCalculateModalWidth(t *testing.T) {
	cfg := DefaultConfig().Modal

	tests := []struct {
		name          string
		terminalWidth int
		percent       int
		want          int
	}{
		{"standard terminal", 80, 80, 64},       // 80*80/100 = 64
		{"wide terminal", 120, 80, 96},          // 120*80/100 = 96
		{"very wide clamps to max", 200, 80, 110},
		{"narrow uses min", 45, 80, 40},               // 45*80/100 = 36, min 40
		{"tiny terminal clamps to 1", 5, 80, 1},       // 5-4 = 1
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := CalculateModalWidth(tt.terminalWidth, tt.percent, cfg)
			if got != tt.want {
				t.Errorf("CalculateModalWidth(%d, %d) = %d, want %d",
					tt.terminalWidth, tt.percent, got, tt.want)
			}
		})
	}
}

func TestCalculateDetailLayout(t *testing.T) {
	got := CalculateDetailLayout(80, 24, DefaultConfig())

	want := DetailLayout{
		Left: 8, Top: 1,
		Width: 64, Height: 22,
		ContentX: 11, ContentY: 3,
		InnerWidth: 58, InnerHeight: 18,
		BodyHeight: 11,
	}
	if got != want {
		t.Errorf("CalculateDetailLayout(80, 24) = %+v, want %+v", got, want)
	}
	if got.NavRow() != 20 {
		t.Errorf("NavRow() = %d, want 20", got.NavRow())
	}
}

func TestCalculateDetailLayout_ShortTerminalKeepsBody(t *testing.T) {
	got := CalculateDetailLayout(80, 8, DefaultConfig())

	if got.BodyHeight < 1 {
		t.Errorf("expected at least one body row, got %d", got.BodyHeight)
	}
}

func TestDetailLayout_HitTest(t *testing.T) {
	l := CalculateDetailLayout(80, 24, DefaultConfig())

	tests := []struct {
		name string
		x, y int
		want Zone
	}{
		{"outside left", 2, 10, ZoneNone},
		{"outside above", 20, 0, ZoneNone},
		{"border corner", 8, 1, ZoneBody},
		{"close first cell", 66, 3, ZoneClose},
		{"close last cell", 68, 3, ZoneClose},
		{"left of close", 65, 3, ZoneBody},
		{"prev first cell", 11, 20, ZonePrev},
		{"prev last cell", 20, 20, ZonePrev},
		{"after prev", 21, 20, ZoneBody},
		{"next first cell", 58, 20, ZoneNext},
		{"next last cell", 68, 20, ZoneNext},
		{"body", 30, 10, ZoneBody},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := l.HitTest(tt.x, tt.y); got != tt.want {
				t.Errorf("HitTest(%d, %d) = %v, want %v", tt.x, tt.y, got, tt.want)
			}
		})
	}
}

func TestCalculateVisibleListItems(t *testing.T) {
	tests := []struct {
		name        string
		maxVisible  int
		selectedIdx int
		totalItems  int
		wantStart   int
		wantEnd     int
	}{
		{"at start", 5, 0, 10, 0, 5},
		{"near start", 5, 2, 10, 0, 5},
		{"in middle", 5, 7, 10, 3, 8},
		{"at end", 5, 9, 10, 5, 10},
		{"fewer than max", 5, 2, 3, 0, 3},
		{"exact max items", 5, 2, 5, 0, 5},
		{"selected beyond max", 8, 10, 15, 3, 11},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			start, end := CalculateVisibleListItems(tt.maxVisible, tt.selectedIdx, tt.totalItems)
			if start != tt.wantStart || end != tt.wantEnd {
				t.Errorf("CalculateVisibleListItems(%d, %d, %d) = (%d, %d), want (%d, %d)",
					tt.maxVisible, tt.selectedIdx, tt.totalItems,
					start, end, tt.wantStart, tt.wantEnd)
			}
		})
	}
}
