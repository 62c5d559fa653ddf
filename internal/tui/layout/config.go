package layout

// LayoutConfig holds all layout-related configuration values.
type LayoutConfig struct {
	Chrome ChromeConfig
	Grid   GridConfig
	Modal  ModalConfig
	Detail DetailConfig
	Input  InputConfig
	Text   TextConfig
}

// ChromeConfig holds the fixed screen regions around the card grid.
type ChromeConfig struct {
	// PaddingTop and PaddingX are the app padding around everything.
	PaddingTop int
	PaddingX   int

	// HeaderLines: title (1) + profile (1) + gap (1) + section title (1) + search (1) + gap (1) = 6
	HeaderLines int

	// SearchRow is the header line holding the search field (0-based).
	SearchRow int

	// FooterLines: gap (1) + footer/message (1) + hints (1) = 3
	FooterLines int
}

// GridConfig holds card grid configuration.
type GridConfig struct {
	// MinCardWidth is the narrowest card (border included) before a column is dropped.
	MinCardWidth int

	// MaxColumns caps the number of card columns on wide terminals.
	MaxColumns int

	// CardHeight is the full card height including its border.
	// Content: week/badge (1) + title (1) + description (3) + tags (1) = 6, border = 2
	CardHeight int

	// ColumnGap and RowGap separate neighbouring cards.
	ColumnGap int
	RowGap    int

	// DescriptionLines is how many description lines a card shows.
	DescriptionLines int

	// VisibleTags is how many tags a card lists before "+K".
	VisibleTags int
}

// ModalConfig holds modal dialog configuration.
type ModalConfig struct {
	// DetailWidthPercent is the detail overlay width as percentage of terminal width.
	DetailWidthPercent int

	// MinWidth is the minimum modal width in characters.
	MinWidth int

	// MaxWidth is the maximum modal width in characters.
	MaxWidth int

	// HelpLeftColumnWidth: width for help overlay left column.
	HelpLeftColumnWidth int

	// HelpRightColumnWidth: width for help overlay right column.
	HelpRightColumnWidth int
}

// DetailConfig holds detail overlay configuration.
type DetailConfig struct {
	// VerticalMargin is kept free above and below the overlay.
	VerticalMargin int

	// PaddingX and PaddingY sit between the overlay border and its content.
	PaddingX int
	PaddingY int

	// HeaderLines: week/close (1) + title (1) + subtitle (1) + badge (1) + gap (1) = 5
	HeaderLines int

	// FooterLines: rule (1) + navigation (1) = 2
	FooterLines int

	// ScrollStep is how many lines one mouse wheel notch scrolls.
	ScrollStep int
}

// InputConfig holds text input configuration.
type InputConfig struct {
	SearchCharLimit int
	SearchWidth     int
}

// TextConfig holds text truncation configuration.
type TextConfig struct {
	// Ellipsis is the string used to indicate truncation.
	Ellipsis string
}

// DefaultConfig returns the default layout configuration.
func DefaultConfig() LayoutConfig {
	return LayoutConfig{
		Chrome: ChromeConfig{
			PaddingTop:  1,
			PaddingX:    2,
			HeaderLines: 6,
			SearchRow:   4,
			FooterLines: 3,
		},
		Grid: GridConfig{
			MinCardWidth:     30,
			MaxColumns:       4,
			CardHeight:       8,
			ColumnGap:        1,
			RowGap:           0,
			DescriptionLines: 3,
			VisibleTags:      2,
		},
		Modal: ModalConfig{
			DetailWidthPercent:   80,
			MinWidth:             40,
			MaxWidth:             110,
			HelpLeftColumnWidth:  24,
			HelpRightColumnWidth: 26,
		},
		Detail: DetailConfig{
			VerticalMargin: 1,
			PaddingX:       2,
			PaddingY:       1,
			HeaderLines:    5,
			FooterLines:    2,
			ScrollStep:     3,
		},
		Input: InputConfig{
			SearchCharLimit: 100,
			SearchWidth:     40,
		},
		Text: TextConfig{
			Ellipsis: "...",
		},
	}
}
