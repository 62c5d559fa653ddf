// Package browser holds the catalog browsing state: the live search term
// and the entry open in detail, with cyclic navigation over all entries.
package browser

import (
	"errors"
	"fmt"

	"github.com/nikbrunner/diario/internal/model"
	"github.com/nikbrunner/diario/internal/search"
)

// ErrUnknownEntry is returned when selecting an id outside the catalog.
var ErrUnknownEntry = errors.New("unknown entry")

// Mode is the browser's interaction mode.
type Mode int

const (
	// ModeBrowsing means no entry is open.
	ModeBrowsing Mode = iota
	// ModeDetail means exactly one entry is open.
	ModeDetail
)

func (m Mode) String() string {
	switch m {
	case ModeDetail:
		return "detail"
	default:
		return "browsing"
	}
}

// Browser is held by value in the TUI model; its methods take a pointer
// receiver and never touch the catalog.
type Browser struct {
	catalog    *model.Catalog
	searchTerm string
	selectedID int // 0 when nothing is open
}

// New returns a browser in its initial state: empty search, nothing open.
func New(c *model.Catalog) Browser {
	return Browser{catalog: c}
}

// Catalog returns the catalog being browsed.
func (b *Browser) Catalog() *model.Catalog {
	return b.catalog
}

// SetSearchTerm replaces the live filter term. The open entry is unaffected.
func (b *Browser) SetSearchTerm(term string) {
	b.searchTerm = term
}

// SearchTerm returns the live filter term.
func (b *Browser) SearchTerm() string {
	return b.searchTerm
}

// Visible returns the entries matching the search term in id order.
func (b *Browser) Visible() []model.Entry {
	return search.Filter(b.catalog.Entries(), b.searchTerm)
}

// Select opens the entry with the given id. Any catalog id is accepted,
// whether or not it passes the current filter.
func (b *Browser) Select(id int) error {
	if !b.catalog.Has(id) {
		return fmt.Errorf("%w: %d", ErrUnknownEntry, id)
	}
	b.selectedID = id
	return nil
}

// Close returns to browsing mode. Closing when nothing is open is a no-op.
func (b *Browser) Close() {
	b.selectedID = 0
}

// Next moves to the following entry, wrapping from N to 1.
// Returns false and does nothing when no entry is open.
func (b *Browser) Next() bool {
	return b.step(1)
}

// Prev moves to the preceding entry, wrapping from 1 to N.
// Returns false and does nothing when no entry is open.
func (b *Browser) Prev() bool {
	return b.step(-1)
}

func (b *Browser) step(delta int) bool {
	if b.selectedID == 0 {
		return false
	}
	n := b.catalog.Len()
	b.selectedID = (b.selectedID-1+delta+n)%n + 1
	return true
}

// Mode reports whether an entry is open.
func (b *Browser) Mode() Mode {
	if b.selectedID == 0 {
		return ModeBrowsing
	}
	return ModeDetail
}

// SelectedID returns the open entry's id.
func (b *Browser) SelectedID() (int, bool) {
	return b.selectedID, b.selectedID != 0
}

// Selected returns the open entry.
func (b *Browser) Selected() (model.Entry, bool) {
	if b.selectedID == 0 {
		return model.Entry{}, false
	}
	return b.catalog.Entry(b.selectedID)
}

// Position returns the open entry's 1-based position and the catalog size,
// as shown by the detail position indicator. Position is 0 when nothing is open.
func (b *Browser) Position() (int, int) {
	return b.selectedID, b.catalog.Len()
}
