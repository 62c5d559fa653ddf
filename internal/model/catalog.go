package model

import (
	"cmp"
	"errors"
	"fmt"
	"slices"
)

// ErrInvalidCatalog is returned when entry ids do not form the range 1..N.
var ErrInvalidCatalog = errors.New("invalid catalog")

// Catalog is the fixed, ordered entry set. It is immutable once built.
type Catalog struct {
	info    Info
	entries []Entry
}

// NewCatalog validates a journal and builds a Catalog from it.
// Entries are ordered by id; ids must be exactly 1..N with N >= 1.
func NewCatalog(j Journal) (*Catalog, error) {
	if len(j.Entries) == 0 {
		return nil, fmt.Errorf("%w: no entries", ErrInvalidCatalog)
	}

	entries := make([]Entry, len(j.Entries))
	for i, e := range j.Entries {
		e.Tags = slices.Clone(e.Tags)
		if e.Tags == nil {
			e.Tags = []string{}
		}
		entries[i] = e
	}
	slices.SortStableFunc(entries, func(a, b Entry) int {
		return cmp.Compare(a.ID, b.ID)
	})

	for i, e := range entries {
		if e.ID != i+1 {
			return nil, fmt.Errorf("%w: position %d has id %d, want %d", ErrInvalidCatalog, i+1, e.ID, i+1)
		}
	}

	return &Catalog{info: j.Info, entries: entries}, nil
}

// Info returns the journal metadata.
func (c *Catalog) Info() Info {
	return c.info
}

// Len returns the number of entries (N).
func (c *Catalog) Len() int {
	return len(c.entries)
}

// Entries returns all entries in id order.
// The returned slice is a copy; tag slices are shared and must not be modified.
func (c *Catalog) Entries() []Entry {
	return slices.Clone(c.entries)
}

// Entry finds an entry by id.
func (c *Catalog) Entry(id int) (Entry, bool) {
	if !c.Has(id) {
		return Entry{}, false
	}
	return c.entries[id-1], true
}

// Has returns true if id is a valid entry id.
func (c *Catalog) Has(id int) bool {
	return id >= 1 && id <= len(c.entries)
}

// UnknownStatuses returns the ids of entries whose status is outside the known set.
func (c *Catalog) UnknownStatuses() []int {
	var ids []int
	for _, e := range c.entries {
		if !e.Status.Known() {
			ids = append(ids, e.ID)
		}
	}
	return ids
}

// Journal returns the serializable form of the catalog.
func (c *Catalog) Journal() Journal {
	return Journal{Info: c.info, Entries: c.Entries()}
}
