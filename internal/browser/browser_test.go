package browser_test

import (
	"errors"
	"testing"

	"github.com/nikbrunner/diario/internal/browser"
	"github.com/nikbrunner/diario/internal/model"
	"github.com/nikbrunner/diario/internal/storage"
	"gotest.tools/v3/assert"
)

func newBrowser(t *testing.T) browser.Browser {
	t.Helper()
	c, err := storage.LoadCatalog(storage.Embedded())
	assert.NilError(t, err)
	return browser.New(c)
}

func selectedID(t *testing.T, b *browser.Browser) int {
	t.Helper()
	id, ok := b.SelectedID()
	assert.Assert(t, ok, "expected an open entry")
	return id
}

func TestNew_InitialState(t *testing.T) {
	b := newBrowser(t)

	assert.Equal(t, b.SearchTerm(), "")
	assert.Equal(t, b.Mode(), browser.ModeBrowsing)
	_, ok := b.SelectedID()
	assert.Assert(t, !ok)
	assert.Equal(t, len(b.Visible()), b.Catalog().Len())
}

func TestSelect_OpensDetail(t *testing.T) {
	b := newBrowser(t)

	assert.NilError(t, b.Select(7))
	assert.Equal(t, b.Mode(), browser.ModeDetail)
	assert.Equal(t, selectedID(t, &b), 7)

	e, ok := b.Selected()
	assert.Assert(t, ok)
	assert.Equal(t, e.ID, 7)
}

func TestSelect_UnknownID(t *testing.T) {
	b := newBrowser(t)
	assert.NilError(t, b.Select(3))

	for _, id := range []int{0, -1, b.Catalog().Len() + 1} {
		err := b.Select(id)
		assert.Assert(t, errors.Is(err, browser.ErrUnknownEntry), "id %d", id)
		assert.Equal(t, selectedID(t, &b), 3, "failed select must leave state unchanged")
	}
}

func TestSelect_IgnoresFilter(t *testing.T) {
	b := newBrowser(t)
	b.SetSearchTerm("GraphQL")

	assert.NilError(t, b.Select(2))
	assert.Equal(t, selectedID(t, &b), 2)
	assert.Equal(t, b.SearchTerm(), "GraphQL", "select must not change the search term")
}

func TestPrev_WrapsFromFirstToLast(t *testing.T) {
	b := newBrowser(t)
	assert.NilError(t, b.Select(1))

	assert.Assert(t, b.Prev())
	assert.Equal(t, selectedID(t, &b), b.Catalog().Len())
}

func TestNext_WrapsFromLastToFirst(t *testing.T) {
	b := newBrowser(t)
	assert.NilError(t, b.Select(b.Catalog().Len()))

	assert.Assert(t, b.Next())
	assert.Equal(t, selectedID(t, &b), 1)
}

func TestNextPrev_FullCycle(t *testing.T) {
	b := newBrowser(t)
	n := b.Catalog().Len()
	assert.NilError(t, b.Select(4))

	for i := 0; i < n; i++ {
		b.Next()
	}
	assert.Equal(t, selectedID(t, &b), 4)

	for i := 0; i < n; i++ {
		b.Prev()
	}
	assert.Equal(t, selectedID(t, &b), 4)
}

func TestNavigation_IgnoresFilter(t *testing.T) {
	b := newBrowser(t)
	b.SetSearchTerm("GraphQL")
	assert.NilError(t, b.Select(1))

	b.Next()
	assert.Equal(t, selectedID(t, &b), 2, "navigation walks all entries, not the filtered view")
}

func TestClose_ThenNavigationIsNoop(t *testing.T) {
	b := newBrowser(t)
	assert.NilError(t, b.Select(5))

	b.Close()
	assert.Equal(t, b.Mode(), browser.ModeBrowsing)

	assert.Assert(t, !b.Next())
	assert.Assert(t, !b.Prev())
	_, ok := b.SelectedID()
	assert.Assert(t, !ok)
}

func TestClose_Idempotent(t *testing.T) {
	b := newBrowser(t)
	assert.NilError(t, b.Select(5))

	b.Close()
	_, ok := b.SelectedID()
	assert.Assert(t, !ok)

	b.Close()
	_, ok = b.SelectedID()
	assert.Assert(t, !ok)
}

func TestSetSearchTerm_KeepsSelection(t *testing.T) {
	b := newBrowser(t)
	assert.NilError(t, b.Select(6))

	b.SetSearchTerm("zzz")
	assert.Equal(t, selectedID(t, &b), 6)
	assert.Equal(t, len(b.Visible()), 0)
}

func TestPosition(t *testing.T) {
	b := newBrowser(t)

	pos, total := b.Position()
	assert.Equal(t, pos, 0)
	assert.Equal(t, total, 14)

	assert.NilError(t, b.Select(9))
	pos, _ = b.Position()
	assert.Equal(t, pos, 9)
}

func TestSingleEntryCatalog(t *testing.T) {
	c, err := model.NewCatalog(model.Journal{Entries: []model.Entry{{ID: 1, Title: "Solo"}}})
	assert.NilError(t, err)
	b := browser.New(c)

	assert.NilError(t, b.Select(1))
	b.Next()
	assert.Equal(t, selectedID(t, &b), 1)
	b.Prev()
	assert.Equal(t, selectedID(t, &b), 1)
}

func TestMode_String(t *testing.T) {
	assert.Equal(t, browser.ModeBrowsing.String(), "browsing")
	assert.Equal(t, browser.ModeDetail.String(), "detail")
}
