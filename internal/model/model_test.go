package model_test

import (
	"errors"
	"testing"

	"github.com/nikbrunner/diario/internal/model"
	"gotest.tools/v3/assert"
)

func journalWithIDs(ids ...int) model.Journal {
	var j model.Journal
	for _, id := range ids {
		j.Entries = append(j.Entries, model.Entry{ID: id, Title: "Week"})
	}
	return j
}

func TestStatus_Label(t *testing.T) {
	tests := []struct {
		status model.Status
		want   string
	}{
		{model.StatusCompleted, "Completado"},
		{model.StatusInProgress, "En progreso"},
		{model.StatusUpcoming, "Próximo"},
		{model.StatusExam, "Examen"},
		{model.Status("cancelled"), "Sin estado"},
		{model.Status(""), "Sin estado"},
	}

	for _, tt := range tests {
		t.Run(string(tt.status), func(t *testing.T) {
			if got := tt.status.Label(); got != tt.want {
				t.Errorf("Label() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestStatus_Known(t *testing.T) {
	if !model.StatusExam.Known() {
		t.Error("expected exam to be known")
	}
	if model.Status("paused").Known() {
		t.Error("expected paused to be unknown")
	}
}

func TestNewCatalog_OrdersByID(t *testing.T) {
	c, err := model.NewCatalog(journalWithIDs(3, 1, 2))
	assert.NilError(t, err)

	entries := c.Entries()
	assert.Equal(t, len(entries), 3)
	for i, e := range entries {
		assert.Equal(t, e.ID, i+1)
	}
}

func TestNewCatalog_RejectsInvalidIDs(t *testing.T) {
	tests := []struct {
		name string
		ids  []int
	}{
		{"empty", nil},
		{"gap", []int{1, 2, 4}},
		{"duplicate", []int{1, 1, 2}},
		{"starts at zero", []int{0, 1, 2}},
		{"negative", []int{-1, 1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := model.NewCatalog(journalWithIDs(tt.ids...))
			if !errors.Is(err, model.ErrInvalidCatalog) {
				t.Errorf("expected ErrInvalidCatalog, got %v", err)
			}
		})
	}
}

func TestCatalog_Entry(t *testing.T) {
	c, err := model.NewCatalog(journalWithIDs(1, 2))
	assert.NilError(t, err)

	e, ok := c.Entry(2)
	assert.Assert(t, ok)
	assert.Equal(t, e.ID, 2)

	_, ok = c.Entry(0)
	assert.Assert(t, !ok)
	_, ok = c.Entry(3)
	assert.Assert(t, !ok)
}

func TestCatalog_IsolatedFromSource(t *testing.T) {
	j := model.Journal{Entries: []model.Entry{{ID: 1, Tags: []string{"SQL"}}}}
	c, err := model.NewCatalog(j)
	assert.NilError(t, err)

	j.Entries[0].Tags[0] = "changed"
	j.Entries[0].Title = "changed"

	e, _ := c.Entry(1)
	assert.Equal(t, e.Tags[0], "SQL")
	assert.Equal(t, e.Title, "")
}

func TestCatalog_NilTagsBecomeEmpty(t *testing.T) {
	c, err := model.NewCatalog(journalWithIDs(1))
	assert.NilError(t, err)

	e, _ := c.Entry(1)
	assert.Assert(t, e.Tags != nil)
	assert.Equal(t, len(e.Tags), 0)
}

func TestCatalog_UnknownStatuses(t *testing.T) {
	j := model.Journal{Entries: []model.Entry{
		{ID: 1, Status: model.StatusCompleted},
		{ID: 2, Status: "archived"},
		{ID: 3, Status: model.StatusExam},
	}}
	c, err := model.NewCatalog(j)
	assert.NilError(t, err)

	assert.DeepEqual(t, c.UnknownStatuses(), []int{2})
}
