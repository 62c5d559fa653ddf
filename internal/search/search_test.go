package search

import (
	"testing"

	"github.com/nikbrunner/diario/internal/model"
)

func titled(titles ...string) []model.Entry {
	entries := make([]model.Entry, len(titles))
	for i, title := range titles {
		entries[i] = model.Entry{ID: i + 1, Title: title}
	}
	return entries
}

func TestFuzzySearch_EmptyQuery(t *testing.T) {
	results := FuzzySearch(titled("GraphQL con Apollo Server"), "")

	if len(results) != 0 {
		t.Errorf("expected 0 results for empty query, got %d", len(results))
	}
}

func TestFuzzySearch_ExactMatch(t *testing.T) {
	results := FuzzySearch(titled("Full Text Search", "Vistas Materializadas"), "Full Text Search")

	if len(results) != 1 {
		t.Fatalf("expected 1 result, got %d", len(results))
	}
	if results[0].Entry.ID != 1 {
		t.Errorf("expected entry 1, got %d", results[0].Entry.ID)
	}
}

func TestFuzzySearch_FuzzyMatch(t *testing.T) {
	entries := titled("Particionamiento de Bases de Datos", "Primer Examen")

	// "partbd" should fuzzy match "Particionamiento de Bases de Datos"
	results := FuzzySearch(entries, "partbd")

	if len(results) < 1 {
		t.Fatalf("expected at least 1 result for 'partbd', got %d", len(results))
	}
	if results[0].Entry.Title != "Particionamiento de Bases de Datos" {
		t.Errorf("expected Particionamiento first, got %s", results[0].Entry.Title)
	}
}

func TestFuzzySearch_NoMatch(t *testing.T) {
	results := FuzzySearch(titled("Primer Examen"), "xyz123")

	if len(results) != 0 {
		t.Errorf("expected 0 results for 'xyz123', got %d", len(results))
	}
}

func TestFuzzySearch_CaseInsensitive(t *testing.T) {
	results := FuzzySearch(titled("GraphQL con Apollo Server"), "graphql")

	if len(results) != 1 {
		t.Fatalf("expected 1 result for case-insensitive match, got %d", len(results))
	}
}

func TestFuzzySearch_SortedByScore(t *testing.T) {
	entries := titled("Consultas GraphQL Avanzadas", "Examen")

	results := FuzzySearch(entries, "examen")

	if len(results) < 1 {
		t.Fatalf("expected at least 1 result, got %d", len(results))
	}
	if results[0].Entry.Title != "Examen" {
		t.Errorf("expected 'Examen' as first result, got %s", results[0].Entry.Title)
	}
}
