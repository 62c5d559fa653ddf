package search

import (
	"github.com/nikbrunner/diario/internal/model"
	"github.com/sahilm/fuzzy"
)

// Result represents a fuzzy search match.
type Result struct {
	Entry          model.Entry
	MatchedIndexes []int
	Score          int
}

// entryTitles implements fuzzy.Source for an entry slice.
type entryTitles []model.Entry

func (et entryTitles) String(i int) string {
	return et[i].Title
}

func (et entryTitles) Len() int {
	return len(et)
}

// FuzzySearch searches entry titles using fuzzy matching.
// Returns results sorted by match score (best first).
func FuzzySearch(entries []model.Entry, query string) []Result {
	if query == "" {
		return nil
	}

	source := entryTitles(entries)
	matches := fuzzy.FindFrom(query, source)

	results := make([]Result, len(matches))
	for i, m := range matches {
		results[i] = Result{
			Entry:          source[m.Index],
			MatchedIndexes: m.MatchedIndexes,
			Score:          m.Score,
		}
	}

	return results
}
