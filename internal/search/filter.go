package search

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/nikbrunner/diario/internal/model"
)

// fold lowercases s for caseless comparison. Lowercasing, unlike full
// case folding, keeps "ß" and "ss" distinct.
func fold(s string) string {
	return cases.Lower(language.Und).String(s)
}

// Matches returns true if term occurs, ignoring case, in the entry's
// title, description or any of its tags. An empty term matches everything.
func Matches(e model.Entry, term string) bool {
	if term == "" {
		return true
	}
	return matchesFolded(e, fold(term))
}

func matchesFolded(e model.Entry, folded string) bool {
	if strings.Contains(fold(e.Title), folded) ||
		strings.Contains(fold(e.Description), folded) {
		return true
	}
	for _, tag := range e.Tags {
		if strings.Contains(fold(tag), folded) {
			return true
		}
	}
	return false
}

// Filter returns the entries matching term, preserving their order.
// The result is never nil; no matches yields an empty slice.
func Filter(entries []model.Entry, term string) []model.Entry {
	result := make([]model.Entry, 0, len(entries))
	if term == "" {
		return append(result, entries...)
	}

	folded := fold(term)
	for _, e := range entries {
		if matchesFolded(e, folded) {
			result = append(result, e)
		}
	}
	return result
}
