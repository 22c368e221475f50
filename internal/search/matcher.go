package search

import (
	"strings"

	"github.com/hyperjump/docfinder/internal/models"
)

// MatchesSearch reports whether term occurs, ignoring case, in the document's
// title, content, topic, or tags. An empty term matches every document.
func MatchesSearch(doc models.Document, term string, mode TagMatch) bool {
	return matchesFolded(doc, fold(term), mode)
}

func matchesFolded(doc models.Document, term string, mode TagMatch) bool {
	if term == "" {
		return true
	}
	if strings.Contains(fold(doc.Title), term) ||
		strings.Contains(fold(doc.Content), term) ||
		strings.Contains(fold(doc.Topic), term) {
		return true
	}
	if mode == TagMatchPerTag {
		for _, tag := range doc.Tags {
			if strings.Contains(fold(tag), term) {
				return true
			}
		}
		return false
	}
	return strings.Contains(fold(strings.Join(doc.Tags, " ")), term)
}

// MatchesFilter reports whether a categorical value passes a filter.
// All passes everything; any other filter requires exact, case-sensitive equality.
func MatchesFilter(filter, value string) bool {
	return filter == models.All || filter == value
}

// Matches reports whether doc passes the search term and all three filters.
func Matches(doc models.Document, q models.QueryState, mode TagMatch) bool {
	return matchesFolded(doc, fold(q.SearchTerm), mode) &&
		MatchesFilter(q.Team, doc.Team) &&
		MatchesFilter(q.Type, doc.Type) &&
		MatchesFilter(q.Project, doc.Project)
}
