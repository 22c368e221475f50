package models

// All is the wildcard filter value: no constraint on the field.
const All = "All"

// QueryState is everything the view layer needs to reproduce what is on
// screen: the search term, the three categorical filters, and the selected
// document. It is a plain value; the query engine keeps no copy of it.
type QueryState struct {
	SearchTerm string `json:"search_term" yaml:"search_term"`
	Team       string `json:"team" yaml:"team"`
	Type       string `json:"type" yaml:"type"`
	Project    string `json:"project" yaml:"project"`
	SelectedID string `json:"selected_id,omitempty" yaml:"selected_id,omitempty"`
}

// DefaultQueryState returns the state of a freshly opened finder: empty search, no filters.
// Request decoding starts from it, so a filter left out of a request means All.
func DefaultQueryState() QueryState {
	return QueryState{Team: All, Type: All, Project: All}
}

// Unfiltered reports whether the state imposes no constraint at all.
// An empty filter is a constraint: it matches documents whose field is empty.
func (q QueryState) Unfiltered() bool {
	return q.SearchTerm == "" && q.Team == All && q.Type == All && q.Project == All
}
