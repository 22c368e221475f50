package models

// Facets holds the filter option lists. Each list starts with All and then
// lists the distinct values of the whole corpus in first-occurrence order.
type Facets struct {
	Team    []string `json:"team"`
	Type    []string `json:"type"`
	Project []string `json:"project"`
}

// TeamCount is the number of documents owned by one team.
type TeamCount struct {
	Team  string `json:"team"`
	Count int    `json:"count"`
}

// SearchResponse is the response for a query evaluation.
// Results is never nil; an empty slice means the query ran and matched nothing.
type SearchResponse struct {
	Results        []Document  `json:"results"`
	Total          int         `json:"total"`
	TotalDocuments int         `json:"total_documents"`
	Facets         Facets      `json:"facets"`
	TeamCounts     []TeamCount `json:"team_counts"`
	Query          QueryState  `json:"query"`
	QueryTime      int64       `json:"query_time_us"`
}

// SessionView is a search response plus the document shown in the detail pane.
// SelectedVisible is false when the selected document is not among Results.
type SessionView struct {
	SearchResponse
	Selected        *Document `json:"selected"`
	SelectedVisible bool      `json:"selected_visible"`
}

// StatsResponse backs the stat cards: total documents and per-team counts.
type StatsResponse struct {
	TotalDocuments int         `json:"total_documents"`
	Teams          int         `json:"teams"`
	TeamCounts     []TeamCount `json:"team_counts"`
}
