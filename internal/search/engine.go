// Package search provides the query engine: substring search plus categorical filters.
package search

import (
	"time"

	"github.com/hyperjump/docfinder/internal/models"
	"github.com/hyperjump/docfinder/internal/store"
)

// Evaluate returns the documents matching searchTerm and the team, type and
// project filters, in input order. Tags are matched joined by a single space.
// The result is never nil.
func Evaluate(documents []models.Document, searchTerm, team, docType, project string) []models.Document {
	return EvaluateQuery(documents, models.QueryState{
		SearchTerm: searchTerm,
		Team:       team,
		Type:       docType,
		Project:    project,
	}, TagMatchJoined)
}

// EvaluateQuery is Evaluate driven by a QueryState. Filters are compared
// exactly; only All is a wildcard.
func EvaluateQuery(documents []models.Document, q models.QueryState, mode TagMatch) []models.Document {
	out := make([]models.Document, 0, len(documents))
	for _, d := range documents {
		if Matches(d, q, mode) {
			out = append(out, d)
		}
	}
	return out
}

// Engine evaluates queries against a store. It holds no per-query state, so
// one Engine can serve any number of callers.
type Engine struct {
	store    *store.Store
	tagMatch TagMatch
}

// EngineOption configures an Engine.
type EngineOption func(*Engine)

// WithTagMatch sets how search terms are matched against tags.
func WithTagMatch(m TagMatch) EngineOption {
	return func(e *Engine) { e.tagMatch = m }
}

// NewEngine creates an engine over st.
func NewEngine(st *store.Store, opts ...EngineOption) *Engine {
	e := &Engine{store: st, tagMatch: TagMatchJoined}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Store returns the engine's document store.
func (e *Engine) Store() *store.Store {
	return e.store
}

// TagMatch returns the engine's tag matching mode.
func (e *Engine) TagMatch() TagMatch {
	return e.tagMatch
}

// Evaluate returns the matching documents in store order.
func (e *Engine) Evaluate(q models.QueryState) []models.Document {
	if q.Unfiltered() {
		return e.store.All()
	}
	return EvaluateQuery(e.store.All(), q, e.tagMatch)
}

// Search evaluates q and bundles the results with the facet lists and team
// counts, which always describe the whole store.
func (e *Engine) Search(q models.QueryState) *models.SearchResponse {
	start := time.Now()
	results := e.Evaluate(q)
	return &models.SearchResponse{
		Results:        results,
		Total:          len(results),
		TotalDocuments: e.store.Len(),
		Facets:         e.store.Facets(),
		TeamCounts:     e.store.TeamCounts(),
		Query:          q,
		QueryTime:      time.Since(start).Microseconds(),
	}
}
