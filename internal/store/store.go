// Package store holds the read-only, ordered document collection.
package store

import (
	"errors"
	"fmt"

	"github.com/hyperjump/docfinder/internal/models"
)

var (
	// ErrDocumentNotFound is returned by Get for an id that is not in the store.
	ErrDocumentNotFound = errors.New("document not found")
	// ErrDuplicateID is returned by New when two documents share an id.
	ErrDuplicateID = errors.New("duplicate document id")
)

// Store is an immutable, ordered collection of documents. Insertion order is
// the default display order. A Store is safe for concurrent use because
// nothing mutates it after New returns.
type Store struct {
	docs []models.Document
	byID map[string]int
}

// New builds a store from docs, keeping their order. The input slice is copied.
func New(docs []models.Document) (*Store, error) {
	s := &Store{
		docs: make([]models.Document, 0, len(docs)),
		byID: make(map[string]int, len(docs)),
	}
	for _, d := range docs {
		if _, ok := s.byID[d.ID]; ok {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateID, d.ID)
		}
		s.byID[d.ID] = len(s.docs)
		s.docs = append(s.docs, d.Clone())
	}
	return s, nil
}

// All returns every document in store order. The caller owns the returned slice.
func (s *Store) All() []models.Document {
	out := make([]models.Document, len(s.docs))
	for i, d := range s.docs {
		out[i] = d.Clone()
	}
	return out
}

// Len returns the number of documents.
func (s *Store) Len() int {
	return len(s.docs)
}

// First returns the first document in store order, or false when the store is empty.
func (s *Store) First() (models.Document, bool) {
	if len(s.docs) == 0 {
		return models.Document{}, false
	}
	return s.docs[0].Clone(), true
}

// Get returns the document with the given id.
func (s *Store) Get(id string) (models.Document, error) {
	i, ok := s.byID[id]
	if !ok {
		return models.Document{}, fmt.Errorf("%w: %s", ErrDocumentNotFound, id)
	}
	return s.docs[i].Clone(), nil
}

// DistinctValues returns All followed by the distinct values of field over
// the whole store, in first-occurrence order.
func (s *Store) DistinctValues(field Field) []string {
	return DistinctValues(s.docs, field)
}

// Facets returns the option lists for all three filter controls.
func (s *Store) Facets() models.Facets {
	return models.Facets{
		Team:    s.DistinctValues(FieldTeam),
		Type:    s.DistinctValues(FieldType),
		Project: s.DistinctValues(FieldProject),
	}
}

// CountByTeam maps each team to the number of documents it owns.
func (s *Store) CountByTeam() map[string]int {
	return CountByTeam(s.docs)
}

// TeamCounts is CountByTeam as a list in first-occurrence order.
func (s *Store) TeamCounts() []models.TeamCount {
	return TeamCounts(s.docs)
}

// Stats returns the values behind the stat cards.
func (s *Store) Stats() models.StatsResponse {
	counts := s.TeamCounts()
	return models.StatsResponse{
		TotalDocuments: len(s.docs),
		Teams:          len(counts),
		TeamCounts:     counts,
	}
}
