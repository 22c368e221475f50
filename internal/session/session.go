// Package session tracks the interactive finder session: the current query
// state and the document shown in the preview pane.
package session

import (
	"fmt"
	"sync"

	"github.com/hyperjump/docfinder/internal/models"
	"github.com/hyperjump/docfinder/internal/search"
	"go.uber.org/zap"
)

// Session owns one view's query state and selection. Evaluation is delegated
// to the stateless search engine on every change. Safe for concurrent use.
type Session struct {
	engine   *search.Engine
	policy   Policy
	logger   *zap.Logger
	mu       sync.Mutex
	query    models.QueryState
	selected *models.Document
}

// Option configures a Session.
type Option func(*Session)

// WithPolicy sets the stale-selection policy.
func WithPolicy(p Policy) Option {
	return func(s *Session) { s.policy = p }
}

// WithLogger sets a logger for debug output (query changes, selection changes).
func WithLogger(l *zap.Logger) Option {
	return func(s *Session) { s.logger = l }
}

// New starts a session with the default query and the first document selected.
func New(engine *search.Engine, opts ...Option) *Session {
	s := &Session{
		engine: engine,
		policy: PolicySticky,
		logger: zap.NewNop(),
		query:  models.DefaultQueryState(),
	}
	for _, opt := range opts {
		opt(s)
	}
	if first, ok := InitialSelection(engine.Store().All()); ok {
		s.selected = &first
		s.query.SelectedID = first.ID
	}
	return s
}

// Policy returns the session's stale-selection policy.
func (s *Session) Policy() Policy {
	return s.policy
}

// Query returns the current query state.
func (s *Session) Query() models.QueryState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.query
}

// Selected returns the selected document, or false when nothing is selected.
func (s *Session) Selected() (models.Document, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.selected == nil {
		return models.Document{}, false
	}
	return s.selected.Clone(), true
}

// View evaluates the current query and reports the selection.
func (s *Session) View() *models.SessionView {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.viewLocked()
}

// SetQuery replaces the search term and filters and re-evaluates. When
// q.SelectedID is set, that document is selected first; an unknown id leaves
// the session unchanged and returns an error wrapping store.ErrDocumentNotFound.
func (s *Session) SetQuery(q models.QueryState) (*models.SessionView, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if q.SelectedID != "" && (s.selected == nil || q.SelectedID != s.selected.ID) {
		doc, err := s.engine.Store().Get(q.SelectedID)
		if err != nil {
			return nil, fmt.Errorf("failed to select document: %w", err)
		}
		s.selected = &doc
	}
	s.query = q

	resp := s.engine.Search(s.query)
	kept, visible := s.policy.Apply(s.selected, resp.Results)
	if s.selected != nil && kept == nil {
		s.logger.Debug("selection cleared", zap.String("id", s.selected.ID))
	}
	s.selected = kept
	s.syncSelectedIDLocked()
	resp.Query = s.query

	s.logger.Debug("query updated",
		zap.String("search_term", s.query.SearchTerm),
		zap.String("team", s.query.Team),
		zap.String("type", s.query.Type),
		zap.String("project", s.query.Project),
		zap.Int("results", resp.Total),
	)
	return &models.SessionView{
		SearchResponse:  *resp,
		Selected:        cloneSelected(s.selected),
		SelectedVisible: visible,
	}, nil
}

// Select makes the document with id the selection, replacing any previous one.
// The document does not have to be in the current result list.
func (s *Session) Select(id string) (*models.SessionView, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	doc, err := s.engine.Store().Get(id)
	if err != nil {
		return nil, fmt.Errorf("failed to select document: %w", err)
	}
	s.selected = &doc
	s.syncSelectedIDLocked()
	s.logger.Debug("document selected", zap.String("id", id))
	return s.viewLocked(), nil
}

func (s *Session) viewLocked() *models.SessionView {
	resp := s.engine.Search(s.query)
	_, visible := PolicySticky.Apply(s.selected, resp.Results)
	return &models.SessionView{
		SearchResponse:  *resp,
		Selected:        cloneSelected(s.selected),
		SelectedVisible: visible,
	}
}

func (s *Session) syncSelectedIDLocked() {
	if s.selected == nil {
		s.query.SelectedID = ""
		return
	}
	s.query.SelectedID = s.selected.ID
}

func cloneSelected(d *models.Document) *models.Document {
	if d == nil {
		return nil
	}
	c := d.Clone()
	return &c
}
