package server

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/hyperjump/docfinder/internal/metrics"
	"github.com/hyperjump/docfinder/internal/models"
	"github.com/hyperjump/docfinder/internal/store"
)

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	s.respondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleListDocuments(w http.ResponseWriter, r *http.Request) {
	docs := s.engine.Store().All()
	s.respondJSON(w, http.StatusOK, map[string]interface{}{
		"documents": docs,
		"total":     len(docs),
	})
}

func (s *Server) handleGetDocument(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	doc, err := s.engine.Store().Get(id)
	if err != nil {
		s.respondError(w, http.StatusNotFound, "document not found")
		return
	}
	s.respondJSON(w, http.StatusOK, doc)
}

func (s *Server) handleSearch(w http.ResponseWriter, r *http.Request) {
	query := models.DefaultQueryState()
	if err := json.NewDecoder(r.Body).Decode(&query); err != nil {
		s.respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	resp := s.engine.Search(query)
	metrics.ObserveEvaluation(resp.Total)
	s.logger.Debug("search request",
		zap.String("search_term", resp.Query.SearchTerm),
		zap.String("team", resp.Query.Team),
		zap.String("type", resp.Query.Type),
		zap.String("project", resp.Query.Project),
		zap.Int("results", resp.Total),
	)
	s.respondJSON(w, http.StatusOK, resp)
}

func (s *Server) handleFacets(w http.ResponseWriter, r *http.Request) {
	s.respondJSON(w, http.StatusOK, s.engine.Store().Facets())
}

func (s *Server) handleStats(w http.ResponseWriter, r *http.Request) {
	s.respondJSON(w, http.StatusOK, s.engine.Store().Stats())
}

func (s *Server) handleSessionView(w http.ResponseWriter, r *http.Request) {
	s.respondJSON(w, http.StatusOK, s.session.View())
}

func (s *Server) handleSessionQuery(w http.ResponseWriter, r *http.Request) {
	query := models.DefaultQueryState()
	if err := json.NewDecoder(r.Body).Decode(&query); err != nil {
		s.respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	view, err := s.session.SetQuery(query)
	if err != nil {
		s.respondSessionError(w, err)
		return
	}
	metrics.ObserveEvaluation(view.Total)
	s.respondJSON(w, http.StatusOK, view)
}

type selectRequest struct {
	ID string `json:"id"`
}

func (s *Server) handleSessionSelect(w http.ResponseWriter, r *http.Request) {
	var req selectRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.ID == "" {
		s.respondError(w, http.StatusBadRequest, "id is required")
		return
	}
	view, err := s.session.Select(req.ID)
	if err != nil {
		s.respondSessionError(w, err)
		return
	}
	s.respondJSON(w, http.StatusOK, view)
}

func (s *Server) respondSessionError(w http.ResponseWriter, err error) {
	if errors.Is(err, store.ErrDocumentNotFound) {
		s.respondError(w, http.StatusNotFound, "document not found")
		return
	}
	s.logger.Error("session update failed", zap.Error(err))
	s.respondError(w, http.StatusInternalServerError, err.Error())
}

func (s *Server) respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(data)
}

func (s *Server) respondError(w http.ResponseWriter, status int, message string) {
	s.respondJSON(w, status, map[string]string{"error": message})
}
