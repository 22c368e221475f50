// Package integration provides end-to-end tests (real seed files, catalog and HTTP server).
package integration

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"go.uber.org/zap"

	"github.com/hyperjump/docfinder/internal/config"
	"github.com/hyperjump/docfinder/internal/models"
	"github.com/hyperjump/docfinder/internal/search"
	"github.com/hyperjump/docfinder/internal/server"
	"github.com/hyperjump/docfinder/internal/session"
	"github.com/hyperjump/docfinder/internal/storage"
	"github.com/hyperjump/docfinder/internal/store"
)

const seedYAML = `
documents:
  - id: 10
    title: Onboarding Checklist
    team: People
    project: Hiring
    type: Guide
    topic: Onboarding
    tags: [hr, onboarding]
    content: Steps for the first week of a new hire.
  - title: Quarterly Hiring Report
    team: People
    project: Hiring
    type: Report
    topic: Recruiting
    tags: [hiring, metrics]
    content: Offers, acceptances and pipeline health for the quarter.
  - id: 12
    title: Incident Review Template
    team: Platform
    project: Reliability
    type: Template
    topic: Incidents
    tags: [postmortem]
    content: Use this template after every production incident.
`

func call(t *testing.T, method, url string, body interface{}, out interface{}) int {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatal(err)
		}
	}
	req, err := http.NewRequest(method, url, &buf)
	if err != nil {
		t.Fatal(err)
	}
	req.Header.Set("Content-Type", "application/json")
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()
	if out != nil && resp.StatusCode == http.StatusOK {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			t.Fatal(err)
		}
	}
	return resp.StatusCode
}

func TestIntegration_CatalogSeedThroughHTTP(t *testing.T) {
	dir := t.TempDir()
	seedPath := filepath.Join(dir, "seed.yaml")
	if err := os.WriteFile(seedPath, []byte(seedYAML), 0600); err != nil {
		t.Fatal(err)
	}
	ctx := context.Background()

	docs, err := storage.Load(ctx, seedPath, "")
	if err != nil {
		t.Fatal(err)
	}
	catalogPath := filepath.Join(dir, "catalog.db")
	catalog, err := storage.CreateSQLiteSource(catalogPath)
	if err != nil {
		t.Fatal(err)
	}
	if err := catalog.WriteDocuments(ctx, docs); err != nil {
		t.Fatal(err)
	}
	catalog.Close()

	docs, err = storage.Load(ctx, catalogPath, "")
	if err != nil {
		t.Fatal(err)
	}
	st, err := store.New(docs)
	if err != nil {
		t.Fatal(err)
	}
	generatedID := storage.SeedDocID(1, "Quarterly Hiring Report")
	if got := st.All()[1].ID; got != generatedID {
		t.Fatalf("generated id = %q, want %q", got, generatedID)
	}

	engine := search.NewEngine(st)
	sess := session.New(engine, session.WithLogger(zap.NewNop()))
	srv := server.NewServer(engine, sess, &config.ServerConfig{Host: "localhost", Port: 0}, zap.NewNop())
	ts := httptest.NewServer(srv.Router())
	defer ts.Close()

	var facets models.Facets
	if code := call(t, http.MethodGet, ts.URL+"/api/v1/facets", nil, &facets); code != http.StatusOK {
		t.Fatalf("facets status %d", code)
	}
	if len(facets.Team) != 3 || facets.Team[0] != models.All || facets.Team[1] != "People" {
		t.Errorf("team facet = %v", facets.Team)
	}

	var resp models.SearchResponse
	q := models.QueryState{SearchTerm: "HIRING", Team: "People", Type: models.All, Project: models.All}
	if code := call(t, http.MethodPost, ts.URL+"/api/v1/search", q, &resp); code != http.StatusOK {
		t.Fatalf("search status %d", code)
	}
	if resp.Total != 1 || resp.Results[0].ID != generatedID {
		t.Errorf("search results = %+v", resp.Results)
	}
	if resp.TotalDocuments != 3 {
		t.Errorf("TotalDocuments = %d, want 3", resp.TotalDocuments)
	}

	var view models.SessionView
	if code := call(t, http.MethodGet, ts.URL+"/api/v1/session", nil, &view); code != http.StatusOK {
		t.Fatalf("session status %d", code)
	}
	if view.Selected == nil || view.Selected.ID != "10" {
		t.Fatalf("initial selection = %+v, want 10", view.Selected)
	}

	q = models.QueryState{Team: "Platform", Type: models.All, Project: models.All}
	if code := call(t, http.MethodPut, ts.URL+"/api/v1/session/query", q, &view); code != http.StatusOK {
		t.Fatalf("session query status %d", code)
	}
	if view.Total != 1 || view.Selected == nil || view.Selected.ID != "10" || view.SelectedVisible {
		t.Errorf("sticky selection view = total %d selected %+v visible %v", view.Total, view.Selected, view.SelectedVisible)
	}

	if code := call(t, http.MethodPut, ts.URL+"/api/v1/session/selection", map[string]string{"id": "12"}, &view); code != http.StatusOK {
		t.Fatalf("select status %d", code)
	}
	if view.Selected == nil || view.Selected.ID != "12" || !view.SelectedVisible {
		t.Errorf("after select = %+v visible %v", view.Selected, view.SelectedVisible)
	}

	if code := call(t, http.MethodPut, ts.URL+"/api/v1/session/selection", map[string]string{"id": "nope"}, nil); code != http.StatusNotFound {
		t.Errorf("unknown selection status = %d, want 404", code)
	}
}
