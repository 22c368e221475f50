package main

import (
	"context"
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"go.uber.org/zap"

	"github.com/hyperjump/docfinder/internal/config"
	"github.com/hyperjump/docfinder/internal/models"
	"github.com/hyperjump/docfinder/internal/storage"
	"github.com/hyperjump/docfinder/internal/store"
)

func TestSearchArgsReorder(t *testing.T) {
	tests := []struct {
		name     string
		args     []string
		expected []string
	}{
		{
			name:     "flags after term are moved first",
			args:     []string{"weekly", "-type", "Report"},
			expected: []string{"-type", "Report", "weekly"},
		},
		{
			name:     "flags first returns unchanged",
			args:     []string{"-team", "Brand", "brand"},
			expected: []string{"-team", "Brand", "brand"},
		},
		{
			name:     "term only returns unchanged",
			args:     []string{"brand guidelines"},
			expected: []string{"brand guidelines"},
		},
		{
			name:     "empty args returns unchanged",
			args:     []string{},
			expected: []string{},
		},
		{
			name:     "multiple positionals then flags",
			args:     []string{"campaign", "q4", "-output", "json"},
			expected: []string{"-output", "json", "campaign", "q4"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := searchArgsReorder(tt.args)
			if !reflect.DeepEqual(got, tt.expected) {
				t.Errorf("searchArgsReorder() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestBuildSearchTerm(t *testing.T) {
	tests := []struct {
		name     string
		args     []string
		expected string
	}{
		{"single word", []string{"brand"}, "brand"},
		{"multiple words", []string{"campaign", "q4"}, "campaign q4"},
		{"single quoted phrase", []string{"campaign q4"}, "campaign q4"},
		{"empty args", []string{}, ""},
		{"leading space kept", []string{" brand"}, " brand"},
		{"one space", []string{" "}, " "},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := buildSearchTerm(tt.args)
			if got != tt.expected {
				t.Errorf("buildSearchTerm(%v) = %q, want %q", tt.args, got, tt.expected)
			}
		})
	}
}

func TestLoadConfig_prefersCwdConfigWhenDefaultPath(t *testing.T) {
	dir := t.TempDir()
	configPath := filepath.Join(dir, "config.yaml")
	content := `
debug: true
server:
  host: "localhost"
  port: 9090
selection:
  policy: clear
`
	if err := os.WriteFile(configPath, []byte(content), 0600); err != nil {
		t.Fatal(err)
	}
	origWd, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	defer func() { _ = os.Chdir(origWd) }()
	if err := os.Chdir(dir); err != nil {
		t.Fatal(err)
	}

	cfg, resolved, err := loadConfig(defaultConfigPath)
	if err != nil {
		t.Fatal(err)
	}
	// On macOS, cwd can be /private/var/... while configPath from t.TempDir() is /var/...; compare canonical paths.
	resolvedCanon, _ := filepath.EvalSymlinks(resolved)
	configPathCanon, _ := filepath.EvalSymlinks(configPath)
	if resolvedCanon != configPathCanon {
		t.Errorf("resolved path = %q, want %q", resolved, configPath)
	}
	if cfg.Server.Port != 9090 {
		t.Errorf("Server.Port = %d, want 9090", cfg.Server.Port)
	}
	if cfg.Selection.Policy != "clear" {
		t.Errorf("Selection.Policy = %q, want clear", cfg.Selection.Policy)
	}
}

func TestLoadConfig_explicitMissingPathFails(t *testing.T) {
	if _, _, err := loadConfig(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("expected error for explicit missing config path")
	}
}

func TestInitializeComponents_builtinSeed(t *testing.T) {
	cfg := config.Default()
	components, err := initializeComponents(context.Background(), cfg, zap.NewNop())
	if err != nil {
		t.Fatal(err)
	}
	if components.Store.Len() != 5 {
		t.Errorf("Store.Len() = %d, want 5", components.Store.Len())
	}
	selected, ok := components.Session.Selected()
	if !ok || selected.ID != "1" {
		t.Errorf("initial selection = %v (%v), want document 1", selected.ID, ok)
	}
	resp := components.Engine.Search(models.QueryState{SearchTerm: "brand", Team: models.All, Type: models.All, Project: models.All})
	if resp.Total != 2 {
		t.Errorf("search brand total = %d, want 2", resp.Total)
	}
}

func TestInitializeComponents_invalidPolicy(t *testing.T) {
	cfg := config.Default()
	cfg.Selection.Policy = "forget"
	if _, err := initializeComponents(context.Background(), cfg, zap.NewNop()); err == nil {
		t.Error("expected error for unknown selection policy")
	}
}

func TestImportSeed_toCatalog(t *testing.T) {
	dir := t.TempDir()
	dest := filepath.Join(dir, "catalog.db")

	n, err := importSeed(context.Background(), "", "", dest)
	if err != nil {
		t.Fatal(err)
	}
	if n != 5 {
		t.Errorf("imported %d documents, want 5", n)
	}

	docs, err := storage.Load(context.Background(), dest, "")
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(docs, store.SampleDocuments()) {
		t.Errorf("catalog round trip differs:\n got %+v\nwant %+v", docs, store.SampleDocuments())
	}
}

func TestImportSeed_yamlToWorkbook(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "seed.yaml")
	if err := storage.WriteYAML(src, store.SampleDocuments()); err != nil {
		t.Fatal(err)
	}
	dest := filepath.Join(dir, "seed.xlsx")
	if _, err := importSeed(context.Background(), src, "", dest); err != nil {
		t.Fatal(err)
	}
	docs, err := storage.Load(context.Background(), dest, "")
	if err != nil {
		t.Fatal(err)
	}
	if len(docs) != 5 || docs[3].Title != "Brand Voice & Messaging Guidelines" {
		t.Errorf("unexpected workbook documents: %+v", docs)
	}
}

func TestImportSeed_rejectsJSONDestination(t *testing.T) {
	dest := filepath.Join(t.TempDir(), "out.json")
	if _, err := importSeed(context.Background(), "", "", dest); err == nil {
		t.Error("expected error writing a json destination")
	}
}
