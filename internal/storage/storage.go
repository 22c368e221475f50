// Package storage loads the seed document collection from the built-in sample,
// YAML/JSON files, SQLite catalogs, or Excel workbooks.
package storage

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/hyperjump/docfinder/internal/models"
)

// Format names a seed source format.
type Format string

const (
	FormatBuiltin Format = "builtin"
	FormatYAML    Format = "yaml"
	FormatJSON    Format = "json"
	FormatSQLite  Format = "sqlite"
	FormatExcel   Format = "xlsx"
)

// Source yields the seed documents in display order.
type Source interface {
	Documents(ctx context.Context) ([]models.Document, error)
	Close() error
}

// DetectFormat infers the seed format from a file extension. An empty path is the built-in sample.
func DetectFormat(path string) (Format, error) {
	if path == "" {
		return FormatBuiltin, nil
	}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".json":
		return FormatJSON, nil
	case ".db", ".sqlite", ".sqlite3":
		return FormatSQLite, nil
	case ".xlsx":
		return FormatExcel, nil
	}
	return "", fmt.Errorf("cannot infer seed format from %q", path)
}

// ParseFormat validates an explicit format name. Empty means "detect from path".
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(s)); f {
	case "", FormatBuiltin, FormatYAML, FormatJSON, FormatSQLite, FormatExcel:
		return f, nil
	case "yml":
		return FormatYAML, nil
	case "xls", "excel":
		return FormatExcel, nil
	}
	return "", fmt.Errorf("unknown seed format %q", s)
}

// Open returns the source for path. format may be empty to infer it from the extension.
func Open(path, format string) (Source, error) {
	f, err := ParseFormat(format)
	if err != nil {
		return nil, err
	}
	if f == "" {
		if f, err = DetectFormat(path); err != nil {
			return nil, err
		}
	}
	switch f {
	case FormatBuiltin:
		return BuiltinSource{}, nil
	case FormatYAML, FormatJSON:
		return NewFileSource(path, f), nil
	case FormatSQLite:
		return NewSQLiteSource(path)
	case FormatExcel:
		return NewExcelSource(path), nil
	}
	return nil, fmt.Errorf("unsupported seed format %q", f)
}

// Load opens path, reads every document, and closes the source.
func Load(ctx context.Context, path, format string) ([]models.Document, error) {
	src, err := Open(path, format)
	if err != nil {
		return nil, err
	}
	defer src.Close()
	docs, err := src.Documents(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load seed documents: %w", err)
	}
	return docs, nil
}
