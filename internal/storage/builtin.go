package storage

import (
	"context"

	"github.com/hyperjump/docfinder/internal/models"
	"github.com/hyperjump/docfinder/internal/store"
)

// BuiltinSource serves the sample corpus compiled into the binary.
type BuiltinSource struct{}

// Documents returns the sample corpus.
func (BuiltinSource) Documents(ctx context.Context) ([]models.Document, error) {
	return store.SampleDocuments(), nil
}

// Close is a no-op.
func (BuiltinSource) Close() error { return nil }
