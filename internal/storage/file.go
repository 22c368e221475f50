package storage

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/hyperjump/docfinder/internal/models"
)

// FileSource reads seed documents from a YAML or JSON file.
type FileSource struct {
	path   string
	format Format
}

// NewFileSource returns a source reading path as format (FormatYAML or FormatJSON).
func NewFileSource(path string, format Format) *FileSource {
	return &FileSource{path: path, format: format}
}

// seedFile is the on-disk layout: a top-level documents list.
type seedFile struct {
	Documents []seedRecord `json:"documents" yaml:"documents"`
}

// seedRecord mirrors models.Document but accepts numeric ids.
type seedRecord struct {
	ID      seedID   `json:"id" yaml:"id"`
	Title   string   `json:"title" yaml:"title"`
	Team    string   `json:"team" yaml:"team"`
	Project string   `json:"project" yaml:"project"`
	Type    string   `json:"type" yaml:"type"`
	Topic   string   `json:"topic" yaml:"topic"`
	Tags    []string `json:"tags" yaml:"tags"`
	Content string   `json:"content" yaml:"content"`
}

// seedID is a document id written either as a string or as a number.
type seedID string

func (id *seedID) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.ScalarNode {
		return fmt.Errorf("line %d: id must be a scalar", node.Line)
	}
	if node.Tag == "!!null" {
		*id = ""
		return nil
	}
	*id = seedID(node.Value)
	return nil
}

func (id *seedID) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*id = ""
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*id = seedID(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("id must be a string or number: %w", err)
	}
	*id = seedID(n.String())
	return nil
}

func (r seedRecord) document() models.Document {
	return models.Document{
		ID:      string(r.ID),
		Title:   r.Title,
		Team:    r.Team,
		Project: r.Project,
		Type:    r.Type,
		Topic:   r.Topic,
		Tags:    r.Tags,
		Content: r.Content,
	}
}

// Documents reads and decodes the file.
func (f *FileSource) Documents(ctx context.Context) ([]models.Document, error) {
	data, err := os.ReadFile(f.path)
	if err != nil {
		return nil, fmt.Errorf("failed to read seed file: %w", err)
	}
	var seed seedFile
	switch f.format {
	case FormatJSON:
		err = json.Unmarshal(data, &seed)
	default:
		err = yaml.Unmarshal(data, &seed)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to parse seed file %s: %w", f.path, err)
	}
	docs := make([]models.Document, len(seed.Documents))
	for i, r := range seed.Documents {
		docs[i] = r.document()
	}
	assignIDs(docs)
	return docs, nil
}

// Close is a no-op.
func (f *FileSource) Close() error { return nil }

// WriteYAML writes docs to path in the seed file layout.
func WriteYAML(path string, docs []models.Document) error {
	data, err := yaml.Marshal(struct {
		Documents []models.Document `yaml:"documents"`
	}{docs})
	if err != nil {
		return fmt.Errorf("failed to marshal seed file: %w", err)
	}
	if err := os.WriteFile(path, data, 0600); err != nil {
		return fmt.Errorf("failed to write seed file: %w", err)
	}
	return nil
}
