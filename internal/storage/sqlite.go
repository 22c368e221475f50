package storage

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	_ "github.com/mattn/go-sqlite3"

	"github.com/hyperjump/docfinder/internal/models"
)

// SQLiteSource reads seed documents from a SQLite catalog.
type SQLiteSource struct {
	db *sql.DB
}

// NewSQLiteSource opens an existing SQLite catalog read-only. A missing file
// is an error wrapping os.ErrNotExist; nothing is created.
func NewSQLiteSource(dbPath string) (*SQLiteSource, error) {
	if _, err := os.Stat(dbPath); err != nil {
		return nil, fmt.Errorf("failed to open catalog: %w", err)
	}
	db, err := sql.Open("sqlite3", "file:"+dbPath+"?mode=ro")
	if err != nil {
		return nil, fmt.Errorf("failed to open catalog: %w", err)
	}
	return &SQLiteSource{db: db}, nil
}

// CreateSQLiteSource opens or creates a SQLite catalog at dbPath for writing and
// initializes the schema. Parent directories are created if they do not exist.
func CreateSQLiteSource(dbPath string) (*SQLiteSource, error) {
	if dir := filepath.Dir(dbPath); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("failed to create catalog directory: %w", err)
		}
	}
	db, err := sql.Open("sqlite3", dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open catalog: %w", err)
	}
	if err := initSchema(db); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to initialize schema: %w", err)
	}
	return &SQLiteSource{db: db}, nil
}

func initSchema(db *sql.DB) error {
	schema := `
	CREATE TABLE IF NOT EXISTS documents (
		id TEXT PRIMARY KEY,
		position INTEGER NOT NULL,
		title TEXT NOT NULL DEFAULT '',
		team TEXT NOT NULL DEFAULT '',
		project TEXT NOT NULL DEFAULT '',
		type TEXT NOT NULL DEFAULT '',
		topic TEXT NOT NULL DEFAULT '',
		tags TEXT NOT NULL DEFAULT '[]',
		content TEXT NOT NULL DEFAULT ''
	);

	CREATE INDEX IF NOT EXISTS idx_documents_position ON documents(position);
	`
	_, err := db.Exec(schema)
	return err
}

// Documents returns every catalog row ordered by position.
func (s *SQLiteSource) Documents(ctx context.Context) ([]models.Document, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, title, team, project, type, topic, tags, content
		 FROM documents ORDER BY position, rowid`,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	docs := make([]models.Document, 0)
	for rows.Next() {
		var doc models.Document
		var tagsJSON string
		if err := rows.Scan(&doc.ID, &doc.Title, &doc.Team, &doc.Project, &doc.Type, &doc.Topic, &tagsJSON, &doc.Content); err != nil {
			return nil, err
		}
		if tagsJSON != "" {
			if err := json.Unmarshal([]byte(tagsJSON), &doc.Tags); err != nil {
				return nil, fmt.Errorf("failed to unmarshal tags for %s: %w", doc.ID, err)
			}
		}
		docs = append(docs, doc)
	}
	return docs, rows.Err()
}

// WriteDocuments replaces the catalog contents with docs in a single transaction.
// Positions follow slice order.
func (s *SQLiteSource) WriteDocuments(ctx context.Context, docs []models.Document) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM documents`); err != nil {
		return err
	}
	stmt, err := tx.PrepareContext(ctx,
		`INSERT INTO documents (id, position, title, team, project, type, topic, tags, content)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
	)
	if err != nil {
		return err
	}
	defer stmt.Close()

	for i, doc := range docs {
		tags := doc.Tags
		if tags == nil {
			tags = []string{}
		}
		tagsJSON, err := json.Marshal(tags)
		if err != nil {
			return fmt.Errorf("failed to marshal tags: %w", err)
		}
		if _, err := stmt.ExecContext(ctx, doc.ID, i, doc.Title, doc.Team, doc.Project, doc.Type, doc.Topic, string(tagsJSON), doc.Content); err != nil {
			return fmt.Errorf("failed to insert document %s: %w", doc.ID, err)
		}
	}
	return tx.Commit()
}

// CountDocuments returns the number of catalog rows.
func (s *SQLiteSource) CountDocuments(ctx context.Context) (int64, error) {
	var count int64
	err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM documents`).Scan(&count)
	return count, err
}

// Close closes the database connection.
func (s *SQLiteSource) Close() error {
	return s.db.Close()
}
