// Package store persists analysis results in SQLite, keyed by content hash.
// The cache is purely additive: the analyzer produces identical results with
// or without it.
package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "github.com/mattn/go-sqlite3"
)

// ErrNotFound is returned when a lookup matches no stored document.
var ErrNotFound = errors.New("store: document not found")

// Document is a cached analysis result.
type Document struct {
	ID           int64   `json:"id"`
	Filename     string  `json:"filename"`
	ContentHash  string  `json:"content_hash"`
	PageCount    int     `json:"page_count"`
	OverallScore int     `json:"overall_score"`
	Confidence   float64 `json:"confidence"`
	ResultJSON   string  `json:"-"`
	CreatedAt    string  `json:"created_at"`
	UpdatedAt    string  `json:"updated_at"`
}

// AnalysisLog records one analysis run for diagnostics.
type AnalysisLog struct {
	DocumentID   int64
	Filename     string
	OverallScore int
	Confidence   float64
	Cached       bool
	ElapsedMs    int64
}

// Store wraps the SQLite database for all cvlens persistence.
type Store struct {
	db *sql.DB
}

// New opens (or creates) the database at dbPath and initialises the schema.
func New(dbPath string) (*Store, error) {
	dir := filepath.Dir(dbPath)
	if dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("creating db directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite3", dbPath+"?_journal_mode=WAL&_foreign_keys=on&_busy_timeout=30000")
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("pinging database: %w", err)
	}

	if _, err := db.Exec(schemaSQL); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}

	db.SetMaxOpenConns(4)
	db.SetMaxIdleConns(2)
	db.SetConnMaxLifetime(30 * time.Minute)

	return &Store{db: db}, nil
}

const docColumns = `id, filename, content_hash, page_count, overall_score, confidence, result_json, created_at, updated_at`

func scanDocument(row interface{ Scan(...any) error }) (Document, error) {
	var d Document
	err := row.Scan(&d.ID, &d.Filename, &d.ContentHash, &d.PageCount,
		&d.OverallScore, &d.Confidence, &d.ResultJSON, &d.CreatedAt, &d.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return d, ErrNotFound
	}
	if err != nil {
		return d, fmt.Errorf("scanning document: %w", err)
	}
	return d, nil
}

// GetByHash returns the cached result for a content hash, if any.
func (s *Store) GetByHash(ctx context.Context, hash string) (Document, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT `+docColumns+` FROM documents WHERE content_hash = ?`, hash)
	return scanDocument(row)
}

// Get returns a stored document by ID.
func (s *Store) Get(ctx context.Context, id int64) (Document, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT `+docColumns+` FROM documents WHERE id = ?`, id)
	return scanDocument(row)
}

// Save upserts a result by content hash and returns the row ID.
func (s *Store) Save(ctx context.Context, d Document) (int64, error) {
	res, err := s.db.ExecContext(ctx, `
		INSERT INTO documents (filename, content_hash, page_count, overall_score, confidence, result_json)
		VALUES (?, ?, ?, ?, ?, ?)
		ON CONFLICT(content_hash) DO UPDATE SET
			filename = excluded.filename,
			page_count = excluded.page_count,
			overall_score = excluded.overall_score,
			confidence = excluded.confidence,
			result_json = excluded.result_json,
			updated_at = datetime('now')`,
		d.Filename, d.ContentHash, d.PageCount, d.OverallScore, d.Confidence, d.ResultJSON)
	if err != nil {
		return 0, fmt.Errorf("saving document: %w", err)
	}

	if id, err := res.LastInsertId(); err == nil && id > 0 {
		// On conflict the last insert ID may not reflect the updated row;
		// resolve through the hash to be safe.
		existing, gerr := s.GetByHash(ctx, d.ContentHash)
		if gerr == nil {
			return existing.ID, nil
		}
		return id, nil
	}

	existing, err := s.GetByHash(ctx, d.ContentHash)
	if err != nil {
		return 0, err
	}
	return existing.ID, nil
}

// List returns all stored documents, newest first.
func (s *Store) List(ctx context.Context) ([]Document, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT `+docColumns+` FROM documents ORDER BY updated_at DESC, id DESC`)
	if err != nil {
		return nil, fmt.Errorf("listing documents: %w", err)
	}
	defer rows.Close()

	var docs []Document
	for rows.Next() {
		d, err := scanDocument(rows)
		if err != nil {
			return nil, err
		}
		docs = append(docs, d)
	}
	return docs, rows.Err()
}

// Delete removes a stored document and its log entries.
func (s *Store) Delete(ctx context.Context, id int64) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM documents WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("deleting document: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrNotFound
	}
	_, err = s.db.ExecContext(ctx, `DELETE FROM analysis_log WHERE document_id = ?`, id)
	return err
}

// LogAnalysis records one analysis run.
func (s *Store) LogAnalysis(ctx context.Context, l AnalysisLog) error {
	cached := 0
	if l.Cached {
		cached = 1
	}
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO analysis_log (document_id, filename, overall_score, confidence, cached, elapsed_ms)
		VALUES (?, ?, ?, ?, ?, ?)`,
		l.DocumentID, l.Filename, l.OverallScore, l.Confidence, cached, l.ElapsedMs)
	if err != nil {
		return fmt.Errorf("logging analysis: %w", err)
	}
	return nil
}

// Close shuts the database down.
func (s *Store) Close() error {
	return s.db.Close()
}
