package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite" // driver: sqlite

	"github.com/dotcommander/kiroscore/internal/report"
)

// ErrNotFound is returned when no analysis exists for an id.
var ErrNotFound = errors.New("analysis not found")

const schemaSQL = `
CREATE TABLE IF NOT EXISTS analyses (
	id         TEXT PRIMARY KEY,
	source     TEXT NOT NULL DEFAULT '',
	title      TEXT NOT NULL DEFAULT '',
	best_match TEXT NOT NULL,
	viability  REAL NOT NULL,
	payload    TEXT NOT NULL,
	created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
);
CREATE INDEX IF NOT EXISTS idx_analyses_created_at ON analyses(created_at);
`

// Record summarizes one persisted analysis.
type Record struct {
	ID        string    `json:"id"`
	Source    string    `json:"source,omitempty"`
	Title     string    `json:"title,omitempty"`
	BestMatch string    `json:"best_match"`
	Viability float64   `json:"viability"`
	CreatedAt time.Time `json:"created_at"`
}

// Store persists scored analyses in sqlite, keyed by an opaque id.
type Store struct {
	db *sql.DB
}

// Open opens the analysis database and ensures the schema exists.
func Open(ctx context.Context, path string) (*Store, error) {
	dsn := fmt.Sprintf("file:%s?cache=shared&mode=rwc&_pragma=busy_timeout(5000)", path)
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("error opening database: %w", err)
	}
	if err := db.PingContext(ctx); err != nil {
		return nil, fmt.Errorf("error pinging database: %w", err)
	}
	if _, err := db.ExecContext(ctx, schemaSQL); err != nil {
		return nil, fmt.Errorf("error ensuring schema: %w", err)
	}
	return &Store{db: db}, nil
}

// Close closes the underlying database.
func (s *Store) Close() error {
	return s.db.Close()
}

// Save persists a report and returns its generated id.
func (s *Store) Save(ctx context.Context, r report.Report) (string, error) {
	id := uuid.NewString()
	r.ID = id

	payload, err := json.Marshal(r)
	if err != nil {
		return "", fmt.Errorf("error marshaling report: %w", err)
	}

	_, err = s.db.ExecContext(ctx,
		`INSERT INTO analyses (id, source, title, best_match, viability, payload) VALUES (?, ?, ?, ?, ?, ?)`,
		id, r.Source, r.Title, string(r.Categories.BestMatch), r.Viability, string(payload),
	)
	if err != nil {
		return "", fmt.Errorf("error inserting analysis: %w", err)
	}
	return id, nil
}

// Get loads a persisted report by id.
func (s *Store) Get(ctx context.Context, id string) (report.Report, error) {
	var payload string
	err := s.db.QueryRowContext(ctx,
		`SELECT payload FROM analyses WHERE id = ?`, id,
	).Scan(&payload)
	if errors.Is(err, sql.ErrNoRows) {
		return report.Report{}, ErrNotFound
	}
	if err != nil {
		return report.Report{}, fmt.Errorf("error loading analysis: %w", err)
	}

	var r report.Report
	if err := json.Unmarshal([]byte(payload), &r); err != nil {
		return report.Report{}, fmt.Errorf("error unmarshaling analysis %s: %w", id, err)
	}
	return r, nil
}

// List returns summaries of all persisted analyses, newest first.
func (s *Store) List(ctx context.Context) ([]Record, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, source, title, best_match, viability, created_at FROM analyses ORDER BY created_at DESC`)
	if err != nil {
		return nil, fmt.Errorf("error listing analyses: %w", err)
	}
	defer rows.Close()

	var records []Record
	for rows.Next() {
		var rec Record
		if err := rows.Scan(&rec.ID, &rec.Source, &rec.Title, &rec.BestMatch, &rec.Viability, &rec.CreatedAt); err != nil {
			return nil, fmt.Errorf("error scanning analysis row: %w", err)
		}
		records = append(records, rec)
	}
	return records, rows.Err()
}
