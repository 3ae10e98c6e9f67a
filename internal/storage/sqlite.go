// Package storage keeps an archive of generated mazes in SQLite.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite" // Pure Go SQLite driver

	maze "github.com/yalue/wilson_maze"
)

// ErrNotFound is returned by Load when no maze has the requested ID.
var ErrNotFound = errors.New("storage: maze not found")

// Store manages the SQLite database connection for the maze archive.
type Store struct {
	db *sql.DB
}

// Record describes one archived maze, without its cells.
type Record struct {
	ID        string
	Width     int
	Height    int
	Seed      int64
	Algorithm string
	CreatedAt time.Time
}

// Open creates or opens a SQLite database at the given path.
// It creates the parent directories if needed and runs migrations.
func Open(dbPath string) (*Store, error) {
	// Expand ~ to home directory
	if dbPath != "" && dbPath[0] == '~' {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("storage: cannot expand home directory: %w", err)
		}
		dbPath = filepath.Join(home, dbPath[1:])
	}

	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("storage: cannot create directory %s: %w", dir, err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open database: %w", err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: cannot connect to database: %w", err)
	}

	store := &Store{db: db}
	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: migration failed: %w", err)
	}
	return store, nil
}

// migrate creates the database schema if it doesn't exist.
func (s *Store) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS mazes (
			id TEXT PRIMARY KEY,
			width INTEGER NOT NULL,
			height INTEGER NOT NULL,
			seed INTEGER NOT NULL,
			algorithm TEXT NOT NULL,
			grid TEXT NOT NULL,
			created_at INTEGER NOT NULL
		);
		CREATE INDEX IF NOT EXISTS idx_mazes_created ON mazes(created_at DESC);
	`
	_, err := s.db.Exec(schema)
	return err
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// Save archives a generated grid along with the seed and algorithm that
// produced it, and returns the new record.
func (s *Store) Save(ctx context.Context, g *maze.Grid, seed int64, algorithm maze.Algorithm) (Record, error) {
	data, err := g.MarshalJSON()
	if err != nil {
		return Record{}, fmt.Errorf("storage: cannot encode maze: %w", err)
	}
	rec := Record{
		ID:        uuid.NewString(),
		Width:     g.Width(),
		Height:    g.Height(),
		Seed:      seed,
		Algorithm: algorithm.String(),
		CreatedAt: time.Now().UTC(),
	}
	_, err = s.db.ExecContext(ctx,
		`INSERT INTO mazes (id, width, height, seed, algorithm, grid, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		rec.ID, rec.Width, rec.Height, rec.Seed, rec.Algorithm, string(data), rec.CreatedAt.UnixNano())
	if err != nil {
		return Record{}, fmt.Errorf("storage: cannot save maze: %w", err)
	}
	return rec, nil
}

// Load returns the archived grid with the given ID.
func (s *Store) Load(ctx context.Context, id string) (*maze.Grid, Record, error) {
	var rec Record
	var data string
	var createdAt int64
	err := s.db.QueryRowContext(ctx,
		`SELECT id, width, height, seed, algorithm, grid, created_at
		 FROM mazes WHERE id = ?`, id).
		Scan(&rec.ID, &rec.Width, &rec.Height, &rec.Seed, &rec.Algorithm, &data, &createdAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, Record{}, ErrNotFound
	}
	if err != nil {
		return nil, Record{}, fmt.Errorf("storage: cannot load maze %s: %w", id, err)
	}
	g, err := maze.DecodeGrid([]byte(data))
	if err != nil {
		return nil, Record{}, fmt.Errorf("storage: maze %s is corrupt: %w", id, err)
	}
	rec.CreatedAt = time.Unix(0, createdAt).UTC()
	return g, rec, nil
}

// List returns the most recently archived mazes, newest first.
func (s *Store) List(ctx context.Context, limit int) ([]Record, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, width, height, seed, algorithm, created_at
		 FROM mazes ORDER BY created_at DESC LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot list mazes: %w", err)
	}
	defer rows.Close()

	var records []Record
	for rows.Next() {
		var rec Record
		var createdAt int64
		if err := rows.Scan(&rec.ID, &rec.Width, &rec.Height, &rec.Seed, &rec.Algorithm, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		// Stored as Unix nanoseconds so ORDER BY is exact.
		rec.CreatedAt = time.Unix(0, createdAt).UTC()
		records = append(records, rec)
	}
	return records, rows.Err()
}
