// Package storage provides the SQLite animation catalog.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver

	"github.com/vovakirdan/tui-animator/internal/anim"
	"github.com/vovakirdan/tui-animator/internal/anim/formats"
)

// ErrNotFound is returned when no catalog entry has the requested name.
var ErrNotFound = errors.New("storage: animation not found")

// Store manages the SQLite database connection for the catalog.
type Store struct {
	db *sql.DB
}

// Animation is one catalog entry. The catalog keeps the input document;
// models are rebuilt from Source on demand.
type Animation struct {
	ID        int64
	Name      string
	Title     string
	Format    string // "text" or "yaml"
	Source    []byte
	Shapes    int
	Ticks     int
	CreatedAt time.Time
}

// NewAnimation describes m for the catalog. The model must pass its
// integrity checks, since its tick count is stored alongside it.
func NewAnimation(name, title, format string, source []byte, m *anim.Model) (Animation, error) {
	ticks, err := m.NumTicks()
	if err != nil {
		return Animation{}, fmt.Errorf("storage: %s: %w", name, err)
	}
	return Animation{
		Name:   name,
		Title:  title,
		Format: format,
		Source: source,
		Shapes: m.Len(),
		Ticks:  ticks,
	}, nil
}

// Model parses the stored source.
func (a *Animation) Model() (*anim.Model, error) {
	return formats.ParseBytes(a.Source, formats.Ext(a.Format))
}

// PlayStats contains aggregated playback statistics for an animation.
type PlayStats struct {
	Name         string
	Plays        int
	TicksWatched int64
	LastPlayed   time.Time
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

	// Create parent directories
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
		CREATE TABLE IF NOT EXISTS animations (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			name TEXT NOT NULL UNIQUE,
			title TEXT NOT NULL DEFAULT '',
			format TEXT NOT NULL,
			source BLOB NOT NULL,
			shapes INTEGER NOT NULL DEFAULT 0,
			ticks INTEGER NOT NULL DEFAULT 0,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);

		CREATE TABLE IF NOT EXISTS plays (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			animation TEXT NOT NULL,
			ticks_watched INTEGER NOT NULL DEFAULT 0,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_plays_animation ON plays(animation);
	`

	_, err := s.db.Exec(schema)
	return err
}

// Close closes the database connection.
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// SaveAnimation stores a, replacing any entry with the same name.
// Returns the ID of the stored record.
func (s *Store) SaveAnimation(a Animation) (int64, error) {
	if a.Name == "" {
		return 0, errors.New("storage: animation name is empty")
	}

	_, err := s.db.Exec(
		`INSERT INTO animations (name, title, format, source, shapes, ticks)
		 VALUES (?, ?, ?, ?, ?, ?)
		 ON CONFLICT(name) DO UPDATE SET
		   title = excluded.title,
		   format = excluded.format,
		   source = excluded.source,
		   shapes = excluded.shapes,
		   ticks = excluded.ticks`,
		a.Name, a.Title, a.Format, a.Source, a.Shapes, a.Ticks,
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save animation: %w", err)
	}

	var id int64
	if err := s.db.QueryRow("SELECT id FROM animations WHERE name = ?", a.Name).Scan(&id); err != nil {
		return 0, fmt.Errorf("storage: cannot get saved ID: %w", err)
	}
	return id, nil
}

// GetAnimation retrieves an animation by name.
func (s *Store) GetAnimation(name string) (*Animation, error) {
	var a Animation
	var createdAt any

	err := s.db.QueryRow(
		`SELECT id, name, title, format, source, shapes, ticks, created_at
		 FROM animations
		 WHERE name = ?`,
		name,
	).Scan(&a.ID, &a.Name, &a.Title, &a.Format, &a.Source, &a.Shapes, &a.Ticks, &createdAt)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, name)
	}
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query animation: %w", err)
	}

	a.CreatedAt = parseTime(createdAt)
	return &a, nil
}

// ListAnimations retrieves every catalog entry ordered by name.
// Sources are left empty; use GetAnimation to load one.
func (s *Store) ListAnimations() ([]Animation, error) {
	rows, err := s.db.Query(
		`SELECT id, name, title, format, shapes, ticks, created_at
		 FROM animations
		 ORDER BY name`,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query animations: %w", err)
	}
	defer rows.Close()

	var entries []Animation
	for rows.Next() {
		var a Animation
		var createdAt any
		if err := rows.Scan(&a.ID, &a.Name, &a.Title, &a.Format, &a.Shapes, &a.Ticks, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		a.CreatedAt = parseTime(createdAt)
		entries = append(entries, a)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return entries, nil
}

// DeleteAnimation removes an animation and its play history.
func (s *Store) DeleteAnimation(name string) error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("storage: cannot begin transaction: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck // no-op after Commit

	res, err := tx.Exec("DELETE FROM animations WHERE name = ?", name)
	if err != nil {
		return fmt.Errorf("storage: cannot delete animation: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("storage: cannot delete animation: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("%w: %s", ErrNotFound, name)
	}

	if _, err := tx.Exec("DELETE FROM plays WHERE animation = ?", name); err != nil {
		return fmt.Errorf("storage: cannot clear plays: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("storage: cannot commit delete: %w", err)
	}
	return nil
}

// RecordPlay records that an animation was watched for the given number of ticks.
// Plays are kept for any name, including animations loaded from files.
// Returns the ID of the inserted record.
func (s *Store) RecordPlay(name string, ticksWatched int) (int64, error) {
	result, err := s.db.Exec(
		"INSERT INTO plays (animation, ticks_watched) VALUES (?, ?)",
		name, max(ticksWatched, 0),
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot record play: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}

	return id, nil
}

// PlayCount returns how many times an animation was played.
func (s *Store) PlayCount(name string) (int, error) {
	var n int
	if err := s.db.QueryRow("SELECT COUNT(*) FROM plays WHERE animation = ?", name).Scan(&n); err != nil {
		return 0, fmt.Errorf("storage: cannot count plays: %w", err)
	}
	return n, nil
}

// GetPlayStats retrieves aggregated playback statistics for an animation.
func (s *Store) GetPlayStats(name string) (*PlayStats, error) {
	stats := &PlayStats{Name: name}

	err := s.db.QueryRow(
		`SELECT COUNT(*), COALESCE(SUM(ticks_watched), 0)
		 FROM plays WHERE animation = ?`,
		name,
	).Scan(&stats.Plays, &stats.TicksWatched)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get play stats: %w", err)
	}

	var lastPlayed any
	err = s.db.QueryRow(
		`SELECT created_at FROM plays WHERE animation = ? ORDER BY created_at DESC, id DESC LIMIT 1`,
		name,
	).Scan(&lastPlayed)
	if err != nil && !errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("storage: cannot get last played: %w", err)
	}
	if err == nil {
		stats.LastPlayed = parseTime(lastPlayed)
	}

	return stats, nil
}

// parseTime handles both time.Time and string datetimes.
func parseTime(v any) time.Time {
	switch v := v.(type) {
	case time.Time:
		return v
	case string:
		if parsed, err := time.Parse("2006-01-02 15:04:05", v); err == nil {
			return parsed
		}
	}
	return time.Time{}
}
