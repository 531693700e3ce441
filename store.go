package docsite

import (
	"bytes"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"
)

// Snapshot is a validated site config recorded at a point in time.
type Snapshot struct {
	ID        string      `json:"id"`
	Digest    string      `json:"digest"`
	Title     string      `json:"title"`
	Source    string      `json:"source"`
	CreatedAt time.Time   `json:"createdAt"`
	Config    *SiteConfig `json:"-"`
}

// Store wraps a SQLite database of config snapshots.
type Store struct {
	db *sql.DB
}

// NewStore opens (or creates) the SQLite database at path, ensures the data
// directory exists, and creates the schema.
func NewStore(path string) (*Store, error) {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}
	// WAL lets the inspector read while the CLI records a snapshot.
	if _, err := db.Exec(`
		PRAGMA journal_mode=WAL;
		PRAGMA busy_timeout=5000;
		PRAGMA synchronous=NORMAL;
	`); err != nil {
		db.Close()
		return nil, err
	}
	db.SetMaxOpenConns(4)
	db.SetMaxIdleConns(4)
	s := &Store{db: db}
	if err := s.ensureSchema(); err != nil {
		db.Close()
		return nil, err
	}
	return s, nil
}

// Close closes the underlying database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) ensureSchema() error {
	_, err := s.db.Exec(`
CREATE TABLE IF NOT EXISTS snapshots (
    id TEXT PRIMARY KEY,
    digest TEXT NOT NULL UNIQUE,
    title TEXT NOT NULL,
    source TEXT NOT NULL,
    created_at INTEGER NOT NULL,
    document TEXT NOT NULL
);
CREATE INDEX IF NOT EXISTS snapshots_created_at ON snapshots(created_at);
`)
	return err
}

// Save records c unless a snapshot with the same digest already exists. It
// returns the stored snapshot and whether a new row was written.
func (s *Store) Save(c *SiteConfig, source string) (Snapshot, bool, error) {
	digest := c.Digest()
	if existing, err := s.getBy(`digest = ?`, digest); err == nil {
		return existing, false, nil
	} else if !errors.Is(err, ErrSnapshotNotFound) {
		return Snapshot{}, false, err
	}

	doc, err := c.MarshalJSON()
	if err != nil {
		return Snapshot{}, false, err
	}
	snap := Snapshot{
		ID:        uuid.NewString(),
		Digest:    digest,
		Title:     c.Title(),
		Source:    source,
		CreatedAt: time.Now().UTC().Truncate(time.Millisecond),
		Config:    c,
	}
	_, err = s.db.Exec(`INSERT INTO snapshots (id, digest, title, source, created_at, document) VALUES (?, ?, ?, ?, ?, ?)`,
		snap.ID, snap.Digest, snap.Title, snap.Source, snap.CreatedAt.UnixMilli(), string(doc))
	if err != nil {
		return Snapshot{}, false, fmt.Errorf("insert snapshot: %w", err)
	}
	return snap, true, nil
}

// List returns snapshot metadata, newest first. Config is not populated.
func (s *Store) List() ([]Snapshot, error) {
	rows, err := s.db.Query(`SELECT id, digest, title, source, created_at FROM snapshots ORDER BY created_at DESC, rowid DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var snaps []Snapshot
	for rows.Next() {
		var snap Snapshot
		var created int64
		if err := rows.Scan(&snap.ID, &snap.Digest, &snap.Title, &snap.Source, &created); err != nil {
			return nil, err
		}
		snap.CreatedAt = time.UnixMilli(created).UTC()
		snaps = append(snaps, snap)
	}
	return snaps, rows.Err()
}

// Get returns the snapshot with the given ID, with its config rebuilt.
func (s *Store) Get(id string) (Snapshot, error) {
	return s.getBy(`id = ?`, id)
}

// Latest returns the most recently recorded snapshot.
func (s *Store) Latest() (Snapshot, error) {
	return s.getBy(`1 = 1 ORDER BY created_at DESC, rowid DESC LIMIT 1`)
}

// Delete removes a snapshot by ID.
func (s *Store) Delete(id string) error {
	res, err := s.db.Exec(`DELETE FROM snapshots WHERE id = ?`, id)
	if err != nil {
		return err
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return ErrSnapshotNotFound
	}
	return nil
}

func (s *Store) getBy(where string, args ...any) (Snapshot, error) {
	var snap Snapshot
	var created int64
	var doc string
	err := s.db.QueryRow(`SELECT id, digest, title, source, created_at, document FROM snapshots WHERE `+where, args...).
		Scan(&snap.ID, &snap.Digest, &snap.Title, &snap.Source, &created, &doc)
	if errors.Is(err, sql.ErrNoRows) {
		return Snapshot{}, ErrSnapshotNotFound
	}
	if err != nil {
		return Snapshot{}, err
	}
	snap.CreatedAt = time.UnixMilli(created).UTC()

	d, err := Decode(bytes.NewReader([]byte(doc)), FormatJSON)
	if err != nil {
		return Snapshot{}, fmt.Errorf("decode snapshot %s: %w", snap.ID, err)
	}
	cfg, err := Build(d)
	if err != nil {
		return Snapshot{}, fmt.Errorf("rebuild snapshot %s: %w", snap.ID, err)
	}
	snap.Config = cfg
	return snap, nil
}
