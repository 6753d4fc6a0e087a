// Copyright (c) 2024 Michael D Henderson. All rights reserved.

package cache

import (
	"context"
	"database/sql"
	_ "embed"
	"errors"
	"log"
	"os"
	"time"

	_ "modernc.org/sqlite"
)

//go:embed schema.sql
var schemaDDL string

// Store persists cache entries in a SQLite database: a thin wrapper
// around *sql.DB plus the path it was opened from, using
// modernc.org/sqlite so the cache never needs cgo.
type Store struct {
	path string
	db   *sql.DB
}

// Create creates a new, empty cache database at path. It is an error if
// path already exists; a caller that wants to start fresh deletes the
// file itself first.
func Create(path string) error {
	if _, err := os.Stat(path); err == nil {
		return ErrDatabaseExists
	} else if !errors.Is(err, os.ErrNotExist) {
		return err
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return err
	}
	defer func() { _ = db.Close() }()

	if err := checkForeignKeys(db); err != nil {
		return err
	}
	if _, err := db.Exec(schemaDDL); err != nil {
		return errors.Join(errors.New("cache: create schema"), err)
	}
	return nil
}

// Open opens an existing cache database, creating it first if it does
// not yet exist. A parse-result cache is best-effort: a missing cache
// database is not a caller error, it just means there's nothing cached
// yet.
func Open(path string) (*Store, error) {
	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		if err := Create(path); err != nil {
			return nil, err
		}
	} else if err != nil {
		return nil, err
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}
	if err := checkForeignKeys(db); err != nil {
		_ = db.Close()
		return nil, err
	}
	if _, err := db.Exec(schemaDDL); err != nil {
		_ = db.Close()
		return nil, errors.Join(errors.New("cache: ensure schema"), err)
	}
	return &Store{path: path, db: db}, nil
}

func checkForeignKeys(db *sql.DB) error {
	rslt, err := db.Exec("PRAGMA foreign_keys = ON")
	if err != nil {
		log.Printf("cache: foreign keys are disabled\n")
		return ErrForeignKeysDisabled
	} else if rslt == nil {
		return ErrPragmaReturnedNil
	}
	return nil
}

// Close closes the underlying database handle. Safe to call on a nil
// Store.
func (s *Store) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	err := s.db.Close()
	s.db = nil
	return err
}

// Get returns the cached Entry for key, or (nil, false, nil) on a miss.
// A hit updates last_used_at so the cache-info report and any future
// eviction policy can tell hot entries from stale ones.
func (s *Store) Get(ctx context.Context, key string) (*Entry, bool, error) {
	if s == nil || s.db == nil {
		return nil, false, ErrClosed
	}
	var payload []byte
	row := s.db.QueryRowContext(ctx, `SELECT payload FROM parse_cache WHERE key = ?`, key)
	if err := row.Scan(&payload); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, false, nil
		}
		return nil, false, err
	}
	if _, err := s.db.ExecContext(ctx, `UPDATE parse_cache SET last_used_at = ? WHERE key = ?`, time.Now().Unix(), key); err != nil {
		return nil, false, err
	}
	entry, err := unmarshalEntry(payload)
	if err != nil {
		return nil, false, err
	}
	return entry, true, nil
}

// Put inserts or replaces the cache entry for key.
func (s *Store) Put(ctx context.Context, key string, entry *Entry) error {
	if s == nil || s.db == nil {
		return ErrClosed
	}
	payload, err := entry.marshal()
	if err != nil {
		return err
	}
	fatalCount := len(entry.Fatal)
	now := time.Now().Unix()
	_, err = s.db.ExecContext(ctx, `
		INSERT INTO parse_cache (key, payload, input_bytes, fatal_count, created_at, last_used_at)
		VALUES (?, ?, ?, ?, ?, ?)
		ON CONFLICT(key) DO UPDATE SET
			payload = excluded.payload,
			input_bytes = excluded.input_bytes,
			fatal_count = excluded.fatal_count,
			last_used_at = excluded.last_used_at
	`, key, payload, entry.InputBytes, fatalCount, now, now)
	return err
}

// Info is a snapshot of store-wide statistics for the CLI's --cache-info
// report.
type Info struct {
	Path       string
	EntryCount int
	LastUsedAt time.Time
	HasEntries bool
}

// Info reports aggregate statistics about the store.
func (s *Store) Info(ctx context.Context) (Info, error) {
	if s == nil || s.db == nil {
		return Info{}, ErrClosed
	}
	info := Info{Path: s.path}
	row := s.db.QueryRowContext(ctx, `SELECT COUNT(*), COALESCE(MAX(last_used_at), 0) FROM parse_cache`)
	var count int
	var lastUsed int64
	if err := row.Scan(&count, &lastUsed); err != nil {
		return info, err
	}
	info.EntryCount = count
	info.HasEntries = count > 0
	if lastUsed > 0 {
		info.LastUsedAt = time.Unix(lastUsed, 0)
	}
	return info, nil
}
