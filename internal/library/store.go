package library

import (
	"context"
	"database/sql"
	"fmt"
	"path/filepath"

	"github.com/gofrs/flock"
	_ "modernc.org/sqlite"

	"subtext/internal/config"
)

// databaseFileName is the SQLite file kept inside Library.DatabaseDir.
const databaseFileName = "library.db"

// Store provides persistence for the transcript library.
type Store struct {
	db   *sql.DB
	path string
}

// Open connects to the library database, creating it on first use. The
// schema check runs under a file lock so concurrent first runs do not
// race on schema creation.
func Open(cfg *config.Config) (*Store, error) {
	if err := cfg.EnsureDirectories(); err != nil {
		return nil, fmt.Errorf("ensure directories: %w", err)
	}

	dbPath := filepath.Join(cfg.Library.DatabaseDir, databaseFileName)
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	pragmas := []string{
		"PRAGMA journal_mode=WAL",
		"PRAGMA foreign_keys = ON",
		"PRAGMA busy_timeout = 5000",
	}
	for _, pragma := range pragmas {
		if _, execErr := db.Exec(pragma); execErr != nil {
			_ = db.Close()
			return nil, fmt.Errorf("apply pragma %q: %w", pragma, execErr)
		}
	}

	store := &Store{db: db, path: dbPath}

	lock := flock.New(dbPath + ".lock")
	if err := lock.Lock(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("acquire library lock: %w", err)
	}
	initErr := store.initSchema(context.Background())
	if unlockErr := lock.Unlock(); unlockErr != nil && initErr == nil {
		initErr = fmt.Errorf("release library lock: %w", unlockErr)
	}
	if initErr != nil {
		_ = db.Close()
		return nil, initErr
	}

	return store, nil
}

// Path returns the location of the backing database file.
func (s *Store) Path() string {
	return s.path
}

// Close releases the underlying database handle.
func (s *Store) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}
