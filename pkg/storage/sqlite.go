package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"fitnote/local-app/pkg/log"
)

// SQLiteStore implements KeyValueStore over a single-table SQLite database.
type SQLiteStore struct {
	db     *sql.DB
	logger *log.Logger
}

// NewSQLiteStore opens (creating if necessary) the SQLite database at
// dataSourceName and prepares the key-value schema.
func NewSQLiteStore(dataSourceName string, logger *log.Logger) (*SQLiteStore, error) {
	ctx := context.Background()
	logger.Info(ctx, "Opening SQLite store", log.Fields{"dbPath": filepath.Base(dataSourceName)})

	// Ensure the directory for the database file exists
	dbDir := filepath.Dir(dataSourceName)
	if err := os.MkdirAll(dbDir, 0755); err != nil {
		logger.Error(ctx, "Failed to create database directory", log.Fields{"error": err, "directory": dbDir})
		return nil, fmt.Errorf("failed to create database directory '%s': %w", dbDir, err)
	}

	db, err := sql.Open("sqlite3", dataSourceName+"?_journal_mode=WAL&_foreign_keys=on")
	if err != nil {
		logger.Error(ctx, "Failed to open SQLite database", log.Fields{"error": err})
		return nil, fmt.Errorf("failed to open SQLite database: %w", err)
	}

	if _, err := db.Exec("PRAGMA synchronous = NORMAL"); err != nil {
		db.Close()
		logger.Error(ctx, "Failed to set SQLite synchronous pragma", log.Fields{"error": err})
		return nil, fmt.Errorf("failed to set SQLite synchronous pragma: %w", err)
	}

	// Verify the connection
	if err := db.Ping(); err != nil {
		db.Close()
		logger.Error(ctx, "Failed to verify database connection", log.Fields{"error": err})
		return nil, fmt.Errorf("failed to verify database connection: %w", err)
	}

	store := &SQLiteStore{db: db, logger: logger}
	if err := store.initSchema(); err != nil {
		db.Close()
		return nil, err
	}

	logger.Info(ctx, "SQLite store opened successfully", nil)
	return store, nil
}

// initSchema initializes the key-value table.
func (s *SQLiteStore) initSchema() error {
	_, err := s.db.Exec(`
		CREATE TABLE IF NOT EXISTS kv (
			key TEXT PRIMARY KEY,
			value BLOB NOT NULL,
			updated DATETIME NOT NULL
		);
	`)
	if err != nil {
		s.logger.Error(context.Background(), "Failed to create kv table", log.Fields{"error": err})
		return fmt.Errorf("failed to create kv table: %w", err)
	}
	return nil
}

// Get retrieves the value stored under key. A missing key yields
// (nil, false, nil).
func (s *SQLiteStore) Get(ctx context.Context, key string) ([]byte, bool, error) {
	var value []byte
	err := s.db.QueryRowContext(ctx, "SELECT value FROM kv WHERE key = ?", key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, false, nil
	}
	if err != nil {
		s.logger.Error(ctx, "Failed to read key", log.Fields{"error": err, "key": key})
		return nil, false, fmt.Errorf("%w: failed to read key '%s': %v", ErrStorage, key, err)
	}
	return value, true, nil
}

// Set stores value under key, replacing any previous value.
func (s *SQLiteStore) Set(ctx context.Context, key string, value []byte) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO kv (key, value, updated) VALUES (?, ?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated = excluded.updated
	`, key, value, time.Now())
	if err != nil {
		s.logger.Error(ctx, "Failed to write key", log.Fields{"error": err, "key": key})
		return fmt.Errorf("%w: failed to write key '%s': %v", ErrStorage, key, err)
	}
	return nil
}

// Remove deletes key. Removing an absent key is a no-op.
func (s *SQLiteStore) Remove(ctx context.Context, key string) error {
	_, err := s.db.ExecContext(ctx, "DELETE FROM kv WHERE key = ?", key)
	if err != nil {
		s.logger.Error(ctx, "Failed to remove key", log.Fields{"error": err, "key": key})
		return fmt.Errorf("%w: failed to remove key '%s': %v", ErrStorage, key, err)
	}
	return nil
}

// Close closes the database connection.
func (s *SQLiteStore) Close() error {
	s.logger.Info(context.Background(), "Closing SQLite store", nil)
	if s.db != nil {
		if err := s.db.Close(); err != nil {
			return fmt.Errorf("failed to close SQLite database: %w", err)
		}
	}
	return nil
}
