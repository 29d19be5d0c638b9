// Package storage provides functionality for persisting and retrieving
// Fitnote data through a flat key-value namespace.
package storage

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"

	"fitnote/local-app/pkg/log"
	"fitnote/local-app/pkg/model"
)

// Driver represents the type of storage backend
type Driver string

const (
	SQLite Driver = "sqlite"
	Memory Driver = "memory"
)

// ErrStorage marks faults of the storage substrate. Every error leaving
// this package wraps it, so callers can map any substrate fault to a
// single storage-failure outcome.
var ErrStorage = errors.New("storage failure")

// KeyValueStore abstracts the persistence substrate. Values are opaque
// serialized records owned by the calling component. Absence of a key is
// a normal result, not an error; each call is atomic for its single key
// only.
type KeyValueStore interface {
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Set(ctx context.Context, key string, value []byte) error
	Remove(ctx context.Context, key string) error
	Close() error
}

// NewStore creates the key-value store configured by cfg.
func NewStore(cfg *model.Config, logger *log.Logger) (KeyValueStore, error) {
	driver, err := validateDriver(cfg.StorageDriver)
	if err != nil {
		return nil, fmt.Errorf("invalid storage driver '%s': %w", cfg.StorageDriver, err)
	}

	switch driver {
	case SQLite:
		dataSourceName := filepath.Join(cfg.StorageDir, cfg.StorageFile)
		return NewSQLiteStore(dataSourceName, logger)
	case Memory:
		return NewMemoryStore(logger), nil
	default:
		return nil, fmt.Errorf("unsupported storage driver: %s", driver)
	}
}

// validateDriver checks if the provided driver is supported
func validateDriver(driver string) (Driver, error) {
	switch Driver(driver) {
	case SQLite:
		return SQLite, nil
	case Memory:
		return Memory, nil
	default:
		return "", fmt.Errorf("unsupported storage driver: %s", driver)
	}
}
