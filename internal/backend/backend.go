// Package backend opens the storage.Storage selected by configuration.
package backend

import (
	"context"
	"fmt"

	"tasklite/internal/backend/filestore"
	"tasklite/internal/backend/sqlitestore"
	"tasklite/internal/config"
	"tasklite/internal/storage"
)

// Open returns the backend named by cfg.Backend. The result may also
// implement io.Closer; callers should close it when done.
func Open(ctx context.Context, cfg *config.Config) (storage.Storage, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	logger := cfg.Log().With("backend", cfg.Backend)
	switch cfg.Backend {
	case config.BackendFile:
		return filestore.New(cfg.StorePath(), logger)
	case config.BackendSQLite:
		if err := cfg.EnsureDataDir(); err != nil {
			return nil, fmt.Errorf("creating data directory: %w", err)
		}
		return sqlitestore.Open(cfg.DatabasePath(), logger)
	case config.BackendMemory:
		return storage.NewMemory(), nil
	default:
		return nil, config.ValidateBackend(cfg.Backend)
	}
}
