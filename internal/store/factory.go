package store

import (
	"context"
	"fmt"

	"taskdesk/internal/config"
)

// Open selects a Store implementation from cfg.StoreDriver:
// file (default), sqlite, postgres, or memory.
func Open(ctx context.Context, cfg config.Config) (Store, error) {
	switch cfg.StoreDriver {
	case "", "file":
		return NewFile(cfg.StoreDir)
	case "sqlite":
		return OpenSQLite(ctx, cfg.StoreDSN)
	case "postgres":
		return OpenPostgres(ctx, cfg.StoreDSN)
	case "memory":
		return NewMemory(), nil
	default:
		return nil, fmt.Errorf("store: unknown driver %q", cfg.StoreDriver)
	}
}
