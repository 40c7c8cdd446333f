// Package sqlite provides the public API for the SQLite RecordStore.
// This package exposes the factory function for creating SQLite backends
// while keeping implementation details internal.
package sqlite

import (
	"log/slog"

	"github.com/mesh-intelligence/userbook/internal/sqlite"
	"github.com/mesh-intelligence/userbook/pkg/types"
)

// NewBackend creates a new SQLite RecordStore. A nil logger uses slog.Default.
// The backend is not attached; call Attach with a Config to initialize.
//
// Example:
//
//	store := sqlite.NewBackend(nil)
//	err := store.Attach(types.Config{
//	    Backend: types.BackendSQLite,
//	    DataDir: ".userbook-db",
//	})
//	defer store.Detach()
//	err = store.InitSchema(ctx)
func NewBackend(logger *slog.Logger) types.RecordStore {
	return sqlite.NewBackend(sqlite.WithLogger(logger))
}
