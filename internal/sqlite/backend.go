// Package sqlite implements the SQLite RecordStore for userbook.
//
// The backend owns exactly one connection to a local database file named
// after Config.DBName inside Config.DataDir. Schema setup is a separate,
// idempotent step (InitSchema) so a caller can attach, fail to bootstrap the
// schema, and keep running with an empty store.
package sqlite

import (
	"database/sql"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sync"

	_ "modernc.org/sqlite"

	"github.com/mesh-intelligence/userbook/pkg/types"
)

const (
	driverName = "sqlite"
	dbFileExt  = ".db"

	// busyTimeoutMillis bounds how long a statement waits on a locked file.
	busyTimeoutMillis = 5000
)

// Backend implements types.RecordStore on a single SQLite database file.
type Backend struct {
	mu       sync.RWMutex
	attached bool
	config   types.Config
	path     string
	db       *sql.DB
	log      *slog.Logger
}

// Option configures a Backend.
type Option func(*Backend)

// WithLogger sets the logger used for operation tracing and failures.
func WithLogger(l *slog.Logger) Option {
	return func(b *Backend) {
		if l != nil {
			b.log = l
		}
	}
}

// NewBackend creates a new SQLite backend instance.
// The backend is not attached; call Attach with a Config to initialize.
func NewBackend(opts ...Option) *Backend {
	b := &Backend{log: slog.Default()}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// Attach opens the database file described by config. Creates DataDir if it
// does not exist. The connection is established lazily, so an unreadable or
// corrupt file surfaces from InitSchema as ErrSchema rather than from Attach.
// An existing file is opened as is; rows survive across attaches.
// Returns ErrAlreadyAttached if already attached.
func (b *Backend) Attach(config types.Config) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.attached {
		return types.ErrAlreadyAttached
	}

	if err := config.Validate(); err != nil {
		return err
	}

	dataDir := config.DataDir
	if dataDir == "" {
		dataDir = "."
	}
	if err := os.MkdirAll(dataDir, 0o755); err != nil {
		return fmt.Errorf("create data dir: %w", err)
	}

	dbPath := filepath.Join(dataDir, config.DatabaseName()+dbFileExt)
	db, err := sql.Open(driverName, dsn(dbPath))
	if err != nil {
		return fmt.Errorf("open database: %w", err)
	}

	// One owned connection: no pooling, no sharing.
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)

	b.db = db
	b.config = config
	b.path = dbPath
	b.attached = true

	b.log.Info("database opened", "path", dbPath)
	return nil
}

// Detach closes the connection. After Detach, all operations return
// ErrStoreDetached. Detach is idempotent.
func (b *Backend) Detach() error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if !b.attached {
		return nil
	}

	if b.db != nil {
		if err := b.db.Close(); err != nil {
			return fmt.Errorf("close database: %w", err)
		}
		b.db = nil
	}

	b.attached = false
	b.log.Debug("database closed", "path", b.path)
	return nil
}

// Path returns the database file path, or "" if the backend was never attached.
func (b *Backend) Path() string {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.path
}

// dsn builds the modernc.org/sqlite data source name for path.
func dsn(path string) string {
	return fmt.Sprintf("%s?_pragma=busy_timeout(%d)&_pragma=foreign_keys(1)", path, busyTimeoutMillis)
}
