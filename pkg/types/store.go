package types

import (
	"context"
	"errors"
	"fmt"
)

// RecordStore owns a single local database connection and the four
// operations on the users table. Operations are sequential and each one
// commits before it returns.
type RecordStore interface {
	// Attach opens the backend described by config. Creates DataDir if it
	// does not exist. Returns ErrAlreadyAttached if already attached.
	Attach(config Config) error

	// Detach releases the connection. Idempotent.
	Detach() error

	// InitSchema ensures the users table exists. Safe to call on every
	// startup; existing rows are never touched.
	InitSchema(ctx context.Context) error

	// ListAll returns a snapshot of every record ordered by ID ascending.
	ListAll(ctx context.Context) ([]Record, error)

	// Insert appends a record and returns it with its assigned ID. The store
	// does not validate name or email.
	Insert(ctx context.Context, name, email string) (Record, error)

	// DeleteByID removes the record with the given ID. Deleting an ID that
	// does not exist succeeds.
	DeleteByID(ctx context.Context, id int64) error
}

// Store lifecycle errors.
var (
	ErrStoreDetached   = errors.New("record store is detached")
	ErrAlreadyAttached = errors.New("record store is already attached")
)

// Storage error kinds. A *StoreError matches its kind with errors.Is.
var (
	ErrSchema = errors.New("schema error")
	ErrQuery  = errors.New("query error")
	ErrWrite  = errors.New("write error")
)

// StoreError reports a failed storage operation. Kind is one of ErrSchema,
// ErrQuery, or ErrWrite; Err is the underlying driver error.
type StoreError struct {
	Op   string
	Kind error
	Err  error
}

// NewStoreError wraps err as a StoreError of the given kind.
func NewStoreError(op string, kind, err error) *StoreError {
	return &StoreError{Op: op, Kind: kind, Err: err}
}

func (e *StoreError) Error() string {
	return fmt.Sprintf("%s: %v: %v", e.Op, e.Kind, e.Err)
}

// Unwrap exposes both the kind and the cause to errors.Is and errors.As.
func (e *StoreError) Unwrap() []error {
	return []error{e.Kind, e.Err}
}
