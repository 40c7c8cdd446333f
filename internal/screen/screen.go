// Package screen holds the state behind the single userbook screen: the
// displayed user list and the two input fields. It drives a RecordStore
// through the mount, add, and delete flows and refreshes the list after
// every mutation.
package screen

import (
	"context"
	"fmt"
	"log/slog"
	"slices"

	"github.com/mesh-intelligence/userbook/pkg/types"
)

// Alert titles and messages shown to the user.
const (
	TitleError   = "Error"
	TitleSuccess = "Success"

	MsgFillAllFields = "Please fill all fields"
	MsgUserAdded     = "User added successfully"
	MsgUserDeleted   = "User deleted successfully"
)

// Action names used in log records.
const (
	opMount   = "mount"
	opRefresh = "refresh"
	opAdd     = "add"
	opDelete  = "delete"
)

// Notifier shows a short alert to the user.
type Notifier interface {
	Alert(title, message string)
}

// NotifierFunc adapts a function to the Notifier interface.
type NotifierFunc func(title, message string)

// Alert calls f(title, message).
func (f NotifierFunc) Alert(title, message string) { f(title, message) }

// Screen mirrors the users table and the name/email inputs. It is not safe
// for concurrent use; each action runs to completion before the next.
type Screen struct {
	store  types.RecordStore
	notify Notifier
	log    *slog.Logger

	users []types.Record
	name  string
	email string
}

// New returns a Screen bound to store. A nil notifier drops alerts; a nil
// logger uses slog.Default.
func New(store types.RecordStore, notify Notifier, log *slog.Logger) *Screen {
	if notify == nil {
		notify = NotifierFunc(func(string, string) {})
	}
	if log == nil {
		log = slog.Default()
	}
	return &Screen{
		store:  store,
		notify: notify,
		log:    log,
		users:  []types.Record{},
	}
}

// Mount bootstraps the schema and loads the list. A schema failure is logged
// and Mount still attempts the refresh, so the screen comes up empty rather
// than not at all. The first error encountered is returned.
func (s *Screen) Mount(ctx context.Context) error {
	schemaErr := s.store.InitSchema(ctx)
	if schemaErr != nil {
		s.failed(opMount, schemaErr)
	}
	refreshErr := s.Refresh(ctx)
	if schemaErr != nil {
		return fmt.Errorf("mount: %w", schemaErr)
	}
	if refreshErr != nil {
		return fmt.Errorf("mount: %w", refreshErr)
	}
	return nil
}

// Refresh replaces the displayed list with a fresh snapshot. On failure the
// list is left as it was.
func (s *Screen) Refresh(ctx context.Context) error {
	users, err := s.store.ListAll(ctx)
	if err != nil {
		s.failed(opRefresh, err)
		return err
	}
	s.users = users
	return nil
}

// SetName updates the name input.
func (s *Screen) SetName(name string) { s.name = name }

// SetEmail updates the email input.
func (s *Screen) SetEmail(email string) { s.email = email }

// Name returns the current name input.
func (s *Screen) Name() string { return s.name }

// Email returns the current email input.
func (s *Screen) Email() string { return s.email }

// Users returns a copy of the displayed list.
func (s *Screen) Users() []types.Record {
	return slices.Clone(s.users)
}

// Add inserts the current inputs as a new user. Empty fields are rejected
// with an alert before the store is touched. On success the inputs are
// cleared and the list is refreshed.
func (s *Screen) Add(ctx context.Context) (types.Record, error) {
	name, email, err := types.NewRecordInput(s.name, s.email)
	if err != nil {
		s.notify.Alert(TitleError, MsgFillAllFields)
		return types.Record{}, err
	}

	rec, err := s.store.Insert(ctx, name, email)
	if err != nil {
		s.failed(opAdd, err)
		return types.Record{}, err
	}

	s.name = ""
	s.email = ""
	if err := s.Refresh(ctx); err != nil {
		return rec, err
	}
	s.notify.Alert(TitleSuccess, MsgUserAdded)
	return rec, nil
}

// Delete removes the user with the given id and refreshes the list.
func (s *Screen) Delete(ctx context.Context, id int64) error {
	if err := s.store.DeleteByID(ctx, id); err != nil {
		s.failed(opDelete, err, "id", id)
		return err
	}
	if err := s.Refresh(ctx); err != nil {
		return err
	}
	s.notify.Alert(TitleSuccess, MsgUserDeleted)
	return nil
}

// failed logs a screen action that the store rejected. The store reports its
// own failure at error level; this record ties it to the user action.
func (s *Screen) failed(op string, err error, attrs ...any) {
	s.log.Warn("screen action failed", append([]any{"op", op, "error", err}, attrs...)...)
}
