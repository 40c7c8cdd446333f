package sqlite

import (
	"context"
	"database/sql"
	_ "embed"

	"github.com/mesh-intelligence/userbook/pkg/types"
)

//go:embed schema.sql
var schemaSQL string

// SQL statements for the users table. Rows are listed by id so the order
// does not depend on the engine's scan order.
const (
	selectUsers = `SELECT id, name, email FROM users ORDER BY id ASC`
	insertUser  = `INSERT INTO users (name, email) VALUES (?, ?)`
	deleteUser  = `DELETE FROM users WHERE id = ?`
)

// Operation names used in StoreError and log records.
const (
	opInitSchema = "init schema"
	opListAll    = "list all"
	opInsert     = "insert"
	opDeleteByID = "delete by id"
)

// InitSchema ensures the users table exists. Idempotent.
func (b *Backend) InitSchema(ctx context.Context) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if !b.attached {
		return types.ErrStoreDetached
	}

	if _, err := b.db.ExecContext(ctx, schemaSQL); err != nil {
		return b.fail(opInitSchema, types.ErrSchema, err)
	}

	b.log.Debug("table ready", "table", types.TableUsers)
	return nil
}

// ListAll returns every row in the users table ordered by id. An empty table
// yields an empty, non-nil slice.
func (b *Backend) ListAll(ctx context.Context) ([]types.Record, error) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	if !b.attached {
		return nil, types.ErrStoreDetached
	}

	rows, err := b.db.QueryContext(ctx, selectUsers)
	if err != nil {
		return nil, b.fail(opListAll, types.ErrQuery, err)
	}
	defer rows.Close()

	records := []types.Record{}
	for rows.Next() {
		var (
			rec   types.Record
			name  sql.NullString
			email sql.NullString
		)
		if err := rows.Scan(&rec.ID, &name, &email); err != nil {
			return nil, b.fail(opListAll, types.ErrQuery, err)
		}
		rec.Name = name.String
		rec.Email = email.String
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, b.fail(opListAll, types.ErrQuery, err)
	}

	b.log.Debug("users fetched", "count", len(records))
	return records, nil
}

// Insert appends one row and returns it with the id the engine assigned.
func (b *Backend) Insert(ctx context.Context, name, email string) (types.Record, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if !b.attached {
		return types.Record{}, types.ErrStoreDetached
	}

	res, err := b.db.ExecContext(ctx, insertUser, name, email)
	if err != nil {
		return types.Record{}, b.fail(opInsert, types.ErrWrite, err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return types.Record{}, b.fail(opInsert, types.ErrWrite, err)
	}

	b.log.Debug("user added", "id", id)
	return types.Record{ID: id, Name: name, Email: email}, nil
}

// DeleteByID removes the row with the given id. A missing id is not an error.
func (b *Backend) DeleteByID(ctx context.Context, id int64) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if !b.attached {
		return types.ErrStoreDetached
	}

	res, err := b.db.ExecContext(ctx, deleteUser, id)
	if err != nil {
		return b.fail(opDeleteByID, types.ErrWrite, err)
	}

	// RowsAffected is informational only.
	n, _ := res.RowsAffected()
	b.log.Debug("user deleted", "id", id, "rows", n)
	return nil
}

// fail logs a storage failure and returns it as a StoreError.
func (b *Backend) fail(op string, kind, err error) error {
	b.log.Error("storage operation failed", "op", op, "error", err)
	return types.NewStoreError(op, kind, err)
}

var _ types.RecordStore = (*Backend)(nil)
