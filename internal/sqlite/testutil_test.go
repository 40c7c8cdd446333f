package sqlite

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/mesh-intelligence/userbook/pkg/types"
)

// quietLogger discards all log output.
func quietLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// newAttachedBackend attaches a backend in a temp dir and detaches it on cleanup.
func newAttachedBackend(t *testing.T) *Backend {
	t.Helper()
	b := NewBackend(WithLogger(quietLogger()))
	require.NoError(t, b.Attach(types.Config{
		Backend: types.BackendSQLite,
		DataDir: t.TempDir(),
	}))
	t.Cleanup(func() { b.Detach() })
	return b
}

// newReadyBackend returns an attached backend with the schema in place.
func newReadyBackend(t *testing.T) *Backend {
	t.Helper()
	b := newAttachedBackend(t)
	require.NoError(t, b.InitSchema(context.Background()))
	return b
}
