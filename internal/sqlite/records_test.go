package sqlite

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mesh-intelligence/userbook/pkg/types"
)

func TestInitSchema_Idempotent(t *testing.T) {
	ctx := context.Background()
	b := newReadyBackend(t)

	_, err := b.Insert(ctx, "Ann", "ann@x.com")
	require.NoError(t, err)
	before, err := b.ListAll(ctx)
	require.NoError(t, err)

	for i := 0; i < 3; i++ {
		require.NoError(t, b.InitSchema(ctx), "InitSchema iteration %d", i)
	}

	after, err := b.ListAll(ctx)
	require.NoError(t, err)
	assert.Equal(t, before, after)
}

func TestListAll_EmptyTable(t *testing.T) {
	b := newReadyBackend(t)

	got, err := b.ListAll(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestListAll_ReadIdempotent(t *testing.T) {
	ctx := context.Background()
	b := newReadyBackend(t)
	for i := 0; i < 5; i++ {
		_, err := b.Insert(ctx, fmt.Sprintf("user%d", i), fmt.Sprintf("user%d@x.com", i))
		require.NoError(t, err)
	}

	first, err := b.ListAll(ctx)
	require.NoError(t, err)
	second, err := b.ListAll(ctx)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestInsert_AssignsUniqueIDs(t *testing.T) {
	ctx := context.Background()
	b := newReadyBackend(t)

	seen := make(map[int64]bool)
	for i := 0; i < 10; i++ {
		before, err := b.ListAll(ctx)
		require.NoError(t, err)

		rec, err := b.Insert(ctx, fmt.Sprintf("n%d", i), fmt.Sprintf("e%d", i))
		require.NoError(t, err)
		assert.False(t, seen[rec.ID], "id %d reused", rec.ID)
		seen[rec.ID] = true

		after, err := b.ListAll(ctx)
		require.NoError(t, err)
		require.Len(t, after, len(before)+1)
		assert.Contains(t, after, rec)
	}
}

func TestInsert_DoesNotValidate(t *testing.T) {
	ctx := context.Background()
	b := newReadyBackend(t)

	rec, err := b.Insert(ctx, "", "")
	require.NoError(t, err)
	assert.Equal(t, types.Record{ID: 1}, rec)
}

func TestInsert_DuplicateEmailAllowed(t *testing.T) {
	ctx := context.Background()
	b := newReadyBackend(t)

	_, err := b.Insert(ctx, "Ann", "same@x.com")
	require.NoError(t, err)
	_, err = b.Insert(ctx, "Bo", "same@x.com")
	require.NoError(t, err)

	got, err := b.ListAll(ctx)
	require.NoError(t, err)
	assert.Len(t, got, 2)
}

func TestInsert_IDNotReusedAfterDelete(t *testing.T) {
	ctx := context.Background()
	b := newReadyBackend(t)

	_, err := b.Insert(ctx, "Ann", "ann@x.com")
	require.NoError(t, err)
	bo, err := b.Insert(ctx, "Bo", "bo@x.com")
	require.NoError(t, err)
	require.NoError(t, b.DeleteByID(ctx, bo.ID))

	cy, err := b.Insert(ctx, "Cy", "cy@x.com")
	require.NoError(t, err)
	assert.Equal(t, int64(3), cy.ID)
}

func TestDeleteByID_MissingIsNoOp(t *testing.T) {
	ctx := context.Background()
	b := newReadyBackend(t)

	_, err := b.Insert(ctx, "Ann", "ann@x.com")
	require.NoError(t, err)

	for _, id := range []int64{0, -1, 42} {
		require.NoError(t, b.DeleteByID(ctx, id), "delete %d", id)
		got, err := b.ListAll(ctx)
		require.NoError(t, err)
		assert.Len(t, got, 1)
	}
}

func TestDeleteByID_RemovesOnlyTarget(t *testing.T) {
	ctx := context.Background()
	b := newReadyBackend(t)

	ann, err := b.Insert(ctx, "Ann", "ann@x.com")
	require.NoError(t, err)
	bo, err := b.Insert(ctx, "Bo", "bo@x.com")
	require.NoError(t, err)

	require.NoError(t, b.DeleteByID(ctx, ann.ID))
	require.NoError(t, b.DeleteByID(ctx, ann.ID))

	got, err := b.ListAll(ctx)
	require.NoError(t, err)
	assert.Equal(t, []types.Record{bo}, got)
}

func TestRecordLifecycle(t *testing.T) {
	ctx := context.Background()
	b := newReadyBackend(t)

	_, err := b.Insert(ctx, "Ann", "ann@x.com")
	require.NoError(t, err)
	got, err := b.ListAll(ctx)
	require.NoError(t, err)
	assert.Equal(t, []types.Record{{ID: 1, Name: "Ann", Email: "ann@x.com"}}, got)

	_, err = b.Insert(ctx, "Bo", "bo@x.com")
	require.NoError(t, err)
	got, err = b.ListAll(ctx)
	require.NoError(t, err)
	assert.Equal(t, []types.Record{
		{ID: 1, Name: "Ann", Email: "ann@x.com"},
		{ID: 2, Name: "Bo", Email: "bo@x.com"},
	}, got)

	require.NoError(t, b.DeleteByID(ctx, 1))
	got, err = b.ListAll(ctx)
	require.NoError(t, err)
	assert.Equal(t, []types.Record{{ID: 2, Name: "Bo", Email: "bo@x.com"}}, got)
}

func TestOperations_WithoutSchema(t *testing.T) {
	ctx := context.Background()
	b := newAttachedBackend(t)

	_, err := b.ListAll(ctx)
	assert.ErrorIs(t, err, types.ErrQuery)

	_, err = b.Insert(ctx, "Ann", "ann@x.com")
	assert.ErrorIs(t, err, types.ErrWrite)

	err = b.DeleteByID(ctx, 1)
	assert.ErrorIs(t, err, types.ErrWrite)
}

func TestOperations_CanceledContext(t *testing.T) {
	b := newReadyBackend(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := b.Insert(ctx, "Ann", "ann@x.com")
	assert.ErrorIs(t, err, types.ErrWrite)
	assert.ErrorIs(t, err, context.Canceled)

	_, err = b.ListAll(ctx)
	assert.ErrorIs(t, err, types.ErrQuery)
	assert.ErrorIs(t, err, context.Canceled)
}
