package storage

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"veggiemarket/internal/domain/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileStore_RoundTrip(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	store, err := NewFileStore(t.TempDir())
	require.NoError(t, err)

	require.NoError(t, store.Set(ctx, "cart_guest", []byte(`[{"id":"carrot"}]`)))

	payload, err := store.Get(ctx, "cart_guest")
	require.NoError(t, err)
	assert.JSONEq(t, `[{"id":"carrot"}]`, string(payload))
}

func TestFileStore_GetMissingKey(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	store, err := NewFileStore(t.TempDir())
	require.NoError(t, err)

	_, err = store.Get(ctx, "cart_guest")
	assert.ErrorIs(t, err, repository.ErrBlobNotFound)
}

func TestFileStore_Overwrite(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	store, err := NewFileStore(t.TempDir())
	require.NoError(t, err)

	require.NoError(t, store.Set(ctx, "cart_guest", []byte("old")))
	require.NoError(t, store.Set(ctx, "cart_guest", []byte("new")))

	payload, err := store.Get(ctx, "cart_guest")
	require.NoError(t, err)
	assert.Equal(t, "new", string(payload))
}

func TestFileStore_DeleteIsIdempotent(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	store, err := NewFileStore(t.TempDir())
	require.NoError(t, err)

	require.NoError(t, store.Set(ctx, "cart_guest", []byte("x")))
	require.NoError(t, store.Delete(ctx, "cart_guest"))
	require.NoError(t, store.Delete(ctx, "cart_guest"))

	_, err = store.Get(ctx, "cart_guest")
	assert.ErrorIs(t, err, repository.ErrBlobNotFound)
}

func TestFileStore_KeyCannotEscapeDataDir(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	dir := t.TempDir()
	store, err := NewFileStore(dir)
	require.NoError(t, err)

	require.NoError(t, store.Set(ctx, "../escape", []byte("x")))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, filepath.Base(entries[0].Name()), entries[0].Name())
}
