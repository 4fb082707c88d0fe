package storage

import (
	"context"
	"log/slog"
	"testing"

	"veggiemarket/internal/domain/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testItem struct {
	ID    string `json:"id"`
	Count int    `json:"count"`
}

func newTestStore(t *testing.T) (*ScopedStore[testItem], repository.BlobStore) {
	t.Helper()
	blobs := NewMemoryStore()

	return NewScopedStore[testItem]("cart", blobs, slog.Default()), blobs
}

func TestScopedStore_Key(t *testing.T) {
	t.Parallel()

	store, _ := newTestStore(t)

	assert.Equal(t, "cart_guest", store.Key("guest"))
	assert.Equal(t, "cart_42", store.Key("42"))
}

func TestScopedStore_RoundTrip(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	store, _ := newTestStore(t)

	items := []testItem{{ID: "carrot", Count: 2}, {ID: "kale", Count: 1}}
	require.NoError(t, store.Save(ctx, "guest", items))

	loaded, err := store.Load(ctx, "guest")
	require.NoError(t, err)
	assert.Equal(t, items, loaded)
}

func TestScopedStore_LoadMissingScope(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	store, _ := newTestStore(t)

	loaded, err := store.Load(ctx, "nobody")
	require.NoError(t, err)
	assert.Empty(t, loaded)
}

func TestScopedStore_ScopesAreIsolated(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	store, _ := newTestStore(t)

	require.NoError(t, store.Save(ctx, "guest", []testItem{{ID: "carrot", Count: 1}}))
	require.NoError(t, store.Save(ctx, "alice", []testItem{{ID: "kale", Count: 3}}))

	guest, err := store.Load(ctx, "guest")
	require.NoError(t, err)
	alice, err := store.Load(ctx, "alice")
	require.NoError(t, err)

	assert.Equal(t, "carrot", guest[0].ID)
	assert.Equal(t, "kale", alice[0].ID)
}

func TestScopedStore_SaveEmptyRemovesKey(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	store, blobs := newTestStore(t)

	require.NoError(t, store.Save(ctx, "guest", []testItem{{ID: "carrot", Count: 1}}))
	require.NoError(t, store.Save(ctx, "guest", nil))

	_, err := blobs.Get(ctx, store.Key("guest"))
	assert.ErrorIs(t, err, repository.ErrBlobNotFound)
}

func TestScopedStore_CorruptPayloadDiscarded(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	store, blobs := newTestStore(t)

	require.NoError(t, blobs.Set(ctx, store.Key("guest"), []byte("{not json")))

	loaded, err := store.Load(ctx, "guest")
	require.NoError(t, err)
	assert.Empty(t, loaded)

	// The corrupt entry must be gone, not retried on every load.
	_, err = blobs.Get(ctx, store.Key("guest"))
	assert.ErrorIs(t, err, repository.ErrBlobNotFound)
}

func TestScopedStore_Clear(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	store, blobs := newTestStore(t)

	require.NoError(t, store.Save(ctx, "guest", []testItem{{ID: "carrot", Count: 1}}))
	require.NoError(t, store.Clear(ctx, "guest"))

	_, err := blobs.Get(ctx, store.Key("guest"))
	assert.ErrorIs(t, err, repository.ErrBlobNotFound)
}
