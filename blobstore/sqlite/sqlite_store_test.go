package sqlite

import (
	"context"
	"path/filepath"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/facestore/blobstore"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()

	store, err := New(filepath.Join(t.TempDir(), "blobs.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })
	return store
}

func TestStore_Lifecycle(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	// 1. Missing blob maps to the shared sentinel
	_, err := store.Get(ctx, "alice.face")
	require.ErrorIs(t, err, blobstore.ErrNotFound)

	// 2. Put/Get round trip
	data := []byte{0x46, 0x41, 0x43, 0x31, 0x00}
	require.NoError(t, store.Put(ctx, "alice.face", data))

	got, err := store.Get(ctx, "alice.face")
	require.NoError(t, err)
	require.Equal(t, data, got)

	// 3. Upsert replaces wholesale
	require.NoError(t, store.Put(ctx, "alice.face", []byte("v2")))

	got, err = store.Get(ctx, "alice.face")
	require.NoError(t, err)
	require.Equal(t, []byte("v2"), got)

	// 4. Exists
	ok, err := store.Exists(ctx, "alice.face")
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = store.Exists(ctx, "bob.face")
	require.NoError(t, err)
	assert.False(t, ok)

	// 5. List with suffix filter
	require.NoError(t, store.Put(ctx, "bob.face", []byte("x")))
	require.NoError(t, store.Put(ctx, "other.txt", []byte("y")))

	names, err := store.List(ctx, ".face")
	require.NoError(t, err)
	sort.Strings(names)
	assert.Equal(t, []string{"alice.face", "bob.face"}, names)
}

func TestStore_SurvivesReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "blobs.db")
	ctx := context.Background()

	store, err := New(path)
	require.NoError(t, err)
	require.NoError(t, store.Put(ctx, "alice.face", []byte("persisted")))
	require.NoError(t, store.Close())

	reopened, err := New(path)
	require.NoError(t, err)
	defer reopened.Close()

	got, err := reopened.Get(ctx, "alice.face")
	require.NoError(t, err)
	assert.Equal(t, []byte("persisted"), got)
}
