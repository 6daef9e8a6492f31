package blobstore

import (
	"context"
	"os"
	"path/filepath"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/facestore/internal/fs"
)

func TestLocalStore_Lifecycle(t *testing.T) {
	tmpDir := t.TempDir()
	store := NewLocalStore(tmpDir)

	ctx := context.Background()

	// 1. Put a blob
	blobName := "alice.face"
	data := []byte("serialized embedding bytes")
	require.NoError(t, store.Put(ctx, blobName, data))

	// Verify file exists on disk, with no leftover temp files
	_, err := os.Stat(filepath.Join(tmpDir, blobName))
	require.NoError(t, err)

	entries, err := os.ReadDir(tmpDir)
	require.NoError(t, err)
	require.Len(t, entries, 1)

	// 2. Get it back
	got, err := store.Get(ctx, blobName)
	require.NoError(t, err)
	require.Equal(t, data, got)

	// 3. Exists
	ok, err := store.Exists(ctx, blobName)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = store.Exists(ctx, "bob.face")
	require.NoError(t, err)
	assert.False(t, ok)

	// 4. Overwrite fully replaces
	replacement := []byte("v2")
	require.NoError(t, store.Put(ctx, blobName, replacement))

	got, err = store.Get(ctx, blobName)
	require.NoError(t, err)
	require.Equal(t, replacement, got)

	// 5. List filters by suffix
	require.NoError(t, store.Put(ctx, "bob.face", []byte("x")))
	require.NoError(t, store.Put(ctx, "notes.txt", []byte("y")))

	names, err := store.List(ctx, ".face")
	require.NoError(t, err)
	sort.Strings(names)
	require.Equal(t, []string{"alice.face", "bob.face"}, names)
}

func TestLocalStore_GetMissing(t *testing.T) {
	store := NewLocalStore(t.TempDir())

	_, err := store.Get(context.Background(), "unknown.face")
	require.ErrorIs(t, err, ErrNotFound)
}

func TestLocalStore_ListMissingDir(t *testing.T) {
	store := NewLocalStore(filepath.Join(t.TempDir(), "never-created"))

	names, err := store.List(context.Background(), ".face")
	require.NoError(t, err)
	assert.Empty(t, names)
}

func TestLocalStore_PutCreatesRoot(t *testing.T) {
	root := filepath.Join(t.TempDir(), "nested", "embeddings")
	store := NewLocalStore(root)

	require.NoError(t, store.Put(context.Background(), "alice.face", []byte("x")))

	_, err := os.Stat(filepath.Join(root, "alice.face"))
	require.NoError(t, err)
}

func TestLocalStore_WriteFaults(t *testing.T) {
	ctx := context.Background()

	t.Run("write failure leaves no temp file", func(t *testing.T) {
		tmpDir := t.TempDir()
		faulty := fs.NewFaultyFS(nil)
		faulty.AddRule(".tmp-", fs.Fault{FailOnWrite: true})
		store := newLocalStoreFS(tmpDir, faulty)

		err := store.Put(ctx, "alice.face", []byte("x"))
		require.ErrorIs(t, err, fs.ErrInjected)

		entries, err := os.ReadDir(tmpDir)
		require.NoError(t, err)
		assert.Empty(t, entries)
	})

	t.Run("sync failure surfaces", func(t *testing.T) {
		faulty := fs.NewFaultyFS(nil)
		faulty.AddRule(".tmp-", fs.Fault{FailOnSync: true})
		store := newLocalStoreFS(t.TempDir(), faulty)

		err := store.Put(ctx, "alice.face", []byte("x"))
		require.ErrorIs(t, err, fs.ErrInjected)
	})

	t.Run("mkdir failure surfaces", func(t *testing.T) {
		faulty := fs.NewFaultyFS(nil)
		faulty.FailMkdir(fs.ErrInjected)
		store := newLocalStoreFS(t.TempDir(), faulty)

		err := store.Put(ctx, "alice.face", []byte("x"))
		require.ErrorIs(t, err, fs.ErrInjected)
	})

	t.Run("existing blob survives failed overwrite", func(t *testing.T) {
		tmpDir := t.TempDir()
		good := newLocalStoreFS(tmpDir, fs.Default)
		require.NoError(t, good.Put(ctx, "alice.face", []byte("original")))

		faulty := fs.NewFaultyFS(nil)
		faulty.AddRule(".tmp-", fs.Fault{FailOnWrite: true})
		bad := newLocalStoreFS(tmpDir, faulty)
		require.Error(t, bad.Put(ctx, "alice.face", []byte("broken")))

		got, err := good.Get(ctx, "alice.face")
		require.NoError(t, err)
		assert.Equal(t, []byte("original"), got)
	})
}
