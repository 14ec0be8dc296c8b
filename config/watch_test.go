package config

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func waitChanged(t *testing.T, w *StoreWatcher) bool {
	t.Helper()
	select {
	case _, ok := <-w.Changed():
		return ok
	case <-time.After(2 * time.Second):
		return false
	}
}

func TestStoreWatcherSeesWrites(t *testing.T) {
	store := NewFileStore(filepath.Join(t.TempDir(), "nested", StoreFileName))
	w, err := store.Watch()
	require.NoError(t, err)
	defer w.Close()

	require.NoError(t, store.Set("k", []byte(`1`)))
	assert.True(t, waitChanged(t, w), "set")

	// drain whatever else the rename produced
	time.Sleep(50 * time.Millisecond)
	select {
	case <-w.Changed():
	default:
	}

	require.NoError(t, store.Delete("k"))
	assert.True(t, waitChanged(t, w), "delete")
}

func TestStoreWatcherCloseEndsChannel(t *testing.T) {
	store := NewFileStore(filepath.Join(t.TempDir(), StoreFileName))
	w, err := store.Watch()
	require.NoError(t, err)

	require.NoError(t, w.Close())
	for range w.Changed() {
	}
}
