package crack

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTextStoreSaveMergesWithExisting(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cache.txt")
	store := NewTextStore(path)

	require.NoError(t, store.Save(map[string]string{"aaaa": "first"}))
	require.NoError(t, store.Save(map[string]string{"aaaa": "usurper", "bbbb": "second"}))

	got, err := store.Load()
	require.NoError(t, err)
	assert.Equal(t, map[string]string{"aaaa": "first", "bbbb": "second"}, got)
	assert.NoError(t, store.Close())
}

func TestTextStoreLoadMissingFile(t *testing.T) {
	store := NewTextStore(filepath.Join(t.TempDir(), "absent.txt"))
	got, err := store.Load()
	require.NoError(t, err)
	assert.Empty(t, got)
}

func openTestStore(t *testing.T) *SQLStore {
	t.Helper()
	store, err := OpenSQLStore(filepath.Join(t.TempDir(), "results.db"))
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })
	return store
}

func TestSQLStoreSaveAndLoad(t *testing.T) {
	store := openTestStore(t)

	require.NoError(t, store.Save(map[string]string{"aaaa": "password", "bbbb": "hunter2"}))

	got, err := store.Load()
	require.NoError(t, err)
	assert.Equal(t, map[string]string{"aaaa": "password", "bbbb": "hunter2"}, got)
}

func TestSQLStoreSaveKeepsFirstPlaintext(t *testing.T) {
	store := openTestStore(t)

	require.NoError(t, store.Save(map[string]string{"aaaa": "original"}))
	require.NoError(t, store.Save(map[string]string{"aaaa": "usurper", "bbbb": "fresh"}))

	got, err := store.Load()
	require.NoError(t, err)
	assert.Equal(t, "original", got["aaaa"])
	assert.Equal(t, "fresh", got["bbbb"])
}

func TestSQLStoreRecordRun(t *testing.T) {
	store := openTestStore(t)
	started := time.Now().Add(-time.Minute)
	finished := time.Now()

	id, err := store.RecordRun("run-1", "sha1", 12345, 7, started, finished)
	require.NoError(t, err)
	assert.Equal(t, "run-1", id)

	// An empty ID gets a generated UUID.
	id2, err := store.RecordRun("", "sha1", 1, 0, started, finished)
	require.NoError(t, err)
	assert.NotEmpty(t, id2)
	assert.NotEqual(t, id, id2)

	// Recording the same ID twice violates the primary key.
	_, err = store.RecordRun("run-1", "sha1", 1, 0, started, finished)
	assert.Error(t, err)
}
