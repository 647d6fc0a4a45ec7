package storage

import (
	"fmt"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/manav03panchal/timex/internal/errors"
	"github.com/manav03panchal/timex/internal/model"
)

// Helper to create an in-memory database for testing
func setupTestDB(t *testing.T) *DB {
	db, err := Open(Options{InMemory: true})
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return db
}

func newEntry(i int) *model.HistoryEntry {
	return model.NewHistoryEntry(model.CommandResolve, []string{fmt.Sprintf("T%02d", i)}, nil, "", []string{fmt.Sprintf("%02d:00:00", i)})
}

// =============================================================================
// DB Tests
// =============================================================================

func TestOpenClose(t *testing.T) {
	t.Run("in_memory", func(t *testing.T) {
		db, err := Open(Options{InMemory: true})
		require.NoError(t, err)
		assert.Equal(t, "", db.Path())
		assert.NotNil(t, db.Badger())
		assert.NoError(t, db.Close())
	})

	t.Run("empty_path_uses_in_memory", func(t *testing.T) {
		db, err := Open(Options{Path: ""})
		require.NoError(t, err)
		assert.Equal(t, "", db.Path())
		db.Close()
	})

	t.Run("on_disk", func(t *testing.T) {
		dir := filepath.Join(t.TempDir(), "db")
		db, err := Open(Options{Path: dir})
		require.NoError(t, err)
		assert.Equal(t, dir, db.Path())
		require.NoError(t, db.Close())
	})

	t.Run("unwritable_path_is_system_error", func(t *testing.T) {
		_, err := Open(Options{Path: "/proc/timex-test/db"})
		require.Error(t, err)
		assert.True(t, errors.IsSystemError(err))
	})
}

func TestDefaultPath(t *testing.T) {
	path := DefaultPath()
	assert.Contains(t, path, "timex")
	assert.Equal(t, "db", filepath.Base(path))
}

// =============================================================================
// CRUD Tests
// =============================================================================

func TestCRUD(t *testing.T) {
	db := setupTestDB(t)

	entry := newEntry(9)
	entry.SetKey(model.GenerateHistoryKey("fixed"))
	require.NoError(t, db.Set(entry))

	t.Run("get", func(t *testing.T) {
		got := &model.HistoryEntry{}
		require.NoError(t, db.Get("history:fixed", got))
		assert.Equal(t, "history:fixed", got.Key)
		assert.Equal(t, []string{"T09"}, got.Inputs)
	})

	t.Run("get_missing", func(t *testing.T) {
		err := db.Get("history:missing", &model.HistoryEntry{})
		assert.True(t, IsErrKeyNotFound(err))
	})

	t.Run("delete_keys", func(t *testing.T) {
		require.NoError(t, db.DeleteKeys([]string{"history:fixed", "history:missing"}))
		err := db.Get("history:fixed", &model.HistoryEntry{})
		assert.True(t, IsErrKeyNotFound(err))
	})
}

func TestListByPrefix(t *testing.T) {
	db := setupTestDB(t)
	for _, id := range []string{"b", "a", "c"} {
		e := newEntry(1)
		e.SetKey(model.GenerateHistoryKey(id))
		require.NoError(t, db.Set(e))
	}

	keys, err := db.ListByPrefix("history:")
	require.NoError(t, err)
	assert.Equal(t, []string{"history:a", "history:b", "history:c"}, keys)

	latest, err := GetLatestByPrefix(db, "history:", 2, newHistoryEntry)
	require.NoError(t, err)
	require.Len(t, latest, 2)
	assert.Equal(t, "history:c", latest[0].Key)
	assert.Equal(t, "history:b", latest[1].Key)

	all, err := GetLatestByPrefix(db, "history:", 0, newHistoryEntry)
	require.NoError(t, err)
	assert.Len(t, all, 3)
}

// =============================================================================
// HistoryRepo Tests
// =============================================================================

func TestHistoryRepoCreateGet(t *testing.T) {
	db := setupTestDB(t)
	repo := NewHistoryRepo(db)

	entry := newEntry(17)
	require.NoError(t, repo.Create(entry))
	assert.Contains(t, entry.Key, "history:")

	got, err := repo.Get(entry.Key)
	require.NoError(t, err)
	assert.Equal(t, entry.Inputs, got.Inputs)
	assert.Equal(t, entry.Results, got.Results)
	assert.True(t, entry.CreatedAt.Equal(got.CreatedAt))

	_, err = repo.Get("history:missing")
	require.Error(t, err)
	assert.True(t, IsErrKeyNotFound(err))
	assert.Contains(t, err.Error(), "read history:missing")
}

func TestHistoryRepoList(t *testing.T) {
	db := setupTestDB(t)
	repo := NewHistoryRepo(db)

	for i := 0; i < 5; i++ {
		require.NoError(t, repo.Create(newEntry(i)))
	}

	t.Run("newest_first", func(t *testing.T) {
		entries, err := repo.List(0)
		require.NoError(t, err)
		require.Len(t, entries, 5)
		assert.Equal(t, []string{"T04"}, entries[0].Inputs)
		assert.Equal(t, []string{"T00"}, entries[4].Inputs)
	})

	t.Run("limit", func(t *testing.T) {
		entries, err := repo.List(2)
		require.NoError(t, err)
		require.Len(t, entries, 2)
		assert.Equal(t, []string{"T03"}, entries[1].Inputs)
	})

	t.Run("count", func(t *testing.T) {
		n, err := repo.Count()
		require.NoError(t, err)
		assert.Equal(t, 5, n)
	})
}

func TestHistoryRepoPrune(t *testing.T) {
	db := setupTestDB(t)
	repo := NewHistoryRepo(db)

	for i := 0; i < 4; i++ {
		require.NoError(t, repo.Create(newEntry(i)))
	}

	removed, err := repo.Prune(10)
	require.NoError(t, err)
	assert.Equal(t, 0, removed)

	removed, err = repo.Prune(1)
	require.NoError(t, err)
	assert.Equal(t, 3, removed)

	entries, err := repo.List(0)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, []string{"T03"}, entries[0].Inputs)
}

func TestHistoryRepoClear(t *testing.T) {
	db := setupTestDB(t)
	repo := NewHistoryRepo(db)

	for i := 0; i < 3; i++ {
		require.NoError(t, repo.Create(newEntry(i)))
	}

	removed, err := repo.Clear()
	require.NoError(t, err)
	assert.Equal(t, 3, removed)

	entries, err := repo.List(0)
	require.NoError(t, err)
	assert.Empty(t, entries)

	removed, err = repo.Clear()
	require.NoError(t, err)
	assert.Equal(t, 0, removed)
}

func TestOpenLockedDirectory(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "db")
	first, err := Open(Options{Path: dir})
	require.NoError(t, err)
	defer first.Close()

	_, err = Open(Options{Path: dir})
	require.Error(t, err)
	assert.ErrorIs(t, err, errors.ErrLockHeld)
	assert.Equal(t, errors.CategoryRecoverable, errors.Classify(err))
}
