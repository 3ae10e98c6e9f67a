package storage

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	maze "github.com/yalue/wilson_maze"
)

func openTestStore(t *testing.T) (*Store, string) {
	t.Helper()
	dbPath := filepath.Join(t.TempDir(), "nested", "mazes.db")
	store, err := Open(dbPath)
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })
	return store, dbPath
}

func TestStoreOpenCreatesFile(t *testing.T) {
	_, dbPath := openTestStore(t)
	_, err := os.Stat(dbPath)
	assert.NoError(t, err)
}

func TestStoreSaveAndLoad(t *testing.T) {
	store, _ := openTestStore(t)
	ctx := context.Background()

	g, seed, err := maze.NewMaze(9, 6, 321)
	require.NoError(t, err)
	rec, err := store.Save(ctx, g, seed, maze.Wilson)
	require.NoError(t, err)
	assert.NotEmpty(t, rec.ID)
	assert.Equal(t, 9, rec.Width)
	assert.Equal(t, 6, rec.Height)

	loaded, loadedRec, err := store.Load(ctx, rec.ID)
	require.NoError(t, err)
	assert.Equal(t, g.String(), loaded.String())
	assert.Equal(t, rec.ID, loadedRec.ID)
	assert.Equal(t, int64(321), loadedRec.Seed)
	assert.Equal(t, "wilson", loadedRec.Algorithm)
	assert.Equal(t, rec.CreatedAt.UnixNano(), loadedRec.CreatedAt.UnixNano())
}

func TestStoreLoadMissing(t *testing.T) {
	store, _ := openTestStore(t)
	_, _, err := store.Load(context.Background(), "no-such-id")
	assert.True(t, errors.Is(err, ErrNotFound))
}

func TestStoreList(t *testing.T) {
	store, _ := openTestStore(t)
	ctx := context.Background()

	var ids []string
	for seed := int64(1); seed <= 3; seed++ {
		g, _, err := maze.NewMaze(3, 3, seed)
		require.NoError(t, err)
		rec, err := store.Save(ctx, g, seed, maze.Wilson)
		require.NoError(t, err)
		ids = append(ids, rec.ID)
	}

	records, err := store.List(ctx, 10)
	require.NoError(t, err)
	require.Len(t, records, 3)
	got := []string{records[0].ID, records[1].ID, records[2].ID}
	assert.ElementsMatch(t, ids, got)
	assert.False(t, records[0].CreatedAt.Before(records[2].CreatedAt))

	records, err = store.List(ctx, 2)
	require.NoError(t, err)
	assert.Len(t, records, 2)
}
