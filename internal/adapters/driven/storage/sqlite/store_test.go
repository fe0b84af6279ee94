package sqlite

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/slidedeck/internal/core/domain"
)

// setupTestStore creates a SQLite store in a temporary directory.
func setupTestStore(t *testing.T) *Store {
	t.Helper()

	store, err := NewStore(t.TempDir())
	require.NoError(t, err)
	t.Cleanup(func() { assert.NoError(t, store.Close()) })

	return store
}

func TestNewStore_Success(t *testing.T) {
	dir := t.TempDir()

	store, err := NewStore(dir)
	require.NoError(t, err)
	defer store.Close()

	assert.Equal(t, filepath.Join(dir, DatabaseFile), store.Path())
	_, err = os.Stat(store.Path())
	assert.NoError(t, err)
}

func TestNewStore_DirectoryCreation(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "data")

	store, err := NewStore(dir)
	require.NoError(t, err)
	defer store.Close()

	info, err := os.Stat(dir)
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}

func TestNewStore_DefaultDirectory(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	store, err := NewStore("")
	require.NoError(t, err)
	defer store.Close()

	assert.Equal(t, filepath.Join(home, ".slidedeck", "data", DatabaseFile), store.Path())
}

func TestNewStore_MigrationsRecorded(t *testing.T) {
	store := setupTestStore(t)

	version, err := store.SchemaVersion(context.Background())

	require.NoError(t, err)
	assert.Equal(t, 1, version)
}

func TestNewStore_ReopenSkipsAppliedMigrations(t *testing.T) {
	dir := t.TempDir()

	first, err := NewStore(dir)
	require.NoError(t, err)
	require.NoError(t, first.StateStore().Put(context.Background(), "slides", []byte("[]")))
	require.NoError(t, first.Close())

	second, err := NewStore(dir)
	require.NoError(t, err)
	defer second.Close()

	got, err := second.StateStore().Get(context.Background(), "slides")
	require.NoError(t, err)
	assert.Equal(t, "[]", string(got))
}

func TestStore_Migrate_AppliesInOrderAndSkipsUnnumbered(t *testing.T) {
	store := setupTestStore(t)
	fsys := fstest.MapFS{
		"003_third.up.sql":    {Data: []byte("CREATE TABLE third (id INTEGER);")},
		"002_second.up.sql":   {Data: []byte("CREATE TABLE second (id INTEGER);")},
		"002_second.down.sql": {Data: []byte("DROP TABLE second;")},
		"notes.up.sql":        {Data: []byte("this is not sql")},
	}

	require.NoError(t, store.migrate(fsys))

	version, err := store.SchemaVersion(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 3, version)
}

func TestStore_Migrate_FailedMigrationIsRolledBack(t *testing.T) {
	store := setupTestStore(t)
	fsys := fstest.MapFS{
		"002_broken.up.sql": {Data: []byte("CREATE TABL nope;")},
	}

	err := store.migrate(fsys)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "002_broken.up.sql")
	version, err := store.SchemaVersion(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, version)
}

func TestStateStore_GetMissing(t *testing.T) {
	states := setupTestStore(t).StateStore()

	_, err := states.Get(context.Background(), "slides")

	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestStateStore_PutGetReplace(t *testing.T) {
	ctx := context.Background()
	states := setupTestStore(t).StateStore()

	require.NoError(t, states.Put(ctx, "slides", []byte(`[{"type":"title"}]`)))
	got, err := states.Get(ctx, "slides")
	require.NoError(t, err)
	assert.Equal(t, `[{"type":"title"}]`, string(got))

	require.NoError(t, states.Put(ctx, "slides", []byte(`[]`)))
	got, err = states.Get(ctx, "slides")
	require.NoError(t, err)
	assert.Equal(t, `[]`, string(got))
}

func TestStateStore_Delete(t *testing.T) {
	ctx := context.Background()
	states := setupTestStore(t).StateStore()

	require.NoError(t, states.Put(ctx, "slides", []byte("[]")))
	require.NoError(t, states.Delete(ctx, "slides"))
	require.NoError(t, states.Delete(ctx, "never-stored"))

	_, err := states.Get(ctx, "slides")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestStateStore_KeysAreIndependent(t *testing.T) {
	ctx := context.Background()
	states := setupTestStore(t).StateStore()

	require.NoError(t, states.Put(ctx, "a", []byte("1")))
	require.NoError(t, states.Put(ctx, "b", []byte("2")))

	a, err := states.Get(ctx, "a")
	require.NoError(t, err)
	b, err := states.Get(ctx, "b")
	require.NoError(t, err)
	assert.Equal(t, "1", string(a))
	assert.Equal(t, "2", string(b))
}
