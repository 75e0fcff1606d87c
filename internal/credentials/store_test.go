package credentials

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/jobtrack/internal/types"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := NewStore(t.TempDir())
	require.NoError(t, err)
	return store
}

func TestStore_SaveLoadRoundTrip(t *testing.T) {
	store := newTestStore(t)
	identity := types.Identity{ID: 42, Username: "operative", Email: "op@example.com"}

	require.NoError(t, store.Save("tok-abc", identity))

	token, loaded, ok := store.Load()
	require.True(t, ok)
	assert.Equal(t, "tok-abc", token)
	assert.Equal(t, identity, loaded)
}

func TestStore_LoadMissingFile(t *testing.T) {
	store := newTestStore(t)

	_, _, ok := store.Load()
	assert.False(t, ok)
}

func TestStore_LoadCorruptJSON(t *testing.T) {
	store := newTestStore(t)
	require.NoError(t, os.WriteFile(store.Path(), []byte("{not json"), 0o600))

	_, _, ok := store.Load()
	assert.False(t, ok, "corrupt persisted state must degrade to logged-out")
}

func TestStore_LoadPartialPair(t *testing.T) {
	store := newTestStore(t)

	// Token without identity must never surface as a half-populated session.
	require.NoError(t, os.WriteFile(store.Path(), []byte(`{"token":"tok-abc"}`), 0o600))
	_, _, ok := store.Load()
	assert.False(t, ok)

	// Identity without token is equally invalid.
	require.NoError(t, os.WriteFile(store.Path(), []byte(`{"identity":{"id":1,"username":"x","email":"x@example.com"}}`), 0o600))
	_, _, ok = store.Load()
	assert.False(t, ok)
}

func TestStore_SaveRejectsEmptyToken(t *testing.T) {
	store := newTestStore(t)
	assert.Error(t, store.Save("", types.Identity{ID: 1}))
}

func TestStore_SaveOverwrites(t *testing.T) {
	store := newTestStore(t)
	require.NoError(t, store.Save("tok-old", types.Identity{ID: 1, Username: "old"}))
	require.NoError(t, store.Save("tok-new", types.Identity{ID: 2, Username: "new"}))

	token, identity, ok := store.Load()
	require.True(t, ok)
	assert.Equal(t, "tok-new", token)
	assert.Equal(t, "new", identity.Username)
}

func TestStore_ClearIdempotent(t *testing.T) {
	store := newTestStore(t)
	require.NoError(t, store.Save("tok-abc", types.Identity{ID: 1}))

	require.NoError(t, store.Clear())
	_, _, ok := store.Load()
	assert.False(t, ok)

	// Clearing an already-empty store is a no-op, not an error.
	require.NoError(t, store.Clear())
}

func TestStore_FileMode(t *testing.T) {
	store := newTestStore(t)
	require.NoError(t, store.Save("tok-abc", types.Identity{ID: 1}))

	info, err := os.Stat(store.Path())
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())
}

func TestStore_NoStrayTempFiles(t *testing.T) {
	dir := t.TempDir()
	store, err := NewStore(dir)
	require.NoError(t, err)
	require.NoError(t, store.Save("tok-abc", types.Identity{ID: 1}))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, filepath.Base(store.Path()), entries[0].Name())
}
