package kvstore

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) *BoltStore {
	t.Helper()
	store, err := NewBoltStore(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })
	return store
}

func TestBoltStore_SetGet(t *testing.T) {
	store := newTestStore(t)

	_, ok, err := store.Get("missing")
	require.NoError(t, err)
	assert.False(t, ok, "missing key should not be found")

	require.NoError(t, store.Set("customers", `[{"id":"1"}]`))

	value, ok, err := store.Get("customers")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, `[{"id":"1"}]`, value)
}

func TestBoltStore_Remove(t *testing.T) {
	store := newTestStore(t)

	require.NoError(t, store.Set("a", "1"))
	require.NoError(t, store.Remove("a"))

	_, ok, err := store.Get("a")
	require.NoError(t, err)
	assert.False(t, ok)

	// removing a missing key is not an error
	require.NoError(t, store.Remove("never-set"))
}

func TestBoltStore_RemoveMany(t *testing.T) {
	store := newTestStore(t)

	require.NoError(t, store.Set("@ServiceApp:user", "u"))
	require.NoError(t, store.Set("@ServiceApp:token", "t"))
	require.NoError(t, store.Set("customers", "[]"))

	require.NoError(t, store.RemoveMany([]string{"@ServiceApp:user", "@ServiceApp:token"}))

	keys, err := store.ListKeys()
	require.NoError(t, err)
	assert.Equal(t, []string{"customers"}, keys)
}

func TestBoltStore_PersistsAcrossReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "reopen.db")

	store, err := NewBoltStore(path)
	require.NoError(t, err)
	require.NoError(t, store.Set("products", `[{"id":"p1"}]`))
	require.NoError(t, store.Close())

	reopened, err := NewBoltStore(path)
	require.NoError(t, err)
	defer reopened.Close()

	value, ok, err := reopened.Get("products")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, `[{"id":"p1"}]`, value)
}
