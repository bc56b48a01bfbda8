package registry_test

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Oichkatzelesfrettschen/CoinSorter/coins"
	"github.com/Oichkatzelesfrettschen/CoinSorter/registry"
)

// newTestStore opens a fresh store in a per-test temp directory and
// registers cleanup.
func newTestStore(t *testing.T) *registry.Store {
	t.Helper()
	store, err := registry.OpenStore(filepath.Join(t.TempDir(), "systems.db"))
	require.NoError(t, err, "open test store")
	t.Cleanup(func() {
		require.NoError(t, store.Close())
	})

	return store
}

// doubloonSystem returns a small custom system used across store tests.
func doubloonSystem() *coins.System {
	return &coins.System{
		Name: "doubloons",
		Coins: []coins.Denomination{
			{Value: 8, Code: "8r", Name: "piece of eight", MassGrams: 27.07, DiameterMM: 38.0, Composition: "silver"},
			{Value: 1, Code: "1r", Name: "real", MassGrams: 3.38, DiameterMM: 21.0, Composition: "silver"},
		},
		SmallestUnit: 1,
	}
}

// TestStore_SaveLoadRoundtrip verifies a saved system loads back field by
// field, metadata included.
func TestStore_SaveLoadRoundtrip(t *testing.T) {
	store := newTestStore(t)
	want := doubloonSystem()
	require.NoError(t, store.Save(want))

	got, err := store.Load("doubloons")
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

// TestStore_LoadedSystemSolves verifies the loop the store exists for:
// persist a custom table, load it, make change with it.
func TestStore_LoadedSystemSolves(t *testing.T) {
	store := newTestStore(t)
	require.NoError(t, store.Save(doubloonSystem()))

	sys, err := store.Load("doubloons")
	require.NoError(t, err)

	counts, err := coins.MinCoins(sys, 19)
	require.NoError(t, err)
	assert.Equal(t, []int{2, 3}, counts, "19 = 2×8 + 3×1")
}

// TestStore_UpsertReplacesDenominations verifies saving under an existing
// name swaps the denomination rows instead of accumulating them.
func TestStore_UpsertReplacesDenominations(t *testing.T) {
	store := newTestStore(t)
	require.NoError(t, store.Save(doubloonSystem()))

	revised := &coins.System{
		Name: "doubloons",
		Coins: []coins.Denomination{
			{Value: 16, Code: "16r", Name: "double eight"},
			{Value: 8, Code: "8r", Name: "piece of eight"},
			{Value: 1, Code: "1r", Name: "real"},
		},
		SmallestUnit: 1,
	}
	require.NoError(t, store.Save(revised))

	got, err := store.Load("doubloons")
	require.NoError(t, err)
	require.Len(t, got.Coins, 3)
	assert.Equal(t, 16, got.Coins[0].Value)
}

// TestStore_LoadUnknown verifies the lookup sentinel crosses the
// persistence boundary intact.
func TestStore_LoadUnknown(t *testing.T) {
	store := newTestStore(t)
	_, err := store.Load("ghosts")
	assert.ErrorIs(t, err, registry.ErrUnknownSystem)
}

// TestStore_Delete verifies removal, its cascade, and the sentinel on a
// second attempt.
func TestStore_Delete(t *testing.T) {
	store := newTestStore(t)
	require.NoError(t, store.Save(doubloonSystem()))

	require.NoError(t, store.Delete("doubloons"))
	_, err := store.Load("doubloons")
	assert.ErrorIs(t, err, registry.ErrUnknownSystem)

	assert.ErrorIs(t, store.Delete("doubloons"), registry.ErrUnknownSystem)
}

// TestStore_SaveRejectsInvalid verifies validation gates the write path:
// malformed tables never reach disk.
func TestStore_SaveRejectsInvalid(t *testing.T) {
	store := newTestStore(t)

	ascending := &coins.System{Name: "bad", Coins: []coins.Denomination{
		{Value: 1}, {Value: 8},
	}}
	assert.ErrorIs(t, store.Save(ascending), coins.ErrUnsortedSystem)

	_, err := store.Load("bad")
	assert.ErrorIs(t, err, registry.ErrUnknownSystem, "nothing may be stored on a failed save")
}

// TestStore_StoredNamesSorted verifies listing order is alphabetical
// regardless of insertion order.
func TestStore_StoredNamesSorted(t *testing.T) {
	store := newTestStore(t)

	zed := doubloonSystem()
	zed.Name = "zed"
	require.NoError(t, store.Save(zed))
	abe := doubloonSystem()
	abe.Name = "abe"
	require.NoError(t, store.Save(abe))

	names, err := store.StoredNames()
	require.NoError(t, err)
	assert.Equal(t, []string{"abe", "zed"}, names)
}

// TestResolve_StoreFallback verifies the lookup chain: built-ins shadow
// the store, the store serves what built-ins lack.
func TestResolve_StoreFallback(t *testing.T) {
	store := newTestStore(t)
	require.NoError(t, store.Save(doubloonSystem()))

	shadow := doubloonSystem()
	shadow.Name = "usd"
	shadow.CanonicalHint = false
	require.NoError(t, store.Save(shadow))

	sys, err := registry.Resolve(store, "doubloons")
	require.NoError(t, err)
	assert.Equal(t, "doubloons", sys.Name)

	sys, err = registry.Resolve(store, "usd")
	require.NoError(t, err)
	assert.True(t, sys.CanonicalHint, "built-in usd must shadow the stored impostor")
	assert.Len(t, sys.Coins, 4)

	_, err = registry.Resolve(store, "ghosts")
	assert.ErrorIs(t, err, registry.ErrUnknownSystem)
}

// TestStore_PersistsAcrossReopen verifies durability: close, reopen the
// same file, load.
func TestStore_PersistsAcrossReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "systems.db")

	store, err := registry.OpenStore(path)
	require.NoError(t, err)
	require.NoError(t, store.Save(doubloonSystem()))
	require.NoError(t, store.Close())

	reopened, err := registry.OpenStore(path)
	require.NoError(t, err)
	t.Cleanup(func() {
		require.NoError(t, reopened.Close())
	})

	got, err := reopened.Load("doubloons")
	require.NoError(t, err)
	assert.Equal(t, doubloonSystem(), got)
}
