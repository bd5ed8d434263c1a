package cache_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/qlayout/cache"
)

type tableFixture struct {
	Perms [][]int
	Swaps []int
}

func TestStore_RoundTrip(t *testing.T) {
	store, err := cache.OpenInMemory(nil)
	require.NoError(t, err)
	defer func() { require.NoError(t, store.Close()) }()

	key := cache.Key{Kind: "exhaustive", PhysQubits: 4, Circuit: "dj_4", Arch: "line", Seed: 7}
	in := tableFixture{
		Perms: [][]int{{0, 1, 2, 3}, {1, 0, 2, 3}},
		Swaps: []int{0, 2},
	}
	require.NoError(t, store.Put(key, in))

	var out tableFixture
	require.True(t, store.Get(key, &out))
	assert.Equal(t, in, out)
}

func TestStore_MissIsNotFatal(t *testing.T) {
	store, err := cache.OpenInMemory(nil)
	require.NoError(t, err)
	defer func() { require.NoError(t, store.Close()) }()

	var out tableFixture
	assert.False(t, store.Get(cache.Key{Kind: "exhaustive"}, &out))
}

func TestStore_KeyFieldsDisambiguate(t *testing.T) {
	store, err := cache.OpenInMemory(nil)
	require.NoError(t, err)
	defer func() { require.NoError(t, store.Close()) }()

	base := cache.Key{Kind: "exhaustive", PhysQubits: 4, Circuit: "dj_4", Arch: "line", Seed: 7}
	require.NoError(t, store.Put(base, tableFixture{Swaps: []int{1}}))

	variants := []cache.Key{
		{Kind: "random", PhysQubits: 4, Circuit: "dj_4", Arch: "line", Seed: 7},
		{Kind: "exhaustive", PhysQubits: 5, Circuit: "dj_4", Arch: "line", Seed: 7},
		{Kind: "exhaustive", PhysQubits: 4, Circuit: "ghz_4", Arch: "line", Seed: 7},
		{Kind: "exhaustive", PhysQubits: 4, Circuit: "dj_4", Arch: "grid", Seed: 7},
		{Kind: "exhaustive", PhysQubits: 4, Circuit: "dj_4", Arch: "line", Seed: 8},
	}
	for _, k := range variants {
		var out tableFixture
		assert.False(t, store.Get(k, &out), "key %s must not alias %s", k.Bytes(), base.Bytes())
	}
}

func TestStore_CorruptEntryIsMissAndDropped(t *testing.T) {
	store, err := cache.OpenInMemory(nil)
	require.NoError(t, err)
	defer func() { require.NoError(t, store.Close()) }()

	// A payload of the wrong shape fails gob decoding into the fixture, so
	// the entry must miss like an absent one and be dropped on the way out.
	key := cache.Key{Kind: "exhaustive", PhysQubits: 4, Circuit: "dj_4", Arch: "line", Seed: 7}
	require.NoError(t, store.Put(key, "not a table"))

	var out tableFixture
	assert.False(t, store.Get(key, &out))
	assert.False(t, store.Get(key, &out), "stale entry stays gone after the first miss")

	// The slot is free again for a well-formed table.
	in := tableFixture{Swaps: []int{2}}
	require.NoError(t, store.Put(key, in))
	require.True(t, store.Get(key, &out))
	assert.Equal(t, in, out)
}

func TestStore_NilBehavesAsAlwaysMiss(t *testing.T) {
	var store *cache.Store

	var out tableFixture
	assert.False(t, store.Get(cache.Key{Kind: "x"}, &out))
	assert.NoError(t, store.Put(cache.Key{Kind: "x"}, out))
	assert.NoError(t, store.Delete(cache.Key{Kind: "x"}))
	assert.NoError(t, store.Close())
}

func TestStore_DeleteThenMiss(t *testing.T) {
	store, err := cache.OpenInMemory(nil)
	require.NoError(t, err)
	defer func() { require.NoError(t, store.Close()) }()

	key := cache.Key{Kind: "exhaustive", PhysQubits: 3, Circuit: "ghz_3", Arch: "line", Seed: 1}
	require.NoError(t, store.Put(key, tableFixture{Swaps: []int{0}}))
	require.NoError(t, store.Delete(key))

	var out tableFixture
	assert.False(t, store.Get(key, &out))
}
