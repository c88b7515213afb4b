package cache

import (
	"testing"
	"time"

	"github.com/penwyp/go-release-viz/internal/core/release"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const table = `
| Version | Status | Released   | Active ends | LTS ends   |
|:---     |:---    |:---        |:---         |:---        |
| ^15.0.0 | Active | 2022-11-18 | 2023-05-18  | 2024-05-18 |
`

const otherTable = `
| Version | Status | Released   | Active ends | LTS ends   |
|:---     |:---    |:---        |:---         |:---        |
| ^14.0.0 | LTS    | 2022-06-02 | 2022-11-18  | 2023-11-18 |
`

func TestNewCollectionCache(t *testing.T) {
	cache := NewCollectionCache()
	require.NotNil(t, cache)
	assert.Equal(t, 0, cache.Len())
}

func TestKeyDependsOnOptions(t *testing.T) {
	base := Key(table, release.Options{PaddingMonths: 3})

	assert.Equal(t, base, Key(table, release.Options{PaddingMonths: 3}))
	assert.NotEqual(t, base, Key(table, release.Options{PaddingMonths: 2}))
	assert.NotEqual(t, base, Key(table, release.Options{PaddingMonths: 3, SortAscending: true}))
	assert.NotEqual(t, base, Key(otherTable, release.Options{PaddingMonths: 3}))
	assert.NotEqual(t, base, Key(table, release.Options{PaddingMonths: 3, Location: time.FixedZone("X", 3600)}))
}

func TestCollectionCacheSetAndGet(t *testing.T) {
	cache := NewCollectionCache()
	collection := &release.Collection{PaddingMonths: 3}

	cache.Set("k", collection)

	got, ok := cache.Get("k")
	require.True(t, ok)
	assert.Same(t, collection, got)

	_, ok = cache.Get("missing")
	assert.False(t, ok)
}

func TestCollectionCacheGetOrBuild(t *testing.T) {
	cache := NewCollectionCache()
	opts := release.Options{PaddingMonths: 3}

	first, err := cache.GetOrBuild(table, opts)
	require.NoError(t, err)
	second, err := cache.GetOrBuild(table, opts)
	require.NoError(t, err)

	assert.Same(t, first, second)
	assert.Equal(t, 1, cache.Len())

	_, err = cache.GetOrBuild("\n| broken |\n", opts)
	assert.Error(t, err)
	assert.Equal(t, 1, cache.Len())

	third, err := cache.GetOrBuild(table, opts)
	require.NoError(t, err)
	assert.Same(t, first, third)
}

func TestCollectionCacheDoubleBufferedClear(t *testing.T) {
	cache := NewCollectionCache()
	old := &release.Collection{PaddingMonths: 1}
	cache.Set("old", old)

	cache.Clear()

	// old entries stay readable until commit
	got, ok := cache.Get("old")
	require.True(t, ok)
	assert.Same(t, old, got)

	fresh := &release.Collection{PaddingMonths: 2}
	cache.Set("fresh", fresh)
	_, ok = cache.Get("fresh")
	assert.False(t, ok)

	cache.CommitClear()

	_, ok = cache.Get("old")
	assert.False(t, ok)
	got, ok = cache.Get("fresh")
	require.True(t, ok)
	assert.Same(t, fresh, got)
}

func TestCollectionCacheCancelClear(t *testing.T) {
	cache := NewCollectionCache()
	cache.Set("keep", &release.Collection{})

	cache.Clear()
	cache.Set("dropped", &release.Collection{})
	cache.CancelClear()
	cache.CommitClear()

	_, ok := cache.Get("keep")
	assert.True(t, ok)
	_, ok = cache.Get("dropped")
	assert.False(t, ok)
}

func TestCollectionCacheEvict(t *testing.T) {
	cache := NewCollectionCache()
	cache.Set("stale", &release.Collection{})
	cache.Set("fresh", &release.Collection{})
	cache.entries["stale"].LastAccessed = time.Now().Add(-2 * time.Hour).Unix()

	removed := cache.Evict(time.Hour)
	assert.Equal(t, 1, removed)
	assert.Equal(t, 1, cache.Len())
}
