package cache

import (
	"strconv"
	"sync"
	"time"

	"github.com/penwyp/go-release-viz/internal/core/release"
	"github.com/penwyp/go-release-viz/internal/util"
)

// CollectionCacheEntry holds one built collection and its access time
type CollectionCacheEntry struct {
	Collection   *release.Collection
	LastAccessed int64
}

// CollectionCache keeps built collections keyed by the fingerprint of their
// table text and build options.
type CollectionCache struct {
	mu      sync.RWMutex
	entries map[string]*CollectionCacheEntry

	// Double buffering support
	pendingClear  bool
	shadowEntries map[string]*CollectionCacheEntry
}

func NewCollectionCache() *CollectionCache {
	return &CollectionCache{
		entries: make(map[string]*CollectionCacheEntry),
	}
}

// Key fingerprints table text together with the options that shape the build
func Key(raw string, opts release.Options) string {
	loc := ""
	if opts.Location != nil {
		loc = opts.Location.String()
	}
	return util.CalculateContentFingerprint(
		raw,
		strconv.Itoa(opts.PaddingMonths),
		strconv.FormatBool(opts.SortAscending),
		loc,
	)
}

func (cc *CollectionCache) Set(key string, collection *release.Collection) {
	cc.mu.Lock()
	defer cc.mu.Unlock()

	entry := &CollectionCacheEntry{
		Collection:   collection,
		LastAccessed: time.Now().Unix(),
	}

	// If pending clear, add to shadow buffer instead
	if cc.pendingClear && cc.shadowEntries != nil {
		cc.shadowEntries[key] = entry
	} else {
		cc.entries[key] = entry
	}
}

func (cc *CollectionCache) Get(key string) (*release.Collection, bool) {
	cc.mu.Lock()
	defer cc.mu.Unlock()

	entry, ok := cc.entries[key]
	if !ok || entry == nil {
		return nil, false
	}
	entry.LastAccessed = time.Now().Unix()
	return entry.Collection, true
}

// GetOrBuild returns the cached collection for raw, building and storing it on a miss
func (cc *CollectionCache) GetOrBuild(raw string, opts release.Options) (*release.Collection, error) {
	key := Key(raw, opts)
	if collection, ok := cc.Get(key); ok {
		util.LogDebug("collection cache hit", util.F("key", key))
		return collection, nil
	}

	collection, err := release.Build(raw, opts)
	if err != nil {
		return nil, err
	}
	cc.Set(key, collection)
	util.LogDebug("collection cache miss", util.F("key", key))
	return collection, nil
}

// Len returns the number of live entries
func (cc *CollectionCache) Len() int {
	cc.mu.RLock()
	defer cc.mu.RUnlock()
	return len(cc.entries)
}

// Clear marks the cache for clearing; entries stay readable until CommitClear
func (cc *CollectionCache) Clear() {
	cc.mu.Lock()
	defer cc.mu.Unlock()

	cc.pendingClear = true
	cc.shadowEntries = make(map[string]*CollectionCacheEntry)

	util.LogDebug("CollectionCache: marked for pending clear")
}

// CommitClear swaps in the entries stored since Clear
func (cc *CollectionCache) CommitClear() {
	cc.mu.Lock()
	defer cc.mu.Unlock()

	if cc.pendingClear && cc.shadowEntries != nil {
		cc.entries = cc.shadowEntries
		cc.shadowEntries = nil
		cc.pendingClear = false
		util.LogDebug("CollectionCache: committed clear", util.F("entries", len(cc.entries)))
	}
}

// CancelClear cancels a pending clear operation
func (cc *CollectionCache) CancelClear() {
	cc.mu.Lock()
	defer cc.mu.Unlock()

	cc.pendingClear = false
	cc.shadowEntries = nil
	util.LogDebug("CollectionCache: cancelled pending clear")
}

// Evict drops entries not accessed within maxAge
func (cc *CollectionCache) Evict(maxAge time.Duration) int {
	cc.mu.Lock()
	defer cc.mu.Unlock()

	cutoff := time.Now().Add(-maxAge).Unix()
	removed := 0
	for key, entry := range cc.entries {
		if entry.LastAccessed < cutoff {
			delete(cc.entries, key)
			removed++
		}
	}
	return removed
}
