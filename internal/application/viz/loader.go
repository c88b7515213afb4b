package viz

import (
	"fmt"
	"time"

	"github.com/penwyp/go-release-viz/internal/core/cache"
	"github.com/penwyp/go-release-viz/internal/core/release"
	"github.com/penwyp/go-release-viz/internal/data/parser"
	"github.com/penwyp/go-release-viz/internal/util"
	"github.com/spf13/afero"
)

// Loader reads input documents and turns their table into a collection
type Loader struct {
	fs       afero.Fs
	selector string
	opts     release.Options
	cache    *cache.CollectionCache
}

// NewLoader creates a loader reading through fs
func NewLoader(fs afero.Fs, selector string, opts release.Options) *Loader {
	return &Loader{
		fs:       fs,
		selector: selector,
		opts:     opts,
		cache:    cache.NewCollectionCache(),
	}
}

// ReadTable returns the raw table text held by the document at path
func (l *Loader) ReadTable(path string) (string, error) {
	content, err := afero.ReadFile(l.fs, path)
	if err != nil {
		return "", fmt.Errorf("failed to read input: %w", err)
	}

	kind := parser.KindForPath(path)
	raw, err := parser.ExtractTable(content, kind, l.selector)
	if err != nil {
		return "", fmt.Errorf("%s: %w", path, err)
	}
	util.LogDebug("table extracted", util.F("path", path), util.F("kind", string(kind)), util.F("bytes", len(raw)))
	return raw, nil
}

// Load builds the collection for the document at path. Unchanged documents
// are served from the cache.
func (l *Loader) Load(path string) (*release.Collection, error) {
	raw, err := l.ReadTable(path)
	if err != nil {
		return nil, err
	}
	return l.cache.GetOrBuild(raw, l.opts)
}

// Reload rebuilds the collection bypassing cached entries. The cache is only
// replaced when the rebuild succeeds.
func (l *Loader) Reload(path string) (*release.Collection, error) {
	l.cache.Clear()

	raw, err := l.ReadTable(path)
	if err != nil {
		l.cache.CancelClear()
		return nil, err
	}
	collection, err := release.Build(raw, l.opts)
	if err != nil {
		l.cache.CancelClear()
		return nil, err
	}

	l.cache.Set(cache.Key(raw, l.opts), collection)
	l.cache.CommitClear()
	return collection, nil
}

// Options returns the build options in use
func (l *Loader) Options() release.Options {
	return l.opts
}

// SetOptions changes the build options used by later loads
func (l *Loader) SetOptions(opts release.Options) {
	l.opts = opts
}

// Evict drops cached collections unused for maxAge
func (l *Loader) Evict(maxAge time.Duration) int {
	return l.cache.Evict(maxAge)
}
