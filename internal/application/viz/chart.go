package viz

import (
	"sync"
	"sync/atomic"
	"time"

	"github.com/penwyp/go-release-viz/internal/core/release"
	"github.com/penwyp/go-release-viz/internal/presentation/layout"
	"github.com/penwyp/go-release-viz/internal/util"
)

// Chart holds a collection and the render tree of its last layout. Readers
// always see a complete tree; each relayout swaps in a new one.
type Chart struct {
	mu         sync.Mutex
	collection *release.Collection
	now        func() time.Time

	attached bool
	width    float64
	height   float64

	current atomic.Pointer[layout.Result]
}

// NewChart creates a detached chart. now is consulted on every layout.
func NewChart(collection *release.Collection, now func() time.Time) *Chart {
	if now == nil {
		now = time.Now
	}
	return &Chart{collection: collection, now: now}
}

// Attach performs the first layout at the container size
func (c *Chart) Attach(width, height float64) *layout.Result {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.attached = true
	c.width, c.height = width, height
	return c.relayout()
}

// Resize lays the chart out again at a new container size. It does nothing
// before Attach.
func (c *Chart) Resize(width, height float64) *layout.Result {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.attached {
		return nil
	}
	c.width, c.height = width, height
	return c.relayout()
}

// SetCollection replaces the collection, laying it out at the last size when attached
func (c *Chart) SetCollection(collection *release.Collection) *layout.Result {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.collection = collection
	if !c.attached {
		return nil
	}
	return c.relayout()
}

// Refresh lays the chart out again at the last size, picking up a new "now"
func (c *Chart) Refresh() *layout.Result {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.attached {
		return nil
	}
	return c.relayout()
}

func (c *Chart) relayout() *layout.Result {
	result := layout.Layout(c.collection, c.width, c.height, c.now())
	c.current.Store(result)
	util.LogDebug("chart laid out",
		util.F("width", result.OverallWidth()),
		util.F("height", result.OverallHeight()),
		util.F("groups", len(result.Groups)))
	return result
}

// Current returns the last layout, or nil before Attach
func (c *Chart) Current() *layout.Result {
	return c.current.Load()
}

// RenderGroups returns the groups of the last layout; none exist before Attach
func (c *Chart) RenderGroups() []*layout.Group {
	if result := c.current.Load(); result != nil {
		return result.Groups
	}
	return nil
}

// Collection returns the collection being drawn
func (c *Chart) Collection() *release.Collection {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.collection
}
