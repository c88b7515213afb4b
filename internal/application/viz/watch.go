package viz

import (
	"context"
	"fmt"
	"time"

	"github.com/penwyp/go-release-viz/internal/core/monitoring"
	"github.com/penwyp/go-release-viz/internal/util"
)

// cacheMaxAge bounds how long unused collections stay cached in long-running loops
const cacheMaxAge = 30 * time.Minute

// Watch renders the input once and again after every change to it. A change
// that fails to parse is logged and the previous output is left in place.
func (a *App) Watch(ctx context.Context) error {
	if err := a.Render(); err != nil {
		return err
	}

	watcher, err := monitoring.NewFileWatcher([]string{a.config.Input}, a.config.Debounce)
	if err != nil {
		return fmt.Errorf("failed to start file watcher: %w", err)
	}
	defer watcher.Close()

	util.LogInfo("Watching input for changes", util.F("path", a.config.Input))
	return a.watchLoop(ctx, watcher.Events())
}

func (a *App) watchLoop(ctx context.Context, events <-chan monitoring.FileEvent) error {
	evictTicker := time.NewTicker(time.Minute)
	defer evictTicker.Stop()

	for {
		select {
		case <-ctx.Done():
			util.LogInfo("Stopping watch...")
			return nil

		case event, ok := <-events:
			if !ok {
				return nil
			}
			util.LogDebug("input changed", util.F("path", event.Path), util.F("op", event.Operation))
			if err := a.Render(); err != nil {
				util.LogWarn("re-render failed, keeping previous output", util.F("error", err.Error()))
			}

		case <-evictTicker.C:
			if n := a.loader.Evict(cacheMaxAge); n > 0 {
				util.LogDebug("evicted cached collections", util.F("count", n))
			}
		}
	}
}
