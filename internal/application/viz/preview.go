package viz

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"time"

	"github.com/penwyp/go-release-viz/internal/core/monitoring"
	"github.com/penwyp/go-release-viz/internal/core/release"
	"github.com/penwyp/go-release-viz/internal/presentation/display"
	"github.com/penwyp/go-release-viz/internal/presentation/interaction"
	"github.com/penwyp/go-release-viz/internal/util"
	"github.com/samber/lo"
)

// previewState is what the preview loop owns between events
type previewState struct {
	chart   *Chart
	display *display.TerminalDisplay
	cols    int
	rows    int
	message string
}

// Preview draws the chart in the terminal until ctx is cancelled or the user
// quits. The chart follows terminal resizes and changes to the input.
func (a *App) Preview(ctx context.Context) error {
	collection, err := a.loader.Load(a.config.Input)
	if err != nil {
		return err
	}

	state := &previewState{
		chart:   NewChart(collection, a.Now),
		display: display.NewTerminalDisplay(a.stdout, a.config.Color),
	}
	state.cols, state.rows = a.termSize()
	state.chart.Attach(display.ContainerSize(state.cols, state.rows))

	var keys <-chan interaction.KeyEvent
	if keyboard, err := a.newKeyboard(); err != nil {
		util.LogWarn("keyboard input unavailable", util.F("error", err.Error()))
	} else {
		defer keyboard.Close()
		keys = keyboard.Events()
	}

	var changes <-chan monitoring.FileEvent
	if watcher, err := monitoring.NewFileWatcher([]string{a.config.Input}, a.config.Debounce); err != nil {
		util.LogWarn("input will not be watched", util.F("error", err.Error()))
	} else {
		defer watcher.Close()
		changes = watcher.Events()
	}

	resize := make(chan os.Signal, 1)
	notifyResize(resize)
	defer signal.Stop(resize)

	state.display.EnterAlternateScreen()
	defer state.display.ExitAlternateScreen()

	return a.previewLoop(ctx, state, keys, changes, resize)
}

func (a *App) previewLoop(ctx context.Context, state *previewState, keys <-chan interaction.KeyEvent, changes <-chan monitoring.FileEvent, resize <-chan os.Signal) error {
	// Redraw every minute so the today marker moves
	clockTicker := time.NewTicker(time.Minute)
	defer clockTicker.Stop()

	if err := a.draw(state); err != nil {
		return err
	}

	for {
		select {
		case <-ctx.Done():
			return nil

		case <-resize:
			state.cols, state.rows = a.termSize()
			state.chart.Resize(display.ContainerSize(state.cols, state.rows))

		case event, ok := <-changes:
			if !ok {
				changes = nil
				continue
			}
			util.LogDebug("input changed", util.F("path", event.Path))
			a.reload(state, false)

		case key := <-keys:
			switch interaction.ActionFor(key) {
			case interaction.ActionQuit:
				return nil
			case interaction.ActionToggleSort:
				opts := a.loader.Options()
				opts.SortAscending = !opts.SortAscending
				a.applyOptions(state, opts)
			case interaction.ActionMorePadding:
				opts := a.loader.Options()
				opts.PaddingMonths++
				a.applyOptions(state, opts)
			case interaction.ActionLessPadding:
				opts := a.loader.Options()
				if opts.PaddingMonths == 0 {
					continue
				}
				opts.PaddingMonths--
				a.applyOptions(state, opts)
			case interaction.ActionReload:
				a.reload(state, true)
			default:
				continue
			}

		case <-clockTicker.C:
			state.chart.Refresh()
			a.loader.Evict(cacheMaxAge)
		}

		if err := a.draw(state); err != nil {
			return err
		}
	}
}

// applyOptions rebuilds the collection with new build options, keeping the
// old options when the rebuild fails
func (a *App) applyOptions(state *previewState, opts release.Options) {
	previous := a.loader.Options()
	a.loader.SetOptions(opts)
	if !a.reload(state, false) {
		a.loader.SetOptions(previous)
	}
}

// reload rebuilds the chart collection from the input. On failure the chart
// keeps its collection and the error is shown on the status line.
func (a *App) reload(state *previewState, force bool) bool {
	load := a.loader.Load
	if force {
		load = a.loader.Reload
	}

	collection, err := load(a.config.Input)
	if err != nil {
		util.LogWarn("reload failed", util.F("error", err.Error()))
		state.message = strings.ReplaceAll(err.Error(), "\n", " ")
		return false
	}
	state.message = ""
	state.chart.SetCollection(collection)
	return true
}

func (a *App) draw(state *previewState) error {
	return state.display.Draw(state.chart.Current(), state.cols, state.rows, a.statusLine(state))
}

// statusLine describes the chart shown and the keys the preview accepts
func (a *App) statusLine(state *previewState) string {
	if state.message != "" {
		return "error: " + state.message
	}

	opts := a.loader.Options()
	return fmt.Sprintf("%s  %s  padding %d  %s  now %s  [q]uit [s]ort [+/-]padding [r]eload",
		a.config.Input,
		util.FormatCount(state.chart.Collection().Len(), "release"),
		opts.PaddingMonths,
		lo.Ternary(opts.SortAscending, "ascending", "descending"),
		util.FormatShortDate(a.Now()))
}
