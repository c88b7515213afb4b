package monitoring

import (
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/penwyp/go-release-viz/internal/util"
)

// FileEvent reports a change to a watched file
type FileEvent struct {
	Path      string
	Operation string
}

// FileWatcher watches individual files. It watches their directories so that
// editors which save by renaming a temporary file are still seen.
type FileWatcher struct {
	watcher  *fsnotify.Watcher
	targets  map[string]bool
	events   chan FileEvent
	debounce time.Duration
	done     chan struct{}
	once     sync.Once
}

// NewFileWatcher starts watching paths. Bursts of events for one file within
// debounce are folded into one event; debounce <= 0 disables folding.
func NewFileWatcher(paths []string, debounce time.Duration) (*FileWatcher, error) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	fw := &FileWatcher{
		watcher:  watcher,
		targets:  make(map[string]bool, len(paths)),
		events:   make(chan FileEvent, 100),
		debounce: debounce,
		done:     make(chan struct{}),
	}

	dirs := make(map[string]bool)
	for _, path := range paths {
		abs, err := filepath.Abs(path)
		if err != nil {
			watcher.Close()
			return nil, err
		}
		fw.targets[abs] = true
		dirs[filepath.Dir(abs)] = true
	}
	for dir := range dirs {
		if err := watcher.Add(dir); err != nil {
			watcher.Close()
			return nil, err
		}
	}

	go fw.processEvents()

	return fw, nil
}

func (fw *FileWatcher) processEvents() {
	defer close(fw.events)

	pending := make(map[string]FileEvent)
	var timer *time.Timer
	var timerC <-chan time.Time

	flush := func() {
		for path, event := range pending {
			fw.emit(event)
			delete(pending, path)
		}
	}

	for {
		select {
		case <-fw.done:
			return

		case event, ok := <-fw.watcher.Events:
			if !ok {
				return
			}
			if !fw.isTarget(event.Name) || !isContentChange(event.Op) {
				continue
			}

			fileEvent := FileEvent{Path: event.Name, Operation: event.Op.String()}
			if fw.debounce <= 0 {
				fw.emit(fileEvent)
				continue
			}

			pending[event.Name] = fileEvent
			if timer == nil {
				timer = time.NewTimer(fw.debounce)
			} else {
				timer.Reset(fw.debounce)
			}
			timerC = timer.C

		case <-timerC:
			timerC = nil
			flush()

		case err, ok := <-fw.watcher.Errors:
			if !ok {
				return
			}
			// Log error but continue running
			util.LogError("file monitoring error", util.F("error", err.Error()))
		}
	}
}

func (fw *FileWatcher) emit(event FileEvent) {
	select {
	case fw.events <- event:
	case <-fw.done:
	}
}

func (fw *FileWatcher) isTarget(name string) bool {
	abs, err := filepath.Abs(name)
	if err != nil {
		return false
	}
	return fw.targets[abs]
}

func isContentChange(op fsnotify.Op) bool {
	return op.Has(fsnotify.Write) || op.Has(fsnotify.Create) || op.Has(fsnotify.Rename)
}

// Events returns the change notifications; the channel closes after Close
func (fw *FileWatcher) Events() <-chan FileEvent {
	return fw.events
}

func (fw *FileWatcher) Close() error {
	var err error
	fw.once.Do(func() {
		close(fw.done)
		err = fw.watcher.Close()
	})
	return err
}
