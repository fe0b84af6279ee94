// Package watch reloads a markdown file whenever it changes on disk.
//
// The parent directory is watched rather than the file itself so editors
// that save by writing a temp file and renaming it are still seen. Bursts
// of events are coalesced by a token-bucket limiter: at most one reload per
// interval, and identical contents are reported once.
package watch

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"golang.org/x/time/rate"

	"github.com/custodia-labs/slidedeck/internal/logger"
)

// DefaultInterval is the minimum time between two reloads.
const DefaultInterval = 250 * time.Millisecond

// Event is one reload of the watched file.
type Event struct {
	// Path is the watched file.
	Path string

	// Content is the file content after the change.
	Content string

	// Err is set when the watcher or the read failed; Content is empty then.
	Err error
}

// Watcher watches a single file.
type Watcher struct {
	path     string
	interval time.Duration
}

// New creates a watcher for path. A non-positive interval uses DefaultInterval.
func New(path string, interval time.Duration) *Watcher {
	if interval <= 0 {
		interval = DefaultInterval
	}
	return &Watcher{path: path, interval: interval}
}

// Path returns the watched file.
func (w *Watcher) Path() string {
	return w.path
}

// Watch starts watching and returns a channel of reloads. The channel is
// closed when ctx is cancelled.
func (w *Watcher) Watch(ctx context.Context) (<-chan Event, error) {
	abs, err := filepath.Abs(w.path)
	if err != nil {
		return nil, fmt.Errorf("resolving %s: %w", w.path, err)
	}

	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("creating watcher: %w", err)
	}
	if err := fsw.Add(filepath.Dir(abs)); err != nil {
		fsw.Close()
		return nil, fmt.Errorf("watching %s: %w", filepath.Dir(abs), err)
	}

	last := ""
	if data, err := os.ReadFile(abs); err == nil {
		last = string(data)
	}

	events := make(chan Event)
	go w.loop(ctx, fsw, abs, last, events)
	return events, nil
}

func (w *Watcher) loop(ctx context.Context, fsw *fsnotify.Watcher, abs, last string, out chan<- Event) {
	defer close(out)
	defer fsw.Close()

	limiter := rate.NewLimiter(rate.Every(w.interval), 1)
	var fire <-chan time.Time

	for {
		select {
		case <-ctx.Done():
			return

		case ev, ok := <-fsw.Events:
			if !ok {
				return
			}
			if !relevant(ev, abs) || fire != nil {
				continue
			}
			fire = time.After(limiter.Reserve().Delay())

		case err, ok := <-fsw.Errors:
			if !ok {
				return
			}
			logger.Warn("watching %s: %v", w.path, err)
			if !send(ctx, out, Event{Path: w.path, Err: err}) {
				return
			}

		case <-fire:
			fire = nil
			data, err := os.ReadFile(abs)
			if os.IsNotExist(err) {
				// Renamed away mid-save; the following create triggers a reload.
				continue
			}
			if err != nil {
				if !send(ctx, out, Event{Path: w.path, Err: fmt.Errorf("reading %s: %w", w.path, err)}) {
					return
				}
				continue
			}
			if string(data) == last {
				continue
			}
			last = string(data)
			logger.Debug("reloaded %s (%d bytes)", w.path, len(data))
			if !send(ctx, out, Event{Path: w.path, Content: last}) {
				return
			}
		}
	}
}

func relevant(ev fsnotify.Event, abs string) bool {
	if filepath.Clean(ev.Name) != abs {
		return false
	}
	return ev.Has(fsnotify.Write) || ev.Has(fsnotify.Create) || ev.Has(fsnotify.Rename)
}

func send(ctx context.Context, out chan<- Event, ev Event) bool {
	select {
	case out <- ev:
		return true
	case <-ctx.Done():
		return false
	}
}
