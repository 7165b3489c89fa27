package ics

import (
	"context"
	"fmt"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/rs/zerolog/log"
)

// DefaultSettle is how long Watch waits after the last write before it
// reports a change.
const DefaultSettle = 200 * time.Millisecond

// Watch reports on the returned channel whenever the file at path is
// written, created or renamed into place. Bursts of writes within settle are
// coalesced into one notification. The channel is closed once ctx is done or
// the watcher fails.
//
// The parent directory is watched rather than the file so editors that
// replace the file atomically keep being observed.
func Watch(ctx context.Context, path string, settle time.Duration) (<-chan struct{}, error) {
	if settle <= 0 {
		settle = DefaultSettle
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("ics: watch %s: %w", path, err)
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("ics: create watcher: %w", err)
	}
	if err := watcher.Add(filepath.Dir(abs)); err != nil {
		_ = watcher.Close()
		return nil, fmt.Errorf("ics: watch %s: %w", filepath.Dir(abs), err)
	}

	changes := make(chan struct{}, 1)
	var (
		mu     sync.Mutex
		closed bool
	)
	send := func() {
		mu.Lock()
		defer mu.Unlock()
		if closed {
			return
		}
		select {
		case changes <- struct{}{}:
		default:
			// A change is already pending; the reader reloads the whole file.
		}
	}

	go func() {
		defer func() {
			mu.Lock()
			closed = true
			close(changes)
			mu.Unlock()
		}()
		defer func() {
			if err := watcher.Close(); err != nil {
				log.Warn().Err(err).Msg("ics: watcher close")
			}
		}()

		d := newDebouncer(settle)
		defer d.Stop()

		for {
			select {
			case <-ctx.Done():
				return
			case err, ok := <-watcher.Errors:
				if !ok {
					return
				}
				log.Warn().Err(err).Str("path", abs).Msg("ics: watch error")
			case evt, ok := <-watcher.Events:
				if !ok {
					return
				}
				if filepath.Clean(evt.Name) != abs {
					continue
				}
				if evt.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
					continue
				}
				d.Trigger(send)
			}
		}
	}()

	return changes, nil
}

// debouncer fires once per burst of triggers.
type debouncer struct {
	mu    sync.Mutex
	timer *time.Timer
	delay time.Duration
}

func newDebouncer(delay time.Duration) *debouncer {
	return &debouncer{delay: delay}
}

func (d *debouncer) Trigger(fire func()) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.timer != nil {
		d.timer.Stop()
	}
	d.timer = time.AfterFunc(d.delay, fire)
}

func (d *debouncer) Stop() {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
}
