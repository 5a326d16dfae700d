// ============================================================================
// palc - PAL compiler front end
// ============================================================================
//
// Package:     watchview
// Description: Debounced file system watcher for a single source file
// Author:      msto63
// Created:     2026-10-19
// License:     MIT
// ============================================================================

package watchview

import (
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	palerror "github.com/msto63/palc/foundation/core/error"
	pallog "github.com/msto63/palc/foundation/core/log"
)

// Watcher reports writes to one file. Bursts of events within the debounce
// interval are delivered as a single notification.
type Watcher struct {
	path     string
	debounce time.Duration
	fsw      *fsnotify.Watcher
	logger   *pallog.Logger

	events chan struct{}
	errors chan error
	done   chan struct{}
	once   sync.Once
}

// NewWatcher starts watching path. The parent directory is watched so that
// editors replacing the file on save are still seen.
func NewWatcher(path string, debounce time.Duration, logger *pallog.Logger) (*Watcher, error) {
	if logger == nil {
		logger = pallog.GetDefault()
	}

	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, palerror.Wrap(err, "cannot resolve watch path").
			WithCode(palerror.CodeSourceUnavailable).
			WithOperation("watch").
			WithDetail("path", path)
	}

	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, palerror.Wrap(err, "failed to create watcher").
			WithCode(palerror.CodeInternal).
			WithOperation("watch")
	}
	if err := fsw.Add(filepath.Dir(abs)); err != nil {
		fsw.Close()
		return nil, palerror.Wrap(err, "failed to watch directory").
			WithCode(palerror.CodeSourceUnavailable).
			WithOperation("watch").
			WithDetail("path", path)
	}

	w := &Watcher{
		path:     abs,
		debounce: debounce,
		fsw:      fsw,
		logger:   logger.WithField("component", "pal-watch"),
		events:   make(chan struct{}, 1),
		errors:   make(chan error, 1),
		done:     make(chan struct{}),
	}
	w.logger.Debug("Started watching", pallog.Fields{"path": abs, "debounce": debounce.String()})

	go w.loop()
	return w, nil
}

// Events delivers one value per debounced change. It is closed when the
// watcher stops.
func (w *Watcher) Events() <-chan struct{} {
	return w.events
}

// Errors delivers watcher errors
func (w *Watcher) Errors() <-chan error {
	return w.errors
}

// Close stops the watcher
func (w *Watcher) Close() error {
	var err error
	w.once.Do(func() {
		close(w.done)
		err = w.fsw.Close()
	})
	return err
}

func (w *Watcher) loop() {
	defer close(w.events)

	var timer *time.Timer
	var fire <-chan time.Time

	for {
		select {
		case <-w.done:
			if timer != nil {
				timer.Stop()
			}
			return

		case event, ok := <-w.fsw.Events:
			if !ok {
				return
			}
			if filepath.Clean(event.Name) != w.path {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create) == 0 {
				continue
			}

			if timer == nil {
				timer = time.NewTimer(w.debounce)
			} else {
				timer.Reset(w.debounce)
			}
			fire = timer.C

		case <-fire:
			fire = nil
			w.logger.Trace("Source changed", pallog.Fields{"path": w.path})
			select {
			case w.events <- struct{}{}:
			default:
			}

		case err, ok := <-w.fsw.Errors:
			if !ok {
				return
			}
			w.logger.WarnWithErr("Watcher error", err)
			select {
			case w.errors <- err:
			default:
			}
		}
	}
}
