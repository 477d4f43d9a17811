// Package watcher delivers debounced change notifications for a
// documents folder.
package watcher

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/docsift/docsift/internal/logger"
)

// DefaultDebounce is how long the watcher waits after the last relevant
// event before delivering a tick. Editors and file copies emit bursts
// of events for one logical change.
const DefaultDebounce = 500 * time.Millisecond

// Watcher watches one folder and delivers a tick after each burst of
// changes to supported files.
type Watcher struct {
	fs        *fsnotify.Watcher
	changes   chan struct{}
	supported map[string]bool
	debounce  time.Duration
	closeOnce sync.Once
}

// New watches folder for changes to files with the given extensions
// (dot-prefixed, case-insensitive).
func New(folder string, extensions []string) (*Watcher, error) {
	return NewDebounced(folder, extensions, DefaultDebounce)
}

// NewDebounced is New with an explicit debounce interval.
func NewDebounced(folder string, extensions []string, debounce time.Duration) (*Watcher, error) {
	info, err := os.Stat(folder)
	if err != nil {
		return nil, fmt.Errorf("watch folder: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("watch folder: %s is not a directory", folder)
	}

	fs, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("create watcher: %w", err)
	}
	if err := fs.Add(folder); err != nil {
		fs.Close()
		return nil, fmt.Errorf("watch %s: %w", folder, err)
	}

	supported := make(map[string]bool, len(extensions))
	for _, ext := range extensions {
		supported[strings.ToLower(ext)] = true
	}

	w := &Watcher{
		fs:        fs,
		changes:   make(chan struct{}, 1),
		supported: supported,
		debounce:  debounce,
	}
	go w.loop()
	return w, nil
}

// Changes delivers one tick per burst of relevant changes. The channel
// closes when the watcher is closed. A tick that cannot be delivered
// immediately is held, so changes during a long consumer run coalesce
// into one re-run.
func (w *Watcher) Changes() <-chan struct{} {
	return w.changes
}

// Close stops watching. The changes channel closes once the event loop
// drains.
func (w *Watcher) Close() error {
	var err error
	w.closeOnce.Do(func() {
		err = w.fs.Close()
	})
	return err
}

func (w *Watcher) loop() {
	defer close(w.changes)

	var timer *time.Timer
	var timerC <-chan time.Time

	for {
		select {
		case event, ok := <-w.fs.Events:
			if !ok {
				return
			}
			if !w.relevant(event) {
				continue
			}
			logger.Debug("watch event: %s %s", event.Op, event.Name)
			if timer == nil {
				timer = time.NewTimer(w.debounce)
				timerC = timer.C
				continue
			}
			if !timer.Stop() {
				select {
				case <-timer.C:
				default:
				}
			}
			timer.Reset(w.debounce)

		case err, ok := <-w.fs.Errors:
			if !ok {
				return
			}
			logger.Warn("watch error: %v", err)

		case <-timerC:
			timer = nil
			timerC = nil
			select {
			case w.changes <- struct{}{}:
			default:
			}
		}
	}
}

// relevant reports whether the event touches a supported file. A bare
// chmod is ignored; it cannot change content.
func (w *Watcher) relevant(event fsnotify.Event) bool {
	if event.Op == fsnotify.Chmod {
		return false
	}
	ext := strings.ToLower(filepath.Ext(event.Name))
	return w.supported[ext]
}
