package serve

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"
)

// Watcher watches a directory tree and invokes a callback after changes
// settle. Bursts of events within the debounce window collapse into one
// callback invocation.
type Watcher struct {
	dir      string
	debounce time.Duration
	onChange func()
	fw       *fsnotify.Watcher
	done     chan struct{}
}

// NewWatcher creates a Watcher over dir. onChange runs on the watcher
// goroutine after each settled burst of filesystem events.
func NewWatcher(dir string, onChange func()) (*Watcher, error) {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("creating filesystem watcher: %w", err)
	}

	w := &Watcher{
		dir:      dir,
		debounce: 250 * time.Millisecond,
		onChange: onChange,
		fw:       fw,
		done:     make(chan struct{}),
	}

	if err := w.addRecursive(dir); err != nil {
		fw.Close()
		return nil, err
	}
	return w, nil
}

// addRecursive registers dir and every subdirectory with the watcher.
// fsnotify watches are not recursive on their own.
func (w *Watcher) addRecursive(root string) error {
	return filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() {
			return nil
		}
		name := d.Name()
		if name == "node_modules" || strings.HasPrefix(name, ".") && path != root {
			return filepath.SkipDir
		}
		return w.fw.Add(path)
	})
}

// Start runs the event loop until Stop is called.
func (w *Watcher) Start() {
	go w.loop()
}

func (w *Watcher) loop() {
	var timer *time.Timer
	var timerC <-chan time.Time

	for {
		select {
		case <-w.done:
			return
		case ev, ok := <-w.fw.Events:
			if !ok {
				return
			}
			// New directories need their own watch.
			if ev.Op.Has(fsnotify.Create) {
				if info, err := os.Stat(ev.Name); err == nil && info.IsDir() {
					_ = w.addRecursive(ev.Name)
				}
			}
			if timer == nil {
				timer = time.NewTimer(w.debounce)
				timerC = timer.C
			} else {
				timer.Reset(w.debounce)
			}
		case err, ok := <-w.fw.Errors:
			if !ok {
				return
			}
			fmt.Fprintf(os.Stderr, "watch error: %v\n", err)
		case <-timerC:
			timer = nil
			timerC = nil
			w.onChange()
		}
	}
}

// Stop shuts down the watcher.
func (w *Watcher) Stop() {
	close(w.done)
	w.fw.Close()
}
