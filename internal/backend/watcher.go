package backend

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// DefaultDebounce is the quiet period applied to bursts of filesystem
// events before a change is published.
const DefaultDebounce = 150 * time.Millisecond

// Event reports a change to the tree source or a watch failure.
type Event struct {
	Path string
	Err  error
}

// Watcher publishes an Event whenever the tree source changes on disk. A
// file source is watched through its parent directory so editors that save
// by renaming are still noticed; a directory source watches every
// non-hidden directory below it.
type Watcher struct {
	source string
	dir    bool

	fsw       *fsnotify.Watcher
	debouncer *Debouncer
	fire      chan struct{}

	ctx    context.Context
	cancel context.CancelFunc

	events chan Event
	wg     sync.WaitGroup
}

// NewWatcher starts watching source.
func NewWatcher(source string, debounce time.Duration) (*Watcher, error) {
	abs, err := filepath.Abs(source)
	if err != nil {
		return nil, fmt.Errorf("resolve watch path: %w", err)
	}
	info, err := os.Stat(abs)
	if err != nil {
		return nil, fmt.Errorf("stat watch path: %w", err)
	}
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("create fsnotify watcher: %w", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	w := &Watcher{
		source:    abs,
		dir:       info.IsDir(),
		fsw:       fsw,
		debouncer: NewDebouncer(debounce),
		fire:      make(chan struct{}, 1),
		ctx:       ctx,
		cancel:    cancel,
		events:    make(chan Event, 16),
	}
	if w.dir {
		err = w.addTree(abs)
	} else {
		err = fsw.Add(filepath.Dir(abs))
	}
	if err != nil {
		cancel()
		fsw.Close()
		return nil, fmt.Errorf("watch %s: %w", abs, err)
	}

	w.wg.Add(1)
	go w.run()
	return w, nil
}

// Source returns the absolute path being watched.
func (w *Watcher) Source() string {
	return w.source
}

// Events returns the channel of change notifications. It is closed after
// Stop once the watcher has drained.
func (w *Watcher) Events() <-chan Event {
	return w.events
}

// Stop cancels the watcher and releases the fsnotify handle.
func (w *Watcher) Stop() {
	w.debouncer.Cancel()
	w.cancel()
}

// Wait blocks until the watcher goroutine has exited and the events channel
// is closed.
func (w *Watcher) Wait() {
	w.wg.Wait()
}

func (w *Watcher) addTree(root string) error {
	return filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() {
			return nil
		}
		if path != root && strings.HasPrefix(d.Name(), ".") {
			return filepath.SkipDir
		}
		return w.fsw.Add(path)
	})
}

func (w *Watcher) relevant(ev fsnotify.Event) bool {
	if ev.Op == fsnotify.Chmod {
		return false
	}
	if w.dir {
		return !strings.HasPrefix(filepath.Base(ev.Name), ".")
	}
	return filepath.Clean(ev.Name) == w.source
}

func (w *Watcher) run() {
	defer w.wg.Done()
	defer close(w.events)
	defer w.fsw.Close()

	lastPath := w.source
	for {
		select {
		case <-w.ctx.Done():
			return
		case ev, ok := <-w.fsw.Events:
			if !ok {
				return
			}
			if !w.relevant(ev) {
				continue
			}
			if w.dir && ev.Op&fsnotify.Create != 0 {
				if info, err := os.Stat(ev.Name); err == nil && info.IsDir() {
					if err := w.addTree(ev.Name); err != nil {
						w.emit(Event{Path: ev.Name, Err: fmt.Errorf("watch %s: %w", ev.Name, err)})
					}
				}
			}
			lastPath = ev.Name
			w.debouncer.Trigger(w.signal)
		case err, ok := <-w.fsw.Errors:
			if !ok {
				return
			}
			w.emit(Event{Path: w.source, Err: fmt.Errorf("watch %s: %w", w.source, err)})
		case <-w.fire:
			w.emit(Event{Path: lastPath})
		}
	}
}

func (w *Watcher) signal() {
	select {
	case w.fire <- struct{}{}:
	default:
	}
}

func (w *Watcher) emit(evt Event) {
	select {
	case <-w.ctx.Done():
	case w.events <- evt:
	}
}
