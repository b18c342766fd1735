package remap

import (
	"fmt"
	"path/filepath"
	"sync"

	"github.com/fsnotify/fsnotify"
	"github.com/kataras/golog"
)

// Watcher reloads profile files into a registry when they change on
// disk. A malformed file is logged and skipped; the registry keeps the
// previously loaded profile.
//
// A reload replaces the registry entry only. Consumers that derived
// state from the profile (an aggregator's combo/sequence matchers, for
// example) keep the stale derivation until they re-apply it; register
// a reload hook with SetOnReload to get the re-apply point.
type Watcher struct {
	mu sync.Mutex

	registry *Registry
	watcher  *fsnotify.Watcher
	log      *golog.Logger

	// paths maps watched file paths to the profile name they loaded as.
	paths map[string]string

	onReload func(name string)

	closeCh  chan struct{}
	closedWg sync.WaitGroup
	closed   bool
}

// NewWatcher creates a watcher feeding the given registry.
func NewWatcher(registry *Registry, log *golog.Logger) (*Watcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("creating profile watcher: %w", err)
	}
	if log == nil {
		log = golog.Default
	}
	w := &Watcher{
		registry: registry,
		watcher:  fsw,
		log:      log.Child("[profiles]"),
		paths:    make(map[string]string),
		closeCh:  make(chan struct{}),
	}
	w.closedWg.Add(1)
	go w.processLoop()
	return w, nil
}

// SetOnReload registers fn to be called with the profile name after
// every successful reload. Called from the watcher's goroutine.
func (w *Watcher) SetOnReload(fn func(name string)) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.onReload = fn
}

// Watch loads the profile file immediately and reloads it on change.
func (w *Watcher) Watch(path string) error {
	abs, err := filepath.Abs(path)
	if err != nil {
		return fmt.Errorf("resolving profile path: %w", err)
	}
	p, err := LoadProfile(abs)
	if err != nil {
		return err
	}
	if err := w.registry.Register(p); err != nil {
		return err
	}
	if err := w.watcher.Add(filepath.Dir(abs)); err != nil {
		return fmt.Errorf("watching profile directory: %w", err)
	}
	w.mu.Lock()
	w.paths[abs] = p.Name
	w.mu.Unlock()
	return nil
}

// Close stops the watcher.
func (w *Watcher) Close() error {
	w.mu.Lock()
	if w.closed {
		w.mu.Unlock()
		return nil
	}
	w.closed = true
	w.mu.Unlock()
	close(w.closeCh)
	err := w.watcher.Close()
	w.closedWg.Wait()
	return err
}

func (w *Watcher) processLoop() {
	defer w.closedWg.Done()
	for {
		select {
		case <-w.closeCh:
			return
		case ev, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if ev.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) != 0 {
				w.reload(ev.Name)
			}
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			w.log.Warnf("watch error: %v", err)
		}
	}
}

func (w *Watcher) reload(path string) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return
	}
	w.mu.Lock()
	_, tracked := w.paths[abs]
	w.mu.Unlock()
	if !tracked {
		return
	}
	p, err := LoadProfile(abs)
	if err != nil {
		w.log.Warnf("reload of %s failed, keeping previous profile: %v", abs, err)
		return
	}
	if err := w.registry.Register(p); err != nil {
		w.log.Warnf("reload of %s failed: %v", abs, err)
		return
	}
	w.mu.Lock()
	w.paths[abs] = p.Name
	fn := w.onReload
	w.mu.Unlock()
	w.log.Infof("reloaded profile %q from %s", p.Name, abs)
	if fn != nil {
		fn(p.Name)
	}
}
