package binding

import (
	"errors"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// ErrWatcherClosed is returned by operations on a closed watcher.
var ErrWatcherClosed = errors.New("watcher is closed")

// defaultDebounce coalesces the write bursts editors produce when
// saving a file.
const defaultDebounce = 100 * time.Millisecond

// ReloadFunc is called after a changed binding file has been reloaded
// and re-registered. On failure set is nil and err describes why the
// previous registration was kept.
type ReloadFunc func(path string, set *Set, err error)

// Watcher reloads binding files when they change on disk.
type Watcher struct {
	mu sync.Mutex

	fsw      *fsnotify.Watcher
	loader   *Loader
	registry *Registry
	onReload ReloadFunc

	debounce time.Duration
	pending  map[string]*time.Timer

	closed  bool
	closeCh chan struct{}
	wg      sync.WaitGroup
}

// NewWatcher creates a watcher that reloads changed binding files
// through loader and re-registers them on reg. onReload may be nil.
func NewWatcher(loader *Loader, reg *Registry, onReload ReloadFunc) (*Watcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	w := &Watcher{
		fsw:      fsw,
		loader:   loader,
		registry: reg,
		onReload: onReload,
		debounce: defaultDebounce,
		pending:  make(map[string]*time.Timer),
		closeCh:  make(chan struct{}),
	}

	w.wg.Add(1)
	go w.processLoop()

	return w, nil
}

// SetDebounce adjusts the interval used to coalesce rapid writes.
func (w *Watcher) SetDebounce(d time.Duration) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.debounce = d
}

// Watch starts watching a binding file or a directory of binding files.
func (w *Watcher) Watch(path string) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.closed {
		return ErrWatcherClosed
	}

	abs, err := filepath.Abs(path)
	if err != nil {
		return err
	}
	return w.fsw.Add(abs)
}

// Close stops the watcher and waits for in-flight reloads to finish.
func (w *Watcher) Close() error {
	w.mu.Lock()
	if w.closed {
		w.mu.Unlock()
		return nil
	}
	w.closed = true
	for _, t := range w.pending {
		t.Stop()
	}
	close(w.closeCh)
	w.mu.Unlock()

	err := w.fsw.Close()
	w.wg.Wait()
	return err
}

func (w *Watcher) processLoop() {
	defer w.wg.Done()

	for {
		select {
		case <-w.closeCh:
			return

		case ev, ok := <-w.fsw.Events:
			if !ok {
				return
			}
			if !ev.Has(fsnotify.Write) && !ev.Has(fsnotify.Create) {
				continue
			}
			if filepath.Ext(ev.Name) != ".toml" {
				continue
			}
			w.scheduleReload(ev.Name)

		case _, ok := <-w.fsw.Errors:
			if !ok {
				return
			}
			// Watch errors are not fatal; keep processing.
		}
	}
}

// scheduleReload debounces reloads per path.
func (w *Watcher) scheduleReload(path string) {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.closed {
		return
	}
	if t, ok := w.pending[path]; ok {
		t.Stop()
	}
	w.pending[path] = time.AfterFunc(w.debounce, func() {
		w.mu.Lock()
		delete(w.pending, path)
		closed := w.closed
		w.mu.Unlock()
		if closed {
			return
		}
		w.reload(path)
	})
}

func (w *Watcher) reload(path string) {
	set, err := w.loader.LoadFile(path)
	if err == nil {
		err = w.registry.Register(set)
	}
	if err != nil {
		set = nil
	}
	if w.onReload != nil {
		w.onReload(path, set, err)
	}
}
