package catalog

import (
	"context"
	"io"
	"log"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/handiism/musicscales/internal/http"
)

// DefaultDebounce is how long a file must stay quiet before a reload.
const DefaultDebounce = 100 * time.Millisecond

// Reload reports the outcome of one reload attempt.
type Reload struct {
	// Catalog is the newly installed snapshot, nil when Err is set.
	Catalog *Catalog
	// Err is the load failure. The store keeps its previous snapshot.
	Err error
	// File is the changed file that triggered the reload.
	File string
}

// Watcher reloads catalog files into a Store when they change.
//
// The parent directory of every file is watched rather than the file
// itself, so editors that save by rename are picked up. URL sources are
// reloaded along with the files but never trigger a reload themselves.
type Watcher struct {
	Reloads <-chan Reload // Read-only external channel

	reloads  chan Reload
	paths    []string
	watched  map[string]bool
	store    *Store
	loader   *Loader
	logger   *log.Logger
	debounce time.Duration
	done     chan struct{}
	watcher  *fsnotify.Watcher

	ctx      context.Context
	cancel   context.CancelFunc
	started  bool
	stopOnce sync.Once
}

// NewWatcher creates a watcher that reloads paths into store.
// A nil loader uses NewLoader defaults; a nil logger discards output.
func NewWatcher(store *Store, loader *Loader, logger *log.Logger, paths ...string) (*Watcher, error) {
	if loader == nil {
		loader = NewLoader(DefaultConcurrency, logger)
	}
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}

	abs := make([]string, 0, len(paths))
	watched := make(map[string]bool, len(paths))
	for _, p := range paths {
		if http.IsURL(p) {
			abs = append(abs, p)
			continue
		}
		a, err := filepath.Abs(p)
		if err != nil {
			return nil, err
		}
		abs = append(abs, a)
		watched[a] = true
	}

	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithCancel(context.Background())
	ch := make(chan Reload, 16)
	return &Watcher{
		Reloads:  ch,
		reloads:  ch,
		paths:    abs,
		watched:  watched,
		store:    store,
		loader:   loader,
		logger:   logger,
		debounce: DefaultDebounce,
		done:     make(chan struct{}),
		watcher:  fw,
		ctx:      ctx,
		cancel:   cancel,
	}, nil
}

// Start begins watching. If a directory cannot be watched the watcher
// is stopped and the error returned.
func (w *Watcher) Start() error {
	dirs := make(map[string]bool)
	for _, p := range w.paths {
		if http.IsURL(p) {
			continue
		}
		dir := filepath.Dir(p)
		if dirs[dir] {
			continue
		}
		if err := w.watcher.Add(dir); err != nil {
			w.Stop()
			return err
		}
		dirs[dir] = true
	}

	w.started = true
	go w.loop()
	return nil
}

// Stop cancels any reload in flight, closes the watcher and the Reloads
// channel. It is safe to call more than once, and without Start.
func (w *Watcher) Stop() {
	w.stopOnce.Do(func() {
		w.cancel()
		w.watcher.Close()
		if w.started {
			<-w.done // Wait for loop to exit
		}
		close(w.reloads)
	})
}

func (w *Watcher) loop() {
	defer close(w.done)

	pending := make(map[string]time.Time)
	ticker := time.NewTicker(w.debounce)
	defer ticker.Stop()

	for {
		select {
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			name := filepath.Clean(event.Name)
			if !w.watched[name] {
				continue
			}
			if event.Has(fsnotify.Write) || event.Has(fsnotify.Create) || event.Has(fsnotify.Remove) || event.Has(fsnotify.Rename) {
				pending[name] = time.Now()
			}

		case <-ticker.C:
			if len(pending) == 0 {
				continue
			}
			now := time.Now()
			var trigger string
			for file, t := range pending {
				if now.Sub(t) < w.debounce {
					trigger = ""
					break
				}
				trigger = file
			}
			if trigger == "" {
				continue
			}
			clear(pending)
			w.reload(trigger)

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			w.logger.Printf("catalog watch error: %v", err)
		}
	}
}

// reload loads every path, installs the result, and publishes the outcome.
func (w *Watcher) reload(trigger string) {
	cat, err := w.loader.Load(w.ctx, w.paths...)
	if w.ctx.Err() != nil {
		return
	}
	r := Reload{File: trigger, Err: err}
	if err != nil {
		w.logger.Printf("reload after change to %s failed, keeping previous catalog: %v", trigger, err)
	} else {
		w.store.Swap(cat)
		r.Catalog = cat
		w.logger.Printf("reloaded catalog after change to %s: %d scales", trigger, cat.Len())
	}

	select {
	case w.reloads <- r:
	default:
		w.logger.Printf("reload event for %s dropped, no reader", trigger)
	}
}
