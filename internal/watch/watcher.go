// Package watch reloads the lexicon when its table files change.
package watch

import (
	"context"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/rs/zerolog/log"
)

// DfltDebounce is how long the table files must stay quiet before a
// reload runs. Editors often write a file in several steps.
const DfltDebounce = 500 * time.Millisecond

// ReloadFunc is called after the watched files settled.
type ReloadFunc func(ctx context.Context) error

// Watcher monitors a dictionary directory for changes of the named
// table files.
type Watcher struct {
	watcher  *fsnotify.Watcher
	dir      string
	files    map[string]bool
	reload   ReloadFunc
	debounce time.Duration

	mu        sync.Mutex
	running   bool
	pendingAt time.Time
	reloads   int

	stopCh chan struct{}
	doneCh chan struct{}
}

// New creates a watcher for <dir>/<name>.json of every name in tables.
func New(dir string, tables []string, reload ReloadFunc, debounce time.Duration) (*Watcher, error) {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	files := make(map[string]bool, len(tables))
	for _, t := range tables {
		files[t+".json"] = true
	}
	if debounce <= 0 {
		debounce = DfltDebounce
	}
	return &Watcher{
		watcher:  fw,
		dir:      dir,
		files:    files,
		reload:   reload,
		debounce: debounce,
		stopCh:   make(chan struct{}),
		doneCh:   make(chan struct{}),
	}, nil
}

// Start begins watching in a goroutine. It does not block.
func (w *Watcher) Start(ctx context.Context) error {
	w.mu.Lock()
	if w.running {
		w.mu.Unlock()
		return nil
	}
	w.running = true
	w.mu.Unlock()

	if err := w.watcher.Add(w.dir); err != nil {
		w.mu.Lock()
		w.running = false
		w.mu.Unlock()
		return err
	}
	log.Info().Str("dir", w.dir).Msg("watching dictionary directory")
	go w.run(ctx)
	return nil
}

// Stop ends the watch loop and releases the underlying watcher.
func (w *Watcher) Stop() {
	w.mu.Lock()
	running := w.running
	w.running = false
	w.mu.Unlock()

	if running {
		close(w.stopCh)
		<-w.doneCh
	}
	if err := w.watcher.Close(); err != nil {
		log.Error().Err(err).Msg("failed to close dictionary watcher")
	}
}

// Reloads returns how many reloads have run.
func (w *Watcher) Reloads() int {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.reloads
}

func (w *Watcher) run(ctx context.Context) {
	defer close(w.doneCh)

	ticker := time.NewTicker(w.debounce / 5)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-w.stopCh:
			return
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			w.handleEvent(event)
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			log.Error().Err(err).Msg("dictionary watcher error")
		case <-ticker.C:
			w.reloadIfSettled(ctx)
		}
	}
}

func (w *Watcher) handleEvent(event fsnotify.Event) {
	if !w.files[filepath.Base(event.Name)] {
		return
	}
	if !event.Has(fsnotify.Create) && !event.Has(fsnotify.Write) &&
		!event.Has(fsnotify.Remove) && !event.Has(fsnotify.Rename) {
		return
	}
	log.Debug().Str("file", event.Name).Str("op", event.Op.String()).Msg("dictionary file changed")
	w.mu.Lock()
	w.pendingAt = time.Now()
	w.mu.Unlock()
}

func (w *Watcher) reloadIfSettled(ctx context.Context) {
	w.mu.Lock()
	if w.pendingAt.IsZero() || time.Since(w.pendingAt) < w.debounce {
		w.mu.Unlock()
		return
	}
	w.pendingAt = time.Time{}
	w.mu.Unlock()

	if err := w.reload(ctx); err != nil {
		log.Error().Err(err).Msg("failed to reload lexicon, keeping the previous one")
		return
	}
	w.mu.Lock()
	w.reloads++
	w.mu.Unlock()
	log.Info().Str("dir", w.dir).Msg("lexicon reloaded")
}
