package ingest

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/jackzampolin/fnol/internal/claims"
)

// DefaultDebounce is how long a file must be quiet before it is processed.
const DefaultDebounce = 250 * time.Millisecond

// WatchConfig configures an inbox Watcher.
type WatchConfig struct {
	Dir       string                   // Directory to watch
	Processor func() *claims.Processor // Returns the processor to use; called per document
	Handle    func(Outcome)            // Receives every outcome, from the Run goroutine
	MaxBytes  int64
	Validate  bool
	Debounce  time.Duration
	Logger    *slog.Logger
}

// Watcher processes documents as they land in a directory. Each file is
// processed once its writes have settled for the debounce interval.
type Watcher struct {
	cfg     WatchConfig
	fsw     *fsnotify.Watcher
	logger  *slog.Logger
	pending map[string]*pendingFile
	ready   chan settled
	gen     uint64
}

// pendingFile is a file waiting for its writes to settle. gen identifies
// the latest timer; signals from older timers are dropped.
type pendingFile struct {
	timer *time.Timer
	gen   uint64
}

// settled is sent when a debounce timer fires.
type settled struct {
	path string
	gen  uint64
}

// NewWatcher starts watching cfg.Dir. Events are only consumed once Run is
// called.
func NewWatcher(cfg WatchConfig) (*Watcher, error) {
	if cfg.Processor == nil || cfg.Handle == nil {
		return nil, fmt.Errorf("watcher requires a processor and a handler")
	}
	if cfg.Debounce <= 0 {
		cfg.Debounce = DefaultDebounce
	}
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	info, err := os.Stat(cfg.Dir)
	if err != nil {
		return nil, fmt.Errorf("failed to stat inbox: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("inbox is not a directory: %s", cfg.Dir)
	}

	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create file watcher: %w", err)
	}
	if err := fsw.Add(cfg.Dir); err != nil {
		fsw.Close()
		return nil, fmt.Errorf("failed to watch %s: %w", cfg.Dir, err)
	}

	return &Watcher{
		cfg:     cfg,
		fsw:     fsw,
		logger:  logger,
		pending: make(map[string]*pendingFile),
		ready:   make(chan settled),
	}, nil
}

// Run consumes file events until ctx is cancelled.
func (w *Watcher) Run(ctx context.Context) error {
	defer w.fsw.Close()
	defer w.stopPending()

	w.logger.Info("watching inbox", "dir", w.cfg.Dir)

	for {
		select {
		case <-ctx.Done():
			w.logger.Info("stopped watching inbox", "dir", w.cfg.Dir)
			return nil

		case ev, ok := <-w.fsw.Events:
			if !ok {
				return nil
			}
			w.handleEvent(ctx, ev)

		case err, ok := <-w.fsw.Errors:
			if !ok {
				return nil
			}
			w.logger.Warn("file watcher error", "error", err)

		case s := <-w.ready:
			w.onSettled(s)
		}
	}
}

func (w *Watcher) handleEvent(ctx context.Context, ev fsnotify.Event) {
	path := ev.Name

	if ev.Has(fsnotify.Remove) || ev.Has(fsnotify.Rename) {
		if p, ok := w.pending[path]; ok {
			p.timer.Stop()
			delete(w.pending, path)
		}
		return
	}
	if !ev.Has(fsnotify.Create) && !ev.Has(fsnotify.Write) {
		return
	}
	if strings.HasPrefix(filepath.Base(path), ".") {
		return
	}
	if err := Supported(path); err != nil {
		w.logger.Debug("skipping file", "path", path, "error", err)
		return
	}

	// Restart the quiet period. A timer that already fired may still be
	// blocked sending; its stale generation is dropped in onSettled.
	if p, ok := w.pending[path]; ok {
		p.timer.Stop()
	}
	w.gen++
	s := settled{path: path, gen: w.gen}
	timer := time.AfterFunc(w.cfg.Debounce, func() {
		select {
		case w.ready <- s:
		case <-ctx.Done():
		}
	})
	w.pending[path] = &pendingFile{timer: timer, gen: s.gen}
}

// onSettled processes a file once its latest debounce timer fires.
func (w *Watcher) onSettled(s settled) {
	p, ok := w.pending[s.path]
	if !ok || p.gen != s.gen {
		return
	}
	delete(w.pending, s.path)
	w.process(s.path)
}

func (w *Watcher) process(path string) {
	info, err := os.Stat(path)
	if err != nil || info.IsDir() {
		return
	}

	out := processOne(w.cfg.Processor(), path, w.cfg.MaxBytes, w.cfg.Validate, w.logger)
	if out.Err != nil && !IsInputError(out.Err) {
		w.logger.Error("failed to process document", "path", path, "error", out.Err)
	}
	w.cfg.Handle(out)
}

func (w *Watcher) stopPending() {
	for path, p := range w.pending {
		p.timer.Stop()
		delete(w.pending, path)
	}
}
