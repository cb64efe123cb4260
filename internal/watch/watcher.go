// Package watch re-runs the translation whenever the input file changes,
// using a directory-level fsnotify watcher with debouncing.
package watch

import (
	"context"
	"log/slog"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/google/uuid"

	"git.home.luguber.info/inful/lbpc/internal/errors"
)

// TranslateFunc runs one translation. Watch-mode errors are terminal for the
// run, not for the watcher.
type TranslateFunc func() error

// Watcher monitors a source file and retranslates on change.
type Watcher struct {
	inputPath    string
	translate    TranslateFunc
	watcher      *fsnotify.Watcher
	stopChan     chan struct{}
	rebuildChan  chan struct{}
	debounceTime time.Duration
	logger       *slog.Logger
}

// NewWatcher creates a watcher for inputPath. The directory containing the
// file is watched rather than the file itself, which survives editors that
// replace files on save.
func NewWatcher(inputPath string, translate TranslateFunc) (*Watcher, error) {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, errors.Wrap(err, errors.KindIO, "create file watcher")
	}
	absPath, err := filepath.Abs(inputPath)
	if err != nil {
		fw.Close()
		return nil, errors.Wrap(err, errors.KindIO, "resolve input path")
	}
	return &Watcher{
		inputPath:    absPath,
		translate:    translate,
		watcher:      fw,
		stopChan:     make(chan struct{}),
		rebuildChan:  make(chan struct{}, 1),
		debounceTime: 300 * time.Millisecond,
		logger:       slog.Default(),
	}, nil
}

// Start runs an initial translation and then begins monitoring. It returns
// after the watch goroutines are running.
func (w *Watcher) Start(ctx context.Context) error {
	dir := filepath.Dir(w.inputPath)
	if err := w.watcher.Add(dir); err != nil {
		return errors.Wrap(err, errors.KindIO, "watch input directory")
	}

	w.logger.Info("Watching for changes", "input", w.inputPath)
	w.runOnce()

	go w.watchLoop(ctx)
	go w.rebuildLoop(ctx)
	return nil
}

// Stop shuts the watcher down. Safe to call once.
func (w *Watcher) Stop() error {
	close(w.stopChan)
	if err := w.watcher.Close(); err != nil {
		return errors.Wrap(err, errors.KindIO, "close file watcher")
	}
	return nil
}

// watchLoop forwards relevant filesystem events into the rebuild channel.
func (w *Watcher) watchLoop(ctx context.Context) {
	inputFile := filepath.Base(w.inputPath)
	for {
		select {
		case <-ctx.Done():
			return
		case <-w.stopChan:
			return
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if filepath.Base(event.Name) != inputFile {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			// Non-blocking send; a pending rebuild absorbs bursts.
			select {
			case w.rebuildChan <- struct{}{}:
			default:
			}
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			w.logger.Error("File watcher error", "error", err)
		}
	}
}

// rebuildLoop debounces rebuild requests and runs translations.
func (w *Watcher) rebuildLoop(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			return
		case <-w.stopChan:
			return
		case <-w.rebuildChan:
			timer := time.NewTimer(w.debounceTime)
			select {
			case <-ctx.Done():
				timer.Stop()
				return
			case <-w.stopChan:
				timer.Stop()
				return
			case <-timer.C:
			}
			w.runOnce()
		}
	}
}

// runOnce executes one translation with a fresh run ID. Failures are logged
// and the watcher keeps running.
func (w *Watcher) runOnce() {
	runID := uuid.NewString()
	w.logger.Info("Translating", "run_id", runID, "input", w.inputPath)
	if err := w.translate(); err != nil {
		w.logger.Error("Translation failed", "run_id", runID, "error", err)
		return
	}
	w.logger.Info("Translation succeeded", "run_id", runID)
}
