package input

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"golang.org/x/time/rate"

	"github.com/custodia-labs/radix-cli/internal/core/domain"
	"github.com/custodia-labs/radix-cli/internal/core/ports/driven"
	"github.com/custodia-labs/radix-cli/internal/logger"
)

// DefaultWatchInterval is the minimum gap between two reloads of a watched file.
const DefaultWatchInterval = 250 * time.Millisecond

// Update is one reload of a watched file.
type Update struct {
	// Values holds the decoded sequence when Err is nil.
	Values []int64

	// Err reports a read or decode failure. The watch continues.
	Err error
}

// Watcher follows a file and decodes it after every change.
type Watcher struct {
	path    string
	format  domain.InputFormat
	decoder driven.SequenceDecoder
	limiter *rate.Limiter
}

// NewWatcher creates a watcher for path. An interval of zero or less uses
// DefaultWatchInterval.
func NewWatcher(path string, format domain.InputFormat, decoder driven.SequenceDecoder, interval time.Duration) *Watcher {
	if interval <= 0 {
		interval = DefaultWatchInterval
	}
	return &Watcher{
		path:    filepath.Clean(path),
		format:  format,
		decoder: decoder,
		limiter: rate.NewLimiter(rate.Every(interval), 1),
	}
}

// Path returns the watched file path.
func (w *Watcher) Path() string {
	return w.path
}

// Watch emits the current contents of the file, then a new Update after
// each write. The parent directory is watched so that editors replacing the
// file by rename are still followed. The channel closes when ctx is done.
func (w *Watcher) Watch(ctx context.Context) (<-chan Update, error) {
	if _, err := os.Stat(w.path); err != nil {
		return nil, fmt.Errorf("watch %s: %w", w.path, err)
	}

	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("create watcher: %w", err)
	}
	if err := fsw.Add(filepath.Dir(w.path)); err != nil {
		fsw.Close()
		return nil, fmt.Errorf("watch %s: %w", filepath.Dir(w.path), err)
	}

	updates := make(chan Update)
	go func() {
		defer close(updates)
		defer fsw.Close()

		if !w.emit(ctx, updates) {
			return
		}

		for {
			select {
			case <-ctx.Done():
				return
			case event, ok := <-fsw.Events:
				if !ok {
					return
				}
				if !w.relevant(event) {
					continue
				}
				logger.Debug("watch: %s %s", event.Op, event.Name)
				if err := w.limiter.Wait(ctx); err != nil {
					return
				}
				drain(fsw.Events)
				if !w.emit(ctx, updates) {
					return
				}
			case err, ok := <-fsw.Errors:
				if !ok {
					return
				}
				logger.Warn("watch error: %v", err)
			}
		}
	}()

	return updates, nil
}

func (w *Watcher) relevant(event fsnotify.Event) bool {
	if filepath.Clean(event.Name) != w.path {
		return false
	}
	return event.Has(fsnotify.Write) || event.Has(fsnotify.Create)
}

// emit decodes the file and sends the result. It returns false once ctx is done.
func (w *Watcher) emit(ctx context.Context, updates chan<- Update) bool {
	update := w.load()
	select {
	case updates <- update:
		return true
	case <-ctx.Done():
		return false
	}
}

func (w *Watcher) load() Update {
	f, err := os.Open(w.path)
	if err != nil {
		return Update{Err: fmt.Errorf("open %s: %w", w.path, err)}
	}
	defer f.Close()

	values, err := w.decoder.Decode(f, w.format)
	if err != nil {
		return Update{Err: err}
	}
	return Update{Values: values}
}

// drain discards events queued while waiting on the limiter; the next load
// reads the latest contents anyway.
func drain(events <-chan fsnotify.Event) {
	for {
		select {
		case _, ok := <-events:
			if !ok {
				return
			}
		default:
			return
		}
	}
}
