package clipboard

import (
	"context"
	"fmt"
	"sync"
	"time"
	"unicode/utf8"

	"go.uber.org/zap"
)

// DefaultPollingInterval is the tick interval used when none is configured
const DefaultPollingInterval = time.Second

// ChangeFunc receives clipboard text that differs from the last seen value
type ChangeFunc func(text string)

// Watcher polls a Provider and reports new, non-empty clipboard text.
type Watcher struct {
	provider Provider
	onChange ChangeFunc
	logger   *zap.Logger
	interval time.Duration

	mu       sync.Mutex
	lastSeen string
}

// NewWatcher creates a watcher. A non-positive interval falls back to
// DefaultPollingInterval.
func NewWatcher(provider Provider, onChange ChangeFunc, logger *zap.Logger, interval time.Duration) *Watcher {
	if logger == nil {
		logger = zap.NewNop()
	}
	if interval <= 0 {
		interval = DefaultPollingInterval
	}
	return &Watcher{
		provider: provider,
		onChange: onChange,
		logger:   logger,
		interval: interval,
	}
}

// Interval returns the polling interval
func (w *Watcher) Interval() time.Duration {
	return w.interval
}

// LastSeen returns the last clipboard text passed to the change callback
func (w *Watcher) LastSeen() string {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.lastSeen
}

// Poll performs one tick. Read failures are logged and treated as no change,
// leaving the last seen text untouched.
func (w *Watcher) Poll() {
	w.mu.Lock()
	defer w.mu.Unlock()

	text, err := w.read()
	if err != nil {
		w.logger.Warn("Error reading clipboard", zap.Error(err))
		return
	}

	if text == "" || text == w.lastSeen {
		return
	}

	w.lastSeen = text
	w.logger.Debug("New clipboard text detected",
		zap.Int("chars", utf8.RuneCountInString(text)))

	w.dispatch(text)
}

// Run polls on every tick until ctx is cancelled
func (w *Watcher) Run(ctx context.Context) error {
	w.logger.Info("Starting clipboard watcher", zap.Duration("interval", w.interval))

	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			w.logger.Info("Clipboard watcher stopped")
			return nil
		case <-ticker.C:
			w.Poll()
		}
	}
}

func (w *Watcher) read() (text string, err error) {
	defer func() {
		if r := recover(); r != nil {
			text, err = "", fmt.Errorf("clipboard provider panicked: %v", r)
		}
	}()
	return ReadText(w.provider)
}

func (w *Watcher) dispatch(text string) {
	if w.onChange == nil {
		return
	}
	defer func() {
		if r := recover(); r != nil {
			w.logger.Error("Clipboard change handler panicked", zap.Any("panic", r))
		}
	}()
	w.onChange(text)
}
