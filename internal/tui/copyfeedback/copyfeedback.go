// Package copyfeedback implements the "copy install command" affordance: it
// writes a fixed string to the clipboard and exposes a transient copied flag
// that reverts after RevertDelay.
package copyfeedback

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/benbjohnson/clock"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"gtunnel-site/internal/clipboard"
)

// RevertDelay is how long the copied flag stays set after a successful copy.
const RevertDelay = 2000 * time.Millisecond

// ErrClipboardWrite wraps every failed clipboard write. It is reported on the
// logger and never returned to callers.
var ErrClipboardWrite = errors.New("clipboard write failed")

const (
	LabelCopy   = "Copy to clipboard"
	LabelCopied = "Copied!"

	IconCopy   = "⧉"
	IconCopied = "✓"
)

// Option configures a Widget.
type Option func(*Widget)

// WithClock replaces the wall clock, mostly for tests.
func WithClock(c clock.Clock) Option {
	return func(w *Widget) { w.clock = c }
}

// WithLogger sets the diagnostic logger.
func WithLogger(l zerolog.Logger) Option {
	return func(w *Widget) { w.log = l }
}

// WithOnChange registers fn to be called with the new value every time the
// copied flag changes. fn runs without the widget lock held and may be
// called from the timer goroutine.
func WithOnChange(fn func(copied bool)) Option {
	return func(w *Widget) { w.onChange = fn }
}

// Widget is safe for concurrent use.
type Widget struct {
	cb       clipboard.Writer
	text     string
	clock    clock.Clock
	log      zerolog.Logger
	onChange func(bool)

	mu     sync.Mutex
	copied bool
	revert *clock.Timer // single pending revert, nil when none
	gen    uint64       // bumped on every schedule and cancel
}

// New returns a widget that copies text through cb.
func New(cb clipboard.Writer, text string, opts ...Option) *Widget {
	w := &Widget{cb: cb, text: text, clock: clock.New(), log: log.Logger}
	for _, o := range opts {
		o(w)
	}
	w.log = w.log.With().Str("component", "copyfeedback").Logger()
	return w
}

// Text returns the string the widget copies.
func (w *Widget) Text() string { return w.text }

// Copied reports whether success feedback is showing.
func (w *Widget) Copied() bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.copied
}

// Label is the accessible label for the current state.
func (w *Widget) Label() string {
	if w.Copied() {
		return LabelCopied
	}
	return LabelCopy
}

// Icon is the glyph for the current state.
func (w *Widget) Icon() string {
	if w.Copied() {
		return IconCopied
	}
	return IconCopy
}

// RequestCopy writes the text to the clipboard. On success the copied flag
// is set and a fresh revert is scheduled, replacing any pending one. On
// failure the state is left alone and the error is logged; RequestCopy never
// fails from the caller's point of view.
func (w *Widget) RequestCopy(ctx context.Context) {
	if w.cb == nil {
		w.report(clipboard.ErrUnsupported)
		return
	}
	if err := w.cb.WriteText(ctx, w.text); err != nil {
		w.report(err)
		return
	}

	w.mu.Lock()
	w.stopLocked()
	w.gen++
	gen := w.gen
	changed := !w.copied
	w.copied = true
	w.revert = w.clock.AfterFunc(RevertDelay, func() { w.expire(gen) })
	w.mu.Unlock()

	w.log.Debug().Int("bytes", len(w.text)).Msg("copied")
	if changed {
		w.notify(true)
	}
}

// Close cancels any pending revert and clears the copied flag.
func (w *Widget) Close() {
	w.mu.Lock()
	w.stopLocked()
	w.gen++
	changed := w.copied
	w.copied = false
	w.mu.Unlock()
	if changed {
		w.notify(false)
	}
}

// Pending reports whether a revert is scheduled.
func (w *Widget) Pending() bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.revert != nil
}

// expire runs on the timer goroutine. A timer that was superseded after it
// started firing sees a newer generation and does nothing.
func (w *Widget) expire(gen uint64) {
	w.mu.Lock()
	if gen != w.gen {
		w.mu.Unlock()
		return
	}
	w.revert = nil
	changed := w.copied
	w.copied = false
	w.mu.Unlock()
	if changed {
		w.notify(false)
	}
}

func (w *Widget) stopLocked() {
	if w.revert != nil {
		w.revert.Stop()
		w.revert = nil
	}
}

func (w *Widget) report(err error) {
	w.log.Error().Err(fmt.Errorf("%w: %w", ErrClipboardWrite, err)).Msg("copy to clipboard failed")
}

func (w *Widget) notify(copied bool) {
	if w.onChange != nil {
		w.onChange(copied)
	}
}
