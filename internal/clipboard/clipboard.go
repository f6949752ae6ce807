// Package clipboard writes text to the system clipboard.
//
// System uses the platform clipboard utilities through atotto/clipboard. OSC52
// asks the terminal to set the clipboard with an escape sequence, which works
// over SSH and on headless hosts. Auto tries System first and falls back to
// OSC52 when no platform clipboard is available.
package clipboard

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/atotto/clipboard"
	osc52 "github.com/aymanbagabas/go-osc52/v2"
)

// ErrUnsupported is returned when no clipboard facility is available.
var ErrUnsupported = errors.New("clipboard: unsupported on this platform")

// Writer writes text to a clipboard. Implementations may block and must
// honour ctx cancellation.
type Writer interface {
	WriteText(ctx context.Context, text string) error
}

// WriterFunc adapts a func to Writer.
type WriterFunc func(ctx context.Context, text string) error

func (f WriterFunc) WriteText(ctx context.Context, text string) error { return f(ctx, text) }

// Modes accepted by New.
const (
	ModeAuto   = "auto"
	ModeSystem = "system"
	ModeOSC52  = "osc52"
)

// New returns the Writer for mode. out receives OSC 52 sequences and is
// normally the terminal (stdout or stderr).
func New(mode string, out io.Writer) (Writer, error) {
	switch strings.ToLower(strings.TrimSpace(mode)) {
	case "", ModeAuto:
		return Auto{Primary: System{}, Fallback: OSC52{Out: out}}, nil
	case ModeSystem:
		return System{}, nil
	case ModeOSC52:
		return OSC52{Out: out}, nil
	default:
		return nil, fmt.Errorf("unknown clipboard mode %q (want auto|system|osc52)", mode)
	}
}

// System writes through the platform clipboard.
type System struct{}

// WriteText implements Writer. The platform call cannot be interrupted, so it
// runs on its own goroutine and WriteText returns as soon as ctx is done.
func (System) WriteText(ctx context.Context, text string) error {
	if clipboard.Unsupported {
		return ErrUnsupported
	}
	done := make(chan error, 1)
	go func() { done <- clipboard.WriteAll(text) }()
	select {
	case err := <-done:
		if err != nil {
			return fmt.Errorf("write system clipboard: %w", err)
		}
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// OSC52 writes an OSC 52 "set clipboard" sequence to Out.
type OSC52 struct {
	Out io.Writer
	// Tmux and Screen wrap the sequence for terminal multiplexers.
	Tmux   bool
	Screen bool
}

// WriteText implements Writer.
func (o OSC52) WriteText(ctx context.Context, text string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if o.Out == nil {
		return ErrUnsupported
	}
	seq := osc52.New(text)
	switch {
	case o.Tmux:
		seq = seq.Tmux()
	case o.Screen:
		seq = seq.Screen()
	}
	if _, err := seq.WriteTo(o.Out); err != nil {
		return fmt.Errorf("write osc52 sequence: %w", err)
	}
	return nil
}

// Auto tries Primary and uses Fallback when Primary reports ErrUnsupported.
type Auto struct {
	Primary  Writer
	Fallback Writer
}

// WriteText implements Writer.
func (a Auto) WriteText(ctx context.Context, text string) error {
	err := a.Primary.WriteText(ctx, text)
	if errors.Is(err, ErrUnsupported) && a.Fallback != nil {
		return a.Fallback.WriteText(ctx, text)
	}
	return err
}
