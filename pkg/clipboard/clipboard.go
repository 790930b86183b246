// Package clipboard provides the clipboard backends salin can write to:
// platform tools, the native atotto/clipboard driver, and OSC 52 terminal
// sequences.
package clipboard

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
)

// ErrUnavailable is returned when a backend cannot run on this system.
var ErrUnavailable = errors.New("clipboard unavailable")

// Backend names accepted by New.
const (
	BackendAuto   = "auto"
	BackendSystem = "system"
	BackendNative = "native"
	BackendOSC52  = "osc52"
)

// Writer writes text to a clipboard.
type Writer interface {
	WriteText(ctx context.Context, text string) error
}

// Func adapts a plain function to Writer.
type Func func(ctx context.Context, text string) error

// WriteText calls f.
func (f Func) WriteText(ctx context.Context, text string) error { return f(ctx, text) }

// Chain tries each writer in order and stops at the first success.
type Chain []Writer

// WriteText implements Writer. When every writer fails, the returned error
// joins all of their errors.
func (c Chain) WriteText(ctx context.Context, text string) error {
	if len(c) == 0 {
		return ErrUnavailable
	}
	var errs []error
	for _, w := range c {
		if err := ctx.Err(); err != nil {
			return err
		}
		err := w.WriteText(ctx, text)
		if err == nil {
			return nil
		}
		errs = append(errs, err)
	}
	return errors.Join(errs...)
}

// New builds the writer for a backend name. out is the terminal that OSC 52
// sequences are written to; when nil the osc52 backend is left out of auto.
func New(name string, out io.Writer) (Writer, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", BackendAuto:
		chain := Chain{NewSystem(), Native{}}
		if out != nil {
			chain = append(chain, NewOSC52(out))
		}
		return chain, nil
	case BackendSystem:
		return NewSystem(), nil
	case BackendNative:
		return Native{}, nil
	case BackendOSC52:
		if out == nil {
			return nil, fmt.Errorf("osc52 backend needs a terminal: %w", ErrUnavailable)
		}
		return NewOSC52(out), nil
	default:
		return nil, fmt.Errorf("unknown clipboard backend %q", name)
	}
}

// ValidBackend reports whether name is accepted by New.
func ValidBackend(name string) bool {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", BackendAuto, BackendSystem, BackendNative, BackendOSC52:
		return true
	}
	return false
}
