package clipboard

import (
	"context"

	"github.com/atotto/clipboard"
)

// Native copies through github.com/atotto/clipboard.
type Native struct{}

// WriteText implements Writer. The native driver cannot be cancelled once
// started, so ctx is only checked before the write.
func (Native) WriteText(ctx context.Context, text string) error {
	if clipboard.Unsupported {
		return ErrUnavailable
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	return clipboard.WriteAll(text)
}
