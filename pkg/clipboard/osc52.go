package clipboard

import (
	"context"
	"io"
	"os"
	"strings"

	"github.com/aymanbagabas/go-osc52/v2"
)

// OSC52 asks the terminal emulator to set the clipboard with an OSC 52
// escape sequence. It works over SSH but cannot tell whether the terminal
// honoured the request.
type OSC52 struct {
	out    io.Writer
	getenv func(string) string
}

// NewOSC52 writes sequences to out.
func NewOSC52(out io.Writer) *OSC52 {
	return &OSC52{out: out, getenv: os.Getenv}
}

// WriteText implements Writer.
func (o *OSC52) WriteText(ctx context.Context, text string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	_, err := o.sequence(text).WriteTo(o.out)
	return err
}

// sequence wraps the OSC 52 request for tmux or screen when running inside one.
func (o *OSC52) sequence(text string) osc52.Sequence {
	seq := osc52.New(text)
	switch {
	case o.getenv("TMUX") != "":
		seq = seq.Tmux()
	case strings.HasPrefix(o.getenv("TERM"), "screen"):
		seq = seq.Screen()
	}
	return seq
}
