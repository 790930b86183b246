package render

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
)

// StatusLine is the status element of the interactive page. It is not safe
// for concurrent use; set it from the Bubble Tea update loop only.
type StatusLine struct {
	id   string
	text string
}

// NewStatusLine creates an empty status element with the given id.
func NewStatusLine(id string) *StatusLine {
	return &StatusLine{id: id}
}

// SetStatusText replaces the displayed text.
func (s *StatusLine) SetStatusText(text string) { s.text = text }

// Text returns the displayed text.
func (s *StatusLine) Text() string { return s.text }

// ID returns the element identifier.
func (s *StatusLine) ID() string { return s.id }

// LineDisplay prints every status text as its own styled line. Used by the
// one-shot commands, where the terminal scrollback is the status element.
type LineDisplay struct {
	w     io.Writer
	style lipgloss.Style
}

// NewLineDisplay creates a LineDisplay writing to w. Colors follow w's
// terminal capabilities.
func NewLineDisplay(w io.Writer) *LineDisplay {
	r := lipgloss.NewRenderer(w)
	return &LineDisplay{
		w:     w,
		style: r.NewStyle().Bold(true).Foreground(lipgloss.Color("42")),
	}
}

// SetStatusText writes text followed by a newline.
func (d *LineDisplay) SetStatusText(text string) {
	fmt.Fprintln(d.w, d.style.Render(text))
}
