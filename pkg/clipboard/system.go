package clipboard

import (
	"context"
	"fmt"
	"os/exec"
	"runtime"
	"strings"
)

// tool is a clipboard command that reads the text from stdin.
type tool struct {
	name string
	args []string
}

// System copies through the platform clipboard command.
type System struct {
	goos     string
	lookPath func(string) (string, error)
}

// NewSystem returns a System for the running platform.
func NewSystem() *System {
	return &System{goos: runtime.GOOS, lookPath: exec.LookPath}
}

// WriteText implements Writer.
func (s *System) WriteText(ctx context.Context, text string) error {
	t, ok := s.command()
	if !ok {
		return fmt.Errorf("no clipboard tool found (install termux-api, wl-clipboard, xclip, or xsel): %w", ErrUnavailable)
	}

	cmd := exec.CommandContext(ctx, t.name, t.args...)
	cmd.Stdin = strings.NewReader(text)
	if out, err := cmd.CombinedOutput(); err != nil {
		if msg := strings.TrimSpace(string(out)); msg != "" {
			return fmt.Errorf("%s: %w: %s", t.name, err, msg)
		}
		return fmt.Errorf("%s: %w", t.name, err)
	}
	return nil
}

// command returns the clipboard tool for the platform.
func (s *System) command() (tool, bool) {
	switch s.goos {
	case "darwin":
		return tool{name: "pbcopy"}, true
	case "windows":
		return tool{name: "clip"}, true
	}

	// Termux first, then Wayland, then X11 tools.
	for _, candidate := range []tool{
		{name: "termux-clipboard-set"},
		{name: "wl-copy"},
		{name: "xclip", args: []string{"-selection", "clipboard"}},
		{name: "xsel", args: []string{"--clipboard", "--input"}},
	} {
		if _, err := s.lookPath(candidate.name); err == nil {
			return candidate, true
		}
	}
	return tool{}, false
}
