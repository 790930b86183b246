// Package render provides terminal markdown rendering, the status displays,
// and the interactive copy page.
package render

import (
	"fmt"

	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/glamour/ansi"
	"github.com/charmbracelet/glamour/styles"
	"github.com/muesli/termenv"
)

// RenderMarkdown renders markdown to styled terminal output using Glamour.
// On TierRich terminals the custom salin style is used; otherwise the style
// follows the terminal background, or plain text without color support.
func RenderMarkdown(markdown string, width int, tier ...Tier) (string, error) {
	if width <= 0 {
		width = 80
	}

	profile := termenv.EnvColorProfile()
	var styleOpt glamour.TermRendererOption
	switch {
	case len(tier) > 0 && tier[0] == TierRich:
		styleOpt = glamour.WithStyles(salinStyle())
	case profile == termenv.Ascii:
		styleOpt = glamour.WithStandardStyle(styles.NoTTYStyle)
	default:
		styleOpt = glamour.WithAutoStyle()
	}

	r, err := glamour.NewTermRenderer(
		styleOpt,
		glamour.WithColorProfile(profile),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return "", fmt.Errorf("creating renderer: %w", err)
	}
	out, err := r.Render(markdown)
	if err != nil {
		return "", fmt.Errorf("rendering markdown: %w", err)
	}
	return out, nil
}

// salinStyle returns a Glamour style based on TokyoNight with a banner H1
// and a highlighted code block for the command.
func salinStyle() ansi.StyleConfig {
	s := styles.TokyoNightStyleConfig

	s.H1.BackgroundColor = stringPtr("#1a1b26")
	s.CodeBlock.Margin = uintPtr(1)

	return s
}

func stringPtr(s string) *string { return &s }

func uintPtr(u uint) *uint { return &u }
