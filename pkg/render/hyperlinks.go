package render

import (
	"regexp"

	"github.com/charmbracelet/x/ansi"
)

// urlPattern matches HTTP(S) URLs, stopping before whitespace, ANSI escapes,
// closing parens/brackets/angles, or trailing punctuation.
var urlPattern = regexp.MustCompile(`https?://[^\s\x1b)\]>]+`)

// processHyperlinks wraps URLs in the rendered output with OSC 8 hyperlink
// escape sequences so they become clickable in supporting terminals.
// On TierPlain this is a no-op.
func processHyperlinks(rendered string, tier Tier) string {
	if tier == TierPlain {
		return rendered
	}

	return urlPattern.ReplaceAllStringFunc(rendered, func(url string) string {
		return ansi.SetHyperlink(url) + url + ansi.ResetHyperlink()
	})
}
