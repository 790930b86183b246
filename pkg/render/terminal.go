package render

import (
	"strings"

	"github.com/BourgeoisBear/rasterm"
)

// Tier describes how much the terminal can render beyond plain text.
type Tier int

const (
	TierPlain Tier = iota // no OSC 8 hyperlinks
	TierRich              // OSC 8 hyperlinks and the custom style
)

// DetectTier resolves the rendering.hyperlinks setting.
// Values: "auto" (default), "on", "off".
func DetectTier(hyperlinks string) Tier {
	switch strings.ToLower(hyperlinks) {
	case "on":
		return TierRich
	case "off":
		return TierPlain
	case "", "auto":
		return detectTier()
	default:
		return TierPlain
	}
}

// detectTier treats terminals that speak the Kitty or iTerm2 graphics
// protocols as hyperlink capable; all of them implement OSC 8.
func detectTier() Tier {
	if rasterm.IsKittyCapable() || rasterm.IsItermCapable() {
		return TierRich
	}
	return TierPlain
}
