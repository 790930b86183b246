// Package actions hands targets such as the project link to system apps.
package actions

import (
	"fmt"
	"net/url"
	"os/exec"
	"runtime"

	"github.com/gopartner/salin/pkg/config"
)

// Handoff opens URLs in the configured browser.
type Handoff struct {
	apps    config.AppsConfig
	goos    string
	command func(name string, args ...string) *exec.Cmd
}

// NewHandoff creates a Handoff with the given app configuration.
func NewHandoff(apps config.AppsConfig) *Handoff {
	return &Handoff{apps: apps, goos: runtime.GOOS, command: exec.Command}
}

// OpenURL opens an http(s) URL in the configured browser.
func (h *Handoff) OpenURL(rawURL string) error {
	u, err := url.Parse(rawURL)
	if err != nil {
		return fmt.Errorf("parsing %q: %w", rawURL, err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("refusing to open %q: not an http(s) URL", rawURL)
	}
	return h.open(h.apps.Browser, rawURL)
}

// open launches the given target with the configured app or system default.
func (h *Handoff) open(app, target string) error {
	name, args := app, []string{target}
	if app == "" || app == "default" {
		name, args = h.systemOpener(target)
	}

	cmd := h.command(name, args...)
	if err := cmd.Start(); err != nil {
		return fmt.Errorf("opening %q with %s: %w", target, name, err)
	}
	// Don't wait; system apps are fire-and-forget
	go cmd.Wait() //nolint:errcheck
	return nil
}

// systemOpener returns the platform default opener and its arguments.
func (h *Handoff) systemOpener(target string) (string, []string) {
	switch h.goos {
	case "darwin":
		return "open", []string{target}
	case "windows":
		return "rundll32", []string{"url.dll,FileProtocolHandler", target}
	case "android":
		return "termux-open-url", []string{target}
	}
	return "xdg-open", []string{target}
}
