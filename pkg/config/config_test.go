package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gopartner/salin/pkg/copyhelper"
)

const testConfig = `
texts:
  command: make run
  link: ${SALIN_TEST_LINK}
  command_copied: "Copied: "
display:
  status_id: statusLine
clipboard:
  backend: osc52
apps:
  browser: firefox
rendering:
  hyperlinks: off
`

func writeTestConfig(t *testing.T, dir, content string) {
	t.Helper()
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, FileName), []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
}

func TestDefault(t *testing.T) {
	cfg := Default()
	if cfg.Texts.Command != "npm start" {
		t.Errorf("command: got %q", cfg.Texts.Command)
	}
	if cfg.Texts.Link != "https://github.com/Gopartner/android-sdk-installer-termux" {
		t.Errorf("link: got %q", cfg.Texts.Link)
	}
	if cfg.Display.StatusID != "copiedText" {
		t.Errorf("status id: got %q", cfg.Display.StatusID)
	}
	if err := Validate(cfg); err != nil {
		t.Errorf("default config should be valid: %v", err)
	}
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	writeTestConfig(t, dir, testConfig)

	cfg, err := Load(dir)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Texts.Command != "make run" {
		t.Errorf("expected command make run, got %q", cfg.Texts.Command)
	}
	if cfg.Texts.CommandCopied != "Copied: " {
		t.Errorf("expected trailing space preserved, got %q", cfg.Texts.CommandCopied)
	}
	if cfg.Display.StatusID != "statusLine" {
		t.Errorf("expected status id statusLine, got %q", cfg.Display.StatusID)
	}
	if cfg.Clipboard.Backend != "osc52" {
		t.Errorf("expected backend osc52, got %q", cfg.Clipboard.Backend)
	}
	if cfg.Rendering.Hyperlinks != "off" {
		t.Errorf("expected hyperlinks off, got %q", cfg.Rendering.Hyperlinks)
	}
}

func TestLoadKeepsDefaultsForMissingFields(t *testing.T) {
	dir := t.TempDir()
	writeTestConfig(t, dir, testConfig)

	cfg, err := Load(dir)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Texts.CommandFailed != copyhelper.CommandFailedPrefix {
		t.Errorf("command_failed: got %q", cfg.Texts.CommandFailed)
	}
	if cfg.Texts.LinkCopied != copyhelper.LinkCopiedPrefix {
		t.Errorf("link_copied: got %q", cfg.Texts.LinkCopied)
	}
}

func TestLoadEmptyStringsFallBack(t *testing.T) {
	dir := t.TempDir()
	writeTestConfig(t, dir, "texts:\n  command: \"\"\ndisplay:\n  status_id: \"\"\n")

	cfg, err := Load(dir)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Texts.Command != copyhelper.CommandText {
		t.Errorf("command: got %q", cfg.Texts.Command)
	}
	if cfg.Display.StatusID != copyhelper.StatusID {
		t.Errorf("status id: got %q", cfg.Display.StatusID)
	}
}

func TestLoadMissing(t *testing.T) {
	dir := t.TempDir()
	_, err := Load(dir)
	if err == nil {
		t.Fatal("expected error loading missing config")
	}
}

func TestLoadOrDefaultMissing(t *testing.T) {
	cfg, err := LoadOrDefault(t.TempDir())
	if err != nil {
		t.Fatalf("LoadOrDefault: %v", err)
	}
	if cfg.Texts.Command != copyhelper.CommandText {
		t.Errorf("expected default command, got %q", cfg.Texts.Command)
	}
}

func TestLoadOrDefaultInvalidYAML(t *testing.T) {
	dir := t.TempDir()
	writeTestConfig(t, dir, "texts: [unclosed")
	if _, err := LoadOrDefault(dir); err == nil {
		t.Fatal("expected parse error")
	}
}

func TestResolveEnvVars(t *testing.T) {
	dir := t.TempDir()
	writeTestConfig(t, dir, testConfig)
	t.Setenv("SALIN_TEST_LINK", "https://example.com/repo")

	cfg, err := Load(dir)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Texts.Link != "${SALIN_TEST_LINK}" {
		t.Errorf("expected unresolved reference, got %q", cfg.Texts.Link)
	}

	ResolveEnvVars(cfg)

	if cfg.Texts.Link != "https://example.com/repo" {
		t.Errorf("expected resolved link, got %q", cfg.Texts.Link)
	}
	if cfg.Apps.Browser != "firefox" {
		t.Errorf("expected browser unchanged, got %q", cfg.Apps.Browser)
	}
}

func TestResolveEnvVarsUnset(t *testing.T) {
	cfg := Default()
	cfg.Texts.Command = "${SALIN_DEFINITELY_UNSET_VAR}"
	ResolveEnvVars(cfg)
	if cfg.Texts.Command != "${SALIN_DEFINITELY_UNSET_VAR}" {
		t.Errorf("unset var should stay as-is, got %q", cfg.Texts.Command)
	}
}

func TestSaveRoundTrip(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested")
	cfg := Default()
	cfg.Texts.Command = "npm run dev"

	if err := Save(dir, cfg); err != nil {
		t.Fatalf("Save: %v", err)
	}

	data, err := os.ReadFile(filepath.Join(dir, FileName))
	if err != nil {
		t.Fatal(err)
	}
	if !strings.HasPrefix(string(data), "# salin configuration") {
		t.Errorf("missing header: %q", string(data)[:40])
	}

	loaded, err := Load(dir)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if loaded.Texts.Command != "npm run dev" {
		t.Errorf("command: got %q", loaded.Texts.Command)
	}
	if loaded.Texts.CommandCopied != copyhelper.CommandCopiedPrefix {
		t.Errorf("prefix lost its trailing space: %q", loaded.Texts.CommandCopied)
	}
}

func TestDirFromEnv(t *testing.T) {
	want := filepath.Join(t.TempDir(), "salin")
	t.Setenv("SALIN_DIR", want)

	got, err := Dir()
	if err != nil {
		t.Fatalf("Dir: %v", err)
	}
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
	if info, err := os.Stat(got); err != nil || !info.IsDir() {
		t.Errorf("directory not created: %v", err)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{"empty command", func(c *Config) { c.Texts.Command = "  " }, "texts.command"},
		{"empty link", func(c *Config) { c.Texts.Link = "" }, "texts.link"},
		{"empty status id", func(c *Config) { c.Display.StatusID = "" }, "display.status_id"},
		{"status id whitespace", func(c *Config) { c.Display.StatusID = "copied text" }, "whitespace"},
		{"unknown backend", func(c *Config) { c.Clipboard.Backend = "carrier-pigeon" }, "clipboard.backend"},
		{"bad hyperlinks", func(c *Config) { c.Rendering.Hyperlinks = "sometimes" }, "rendering.hyperlinks"},
		{"valid", func(c *Config) {}, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)
			err := Validate(cfg)
			if tt.wantErr == "" {
				if err != nil {
					t.Errorf("unexpected error: %v", err)
				}
				return
			}
			if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("expected error containing %q, got %v", tt.wantErr, err)
			}
		})
	}
}

func TestActions(t *testing.T) {
	cfg := Default()
	command, link := cfg.Actions()
	if command != copyhelper.CommandAction() {
		t.Errorf("command action: got %+v", command)
	}
	if link != copyhelper.LinkAction() {
		t.Errorf("link action: got %+v", link)
	}
}
