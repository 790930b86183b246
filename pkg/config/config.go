// Package config handles loading, validating, and saving salin configuration.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/gopartner/salin/pkg/clipboard"
	"github.com/gopartner/salin/pkg/copyhelper"
	"gopkg.in/yaml.v3"
)

// FileName is the config file inside the salin directory.
const FileName = "config.yaml"

// Config is the top-level salin configuration loaded from config.yaml.
type Config struct {
	Texts     TextsConfig     `yaml:"texts"`
	Display   DisplayConfig   `yaml:"display"`
	Clipboard ClipboardConfig `yaml:"clipboard"`
	Apps      AppsConfig      `yaml:"apps"`
	Rendering RenderingConfig `yaml:"rendering"`
}

// TextsConfig holds the copied strings and the messages reported for them.
type TextsConfig struct {
	Command       string `yaml:"command"`
	Link          string `yaml:"link"`
	CommandCopied string `yaml:"command_copied"`
	CommandFailed string `yaml:"command_failed"`
	LinkCopied    string `yaml:"link_copied"`
	LinkFailed    string `yaml:"link_failed"`
}

// DisplayConfig identifies the status element.
type DisplayConfig struct {
	StatusID string `yaml:"status_id"`
}

// ClipboardConfig selects the clipboard backend.
type ClipboardConfig struct {
	Backend string `yaml:"backend"` // auto | system | native | osc52
}

// AppsConfig defines system app handoff targets.
type AppsConfig struct {
	Browser string `yaml:"browser,omitempty"`
}

// RenderingConfig defines terminal rendering behavior.
type RenderingConfig struct {
	Hyperlinks string `yaml:"hyperlinks,omitempty"` // auto | on | off
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Texts: TextsConfig{
			Command:       copyhelper.CommandText,
			Link:          copyhelper.LinkText,
			CommandCopied: copyhelper.CommandCopiedPrefix,
			CommandFailed: copyhelper.CommandFailedPrefix,
			LinkCopied:    copyhelper.LinkCopiedPrefix,
			LinkFailed:    copyhelper.LinkFailedPrefix,
		},
		Display:   DisplayConfig{StatusID: copyhelper.StatusID},
		Clipboard: ClipboardConfig{Backend: clipboard.BackendAuto},
		Apps:      AppsConfig{Browser: "default"},
		Rendering: RenderingConfig{Hyperlinks: "auto"},
	}
}

// Dir returns the path to the salin data directory (~/.salin/), creating it
// if it doesn't exist. Override with SALIN_DIR env var.
func Dir() (string, error) {
	dir := os.Getenv("SALIN_DIR")
	if dir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("determining home directory: %w", err)
		}
		dir = filepath.Join(home, ".salin")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("creating salin directory: %w", err)
	}
	return dir, nil
}

// Load reads and parses config.yaml from dir. Fields left empty in the file
// take their default values.
func Load(dir string) (*Config, error) {
	path := filepath.Join(dir, FileName)
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}
	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	cfg.fillDefaults()
	return cfg, nil
}

// LoadOrDefault is Load, except that a missing config file yields Default.
func LoadOrDefault(dir string) (*Config, error) {
	cfg, err := Load(dir)
	if errors.Is(err, fs.ErrNotExist) {
		return Default(), nil
	}
	return cfg, err
}

// fillDefaults restores defaults for fields the file set to empty strings.
func (c *Config) fillDefaults() {
	d := Default()
	setIfEmpty(&c.Texts.Command, d.Texts.Command)
	setIfEmpty(&c.Texts.Link, d.Texts.Link)
	setIfEmpty(&c.Texts.CommandCopied, d.Texts.CommandCopied)
	setIfEmpty(&c.Texts.CommandFailed, d.Texts.CommandFailed)
	setIfEmpty(&c.Texts.LinkCopied, d.Texts.LinkCopied)
	setIfEmpty(&c.Texts.LinkFailed, d.Texts.LinkFailed)
	setIfEmpty(&c.Display.StatusID, d.Display.StatusID)
	setIfEmpty(&c.Clipboard.Backend, d.Clipboard.Backend)
}

func setIfEmpty(field *string, value string) {
	if *field == "" {
		*field = value
	}
}

var envVarPattern = regexp.MustCompile(`\$\{([^}]+)\}`)

// ResolveEnvVars expands ${VAR} references in the copied texts and the
// browser command from the environment.
func ResolveEnvVars(cfg *Config) {
	cfg.Texts.Command = expandEnv(cfg.Texts.Command)
	cfg.Texts.Link = expandEnv(cfg.Texts.Link)
	cfg.Apps.Browser = expandEnv(cfg.Apps.Browser)
}

func expandEnv(s string) string {
	return envVarPattern.ReplaceAllStringFunc(s, func(match string) string {
		varName := match[2 : len(match)-1]
		if val, ok := os.LookupEnv(varName); ok {
			return val
		}
		return match // leave unresolved if env var not set
	})
}

// Save marshals the config to YAML and writes it to config.yaml in dir.
// Creates the directory if it doesn't exist.
func Save(dir string, cfg *Config) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating salin directory: %w", err)
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}

	header := "# salin configuration\n# Edit this file directly or recreate it with: salin init --force\n\n"
	path := filepath.Join(dir, FileName)
	return os.WriteFile(path, []byte(header+string(data)), 0o644)
}

// Validate checks internal consistency of the config.
func Validate(cfg *Config) error {
	for _, f := range []struct {
		name, value string
	}{
		{"texts.command", cfg.Texts.Command},
		{"texts.link", cfg.Texts.Link},
		{"display.status_id", cfg.Display.StatusID},
	} {
		if strings.TrimSpace(f.value) == "" {
			return fmt.Errorf("%s must not be empty", f.name)
		}
	}

	if strings.ContainsAny(cfg.Display.StatusID, " \t\n") {
		return fmt.Errorf("display.status_id %q must not contain whitespace", cfg.Display.StatusID)
	}

	if !clipboard.ValidBackend(cfg.Clipboard.Backend) {
		return fmt.Errorf("unknown clipboard.backend %q", cfg.Clipboard.Backend)
	}

	if cfg.Rendering.Hyperlinks != "" {
		switch strings.ToLower(cfg.Rendering.Hyperlinks) {
		case "auto", "on", "off":
			// valid
		default:
			return fmt.Errorf("invalid rendering.hyperlinks value %q", cfg.Rendering.Hyperlinks)
		}
	}

	return nil
}

// Actions returns the command and link actions described by the config.
func (c *Config) Actions() (command, link copyhelper.Action) {
	command = copyhelper.Action{
		Name:         copyhelper.NameCommand,
		Text:         c.Texts.Command,
		CopiedPrefix: c.Texts.CommandCopied,
		FailedPrefix: c.Texts.CommandFailed,
	}
	link = copyhelper.Action{
		Name:         copyhelper.NameLink,
		Text:         c.Texts.Link,
		CopiedPrefix: c.Texts.LinkCopied,
		FailedPrefix: c.Texts.LinkFailed,
	}
	return command, link
}
