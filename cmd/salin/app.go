package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync/atomic"

	"github.com/gopartner/salin/pkg/clipboard"
	"github.com/gopartner/salin/pkg/config"
	"github.com/gopartner/salin/pkg/copyhelper"
)

// logFileName is the diagnostic log written by the interactive page.
const logFileName = "salin.log"

// newClipboard builds the clipboard writer. Tests replace it.
var newClipboard = clipboard.New

// errCopyFailed is returned when a one-shot copy fails. The failure entry has
// already been written to the diagnostic log, so main prints nothing more.
var errCopyFailed = errors.New("copy failed")

// loadConfig reads config.yaml from the salin directory, falling back to the
// built-in defaults when the file is missing.
func loadConfig() (string, *config.Config, error) {
	dir, err := config.Dir()
	if err != nil {
		return "", nil, err
	}
	cfg, err := config.LoadOrDefault(dir)
	if err != nil {
		return "", nil, err
	}
	config.ResolveEnvVars(cfg)
	if err := config.Validate(cfg); err != nil {
		return "", nil, fmt.Errorf("invalid %s: %w", filepath.Join(dir, config.FileName), err)
	}
	return dir, cfg, nil
}

// terminalOut returns os.Stdout when it is a terminal, so OSC 52 sequences
// are only emitted where an emulator can read them.
func terminalOut() io.Writer {
	if isTerminal(os.Stdout) {
		return os.Stdout
	}
	return nil
}

// newHelper wires the configured texts and clipboard backend into a helper.
func newHelper(cfg *config.Config, out io.Writer, status copyhelper.StatusDisplay, log copyhelper.DiagnosticLog) (*copyhelper.Helper, error) {
	cb, err := newClipboard(cfg.Clipboard.Backend, out)
	if err != nil {
		return nil, err
	}
	command, link := cfg.Actions()
	return copyhelper.New(cb, status, log, copyhelper.WithActions(command, link)), nil
}

// countingLog forwards failure entries and counts them.
type countingLog struct {
	next     copyhelper.DiagnosticLog
	failures atomic.Int32
}

func (l *countingLog) Error(entry string) {
	l.failures.Add(1)
	l.next.Error(entry)
}

func (l *countingLog) Failed() bool {
	return l.failures.Load() > 0
}
