package copyhelper

import (
	"context"
	"errors"
	"fmt"
	"sync"
)

// Clipboard writes text to the system clipboard.
type Clipboard interface {
	WriteText(ctx context.Context, text string) error
}

// StatusDisplay is the single text element that shows the copy outcome.
type StatusDisplay interface {
	SetStatusText(text string)
}

// DiagnosticLog receives failure messages that are not shown to the user.
type DiagnosticLog interface {
	Error(entry string)
}

// ErrClosed is reported when an action is issued after Close.
var ErrClosed = errors.New("copy helper closed")

// ErrNoClipboard is reported when the helper has no clipboard to write to.
var ErrNoClipboard = errors.New("no clipboard available")

// WriteError is the failure of a single clipboard write.
type WriteError struct {
	Action string
	Err    error
}

func (e *WriteError) Error() string {
	return fmt.Sprintf("copying %s: %v", e.Action, e.Err)
}

func (e *WriteError) Unwrap() error { return e.Err }

// Detail returns the message supplied by the clipboard for err.
func Detail(err error) string {
	var we *WriteError
	if errors.As(err, &we) && we.Err != nil {
		return we.Err.Error()
	}
	return err.Error()
}

// Result is the settled outcome of one clipboard write. Err is nil on
// success and a *WriteError otherwise.
type Result struct {
	Action Action
	Err    error
}

// OK reports whether the write succeeded.
func (r Result) OK() bool { return r.Err == nil }

// Helper issues copy actions and applies their outcome.
type Helper struct {
	clipboard Clipboard
	status    StatusDisplay
	log       DiagnosticLog
	loop      *Loop

	// settleMu keeps continuations from overlapping when one is applied
	// outside the loop.
	settleMu sync.Mutex

	command Action
	link    Action
}

// Option configures optional Helper behavior.
type Option func(*Helper)

// WithActions replaces the default command and link actions.
func WithActions(command, link Action) Option {
	return func(h *Helper) {
		h.command = command
		h.link = link
	}
}

// WithLoop delivers continuations on l instead of a loop owned by the helper.
func WithLoop(l *Loop) Option {
	return func(h *Helper) { h.loop = l }
}

// New creates a Helper. A nil log discards failure entries.
func New(cb Clipboard, status StatusDisplay, log DiagnosticLog, opts ...Option) *Helper {
	h := &Helper{
		clipboard: cb,
		status:    status,
		log:       log,
		command:   CommandAction(),
		link:      LinkAction(),
	}
	for _, opt := range opts {
		opt(h)
	}
	if h.loop == nil {
		h.loop = NewLoop()
	}
	if h.log == nil {
		h.log = discardLog{}
	}
	return h
}

// Command returns the configured command action.
func (h *Helper) Command() Action { return h.command }

// Link returns the configured link action.
func (h *Helper) Link() Action { return h.link }

// CopyCommand copies the command text. It returns immediately; the outcome is
// applied on the helper's loop once the write settles.
func (h *Helper) CopyCommand(ctx context.Context) {
	h.Copy(ctx, h.command)
}

// CopyLink copies the link text. It returns immediately; the outcome is
// applied on the helper's loop once the write settles.
func (h *Helper) CopyLink(ctx context.Context) {
	h.Copy(ctx, h.link)
}

// Copy issues the write for a without waiting for it. When several writes
// overlap, the status display shows whichever succeeded last.
func (h *Helper) Copy(ctx context.Context, a Action) {
	started := h.loop.Go(func() func() {
		r := h.Write(ctx, a)
		return func() { h.Settle(r) }
	})
	if !started {
		h.Settle(Result{Action: a, Err: &WriteError{Action: a.Name, Err: ErrClosed}})
	}
}

// Write performs the clipboard write for a and returns its outcome. It blocks
// until the clipboard answers.
func (h *Helper) Write(ctx context.Context, a Action) Result {
	if h.clipboard == nil {
		return Result{Action: a, Err: &WriteError{Action: a.Name, Err: ErrNoClipboard}}
	}
	if err := h.clipboard.WriteText(ctx, a.Text); err != nil {
		return Result{Action: a, Err: &WriteError{Action: a.Name, Err: err}}
	}
	return Result{Action: a}
}

// Settle applies r: the status display is overwritten on success, and a
// single diagnostic entry is written on failure. Calls never overlap.
func (h *Helper) Settle(r Result) {
	h.settleMu.Lock()
	defer h.settleMu.Unlock()
	if r.Err != nil {
		h.log.Error(r.Action.FailureEntry(Detail(r.Err)))
		return
	}
	if h.status != nil {
		h.status.SetStatusText(r.Action.StatusText())
	}
}

// Wait blocks until every issued action has settled or ctx is done.
func (h *Helper) Wait(ctx context.Context) error {
	return h.loop.Wait(ctx)
}

// Close stops accepting actions. Pending outcomes are still applied.
func (h *Helper) Close() {
	h.loop.Close()
}

type discardLog struct{}

func (discardLog) Error(string) {}
