package copyhelper

import (
	"context"
	"sync"
)

// Loop delivers continuations on a single goroutine. Work started with Go
// runs concurrently, but the continuations it returns run one at a time in
// the order the work finished.
type Loop struct {
	tasks chan func()

	mu      sync.Mutex
	pending int
	idle    chan struct{} // closed while nothing is pending
	closed  bool
}

// NewLoop starts a loop goroutine. Call Close to stop it.
func NewLoop() *Loop {
	idle := make(chan struct{})
	close(idle)
	l := &Loop{
		tasks: make(chan func()),
		idle:  idle,
	}
	go l.run()
	return l
}

func (l *Loop) run() {
	for task := range l.tasks {
		if task != nil {
			task()
		}
		l.done()
	}
}

func (l *Loop) done() {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.pending--
	if l.pending == 0 {
		close(l.idle)
		if l.closed {
			close(l.tasks)
		}
	}
}

// Go runs work on its own goroutine and queues the continuation it returns
// on the loop. It never blocks the caller. Go reports false, without running
// work, once the loop is closed.
func (l *Loop) Go(work func() func()) bool {
	l.mu.Lock()
	if l.closed {
		l.mu.Unlock()
		return false
	}
	if l.pending == 0 {
		l.idle = make(chan struct{})
	}
	l.pending++
	l.mu.Unlock()

	go func() {
		l.tasks <- work()
	}()
	return true
}

// Wait blocks until every continuation queued so far has run, or ctx is done.
// Work that never finishes keeps Wait blocked until ctx ends.
func (l *Loop) Wait(ctx context.Context) error {
	l.mu.Lock()
	idle := l.idle
	l.mu.Unlock()

	select {
	case <-idle:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Close stops accepting work. Continuations already pending still run; the
// loop goroutine exits after the last one.
func (l *Loop) Close() {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.closed {
		return
	}
	l.closed = true
	if l.pending == 0 {
		close(l.tasks)
	}
}
