package router

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/BrandonKowalski/helmsman/pkg/helmsman/constants"
	"github.com/BrandonKowalski/helmsman/pkg/helmsman/internal"
	"go.uber.org/atomic"
)

// Scheduler is the serial context a Router mutates its route on.
// Every task handed to a Scheduler must run on the same single logical
// thread, in the order it became due.
type Scheduler interface {
	// Dispatch runs fn on the serial context as soon as possible.
	Dispatch(fn func())

	// After runs fn on the serial context once d has elapsed.
	// The returned function cancels the task and reports whether it was
	// cancelled before being handed to the serial context.
	After(d time.Duration, fn func()) (cancel func() bool)
}

var (
	ErrLoopStarted    = errors.New("router: loop already started")
	ErrLoopNotStarted = errors.New("router: loop not started")
)

// Loop is a Scheduler backed by a single goroutine draining a task queue.
// It plays the role of a UI main thread: routers, links and input handlers
// all post their work to it.
//
// Panics raised by tasks are not recovered. A panic on the loop is a
// programming error such as a route parameter read that does not match the
// declared route.
type Loop struct {
	tasks   chan func()
	started atomic.Bool
	ctx     context.Context
	cancel  context.CancelFunc
	stopped chan struct{}
	logger  *slog.Logger
}

// NewLoop creates a Loop with the default queue size.
func NewLoop() *Loop {
	return NewLoopWithSize(constants.DefaultLoopQueueSize)
}

// NewLoopWithSize creates a Loop buffering up to size pending tasks.
func NewLoopWithSize(size int) *Loop {
	ctx, cancel := context.WithCancel(context.Background())
	return &Loop{
		tasks:   make(chan func(), size),
		ctx:     ctx,
		cancel:  cancel,
		stopped: make(chan struct{}),
		logger:  internal.GetInternalLogger(),
	}
}

// Start begins draining the task queue on a new goroutine. Tasks
// dispatched before Start wait in the queue. The loop stops when ctx is
// cancelled or Stop is called; a stopped Loop cannot be started again.
func (l *Loop) Start(ctx context.Context) error {
	if !l.started.CompareAndSwap(false, true) {
		return ErrLoopStarted
	}

	context.AfterFunc(ctx, l.cancel)
	go l.run()

	return nil
}

// Stop stops the loop and waits for the running task to finish.
// Tasks still queued are dropped.
func (l *Loop) Stop() error {
	if !l.started.Load() {
		return ErrLoopNotStarted
	}

	l.cancel()
	<-l.stopped

	return nil
}

func (l *Loop) run() {
	defer close(l.stopped)

	for {
		select {
		case <-l.ctx.Done():
			return
		case fn := <-l.tasks:
			fn()
		}
	}
}

// Dispatch queues fn. It blocks while the queue is full and drops fn once
// the loop has stopped.
func (l *Loop) Dispatch(fn func()) {
	if l.ctx.Err() != nil {
		l.logger.Debug("Loop stopped, dropping task")
		return
	}

	select {
	case l.tasks <- fn:
	case <-l.ctx.Done():
		l.logger.Debug("Loop stopped, dropping task")
	}
}

// After queues fn once d has elapsed.
func (l *Loop) After(d time.Duration, fn func()) func() bool {
	timer := time.AfterFunc(d, func() {
		l.Dispatch(fn)
	})
	return timer.Stop
}

// Sync runs fn on the loop and waits for it to return.
// Returns ErrLoopNotStarted without running fn if the loop was never started.
// Calling Sync from a task already running on the loop deadlocks.
func (l *Loop) Sync(fn func()) error {
	if !l.started.Load() {
		return ErrLoopNotStarted
	}

	done := make(chan struct{})
	l.Dispatch(func() {
		defer close(done)
		fn()
	})

	select {
	case <-done:
		return nil
	case <-l.stopped:
		return context.Cause(l.ctx)
	}
}
