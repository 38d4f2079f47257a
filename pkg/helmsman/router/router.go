package router

import (
	"log/slog"
	"maps"
	"slices"
	"sync"
	"time"

	"github.com/BrandonKowalski/helmsman/pkg/helmsman/constants"
	"github.com/BrandonKowalski/helmsman/pkg/helmsman/internal"
	"github.com/BrandonKowalski/helmsman/pkg/helmsman/route"
	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/atomic"
)

// Mode describes what a Router is doing right now.
type Mode int

const (
	ModeIdle    Mode = iota // Route is stable, nothing scheduled
	ModeStaging             // A staged activation has a continuation pending
)

func (m Mode) String() string {
	switch m {
	case ModeIdle:
		return "Idle"
	case ModeStaging:
		return "Staging"
	default:
		return "Unknown"
	}
}

// Options configures a Router. The zero value is usable.
type Options struct {
	StageDelay             time.Duration         // Delay between staged steps; defaults to constants.DefaultStageDelay
	CancelStagedOnOverride bool                  // Pop and Reset cancel pending staged continuations first
	Logger                 *slog.Logger          // Defaults to the internal helmsman logger
	Registerer             prometheus.Registerer // Registers navigation metrics when set
}

// Listener is called after every change of the route.
type Listener func(segments route.Segments)

// Router owns the navigation route of one navigation scope.
//
// The route only changes through Activate, Pop and Reset. Those methods, as
// well as CancelStaged and CompleteTransition, must be called on the Router's
// Scheduler. Readers such as Segments, Route and Mode are safe from any
// goroutine.
type Router struct {
	id               string
	scheduler        Scheduler
	stageDelay       time.Duration
	cancelOnOverride bool
	logger           *slog.Logger
	metrics          *metrics

	current atomic.Value // route.Segments, replaced on every change
	pending atomic.Int32

	// Owned by the scheduler.
	staged    map[uint64]*continuation
	nextStage uint64

	mu           sync.Mutex
	listeners    []listenerEntry
	nextListener uint64
}

type listenerEntry struct {
	id uint64
	fn Listener
}

// continuation is the delayed re-activation of a staged target.
type continuation struct {
	cancel func() bool
	fire   func()
	done   bool
}

// New creates a Router at the root route whose mutations run on scheduler.
func New(scheduler Scheduler, options Options) *Router {
	if options.StageDelay <= 0 {
		options.StageDelay = constants.DefaultStageDelay
	}
	if options.Logger == nil {
		options.Logger = internal.GetInternalLogger()
	}

	id := uuid.NewString()
	r := &Router{
		id:               id,
		scheduler:        scheduler,
		stageDelay:       options.StageDelay,
		cancelOnOverride: options.CancelStagedOnOverride,
		logger:           options.Logger.With("router", id),
		metrics:          newMetrics(options.Registerer, id),
		staged:           make(map[uint64]*continuation),
	}
	r.current.Store(route.Segments{})

	return r
}

// ID returns the unique id of the router, used in logs and metric labels.
func (r *Router) ID() string {
	return r.id
}

// Scheduler returns the serial context the router mutates its route on.
func (r *Router) Scheduler() Scheduler {
	return r.scheduler
}

// Segments returns the current route.
func (r *Router) Segments() route.Segments {
	return r.load().Clone()
}

// Route returns the current route as an unbound ActivatedRoute.
func (r *Router) Route() route.ActivatedRoute {
	return route.NewActivatedRoute(r.load())
}

// NavigationRoute returns the route handed to the content of a navigation
// view: the current route nested to level 0.
func (r *Router) NavigationRoute() route.ActivatedRoute {
	return r.Route().Nested()
}

// Mode reports whether a staged activation is in progress.
func (r *Router) Mode() Mode {
	if r.pending.Load() > 0 {
		return ModeStaging
	}
	return ModeIdle
}

// Pending returns the number of staged continuations waiting to fire.
func (r *Router) Pending() int {
	return int(r.pending.Load())
}

// Activate navigates to segments.
//
// A target at most one level deeper than the current route is applied
// immediately. A deeper target is staged: the route advances one level now
// and Activate is called again with the same target after the stage delay,
// so a stack navigation widget animates one push per step.
//
// A pending staged continuation is not aware of later calls; it recomputes
// its step against whatever the route is when it fires.
func (r *Router) Activate(segments route.Segments) {
	target := segments.Clone()
	current := r.load()

	if target.Len()-current.Len()-1 > 0 {
		r.activatePartial(target, current.Len())
		return
	}

	r.logger.Debug("Activating route", "path", target.Paths())
	r.metrics.activated(activationImmediate, target.Len())
	r.publish(target)
}

func (r *Router) activatePartial(target route.Segments, position int) {
	step := target.Prefix(position + 1)

	r.logger.Debug("Staging route activation",
		"step", step.Paths(),
		"target", target.Paths(),
		"delay", r.stageDelay,
	)
	r.metrics.activated(activationStaged, step.Len())
	r.publish(step)

	r.schedule(target)
}

func (r *Router) schedule(target route.Segments) {
	id := r.nextStage
	r.nextStage++

	c := &continuation{}
	c.fire = func() {
		if c.done {
			return
		}
		c.done = true
		if c.cancel != nil {
			c.cancel()
		}
		delete(r.staged, id)
		r.updatePending()

		r.Activate(target)
	}

	r.staged[id] = c
	r.updatePending()
	c.cancel = r.scheduler.After(r.stageDelay, c.fire)
}

// Pop removes the last segment of the route. Popping the root is a no-op.
// Pending staged continuations keep running unless CancelStagedOnOverride is set.
func (r *Router) Pop() {
	if r.cancelOnOverride {
		r.CancelStaged()
	}

	segments := r.load().DropLast()

	r.logger.Debug("Popping route", "path", segments.Paths())
	r.metrics.popped(segments.Len())
	r.publish(segments)
}

// Reset returns to the root route.
// Pending staged continuations keep running unless CancelStagedOnOverride is
// set. A continuation that fires after a Reset navigates away from the root
// again, staging its target from scratch.
func (r *Router) Reset() {
	if r.cancelOnOverride {
		r.CancelStaged()
	}

	r.logger.Debug("Resetting route")
	r.metrics.reset()
	r.publish(route.Segments{})
}

// CancelStaged cancels every pending staged continuation and returns how
// many were cancelled. The route keeps the steps already applied.
func (r *Router) CancelStaged() int {
	n := len(r.staged)
	for id, c := range r.staged {
		c.done = true
		if c.cancel != nil {
			c.cancel()
		}
		delete(r.staged, id)
	}
	r.updatePending()

	if n > 0 {
		r.logger.Debug("Cancelled staged activations", "count", n)
	}
	return n
}

// Close tears the router down with its navigation scope: pending staged
// continuations are cancelled and its metrics are unregistered. The route
// keeps its last value. Close must be called on the scheduler.
func (r *Router) Close() {
	r.CancelStaged()
	r.metrics.unregister()
	r.metrics = nil

	r.logger.Debug("Router closed")
}

// CompleteTransition signals that the navigation widget finished animating.
// Every pending staged continuation fires now instead of waiting for its
// delay. Continuations scheduled while firing wait for the next signal.
func (r *Router) CompleteTransition() {
	for _, id := range slices.Sorted(maps.Keys(r.staged)) {
		if c, ok := r.staged[id]; ok {
			c.fire()
		}
	}
}

// Subscribe registers fn to be called on the scheduler after every change of
// the route. The returned function removes the listener.
func (r *Router) Subscribe(fn Listener) (unsubscribe func()) {
	r.mu.Lock()
	defer r.mu.Unlock()

	id := r.nextListener
	r.nextListener++
	r.listeners = append(r.listeners, listenerEntry{id: id, fn: fn})

	return func() {
		r.mu.Lock()
		defer r.mu.Unlock()

		r.listeners = slices.DeleteFunc(r.listeners, func(e listenerEntry) bool {
			return e.id == id
		})
	}
}

func (r *Router) load() route.Segments {
	return r.current.Load().(route.Segments)
}

func (r *Router) publish(segments route.Segments) {
	r.current.Store(segments)

	r.mu.Lock()
	listeners := slices.Clone(r.listeners)
	r.mu.Unlock()

	for _, l := range listeners {
		l.fn(segments.Clone())
	}
}

func (r *Router) updatePending() {
	n := int32(len(r.staged))
	r.pending.Store(n)
	r.metrics.setPending(n)
}
