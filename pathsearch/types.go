package pathsearch

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/katalvlaran/hexpath/cost"
	"github.com/katalvlaran/hexpath/hexgrid"
)

// Sentinel errors for controller operations.
var (
	// ErrNoGraph is returned by Enter and Step before Build/UseGraph or after Shutdown.
	ErrNoGraph = errors.New("pathsearch: graph not built")

	// ErrInvalidLocation is returned by Enter when the start or goal is out of
	// bounds or impassable.
	ErrInvalidLocation = errors.New("pathsearch: invalid location")
)

// State is the lifecycle state of a Controller session.
type State uint8

const (
	// Unentered means no session is active.
	Unentered State = iota
	// Searching means a session is active and has open candidates.
	Searching
	// Done means the goal was expanded or the frontier ran dry.
	Done
)

// String returns the lower-case state name.
func (s State) String() string {
	switch s {
	case Unentered:
		return "unentered"
	case Searching:
		return "searching"
	case Done:
		return "done"
	default:
		return fmt.Sprintf("State(%d)", uint8(s))
	}
}

// Option configures a Controller.
type Option func(*Options)

// Options holds the cost model, logger and observation hooks of a Controller.
// Hooks are never nil after DefaultOptions; registering the same kind of hook
// twice runs both, in registration order.
type Options struct {
	// Cost orders the frontier. Default: cost.AStar().
	Cost cost.Model

	// Logger receives Debug records for session boundaries. Default: discard.
	Logger *slog.Logger

	// OnEnqueue fires when a cell first enters the frontier.
	OnEnqueue func(cell hexgrid.Cell, priority float64)

	// OnExpand fires when a candidate is popped, before its neighbors are examined.
	OnExpand func(cell hexgrid.Cell, given float64)

	// OnRelax fires when a cheaper path to an already reached cell is found.
	OnRelax func(cell hexgrid.Cell, oldGiven, newGiven float64)

	// OnSlice fires at the end of every Step that did work, with the number
	// of expansions performed by that call.
	OnSlice func(expanded int)

	// OnDone fires once per session on the transition to Done.
	OnDone func(found bool, expanded int)
}

// DefaultOptions returns A* over Euclidean distance, a discard logger and no-op hooks.
func DefaultOptions() Options {
	return Options{
		Cost:      cost.AStar(),
		Logger:    slog.New(slog.DiscardHandler),
		OnEnqueue: func(hexgrid.Cell, float64) {},
		OnExpand:  func(hexgrid.Cell, float64) {},
		OnRelax:   func(hexgrid.Cell, float64, float64) {},
		OnSlice:   func(int) {},
		OnDone:    func(bool, int) {},
	}
}

// WithCostModel selects the cost model.
func WithCostModel(m cost.Model) Option {
	return func(o *Options) { o.Cost = m }
}

// WithLogger sets the logger; nil is ignored.
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// WithOnEnqueue registers a hook run when a cell enters the frontier.
func WithOnEnqueue(fn func(cell hexgrid.Cell, priority float64)) Option {
	return func(o *Options) {
		if fn == nil {
			return
		}
		prev := o.OnEnqueue
		o.OnEnqueue = func(c hexgrid.Cell, p float64) { prev(c, p); fn(c, p) }
	}
}

// WithOnExpand registers a hook run for every expanded candidate.
func WithOnExpand(fn func(cell hexgrid.Cell, given float64)) Option {
	return func(o *Options) {
		if fn == nil {
			return
		}
		prev := o.OnExpand
		o.OnExpand = func(c hexgrid.Cell, g float64) { prev(c, g); fn(c, g) }
	}
}

// WithOnRelax registers a hook run on every decrease-key.
func WithOnRelax(fn func(cell hexgrid.Cell, oldGiven, newGiven float64)) Option {
	return func(o *Options) {
		if fn == nil {
			return
		}
		prev := o.OnRelax
		o.OnRelax = func(c hexgrid.Cell, a, b float64) { prev(c, a, b); fn(c, a, b) }
	}
}

// WithOnSlice registers a hook run after every Step that expanded at least one candidate.
func WithOnSlice(fn func(expanded int)) Option {
	return func(o *Options) {
		if fn == nil {
			return
		}
		prev := o.OnSlice
		o.OnSlice = func(n int) { prev(n); fn(n) }
	}
}

// WithOnDone registers a hook run when a session completes.
func WithOnDone(fn func(found bool, expanded int)) Option {
	return func(o *Options) {
		if fn == nil {
			return
		}
		prev := o.OnDone
		o.OnDone = func(f bool, n int) { prev(f, n); fn(f, n) }
	}
}
