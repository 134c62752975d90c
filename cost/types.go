// Package cost defines the pluggable cost model of a path search: the
// accumulated ("given") cost of a candidate, the heuristic estimate of the
// remaining cost, and the total priority that orders the frontier.
//
// One Model covers every search variant through a single heuristic weight w:
//
//	priority = given + w * heuristic
//
//	w = 0        uniform-cost search (Dijkstra)
//	w = 1        A*; optimal when the heuristic is admissible
//	w > 1        weighted A*; faster, bounded suboptimality
//	w very large greedy best-first
//
// Heuristics:
//
//   - Euclidean: straight-line distance between planar cell centres (default).
//   - Manhattan: |dx| + |dy| between planar cell centres. Not admissible on
//     hex grids; useful as a greedier alternative.
//   - HexSteps:  hex step distance × MinStepCost. Admissible whenever every
//     passable cell weight is at least MinStepCost.
//
// Admissibility of Euclidean distance depends on the grid: with unit spacing
// and weights ≥ 1 every step costs at least the distance it covers. The model
// does not check this.
package cost

import (
	"errors"
	"fmt"
	"math"
	"strings"
)

// Sentinel errors for cost model configuration.
var (
	// ErrBadWeight indicates a negative or NaN heuristic weight.
	ErrBadWeight = errors.New("cost: heuristic weight must be a non-negative number")

	// ErrBadMinStep indicates a negative or NaN minimum step cost.
	ErrBadMinStep = errors.New("cost: minimum step cost must be a non-negative number")

	// ErrUnknownHeuristic indicates an unrecognized heuristic name.
	ErrUnknownHeuristic = errors.New("cost: unknown heuristic")

	// ErrUnknownMode indicates an unrecognized search mode name.
	ErrUnknownMode = errors.New("cost: unknown search mode")
)

// Heuristic selects the distance estimate.
type Heuristic int

const (
	// Euclidean is straight-line distance between planar centres.
	Euclidean Heuristic = iota
	// Manhattan is |dx|+|dy| between planar centres.
	Manhattan
	// HexSteps is hex step distance scaled by MinStepCost.
	HexSteps
)

// String returns the configuration name of h.
func (h Heuristic) String() string {
	switch h {
	case Euclidean:
		return "euclidean"
	case Manhattan:
		return "manhattan"
	case HexSteps:
		return "hex"
	default:
		return fmt.Sprintf("Heuristic(%d)", int(h))
	}
}

// ParseHeuristic maps a configuration name to a Heuristic.
func ParseHeuristic(s string) (Heuristic, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "euclidean":
		return Euclidean, nil
	case "manhattan":
		return Manhattan, nil
	case "hex", "hexsteps":
		return HexSteps, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownHeuristic, s)
	}
}

// Mode names a preset heuristic weight.
type Mode string

const (
	// ModeUniform is uniform-cost search (w = 0).
	ModeUniform Mode = "uniform"
	// ModeGreedy is greedy best-first search (w = GreedyWeight).
	ModeGreedy Mode = "greedy"
	// ModeAStar is A* (w = 1).
	ModeAStar Mode = "astar"
	// ModeWeighted is weighted A* with a caller-chosen w.
	ModeWeighted Mode = "weighted"
)

// GreedyWeight is the heuristic weight used by ModeGreedy. Large enough that
// the heuristic dominates given cost on any realistic map.
const GreedyWeight = 1e6

// ParseMode maps a configuration name to a Mode.
func ParseMode(s string) (Mode, error) {
	switch m := Mode(strings.ToLower(strings.TrimSpace(s))); m {
	case ModeUniform, ModeGreedy, ModeAStar, ModeWeighted:
		return m, nil
	case "":
		return ModeAStar, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownMode, s)
	}
}

// Options configures a Model.
//
// Weight      – heuristic weight w ≥ 0. Default 1 (A*).
// Heuristic   – distance estimate. Default Euclidean.
// MinStepCost – lower bound on any cell weight, used by HexSteps. Default 1.
type Options struct {
	Weight      float64
	Heuristic   Heuristic
	MinStepCost float64
}

// Option represents a functional option for New.
type Option func(*Options)

// WithWeight sets the heuristic weight w.
// New panics with ErrBadWeight when applying it if w is negative or NaN.
func WithWeight(w float64) Option {
	return func(o *Options) {
		if math.IsNaN(w) || w < 0 {
			panic(ErrBadWeight.Error())
		}
		o.Weight = w
	}
}

// WithHeuristic selects the distance estimate.
func WithHeuristic(h Heuristic) Option {
	return func(o *Options) {
		o.Heuristic = h
	}
}

// WithMinStepCost sets the per-step lower bound used by HexSteps.
// New panics with ErrBadMinStep when applying it if c is negative or NaN.
func WithMinStepCost(c float64) Option {
	return func(o *Options) {
		if math.IsNaN(c) || c < 0 {
			panic(ErrBadMinStep.Error())
		}
		o.MinStepCost = c
	}
}

// WithMode sets the weight preset for m. For ModeWeighted the current
// weight is kept; combine with WithWeight.
func WithMode(m Mode) Option {
	return func(o *Options) {
		switch m {
		case ModeUniform:
			o.Weight = 0
		case ModeGreedy:
			o.Weight = GreedyWeight
		case ModeAStar:
			o.Weight = 1
		}
	}
}

// DefaultOptions returns A* with the Euclidean heuristic.
func DefaultOptions() Options {
	return Options{
		Weight:      1,
		Heuristic:   Euclidean,
		MinStepCost: 1,
	}
}
