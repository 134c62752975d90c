package cost

import (
	"math"

	"github.com/katalvlaran/hexpath/hexadj"
	"github.com/katalvlaran/hexpath/hexgrid"
)

// Model computes given cost, heuristic and priority for candidates.
// A Model is an immutable value and safe to share.
type Model struct {
	weight    float64
	heuristic Heuristic
	minStep   float64
}

// New builds a Model from DefaultOptions overridden by opts.
func New(opts ...Option) Model {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return Model{weight: o.Weight, heuristic: o.Heuristic, minStep: o.MinStepCost}
}

// Uniform returns a uniform-cost (Dijkstra) model.
func Uniform(opts ...Option) Model {
	return New(append([]Option{WithMode(ModeUniform)}, opts...)...)
}

// AStar returns an A* model (w = 1).
func AStar(opts ...Option) Model {
	return New(append([]Option{WithMode(ModeAStar)}, opts...)...)
}

// Greedy returns a greedy best-first model (w = GreedyWeight).
func Greedy(opts ...Option) Model {
	return New(append([]Option{WithMode(ModeGreedy)}, opts...)...)
}

// Weighted returns a weighted A* model with heuristic weight w.
func Weighted(w float64, opts ...Option) Model {
	return New(append([]Option{WithWeight(w)}, opts...)...)
}

// Weight returns the heuristic weight w.
func (m Model) Weight() float64 { return m.weight }

// Kind returns the heuristic in use.
func (m Model) Kind() Heuristic { return m.heuristic }

// Given returns the accumulated cost of reaching node through a parent whose
// accumulated cost is parentGiven.
func (m Model) Given(parentGiven float64, node hexgrid.Cell) float64 {
	return parentGiven + float64(node.Weight)
}

// Heuristic estimates the remaining cost from node to goal.
func (m Model) Heuristic(node, goal hexgrid.Cell) float64 {
	switch m.heuristic {
	case Manhattan:
		return math.Abs(goal.X-node.X) + math.Abs(goal.Y-node.Y)
	case HexSteps:
		steps := hexadj.Distance(
			hexadj.Coord{Row: node.Row, Col: node.Col},
			hexadj.Coord{Row: goal.Row, Col: goal.Col},
		)
		return float64(steps) * m.minStep
	default:
		return math.Hypot(goal.X-node.X, goal.Y-node.Y)
	}
}

// Priority combines given cost and heuristic: given + w*h.
// With w = 0 the heuristic is ignored entirely, even if it is +Inf.
func (m Model) Priority(given, h float64) float64 {
	if m.weight == 0 {
		return given
	}

	return given + m.weight*h
}
