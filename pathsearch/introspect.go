package pathsearch

import (
	"github.com/katalvlaran/hexpath/frontier"
	"github.com/katalvlaran/hexpath/hexgrid"
)

// Read-only views for visualization. None of them change the session.

// Open calls fn for every open candidate with its priority, in heap order.
// Stops early when fn returns false.
func (c *Controller) Open(fn func(cell hexgrid.Cell, priority float64) bool) {
	c.set.EachOpen(func(_ frontier.Handle, cd frontier.Candidate) bool {
		return fn(c.graph.Cell(cd.Node), cd.Priority)
	})
}

// Visited calls fn for every cell reached this session with its current
// given cost, in the order cells were first reached.
func (c *Controller) Visited(fn func(cell hexgrid.Cell, given float64) bool) {
	c.set.EachVisited(func(_ frontier.Handle, cd frontier.Candidate) bool {
		return fn(c.graph.Cell(cd.Node), cd.Given)
	})
}

// Neighbors returns the traversable neighbors of the cell at (row, col), or
// nil if there is no graph or the cell is not a node.
func (c *Controller) Neighbors(row, col int) []hexgrid.Cell {
	if c.graph == nil {
		return nil
	}
	id, ok := c.graph.Lookup(row, col)
	if !ok {
		return nil
	}
	nbs := c.graph.Neighbors(id)
	out := make([]hexgrid.Cell, len(nbs))
	for i, nb := range nbs {
		out[i] = c.graph.Cell(nb)
	}

	return out
}

// BestChain walks the best candidate's parent chain from the best cell back
// to the start, passing each cell with its given cost.
func (c *Controller) BestChain(fn func(cell hexgrid.Cell, given float64) bool) {
	if c.best == frontier.None {
		return
	}
	c.set.Chain(c.best, func(_ frontier.Handle, cd frontier.Candidate) bool {
		return fn(c.graph.Cell(cd.Node), cd.Given)
	})
}
