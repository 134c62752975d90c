package pathsearch

import (
	"fmt"

	"github.com/katalvlaran/hexpath/frontier"
	"github.com/katalvlaran/hexpath/hexgrid"
	"github.com/katalvlaran/hexpath/searchgraph"
)

// Controller drives one search session at a time over a search graph.
type Controller struct {
	opts  Options
	graph *searchgraph.Graph
	owned bool // graph was built here and may be rebuilt in place
	set   *frontier.Set

	state    State
	start    searchgraph.NodeID
	goal     searchgraph.NodeID
	best     frontier.Handle
	found    bool
	expanded int
}

// New returns an Unentered Controller without a graph.
func New(opts ...Option) *Controller {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return &Controller{
		opts:  o,
		set:   frontier.New(0),
		start: searchgraph.NoNode,
		goal:  searchgraph.NoNode,
		best:  frontier.None,
	}
}

// Build constructs the search graph from grid, replacing any previous graph.
// An active session is exited first. Calling Build twice on the same grid
// yields an identical graph.
func (c *Controller) Build(grid hexgrid.Grid) {
	c.Exit()
	if c.owned && c.graph != nil {
		c.graph.Rebuild(grid)
	} else {
		c.graph = searchgraph.Build(grid)
		c.owned = true
	}
	c.opts.Logger.Debug("graph built",
		"nodes", c.graph.Len(),
		"edges", c.graph.EdgeCount())
}

// UseGraph adopts a graph built elsewhere. The graph is only read, so the
// same graph may back many controllers. An active session is exited first.
func (c *Controller) UseGraph(g *searchgraph.Graph) {
	c.Exit()
	c.graph = g
	c.owned = false
}

// Graph returns the current graph, or nil before Build and after Shutdown.
func (c *Controller) Graph() *searchgraph.Graph { return c.graph }

// Enter starts a session from (startRow, startCol) to (goalRow, goalCol).
//
// Steps:
//  1. Fail with ErrNoGraph if no graph is loaded.
//  2. Resolve start and goal; an out-of-bounds or impassable cell fails
//     with ErrInvalidLocation and changes nothing, so an active session
//     keeps running.
//  3. Exit any active session.
//  4. Seed the frontier with the start candidate (given 0, no parent).
func (c *Controller) Enter(startRow, startCol, goalRow, goalCol int) error {
	// 1) Graph is required.
	if c.graph == nil {
		return ErrNoGraph
	}

	// 2) Resolve endpoints.
	start, ok := c.graph.Lookup(startRow, startCol)
	if !ok {
		return fmt.Errorf("%w: start (%d,%d)", ErrInvalidLocation, startRow, startCol)
	}
	goal, ok := c.graph.Lookup(goalRow, goalCol)
	if !ok {
		return fmt.Errorf("%w: goal (%d,%d)", ErrInvalidLocation, goalRow, goalCol)
	}

	// 3) Re-entry implies Exit.
	if c.state != Unentered {
		c.Exit()
	}

	// 4) Seed.
	c.start, c.goal = start, goal
	startCell, goalCell := c.graph.Cell(start), c.graph.Cell(goal)
	h := c.opts.Cost.Heuristic(startCell, goalCell)
	p := c.opts.Cost.Priority(0, h)
	c.set.Add(frontier.Candidate{
		Node:      start,
		Parent:    frontier.None,
		Heuristic: h,
		Priority:  p,
	})
	c.opts.OnEnqueue(startCell, p)
	c.state = Searching
	c.opts.Logger.Debug("search entered",
		"start", startCell.String(),
		"goal", goalCell.String(),
		"weight", c.opts.Cost.Weight(),
		"heuristic", c.opts.Cost.Kind().String())

	return nil
}

// Step expands at most budget candidates and returns.
//
// Each iteration pops the lowest-priority candidate and records it as the
// best candidate. If it is the goal the session becomes Done at once.
// Otherwise every neighbor is either added to the frontier (first sight) or
// relaxed in place when the new given cost is strictly lower. An empty
// frontier also ends the session, without a path.
//
// Step returns ErrNoGraph if no graph is loaded; it does nothing when the
// controller is not Searching or budget ≤ 0.
func (c *Controller) Step(budget int) error {
	if c.graph == nil {
		return ErrNoGraph
	}
	if c.state != Searching || budget <= 0 {
		return nil
	}

	goalCell := c.graph.Cell(c.goal)
	n := 0
	for ; budget > 0; budget-- {
		h, ok := c.set.Pop()
		if !ok {
			c.finish(false)
			break
		}
		cur := c.set.Get(h)
		c.best = h
		c.expanded++
		n++
		c.opts.OnExpand(c.graph.Cell(cur.Node), cur.Given)

		if cur.Node == c.goal {
			c.finish(true)
			break
		}
		c.expand(h, cur, goalCell)
	}
	// The last budget unit may have emptied the frontier.
	if c.state == Searching && c.set.Len() == 0 {
		c.finish(false)
	}
	c.opts.OnSlice(n)

	return nil
}

// expand pushes or relaxes every neighbor of the popped candidate cur.
func (c *Controller) expand(h frontier.Handle, cur frontier.Candidate, goalCell hexgrid.Cell) {
	model := c.opts.Cost
	for _, nb := range c.graph.Neighbors(cur.Node) {
		cell := c.graph.Cell(nb)
		given := model.Given(cur.Given, cell)

		if nh, seen := c.set.Lookup(nb); seen {
			old := c.set.Get(nh)
			if given < old.Given {
				c.set.Update(nh, h, given, model.Priority(given, old.Heuristic))
				c.opts.OnRelax(cell, old.Given, given)
			}
			continue
		}

		hv := model.Heuristic(cell, goalCell)
		p := model.Priority(given, hv)
		c.set.Add(frontier.Candidate{
			Node:      nb,
			Parent:    h,
			Given:     given,
			Heuristic: hv,
			Priority:  p,
		})
		c.opts.OnEnqueue(cell, p)
	}
}

func (c *Controller) finish(found bool) {
	c.state = Done
	c.found = found
	c.opts.OnDone(found, c.expanded)
	c.opts.Logger.Debug("search done",
		"found", found,
		"expanded", c.expanded,
		"visited", c.set.VisitedLen(),
		"cost", c.Cost())
}

// IsDone reports whether the session has completed.
func (c *Controller) IsDone() bool { return c.state == Done }

// Found reports whether the session completed by reaching the goal.
func (c *Controller) Found() bool { return c.found }

// State returns the lifecycle state.
func (c *Controller) State() State { return c.state }

// Expanded returns the number of candidates popped this session.
func (c *Controller) Expanded() int { return c.expanded }

// Solution returns the cells of the best candidate's parent chain in
// goal → start order. Mid-search the chain ends at the most recently expanded
// cell; after a successful search it ends at the goal. Returns nil before the
// first expansion.
func (c *Controller) Solution() []hexgrid.Cell {
	if c.best == frontier.None {
		return nil
	}
	var out []hexgrid.Cell
	c.set.Chain(c.best, func(_ frontier.Handle, cd frontier.Candidate) bool {
		out = append(out, c.graph.Cell(cd.Node))
		return true
	})

	return out
}

// Path returns Solution in start → goal order.
func (c *Controller) Path() []hexgrid.Cell {
	out := c.Solution()
	for i, j := 0, len(out)-1; i < j; i, j = i+1, j-1 {
		out[i], out[j] = out[j], out[i]
	}

	return out
}

// Cost returns the given cost of the best candidate: the path cost once
// Found, the cost to the last expanded cell mid-search, and 0 before the
// first expansion.
func (c *Controller) Cost() float64 {
	if c.best == frontier.None {
		return 0
	}

	return c.set.Get(c.best).Given
}

// Exit ends the session and discards all candidates. The graph is kept.
func (c *Controller) Exit() {
	c.set.Reset()
	c.state = Unentered
	c.start, c.goal = searchgraph.NoNode, searchgraph.NoNode
	c.best = frontier.None
	c.found = false
	c.expanded = 0
}

// Shutdown exits and releases the graph.
func (c *Controller) Shutdown() {
	c.Exit()
	c.graph = nil
	c.owned = false
}
