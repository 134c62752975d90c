package searchgraph

import "fmt"

// queueItem pairs a node with its breadth-first depth.
type queueItem struct {
	id    NodeID
	depth int
}

// walker encapsulates mutable traversal state.
type walker struct {
	g       *Graph
	queue   []queueItem
	visited []bool
}

// Walk visits every node reachable from start in breadth-first order,
// following neighbor lists. visit receives each node once together with its
// depth in edges from start; returning false stops the walk early.
//
// The traversal is iterative (explicit queue and visited set), so depth is
// bounded only by memory.
// Returns ErrNilGraph or ErrNodeNotFound for invalid input.
func Walk(g *Graph, start NodeID, visit func(id NodeID, depth int) bool) error {
	if g == nil {
		return ErrNilGraph
	}
	if !g.Has(start) {
		return fmt.Errorf("%w: start=%d", ErrNodeNotFound, start)
	}
	w := &walker{
		g:       g,
		queue:   make([]queueItem, 0, g.Len()),
		visited: make([]bool, g.Len()),
	}
	w.enqueue(start, 0)
	w.loop(visit)

	return nil
}

// enqueue marks id visited and appends it to the queue.
func (w *walker) enqueue(id NodeID, depth int) {
	w.visited[id] = true
	w.queue = append(w.queue, queueItem{id: id, depth: depth})
}

// loop drains the queue until empty or visit asks to stop.
func (w *walker) loop(visit func(NodeID, int) bool) {
	for qi := 0; qi < len(w.queue); qi++ {
		item := w.queue[qi]
		if !visit(item.id, item.depth) {
			return
		}
		for _, nb := range w.g.Neighbors(item.id) {
			if !w.visited[nb] {
				w.enqueue(nb, item.depth+1)
			}
		}
	}
}

// Regions partitions the nodes into connected regions ("islands") of
// mutually reachable traversable cells. Regions are returned in row-major
// order of their first cell; nodes within a region are in breadth-first order.
//
// Time:   O(V + E).
// Memory: O(V).
func (g *Graph) Regions() [][]NodeID {
	seen := make([]bool, g.Len())
	var regions [][]NodeID
	for _, id := range g.Nodes() {
		if seen[id] {
			continue
		}
		var region []NodeID
		_ = Walk(g, id, func(v NodeID, _ int) bool {
			seen[v] = true
			region = append(region, v)
			return true
		})
		regions = append(regions, region)
	}

	return regions
}

// Reachable reports whether to can be reached from from by following
// neighbor lists. It stops as soon as to is found.
func (g *Graph) Reachable(from, to NodeID) bool {
	found := false
	_ = Walk(g, from, func(v NodeID, _ int) bool {
		found = v == to
		return !found
	})

	return found
}
