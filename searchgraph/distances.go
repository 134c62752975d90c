package searchgraph

import (
	"container/heap"
	"fmt"
	"math"
)

// Distances computes the minimum path cost from source to every node of g,
// using the same cost rule as the time-sliced search: entering a node costs
// that node's cell weight, and the source itself costs nothing.
//
// Returns:
//
//   - dist: dist[v] is the minimum cost source → v, +Inf if unreachable.
//   - prev: prev[v] is v's predecessor on one cheapest path, NoNode for the
//     source and for unreachable nodes.
//
// Implementation notes:
//
//   - Lazy decrease-key: a cheaper path pushes a duplicate heap entry and the
//     stale one is skipped when popped.
//   - Strict "<" comparison, so ties keep the first predecessor found.
//
// Complexity: O((V + E) log V) time, O(V + E) memory.
func Distances(g *Graph, source NodeID) (dist []float64, prev []NodeID, err error) {
	// 1) Validate input.
	if g == nil {
		return nil, nil, ErrNilGraph
	}
	if !g.Has(source) {
		return nil, nil, fmt.Errorf("%w: source=%d", ErrNodeNotFound, source)
	}

	// 2) Initialize runner state and run the main loop.
	r := &runner{
		g:       g,
		dist:    make([]float64, g.Len()),
		prev:    make([]NodeID, g.Len()),
		visited: make([]bool, g.Len()),
		pq:      make(nodePQ, 0, g.Len()),
	}
	r.init(source)
	r.process()

	return r.dist, r.prev, nil
}

// runner holds the mutable state for a single Distances execution.
type runner struct {
	g       *Graph    // read-only input graph
	dist    []float64 // NodeID → best known cost from source
	prev    []NodeID  // NodeID → predecessor on the cheapest path
	visited []bool    // NodeID → cost finalized
	pq      nodePQ    // lazy min-heap
}

// init sets dist to +Inf everywhere except the source and seeds the heap.
func (r *runner) init(source NodeID) {
	for i := range r.dist {
		r.dist[i] = math.Inf(1)
		r.prev[i] = NoNode
	}
	r.dist[source] = 0
	heap.Init(&r.pq)
	heap.Push(&r.pq, &nodeItem{id: source, dist: 0})
}

// process pops the cheapest unsettled node until the heap is empty.
func (r *runner) process() {
	for r.pq.Len() > 0 {
		item := heap.Pop(&r.pq).(*nodeItem)
		if r.visited[item.id] {
			continue // stale entry
		}
		r.visited[item.id] = true
		r.relax(item.id)
	}
}

// relax improves the cost of every neighbor of u reachable more cheaply via u.
func (r *runner) relax(u NodeID) {
	for _, v := range r.g.Neighbors(u) {
		newDist := r.dist[u] + float64(r.g.Cell(v).Weight)
		if newDist >= r.dist[v] {
			continue
		}
		r.dist[v] = newDist
		r.prev[v] = u
		heap.Push(&r.pq, &nodeItem{id: v, dist: newDist})
	}
}

// PathTo rebuilds the source → dest path from a prev slice returned by
// Distances. Returns nil if dest was not reached.
func PathTo(prev []NodeID, source, dest NodeID) []NodeID {
	if dest != source && prev[dest] == NoNode {
		return nil
	}
	var path []NodeID
	for cur := dest; cur != NoNode; cur = prev[cur] {
		path = append(path, cur)
	}
	// reverse to get source → dest
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path
}

// nodeItem represents a node and its tentative cost from the source.
type nodeItem struct {
	id   NodeID
	dist float64
}

// nodePQ is a min-heap of *nodeItem ordered by dist ascending.
type nodePQ []*nodeItem

// Len returns the number of items in the heap.
func (pq nodePQ) Len() int { return len(pq) }

// Less defines the comparison: smaller dist → higher priority.
func (pq nodePQ) Less(i, j int) bool { return pq[i].dist < pq[j].dist }

// Swap swaps two elements in the heap.
func (pq nodePQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

// Push adds a new element x onto the heap.
func (pq *nodePQ) Push(x interface{}) { *pq = append(*pq, x.(*nodeItem)) }

// Pop removes and returns the last element; heap.Pop has already moved the
// minimum there.
func (pq *nodePQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}
