package searchgraph

import (
	"fmt"

	"github.com/katalvlaran/hexpath/hexadj"
	"github.com/katalvlaran/hexpath/hexgrid"
)

// Build constructs the search graph for grid. A nil grid yields an empty graph.
// Complexity: O(R×C×6) time.
func Build(grid hexgrid.Grid) *Graph {
	g := &Graph{}
	g.Rebuild(grid)

	return g
}

// Rebuild discards any previously built nodes and rebuilds from grid.
//
// Cells are visited in row-major order. Each traversable cell gets a node
// (created on first sight, either as itself or as someone's neighbor), and
// every in-bounds, traversable hex neighbor is appended to its neighbor list
// in hexadj table order. Impassable cells are skipped silently.
func (g *Graph) Rebuild(grid hexgrid.Grid) {
	// 1) Clear previous state.
	g.rows, g.cols, g.edges = 0, 0, 0
	g.nodes = nil
	g.index = nil
	if grid == nil {
		return
	}

	// 2) Size the arena and the row-major index.
	g.rows, g.cols = grid.Rows(), grid.Cols()
	g.index = make([]NodeID, g.rows*g.cols)
	for i := range g.index {
		g.index[i] = NoNode
	}
	g.nodes = make([]node, 0, len(g.index))

	// 3) Link every traversable cell to its traversable neighbors.
	for row := 0; row < g.rows; row++ {
		for col := 0; col < g.cols; col++ {
			cell, ok := grid.Cell(row, col)
			if !ok || !cell.Passable() {
				continue
			}
			id := g.getOrCreate(row, col, cell)
			for _, nc := range hexadj.Neighbors(row, col) {
				if nc.Row < 0 || nc.Row >= g.rows || nc.Col < 0 || nc.Col >= g.cols {
					continue
				}
				nb, ok := grid.Cell(nc.Row, nc.Col)
				if !ok || !nb.Passable() {
					continue
				}
				nid := g.getOrCreate(nc.Row, nc.Col, nb)
				g.nodes[id].neighbors = append(g.nodes[id].neighbors, nid)
				g.edges++
			}
		}
	}
}

// getOrCreate returns the node for the cell at (row, col), creating it on
// first use. Idempotent per (row, col).
func (g *Graph) getOrCreate(row, col int, cell hexgrid.Cell) NodeID {
	slot := row*g.cols + col
	if id := g.index[slot]; id != NoNode {
		return id
	}
	id := NodeID(len(g.nodes))
	g.nodes = append(g.nodes, node{cell: cell, neighbors: make([]NodeID, 0, hexadj.Degree)})
	g.index[slot] = id

	return id
}

// Len returns the number of nodes (traversable cells).
func (g *Graph) Len() int { return len(g.nodes) }

// EdgeCount returns the number of directed neighbor links.
func (g *Graph) EdgeCount() int { return g.edges }

// Rows returns the row count of the grid the graph was built from.
func (g *Graph) Rows() int { return g.rows }

// Cols returns the column count of the grid the graph was built from.
func (g *Graph) Cols() int { return g.cols }

// Has reports whether id addresses a node of g.
func (g *Graph) Has(id NodeID) bool {
	return id >= 0 && int(id) < len(g.nodes)
}

// Lookup returns the node of the cell at (row, col), or false if the cell
// is out of bounds or impassable.
// Complexity: O(1).
func (g *Graph) Lookup(row, col int) (NodeID, bool) {
	if row < 0 || row >= g.rows || col < 0 || col >= g.cols {
		return NoNode, false
	}
	id := g.index[row*g.cols+col]

	return id, id != NoNode
}

// Cell returns the cell behind id. Panics if id is not a node of g.
func (g *Graph) Cell(id NodeID) hexgrid.Cell {
	return g.at(id).cell
}

// Neighbors returns the neighbor list of id. The slice is shared with the
// graph and must not be modified. Panics if id is not a node of g.
func (g *Graph) Neighbors(id NodeID) []NodeID {
	return g.at(id).neighbors
}

// Nodes returns every NodeID in row-major cell order.
func (g *Graph) Nodes() []NodeID {
	out := make([]NodeID, 0, len(g.nodes))
	for _, id := range g.index {
		if id != NoNode {
			out = append(out, id)
		}
	}

	return out
}

// at returns the node for id; an unknown id is an invariant violation.
func (g *Graph) at(id NodeID) *node {
	if !g.Has(id) {
		panic(fmt.Sprintf("%s: id=%d len=%d", ErrNodeNotFound, id, len(g.nodes)))
	}

	return &g.nodes[id]
}
