package searchgraph

import (
	"errors"

	"github.com/katalvlaran/hexpath/hexgrid"
)

// Sentinel errors for searchgraph operations.
var (
	// ErrNilGraph indicates that a nil *Graph was passed in.
	ErrNilGraph = errors.New("searchgraph: graph is nil")

	// ErrNodeNotFound indicates a NodeID outside the graph arena.
	ErrNodeNotFound = errors.New("searchgraph: node not found")
)

// NodeID is a stable handle to a node in a Graph arena.
// IDs are dense: 0 <= id < Graph.Len().
type NodeID int32

// NoNode marks the absence of a node.
const NoNode NodeID = -1

// node is one traversable cell and its cached neighbor list.
type node struct {
	cell      hexgrid.Cell
	neighbors []NodeID
}

// Graph is the cached adjacency graph over the traversable cells of a grid.
type Graph struct {
	rows, cols int
	nodes      []node   // arena, indexed by NodeID
	index      []NodeID // row-major cell index -> NodeID, NoNode if impassable
	edges      int
}
