// Package searchgraph builds and caches the adjacency graph that path
// searches expand over.
//
// Overview:
//
//   - Build turns a hexgrid.Grid into a Graph with one node per traversable
//     cell (weight > 0). Impassable cells never get a node and never appear
//     in a neighbor list.
//   - Nodes live in an arena and are addressed by stable NodeID handles;
//     the Graph also keeps a dense row-major index so Lookup(row, col) is O(1).
//   - Neighbor lists follow hexadj's parity tables and are fixed once built.
//     Adjacency is stored as directed edges.
//
// Lifecycle:
//
//	g := searchgraph.Build(grid)  // once per grid load
//	... any number of searches read g ...
//	g.Rebuild(newGrid)            // when the grid changes
//
// A built Graph is never mutated by searches, so any number of goroutines may
// read it concurrently. Rebuild must not race with readers.
//
// Extras:
//
//   - Walk: iterative breadth-first traversal with an explicit queue and
//     visited set, for debug dumps of the node graph.
//   - Regions: connected regions of traversable cells.
//   - Distances: a plain Dijkstra over the graph using the same cost rule as
//     the time-sliced search, used to verify search results.
//
// Complexity:
//
//   - Build:     O(R×C×6) time, O(R×C + E) memory.
//   - Lookup:    O(1).
//   - Walk:      O(V + E).
//   - Regions:   O(V + E).
//   - Distances: O((V + E) log V).
package searchgraph
