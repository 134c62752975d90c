// Package hexpath finds cheapest paths across hexagonal tile maps with a
// search that can be spread over many small, bounded steps.
//
// What is in the box?
//
//	hexgrid/     the tile map: cells, weights, planar centres, text/YAML loaders
//	hexadj/      odd-r hex neighbor tables and hex step distance
//	searchgraph/ immutable node graph of traversable cells, BFS walk,
//	             connected regions, reference Dijkstra distances
//	cost/        given cost, heuristics and the weighted priority
//	frontier/    candidate arena, visited map and indexed open heap
//	pathsearch/  the resumable search controller
//	cmd/hexpath  command-line host: run, graph and batch
//
// Quick start:
//
//	tiles, _ := hexgrid.LoadFile("data/hex006x006.txt")
//	c := pathsearch.New(pathsearch.WithCostModel(cost.AStar()))
//	c.Build(tiles)
//	_ = c.Enter(0, 0, 5, 5)
//	for !c.IsDone() {
//	    _ = c.Step(16) // at most 16 expansions per call
//	}
//	fmt.Println(c.Path(), c.Cost())
//
// Apart from the YAML map loader, the search packages use only the standard
// library and each other. Logging, configuration and metrics live under
// internal/ and are wired in by the command through controller options and
// hooks.
package hexpath
