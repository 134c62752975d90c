// Package hexgrid describes the rectangular hexagonal grid that path searches
// run over, and ships a reference implementation of it.
//
// What:
//
//   - Grid is the read-only contract the search core consumes: extent
//     (Rows, Cols) and cell lookup by (row, col).
//   - Cell carries a grid position, a planar (X, Y) centre used by distance
//     heuristics, and a traversal Weight. Weight 0 means impassable.
//   - TileMap is an immutable Grid built from a rectangular [][]int of weights.
//   - Load, LoadYAML and LoadFile read TileMaps from text or YAML map files.
//
// Layout:
//
// Cells use offset coordinates with odd rows shifted right by half a cell
// ("odd-r"). With spacing s (WithSpacing, default 1) the planar centre of
// (row, col) is
//
//	X = s * (col + 0.5*(row&1))
//	Y = s * row * √3/2
//
// so every pair of adjacent centres is exactly s apart.
//
//	row 0:  (0,0) (0,1) (0,2)
//	row 1:     (1,0) (1,1) (1,2)
//	row 2:  (2,0) (2,1) (2,2)
//
// Errors:
//
//   - ErrEmptyGrid: input has no rows or no columns.
//   - ErrNonRectangular: rows have differing lengths.
//   - ErrNegativeWeight: a weight below zero was supplied.
//   - ErrBadFormat: a map file could not be parsed.
//
// Complexity:
//
//   - NewTileMap: O(R×C) time and memory (deep copy).
//   - Cell:       O(1).
package hexgrid
