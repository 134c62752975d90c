// Package hexadj maps a hex cell to its six neighbors in offset coordinates.
//
// Grids use the "odd-r" layout: odd rows are shifted right by half a cell.
// A cell therefore has a different neighbor pattern depending on row parity,
// captured in two fixed offset tables (dRow, dCol), both ordered
// NW, NE, W, E, SW, SE:
//
//	even rows: (-1,-1) (-1, 0) (0,-1) (0,+1) (+1,-1) (+1, 0)
//	odd rows:  (-1, 0) (-1,+1) (0,-1) (0,+1) (+1, 0) (+1,+1)
//
// The functions here are pure. They never check grid bounds or weights;
// callers must validate every returned coordinate.
package hexadj

// Coord is an offset (row, col) position.
type Coord struct {
	Row, Col int
}

// Degree is the maximum number of neighbors of a hex cell.
const Degree = 6

var (
	evenOffsets = [Degree]Coord{{-1, -1}, {-1, 0}, {0, -1}, {0, 1}, {1, -1}, {1, 0}}
	oddOffsets  = [Degree]Coord{{-1, 0}, {-1, 1}, {0, -1}, {0, 1}, {1, 0}, {1, 1}}
)

// Offsets returns the neighbor offset table for the parity of row.
func Offsets(row int) [Degree]Coord {
	if row&1 == 1 {
		return oddOffsets
	}

	return evenOffsets
}

// Neighbors returns the six candidate neighbor coordinates of (row, col)
// in table order. Some may lie outside the grid.
func Neighbors(row, col int) [Degree]Coord {
	out := Offsets(row)
	for i := range out {
		out[i].Row += row
		out[i].Col += col
	}

	return out
}

// Adjacent reports whether b is one of a's six neighbors.
func Adjacent(a, b Coord) bool {
	for _, n := range Neighbors(a.Row, a.Col) {
		if n == b {
			return true
		}
	}

	return false
}

// Distance returns the number of hex steps between a and b on an
// unobstructed grid, via conversion to cube coordinates.
func Distance(a, b Coord) int {
	aq, ar := toAxial(a)
	bq, br := toAxial(b)
	dq := abs(aq - bq)
	dr := abs(ar - br)
	ds := abs((-aq - ar) - (-bq - br))

	return max(dq, dr, ds)
}

// toAxial converts odd-r offset coordinates to axial (q, r).
func toAxial(c Coord) (q, r int) {
	return c.Col - (c.Row-(c.Row&1))/2, c.Row
}

func abs(x int) int {
	if x < 0 {
		return -x
	}

	return x
}
