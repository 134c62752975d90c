package hexgrid

import "math"

// rowPitch is the vertical distance between row centres for unit spacing.
var rowPitch = math.Sqrt(3) / 2

// NewTileMap constructs a TileMap from a non-empty, rectangular 2D slice of
// weights indexed [row][col]. It deep-copies the input to ensure immutability.
// Returns ErrEmptyGrid if weights has no rows or no columns,
// ErrNonRectangular if any row length differs, and ErrNegativeWeight
// if any weight is below zero.
// Algorithmic complexity: O(R×C) time and memory.
func NewTileMap(weights [][]int, opts ...Option) (*TileMap, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	if len(weights) == 0 || len(weights[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	h, w := len(weights), len(weights[0])
	for _, row := range weights {
		if len(row) != w {
			return nil, ErrNonRectangular
		}
	}
	// Deep copy to prevent external mutation
	cells := make([][]int, h)
	for r := 0; r < h; r++ {
		cells[r] = make([]int, w)
		for c, v := range weights[r] {
			if v < 0 {
				return nil, ErrNegativeWeight
			}
			cells[r][c] = v
		}
	}

	return &TileMap{rows: h, cols: w, weights: cells, spacing: cfg.Spacing}, nil
}

// Rows returns the number of rows.
func (m *TileMap) Rows() int { return m.rows }

// Cols returns the number of columns.
func (m *TileMap) Cols() int { return m.cols }

// Spacing returns the centre-to-centre distance between adjacent cells.
func (m *TileMap) Spacing() float64 { return m.spacing }

// InBounds reports whether (row,col) lies within the grid boundaries.
// Complexity: O(1).
func (m *TileMap) InBounds(row, col int) bool {
	return row >= 0 && row < m.rows && col >= 0 && col < m.cols
}

// Cell returns the cell at (row,col) with its planar centre filled in.
// Complexity: O(1).
func (m *TileMap) Cell(row, col int) (Cell, bool) {
	if !m.InBounds(row, col) {
		return Cell{}, false
	}
	x, y := Center(row, col, m.spacing)

	return Cell{Row: row, Col: col, X: x, Y: y, Weight: m.weights[row][col]}, true
}

// Weights returns a deep copy of the weight matrix.
func (m *TileMap) Weights() [][]int {
	out := make([][]int, m.rows)
	for r := range m.weights {
		out[r] = append([]int(nil), m.weights[r]...)
	}

	return out
}

// Center returns the planar centre of (row,col) for the odd-r layout.
func Center(row, col int, spacing float64) (x, y float64) {
	x = spacing * (float64(col) + 0.5*float64(row&1))
	y = spacing * float64(row) * rowPitch

	return x, y
}

// Index maps (row,col) to a row-major index: row*cols + col.
// Complexity: O(1).
func Index(g Grid, row, col int) int {
	return row*g.Cols() + col
}

// Coordinate converts a row-major index back to (row,col).
// Complexity: O(1).
func Coordinate(g Grid, idx int) (row, col int) {
	return idx / g.Cols(), idx % g.Cols()
}
