package hexgrid

import (
	"errors"
	"fmt"
)

// Sentinel errors for hexgrid operations.
var (
	// ErrEmptyGrid indicates input grid has no rows or no columns.
	ErrEmptyGrid = errors.New("hexgrid: input grid must have at least one row and one column")
	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = errors.New("hexgrid: all rows must have the same length")
	// ErrNegativeWeight indicates a cell weight below zero.
	ErrNegativeWeight = errors.New("hexgrid: cell weight must be non-negative")
	// ErrBadSpacing indicates a non-positive cell spacing.
	ErrBadSpacing = errors.New("hexgrid: spacing must be positive")
	// ErrBadFormat indicates a map file that does not follow the expected layout.
	ErrBadFormat = errors.New("hexgrid: malformed map data")
)

// Grid is the read-only view of a hex grid consumed by the search core.
// Implementations must be safe for concurrent reads.
type Grid interface {
	// Rows returns the number of rows.
	Rows() int
	// Cols returns the number of columns.
	Cols() int
	// Cell returns the cell at (row, col), or false if there is no such cell.
	Cell(row, col int) (Cell, bool)
}

// Cell is one addressable unit of a Grid.
type Cell struct {
	Row, Col int     // Offset coordinates within the grid
	X, Y     float64 // Planar centre
	Weight   int     // Traversal cost of entering the cell; 0 = impassable
}

// Passable reports whether the cell can be entered.
func (c Cell) Passable() bool { return c.Weight > 0 }

// String renders the cell as "(row,col)".
func (c Cell) String() string { return fmt.Sprintf("(%d,%d)", c.Row, c.Col) }

// Options configures TileMap construction.
type Options struct {
	// Spacing is the centre-to-centre distance between adjacent cells.
	Spacing float64
}

// Option represents a functional option for NewTileMap.
type Option func(*Options)

// WithSpacing sets the distance between adjacent cell centres.
// NewTileMap panics with ErrBadSpacing when applying it if s <= 0.
func WithSpacing(s float64) Option {
	return func(o *Options) {
		if !(s > 0) {
			panic(ErrBadSpacing.Error())
		}
		o.Spacing = s
	}
}

// DefaultOptions returns Options with Spacing=1.
func DefaultOptions() Options {
	return Options{Spacing: 1}
}

// TileMap is an immutable Grid backed by a dense weight matrix.
// Weights[row][col] holds the original input value.
type TileMap struct {
	rows, cols int
	weights    [][]int
	spacing    float64
}
