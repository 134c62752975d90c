package hexgrid_test

import (
	"errors"
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/hexpath/hexgrid"
)

//----------------------------------------------------------------------------//
// NewTileMap and InBounds Tests
//----------------------------------------------------------------------------//

// TestNewTileMap_Errors verifies that NewTileMap rejects empty, ragged or negative inputs.
func TestNewTileMap_Errors(t *testing.T) {
	cases := []struct {
		name string
		grid [][]int
		err  error
	}{
		{"EmptyRows", [][]int{}, hexgrid.ErrEmptyGrid},
		{"EmptyCols", [][]int{{}}, hexgrid.ErrEmptyGrid},
		{"NonRectangular", [][]int{{1, 2}, {3}}, hexgrid.ErrNonRectangular},
		{"Negative", [][]int{{1, -2}, {3, 4}}, hexgrid.ErrNegativeWeight},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := hexgrid.NewTileMap(tc.grid)
			if !errors.Is(err, tc.err) {
				t.Errorf("NewTileMap(%v) error = %v; want %v", tc.grid, err, tc.err)
			}
		})
	}
}

// TestTileMap_DeepCopy ensures later mutation of the input does not leak in.
func TestTileMap_DeepCopy(t *testing.T) {
	in := [][]int{{1, 2}, {3, 4}}
	m, err := hexgrid.NewTileMap(in)
	require.NoError(t, err)

	in[0][0] = 9
	c, ok := m.Cell(0, 0)
	require.True(t, ok)
	assert.Equal(t, 1, c.Weight)

	out := m.Weights()
	out[1][1] = 0
	c, _ = m.Cell(1, 1)
	assert.Equal(t, 4, c.Weight)
}

// TestTileMap_Cell checks bounds, weights and passability.
func TestTileMap_Cell(t *testing.T) {
	m, err := hexgrid.NewTileMap([][]int{
		{0, 1, 0},
		{1, 0, 5},
	})
	require.NoError(t, err)
	assert.Equal(t, 2, m.Rows())
	assert.Equal(t, 3, m.Cols())

	for _, rc := range [][2]int{{-1, 0}, {2, 0}, {0, 3}, {0, -1}} {
		_, ok := m.Cell(rc[0], rc[1])
		assert.Falsef(t, ok, "Cell(%d,%d) should not exist", rc[0], rc[1])
		assert.False(t, m.InBounds(rc[0], rc[1]))
	}

	c, ok := m.Cell(1, 2)
	require.True(t, ok)
	assert.Equal(t, 1, c.Row)
	assert.Equal(t, 2, c.Col)
	assert.Equal(t, 5, c.Weight)
	assert.True(t, c.Passable())
	assert.Equal(t, "(1,2)", c.String())

	c, _ = m.Cell(0, 0)
	assert.False(t, c.Passable())
}

// TestCenter_NeighborSpacing verifies that adjacent centres are exactly one spacing apart.
func TestCenter_NeighborSpacing(t *testing.T) {
	pairs := [][4]int{
		{0, 0, 0, 1}, // same row
		{0, 1, 1, 0}, // even row, down-left
		{0, 1, 1, 1}, // even row, down-right
		{1, 1, 2, 1}, // odd row, down-left
		{1, 1, 2, 2}, // odd row, down-right
	}
	for _, spacing := range []float64{1, 2.5} {
		for _, p := range pairs {
			ax, ay := hexgrid.Center(p[0], p[1], spacing)
			bx, by := hexgrid.Center(p[2], p[3], spacing)
			d := math.Hypot(ax-bx, ay-by)
			assert.InDeltaf(t, spacing, d, 1e-9, "distance %v-%v", p[:2], p[2:])
		}
	}
}

// TestWithSpacing_Panics ensures invalid spacing is rejected when the option is applied.
func TestWithSpacing_Panics(t *testing.T) {
	w := [][]int{{1, 1}, {1, 1}}
	for _, s := range []float64{0, -1, math.NaN()} {
		assert.PanicsWithValue(t, hexgrid.ErrBadSpacing.Error(), func() { _, _ = hexgrid.NewTileMap(w, hexgrid.WithSpacing(s)) })
	}
}

// TestIndexCoordinate round-trips row-major indices.
func TestIndexCoordinate(t *testing.T) {
	m, err := hexgrid.NewTileMap([][]int{{1, 1, 1}, {1, 1, 1}})
	require.NoError(t, err)
	for r := 0; r < m.Rows(); r++ {
		for c := 0; c < m.Cols(); c++ {
			idx := hexgrid.Index(m, r, c)
			gr, gc := hexgrid.Coordinate(m, idx)
			assert.Equal(t, [2]int{r, c}, [2]int{gr, gc})
		}
	}
}

//----------------------------------------------------------------------------//
// Loader Tests
//----------------------------------------------------------------------------//

func TestLoad_Text(t *testing.T) {
	src := `
# header follows
2 3
1, 2, 0
0	1 1
`
	m, err := hexgrid.Load(strings.NewReader(src))
	require.NoError(t, err)
	assert.Equal(t, [][]int{{1, 2, 0}, {0, 1, 1}}, m.Weights())
}

func TestLoad_TextErrors(t *testing.T) {
	cases := []struct {
		name string
		src  string
	}{
		{"Empty", "# nothing\n"},
		{"BadHeader", "3\n1 1 1\n"},
		{"NotInteger", "1 2\n1 x\n"},
		{"ShortRow", "2 2\n1 1\n1\n"},
		{"MissingRow", "2 2\n1 1\n"},
		{"ExtraRow", "1 2\n1 1\n1 1\n"},
		{"NegativeWeight", "1 2\n1 -1\n"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := hexgrid.Load(strings.NewReader(tc.src))
			assert.ErrorIs(t, err, hexgrid.ErrBadFormat)
		})
	}
}

func TestLoadFile(t *testing.T) {
	ring, err := hexgrid.LoadFile("testdata/ring.txt")
	require.NoError(t, err)
	assert.Equal(t, 5, ring.Rows())
	assert.Equal(t, 5, ring.Cols())
	c, _ := ring.Cell(2, 2)
	assert.Equal(t, 1, c.Weight)

	small, err := hexgrid.LoadFile("testdata/small.yaml")
	require.NoError(t, err)
	assert.Equal(t, 2.0, small.Spacing())
	assert.Equal(t, [][]int{{1, 1, 0}, {1, 3, 1}}, small.Weights())

	_, err = hexgrid.LoadFile("testdata/missing.txt")
	assert.Error(t, err)
}

func TestLoadYAML_Errors(t *testing.T) {
	_, err := hexgrid.LoadYAML(strings.NewReader("rows: 2\ncols: 1\nweights: [[1]]\n"))
	assert.ErrorIs(t, err, hexgrid.ErrBadFormat)

	_, err = hexgrid.LoadYAML(strings.NewReader("rows: 1\ncols: 2\nweights: [[1]]\n"))
	assert.ErrorIs(t, err, hexgrid.ErrBadFormat)

	_, err = hexgrid.LoadYAML(strings.NewReader("rows: [\n"))
	assert.ErrorIs(t, err, hexgrid.ErrBadFormat)

	_, err = hexgrid.LoadYAML(strings.NewReader("rows: 0\ncols: 0\nweights: []\n"))
	assert.ErrorIs(t, err, hexgrid.ErrEmptyGrid)
	assert.ErrorIs(t, err, hexgrid.ErrBadFormat)

	_, err = hexgrid.Load(strings.NewReader("1 2\n1 -1\n"))
	assert.ErrorIs(t, err, hexgrid.ErrBadFormat)
	assert.ErrorIs(t, err, hexgrid.ErrNegativeWeight)

	_, err = hexgrid.LoadYAML(strings.NewReader("rows: 1\ncols: 2\nweights: [[1, -1]]\n"))
	assert.ErrorIs(t, err, hexgrid.ErrBadFormat)
	assert.ErrorIs(t, err, hexgrid.ErrNegativeWeight)
}

// TestTileMap_MarshalYAML checks the encoded form loads back unchanged.
func TestTileMap_MarshalYAML(t *testing.T) {
	m, err := hexgrid.NewTileMap([][]int{{1, 0}, {2, 3}}, hexgrid.WithSpacing(3))
	require.NoError(t, err)

	data, err := yaml.Marshal(m)
	require.NoError(t, err)

	back, err := hexgrid.LoadYAML(strings.NewReader(string(data)))
	require.NoError(t, err)
	assert.Equal(t, m.Weights(), back.Weights())
	assert.Equal(t, 3.0, back.Spacing())
}
