package hexgrid

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// mapDocument is the YAML form of a map file.
type mapDocument struct {
	Rows    int     `yaml:"rows"`
	Cols    int     `yaml:"cols"`
	Spacing float64 `yaml:"spacing,omitempty"`
	Weights [][]int `yaml:"weights"`
}

// Load reads a map in text form:
//
//	# comment lines and blank lines are ignored
//	3 4          <- rows cols
//	1 1 0 1      <- one line of cols weights per row
//	1 2 0 1
//	1 1 1 1
//
// Weights may be separated by spaces, tabs or commas.
func Load(r io.Reader, opts ...Option) (*TileMap, error) {
	sc := bufio.NewScanner(r)
	rows, cols := -1, -1
	var weights [][]int
	line := 0
	for sc.Scan() {
		line++
		text := strings.TrimSpace(sc.Text())
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}
		fields := strings.FieldsFunc(text, func(r rune) bool {
			return r == ' ' || r == '\t' || r == ','
		})
		values := make([]int, len(fields))
		for i, f := range fields {
			v, err := strconv.Atoi(f)
			if err != nil {
				return nil, fmt.Errorf("%w: line %d: %q is not an integer", ErrBadFormat, line, f)
			}
			values[i] = v
		}

		// 1) Header: rows cols
		if rows < 0 {
			if len(values) != 2 || values[0] <= 0 || values[1] <= 0 {
				return nil, fmt.Errorf("%w: line %d: header must be \"rows cols\"", ErrBadFormat, line)
			}
			rows, cols = values[0], values[1]
			weights = make([][]int, 0, rows)
			continue
		}

		// 2) Weight rows
		if len(weights) == rows {
			return nil, fmt.Errorf("%w: line %d: more than %d rows", ErrBadFormat, line, rows)
		}
		if len(values) != cols {
			return nil, fmt.Errorf("%w: line %d: got %d weights, want %d", ErrBadFormat, line, len(values), cols)
		}
		weights = append(weights, values)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("hexgrid: read map: %w", err)
	}
	if rows < 0 {
		return nil, fmt.Errorf("%w: missing header", ErrBadFormat)
	}
	if len(weights) != rows {
		return nil, fmt.Errorf("%w: got %d rows, want %d", ErrBadFormat, len(weights), rows)
	}

	m, err := NewTileMap(weights, opts...)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBadFormat, err)
	}

	return m, nil
}

// LoadYAML reads a map document of the form
//
//	rows: 2
//	cols: 3
//	spacing: 1.0   # optional
//	weights:
//	  - [1, 1, 0]
//	  - [1, 2, 1]
//
// A spacing in the document is applied before opts, so opts win.
func LoadYAML(r io.Reader, opts ...Option) (*TileMap, error) {
	var doc mapDocument
	if err := yaml.NewDecoder(r).Decode(&doc); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBadFormat, err)
	}
	if doc.Rows != len(doc.Weights) {
		return nil, fmt.Errorf("%w: rows=%d but %d weight rows given", ErrBadFormat, doc.Rows, len(doc.Weights))
	}
	for i, row := range doc.Weights {
		if len(row) != doc.Cols {
			return nil, fmt.Errorf("%w: row %d has %d weights, want %d", ErrBadFormat, i, len(row), doc.Cols)
		}
	}
	if doc.Spacing > 0 {
		opts = append([]Option{WithSpacing(doc.Spacing)}, opts...)
	}

	m, err := NewTileMap(doc.Weights, opts...)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBadFormat, err)
	}

	return m, nil
}

// LoadFile opens path and decodes it with LoadYAML for .yaml/.yml files
// and Load otherwise.
func LoadFile(path string, opts ...Option) (*TileMap, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("hexgrid: open map: %w", err)
	}
	defer f.Close()

	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return LoadYAML(f, opts...)
	default:
		return Load(f, opts...)
	}
}

// MarshalYAML encodes the map in the document form accepted by LoadYAML.
func (m *TileMap) MarshalYAML() (interface{}, error) {
	return mapDocument{Rows: m.rows, Cols: m.cols, Spacing: m.spacing, Weights: m.Weights()}, nil
}
