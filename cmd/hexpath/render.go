package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/katalvlaran/hexpath/hexgrid"
	"github.com/katalvlaran/hexpath/pathsearch"
)

// Glyphs used by render.
const (
	glyphWall     = "#"
	glyphUnseen   = "."
	glyphOpen     = "+"
	glyphExpanded = "o"
	glyphPath     = "*"
	glyphStart    = "S"
	glyphGoal     = "G"
)

// render draws the map with odd rows shifted half a cell to the right,
// marking walls, frontier, expanded cells and the best path.
func render(w io.Writer, tiles *hexgrid.TileMap, c *pathsearch.Controller, sr, sc, gr, gc int) {
	rows, cols := tiles.Rows(), tiles.Cols()
	glyphs := make([]string, rows*cols)
	for i := range glyphs {
		row, col := hexgrid.Coordinate(tiles, i)
		if cell, _ := tiles.Cell(row, col); cell.Passable() {
			glyphs[i] = glyphUnseen
		} else {
			glyphs[i] = glyphWall
		}
	}
	set := func(cell hexgrid.Cell, g string) {
		glyphs[hexgrid.Index(tiles, cell.Row, cell.Col)] = g
	}

	c.Visited(func(cell hexgrid.Cell, _ float64) bool { set(cell, glyphExpanded); return true })
	c.Open(func(cell hexgrid.Cell, _ float64) bool { set(cell, glyphOpen); return true })
	c.BestChain(func(cell hexgrid.Cell, _ float64) bool { set(cell, glyphPath); return true })
	glyphs[hexgrid.Index(tiles, sr, sc)] = glyphStart
	glyphs[hexgrid.Index(tiles, gr, gc)] = glyphGoal

	for row := 0; row < rows; row++ {
		line := strings.Join(glyphs[row*cols:(row+1)*cols], " ")
		if row&1 == 1 {
			line = " " + line
		}
		fmt.Fprintln(w, line)
	}
	fmt.Fprintf(w, "%s wall  %s frontier  %s expanded  %s path\n",
		glyphWall, glyphOpen, glyphExpanded, glyphPath)
}
