// Package grid provides the square tile container the engine plays on.
package grid

import (
	"fmt"
	"strconv"
	"strings"
)

// Grid is an N x N collection of tiles.
// Tiles are stored in row-major order: index = row*size + column.
type Grid struct {
	size  int
	tiles []Tile
}

// New creates a grid of size*size empty tiles.
func New(size int) *Grid {
	if size <= 0 {
		panic(fmt.Sprintf("grid: invalid size %d", size))
	}

	g := &Grid{
		size:  size,
		tiles: make([]Tile, size*size),
	}
	for row := range size {
		for col := range size {
			t := &g.tiles[g.index(row, col)]
			t.row = row
			t.column = col
		}
	}
	return g
}

// FromValues creates a grid from a square matrix of values.
// Panics if the matrix is not square.
func FromValues(values [][]int) *Grid {
	g := New(len(values))
	for row, line := range values {
		if len(line) != g.size {
			panic(fmt.Sprintf("grid: row %d has %d values, want %d", row, len(line), g.size))
		}
		for col, v := range line {
			g.At(row, col).Value = v
		}
	}
	return g
}

// index converts a row/column pair to a flat index.
func (g *Grid) index(row, col int) int {
	return row*g.size + col
}

// Size returns the grid dimension.
func (g *Grid) Size() int {
	return g.size
}

// InBounds returns true if the position lies on the grid.
func (g *Grid) InBounds(row, col int) bool {
	return row >= 0 && row < g.size && col >= 0 && col < g.size
}

// At returns the tile at the given row and column.
// Panics if the position is outside the grid.
func (g *Grid) At(row, col int) *Tile {
	if !g.InBounds(row, col) {
		panic(fmt.Sprintf("grid: position (%d,%d) out of range for size %d", row, col, g.size))
	}
	return &g.tiles[g.index(row, col)]
}

// AtPos is At for a Pos.
func (g *Grid) AtPos(p Pos) *Tile {
	return g.At(p.Row, p.Column)
}

// Tiles returns every tile in row-major order.
func (g *Grid) Tiles() []*Tile {
	tiles := make([]*Tile, len(g.tiles))
	for i := range g.tiles {
		tiles[i] = &g.tiles[i]
	}
	return tiles
}

// AvailablePositions returns all empty tiles in row-major order.
func (g *Grid) AvailablePositions() []*Tile {
	var empty []*Tile
	for i := range g.tiles {
		if g.tiles[i].Empty() {
			empty = append(empty, &g.tiles[i])
		}
	}
	return empty
}

// HasPositionsAvailable returns true if at least one tile is empty.
func (g *Grid) HasPositionsAvailable() bool {
	for i := range g.tiles {
		if g.tiles[i].Empty() {
			return true
		}
	}
	return false
}

// HighestValue returns the maximum tile value, 0 on an empty grid.
func (g *Grid) HighestValue() int {
	maxVal := 0
	for i := range g.tiles {
		if g.tiles[i].Value > maxVal {
			maxVal = g.tiles[i].Value
		}
	}
	return maxVal
}

// Rows groups the tiles by row, each row in increasing column order.
func (g *Grid) Rows() [][]*Tile {
	rows := make([][]*Tile, g.size)
	for row := range g.size {
		rows[row] = make([]*Tile, g.size)
		for col := range g.size {
			rows[row][col] = g.At(row, col)
		}
	}
	return rows
}

// Columns groups the tiles by column, each column in increasing row order.
func (g *Grid) Columns() [][]*Tile {
	cols := make([][]*Tile, g.size)
	for col := range g.size {
		cols[col] = make([]*Tile, g.size)
		for row := range g.size {
			cols[col][row] = g.At(row, col)
		}
	}
	return cols
}

// Values returns a copy of the tile values as a row-major matrix.
func (g *Grid) Values() [][]int {
	values := make([][]int, g.size)
	for row := range g.size {
		values[row] = make([]int, g.size)
		for col := range g.size {
			values[row][col] = g.At(row, col).Value
		}
	}
	return values
}

// ClearMoveData clears the per-move annotations of every tile.
func (g *Grid) ClearMoveData() {
	for i := range g.tiles {
		g.tiles[i].ClearMoveData()
	}
}

// Reset empties every tile and clears its annotations.
func (g *Grid) Reset() {
	for i := range g.tiles {
		g.tiles[i].Value = 0
		g.tiles[i].ClearMoveData()
	}
}

// String renders the values one row per line, for debugging.
func (g *Grid) String() string {
	var b strings.Builder
	for row := range g.size {
		for col := range g.size {
			if col > 0 {
				b.WriteByte(' ')
			}
			b.WriteString(strconv.Itoa(g.At(row, col).Value))
		}
		b.WriteByte('\n')
	}
	return b.String()
}
