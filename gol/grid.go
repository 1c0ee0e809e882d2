package gol

import (
	"fmt"
	"iter"

	"uk.ac.bris.cs/cellsim/util"
)

// Grid is the live world. Cells are stored flat in row-major order, each
// holding 0 (dead) or 1 (alive). The dimensions are fixed at creation.
type Grid struct {
	height int
	width  int
	cells  []uint8
}

// NewGrid returns an all-dead grid of the given size.
func NewGrid(height, width int) (*Grid, error) {
	if height < 1 || width < 1 {
		return nil, fmt.Errorf("%w: grid must be at least 1x1, got %dx%d", ErrMalformedInput, width, height)
	}
	return &Grid{height: height, width: width, cells: make([]uint8, height*width)}, nil
}

func (g *Grid) Height() int { return g.height }
func (g *Grid) Width() int  { return g.width }

func (g *Grid) index(y, x int) int {
	return y*g.width + x
}

// Get returns the value of the cell at row y, column x.
func (g *Grid) Get(y, x int) uint8 {
	return g.cells[g.index(y, x)]
}

// Set stores v at row y, column x. Any non-zero v is stored as alive.
func (g *Grid) Set(y, x int, v uint8) {
	if v != 0 {
		v = 1
	}
	g.cells[g.index(y, x)] = v
}

// Clone returns an independent copy of the grid.
func (g *Grid) Clone() *Grid {
	cells := make([]uint8, len(g.cells))
	copy(cells, g.cells)
	return &Grid{height: g.height, width: g.width, cells: cells}
}

// Equal reports whether both grids have the same size and contents.
func (g *Grid) Equal(o *Grid) bool {
	if g.height != o.height || g.width != o.width {
		return false
	}
	for i := range g.cells {
		if g.cells[i] != o.cells[i] {
			return false
		}
	}
	return true
}

// AliveCells lists every live cell in row-major order.
func (g *Grid) AliveCells() []util.Cell {
	var alive []util.Cell
	for y := 0; y < g.height; y++ {
		for x := 0; x < g.width; x++ {
			if g.Get(y, x) == 1 {
				alive = append(alive, util.Cell{X: x, Y: y})
			}
		}
	}
	return alive
}

// Row is a write view over exactly one row of a Grid.
type Row struct {
	Y     int
	Cells []uint8
}

// Rows hands out write views for the given row indices. Each view aliases the
// grid's own storage, so whoever holds a Row can only write that row.
func (g *Grid) Rows(ys iter.Seq[int]) ([]Row, error) {
	var rows []Row
	for y := range ys {
		if y < 0 || y >= g.height {
			return nil, fmt.Errorf("%w: row %d outside world of height %d", ErrWorkerFailed, y, g.height)
		}
		start := g.index(y, 0)
		rows = append(rows, Row{Y: y, Cells: g.cells[start : start+g.width : start+g.width]})
	}
	return rows, nil
}

// snapshot copies the current cells into buf and returns a read-only view of
// the copy. buf must have the same length as the grid.
func (g *Grid) snapshot(buf []uint8) Snapshot {
	copy(buf, g.cells)
	return Snapshot{height: g.height, width: g.width, cells: buf}
}

// restore overwrites the live cells with the contents of s.
func (g *Grid) restore(s Snapshot) {
	copy(g.cells, s.cells)
}
