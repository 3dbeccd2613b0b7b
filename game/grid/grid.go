/*
Package grid provides the square cell store of the painter world.

Each cell is a typed set of object kinds (obstacle, brush, key, door, table, chair,
color, code), so several objects can share a location. The package also contains the
A* path finder used for goal-directed movement.

Every mutator bounds-checks its coordinates and silently ignores out-of-bound calls.
*/
package grid

import (
	"fmt"
	"strings"
)

const (
	minDimension = 2
	maxDimension = 64
)

// ErrInvalidDimension is returned when a grid size is out of range.
var ErrInvalidDimension = fmt.Errorf("grid dimension must be in [%d, %d]", minDimension, maxDimension)

// Grid is a fixed-size square array of cells, indexed by (x, y).
type Grid struct {
	size  int      // Number of rows and columns
	cells [][]Cell // cells[x][y]
}

// New creates an empty grid of size×size cells.
func New(size int) (*Grid, error) {
	if size < minDimension || size > maxDimension {
		return nil, ErrInvalidDimension
	}

	cells := make([][]Cell, size)
	for x := range cells {
		cells[x] = make([]Cell, size)
	}

	return &Grid{size: size, cells: cells}, nil
}

// Size returns the grid dimension.
func (g *Grid) Size() int {
	return g.size
}

// InBound returns true if (x, y) lies on the grid.
func (g *Grid) InBound(x, y int) bool {
	return x >= 0 && x < g.size && y >= 0 && y < g.size
}

// Get returns the contents of (x, y), or an empty cell when out of bounds.
func (g *Grid) Get(x, y int) Cell {
	if !g.InBound(x, y) {
		return Cell{}
	}
	return g.cells[x][y]
}

// At is Get for a Position.
func (g *Grid) At(p Position) Cell {
	return g.Get(p.X, p.Y)
}

// Set adds kind k to cell (x, y).
func (g *Grid) Set(k Kind, x, y int) {
	if !g.InBound(x, y) {
		return
	}
	g.cells[x][y] = g.cells[x][y].Add(k)
}

// Clear removes kind k from cell (x, y).
func (g *Grid) Clear(k Kind, x, y int) {
	if !g.InBound(x, y) {
		return
	}
	g.cells[x][y] = g.cells[x][y].Remove(k)
}

// IsFree returns true iff (x, y) is in bounds and does not hold kind k.
func (g *Grid) IsFree(k Kind, x, y int) bool {
	return g.InBound(x, y) && !g.cells[x][y].Has(k)
}

// IsEmpty returns true iff (x, y) is in bounds and holds nothing.
func (g *Grid) IsEmpty(x, y int) bool {
	return g.InBound(x, y) && g.cells[x][y].Empty()
}

// Walkable returns true if the agent may stand on p.
func (g *Grid) Walkable(p Position) bool {
	return g.IsFree(Obstacle, p.X, p.Y)
}

// Reset empties every cell.
func (g *Grid) Reset() {
	for x := range g.cells {
		for y := range g.cells[x] {
			g.cells[x][y] = Cell{}
		}
	}
}

// Find returns every position holding kind k in row-major (x, then y) order.
func (g *Grid) Find(k Kind) []Position {
	var out []Position
	for x := 0; x < g.size; x++ {
		for y := 0; y < g.size; y++ {
			if g.cells[x][y].Has(k) {
				out = append(out, Position{X: x, Y: y})
			}
		}
	}
	return out
}

// neighbors returns the walkable 4-neighbours of p in expansion order.
func (g *Grid) neighbors(p Position) []Position {
	result := make([]Position, 0, len(Directions))
	for _, d := range Directions {
		n := p.Step(d)
		if g.Walkable(n) {
			result = append(result, n)
		}
	}
	return result
}

// String provides a textual representation of the grid, one row per line.
func (g *Grid) String() string {
	var b strings.Builder

	b.WriteString("+" + strings.Repeat("---+", g.size) + "\n")
	for y := 0; y < g.size; y++ {
		b.WriteString("|")
		for x := 0; x < g.size; x++ {
			b.WriteString(" " + symbol(g.cells[x][y]) + " |")
		}
		b.WriteString("\n+" + strings.Repeat("---+", g.size) + "\n")
	}

	return b.String()
}

// symbol picks a one-letter marker for the most prominent kind in c.
func symbol(c Cell) string {
	switch {
	case c.Has(Obstacle):
		return "#"
	case c.Has(Door):
		return "D"
	case c.Has(Table):
		return "T"
	case c.Has(Chair):
		return "H"
	case c.Has(Brush):
		return "b"
	case c.Has(Key):
		return "k"
	case c.Has(Color):
		return "c"
	case c.Has(Code):
		return "o"
	}
	return " "
}
