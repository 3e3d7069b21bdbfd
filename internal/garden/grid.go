package garden

import (
	"errors"
	"fmt"
)

// DefaultGridSize is the side length of the garden grid
const DefaultGridSize = 10

// ErrCellOutOfRange is returned for a cell index outside the grid
var ErrCellOutOfRange = errors.New("cell out of range")

// Cell is a single paintable square of the garden grid
type Cell struct {
	Label string `json:"label"` // empty until painted
	Color string `json:"color"` // empty until painted
}

// Grid is a fixed dimension x dimension set of cells, addressed in row-major order
type Grid struct {
	dimension int
	cells     []Cell
}

// NewGrid creates an unpainted grid. A non-positive dimension falls back to DefaultGridSize.
func NewGrid(dimension int) *Grid {
	if dimension <= 0 {
		dimension = DefaultGridSize
	}
	return &Grid{
		dimension: dimension,
		cells:     make([]Cell, dimension*dimension),
	}
}

// Dimension returns the side length of the grid
func (g *Grid) Dimension() int {
	return g.dimension
}

// Len returns the number of cells; always Dimension()^2
func (g *Grid) Len() int {
	return len(g.cells)
}

// Cell returns the cell at index i
func (g *Grid) Cell(i int) (Cell, error) {
	if i < 0 || i >= len(g.cells) {
		return Cell{}, fmt.Errorf("cell %d: %w", i, ErrCellOutOfRange)
	}
	return g.cells[i], nil
}

// Cells returns a copy of all cells in row-major order
func (g *Grid) Cells() []Cell {
	out := make([]Cell, len(g.cells))
	copy(out, g.cells)
	return out
}

// Paint overwrites cell i with the palette's current selection.
// With no selection it leaves the cell untouched and reports false.
func (g *Grid) Paint(i int, palette *Palette) (bool, error) {
	if i < 0 || i >= len(g.cells) {
		return false, fmt.Errorf("paint cell %d: %w", i, ErrCellOutOfRange)
	}
	plant, ok := palette.Selected()
	if !ok {
		return false, nil
	}
	g.cells[i] = Cell{Label: plant.Name, Color: plant.Color}
	return true, nil
}
