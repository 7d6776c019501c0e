package maze

import (
	"fmt"
	"strings"
)

// Coordinate is a cell position in the grid. X grows to the right, Y grows down.
type Coordinate struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// Grid is a fixed-size field of wall/passage cells.
// Every cell starts as a wall; carving turns cells into passages and never back.
type Grid struct {
	width    int
	height   int
	cells    []bool // row-major, true = wall
	passages int    // number of passage cells
}

// NewGrid allocates a width×height grid with every cell set to wall.
// Returns ErrInvalidDimensions if either dimension is not positive.
func NewGrid(width, height int) (*Grid, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidDimensions, width, height)
	}

	cells := make([]bool, width*height)
	for i := range cells {
		cells[i] = true
	}

	return &Grid{
		width:  width,
		height: height,
		cells:  cells,
	}, nil
}

// Width returns the number of columns.
func (g *Grid) Width() int {
	return g.width
}

// Height returns the number of rows.
func (g *Grid) Height() int {
	return g.height
}

// Passages returns how many cells are passages.
func (g *Grid) Passages() int {
	return g.passages
}

// InBound reports whether (x,y) lies inside the grid.
func (g *Grid) InBound(x, y int) bool {
	return x >= 0 && x < g.width && y >= 0 && y < g.height
}

// IsWall reports whether the cell at (x,y) is a wall.
// Calling it outside the grid is a programming error and panics with ErrOutOfBounds.
func (g *Grid) IsWall(x, y int) bool {
	return g.cells[g.index(x, y)]
}

// SetPassage turns the cell at (x,y) into a passage.
// Calling it outside the grid panics with ErrOutOfBounds.
func (g *Grid) SetPassage(x, y int) {
	i := g.index(x, y)
	if g.cells[i] {
		g.cells[i] = false
		g.passages++
	}
}

// index maps (x,y) to its row-major offset, panicking when out of bounds.
func (g *Grid) index(x, y int) int {
	if !g.InBound(x, y) {
		panic(fmt.Errorf("%w: (%d,%d) in %dx%d grid", ErrOutOfBounds, x, y, g.width, g.height))
	}
	return y*g.width + x
}

// Rows returns one string per row, '#' for walls and ' ' for passages.
func (g *Grid) Rows() []string {
	rows := make([]string, g.height)
	var sb strings.Builder
	for y := 0; y < g.height; y++ {
		sb.Reset()
		for x := 0; x < g.width; x++ {
			if g.cells[y*g.width+x] {
				sb.WriteByte('#')
			} else {
				sb.WriteByte(' ')
			}
		}
		rows[y] = sb.String()
	}
	return rows
}

// String provides a textual representation of the grid.
func (g *Grid) String() string {
	return strings.Join(g.Rows(), "\n") + "\n"
}
