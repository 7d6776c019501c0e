/*
Package maze provides tools for creating and solving rectangular grid mazes.

A maze is a `Grid` of wall/passage cells. Passages are carved on a lattice of
"nodes" at even coordinates with a 2-cell stride: carving a node also carves the
single cell between it and the node it was reached from, so the carved cells
form a spanning tree over the node lattice.

The package includes randomized depth-first-search and Wilson carving, a
boundary post-pass that opens the leftmost and rightmost columns, an A*
solver from the top-left to the bottom-right corner, and an ASCII view.

The border post-pass can add shortcuts along the left and right edges, so a
generated maze is perfect everywhere except possibly on those two columns.
*/
package maze

import (
	"errors"
	"strings"
	"sync"
)

var (
	ErrInvalidDimensions = errors.New("invalid maze dimensions")
	ErrOutOfBounds       = errors.New("cell is out of the maze")
	ErrAlreadyCarved     = errors.New("maze grid is already carved")
	ErrUnknownAlgorithm  = errors.New("unknown maze algorithm")
)

// Algorithm selects how passages are carved.
type Algorithm string

const (
	DFS    Algorithm = "dfs"    // Randomized iterative depth-first search.
	Wilson Algorithm = "wilson" // Loop-erased random walks, uniform spanning tree.
)

// ParseAlgorithm maps a case-insensitive name to an Algorithm.
// An empty name selects DFS.
func ParseAlgorithm(name string) (Algorithm, error) {
	switch Algorithm(strings.ToLower(strings.TrimSpace(name))) {
	case "", DFS:
		return DFS, nil
	case Wilson:
		return Wilson, nil
	default:
		return "", ErrUnknownAlgorithm
	}
}

// Maze owns a grid and guards it so that generation is exclusive
// and solving or rendering only ever shares read access.
type Maze struct {
	grid *Grid
	sync.RWMutex
}

// New creates a maze whose grid is all walls.
func New(width, height int) (*Maze, error) {
	grid, err := NewGrid(width, height)
	if err != nil {
		return nil, err
	}
	return &Maze{grid: grid}, nil
}

// Generate carves the maze with the given generator. It may succeed only once.
func (m *Maze) Generate(g *Generator) (Stats, error) {
	m.Lock()
	defer m.Unlock()
	return g.Generate(m.grid)
}

// Solve returns the shortest path from the top-left to the bottom-right corner,
// or nil when there is none.
func (m *Maze) Solve() []Coordinate {
	m.RLock()
	defer m.RUnlock()
	return Solve(m.grid)
}

// Width returns the number of columns.
func (m *Maze) Width() int {
	return m.grid.Width()
}

// Height returns the number of rows.
func (m *Maze) Height() int {
	return m.grid.Height()
}

// IsWall reports whether the cell at (x,y) is a wall. It panics outside the maze.
func (m *Maze) IsWall(x, y int) bool {
	m.RLock()
	defer m.RUnlock()
	return m.grid.IsWall(x, y)
}

// Rows returns the ASCII rows of the maze.
func (m *Maze) Rows() []string {
	m.RLock()
	defer m.RUnlock()
	return m.grid.Rows()
}

// String provides a textual representation of the maze.
func (m *Maze) String() string {
	m.RLock()
	defer m.RUnlock()
	return m.grid.String()
}
