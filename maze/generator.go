package maze

import (
	"math/rand"
	"time"
)

// farDirections are the 2-cell stride offsets, scanned in this order: E, W, S, N.
var farDirections = [4]Coordinate{{X: 2, Y: 0}, {X: -2, Y: 0}, {X: 0, Y: 2}, {X: 0, Y: -2}}

// RandSource is the randomness a generator draws from.
// *rand.Rand satisfies it.
type RandSource interface {
	// Intn returns a uniform value in [0,n). n is always positive.
	Intn(n int) int
}

// Stats describes the outcome of a carve.
type Stats struct {
	Nodes int // lattice nodes carved, origin included
	Links int // cells carved between two nodes
}

// Generator carves mazes into grids.
type Generator struct {
	rng       RandSource
	algorithm Algorithm
}

// GeneratorOption configures a Generator.
type GeneratorOption func(*Generator)

// WithRand sets the random source.
func WithRand(r RandSource) GeneratorOption {
	return func(g *Generator) {
		g.rng = r
	}
}

// WithSeed uses a deterministic source seeded with seed.
func WithSeed(seed int64) GeneratorOption {
	return func(g *Generator) {
		g.rng = rand.New(rand.NewSource(seed))
	}
}

// WithAlgorithm selects the carving algorithm. The default is DFS.
func WithAlgorithm(a Algorithm) GeneratorOption {
	return func(g *Generator) {
		g.algorithm = a
	}
}

// NewGenerator creates a generator. Without WithRand or WithSeed it uses a fresh time-seeded source.
func NewGenerator(opts ...GeneratorOption) *Generator {
	g := &Generator{algorithm: DFS}
	for _, opt := range opts {
		opt(g)
	}
	if g.rng == nil {
		g.rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return g
}

// Generate carves grid in place and then opens its leftmost and rightmost columns.
// The grid must be untouched: a grid that already has passages yields ErrAlreadyCarved.
func (g *Generator) Generate(grid *Grid) (Stats, error) {
	if grid.Passages() > 0 {
		return Stats{}, ErrAlreadyCarved
	}

	var stats Stats
	switch g.algorithm {
	case DFS, "":
		stats = g.carveDFS(grid)
	case Wilson:
		stats = g.carveWilson(grid)
	default:
		return Stats{}, ErrUnknownAlgorithm
	}

	openBorders(grid)
	return stats, nil
}

// carveDFS runs the randomized iterative depth-first search from the origin.
// The top of the stack stays until it has no unvisited far neighbor left.
func (g *Generator) carveDFS(grid *Grid) Stats {
	stats := Stats{Nodes: 1}
	grid.SetPassage(0, 0)
	stack := []Coordinate{{X: 0, Y: 0}}
	neighbors := make([]Coordinate, 0, len(farDirections))

	for len(stack) > 0 {
		cur := stack[len(stack)-1]

		neighbors = farNeighbors(grid, cur, true, neighbors[:0])
		if len(neighbors) == 0 {
			stack = stack[:len(stack)-1]
			continue
		}

		next := neighbors[g.rng.Intn(len(neighbors))]
		carveLink(grid, cur, next)
		stats.Nodes++
		stats.Links++
		stack = append(stack, next)
	}

	return stats
}

// farNeighbors appends the in-bound nodes two cells away from c to buf.
// With onlyWalls set, nodes that are already passages are skipped.
func farNeighbors(grid *Grid, c Coordinate, onlyWalls bool, buf []Coordinate) []Coordinate {
	for _, d := range farDirections {
		nx, ny := c.X+d.X, c.Y+d.Y
		if !grid.InBound(nx, ny) {
			continue
		}
		if onlyWalls && !grid.IsWall(nx, ny) {
			continue
		}
		buf = append(buf, Coordinate{X: nx, Y: ny})
	}
	return buf
}

// carveLink carves next and the cell between cur and next.
func carveLink(grid *Grid, cur, next Coordinate) {
	grid.SetPassage(next.X, next.Y)
	grid.SetPassage((cur.X+next.X)/2, (cur.Y+next.Y)/2)
}

// openBorders turns column 0 and column width-1 into passages on every row.
func openBorders(grid *Grid) {
	for y := 0; y < grid.Height(); y++ {
		grid.SetPassage(0, y)
		grid.SetPassage(grid.Width()-1, y)
	}
}
