package maze

// carveWilson carves a uniform spanning tree over the node lattice with Wilson's algorithm.
// The origin is the initial tree; every other node joins it through a loop-erased random walk.
func (g *Generator) carveWilson(grid *Grid) Stats {
	stats := Stats{Nodes: 1}
	grid.SetPassage(0, 0)

	unvisited := make([]Coordinate, 0, ((grid.Width()+1)/2)*((grid.Height()+1)/2))
	for y := 0; y < grid.Height(); y += 2 {
		for x := 0; x < grid.Width(); x += 2 {
			if x == 0 && y == 0 {
				continue
			}
			unvisited = append(unvisited, Coordinate{X: x, Y: y})
		}
	}

	for {
		start, ok := g.randomUnvisitedNode(grid, &unvisited)
		if !ok {
			return stats
		}

		// Only the last exit recorded for each node survives, which erases loops.
		visits := g.randomWalk(grid, start)
		for cell := start; grid.IsWall(cell.X, cell.Y); {
			next := visits[cell]
			carveLink(grid, next, cell)
			stats.Nodes++
			stats.Links++
			cell = next
		}
	}
}

// randomUnvisitedNode draws nodes from unvisited until it finds one that is still a wall.
// Drawn nodes are removed from the slice.
func (g *Generator) randomUnvisitedNode(grid *Grid, unvisited *[]Coordinate) (Coordinate, bool) {
	for len(*unvisited) > 0 {
		nodes := *unvisited
		i := g.rng.Intn(len(nodes))
		pos := nodes[i]
		nodes[i] = nodes[len(nodes)-1]
		*unvisited = nodes[:len(nodes)-1]

		if grid.IsWall(pos.X, pos.Y) {
			return pos, true
		}
	}
	return Coordinate{}, false
}

// randomWalk walks from start across the node lattice until it reaches a carved node.
// It returns the last step taken out of every node visited on the way.
func (g *Generator) randomWalk(grid *Grid, start Coordinate) map[Coordinate]Coordinate {
	visits := make(map[Coordinate]Coordinate)
	neighbors := make([]Coordinate, 0, len(farDirections))

	for cell := start; grid.IsWall(cell.X, cell.Y); {
		neighbors = farNeighbors(grid, cell, false, neighbors[:0])
		next := neighbors[g.rng.Intn(len(neighbors))]
		visits[cell] = next
		cell = next
	}

	return visits
}
