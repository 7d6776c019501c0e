package maze

import (
	"container/heap"
	"math"
)

// stepDirections are the 4-neighbor offsets, expanded in this order: N, E, S, W.
var stepDirections = [4]Coordinate{{X: 0, Y: -1}, {X: 1, Y: 0}, {X: 0, Y: 1}, {X: -1, Y: 0}}

// unreached is the g-score of a cell no path has reached yet.
const unreached = math.MaxInt

// Solve runs A* from (0,0) to (width-1,height-1) moving in 4 directions at unit cost.
// It returns the shortest path with both ends included, or nil when the goal is unreachable.
// Among equally short paths the result is deterministic: frontier ties on f-score
// are broken by insertion order.
func Solve(grid *Grid) []Coordinate {
	start := Coordinate{X: 0, Y: 0}
	goal := Coordinate{X: grid.Width() - 1, Y: grid.Height() - 1}
	if grid.IsWall(start.X, start.Y) || grid.IsWall(goal.X, goal.Y) {
		return nil
	}

	gScore := make([]int, grid.Width()*grid.Height())
	for i := range gScore {
		gScore[i] = unreached
	}
	cameFrom := make(map[Coordinate]Coordinate)

	frontier := &searchFrontier{}
	gScore[grid.index(start.X, start.Y)] = 0
	frontier.push(start, 0, manhattan(start, goal))

	for frontier.Len() > 0 {
		node := heap.Pop(frontier).(*searchNode)
		if node.g > gScore[grid.index(node.pos.X, node.pos.Y)] {
			// Stale entry: the cell was reached more cheaply after this was queued.
			continue
		}

		if node.pos == goal {
			return reconstructPath(cameFrom, start, goal)
		}

		for _, d := range stepDirections {
			next := Coordinate{X: node.pos.X + d.X, Y: node.pos.Y + d.Y}
			if !grid.InBound(next.X, next.Y) || grid.IsWall(next.X, next.Y) {
				continue
			}

			tentative := node.g + 1
			idx := grid.index(next.X, next.Y)
			if tentative < gScore[idx] {
				cameFrom[next] = node.pos
				gScore[idx] = tentative
				frontier.push(next, tentative, tentative+manhattan(next, goal))
			}
		}
	}

	return nil
}

// reconstructPath follows back-pointers from goal to start and reverses them.
func reconstructPath(cameFrom map[Coordinate]Coordinate, start, goal Coordinate) []Coordinate {
	path := []Coordinate{goal}
	for cur := goal; cur != start; {
		cur = cameFrom[cur]
		path = append(path, cur)
	}

	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path
}

// manhattan is the A* heuristic: admissible and consistent on a unit-cost 4-connected grid.
func manhattan(a, b Coordinate) int {
	return abs(a.X-b.X) + abs(a.Y-b.Y)
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

// searchNode is a frontier entry. Several entries may exist for one cell.
type searchNode struct {
	pos Coordinate
	g   int    // cost from start when queued
	f   int    // g + heuristic
	seq uint64 // insertion order, breaks f ties
}

// searchFrontier is a min-heap of search nodes ordered by f, then seq.
type searchFrontier struct {
	nodes []*searchNode
	next  uint64
}

// push queues pos and stamps it with the next insertion number.
func (sf *searchFrontier) push(pos Coordinate, g, f int) {
	heap.Push(sf, &searchNode{pos: pos, g: g, f: f, seq: sf.next})
	sf.next++
}

// Len, Less, Swap, Push and Pop implement heap.Interface.
func (sf searchFrontier) Len() int { return len(sf.nodes) }
func (sf searchFrontier) Less(i, j int) bool {
	if sf.nodes[i].f != sf.nodes[j].f {
		return sf.nodes[i].f < sf.nodes[j].f
	}
	return sf.nodes[i].seq < sf.nodes[j].seq
}
func (sf searchFrontier) Swap(i, j int) { sf.nodes[i], sf.nodes[j] = sf.nodes[j], sf.nodes[i] }
func (sf *searchFrontier) Push(x any) {
	sf.nodes = append(sf.nodes, x.(*searchNode))
}
func (sf *searchFrontier) Pop() any {
	old := sf.nodes
	n := len(old)
	node := old[n-1]
	old[n-1] = nil
	sf.nodes = old[:n-1]
	return node
}
