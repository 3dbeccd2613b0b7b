package grid

import (
	"github.com/zyedidia/generic/heap"
	"github.com/zyedidia/generic/mapset"
)

// node is one entry of the A* open set.
type node struct {
	pos    Position
	g      int   // Steps taken from start
	f      int   // g + Manhattan distance to goal
	parent *node // Node this one was reached from; nil for start
}

// NextStep returns the neighbour of start that begins a shortest path to goal.
// It returns start itself when start == goal or when goal cannot be reached.
// Obstacle cells and cells outside the grid are never entered. Among paths of equal
// cost the choice follows the heap's pop order.
func NextStep(g *Grid, start, goal Position) Position {
	end := search(g, start, goal)
	if end == nil || end.parent == nil {
		return start
	}

	step := end
	for step.parent.parent != nil {
		step = step.parent
	}
	return step.pos
}

// Path returns the full shortest path from start to goal, both ends included.
// It returns nil when no path exists.
func Path(g *Grid, start, goal Position) []Position {
	end := search(g, start, goal)
	if end == nil {
		return nil
	}

	var path []Position
	for n := end; n != nil; n = n.parent {
		path = append(path, n.pos)
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path
}

// search runs A* and returns the goal node, or nil when the goal is unreachable.
func search(g *Grid, start, goal Position) *node {
	if !g.InBound(start.X, start.Y) || !g.InBound(goal.X, goal.Y) {
		return nil
	}

	open := heap.New(func(a, b *node) bool {
		return a.f < b.f
	})
	closed := mapset.New[Position]()

	open.Push(&node{pos: start, f: start.Manhattan(goal)})
	for open.Size() > 0 {
		current, _ := open.Pop()
		if current.pos == goal {
			return current
		}
		if closed.Has(current.pos) {
			continue
		}
		closed.Put(current.pos)

		for _, n := range g.neighbors(current.pos) {
			if closed.Has(n) {
				continue
			}
			cost := current.g + 1
			open.Push(&node{
				pos:    n,
				g:      cost,
				f:      cost + n.Manhattan(goal),
				parent: current,
			})
		}
	}

	return nil
}
