package world

import (
	"fmt"

	"github.com/beka-birhanu/vinom-painter/game/grid"
)

// Layout describes the fixed parts of a world: its size, where the agent starts,
// where obstacles and tools live, and where furniture sits before the first reset.
type Layout struct {
	Size       int                         // Grid dimension
	AgentStart grid.Position               // Agent cell at the start of every episode
	Obstacles  []grid.Position             // Fixed obstacle cells
	Tools      map[grid.Kind]grid.Position // Canonical tool cells, restored each episode
	Furniture  map[grid.Kind]grid.Position // Initial furniture cells; missing kinds are placed at random
}

// ReferenceLayout returns the 5×5 painter world.
func ReferenceLayout() Layout {
	return Layout{
		Size:       5,
		AgentStart: grid.Position{X: 0, Y: 4},
		Obstacles: []grid.Position{
			{X: 3, Y: 0}, {X: 3, Y: 1}, {X: 1, Y: 3}, {X: 1, Y: 4},
		},
		Tools: map[grid.Kind]grid.Position{
			grid.Brush: {X: 0, Y: 0},
			grid.Key:   {X: 0, Y: 1},
			grid.Code:  {X: 2, Y: 0},
			grid.Color: {X: 4, Y: 0},
		},
		Furniture: map[grid.Kind]grid.Position{
			grid.Door:  {X: 2, Y: 4},
			grid.Chair: {X: 3, Y: 3},
			grid.Table: {X: 4, Y: 4},
		},
	}
}

// Validate checks that every coordinate is on the grid, that neither the agent
// start nor any object sits on an obstacle, and that enough free cells remain for
// the furniture. Initial furniture cells must be free and distinct.
func (l Layout) Validate() error {
	g, err := grid.New(l.Size)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidLayout, err)
	}

	inBound := func(p grid.Position) bool { return g.InBound(p.X, p.Y) }

	if !inBound(l.AgentStart) {
		return fmt.Errorf("%w: agent start %v is out of bounds", ErrInvalidLayout, l.AgentStart)
	}

	blocked := make(map[grid.Position]struct{}, len(l.Obstacles))
	for _, p := range l.Obstacles {
		if !inBound(p) {
			return fmt.Errorf("%w: obstacle %v is out of bounds", ErrInvalidLayout, p)
		}
		blocked[p] = struct{}{}
	}

	if _, ok := blocked[l.AgentStart]; ok {
		return fmt.Errorf("%w: agent start %v is an obstacle", ErrInvalidLayout, l.AgentStart)
	}

	for k, p := range l.Tools {
		if !k.IsTool() {
			return fmt.Errorf("%w: %s is not a tool", ErrInvalidLayout, k)
		}
		if !inBound(p) {
			return fmt.Errorf("%w: %s at %v is out of bounds", ErrInvalidLayout, k, p)
		}
		if _, ok := blocked[p]; ok {
			return fmt.Errorf("%w: %s at %v is on an obstacle", ErrInvalidLayout, k, p)
		}
	}

	occupied := make(map[grid.Position]struct{}, len(blocked)+len(l.Tools)+1)
	for p := range blocked {
		occupied[p] = struct{}{}
	}
	for _, p := range l.Tools {
		occupied[p] = struct{}{}
	}
	occupied[l.AgentStart] = struct{}{}

	if free := l.Size*l.Size - len(occupied); free < len(grid.Furniture) {
		return fmt.Errorf("%w: %d free cells for %d pieces of furniture", ErrInvalidLayout, free, len(grid.Furniture))
	}

	for k, p := range l.Furniture {
		if !k.IsFurniture() {
			return fmt.Errorf("%w: %s is not furniture", ErrInvalidLayout, k)
		}
		if !inBound(p) {
			return fmt.Errorf("%w: %s at %v is out of bounds", ErrInvalidLayout, k, p)
		}
		if _, ok := occupied[p]; ok {
			return fmt.Errorf("%w: %s at %v is not a free cell", ErrInvalidLayout, k, p)
		}
		occupied[p] = struct{}{}
	}

	return nil
}
