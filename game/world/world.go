/*
Package world aggregates the grid, the agent, its inventory, the door/chair/table
states and the running score of one painter episode.

Obstacles and the four tools have canonical cells that are restored at every episode
reset; the door, table and chair are moved to fresh random empty cells instead.
*/
package world

import (
	"errors"
	"fmt"
	"math/rand"

	"github.com/beka-birhanu/vinom-painter/game/grid"
	"github.com/beka-birhanu/vinom-painter/game/inventory"
)

const defaultMaxPlacementAttempts = 64

var (
	ErrInvalidLayout   = errors.New("invalid layout")
	ErrNoFreeCell      = errors.New("no free cell left for placement")
	ErrIllegalPosition = errors.New("position is out of bounds or blocked")
)

// Option configures a World.
type Option func(*World)

// WithRand sets the random source used for furniture placement.
func WithRand(r *rand.Rand) Option {
	return func(w *World) {
		if r != nil {
			w.rng = r
		}
	}
}

// WithSeed seeds a private random source used for furniture placement.
func WithSeed(seed int64) Option {
	return func(w *World) {
		w.rng = rand.New(rand.NewSource(seed))
	}
}

// WithCapacity sets the inventory capacity.
func WithCapacity(capacity int) Option {
	return func(w *World) {
		w.capacity = capacity
	}
}

// WithMaxPlacementAttempts bounds the rejection sampling of random placement
// before falling back to a deterministic scan.
func WithMaxPlacementAttempts(n int) Option {
	return func(w *World) {
		if n > 0 {
			w.maxPlacementAttempts = n
		}
	}
}

// World is the authoritative state of a single-agent painter episode.
type World struct {
	layout               Layout               // Fixed parts of the world
	grid                 *grid.Grid           // Object kinds per cell
	agent                grid.Position        // Current agent cell
	inventory            *inventory.Inventory // Carried tools
	capacity             int                  // Inventory capacity
	doorOpened           bool                 // closed -> opened, once per episode
	chairPainted         bool                 // unpainted -> painted, once per episode
	tablePainted         bool                 // unpainted -> painted, once per episode
	score                float64              // Score of the current episode
	rng                  *rand.Rand           // Source for furniture placement
	maxPlacementAttempts int                  // Rejection sampling bound
}

// New validates the layout and builds the initial world. Furniture is placed at the
// layout's initial cells; kinds without one are placed at random.
func New(layout Layout, opts ...Option) (*World, error) {
	if err := layout.Validate(); err != nil {
		return nil, err
	}

	g, err := grid.New(layout.Size)
	if err != nil {
		return nil, err
	}

	w := &World{
		layout:               layout,
		grid:                 g,
		capacity:             inventory.DefaultCapacity,
		rng:                  rand.New(rand.NewSource(1)),
		maxPlacementAttempts: defaultMaxPlacementAttempts,
	}
	for _, opt := range opts {
		opt(w)
	}
	w.inventory = inventory.New(w.capacity)

	placeFixed(w.grid, layout)
	w.agent = layout.AgentStart
	for _, k := range grid.Furniture {
		p, ok := layout.Furniture[k]
		if !ok {
			if p, err = w.randomFreeCell(w.grid); err != nil {
				return nil, err
			}
		}
		w.grid.Set(k, p.X, p.Y)
	}

	return w, nil
}

// ResetEpisode restores obstacles, tools and the agent to their canonical cells,
// clears the inventory, flags and score, and re-places door, table and chair at
// independently chosen random empty cells that are not the agent's start.
// Furniture cells are chosen on a staged grid first; on error the world is unchanged.
func (w *World) ResetEpisode() error {
	staged, err := grid.New(w.layout.Size)
	if err != nil {
		return err
	}
	placeFixed(staged, w.layout)

	furniture := make(map[grid.Kind]grid.Position, len(grid.Furniture))
	for _, k := range grid.Furniture {
		p, err := w.randomFreeCell(staged)
		if err != nil {
			return fmt.Errorf("placing %s: %w", k, err)
		}
		staged.Set(k, p.X, p.Y)
		furniture[k] = p
	}

	w.grid.Reset()
	placeFixed(w.grid, w.layout)
	for k, p := range furniture {
		w.grid.Set(k, p.X, p.Y)
	}
	w.agent = w.layout.AgentStart
	w.inventory.Clear()
	w.doorOpened = false
	w.chairPainted = false
	w.tablePainted = false
	w.score = 0

	return nil
}

// placeFixed puts the layout's obstacles and tools on their canonical cells of g.
func placeFixed(g *grid.Grid, layout Layout) {
	for _, p := range layout.Obstacles {
		g.Set(grid.Obstacle, p.X, p.Y)
	}
	for k, p := range layout.Tools {
		g.Set(k, p.X, p.Y)
	}
}

// randomFreeCell samples g uniformly for an entirely empty cell other than the agent
// start. After maxPlacementAttempts misses it scans the grid in (x, y) order.
func (w *World) randomFreeCell(g *grid.Grid) (grid.Position, error) {
	size := g.Size()
	free := func(p grid.Position) bool {
		return p != w.layout.AgentStart && g.IsEmpty(p.X, p.Y)
	}

	for i := 0; i < w.maxPlacementAttempts; i++ {
		p := grid.Position{X: w.rng.Intn(size), Y: w.rng.Intn(size)}
		if free(p) {
			return p, nil
		}
	}

	for x := 0; x < size; x++ {
		for y := 0; y < size; y++ {
			if p := (grid.Position{X: x, Y: y}); free(p) {
				return p, nil
			}
		}
	}

	return grid.Position{}, ErrNoFreeCell
}

// MoveAgent places the agent on p if p is on the grid and not an obstacle.
func (w *World) MoveAgent(p grid.Position) error {
	if !w.grid.Walkable(p) {
		return fmt.Errorf("%w: %v", ErrIllegalPosition, p)
	}
	w.agent = p
	return nil
}

// Grid returns the live grid. Callers outside the engine must treat it as read-only.
func (w *World) Grid() *grid.Grid { return w.grid }

// Inventory returns the live inventory.
func (w *World) Inventory() *inventory.Inventory { return w.inventory }

func (w *World) Layout() Layout         { return w.layout }
func (w *World) Agent() grid.Position   { return w.agent }
func (w *World) AgentCell() grid.Cell   { return w.grid.At(w.agent) }
func (w *World) Score() float64         { return w.score }
func (w *World) DoorOpened() bool       { return w.doorOpened }
func (w *World) ChairPainted() bool     { return w.chairPainted }
func (w *World) TablePainted() bool     { return w.tablePainted }
func (w *World) AddScore(delta float64) { w.score += delta }
func (w *World) SetDoorOpened()         { w.doorOpened = true }
func (w *World) SetChairPainted()       { w.chairPainted = true }
func (w *World) SetTablePainted()       { w.tablePainted = true }
