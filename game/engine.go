package game

import (
	"errors"
	"fmt"

	"github.com/beka-birhanu/vinom-painter/game/grid"
	"github.com/beka-birhanu/vinom-painter/game/world"
)

// Action outcomes. None of them is fatal; a failed action leaves the world as it was.
var (
	ErrCapacityExceeded      = errors.New("inventory is full")
	ErrNothingToInteractWith = errors.New("nothing to interact with")
	ErrIllegalMove           = errors.New("illegal move")
	ErrNoPathFound           = errors.New("no path to target")
	ErrAlreadyDone           = errors.New("already done this episode")
	ErrExperimentOver        = errors.New("experiment is over")
	ErrUnknownAction         = errors.New("unknown action")
	ErrInvalidAction         = errors.New("invalid action literal")
	ErrInvalidMaxEpisodes    = errors.New("max episodes must be positive")
)

// Default cost and reward values.
const (
	DefaultEmptyMoveCost = -0.01 // Movement cost with an empty inventory
	DefaultCarryMoveCost = -0.02 // Movement cost per carried item
	DefaultPaintReward   = 1.0   // Reward for painting a chair or table
	DefaultOpenReward    = 0.8   // Reward for opening the door
	DefaultMaxEpisodes   = 10    // Episodes per experiment
)

// Options holds the reward shaping and episode settings of an engine.
type Options struct {
	EmptyMoveCost  float64 // Added to the score on a successful move with nothing carried
	CarryMoveCost  float64 // Added per carried item on a successful move
	PaintReward    float64 // Granted on a successful paint
	OpenReward     float64 // Granted on a successful open
	RegrantRewards bool    // Paint/open on already painted/opened objects succeed and pay again
	MaxEpisodes    int     // Episodes before the experiment completes
}

// DefaultOptions returns the reference reward shaping.
func DefaultOptions() Options {
	return Options{
		EmptyMoveCost:  DefaultEmptyMoveCost,
		CarryMoveCost:  DefaultCarryMoveCost,
		PaintReward:    DefaultPaintReward,
		OpenReward:     DefaultOpenReward,
		RegrantRewards: true,
		MaxEpisodes:    DefaultMaxEpisodes,
	}
}

// Engine resolves actions against a world. It is not safe for concurrent use.
type Engine struct {
	world    *world.World // State acted upon
	episodes *Episodes    // Episode bookkeeping
	opts     Options      // Costs and rewards
}

// NewEngine creates an engine over w.
func NewEngine(w *world.World, opts Options) (*Engine, error) {
	episodes, err := NewEpisodes(opts.MaxEpisodes)
	if err != nil {
		return nil, err
	}

	return &Engine{
		world:    w,
		episodes: episodes,
		opts:     opts,
	}, nil
}

// World returns the world the engine acts upon.
func (e *Engine) World() *world.World { return e.world }

// Episodes returns the episode controller.
func (e *Engine) Episodes() *Episodes { return e.episodes }

// Apply validates and executes a, returning the score delta it caused.
// On error the world is unchanged and the delta is zero.
func (e *Engine) Apply(a Action) (float64, error) {
	if e.episodes.Complete() {
		return 0, ErrExperimentOver
	}

	switch a.Type {
	case MoveUp, MoveDown, MoveLeft, MoveRight:
		d, _ := a.Type.direction()
		return e.move(d)
	case MoveTowards:
		return e.moveTowards(a.Target)
	case Grab:
		return 0, e.grab(a)
	case Drop:
		return 0, e.drop(a)
	case Paint:
		return e.paint()
	case Open:
		return e.open()
	case NextEpisode:
		return 0, e.episodes.Next(e.world)
	}

	return 0, fmt.Errorf("%w: %s", ErrUnknownAction, a.Type)
}

// move steps the agent one cell in direction d and charges the movement cost.
func (e *Engine) move(d grid.Direction) (float64, error) {
	to := e.world.Agent().Step(d)
	if err := e.world.MoveAgent(to); err != nil {
		return 0, fmt.Errorf("%w: %s to %v", ErrIllegalMove, d, to)
	}

	cost := e.moveCost()
	e.world.AddScore(cost)
	return cost, nil
}

// moveTowards takes the first step of a shortest path to target.
func (e *Engine) moveTowards(target grid.Position) (float64, error) {
	g := e.world.Grid()
	if !g.InBound(target.X, target.Y) {
		return 0, fmt.Errorf("%w: target %v is out of bounds", ErrIllegalMove, target)
	}

	from := e.world.Agent()
	step := grid.NextStep(g, from, target)
	d, ok := grid.DirectionTo(from, step)
	if !ok {
		return 0, fmt.Errorf("%w: from %v to %v", ErrNoPathFound, from, target)
	}

	return e.move(d)
}

// moveCost is the flat cost when empty-handed, otherwise a per-item cost.
func (e *Engine) moveCost() float64 {
	if n := e.world.Inventory().Count(); n > 0 {
		return e.opts.CarryMoveCost * float64(n)
	}
	return e.opts.EmptyMoveCost
}

// grab picks a tool up from the agent's cell. Without a named item the cell must
// hold exactly one tool.
func (e *Engine) grab(a Action) error {
	inv := e.world.Inventory()
	if inv.Full() {
		return ErrCapacityExceeded
	}

	here := e.world.Agent()
	tools := e.world.AgentCell().Tools()

	var item grid.Kind
	switch {
	case a.HasItem:
		if !e.world.AgentCell().Has(a.Item) || !a.Item.IsTool() {
			return fmt.Errorf("%w: no %s at %v", ErrNothingToInteractWith, a.Item, here)
		}
		item = a.Item
	case len(tools) == 1:
		item = tools[0]
	default:
		return fmt.Errorf("%w: %d tools at %v", ErrNothingToInteractWith, len(tools), here)
	}

	inv.Add(item)
	e.world.Grid().Clear(item, here.X, here.Y)
	return nil
}

// drop puts a carried tool on the agent's cell, the most recent one unless named.
func (e *Engine) drop(a Action) error {
	inv := e.world.Inventory()
	item := a.Item

	if a.HasItem {
		if !inv.Remove(item) {
			return fmt.Errorf("%w: not carrying %s", ErrNothingToInteractWith, item)
		}
	} else {
		var ok bool
		if item, ok = inv.RemoveLast(); !ok {
			return fmt.Errorf("%w: inventory is empty", ErrNothingToInteractWith)
		}
	}

	here := e.world.Agent()
	e.world.Grid().Set(item, here.X, here.Y)
	return nil
}

// paint paints the chair or table under the agent when brush and color are carried.
func (e *Engine) paint() (float64, error) {
	if !e.world.Inventory().ContainsAll(grid.Brush, grid.Color) {
		return 0, fmt.Errorf("%w: missing brush or color", ErrNothingToInteractWith)
	}

	cell := e.world.AgentCell()
	switch {
	case cell.Has(grid.Chair):
		if e.world.ChairPainted() && !e.opts.RegrantRewards {
			return 0, fmt.Errorf("%w: chair is painted", ErrAlreadyDone)
		}
		e.world.SetChairPainted()
	case cell.Has(grid.Table):
		if e.world.TablePainted() && !e.opts.RegrantRewards {
			return 0, fmt.Errorf("%w: table is painted", ErrAlreadyDone)
		}
		e.world.SetTablePainted()
	default:
		return 0, fmt.Errorf("%w: nothing to paint at %v", ErrNothingToInteractWith, e.world.Agent())
	}

	e.world.AddScore(e.opts.PaintReward)
	return e.opts.PaintReward, nil
}

// open opens the door when key and code are carried, wherever the agent stands.
func (e *Engine) open() (float64, error) {
	if !e.world.Inventory().ContainsAll(grid.Key, grid.Code) {
		return 0, fmt.Errorf("%w: missing key or code", ErrNothingToInteractWith)
	}
	if e.world.DoorOpened() && !e.opts.RegrantRewards {
		return 0, fmt.Errorf("%w: door is open", ErrAlreadyDone)
	}

	e.world.SetDoorOpened()
	e.world.AddScore(e.opts.OpenReward)
	return e.opts.OpenReward, nil
}
