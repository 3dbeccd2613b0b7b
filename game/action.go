package game

import (
	"fmt"

	"github.com/beka-birhanu/vinom-painter/game/grid"
)

// ActionType enumerates the requests the engine understands.
type ActionType uint8

const (
	MoveUp ActionType = iota + 1
	MoveDown
	MoveLeft
	MoveRight
	MoveTowards
	Grab
	Drop
	Paint
	Open
	NextEpisode
)

var actionNames = map[ActionType]string{
	MoveUp:      "move_up",
	MoveDown:    "move_down",
	MoveLeft:    "move_left",
	MoveRight:   "move_right",
	MoveTowards: "move_towards",
	Grab:        "grab",
	Drop:        "drop",
	Paint:       "paint",
	Open:        "open",
	NextEpisode: "next_episode",
}

// String returns the functor name of the action type.
func (t ActionType) String() string {
	if name, ok := actionNames[t]; ok {
		return name
	}
	return fmt.Sprintf("action(%d)", t)
}

// IsMovement reports whether the action is charged the movement cost.
func (t ActionType) IsMovement() bool {
	return t >= MoveUp && t <= MoveTowards
}

// Action is one request submitted by the agent.
type Action struct {
	Type    ActionType    // What to do
	Target  grid.Position // Goal cell of MoveTowards
	Item    grid.Kind     // Named tool of an addressed Grab or Drop
	HasItem bool          // Whether Item is set
}

// Move returns the cardinal move action for direction d.
func Move(d grid.Direction) Action {
	switch d {
	case grid.Up:
		return Action{Type: MoveUp}
	case grid.Down:
		return Action{Type: MoveDown}
	case grid.Left:
		return Action{Type: MoveLeft}
	default:
		return Action{Type: MoveRight}
	}
}

// Towards returns a goal-directed move to (x, y).
func Towards(x, y int) Action {
	return Action{Type: MoveTowards, Target: grid.Position{X: x, Y: y}}
}

// GrabItem returns a grab of the named tool.
func GrabItem(k grid.Kind) Action {
	return Action{Type: Grab, Item: k, HasItem: true}
}

// DropItem returns a drop of the named tool.
func DropItem(k grid.Kind) Action {
	return Action{Type: Drop, Item: k, HasItem: true}
}

// Simple returns an argument-free action such as paint or next_episode.
func Simple(t ActionType) Action {
	return Action{Type: t}
}

// String renders the action in literal form, e.g. "move_towards(4,4)" or "drop(key)".
func (a Action) String() string {
	switch {
	case a.Type == MoveTowards:
		return fmt.Sprintf("%s(%d,%d)", a.Type, a.Target.X, a.Target.Y)
	case a.HasItem:
		return fmt.Sprintf("%s(%s)", a.Type, a.Item)
	}
	return a.Type.String()
}

// direction maps a cardinal move to its grid direction.
func (t ActionType) direction() (grid.Direction, bool) {
	switch t {
	case MoveUp:
		return grid.Up, true
	case MoveDown:
		return grid.Down, true
	case MoveLeft:
		return grid.Left, true
	case MoveRight:
		return grid.Right, true
	}
	return 0, false
}
