package grid

import "fmt"

// Position is a zero-based (x, y) coordinate on the grid.
// Y grows downwards, so moving up decrements Y.
type Position struct {
	X int // Column index
	Y int // Row index
}

// String implements fmt.Stringer.
func (p Position) String() string {
	return fmt.Sprintf("(%d,%d)", p.X, p.Y)
}

// Step returns the neighbouring position in direction d.
func (p Position) Step(d Direction) Position {
	delta := d.Delta()
	return Position{X: p.X + delta.X, Y: p.Y + delta.Y}
}

// Manhattan returns |dx| + |dy| between p and o.
func (p Position) Manhattan(o Position) int {
	return abs(p.X-o.X) + abs(p.Y-o.Y)
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

// Direction is one of the four cardinal moves.
type Direction uint8

const (
	Up Direction = iota
	Down
	Left
	Right
)

// Directions holds the cardinal directions in expansion order.
var Directions = []Direction{Up, Down, Left, Right}

var deltas = map[Direction]Position{
	Up:    {X: 0, Y: -1},
	Down:  {X: 0, Y: 1},
	Left:  {X: -1, Y: 0},
	Right: {X: 1, Y: 0},
}

// Delta returns the unit offset of the direction.
func (d Direction) Delta() Position {
	return deltas[d]
}

// String returns "up", "down", "left" or "right".
func (d Direction) String() string {
	switch d {
	case Up:
		return "up"
	case Down:
		return "down"
	case Left:
		return "left"
	case Right:
		return "right"
	}
	return fmt.Sprintf("direction(%d)", d)
}

// DirectionTo returns the direction leading from one position to an adjacent one.
// The second result is false when the positions are not 4-neighbours.
func DirectionTo(from, to Position) (Direction, bool) {
	for _, d := range Directions {
		if from.Step(d) == to {
			return d, true
		}
	}
	return 0, false
}
