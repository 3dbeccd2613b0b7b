package grid

import (
	"errors"
	"fmt"
)

// Kind is one object category a grid cell can hold.
type Kind uint8

const (
	Obstacle Kind = iota
	Brush
	Key
	Door
	Table
	Chair
	Color
	Code

	numKinds = int(Code) + 1
)

var (
	ErrUnknownKind = errors.New("unknown object kind")

	kindNames = [numKinds]string{"obstacle", "brush", "key", "door", "table", "chair", "color", "code"}

	// Tools lists the carryable kinds in grab priority order.
	Tools = []Kind{Key, Code, Color, Brush}

	// Furniture lists the kinds that are re-placed at random every episode.
	Furniture = []Kind{Door, Table, Chair}
)

// String returns the lowercase fact name of the kind.
func (k Kind) String() string {
	if int(k) >= numKinds {
		return fmt.Sprintf("kind(%d)", k)
	}
	return kindNames[k]
}

// IsTool reports whether the kind can be carried by the agent.
func (k Kind) IsTool() bool {
	switch k {
	case Key, Code, Color, Brush:
		return true
	}
	return false
}

// IsFurniture reports whether the kind is door, table or chair.
func (k Kind) IsFurniture() bool {
	switch k {
	case Door, Table, Chair:
		return true
	}
	return false
}

// ParseKind converts a fact name such as "brush" back into a Kind.
func ParseKind(name string) (Kind, error) {
	for k, n := range kindNames {
		if n == name {
			return Kind(k), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownKind, name)
}

// Cell is the set of object kinds present at one grid location.
// The zero value is an empty cell.
type Cell struct {
	kinds [numKinds]bool
}

// CellOf builds a cell holding the given kinds.
func CellOf(kinds ...Kind) Cell {
	var c Cell
	for _, k := range kinds {
		c = c.Add(k)
	}
	return c
}

// Has returns true if the kind is present in the cell.
func (c Cell) Has(k Kind) bool {
	return int(k) < numKinds && c.kinds[k]
}

// Add returns a copy of the cell with the kind present.
func (c Cell) Add(k Kind) Cell {
	if int(k) < numKinds {
		c.kinds[k] = true
	}
	return c
}

// Remove returns a copy of the cell with the kind absent.
func (c Cell) Remove(k Kind) Cell {
	if int(k) < numKinds {
		c.kinds[k] = false
	}
	return c
}

// Empty returns true if no kind is present.
func (c Cell) Empty() bool {
	return c == Cell{}
}

// Kinds returns the present kinds in declaration order.
func (c Cell) Kinds() []Kind {
	var out []Kind
	for k, present := range c.kinds {
		if present {
			out = append(out, Kind(k))
		}
	}
	return out
}

// Tools returns the carryable kinds present, in grab priority order.
func (c Cell) Tools() []Kind {
	var out []Kind
	for _, k := range Tools {
		if c.kinds[k] {
			out = append(out, k)
		}
	}
	return out
}
