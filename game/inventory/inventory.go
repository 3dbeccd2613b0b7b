// Package inventory holds the bounded, ordered collection of tools the agent carries.
package inventory

import (
	"slices"

	"github.com/beka-birhanu/vinom-painter/game/grid"
)

// DefaultCapacity is the number of tools an agent may carry at once.
const DefaultCapacity = 3

// Inventory is an ordered sequence of carried kinds with a fixed capacity.
// Order matters only for RemoveLast.
type Inventory struct {
	items    []grid.Kind
	capacity int
}

// New creates an empty inventory. A non-positive capacity falls back to DefaultCapacity.
func New(capacity int) *Inventory {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	return &Inventory{
		items:    make([]grid.Kind, 0, capacity),
		capacity: capacity,
	}
}

// Add appends k and returns true, or returns false if the inventory is full.
func (inv *Inventory) Add(k grid.Kind) bool {
	if inv.Full() {
		return false
	}
	inv.items = append(inv.items, k)
	return true
}

// Remove deletes the first occurrence of k and reports whether it was present.
func (inv *Inventory) Remove(k grid.Kind) bool {
	idx := slices.Index(inv.items, k)
	if idx < 0 {
		return false
	}
	inv.items = slices.Delete(inv.items, idx, idx+1)
	return true
}

// RemoveLast pops the most recently added kind.
func (inv *Inventory) RemoveLast() (grid.Kind, bool) {
	if len(inv.items) == 0 {
		return 0, false
	}
	last := inv.items[len(inv.items)-1]
	inv.items = inv.items[:len(inv.items)-1]
	return last, true
}

// Contains returns true if k is carried.
func (inv *Inventory) Contains(k grid.Kind) bool {
	return slices.Contains(inv.items, k)
}

// ContainsAll returns true if every kind in ks is carried.
func (inv *Inventory) ContainsAll(ks ...grid.Kind) bool {
	for _, k := range ks {
		if !inv.Contains(k) {
			return false
		}
	}
	return true
}

func (inv *Inventory) Count() int    { return len(inv.items) }
func (inv *Inventory) Capacity() int { return inv.capacity }
func (inv *Inventory) Full() bool    { return len(inv.items) >= inv.capacity }

// Items returns a copy of the carried kinds in insertion order.
func (inv *Inventory) Items() []grid.Kind {
	return slices.Clone(inv.items)
}

// Clear drops everything without placing it anywhere.
func (inv *Inventory) Clear() {
	inv.items = inv.items[:0]
}
