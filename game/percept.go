package game

import (
	"github.com/beka-birhanu/vinom-painter/game/grid"
	"github.com/beka-birhanu/vinom-painter/game/world"
)

// ObjectFact locates one non-obstacle object on the grid.
type ObjectFact struct {
	Kind     grid.Kind     // brush, key, door, table, chair, color or code
	Position grid.Position // Cell holding it
}

// Observation is the full snapshot handed to the agent after every state change.
// It replaces the previous snapshot; it is never a diff. Door, chair and table
// states are presence-only: a false field emits no fact.
type Observation struct {
	Agent          grid.Position   // at(x,y)
	Objects        []ObjectFact    // pos(kind,x,y)
	Obstacles      []grid.Position // obstacle(x,y)
	Carrying       []grid.Kind     // carrying(item)
	DoorOpened     bool            // door(opened)
	ChairPainted   bool            // chair(painted)
	TablePainted   bool            // table(painted)
	Score          float64         // score(v)
	Episode        int             // Finished episodes so far
	ExperimentOver bool            // experiment_over; the only fact of a terminal snapshot
	AverageUtility float64         // Set on the terminal snapshot
}

// Project derives the observation of w. Cells are scanned in (x, y) order.
func Project(w *world.World, stats Stats) Observation {
	if stats.Phase == PhaseExperimentComplete {
		return Observation{
			Episode:        stats.Episode,
			ExperimentOver: true,
			AverageUtility: stats.AverageUtility,
		}
	}

	g := w.Grid()
	obs := Observation{
		Agent:        w.Agent(),
		Carrying:     w.Inventory().Items(),
		DoorOpened:   w.DoorOpened(),
		ChairPainted: w.ChairPainted(),
		TablePainted: w.TablePainted(),
		Score:        w.Score(),
		Episode:      stats.Episode,
	}

	for x := 0; x < g.Size(); x++ {
		for y := 0; y < g.Size(); y++ {
			p := grid.Position{X: x, Y: y}
			for _, k := range g.Get(x, y).Kinds() {
				if k == grid.Obstacle {
					obs.Obstacles = append(obs.Obstacles, p)
					continue
				}
				obs.Objects = append(obs.Objects, ObjectFact{Kind: k, Position: p})
			}
		}
	}

	return obs
}

// Find returns the position of the first object of kind k, if any.
func (o Observation) Find(k grid.Kind) (grid.Position, bool) {
	for _, f := range o.Objects {
		if f.Kind == k {
			return f.Position, true
		}
	}
	return grid.Position{}, false
}

// Carries reports whether the agent carries k.
func (o Observation) Carries(k grid.Kind) bool {
	for _, c := range o.Carrying {
		if c == k {
			return true
		}
	}
	return false
}
