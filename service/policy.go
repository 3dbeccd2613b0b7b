package service

import (
	"fmt"
	"slices"

	"github.com/beka-birhanu/vinom-painter/game"
	"github.com/beka-birhanu/vinom-painter/game/grid"
)

var _ Policy = ScriptedPolicy{}

// ScriptedPolicy paints the chair, then the table, then opens the door, and asks
// for the next episode. It only carries the tools the current goal needs.
type ScriptedPolicy struct{}

// Next implements Policy.
func (p ScriptedPolicy) Next(obs game.Observation) string {
	switch {
	case !obs.ChairPainted:
		return p.paint(obs, grid.Chair)
	case !obs.TablePainted:
		return p.paint(obs, grid.Table)
	case !obs.DoorOpened:
		if lit, ready := p.prepare(obs, grid.Key, grid.Code); !ready {
			return lit
		}
		return "open"
	}
	return nextEpisodeLiteral
}

// paint fetches brush and color, walks to target and paints it.
func (p ScriptedPolicy) paint(obs game.Observation, target grid.Kind) string {
	if lit, ready := p.prepare(obs, grid.Brush, grid.Color); !ready {
		return lit
	}

	pos, ok := obs.Find(target)
	if !ok {
		return nextEpisodeLiteral
	}
	if obs.Agent != pos {
		return towards(pos)
	}
	return "paint"
}

// prepare drops every carried tool outside needed and then fetches the missing
// ones. ready is true once all needed tools are carried.
func (p ScriptedPolicy) prepare(obs game.Observation, needed ...grid.Kind) (lit string, ready bool) {
	for _, k := range obs.Carrying {
		if !slices.Contains(needed, k) {
			return fmt.Sprintf("drop(%s)", k), false
		}
	}

	for _, k := range needed {
		if obs.Carries(k) {
			continue
		}
		pos, ok := obs.Find(k)
		if !ok {
			return nextEpisodeLiteral, false
		}
		if obs.Agent != pos {
			return towards(pos), false
		}
		return fmt.Sprintf("grab(%s)", k), false
	}

	return "", true
}

func towards(p grid.Position) string {
	return fmt.Sprintf("move_towards(%d,%d)", p.X, p.Y)
}
