package game

import (
	"testing"

	"github.com/beka-birhanu/vinom-painter/game/grid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseAction(t *testing.T) {
	valid := map[string]Action{
		"move_up":             Simple(MoveUp),
		"move_down":           Simple(MoveDown),
		"move_left":           Simple(MoveLeft),
		"move_right":          Simple(MoveRight),
		"move_towards(4,4)":   Towards(4, 4),
		"move_towards( 3, 0)": Towards(3, 0),
		"grab":                Simple(Grab),
		"grab(brush)":         GrabItem(grid.Brush),
		"drop":                Simple(Drop),
		"drop(key)":           DropItem(grid.Key),
		"paint":               Simple(Paint),
		"open":                Simple(Open),
		"next_episode":        Simple(NextEpisode),
	}
	for in, want := range valid {
		t.Run(in, func(t *testing.T) {
			got, err := ParseAction(in)
			require.NoError(t, err)
			assert.Equal(t, want, got)
		})
	}

	t.Run("Round trips through String", func(t *testing.T) {
		for _, a := range valid {
			got, err := ParseAction(a.String())
			require.NoError(t, err)
			assert.Equal(t, a, got)
		}
	})

	t.Run("Unknown functor", func(t *testing.T) {
		_, err := ParseAction("fly")
		assert.ErrorIs(t, err, ErrUnknownAction)
	})

	invalid := []string{
		"",
		"move_towards(4)",
		"move_towards(a,b)",
		"drop(door)",
		"grab(ladder)",
		"paint(chair)",
		"move_up(",
		"open)",
	}
	for _, in := range invalid {
		t.Run("Invalid "+in, func(t *testing.T) {
			_, err := ParseAction(in)
			assert.ErrorIs(t, err, ErrInvalidAction)
		})
	}
}
