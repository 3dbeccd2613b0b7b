package service

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/beka-birhanu/vinom-painter/game"
	"github.com/beka-birhanu/vinom-painter/game/grid"
	"github.com/beka-birhanu/vinom-painter/game/world"
	"github.com/beka-birhanu/vinom-painter/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fixedPolicy string

func (p fixedPolicy) Next(game.Observation) string { return string(p) }

func newTestRunner(t *testing.T, policy Policy, maxEpisodes int, opts *RunnerOptions) (*Runner, *game.Environment, *bytes.Buffer) {
	t.Helper()
	var buf bytes.Buffer
	l, err := logger.New("TEST", "", &buf)
	require.NoError(t, err)

	w, err := world.New(world.ReferenceLayout(), world.WithSeed(21))
	require.NoError(t, err)

	gameOpts := game.DefaultOptions()
	gameOpts.MaxEpisodes = maxEpisodes
	env, err := game.NewEnvironment(w, gameOpts, l)
	require.NoError(t, err)

	r, err := NewRunner(env, policy, l, opts)
	require.NoError(t, err)
	return r, env, &buf
}

func TestNewRunner(t *testing.T) {
	var buf bytes.Buffer
	l, err := logger.New("TEST", "", &buf)
	require.NoError(t, err)
	w, err := world.New(world.ReferenceLayout())
	require.NoError(t, err)
	env, err := game.NewEnvironment(w, game.DefaultOptions(), l)
	require.NoError(t, err)

	t.Run("Missing collaborators", func(t *testing.T) {
		_, err := NewRunner(nil, ScriptedPolicy{}, l, nil)
		assert.ErrorIs(t, err, ErrNilEnvironment)
		_, err = NewRunner(env, nil, l, nil)
		assert.ErrorIs(t, err, ErrNilPolicy)
		_, err = NewRunner(env, ScriptedPolicy{}, nil, nil)
		assert.ErrorIs(t, err, ErrNilLogger)
	})

	t.Run("Defaults", func(t *testing.T) {
		r, err := NewRunner(env, ScriptedPolicy{}, l, &RunnerOptions{StepDelay: -time.Second})
		require.NoError(t, err)
		assert.Equal(t, time.Duration(0), r.opts.StepDelay)
		assert.Equal(t, defaultMaxStepsPerEpisode, r.opts.MaxStepsPerEpisode)
	})
}

func TestRun(t *testing.T) {
	t.Run("Scripted policy finishes every goal", func(t *testing.T) {
		r, env, buf := newTestRunner(t, ScriptedPolicy{}, 3, nil)

		stats, err := r.Run(context.Background())
		require.NoError(t, err)

		assert.True(t, env.Done())
		assert.Equal(t, 3, stats.Episode)
		assert.Equal(t, game.PhaseExperimentComplete, stats.Phase)
		// Each episode earns 2.8 and pays a little for movement.
		assert.Greater(t, stats.AverageUtility, 1.0)
		assert.Less(t, stats.AverageUtility, 2.8)
		assert.NotContains(t, buf.String(), "forcing")
		assert.Contains(t, buf.String(), "episode 3 finished")
	})

	t.Run("Stalled policy is forced forward", func(t *testing.T) {
		r, env, buf := newTestRunner(t, fixedPolicy("jump"), 2, &RunnerOptions{MaxStepsPerEpisode: 4})

		stats, err := r.Run(context.Background())
		require.NoError(t, err)

		assert.True(t, env.Done())
		assert.Equal(t, 2, stats.Episode)
		assert.Zero(t, stats.TotalScore)
		assert.Contains(t, buf.String(), "forcing next_episode")
	})

	t.Run("Cancelled context stops the loop", func(t *testing.T) {
		r, env, _ := newTestRunner(t, fixedPolicy("move_up"), 5, nil)
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		stats, err := r.Run(ctx)
		assert.ErrorIs(t, err, context.Canceled)
		assert.False(t, env.Done())
		assert.Zero(t, stats.Episode)
		assert.Equal(t, grid.Position{X: 0, Y: 3}, env.AgentPosition())
	})

	t.Run("Step delay paces actions", func(t *testing.T) {
		r, _, _ := newTestRunner(t, fixedPolicy("next_episode"), 3, &RunnerOptions{StepDelay: 5 * time.Millisecond})

		start := time.Now()
		_, err := r.Run(context.Background())
		require.NoError(t, err)
		assert.GreaterOrEqual(t, time.Since(start), 15*time.Millisecond)
	})
}
