package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/beka-birhanu/vinom-painter/game"
	"github.com/beka-birhanu/vinom-painter/service/i"
)

const (
	defaultMaxStepsPerEpisode = 200
	nextEpisodeLiteral        = "next_episode"
)

var (
	ErrNilEnvironment = errors.New("environment is required")
	ErrNilPolicy      = errors.New("policy is required")
	ErrNilLogger      = errors.New("logger is required")
)

// Policy picks the next action literal from the latest observation.
type Policy interface {
	Next(obs game.Observation) string
}

// RunnerOptions configures the driving loop.
type RunnerOptions struct {
	StepDelay          time.Duration // Pause after every action, for human-paced viewing
	MaxStepsPerEpisode int           // Forces next_episode when a policy stalls
}

// Runner drives an environment with a policy, one action at a time, until the
// experiment is over.
type Runner struct {
	env    *game.Environment
	policy Policy
	logger i.Logger
	opts   *RunnerOptions
}

// NewRunner creates a runner. A nil opts uses no delay and the default step cap.
func NewRunner(env *game.Environment, policy Policy, logger i.Logger, opts *RunnerOptions) (*Runner, error) {
	if env == nil {
		return nil, ErrNilEnvironment
	}
	if policy == nil {
		return nil, ErrNilPolicy
	}
	if logger == nil {
		return nil, ErrNilLogger
	}

	if opts == nil {
		opts = &RunnerOptions{}
	}
	if opts.MaxStepsPerEpisode <= 0 {
		opts.MaxStepsPerEpisode = defaultMaxStepsPerEpisode
	}
	if opts.StepDelay < 0 {
		opts.StepDelay = 0
	}

	return &Runner{
		env:    env,
		policy: policy,
		logger: logger,
		opts:   opts,
	}, nil
}

// Run plays episodes until the environment reports experiment_over or ctx is done.
// It returns the final episode statistics.
func (r *Runner) Run(ctx context.Context) (game.Stats, error) {
	r.logger.Info(fmt.Sprintf("running experiment %s", r.env.ID()))

	steps := 0
	for !r.env.Done() {
		obs := r.env.Observation()

		literal := r.policy.Next(obs)
		if steps >= r.opts.MaxStepsPerEpisode && literal != nextEpisodeLiteral {
			r.logger.Warning(fmt.Sprintf("episode %d hit %d steps, forcing %s", obs.Episode+1, steps, nextEpisodeLiteral))
			literal = nextEpisodeLiteral
		}

		ok := r.env.ExecuteLiteral(literal)
		steps++
		if ok && literal == nextEpisodeLiteral {
			r.logger.Info(fmt.Sprintf("episode %d finished with score %.3f in %d steps", obs.Episode+1, obs.Score, steps))
			steps = 0
		}

		if err := r.pause(ctx); err != nil {
			return r.env.Stats(), err
		}
	}

	return r.env.Stats(), nil
}

// pause waits StepDelay, returning early with ctx's error if it is cancelled.
func (r *Runner) pause(ctx context.Context) error {
	if r.opts.StepDelay == 0 {
		return ctx.Err()
	}

	timer := time.NewTimer(r.opts.StepDelay)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
