package game

import (
	"errors"
	"fmt"
	"sync"

	"github.com/beka-birhanu/vinom-painter/game/grid"
	"github.com/beka-birhanu/vinom-painter/game/world"
	"github.com/beka-birhanu/vinom-painter/service/i"
	"github.com/google/uuid"
)

// ErrNilLogger is returned when an environment is created without a logger.
var ErrNilLogger = errors.New("logger is required")

// Environment is the boundary between one external agent and the engine.
// Actions are applied one at a time; read-only render queries may run concurrently.
type Environment struct {
	id           uuid.UUID   // Experiment identifier
	engine       *Engine     // Action resolution
	observation  Observation // Latest snapshot
	version      int64       // Bumped on every state change
	logger       i.Logger    // Diagnostics sink
	sync.RWMutex             // Guards everything above
}

// NewEnvironment wires an engine over w and publishes the initial observation.
func NewEnvironment(w *world.World, opts Options, logger i.Logger) (*Environment, error) {
	if logger == nil {
		return nil, ErrNilLogger
	}

	engine, err := NewEngine(w, opts)
	if err != nil {
		return nil, err
	}

	env := &Environment{
		id:     uuid.New(),
		engine: engine,
		logger: logger,
	}
	env.publish()
	return env, nil
}

// Execute applies a and reports whether it succeeded. A successful action
// refreshes the observation.
func (env *Environment) Execute(a Action) bool {
	env.Lock()
	defer env.Unlock()

	delta, err := env.engine.Apply(a)
	if err != nil {
		if errors.Is(err, ErrExperimentOver) {
			env.logger.Warning(fmt.Sprintf("%s rejected: %s", a, err))
		} else {
			env.logger.Info(fmt.Sprintf("%s failed: %s", a, err))
		}
		return false
	}

	env.publish()
	switch {
	case a.Type == NextEpisode && env.engine.Episodes().Complete():
		stats := env.engine.Episodes().Stats()
		env.logger.Info(fmt.Sprintf("experiment %s over after %d episodes, average utility %.3f", env.id, stats.Episode, stats.AverageUtility))
	case a.Type == NextEpisode:
		env.logger.Info(fmt.Sprintf("episode %d started", env.engine.Episodes().Stats().Episode+1))
	case delta > 0:
		env.logger.Info(fmt.Sprintf("%s rewarded %.2f, score %.2f", a, delta, env.observation.Score))
	}
	return true
}

// ExecuteLiteral parses s with ParseAction and executes it.
func (env *Environment) ExecuteLiteral(s string) bool {
	a, err := ParseAction(s)
	if err != nil {
		env.logger.Warning(fmt.Sprintf("ignoring %q: %s", s, err))
		return false
	}
	return env.Execute(a)
}

// publish replaces the observation with a fresh projection. Callers hold the lock.
func (env *Environment) publish() {
	env.observation = Project(env.engine.World(), env.engine.Episodes().Stats())
	env.version++
}

// Observation returns the latest snapshot.
func (env *Environment) Observation() Observation {
	env.RLock()
	defer env.RUnlock()
	return env.observation
}

// CellContents returns the kinds at (x, y) for rendering.
func (env *Environment) CellContents(x, y int) grid.Cell {
	env.RLock()
	defer env.RUnlock()
	return env.engine.World().Grid().Get(x, y)
}

// Cells returns a copy of the whole grid indexed [x][y].
func (env *Environment) Cells() [][]grid.Cell {
	env.RLock()
	defer env.RUnlock()

	g := env.engine.World().Grid()
	cells := make([][]grid.Cell, g.Size())
	for x := range cells {
		cells[x] = make([]grid.Cell, g.Size())
		for y := range cells[x] {
			cells[x][y] = g.Get(x, y)
		}
	}
	return cells
}

// AgentPosition returns the agent cell for rendering.
func (env *Environment) AgentPosition() grid.Position {
	env.RLock()
	defer env.RUnlock()
	return env.engine.World().Agent()
}

// GridSize returns the grid dimension.
func (env *Environment) GridSize() int {
	env.RLock()
	defer env.RUnlock()
	return env.engine.World().Grid().Size()
}

// Stats returns the episode counters.
func (env *Environment) Stats() Stats {
	env.RLock()
	defer env.RUnlock()
	return env.engine.Episodes().Stats()
}

// Done reports whether the experiment has completed.
func (env *Environment) Done() bool {
	env.RLock()
	defer env.RUnlock()
	return env.engine.Episodes().Complete()
}

// Version returns a counter bumped on every published observation.
func (env *Environment) Version() int64 {
	env.RLock()
	defer env.RUnlock()
	return env.version
}

// ID returns the experiment identifier.
func (env *Environment) ID() uuid.UUID {
	return env.id
}
