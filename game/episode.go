package game

import (
	"fmt"

	"github.com/beka-birhanu/vinom-painter/game/world"
)

// EpisodePhase is the state of the episode controller.
type EpisodePhase uint8

const (
	PhaseRunning            EpisodePhase = iota // Actions are being applied
	PhaseEpisodeBoundary                        // The world is being reset
	PhaseExperimentComplete                     // max episodes reached; the engine is inert
)

// String implements fmt.Stringer.
func (p EpisodePhase) String() string {
	switch p {
	case PhaseRunning:
		return "running"
	case PhaseEpisodeBoundary:
		return "episode_boundary"
	case PhaseExperimentComplete:
		return "experiment_complete"
	}
	return fmt.Sprintf("phase(%d)", p)
}

// MarshalText encodes the phase by name.
func (p EpisodePhase) MarshalText() ([]byte, error) {
	return []byte(p.String()), nil
}

// UnmarshalText decodes a phase name produced by MarshalText.
func (p *EpisodePhase) UnmarshalText(text []byte) error {
	for _, candidate := range []EpisodePhase{PhaseRunning, PhaseEpisodeBoundary, PhaseExperimentComplete} {
		if candidate.String() == string(text) {
			*p = candidate
			return nil
		}
	}
	return fmt.Errorf("unknown episode phase %q", text)
}

// Stats is a read-only view of the episode bookkeeping.
type Stats struct {
	Episode        int          `json:"episode"`         // Finished episodes
	MaxEpisodes    int          `json:"max_episodes"`    // Termination bound
	TotalScore     float64      `json:"total_score"`     // Sum of finished episode scores
	AverageUtility float64      `json:"average_utility"` // TotalScore / MaxEpisodes
	Phase          EpisodePhase `json:"phase"`           // Controller state
}

// Episodes counts finished episodes and accumulates their scores across resets.
type Episodes struct {
	count       int
	totalScore  float64
	maxEpisodes int
	phase       EpisodePhase
}

// NewEpisodes creates a controller that completes after maxEpisodes episodes.
func NewEpisodes(maxEpisodes int) (*Episodes, error) {
	if maxEpisodes <= 0 {
		return nil, ErrInvalidMaxEpisodes
	}
	return &Episodes{maxEpisodes: maxEpisodes, phase: PhaseRunning}, nil
}

// Next closes the current episode of w. It banks the score, then either completes
// the experiment or resets w for a new episode. A failed reset changes nothing.
// After completion it only returns ErrExperimentOver.
func (e *Episodes) Next(w *world.World) error {
	if e.Complete() {
		return ErrExperimentOver
	}

	score := w.Score()
	if e.count+1 >= e.maxEpisodes {
		e.count++
		e.totalScore += score
		e.phase = PhaseExperimentComplete
		return nil
	}

	e.phase = PhaseEpisodeBoundary
	defer func() { e.phase = PhaseRunning }()
	if err := w.ResetEpisode(); err != nil {
		return fmt.Errorf("resetting episode %d: %w", e.count+2, err)
	}

	e.count++
	e.totalScore += score
	return nil
}

// Complete returns true once max episodes have been played.
func (e *Episodes) Complete() bool {
	return e.phase == PhaseExperimentComplete
}

// AverageUtility is the accumulated score divided by max episodes.
func (e *Episodes) AverageUtility() float64 {
	return e.totalScore / float64(e.maxEpisodes)
}

// Stats returns a copy of the counters.
func (e *Episodes) Stats() Stats {
	return Stats{
		Episode:        e.count,
		MaxEpisodes:    e.maxEpisodes,
		TotalScore:     e.totalScore,
		AverageUtility: e.AverageUtility(),
		Phase:          e.phase,
	}
}
