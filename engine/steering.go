package engine

import (
	"github.com/lixenwraith/rsnake/constants"
	"github.com/lixenwraith/rsnake/core"
)

// Steering holds the heading and the frames-since-turn counter with its active threshold
type Steering struct {
	Dir core.Direction

	sinceTurn int
	threshold int
}

// NewSteering creates steering facing dir with a freshly drawn turn threshold
func NewSteering(dir core.Direction, rng core.Rand) *Steering {
	return &Steering{
		Dir:       dir,
		threshold: drawTurnThreshold(rng),
	}
}

// Tick counts one frame and turns once the threshold is reached.
// The new heading is any direction but a reversal, the current one included.
func (s *Steering) Tick(rng core.Rand) bool {
	s.sinceTurn++
	if s.sinceTurn < s.threshold {
		return false
	}

	adj := s.Dir.Adjacent()
	s.Dir = adj[rng.IntN(len(adj))]
	s.sinceTurn = 0
	s.threshold = drawTurnThreshold(rng)
	return true
}

// SinceTurn returns frames counted since the last turn
func (s *Steering) SinceTurn() int {
	return s.sinceTurn
}

// Threshold returns the frame count that triggers the next turn
func (s *Steering) Threshold() int {
	return s.threshold
}

func drawTurnThreshold(rng core.Rand) int {
	return core.IntRange(rng, constants.TurnThresholdMin, constants.TurnThresholdMax)
}
