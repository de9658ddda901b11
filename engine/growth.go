package engine

import (
	"github.com/lixenwraith/rsnake/constants"
	"github.com/lixenwraith/rsnake/core"
)

// Growth decides per frame whether the tail is kept (grow) or trimmed
type Growth struct {
	sinceGrowth int
	threshold   int
}

// NewGrowth creates a growth tracker with a freshly drawn threshold
func NewGrowth(rng core.Rand) *Growth {
	return &Growth{threshold: drawGrowthThreshold(rng)}
}

// Tick is called after a head insert with the resulting length.
// Returns true when the tail should be kept. The length guard is checked together with the
// counter, so a snake at the cap keeps counting and trims until it is short enough again.
func (g *Growth) Tick(length int, rng core.Rand) bool {
	if g.sinceGrowth >= g.threshold && length <= constants.MaxSnakeLength {
		g.sinceGrowth = 0
		g.threshold = drawGrowthThreshold(rng)
		return true
	}
	g.sinceGrowth++
	return false
}

// SinceGrowth returns frames counted since the last growth
func (g *Growth) SinceGrowth() int {
	return g.sinceGrowth
}

// Threshold returns the frame count that allows the next growth
func (g *Growth) Threshold() int {
	return g.threshold
}

func drawGrowthThreshold(rng core.Rand) int {
	return core.IntRange(rng, constants.GrowthThresholdMin, constants.GrowthThresholdMax)
}
