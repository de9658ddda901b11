package constants

import "time"

// Snake body limits
const (
	// MaxSnakeLength caps growth; the tail is always trimmed once the body would exceed it
	MaxSnakeLength = 60

	// SnakeGlyph is drawn for every cell of the body and the head
	SnakeGlyph = 'X'

	// SpawnJitter is the max distance (per axis) of the first cell from the screen center
	SpawnJitter = 5
)

// Turn and growth threshold ranges, both inclusive
const (
	TurnThresholdMin = 6
	TurnThresholdMax = 10

	GrowthThresholdMin = 9
	GrowthThresholdMax = 16
)

// Speed settings
const (
	// DefaultSpeed is the speed index used when no flag is given
	DefaultSpeed = 5

	// PresetSpeed is applied by the "random both" key
	PresetSpeed = 5

	// MaxSpeed is the largest valid speed index
	MaxSpeed = 9
)

// DelayTable maps a speed index to the pause between frames, fastest first
var DelayTable = [MaxSpeed + 1]time.Duration{
	3 * time.Millisecond,
	10 * time.Millisecond,
	20 * time.Millisecond,
	30 * time.Millisecond,
	40 * time.Millisecond,
	50 * time.Millisecond,
	60 * time.Millisecond,
	80 * time.Millisecond,
	100 * time.Millisecond,
	400 * time.Millisecond,
}

// Delay returns the frame delay for a speed index, clamping out-of-range values
func Delay(speed int) time.Duration {
	if speed < 0 {
		speed = 0
	}
	if speed > MaxSpeed {
		speed = MaxSpeed
	}
	return DelayTable[speed]
}

// Terminal and logging
const (
	// EventQueueSize is the capacity of the terminal event pump channel
	EventQueueSize = 64

	// MaxPaletteColors caps the random color range on terminals reporting more colors
	MaxPaletteColors = 256

	// ChimeFrequency is the tone played on growth when the chime is enabled (Hz)
	ChimeFrequency = 660.0

	// ChimeDuration is the length of the growth tone
	ChimeDuration = 40 * time.Millisecond

	// ChimeVolume is the beep effects.Volume level (base 2, negative is quieter)
	ChimeVolume = -3.0
)
