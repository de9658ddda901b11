package engine

import (
	"errors"
	"fmt"
	"time"

	"github.com/lixenwraith/rsnake/constants"
	"github.com/lixenwraith/rsnake/render"
)

// ErrSpeedOutOfRange is returned for speed indices outside 0..constants.MaxSpeed
var ErrSpeedOutOfRange = errors.New("invalid positive int value 0 to 9")

// Config is the live run configuration: speed index and the two color slots.
// It is owned by the game loop; the input handler mutates it between frames.
type Config struct {
	Speed   int
	Palette *render.Palette
}

// NewConfig validates the speed and binds both palette slots
func NewConfig(palette *render.Palette, bodyColor, leadColor string, speed int) (*Config, error) {
	if err := ValidateSpeed(speed); err != nil {
		return nil, err
	}
	palette.SetBody(bodyColor)
	palette.SetLead(leadColor)
	return &Config{Speed: speed, Palette: palette}, nil
}

// ValidateSpeed reports whether speed indexes the delay table
func ValidateSpeed(speed int) error {
	if speed < 0 || speed > constants.MaxSpeed {
		return fmt.Errorf("%d is an %w", speed, ErrSpeedOutOfRange)
	}
	return nil
}

// SetSpeed changes the speed index; out-of-range values are rejected and leave it unchanged
func (c *Config) SetSpeed(speed int) error {
	if err := ValidateSpeed(speed); err != nil {
		return err
	}
	c.Speed = speed
	return nil
}

// Delay returns the pause between frames for the current speed
func (c *Config) Delay() time.Duration {
	return constants.Delay(c.Speed)
}

// Randomize re-resolves both color slots and applies the preset speed
func (c *Config) Randomize() {
	c.Palette.SetBody(render.RandomColor)
	c.Palette.SetLead(render.RandomColor)
	c.Speed = constants.PresetSpeed
}
