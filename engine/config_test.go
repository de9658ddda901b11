package engine

import (
	"math/rand/v2"
	"testing"

	"github.com/lixenwraith/rsnake/constants"
	"github.com/lixenwraith/rsnake/render"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewConfigRejectsSpeed(t *testing.T) {
	p := render.NewPalette(rand.New(rand.NewPCG(1, 1)), 256)
	for _, speed := range []int{-1, 10, 42} {
		_, err := NewConfig(p, "red", "blue", speed)
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrSpeedOutOfRange)
	}
}

func TestConfigDelay(t *testing.T) {
	cfg := newTestConfig(t, rand.New(rand.NewPCG(1, 1)), "red", "blue", 0)
	assert.Equal(t, constants.DelayTable[0], cfg.Delay())

	require.NoError(t, cfg.SetSpeed(7))
	assert.Equal(t, constants.DelayTable[7], cfg.Delay())

	assert.Error(t, cfg.SetSpeed(10))
	assert.Equal(t, 7, cfg.Speed, "rejected speed leaves the old one")
}

func TestConfigRandomize(t *testing.T) {
	cfg := newTestConfig(t, rand.New(rand.NewPCG(1, 1)), "red", "blue", 9)
	cfg.Randomize()

	assert.Equal(t, constants.PresetSpeed, cfg.Speed)
	assert.Equal(t, render.RandomColor, cfg.Palette.Body.Name)
	assert.Equal(t, render.RandomColor, cfg.Palette.Lead.Name)
}
