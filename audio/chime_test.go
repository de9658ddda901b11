package audio

import (
	"math"
	"testing"
	"time"

	"github.com/lixenwraith/rsnake/constants"
	"github.com/stretchr/testify/assert"
)

func TestToneLength(t *testing.T) {
	s := NewTone(440, 10*time.Millisecond, sampleRate)
	want := sampleRate.N(10 * time.Millisecond)

	buf := make([][2]float64, 128)
	total := 0
	for {
		n, ok := s.Stream(buf)
		total += n
		if !ok {
			break
		}
	}
	assert.Equal(t, want, total)
	assert.NoError(t, s.Err())
}

func TestToneAmplitude(t *testing.T) {
	s := NewTone(440, 20*time.Millisecond, sampleRate)
	buf := make([][2]float64, sampleRate.N(20*time.Millisecond))
	s.Stream(buf)

	for i, frame := range buf {
		assert.LessOrEqual(t, math.Abs(frame[0]), 1.0, "sample %d", i)
		assert.Equal(t, frame[0], frame[1], "channels should match")
	}
}

func TestToneFrequency(t *testing.T) {
	assert.InDelta(t, constants.ChimeFrequency, ToneFrequency(1), 1e-9)
	assert.InDelta(t, constants.ChimeFrequency*2, ToneFrequency(constants.MaxSnakeLength), 1e-9)
	assert.InDelta(t, ToneFrequency(1), ToneFrequency(-4), 1e-9)
	assert.Less(t, ToneFrequency(10), ToneFrequency(11))
}

func TestChimeUninitializedIsNoop(t *testing.T) {
	c := NewChime()
	assert.NotPanics(t, func() {
		c.OnGrow(5)
		c.Cleanup()
	})
}
