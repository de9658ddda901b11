package audio

import (
	"math"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/speaker"
	"github.com/lixenwraith/rsnake/constants"
)

const (
	sampleRate = beep.SampleRate(44100)
)

// Chime plays a short tone every time the snake grows.
// Until Initialize succeeds every call is a no-op.
type Chime struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	initialized bool
}

// NewChime creates a new, uninitialized chime
func NewChime() *Chime {
	return &Chime{
		mixer: &beep.Mixer{},
	}
}

// Initialize opens the speaker and starts the mixer
func (c *Chime) Initialize() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.initialized {
		return nil
	}

	if err := speaker.Init(sampleRate, sampleRate.N(time.Second/10)); err != nil {
		return err
	}

	speaker.Play(c.mixer)
	c.initialized = true
	return nil
}

// Cleanup stops playback and closes the speaker
func (c *Chime) Cleanup() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.initialized {
		return
	}

	speaker.Lock()
	c.mixer.Clear()
	speaker.Unlock()
	speaker.Close()
	c.initialized = false
}

// OnGrow plays the growth tone; longer snakes sound higher
func (c *Chime) OnGrow(length int) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.initialized {
		return
	}

	tone := &effects.Volume{
		Streamer: NewTone(ToneFrequency(length), constants.ChimeDuration, sampleRate),
		Base:     2,
		Volume:   constants.ChimeVolume,
	}

	speaker.Lock()
	c.mixer.Add(tone)
	speaker.Unlock()
}

// ToneFrequency maps a body length to a pitch, one octave across the full length range
func ToneFrequency(length int) float64 {
	if length < 1 {
		length = 1
	}
	if length > constants.MaxSnakeLength {
		length = constants.MaxSnakeLength
	}
	return constants.ChimeFrequency * math.Pow(2, float64(length-1)/float64(constants.MaxSnakeLength-1))
}

// tone is a finite sine wave with a linear fade out
type tone struct {
	freq     float64
	phase    float64
	duration int
	position int
	rate     beep.SampleRate
}

// NewTone creates a sine streamer lasting d
func NewTone(freq float64, d time.Duration, rate beep.SampleRate) beep.Streamer {
	return &tone{
		freq:     freq,
		duration: rate.N(d),
		rate:     rate,
	}
}

func (t *tone) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if t.position >= t.duration {
			return i, i > 0
		}

		envelope := 1 - float64(t.position)/float64(t.duration)
		val := math.Sin(2*math.Pi*t.phase) * envelope

		samples[i][0] = val
		samples[i][1] = val

		t.phase += t.freq / float64(t.rate)
		t.phase -= math.Floor(t.phase)
		t.position++
	}
	return len(samples), true
}

func (t *tone) Err() error { return nil }
