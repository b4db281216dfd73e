// Package audio plays short tones when deaths occur and when an outbreak ends.
package audio

import (
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"

	"github.com/pthm-cable/outbreak/telemetry"
)

const sampleRate = beep.SampleRate(44100)

// Tone frequencies in Hz
const (
	deathTone = 220
	overLow   = 440
	overHigh  = 660
)

// Chime reports day results as sound. It implements the simulation
// reporter interface and never blocks the caller.
type Chime struct {
	mu       sync.Mutex
	play     func(beep.Streamer)
	lastDead int
	muted    bool
}

// New initializes the speaker and returns a chime that plays through it.
func New() (*Chime, error) {
	if err := speaker.Init(sampleRate, sampleRate.N(time.Second/10)); err != nil {
		return nil, err
	}
	return newChime(func(s beep.Streamer) { speaker.Play(s) }), nil
}

func newChime(play func(beep.Streamer)) *Chime {
	return &Chime{play: play}
}

// SetMuted silences or restores the chime.
func (c *Chime) SetMuted(muted bool) {
	c.mu.Lock()
	c.muted = muted
	c.mu.Unlock()
}

// Muted reports whether the chime is silenced.
func (c *Chime) Muted() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.muted
}

// ReportDay plays a low tone on days that add to the dead.
func (c *Chime) ReportDay(r telemetry.DayReport) {
	c.mu.Lock()
	defer c.mu.Unlock()

	died := r.Dead > c.lastDead
	c.lastDead = r.Dead
	if !died || c.muted {
		return
	}
	if s := tone(deathTone, 80*time.Millisecond); s != nil {
		c.play(s)
	}
}

// ReportSummary plays a rising pair of tones.
func (c *Chime) ReportSummary(telemetry.Summary) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.muted {
		return
	}
	low := tone(overLow, 120*time.Millisecond)
	high := tone(overHigh, 200*time.Millisecond)
	if low == nil || high == nil {
		return
	}
	c.play(beep.Seq(low, high))
}

// Reset forgets the previous day's death count.
func (c *Chime) Reset() {
	c.mu.Lock()
	c.lastDead = 0
	c.mu.Unlock()
}

// tone returns a quiet sine of the given length, or nil if the frequency
// cannot be generated at the sample rate.
func tone(freq int, d time.Duration) beep.Streamer {
	sine, err := generators.SineTone(sampleRate, float64(freq))
	if err != nil {
		return nil
	}
	return &effects.Volume{
		Streamer: beep.Take(sampleRate.N(d), sine),
		Base:     2,
		Volume:   -3,
	}
}
