package audio

import (
	"context"
	"math"
	"time"
)

// Completion cue shape: 800 Hz, 600 Hz from 0.1 s, 800 Hz from 0.2 s, with
// the gain ramping exponentially from 0.3 to 0.01 over 0.5 s.
const (
	cueDuration  = 500 * time.Millisecond
	cueStartGain = 0.3
	cueEndGain   = 0.01
	cueHighHz    = 800.0
	cueLowHz     = 600.0
)

// CueFrequency returns the cue's tone at offset t.
func CueFrequency(t time.Duration) float64 {
	if t >= 100*time.Millisecond && t < 200*time.Millisecond {
		return cueLowHz
	}
	return cueHighHz
}

// CueGain returns the cue's amplitude at offset t.
func CueGain(t time.Duration) float64 {
	ratio := float64(t) / float64(cueDuration)
	ratio = math.Max(0, math.Min(1, ratio))
	return cueStartGain * math.Pow(cueEndGain/cueStartGain, ratio)
}

// CompletionCue synthesizes the three-tone timer chime as mono 16-bit
// samples. The phase is continuous across frequency steps.
func CompletionCue(sampleRate int) []int16 {
	n := int(int64(sampleRate) * int64(cueDuration) / int64(time.Second))
	samples := make([]int16, n)

	phase := 0.0
	for i := range samples {
		t := time.Duration(int64(i) * int64(time.Second) / int64(sampleRate))
		samples[i] = int16(math.Round(math.Sin(phase) * CueGain(t) * math.MaxInt16))
		phase += 2 * math.Pi * CueFrequency(t) / float64(sampleRate)
	}

	return samples
}

// Chime plays the completion cue on a [Player].
type Chime struct {
	player     Player
	sampleRate int
	samples    []int16
}

// NewChime pre-renders the cue for sampleRate.
func NewChime(player Player, sampleRate int) *Chime {
	return &Chime{
		player:     player,
		sampleRate: sampleRate,
		samples:    CompletionCue(sampleRate),
	}
}

// Ring plays the cue and blocks until it has finished.
func (c *Chime) Ring(ctx context.Context) error {
	return c.player.Play(ctx, c.samples, c.sampleRate)
}
