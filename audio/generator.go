package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
)

const (
	sampleRate = beep.SampleRate(48000)

	speakerBufferDurationMs = 100

	chimeNoteDurationMs = 120
	chimeAmplitude      = 0.25
	chimeDecayRate      = 6.0

	errorBuzzDurationMs  = 150
	errorBuzzFrequencyHz = 120.0
	errorBuzzAmplitude   = 0.2
	errorBuzzAttackS     = 0.02
)

// Rising major arpeggio played when a pass completes cleanly
var chimeFrequenciesHz = []float64{261.63, 329.63, 392.00, 523.25}

// ChimeGenerator plays a short arpeggio, one decaying sine per note
type ChimeGenerator struct {
	sr      beep.SampleRate
	freqs   []float64
	perNote int
	pos     int
}

// NewChimeGenerator creates a chime over freqs, each note noteDur long
func NewChimeGenerator(sr beep.SampleRate, freqs []float64, noteDur time.Duration) *ChimeGenerator {
	return &ChimeGenerator{
		sr:      sr,
		freqs:   freqs,
		perNote: max(sr.N(noteDur), 1),
	}
}

// Len returns the total length in samples
func (g *ChimeGenerator) Len() int {
	return g.perNote * len(g.freqs)
}

func (g *ChimeGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	total := g.Len()
	if g.pos >= total {
		return 0, false
	}
	for i := range samples {
		if g.pos >= total {
			return i, true
		}
		note := g.pos / g.perNote
		t := float64(g.pos%g.perNote) / float64(g.sr)

		envelope := math.Exp(-t * chimeDecayRate)
		sample := chimeAmplitude * envelope * math.Sin(2*math.Pi*g.freqs[note]*t)

		samples[i][0] = sample
		samples[i][1] = sample
		g.pos++
	}
	return len(samples), true
}

func (g *ChimeGenerator) Err() error {
	return nil
}

// BuzzGenerator generates a low-pitch buzz sound
type BuzzGenerator struct {
	sr   beep.SampleRate
	freq float64
	pos  int
}

// NewBuzzGenerator creates a buzz sound generator
func NewBuzzGenerator(sr beep.SampleRate, freq float64) *BuzzGenerator {
	return &BuzzGenerator{
		sr:   sr,
		freq: freq,
	}
}

func (g *BuzzGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		t := float64(g.pos) / float64(g.sr)

		// Fundamental plus two harmonics for a harsh edge
		sample := 0.0
		sample += 0.3 * math.Sin(2*math.Pi*g.freq*t)
		sample += 0.15 * math.Sin(2*math.Pi*g.freq*2*t)
		sample += 0.075 * math.Sin(2*math.Pi*g.freq*3*t)

		envelope := math.Min(t/errorBuzzAttackS, 1.0)
		sample *= envelope * errorBuzzAmplitude

		samples[i][0] = sample
		samples[i][1] = sample
		g.pos++
	}
	return len(samples), true
}

func (g *BuzzGenerator) Err() error {
	return nil
}
