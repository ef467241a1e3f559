package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
)

// ToneGenerator - синус со скользящей частотой и экспоненциальным затуханием.
type ToneGenerator struct {
	sr        beep.SampleRate
	from, to  float64
	amplitude float64
	decay     float64
	sweep     int
	pos       int
	phase     float64
}

// NewToneGenerator sweeps from → to over 100ms; decay is the envelope rate per second.
func NewToneGenerator(sr beep.SampleRate, from, to, amplitude, decay float64) *ToneGenerator {
	return &ToneGenerator{
		sr:        sr,
		from:      from,
		to:        to,
		amplitude: amplitude,
		decay:     decay,
		sweep:     sr.N(100 * time.Millisecond),
	}
}

func (g *ToneGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		t := float64(g.pos) / float64(g.sr)
		k := math.Min(float64(g.pos)/float64(g.sweep), 1)
		freq := g.from + (g.to-g.from)*k

		g.phase += 2 * math.Pi * freq / float64(g.sr)
		if g.phase > 2*math.Pi {
			g.phase -= 2 * math.Pi
		}
		sample := g.amplitude * math.Exp(-t*g.decay) * math.Sin(g.phase)

		samples[i][0] = sample
		samples[i][1] = sample
		g.pos++
	}
	return len(samples), true
}

func (g *ToneGenerator) Err() error {
	return nil
}
