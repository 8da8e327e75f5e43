// Package audio synthesizes the noise soundtrack for a blueprint. Synthesize
// is pure: given the same profile, duration, and sample rate it produces the
// same buffer, sample for sample.
package audio

import (
	"math"

	"github.com/nwatkins/driftloop/internal/blueprint"
	"github.com/nwatkins/driftloop/internal/domain"
)

// DefaultSampleRate is used when the caller passes a non-positive rate.
const DefaultSampleRate = 44100

// Synthesize produces durationSec worth of mono samples in [-1, 1].
//
// One uniform white sample is drawn per tick; pink and brown shaping are
// applied as documented below, then the pulse term
// 0.7 + texture*sin(2*pi*t*(pulseRate+0.2)) modulates the amplitude and the
// result is clamped.
func Synthesize(p domain.AudioProfile, durationSec float64, sampleRate int) []float64 {
	if sampleRate <= 0 {
		sampleRate = DefaultSampleRate
	}
	count := int(durationSec * float64(sampleRate))
	if count <= 0 {
		return []float64{}
	}

	src := blueprint.NewStream(p.Seed)
	out := make([]float64, count)

	var pink pinkFilter
	var brown float64

	// One-pole lowpass toward the profile cutoff, applied after coloring.
	lpAlpha := 1 - math.Exp(-twoPi*p.FilterCutoff/float64(sampleRate))
	var lp float64

	for i := 0; i < count; i++ {
		white := src.Next()*2 - 1

		var sample float64
		switch p.NoiseColor {
		case domain.NoisePink:
			sample = pink.process(white)
		case domain.NoiseBrown:
			// Leaky integrator approximating red/brown (1/f^2) noise.
			brown = (brown + white*0.02) / 1.02
			sample = brown * 3.5
		default:
			sample = white
		}

		lp += lpAlpha * (sample - lp)

		t := float64(i) / float64(sampleRate)
		pulse := 0.7 + p.TextureAmount*math.Sin(twoPi*t*(p.PulseRate+0.2))

		out[i] = clampUnit(lp * p.Gain * pulse)
	}

	return out
}

const twoPi = 2 * math.Pi

// pinkFilter is the 7-tap recursive pink noise approximation (Paul Kellet's
// refined coefficient set). The tap weights are a compatibility contract.
type pinkFilter struct {
	b0, b1, b2, b3, b4, b5, b6 float64
}

func (f *pinkFilter) process(white float64) float64 {
	f.b0 = 0.99886*f.b0 + white*0.0555179
	f.b1 = 0.99332*f.b1 + white*0.0750759
	f.b2 = 0.96900*f.b2 + white*0.1538520
	f.b3 = 0.86650*f.b3 + white*0.3104856
	f.b4 = 0.55000*f.b4 + white*0.5329522
	f.b5 = -0.7616*f.b5 - white*0.0168980
	out := (f.b0 + f.b1 + f.b2 + f.b3 + f.b4 + f.b5 + f.b6 + white*0.5362) * 0.11
	f.b6 = white * 0.115926
	return out
}

func clampUnit(v float64) float64 {
	if v < -1 {
		return -1
	}
	if v > 1 {
		return 1
	}
	return v
}
