// Package blueprint expands one interpretation into exactly three variant
// blueprints using a single shared LCG stream. Given the same interpretation,
// Generate reproduces the same three blueprints field for field.
package blueprint

import (
	"fmt"

	"github.com/nwatkins/driftloop/internal/domain"
)

// VariantCount is the number of blueprints produced per generation.
const VariantCount = 3

// noiseByIndex assigns noise color per variant index. Fixed table, not drawn
// from the stream, so the three variants always get pairwise distinct colors.
var noiseByIndex = [VariantCount]domain.NoiseColor{
	domain.NoisePink,
	domain.NoiseWhite,
	domain.NoiseBrown,
}

// Generate expands an interpretation into three blueprints.
//
// The draw order per variant is a contract: duration, harmony, turbulence,
// shimmer, depth shift, oscillator count, three palette mix ratios, filter
// cutoff, gain, texture amount, pulse rate, grain, bubble, ripple, audio seed.
// Changing the order reshuffles which random value feeds which field and
// breaks reproducibility across versions.
func Generate(interp *domain.Interpretation) [VariantCount]*domain.VariantBlueprint {
	stream := NewStream(interp.Seed)

	var out [VariantCount]*domain.VariantBlueprint
	for i := 0; i < VariantCount; i++ {
		out[i] = drawVariant(stream, interp.Trigger, i)
	}
	return out
}

func drawVariant(s *Stream, trigger *domain.TriggerDefinition, index int) *domain.VariantBlueprint {
	duration := s.Range(5.2, 8.4)

	// Index biases push the three variants apart: calmer first, rougher last.
	harmony := clamp(0.55+s.Next()*0.43-0.06*float64(index), 0, 0.98)
	turbulence := clamp(0.05+s.Next()*0.30+0.05*float64(index), 0, 0.5)

	shimmer := s.Next() * 0.8
	if trigger.ID == "liquid" {
		shimmer += 0.15
	}
	shimmer = clamp(shimmer, 0, 1)

	depthShift := s.Next()

	oscillators := 3 + int(s.Next()*4)
	if trigger.ID == "tapping" {
		oscillators += 2
	}

	palette := drawPalette(s, trigger)

	audio := domain.AudioProfile{
		NoiseColor:    noiseByIndex[index],
		FilterCutoff:  300 + s.Next()*3700,
		Gain:          0.4 + s.Next()*0.5,
		TextureAmount: s.Next() * 0.35,
		PulseRate:     0.5 + s.Next()*3.5,
	}

	texture := domain.TextureProfile{
		Grain:  s.Next(),
		Bubble: s.Next(),
		Ripple: s.Next(),
	}

	audio.Seed = s.NextUint32()

	hook := trigger.VisualHooks[index%len(trigger.VisualHooks)]

	return &domain.VariantBlueprint{
		ID:          fmt.Sprintf("%s-%d", trigger.ID, index+1),
		Title:       fmt.Sprintf("%s — %s", trigger.Label, hook),
		Trigger:     trigger,
		DurationSec: duration,
		Palette:     palette,
		Motion: domain.MotionProfile{
			OscillatorCount: oscillators,
			LoopHarmony:     harmony,
			Turbulence:      turbulence,
			DepthShift:      depthShift,
			Shimmer:         shimmer,
		},
		Audio:   audio,
		Texture: texture,
		Notes:   fmt.Sprintf("%s noise under a %s motif", audio.NoiseColor, hook),
	}
}

// drawPalette derives the four frame colors from the trigger's 2-3 base colors
// and three mix-ratio draws.
func drawPalette(s *Stream, trigger *domain.TriggerDefinition) domain.Palette {
	m0 := s.Next()
	m1 := s.Next()
	m2 := s.Next()

	base := make([]rgb, len(trigger.BasePalette))
	for i, hx := range trigger.BasePalette {
		base[i] = parseHex(hx)
	}

	primary := base[0]
	accent := base[len(base)-1]
	if len(base) > 1 {
		primary = base[0].mix(base[1], m0*0.5)
	}

	return domain.Palette{
		Background: base[0].shift(-(0.55 + m0*0.25)).hex(),
		Primary:    primary.hex(),
		Secondary:  primary.mix(accent, 0.3+m1*0.5).hex(),
		Highlight:  accent.shift(0.25 + m2*0.35).hex(),
	}
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
