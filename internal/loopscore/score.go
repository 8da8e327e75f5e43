// Package loopscore holds the loop-smoothness heuristic: a pure score over a
// blueprint's motion profile and a matching human-readable description. The
// score is a heuristic, not a proof of seamlessness; its weights and the
// description thresholds are fixed contract values.
package loopscore

import (
	"math"

	"github.com/nwatkins/driftloop/internal/domain"
)

// Score bounds. Every blueprint lands inside these regardless of its fields.
const (
	MinScore = 0.15
	MaxScore = 0.99
)

// Description thresholds: a score above seamlessThreshold wins the "seamless"
// message; otherwise turbulence below calmThreshold wins the "near-perfect"
// one. The score check runs first.
const (
	seamlessThreshold = 0.9
	calmThreshold     = 0.18
)

// Score rates how loopable a blueprint's motion is.
// Formula: harmony - 0.75*turbulence - 0.2*max(0, shimmer-0.4) + 0.05*depthShift,
// clamped to [0.15, 0.99].
func Score(b *domain.VariantBlueprint) float64 {
	m := b.Motion
	s := m.LoopHarmony -
		0.75*m.Turbulence -
		0.2*math.Max(0, m.Shimmer-0.4) +
		0.05*m.DepthShift
	return math.Min(MaxScore, math.Max(MinScore, s))
}

// Describe returns one of three fixed qualitative messages for a blueprint.
func Describe(b *domain.VariantBlueprint) string {
	if Score(b) > seamlessThreshold {
		return "Seamless loop: the end frame lands exactly where it began."
	}
	if b.Motion.Turbulence < calmThreshold {
		return "Near-perfect loop with a barely visible seam."
	}
	return "Organic variation: the loop breathes rather than snaps shut."
}
