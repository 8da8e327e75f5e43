package loopscore

import (
	"math"
	"strings"
	"testing"

	"github.com/nwatkins/driftloop/internal/blueprint"
	"github.com/nwatkins/driftloop/internal/domain"
	"github.com/nwatkins/driftloop/internal/interpret"
)

func bpWithMotion(m domain.MotionProfile) *domain.VariantBlueprint {
	return &domain.VariantBlueprint{ID: "test-1", Motion: m}
}

func TestScoreFormula(t *testing.T) {
	tests := []struct {
		name   string
		motion domain.MotionProfile
		want   float64
	}{
		{
			name:   "calm high-harmony profile",
			motion: domain.MotionProfile{LoopHarmony: 0.95, Turbulence: 0.1, Shimmer: 0.2, DepthShift: 0.3},
			want:   0.89, // 0.95 - 0.075 - 0 + 0.015
		},
		{
			name:   "shimmer penalty only above 0.4",
			motion: domain.MotionProfile{LoopHarmony: 0.8, Turbulence: 0.0, Shimmer: 0.9, DepthShift: 0.0},
			want:   0.8 - 0.2*0.5,
		},
		{
			name:   "floor clamp",
			motion: domain.MotionProfile{LoopHarmony: 0.0, Turbulence: 0.5, Shimmer: 1.0, DepthShift: 0.0},
			want:   MinScore,
		},
		{
			name:   "ceiling clamp",
			motion: domain.MotionProfile{LoopHarmony: 0.98, Turbulence: 0.0, Shimmer: 0.0, DepthShift: 1.0},
			want:   MaxScore,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Score(bpWithMotion(tt.motion))
			if math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("Score = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestScoreBoundsOverGeneratedBlueprints(t *testing.T) {
	prompts := []string{"glossy slime", "honey pour", "soap shavings", "", "static fizz"}
	for _, p := range prompts {
		for _, v := range blueprint.Generate(interpret.Interpret(p)) {
			s := Score(v)
			if s < MinScore || s > MaxScore {
				t.Errorf("%s score %v outside [%v, %v]", v.ID, s, MinScore, MaxScore)
			}
		}
	}
}

func TestDescribeThresholdOrder(t *testing.T) {
	tests := []struct {
		name     string
		motion   domain.MotionProfile
		wantPart string
	}{
		{
			name:     "high score wins seamless",
			motion:   domain.MotionProfile{LoopHarmony: 0.98, Turbulence: 0.0, Shimmer: 0.0, DepthShift: 0.5},
			wantPart: "Seamless",
		},
		{
			// Score check must take priority: low turbulence but score > 0.9
			// still reads as seamless, not near-perfect.
			name:     "score check precedes turbulence check",
			motion:   domain.MotionProfile{LoopHarmony: 0.95, Turbulence: 0.01, Shimmer: 0.0, DepthShift: 0.0},
			wantPart: "Seamless",
		},
		{
			name:     "calm but imperfect reads near-perfect",
			motion:   domain.MotionProfile{LoopHarmony: 0.6, Turbulence: 0.1, Shimmer: 0.0, DepthShift: 0.0},
			wantPart: "Near-perfect",
		},
		{
			name:     "turbulent reads organic",
			motion:   domain.MotionProfile{LoopHarmony: 0.6, Turbulence: 0.4, Shimmer: 0.5, DepthShift: 0.0},
			wantPart: "Organic",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Describe(bpWithMotion(tt.motion))
			if !strings.Contains(got, tt.wantPart) {
				t.Errorf("Describe = %q, want it to contain %q", got, tt.wantPart)
			}
		})
	}
}
