package audio

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/nwatkins/driftloop/internal/domain"
)

func testProfile(color domain.NoiseColor) domain.AudioProfile {
	return domain.AudioProfile{
		NoiseColor:    color,
		FilterCutoff:  2000,
		Gain:          0.8,
		TextureAmount: 0.3,
		PulseRate:     2.0,
		Seed:          987654321,
	}
}

func TestSynthesizeSampleCount(t *testing.T) {
	tests := []struct {
		name     string
		duration float64
		rate     int
		want     int
	}{
		{name: "one second", duration: 1.0, rate: 8000, want: 8000},
		{name: "fractional duration", duration: 0.5, rate: 44100, want: 22050},
		{name: "zero duration", duration: 0, rate: 44100, want: 0},
		{name: "default rate substituted", duration: 0.01, rate: 0, want: DefaultSampleRate / 100},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Synthesize(testProfile(domain.NoiseWhite), tt.duration, tt.rate)
			if len(got) != tt.want {
				t.Errorf("got %d samples, want %d", len(got), tt.want)
			}
		})
	}
}

func TestSynthesizeClampedToUnit(t *testing.T) {
	colors := []domain.NoiseColor{domain.NoiseWhite, domain.NoisePink, domain.NoiseBrown}
	for _, c := range colors {
		t.Run(string(c), func(t *testing.T) {
			p := testProfile(c)
			p.Gain = 0.9
			p.TextureAmount = 0.35
			for i, s := range Synthesize(p, 1.0, 8000) {
				if s < -1 || s > 1 {
					t.Fatalf("sample %d = %v outside [-1, 1]", i, s)
				}
			}
		})
	}
}

func TestSynthesizeDeterministic(t *testing.T) {
	p := testProfile(domain.NoisePink)
	a := Synthesize(p, 0.25, 8000)
	b := Synthesize(p, 0.25, 8000)

	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("sample %d differs between identical calls: %v vs %v", i, a[i], b[i])
		}
	}
}

func TestNoiseColorsProduceDistinctStreams(t *testing.T) {
	white := Synthesize(testProfile(domain.NoiseWhite), 0.25, 8000)
	pink := Synthesize(testProfile(domain.NoisePink), 0.25, 8000)
	brown := Synthesize(testProfile(domain.NoiseBrown), 0.25, 8000)

	same := func(a, b []float64) bool {
		for i := range a {
			if a[i] != b[i] {
				return false
			}
		}
		return true
	}

	if same(white, pink) || same(white, brown) || same(pink, brown) {
		t.Error("noise coloring did not change the sample stream")
	}
}

func TestBrownNoiseStaysBounded(t *testing.T) {
	// The leaky integrator must not drift: even over a long buffer the raw
	// brown samples stay well inside the unit range before clamping.
	p := testProfile(domain.NoiseBrown)
	p.Gain = 1.0
	p.TextureAmount = 0

	samples := Synthesize(p, 5.0, 8000)
	clipped := 0
	sum := 0.0
	for _, s := range samples {
		if s == -1 || s == 1 {
			clipped++
		}
		sum += s
	}
	if frac := float64(clipped) / float64(len(samples)); frac > 0.01 {
		t.Errorf("brown noise clamps %.2f%% of samples; integrator is drifting", frac*100)
	}
	if mean := sum / float64(len(samples)); mean < -0.2 || mean > 0.2 {
		t.Errorf("brown noise mean %v drifted away from zero", mean)
	}
}

func TestEncodeWAV(t *testing.T) {
	path := filepath.Join(t.TempDir(), "loop.wav")
	f, err := os.Create(path)
	if err != nil {
		t.Fatal(err)
	}

	samples := Synthesize(testProfile(domain.NoiseWhite), 0.1, 8000)
	if err := EncodeWAV(f, samples, 8000); err != nil {
		t.Fatalf("EncodeWAV: %v", err)
	}
	if err := f.Close(); err != nil {
		t.Fatal(err)
	}

	info, err := os.Stat(path)
	if err != nil {
		t.Fatal(err)
	}
	// 44-byte RIFF header + 2 bytes per sample.
	if wantMin := int64(44 + len(samples)*2); info.Size() < wantMin {
		t.Errorf("wav file size %d, want at least %d", info.Size(), wantMin)
	}
}
