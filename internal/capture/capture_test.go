package capture

import (
	"bytes"
	"context"
	"image"
	"image/gif"
	"os"
	"testing"

	"github.com/nwatkins/driftloop/internal/audio"
	"github.com/nwatkins/driftloop/internal/blueprint"
	"github.com/nwatkins/driftloop/internal/domain"
	"github.com/nwatkins/driftloop/internal/interpret"
	"github.com/nwatkins/driftloop/internal/render"
)

func smallRequest(t *testing.T) *Request {
	t.Helper()
	variants := blueprint.Generate(interpret.Interpret("glossy slime"))
	b := variants[0]

	r := render.New(render.Config{Width: 18, Height: 32})
	const frameCount = 6
	frames := make([]*image.RGBA, frameCount)
	for i := range frames {
		frames[i] = r.RenderFrame(b, float64(i)/frameCount)
	}

	samples := audio.Synthesize(domain.AudioProfile{
		NoiseColor: domain.NoiseWhite,
		Gain:       0.8,
		PulseRate:  2,
		Seed:       1,
	}, 0.05, 8000)

	return &Request{
		VariantID:   b.ID,
		Frames:      frames,
		FPS:         12,
		Samples:     samples,
		SampleRate:  8000,
		DurationSec: 0.5,
	}
}

func TestEncodeGIFFrameCountAndLoop(t *testing.T) {
	req := smallRequest(t)

	var buf bytes.Buffer
	if err := encodeGIF(&buf, req.Frames, req.FPS); err != nil {
		t.Fatalf("encodeGIF: %v", err)
	}

	decoded, err := gif.DecodeAll(&buf)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(decoded.Image) != len(req.Frames) {
		t.Errorf("gif has %d frames, want %d", len(decoded.Image), len(req.Frames))
	}
	if decoded.LoopCount != 0 {
		t.Errorf("gif loop count = %d, want 0 (loop forever)", decoded.LoopCount)
	}
}

func TestEncodeGIFRejectsEmptyInput(t *testing.T) {
	var buf bytes.Buffer
	if err := encodeGIF(&buf, nil, 30); err == nil {
		t.Error("expected error for empty frame sequence")
	}
}

func TestFileSinkCapture(t *testing.T) {
	dir := t.TempDir()
	sink, err := NewFileSink(dir)
	if err != nil {
		t.Fatal(err)
	}

	req := smallRequest(t)
	artifact, err := sink.Capture(context.Background(), req)
	if err != nil {
		t.Fatalf("Capture: %v", err)
	}

	if artifact.FrameCount != len(req.Frames) {
		t.Errorf("artifact frame count = %d, want %d", artifact.FrameCount, len(req.Frames))
	}
	for _, path := range []string{artifact.VideoURL, artifact.AudioURL} {
		info, err := os.Stat(path)
		if err != nil {
			t.Errorf("artifact file missing: %v", err)
			continue
		}
		if info.Size() == 0 {
			t.Errorf("artifact file %s is empty", path)
		}
	}
}

func TestFileSinkHonorsCancelledContext(t *testing.T) {
	sink, err := NewFileSink(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := sink.Capture(ctx, smallRequest(t)); err == nil {
		t.Error("expected error for cancelled context")
	}
}
