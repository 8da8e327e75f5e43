package service

import (
	"context"
	"errors"
	"fmt"
	"math"
	"testing"
	"time"

	"github.com/nwatkins/driftloop/internal/capture"
	"github.com/nwatkins/driftloop/internal/domain"
	"github.com/nwatkins/driftloop/internal/publish"
	"github.com/nwatkins/driftloop/internal/render"
)

type fakeSink struct {
	requests []*capture.Request
	failFor  map[string]bool
	failAll  bool
}

func (f *fakeSink) Capture(_ context.Context, req *capture.Request) (*capture.Artifact, error) {
	f.requests = append(f.requests, req)
	if f.failAll || f.failFor[req.VariantID] {
		return nil, fmt.Errorf("encode failed for %s", req.VariantID)
	}
	return &capture.Artifact{
		VideoURL:    "file:///" + req.VariantID + ".gif",
		AudioURL:    "file:///" + req.VariantID + ".wav",
		FrameCount:  len(req.Frames),
		DurationSec: req.DurationSec,
	}, nil
}

type fakePublisher struct {
	published *domain.CaptionPayload
	artifact  *capture.Artifact
	err       error
}

func (f *fakePublisher) Publish(_ context.Context, artifact *capture.Artifact, payload *domain.CaptionPayload) (*publish.Confirmation, error) {
	if f.err != nil {
		return nil, f.err
	}
	f.published = payload
	f.artifact = artifact
	return &publish.Confirmation{Message: "published", PublishedAt: time.Now()}, nil
}

func newTestService(sink capture.Sink, pub publish.Publisher) *PipelineService {
	renderer := render.New(render.Config{Width: 36, Height: 64, SuperSample: 1})
	return NewPipelineService(renderer, sink, pub, nil, nil, &PipelineConfig{
		FPS:        2,
		SampleRate: 4000,
	})
}

func TestRunEmptyPrompt(t *testing.T) {
	svc := newTestService(&fakeSink{}, &fakePublisher{})
	if _, err := svc.Run(context.Background(), "   "); !errors.Is(err, ErrEmptyPrompt) {
		t.Fatalf("Run(blank) error = %v, want ErrEmptyPrompt", err)
	}
	if _, err := svc.StartRun(context.Background(), ""); !errors.Is(err, ErrEmptyPrompt) {
		t.Fatalf("StartRun(blank) error = %v, want ErrEmptyPrompt", err)
	}
}

func TestRunNoSink(t *testing.T) {
	svc := newTestService(nil, &fakePublisher{})
	if _, err := svc.Run(context.Background(), "slime"); !errors.Is(err, ErrCaptureUnsupported) {
		t.Fatalf("Run without sink error = %v, want ErrCaptureUnsupported", err)
	}
}

func TestRunSuccess(t *testing.T) {
	sink := &fakeSink{}
	pub := &fakePublisher{}
	svc := newTestService(sink, pub)

	result, err := svc.Run(context.Background(), "Crunchy kinetic sand ASMR")
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if len(result.Variants) != 3 {
		t.Fatalf("got %d variants, want 3", len(result.Variants))
	}
	for _, vr := range result.Variants {
		if vr.Status != domain.VariantStatusReady {
			t.Errorf("variant %s status = %s, want ready", vr.Blueprint.ID, vr.Status)
		}
		if vr.Artifact == nil {
			t.Errorf("variant %s has no artifact", vr.Blueprint.ID)
		}
		if vr.LoopNote == "" {
			t.Errorf("variant %s has no loop note", vr.Blueprint.ID)
		}
	}
	if result.Winner == nil {
		t.Fatal("no winner selected")
	}
	for _, vr := range result.Variants {
		if vr.Score > result.Winner.Score {
			t.Errorf("winner score %.3f below variant %s score %.3f",
				result.Winner.Score, vr.Blueprint.ID, vr.Score)
		}
	}
	if result.Caption == nil || result.Caption.Caption == "" {
		t.Error("caption not built for winner")
	}
	if result.Confirmation == nil {
		t.Error("publish confirmation missing")
	}
	if pub.artifact != result.Winner.Artifact {
		t.Error("publisher did not receive the winner's artifact")
	}
}

func TestRunFrameCounts(t *testing.T) {
	sink := &fakeSink{}
	svc := newTestService(sink, &fakePublisher{})

	result, err := svc.Run(context.Background(), "honey pour")
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if len(sink.requests) != len(result.Variants) {
		t.Fatalf("sink saw %d requests, want %d", len(sink.requests), len(result.Variants))
	}
	for i, req := range sink.requests {
		want := int(math.Ceil(2 * req.DurationSec))
		if len(req.Frames) != want {
			t.Errorf("request %d: %d frames, want %d (duration %.2fs at 2fps)",
				i, len(req.Frames), want, req.DurationSec)
		}
		if len(req.Samples) != int(req.DurationSec*4000) {
			t.Errorf("request %d: %d samples, want %d",
				i, len(req.Samples), int(req.DurationSec*4000))
		}
	}
}

func TestRunFailureIsolation(t *testing.T) {
	sink := &fakeSink{}
	svc := newTestService(sink, &fakePublisher{})

	// First pass discovers the variant IDs, second pass fails one of them.
	probe, err := svc.Run(context.Background(), "soap cutting")
	if err != nil {
		t.Fatalf("probe Run() error = %v", err)
	}
	failed := probe.Variants[1].Blueprint.ID
	sink.failFor = map[string]bool{failed: true}
	sink.requests = nil

	result, err := svc.Run(context.Background(), "soap cutting")
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	ready, failedCount := 0, 0
	for _, vr := range result.Variants {
		switch vr.Status {
		case domain.VariantStatusReady:
			ready++
		case domain.VariantStatusFailed:
			failedCount++
			if vr.Error == "" {
				t.Error("failed variant has no error message")
			}
			if vr.Blueprint.ID != failed {
				t.Errorf("wrong variant failed: %s", vr.Blueprint.ID)
			}
		}
	}
	if ready != 2 || failedCount != 1 {
		t.Fatalf("got %d ready / %d failed, want 2 / 1", ready, failedCount)
	}
	if result.Winner == nil {
		t.Fatal("no winner despite two ready variants")
	}
	if result.Winner.Blueprint.ID == failed {
		t.Error("failed variant selected as winner")
	}
}

func TestRunAllVariantsFailed(t *testing.T) {
	svc := newTestService(&fakeSink{failAll: true}, &fakePublisher{})
	result, err := svc.Run(context.Background(), "tapping on glass")
	if !errors.Is(err, ErrAllVariantsFailed) {
		t.Fatalf("Run() error = %v, want ErrAllVariantsFailed", err)
	}
	if result == nil || len(result.Variants) != 3 {
		t.Fatal("partial result with all variants expected even on failure")
	}
	if result.Winner != nil {
		t.Error("winner selected despite all variants failing")
	}
}

func TestRunPublishFailureFailsRun(t *testing.T) {
	svc := newTestService(&fakeSink{}, &fakePublisher{err: errors.New("endpoint down")})
	_, err := svc.Run(context.Background(), "gentle rain tapping")
	if err == nil {
		t.Fatal("expected error when publish fails")
	}
	if errors.Is(err, ErrAllVariantsFailed) {
		t.Fatal("publish failure misreported as render failure")
	}
}

func TestInterpretCaching(t *testing.T) {
	svc := newTestService(&fakeSink{}, &fakePublisher{})
	a := svc.Interpret("Glossy slime swirl")
	b := svc.Interpret("  glossy SLIME swirl  ")
	if a != b {
		t.Error("equivalent prompts should hit the interpretation cache")
	}
	c := svc.Interpret("honey drizzle")
	if a == c {
		t.Error("different prompts must not share a cache entry")
	}
}
