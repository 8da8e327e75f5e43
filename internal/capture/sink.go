// Package capture turns a rendered frame sequence and a synthesized sample
// buffer into finite media artifacts addressable by URL. Sinks are the
// external collaborator boundary of the render pipeline, so they hide behind
// an interface the orchestrator (and its tests) can swap out.
package capture

import (
	"context"
	"image"
)

// Artifact is the finalized media pair for one variant.
type Artifact struct {
	VideoURL    string  `json:"video_url"`
	AudioURL    string  `json:"audio_url"`
	FrameCount  int     `json:"frame_count"`
	DurationSec float64 `json:"duration_sec"`
}

// Request carries everything a sink needs to encode one variant.
type Request struct {
	VariantID   string
	Frames      []*image.RGBA
	FPS         int
	Samples     []float64
	SampleRate  int
	DurationSec float64
}

// Sink encodes and stores one variant's media.
type Sink interface {
	Capture(ctx context.Context, req *Request) (*Artifact, error)
}
