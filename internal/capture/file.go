package capture

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/nwatkins/driftloop/internal/audio"
)

// FileSink writes artifacts to a local directory. Used by the render CLI and
// as the zero-infrastructure fallback when no object store is configured.
type FileSink struct {
	dir string
}

// NewFileSink creates the output directory if needed.
func NewFileSink(dir string) (*FileSink, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create output dir %s: %w", dir, err)
	}
	return &FileSink{dir: dir}, nil
}

// Capture encodes the variant to <dir>/<variant-id>.gif and .wav.
func (s *FileSink) Capture(ctx context.Context, req *Request) (*Artifact, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	gifPath := filepath.Join(s.dir, req.VariantID+".gif")
	gifFile, err := os.Create(gifPath)
	if err != nil {
		return nil, fmt.Errorf("failed to create %s: %w", gifPath, err)
	}
	if err := encodeGIF(gifFile, req.Frames, req.FPS); err != nil {
		gifFile.Close()
		return nil, err
	}
	if err := gifFile.Close(); err != nil {
		return nil, fmt.Errorf("failed to close %s: %w", gifPath, err)
	}

	wavPath := filepath.Join(s.dir, req.VariantID+".wav")
	wavFile, err := os.Create(wavPath)
	if err != nil {
		return nil, fmt.Errorf("failed to create %s: %w", wavPath, err)
	}
	if err := audio.EncodeWAV(wavFile, req.Samples, req.SampleRate); err != nil {
		wavFile.Close()
		return nil, err
	}
	if err := wavFile.Close(); err != nil {
		return nil, fmt.Errorf("failed to close %s: %w", wavPath, err)
	}

	return &Artifact{
		VideoURL:    gifPath,
		AudioURL:    wavPath,
		FrameCount:  len(req.Frames),
		DurationSec: req.DurationSec,
	}, nil
}
