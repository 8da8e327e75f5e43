package capture

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/uuid"

	"github.com/nwatkins/driftloop/internal/audio"
	"github.com/nwatkins/driftloop/internal/logger"
	"github.com/nwatkins/driftloop/internal/storage"
)

// ObjectStoreSink encodes artifacts in memory (GIF) or via a scratch file
// (WAV, whose encoder needs a seekable writer) and uploads both to object
// storage.
type ObjectStoreSink struct {
	store  storage.ObjectStorage
	logger *logger.Logger
}

// NewObjectStoreSink creates a sink backed by the given object store.
func NewObjectStoreSink(store storage.ObjectStorage, log *logger.Logger) *ObjectStoreSink {
	return &ObjectStoreSink{store: store, logger: log}
}

// Capture uploads the encoded media under loops/<variant-id>/<uuid>.{gif,wav}
// and resolves the artifact with retrievable URLs.
func (s *ObjectStoreSink) Capture(ctx context.Context, req *Request) (*Artifact, error) {
	token := uuid.New().String()
	gifKey := fmt.Sprintf("loops/%s/%s.gif", req.VariantID, token)
	wavKey := fmt.Sprintf("loops/%s/%s.wav", req.VariantID, token)

	var gifBuf bytes.Buffer
	if err := encodeGIF(&gifBuf, req.Frames, req.FPS); err != nil {
		return nil, err
	}
	gifSize := gifBuf.Len()
	if err := s.store.Upload(ctx, gifKey, &gifBuf, int64(gifSize), "image/gif"); err != nil {
		return nil, err
	}

	wavBytes, err := encodeWAVBytes(req.Samples, req.SampleRate)
	if err != nil {
		return nil, err
	}
	if err := s.store.Upload(ctx, wavKey, bytes.NewReader(wavBytes), int64(len(wavBytes)), "audio/wav"); err != nil {
		return nil, err
	}

	s.logger.WithFields(logger.Fields{
		logger.FieldVariantID: req.VariantID,
		logger.FieldSize:      gifSize + len(wavBytes),
	}).Info("captured variant media")

	return &Artifact{
		VideoURL:    s.store.GetURL(gifKey),
		AudioURL:    s.store.GetURL(wavKey),
		FrameCount:  len(req.Frames),
		DurationSec: req.DurationSec,
	}, nil
}

// encodeWAVBytes round-trips through a scratch file because the WAV encoder
// patches the RIFF header via Seek.
func encodeWAVBytes(samples []float64, sampleRate int) ([]byte, error) {
	f, err := os.CreateTemp("", "driftloop-*.wav")
	if err != nil {
		return nil, fmt.Errorf("failed to create scratch wav: %w", err)
	}
	path := f.Name()
	defer os.Remove(path)

	if err := audio.EncodeWAV(f, samples, sampleRate); err != nil {
		f.Close()
		return nil, err
	}
	if err := f.Close(); err != nil {
		return nil, fmt.Errorf("failed to close scratch wav: %w", err)
	}

	data, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		return nil, fmt.Errorf("failed to read scratch wav: %w", err)
	}
	return data, nil
}
