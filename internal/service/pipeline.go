// Package service orchestrates the full prompt → winner pipeline: interpret,
// generate three blueprints, sequentially render/capture each (failures stay
// per-variant), score, caption the winner, and publish.
package service

import (
	"context"
	"fmt"
	"image"
	"math"
	"strings"
	"time"

	"github.com/google/uuid"
	gocache "github.com/patrickmn/go-cache"

	"github.com/nwatkins/driftloop/internal/audio"
	"github.com/nwatkins/driftloop/internal/blueprint"
	"github.com/nwatkins/driftloop/internal/caption"
	"github.com/nwatkins/driftloop/internal/capture"
	"github.com/nwatkins/driftloop/internal/domain"
	"github.com/nwatkins/driftloop/internal/interpret"
	"github.com/nwatkins/driftloop/internal/logger"
	"github.com/nwatkins/driftloop/internal/loopscore"
	"github.com/nwatkins/driftloop/internal/publish"
	"github.com/nwatkins/driftloop/internal/render"
	"github.com/nwatkins/driftloop/internal/repository"
)

// PipelineConfig holds the capture-facing knobs of a run.
type PipelineConfig struct {
	FPS        int
	SampleRate int
}

// VariantResult is the per-variant outcome handed to the display layer.
type VariantResult struct {
	Blueprint *domain.VariantBlueprint `json:"blueprint"`
	Status    domain.VariantStatus     `json:"status"`
	Score     float64                  `json:"score"`
	LoopNote  string                   `json:"loop_note"`
	Artifact  *capture.Artifact        `json:"artifact,omitempty"`
	Error     string                   `json:"error,omitempty"`
}

// RunResult is the full outcome of one pipeline execution.
type RunResult struct {
	RunID          string                 `json:"run_id"`
	Interpretation *domain.Interpretation `json:"interpretation"`
	Variants       []*VariantResult       `json:"variants"`
	Winner         *VariantResult         `json:"winner,omitempty"`
	Caption        *domain.CaptionPayload `json:"caption,omitempty"`
	Confirmation   *publish.Confirmation  `json:"confirmation,omitempty"`
}

// PipelineService ties the pure core to the capture and publish collaborators.
// The repository is optional: with a nil repo the pipeline runs without
// persistence (the render CLI does this).
type PipelineService struct {
	renderer  *render.Renderer
	sink      capture.Sink
	publisher publish.Publisher
	runs      *repository.RunRepository
	logger    *logger.Logger
	interps   *gocache.Cache
	fps       int
	rate      int
}

// NewPipelineService wires the pipeline together.
func NewPipelineService(
	renderer *render.Renderer,
	sink capture.Sink,
	publisher publish.Publisher,
	runs *repository.RunRepository,
	log *logger.Logger,
	cfg *PipelineConfig,
) *PipelineService {
	fps, rate := 30, audio.DefaultSampleRate
	if cfg != nil {
		if cfg.FPS > 0 {
			fps = cfg.FPS
		}
		if cfg.SampleRate > 0 {
			rate = cfg.SampleRate
		}
	}
	return &PipelineService{
		renderer:  renderer,
		sink:      sink,
		publisher: publisher,
		runs:      runs,
		logger:    log,
		interps:   gocache.New(10*time.Minute, 15*time.Minute),
		fps:       fps,
		rate:      rate,
	}
}

// log returns the context logger; the service's own logger is seeded into
// the context by the entry points.
func (s *PipelineService) log(ctx context.Context) *logger.Logger {
	return logger.FromContext(ctx)
}

// runContext derives a context carrying the service logger tagged with the
// run's identity.
func (s *PipelineService) runContext(ctx context.Context, run *domain.LoopRun, interp *domain.Interpretation) context.Context {
	base := s.logger
	if base == nil {
		base = logger.GetDefault()
	}
	return logger.WithContext(ctx, base.WithFields(logger.Fields{
		logger.FieldRunID:   run.ID,
		logger.FieldTrigger: interp.Trigger.ID,
	}))
}

// Interpret memoizes interpretations per cleaned prompt. Interpretation is
// pure, so cached entries are safe to share.
func (s *PipelineService) Interpret(prompt string) *domain.Interpretation {
	key := strings.ToLower(strings.TrimSpace(prompt))
	if cached, ok := s.interps.Get(key); ok {
		return cached.(*domain.Interpretation)
	}
	interp := interpret.Interpret(prompt)
	s.interps.Set(key, interp, gocache.DefaultExpiration)
	return interp
}

// StartRun validates the prompt, records a pending run, and executes the
// pipeline in the background. The returned run carries the ID the display
// layer polls.
func (s *PipelineService) StartRun(ctx context.Context, prompt string) (*domain.LoopRun, error) {
	if strings.TrimSpace(prompt) == "" {
		return nil, ErrEmptyPrompt
	}
	if s.sink == nil {
		return nil, ErrCaptureUnsupported
	}

	interp := s.Interpret(prompt)
	run := &domain.LoopRun{
		ID:        uuid.New().String(),
		Prompt:    interp.Prompt,
		TriggerID: interp.Trigger.ID,
		Vibe:      interp.Vibe,
		Seed:      int64(interp.Seed),
		Status:    domain.RunStatusPending,
	}
	if s.runs != nil {
		if err := s.runs.CreateRun(ctx, run); err != nil {
			return nil, fmt.Errorf("failed to record run: %w", err)
		}
	}

	go func() {
		bg := s.runContext(context.Background(), run, interp)
		if _, err := s.execute(bg, run, interp); err != nil {
			s.log(bg).WithError(err).Error("pipeline run failed")
		}
	}()

	return run, nil
}

// Run executes the pipeline synchronously and returns the full result.
func (s *PipelineService) Run(ctx context.Context, prompt string) (*RunResult, error) {
	if strings.TrimSpace(prompt) == "" {
		return nil, ErrEmptyPrompt
	}
	if s.sink == nil {
		return nil, ErrCaptureUnsupported
	}

	interp := s.Interpret(prompt)
	run := &domain.LoopRun{
		ID:        uuid.New().String(),
		Prompt:    interp.Prompt,
		TriggerID: interp.Trigger.ID,
		Vibe:      interp.Vibe,
		Seed:      int64(interp.Seed),
		Status:    domain.RunStatusPending,
	}
	if s.runs != nil {
		if err := s.runs.CreateRun(ctx, run); err != nil {
			return nil, fmt.Errorf("failed to record run: %w", err)
		}
	}
	return s.execute(s.runContext(ctx, run, interp), run, interp)
}

// execute drives the generation, the sequential per-variant render/capture
// cycles, winner selection, captioning, and publish.
func (s *PipelineService) execute(ctx context.Context, run *domain.LoopRun, interp *domain.Interpretation) (*RunResult, error) {
	log := s.log(ctx)
	started := time.Now()

	run.Status = domain.RunStatusRunning
	s.saveRun(ctx, run)

	blueprints := blueprint.Generate(interp)

	result := &RunResult{
		RunID:          run.ID,
		Interpretation: interp,
		Variants:       make([]*VariantResult, 0, len(blueprints)),
	}

	// One variant's full cycle completes (or fails) before the next starts;
	// a failure is recorded and the siblings still run.
	for _, bp := range blueprints {
		result.Variants = append(result.Variants, s.captureVariant(ctx, run, bp))
	}

	for _, vr := range result.Variants {
		if vr.Status != domain.VariantStatusReady {
			continue
		}
		if result.Winner == nil || vr.Score > result.Winner.Score {
			result.Winner = vr
		}
	}
	if result.Winner == nil {
		return s.failRun(ctx, run, result, ErrAllVariantsFailed)
	}

	result.Caption = caption.Build(interp, result.Winner.Blueprint)

	confirmation, err := s.publisher.Publish(ctx, result.Winner.Artifact, result.Caption)
	if err != nil {
		return s.failRun(ctx, run, result, fmt.Errorf("publish failed: %w", err))
	}
	result.Confirmation = confirmation

	run.Status = domain.RunStatusCompleted
	run.WinnerID = result.Winner.Blueprint.ID
	run.Caption = result.Caption.Caption
	run.Hashtags = domain.StringArray(result.Caption.Hashtags)
	run.Keywords = domain.StringArray(result.Caption.Keywords)
	run.Confirmation = confirmation.Message
	run.PublishedAt = &confirmation.PublishedAt
	s.saveRun(ctx, run)

	log.WithFields(logger.Fields{
		logger.FieldDurationMs: time.Since(started).Milliseconds(),
		"winner":               result.Winner.Blueprint.ID,
		"score":                result.Winner.Score,
	}).Info("pipeline run completed")

	return result, nil
}

// captureVariant runs one blueprint's render/capture cycle and records its
// status transitions. Errors are folded into the result, never returned.
func (s *PipelineService) captureVariant(ctx context.Context, run *domain.LoopRun, bp *domain.VariantBlueprint) *VariantResult {
	log := s.log(ctx).WithField(logger.FieldVariantID, bp.ID)

	vr := &VariantResult{Blueprint: bp, Status: domain.VariantStatusRendering}
	record := &domain.LoopVariant{
		ID:          uuid.New().String(),
		RunID:       run.ID,
		VariantID:   bp.ID,
		Title:       bp.Title,
		NoiseColor:  string(bp.Audio.NoiseColor),
		DurationSec: bp.DurationSec,
		Status:      domain.VariantStatusRendering,
	}
	s.createVariant(ctx, record)

	frames := s.renderFrames(bp)
	samples := audio.Synthesize(bp.Audio, bp.DurationSec, s.rate)

	artifact, err := s.sink.Capture(ctx, &capture.Request{
		VariantID:   bp.ID,
		Frames:      frames,
		FPS:         s.fps,
		Samples:     samples,
		SampleRate:  s.rate,
		DurationSec: bp.DurationSec,
	})
	if err != nil {
		log.WithError(err).Warn("variant capture failed")
		vr.Status = domain.VariantStatusFailed
		vr.Error = err.Error()
		record.Status = domain.VariantStatusFailed
		record.Error = err.Error()
		s.saveVariant(ctx, record)
		return vr
	}

	vr.Status = domain.VariantStatusReady
	vr.Artifact = artifact
	vr.Score = loopscore.Score(bp)
	vr.LoopNote = loopscore.Describe(bp)

	record.Status = domain.VariantStatusReady
	record.Score = vr.Score
	record.LoopNote = vr.LoopNote
	record.VideoURL = artifact.VideoURL
	record.AudioURL = artifact.AudioURL
	s.saveVariant(ctx, record)

	log.WithFields(logger.Fields{
		"score":  vr.Score,
		"frames": artifact.FrameCount,
	}).Info("variant ready")

	return vr
}

// renderFrames evaluates the renderer over a fixed phase grid covering one
// loop period.
func (s *PipelineService) renderFrames(bp *domain.VariantBlueprint) []*image.RGBA {
	count := int(math.Ceil(float64(s.fps) * bp.DurationSec))
	if count < 1 {
		count = 1
	}
	frames := make([]*image.RGBA, count)
	for i := 0; i < count; i++ {
		frames[i] = s.renderer.RenderFrame(bp, float64(i)/float64(count))
	}
	return frames
}

func (s *PipelineService) failRun(ctx context.Context, run *domain.LoopRun, result *RunResult, err error) (*RunResult, error) {
	run.Status = domain.RunStatusFailed
	run.Error = err.Error()
	s.saveRun(ctx, run)
	return result, err
}

func (s *PipelineService) saveRun(ctx context.Context, run *domain.LoopRun) {
	if s.runs == nil {
		return
	}
	if err := s.runs.SaveRun(ctx, run); err != nil {
		s.log(ctx).WithError(err).Error("failed to persist run")
	}
}

func (s *PipelineService) createVariant(ctx context.Context, v *domain.LoopVariant) {
	if s.runs == nil {
		return
	}
	if err := s.runs.CreateVariant(ctx, v); err != nil {
		s.log(ctx).WithError(err).Error("failed to persist variant")
	}
}

func (s *PipelineService) saveVariant(ctx context.Context, v *domain.LoopVariant) {
	if s.runs == nil {
		return
	}
	if err := s.runs.SaveVariant(ctx, v); err != nil {
		s.log(ctx).WithError(err).Error("failed to persist variant")
	}
}

// Renderer exposes the frame renderer for live preview streaming.
func (s *PipelineService) Renderer() *render.Renderer {
	return s.renderer
}

// FPS returns the configured capture frame rate.
func (s *PipelineService) FPS() int {
	return s.fps
}

// GetRun exposes a stored run to the API layer.
func (s *PipelineService) GetRun(ctx context.Context, id string) (*domain.LoopRun, error) {
	if s.runs == nil {
		return nil, fmt.Errorf("run persistence not configured")
	}
	return s.runs.GetRun(ctx, id)
}

// ListRuns exposes recent runs to the API layer.
func (s *PipelineService) ListRuns(ctx context.Context, limit int) ([]domain.LoopRun, error) {
	if s.runs == nil {
		return nil, fmt.Errorf("run persistence not configured")
	}
	return s.runs.ListRecent(ctx, limit)
}
