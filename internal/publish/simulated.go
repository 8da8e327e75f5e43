package publish

import (
	"context"
	"fmt"
	"time"

	"github.com/nwatkins/driftloop/internal/capture"
	"github.com/nwatkins/driftloop/internal/domain"
)

// SimulatedPublisher fakes an upload with a fixed latency. It still honors
// context cancellation so a dying run doesn't hang on the sleep.
type SimulatedPublisher struct {
	latency time.Duration
}

// NewSimulatedPublisher creates a publisher with the given simulated latency.
func NewSimulatedPublisher(latency time.Duration) *SimulatedPublisher {
	return &SimulatedPublisher{latency: latency}
}

// Publish waits out the simulated latency and resolves with a confirmation.
func (p *SimulatedPublisher) Publish(ctx context.Context, artifact *capture.Artifact, payload *domain.CaptionPayload) (*Confirmation, error) {
	timer := time.NewTimer(p.latency)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case <-timer.C:
	}

	return &Confirmation{
		Message:     fmt.Sprintf("Published %q with %d keywords", artifact.VideoURL, len(payload.Keywords)),
		PublishedAt: time.Now().UTC(),
	}, nil
}
