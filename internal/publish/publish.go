// Package publish hands a finished artifact plus its caption payload to the
// outside world. The pipeline treats publishing as terminal: no retries, a
// failure here fails the whole run.
package publish

import (
	"context"
	"time"

	"github.com/nwatkins/driftloop/internal/capture"
	"github.com/nwatkins/driftloop/internal/domain"
)

// Confirmation is what a successful publish resolves to.
type Confirmation struct {
	Message     string    `json:"message"`
	PublishedAt time.Time `json:"published_at"`
}

// Publisher accepts the winning artifact and its caption payload.
type Publisher interface {
	Publish(ctx context.Context, artifact *capture.Artifact, payload *domain.CaptionPayload) (*Confirmation, error)
}
