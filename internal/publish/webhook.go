package publish

import (
	"context"
	"fmt"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/nwatkins/driftloop/internal/capture"
	"github.com/nwatkins/driftloop/internal/domain"
)

// WebhookPublisher POSTs the artifact URLs and caption payload to a configured
// endpoint, for wiring the pipeline into a real downstream uploader.
type WebhookPublisher struct {
	client *resty.Client
	url    string
}

// NewWebhookPublisher creates a publisher targeting the given URL.
func NewWebhookPublisher(url string, timeout time.Duration) *WebhookPublisher {
	client := resty.New().
		SetTimeout(timeout).
		SetRetryCount(0) // publish failures are terminal, never retried
	return &WebhookPublisher{client: client, url: url}
}

type webhookBody struct {
	VideoURL string   `json:"video_url"`
	AudioURL string   `json:"audio_url"`
	Caption  string   `json:"caption"`
	Hashtags []string `json:"hashtags"`
	Keywords []string `json:"keywords"`
}

// Publish delivers the payload; any non-2xx response is an error.
func (p *WebhookPublisher) Publish(ctx context.Context, artifact *capture.Artifact, payload *domain.CaptionPayload) (*Confirmation, error) {
	resp, err := p.client.R().
		SetContext(ctx).
		SetBody(webhookBody{
			VideoURL: artifact.VideoURL,
			AudioURL: artifact.AudioURL,
			Caption:  payload.Caption,
			Hashtags: payload.Hashtags,
			Keywords: payload.Keywords,
		}).
		Post(p.url)
	if err != nil {
		return nil, fmt.Errorf("failed to deliver publish webhook: %w", err)
	}
	if resp.IsError() {
		return nil, fmt.Errorf("publish webhook rejected with status %d", resp.StatusCode())
	}

	return &Confirmation{
		Message:     fmt.Sprintf("Accepted by %s (status %d)", p.url, resp.StatusCode()),
		PublishedAt: time.Now().UTC(),
	}, nil
}
