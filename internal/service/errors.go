package service

import "errors"

var (
	// ErrEmptyPrompt rejects blank input before any state is produced.
	ErrEmptyPrompt = errors.New("prompt is empty")

	// ErrCaptureUnsupported means no capture sink is available; the run
	// aborts before generation starts.
	ErrCaptureUnsupported = errors.New("capture sink unavailable")

	// ErrAllVariantsFailed escalates when every variant's render/capture
	// cycle failed.
	ErrAllVariantsFailed = errors.New("all variants failed to render")
)
