package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/nwatkins/driftloop/internal/audio"
	"github.com/nwatkins/driftloop/internal/capture"
	"github.com/nwatkins/driftloop/internal/logger"
	"github.com/nwatkins/driftloop/internal/publish"
	"github.com/nwatkins/driftloop/internal/render"
	"github.com/nwatkins/driftloop/internal/service"
)

// render runs one generation pipeline locally and writes the three variants'
// media into an output directory. No database, no object storage.
func main() {
	var (
		prompt  = flag.String("prompt", "", "natural-language prompt (required)")
		outDir  = flag.String("out", "./out", "output directory for GIF/WAV artifacts")
		width   = flag.Int("width", render.DefaultWidth, "frame width in pixels")
		height  = flag.Int("height", render.DefaultHeight, "frame height in pixels")
		fps     = flag.Int("fps", 30, "frames per second")
		ss      = flag.Int("supersample", 2, "supersampling factor")
		rate    = flag.Int("rate", audio.DefaultSampleRate, "audio sample rate")
		latency = flag.Duration("publish-latency", 300*time.Millisecond, "simulated publish latency")
		verbose = flag.Bool("v", false, "debug logging")
	)
	flag.Parse()

	if *prompt == "" {
		flag.Usage()
		os.Exit(2)
	}

	level := "info"
	if *verbose {
		level = "debug"
	}
	appLogger := logger.New(&logger.Config{
		Level:       level,
		Format:      "text",
		ServiceName: "driftloop-render",
	})
	logger.SetDefault(appLogger)

	sink, err := capture.NewFileSink(*outDir)
	if err != nil {
		log.Fatalf("Failed to prepare output directory: %v", err)
	}

	renderer := render.New(render.Config{
		Width:       *width,
		Height:      *height,
		SuperSample: *ss,
	})

	pipeline := service.NewPipelineService(
		renderer,
		sink,
		publish.NewSimulatedPublisher(*latency),
		nil, // no persistence for the CLI
		appLogger,
		&service.PipelineConfig{FPS: *fps, SampleRate: *rate},
	)

	result, err := pipeline.Run(context.Background(), *prompt)
	if err != nil {
		appLogger.WithError(err).Fatal("Pipeline run failed")
	}

	fmt.Printf("\nTrigger: %s (%s)\n", result.Interpretation.Trigger.Label, result.Interpretation.Trigger.ID)
	fmt.Printf("Seed:    %d\n\n", result.Interpretation.Seed)
	for _, vr := range result.Variants {
		switch vr.Status {
		case "ready":
			fmt.Printf("  [%.2f] %-14s %s\n", vr.Score, vr.Blueprint.ID, vr.Artifact.VideoURL)
		default:
			fmt.Printf("  [----] %-14s failed: %s\n", vr.Blueprint.ID, vr.Error)
		}
	}
	fmt.Printf("\nWinner:  %s — %s\n", result.Winner.Blueprint.ID, result.Winner.LoopNote)
	fmt.Printf("Caption: %s\n", result.Caption.Caption)
	for _, tag := range result.Caption.Hashtags {
		fmt.Printf("  %s", tag)
	}
	fmt.Printf("\n%s\n", result.Confirmation.Message)
}
