package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/nwatkins/driftloop/internal/api"
	"github.com/nwatkins/driftloop/internal/capture"
	"github.com/nwatkins/driftloop/internal/config"
	"github.com/nwatkins/driftloop/internal/logger"
	"github.com/nwatkins/driftloop/internal/publish"
	"github.com/nwatkins/driftloop/internal/render"
	"github.com/nwatkins/driftloop/internal/repository"
	"github.com/nwatkins/driftloop/internal/service"
	"github.com/nwatkins/driftloop/internal/storage"
)

func main() {
	// Support CONFIG_PATH environment variable for production deployments
	configPath := os.Getenv("CONFIG_PATH")
	cfg, err := config.Load(configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	appLogger := logger.New(&logger.Config{
		Level:       cfg.Log.Level,
		Format:      cfg.Log.Format,
		File:        cfg.Log.File,
		ServiceName: "driftloop-api",
	})
	logger.SetDefault(appLogger)

	db, err := repository.InitDB(&cfg.Database)
	if err != nil {
		appLogger.WithError(err).Fatal("Failed to initialize database")
	}
	runRepo := repository.NewRunRepository(db)

	sink, err := buildSink(cfg, appLogger)
	if err != nil {
		appLogger.WithError(err).Fatal("Failed to initialize capture sink")
	}

	publisher := buildPublisher(cfg)

	renderer := render.New(render.Config{
		Width:       cfg.Render.Width,
		Height:      cfg.Render.Height,
		SuperSample: cfg.Render.SuperSample,
	})

	pipeline := service.NewPipelineService(renderer, sink, publisher, runRepo, appLogger, &service.PipelineConfig{
		FPS:        cfg.Render.FPS,
		SampleRate: cfg.Audio.SampleRate,
	})

	router := api.SetupRouter(pipeline, cfg, appLogger)

	srv := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.Server.Port),
		Handler: router,
	}

	go func() {
		appLogger.WithFields(logger.Fields{
			"port": cfg.Server.Port,
			"mode": cfg.Server.Mode,
		}).Info("Starting API server")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			appLogger.WithError(err).Fatal("Failed to start server")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	appLogger.Info("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		appLogger.WithError(err).Fatal("Server forced to shutdown")
	}

	appLogger.Info("Server exited")
}

// buildSink selects object storage when enabled, otherwise local files.
func buildSink(cfg *config.Config, log *logger.Logger) (capture.Sink, error) {
	if !cfg.Storage.Enabled {
		return capture.NewFileSink(cfg.Storage.OutputDir)
	}

	store, err := storage.NewS3Storage(&storage.S3Config{
		Endpoint:  cfg.Storage.Endpoint,
		AccessKey: cfg.Storage.AccessKey,
		SecretKey: cfg.Storage.SecretKey,
		UseSSL:    cfg.Storage.UseSSL,
		Bucket:    cfg.Storage.Bucket,
		Region:    cfg.Storage.Region,
		PublicURL: cfg.Storage.PublicURL,
	})
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := store.EnsureBucket(ctx); err != nil {
		return nil, err
	}

	return capture.NewObjectStoreSink(store, log), nil
}

func buildPublisher(cfg *config.Config) publish.Publisher {
	if cfg.Publish.Mode == "webhook" && cfg.Publish.WebhookURL != "" {
		return publish.NewWebhookPublisher(
			cfg.Publish.WebhookURL,
			time.Duration(cfg.Publish.TimeoutMS)*time.Millisecond,
		)
	}
	return publish.NewSimulatedPublisher(time.Duration(cfg.Publish.LatencyMS) * time.Millisecond)
}
