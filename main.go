package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/nijaru/yt-notes/config"
	"github.com/nijaru/yt-notes/handlers/api"
	"github.com/nijaru/yt-notes/logger"
	"github.com/nijaru/yt-notes/services/notes"
	"github.com/nijaru/yt-notes/services/summary"
	"github.com/nijaru/yt-notes/services/transcript"
	"github.com/nijaru/yt-notes/services/video"
	"github.com/sirupsen/logrus"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		logrus.WithError(err).Fatal("Failed to load configuration")
	}

	log, closer, err := logger.New(logger.Options{
		Dir:   cfg.LogDir,
		Level: cfg.LogLevel,
		JSON:  cfg.IsProduction(),
	})
	if err != nil {
		logrus.WithError(err).Fatal("Failed to initialize logger")
	}
	defer closer.Close()

	if cfg.Debug {
		log.SetLevel(logrus.DebugLevel)
	}

	if cfg.Generation.APIKey == "" {
		log.Warn("GEMINI_API_KEY is not set; notes requests will fail until it is configured")
	}

	ctx := context.Background()
	generator, err := summary.NewGeminiGenerator(ctx, summary.GeminiConfig{
		APIKey:      cfg.Generation.APIKey,
		Model:       cfg.Generation.Model,
		Temperature: cfg.Generation.Temperature,
	})
	if err != nil {
		log.WithError(err).Fatal("Failed to initialize generation client")
	}
	defer generator.Close()

	notesService := notes.NewService(
		video.NewThumbnails(cfg.YouTube.ThumbnailURL),
		transcript.NewService(transcript.Config{
			WatchURL:  cfg.YouTube.WatchURL,
			Languages: cfg.YouTube.TranscriptLangs,
			Timeout:   cfg.YouTube.TranscriptTimeout,
		}),
		summary.NewService(generator, summary.Config{
			Timeout: cfg.Generation.Timeout,
		}),
	)

	server := api.NewServer(cfg,
		api.WithLogger(log),
		api.WithServices(notesService),
	)

	shutdownChan := make(chan os.Signal, 1)
	signal.Notify(shutdownChan, os.Interrupt, syscall.SIGTERM)

	serverErr := make(chan error, 1)
	go func() {
		serverErr <- server.Start()
	}()

	select {
	case err := <-serverErr:
		if err != nil && err != http.ErrServerClosed {
			log.WithError(err).Fatal("Server error")
		}
	case sig := <-shutdownChan:
		log.WithField("signal", sig.String()).Info("Received shutdown signal")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
		defer cancel()

		if err := server.Shutdown(shutdownCtx); err != nil {
			log.WithError(err).Error("Server shutdown error")
		}
	}

	log.Info("Server stopped")
}
