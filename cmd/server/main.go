package main

import (
	"context"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/mlops-lab/churn-predictor/api"
	"github.com/mlops-lab/churn-predictor/internal/events"
	"github.com/mlops-lab/churn-predictor/internal/logger"
	"github.com/mlops-lab/churn-predictor/internal/model"
	"github.com/mlops-lab/churn-predictor/internal/predictor"
	"github.com/mlops-lab/churn-predictor/pkg/config"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	configPath := flag.String("config", "", "path to config file")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}

	logger.Setup(cfg.App.LogLevel, cfg.App.Mode)
	logger.Infof("Starting %s in %s mode", cfg.App.Name, cfg.App.Mode)

	bus := events.NewEventBus(cfg.Events.BufferSize)
	defer bus.Close()
	publisher := events.NewPublisher(bus)

	// Artifact load happens exactly once. On failure the service still comes
	// up, reports unhealthy, and answers predictions with 503 until restart.
	artifacts, err := model.Load(cfg.Model.Dir)
	if err != nil {
		logger.Errorf("Failed to load model artifacts from %s: %v", cfg.Model.Dir, err)
		artifacts = nil
	} else {
		logger.Infof("Model artifacts loaded: %s with %d features", artifacts.ModelType(), artifacts.FeatureCount())
		publisher.ModelLoaded(artifacts.ModelType(), artifacts.FeatureCount())
	}

	svc := predictor.NewService(artifacts, publisher)
	server := api.NewServer(cfg.API, cfg.App, svc, bus, cfg.WebSocket)

	shutdownChan := make(chan os.Signal, 1)
	signal.Notify(shutdownChan, os.Interrupt, syscall.SIGTERM)

	errChan := make(chan error, 1)
	go func() {
		logger.Infof("API server listening on port %d", cfg.API.Port)
		if err := server.Start(); err != nil && err != http.ErrServerClosed {
			errChan <- err
		}
	}()

	select {
	case err := <-errChan:
		return fmt.Errorf("server error: %w", err)
	case sig := <-shutdownChan:
		logger.Infof("Received signal %v, shutting down", sig)
	}

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), cfg.App.ShutdownTimeout)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown error: %w", err)
	}

	logger.Info("Server stopped gracefully")
	return nil
}
