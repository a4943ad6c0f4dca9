// Package main provides the entry point for the match odds API server.
package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"syscall"

	"github.com/yourusername/match-odds/internal/config"
	"github.com/yourusername/match-odds/internal/logger"
	"github.com/yourusername/match-odds/internal/metrics"
	"github.com/yourusername/match-odds/internal/server"
)

// Build information - set via ldflags
var (
	Version = "dev"
)

func main() {
	configPath := flag.String("config", "config/config.yaml", "Path to config file")
	flag.Parse()

	cfg, err := config.LoadWithDefaults(*configPath)
	if err != nil {
		os.Stderr.WriteString("Failed to load config: " + err.Error() + "\n")
		os.Exit(1)
	}
	if err := config.Validate(cfg); err != nil {
		os.Stderr.WriteString("Invalid configuration: " + err.Error() + "\n")
		os.Exit(1)
	}

	log := logger.NewLogger(cfg.App.LogLevel, cfg.App.Environment)
	metrics.InitRegistry()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	srv := server.NewServer(cfg, log, Version)
	if err := srv.Start(ctx); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}

	log.WithField("version", Version).Info("Match odds service started")

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)
	<-sig

	log.Info("Shutdown signal received")
	cancel()

	if err := srv.Shutdown(); err != nil {
		log.WithError(err).Error("Server shutdown error")
	}
	log.Info("Match odds service stopped")
}
