// Package app wires one notifier deployment: config, logging, email sender,
// optional event mirror, and the HTTP server lifecycle. The two binaries
// differ only in the Notifier they build.
package app

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/sirupsen/logrus"

	"dbhook-notifier/internal/config"
	"dbhook-notifier/internal/email"
	"dbhook-notifier/internal/mirror"
	"dbhook-notifier/internal/server"
)

// Run starts one notifier and blocks until shutdown. build receives the
// loaded config so composers can pick up the admin recipient.
func Run(build func(cfg *config.Config) server.Notifier) {
	// Setup logger
	logger := logrus.New()
	logger.SetFormatter(&logrus.TextFormatter{
		FullTimestamp: true,
	})
	logger.SetLevel(logrus.InfoLevel)

	// Load configuration
	configPath := "config.yaml"
	if len(os.Args) > 1 {
		configPath = os.Args[1]
	}

	cfg, err := config.Load(configPath)
	if err != nil {
		logger.Fatalf("Failed to load config: %v", err)
	}
	if err := cfg.Validate(); err != nil {
		logger.Fatalf("Invalid config: %v", err)
	}

	// Set log level from config
	if level, err := logrus.ParseLevel(cfg.Logging.Level); err == nil {
		logger.SetLevel(level)
	}

	notifier := build(cfg)

	logger.Infof("Starting %s notifier...", notifier.Name)

	// Optional event mirror
	var mir *mirror.Publisher
	if cfg.Mirror.URL != "" {
		mir, err = mirror.NewPublisher(
			cfg.Mirror.URL,
			cfg.Mirror.Subject,
			cfg.Mirror.MaxReconnect,
			cfg.Mirror.ReconnectWait,
			logger,
		)
		if err != nil {
			logger.Fatalf("Failed to create event mirror: %v", err)
		}
		defer mir.Close()
	}

	sender := email.NewResend(
		cfg.Email.Endpoint,
		cfg.Email.APIKey,
		cfg.Email.From,
		cfg.Email.SendTimeout,
		logger,
	)

	webhook := server.NewWebhook(notifier, sender, mir, logger)

	srv := &http.Server{
		Addr:    cfg.Server.Addr,
		Handler: webhook.Handler(cfg.Server.WebhookSecret),
	}

	// Start serving in goroutine
	errChan := make(chan error, 1)
	go func() {
		errChan <- srv.ListenAndServe()
	}()

	logger.Infof("Listening on %s", cfg.Server.Addr)

	// Setup graceful shutdown
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	// Wait for signal or error
	select {
	case sig := <-sigChan:
		logger.Infof("Received signal: %v, shutting down...", sig)
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := srv.Shutdown(ctx); err != nil {
			logger.Errorf("Shutdown error: %v", err)
		}
	case err := <-errChan:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatalf("Server error: %v", err)
		}
	}

	logger.Infof("%s notifier stopped", notifier.Name)
}
