package main

import (
	"context"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/spf13/cobra"

	httpapi "github.com/i474232898/ims-api/internal/api/http"
	"github.com/i474232898/ims-api/internal/config"
	"github.com/i474232898/ims-api/internal/logger"
	"github.com/i474232898/ims-api/internal/metrics"
	"github.com/i474232898/ims-api/internal/weather"
	"github.com/i474232898/ims-api/internal/weather/providers"
)

const shutdownTimeout = 10 * time.Second

func newServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP server",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(cmd.Context())
		},
	}
}

func runServe(ctx context.Context) error {
	if ctx == nil {
		ctx = context.Background()
	}

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	if err := logger.Configure(cfg.LogLevel, cfg.LogFormat); err != nil {
		return err
	}

	// Shared HTTP client for outbound provider calls.
	httpClient := &http.Client{
		Timeout: cfg.HTTPTimeout,
	}
	provider := providers.NewIMSProvider(httpClient, cfg.IMSBaseURL)

	m := metrics.New()
	service := weather.NewService(provider, cfg.DefaultLanguage, m)

	logger.WithFields(logger.Fields{
		"provider":         provider.Name(),
		"base_url":         cfg.IMSBaseURL,
		"default_language": service.DefaultLanguage(),
		"timeout":          cfg.HTTPTimeout.String(),
	}).Info("weather provider configured")

	app := httpapi.NewApp(service, httpapi.Options{
		CORSAllowOrigins: cfg.CORSAllowOrigins,
		AccessLog:        true,
		Metrics:          m,
	})

	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	return serve(ctx, app, ":"+cfg.Port)
}

// serve runs app on addr until ctx is done or the listener fails.
func serve(ctx context.Context, app *fiber.App, addr string) error {
	errCh := make(chan error, 1)
	go func() {
		logger.Info(fmt.Sprintf("Starting ims-api at %s", addr))
		errCh <- app.Listen(addr)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("fiber server stopped: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	logger.Info("Shutting down server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		return fmt.Errorf("error during shutdown: %w", err)
	}
	return nil
}
