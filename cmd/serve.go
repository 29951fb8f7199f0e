package cmd

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/agrimitra/agrimitra/internal/advisor"
	"github.com/agrimitra/agrimitra/internal/api"
	"github.com/agrimitra/agrimitra/internal/config"
	"github.com/agrimitra/agrimitra/internal/geo"
	"github.com/agrimitra/agrimitra/internal/weather"
)

// Server timeout configuration.
const (
	readHeaderTimeout = 10 * time.Second
	readTimeout       = 30 * time.Second
	writeTimeout      = 2 * time.Minute
	idleTimeout       = 2 * time.Minute
	shutdownTimeout   = 30 * time.Second
)

// runServe initializes and starts the HTTP API server.
func runServe() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	addr, err := serveAddr(cfg.Addr)
	if err != nil {
		return fmt.Errorf("parsing address: %w", err)
	}

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	logger := slog.Default()
	logger.Info("starting HTTP API server", "version", Version)

	adv, err := buildAdvisor(ctx, cfg, logger)
	if err != nil {
		return err
	}

	apiServer, err := api.NewServer(api.ServerConfig{
		Logger:      logger,
		Advisor:     adv,
		Geo:         geo.New(cfg.GeoBaseURL, logger),
		Weather:     weather.New(cfg.WeatherBaseURL, cfg.WeatherAPIKey, logger),
		CORSOrigins: cfg.CORSOrigins,
		TrustProxy:  cfg.TrustProxy,
		RateBurst:   cfg.RateBurst,
	})
	if err != nil {
		return fmt.Errorf("creating API server: %w", err)
	}

	srv := &http.Server{
		Addr:              addr,
		Handler:           apiServer.Handler(),
		ReadHeaderTimeout: readHeaderTimeout,
		ReadTimeout:       readTimeout,
		WriteTimeout:      writeTimeout,
		IdleTimeout:       idleTimeout,
	}

	logger.Info("HTTP server ready",
		"addr", addr,
		"api", "/api/*",
		"health", "/api/health",
		"ai", adv.Configured(),
	)

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		logger.Info("shutting down HTTP server")
		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer shutdownCancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("shutting down server: %w", err)
		}
		<-errCh
		return nil
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("HTTP server: %w", err)
	}
}

// buildAdvisor wires the Gemini generator when an API key is present,
// otherwise the advisor serves deterministic fallbacks.
func buildAdvisor(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*advisor.Advisor, error) {
	if cfg.GeminiAPIKey == "" {
		logger.Info("GEMINI_API_KEY not set, advisor running in fallback mode")
		return advisor.New(nil, logger), nil
	}

	gen, err := advisor.NewGoogleGenerator(ctx, cfg.GeminiAPIKey, cfg.ModelName)
	if err != nil {
		return nil, fmt.Errorf("creating generator: %w", err)
	}
	logger.Info("advisor using Gemini", "model", cfg.ModelName)
	return advisor.New(gen, logger), nil
}
