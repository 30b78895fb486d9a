package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"

	"github.com/katakuxiko/santijr/internal/api"
	"github.com/katakuxiko/santijr/internal/config"
	"github.com/katakuxiko/santijr/internal/logx"
	"github.com/katakuxiko/santijr/internal/metrics"
	"github.com/katakuxiko/santijr/internal/service"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Fatal error: %v\n", err)
		os.Exit(1)
	}
}

// run returns nil on SIGINT/SIGTERM without waiting for in-flight requests.
func run() error {
	// config
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	logx.Configure(cfg.LogLevel)
	log := logx.Log

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// provider
	provider, err := newProvider(ctx, cfg)
	if err != nil {
		return err
	}
	defer func() { _ = provider.Close() }()

	// metrics
	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	m := metrics.New(reg)

	// api
	tutor := service.NewTutor(provider, m, log)
	app := api.New(api.Options{
		Tutor:          tutor,
		Logger:         log,
		Metrics:        m,
		Gatherer:       reg,
		AllowedOrigins: cfg.Origins(),
	})

	banner(cfg)

	errCh := make(chan error, 1)
	go func() { errCh <- app.Listen(cfg.Addr()) }()

	select {
	case err := <-errCh:
		return fmt.Errorf("listen on %s: %w", cfg.Addr(), err)
	case <-ctx.Done():
		log.Info().Msg("termination signal received, shutting down")
		return nil
	}
}

// newProvider builds the single provider client shared by all requests.
func newProvider(ctx context.Context, cfg *config.Config) (service.Provider, error) {
	if cfg.APIKey() == "" {
		return service.Unconfigured{}, nil
	}
	switch cfg.Provider {
	case config.ProviderOpenAI:
		return service.NewOpenAIClient(cfg.APIKey(), cfg.OpenAIBaseURL, cfg.Model), nil
	default:
		return service.NewGeminiClient(ctx, cfg.APIKey(), cfg.Model)
	}
}

func banner(cfg *config.Config) {
	log := logx.Log
	base := fmt.Sprintf("http://localhost:%d", cfg.Port)
	line := strings.Repeat("=", 50)

	log.Info().Msg(line)
	log.Info().Msg("Santi.JR Backend Server")
	log.Info().Msg(line)
	log.Info().Int("port", cfg.Port).Str("provider", cfg.Provider).Str("model", cfg.Model).Msg("server running")
	log.Info().Str("url", base+"/health").Msg("health check")
	log.Info().Str("url", base+"/ask").Msg("ai endpoint")
	log.Info().Str("url", base+"/teach").Msg("teach endpoint")
	if cfg.APIKey() == "" {
		log.Warn().Str("var", cfg.APIKeyVar()).Msg("API key not found in environment variables; create a .env file with your API key")
	} else {
		log.Info().Str("var", cfg.APIKeyVar()).Msg("API key loaded")
	}
	log.Info().Msg(line)
}
