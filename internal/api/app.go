package api

import (
	"github.com/gofiber/fiber/v2"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"

	"github.com/katakuxiko/santijr/internal/metrics"
	"github.com/katakuxiko/santijr/internal/service"
)

// Options configure New.
type Options struct {
	Tutor          *service.Tutor
	Logger         zerolog.Logger
	Metrics        *metrics.Metrics
	Gatherer       prometheus.Gatherer // nil disables GET /metrics
	AllowedOrigins []string
}

// New builds the fiber app with middleware and routes.
func New(opts Options) *fiber.App {
	app := fiber.New(fiber.Config{
		AppName:               "Santi.JR",
		ErrorHandler:          NewErrorHandler(opts.Logger),
		DisableStartupMessage: true,
	})
	origins := opts.AllowedOrigins
	if len(origins) == 0 {
		origins = []string{"*"}
	}
	for _, m := range middlewareChain(opts.Logger, opts.Metrics, origins) {
		app.Use(m)
	}
	RegisterRoutes(app, NewHandler(opts.Tutor, opts.Logger), opts.Gatherer)
	return app
}
