package service

import (
	"context"
	"errors"

	"github.com/katakuxiko/santijr/internal/model"
)

// Provider is the generative-language backend: text in, text out.
type Provider interface {
	// Chat sends message after the given history and returns the reply.
	Chat(ctx context.Context, history []model.Turn, message string, gen model.GenerationConfig) (string, error)
	// Generate runs a single prompt with no history.
	Generate(ctx context.Context, prompt string, gen model.GenerationConfig) (string, error)
	Close() error
}

var errNoAPIKey = errors.New("API key is not configured")

// Unconfigured stands in for a provider whose credential is missing, so the
// server can still start and report the problem per request.
type Unconfigured struct{}

func (Unconfigured) Chat(context.Context, []model.Turn, string, model.GenerationConfig) (string, error) {
	return "", classify(ErrConfiguration, errNoAPIKey)
}

func (Unconfigured) Generate(context.Context, string, model.GenerationConfig) (string, error) {
	return "", classify(ErrConfiguration, errNoAPIKey)
}

func (Unconfigured) Close() error { return nil }
