package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/katakuxiko/santijr/internal/metrics"
	"github.com/katakuxiko/santijr/internal/model"
	"github.com/katakuxiko/santijr/internal/util"
)

const (
	primingInstruction = `You are Santi.JR, an AI educational assistant. Your role is to:
1. Provide clear, concise, and accurate educational explanations
2. Break down complex topics into understandable parts
3. Suggest learning resources when appropriate
4. Encourage further learning
5. Be patient and supportive

Keep responses focused and educational. If asked about a topic, provide a brief overview and key learning points.`

	primingAcknowledgment = "I understand. I am Santi.JR, your educational assistant. I will provide clear, helpful explanations and guide your learning journey."

	teachTemplate = `As an educational assistant, provide a comprehensive but concise learning guide for "%s". Include:
1. Brief overview (2-3 sentences)
2. Key concepts (3-5 main points)
3. Practical applications or examples
4. Recommended learning resources (Wikipedia, Khan Academy, YouTube channels, online courses)

Keep the response structured, clear, and under 500 words.`
)

// AskParams are the sampling parameters of every ask call.
var AskParams = model.GenerationConfig{
	Temperature:     0.7,
	TopP:            0.8,
	TopK:            40,
	MaxOutputTokens: 2048,
}

// PrimingContext returns the two turns sent before every ask message.
// A new slice is built per call so callers never share it.
func PrimingContext() []model.Turn {
	return []model.Turn{
		{Role: model.RoleUser, Text: primingInstruction},
		{Role: model.RoleModel, Text: primingAcknowledgment},
	}
}

// TeachPrompt embeds topic into the learning-guide template.
func TeachPrompt(topic string) string {
	return fmt.Sprintf(teachTemplate, topic)
}

// Tutor relays ask and teach requests to a Provider. It holds no state of its
// own and is safe for concurrent use if the provider is.
type Tutor struct {
	provider Provider
	metrics  *metrics.Metrics
	log      zerolog.Logger
}

func NewTutor(p Provider, m *metrics.Metrics, log zerolog.Logger) *Tutor {
	return &Tutor{provider: p, metrics: m, log: log}
}

// Ask validates message, then sends it after the priming context. Provider
// failures come back wrapped in ErrConfiguration, ErrRateLimited or
// ErrInternal.
func (t *Tutor) Ask(ctx context.Context, message string) (string, error) {
	if err := model.Validate(model.AskRequest{Message: message}); err != nil {
		if errors.Is(err, model.ErrTooLong) {
			return "", ErrMessageTooLong
		}
		return "", ErrInvalidRequest
	}
	t.log.Info().Str("message", util.Preview(message, 100)).Msg("received message")

	start := time.Now()
	text, err := t.provider.Chat(ctx, PrimingContext(), message, AskParams)
	if err != nil {
		err = ClassifyProviderError(err)
		t.metrics.ObserveProvider("ask", outcome(err), time.Since(start))
		return "", err
	}
	t.metrics.ObserveProvider("ask", metrics.OutcomeOK, time.Since(start))
	t.log.Info().Msg("ask response generated")
	return text, nil
}

// Teach builds the learning-guide prompt for topic and generates it with the
// provider defaults. Every provider failure is ErrInternal.
func (t *Tutor) Teach(ctx context.Context, topic string) (string, error) {
	if err := model.Validate(model.TeachRequest{Topic: topic}); err != nil {
		return "", ErrInvalidRequest
	}
	t.log.Info().Str("topic", topic).Msg("teaching request")

	start := time.Now()
	text, err := t.provider.Generate(ctx, TeachPrompt(topic), model.GenerationConfig{})
	if err != nil {
		t.metrics.ObserveProvider("teach", metrics.OutcomeError, time.Since(start))
		return "", classify(ErrInternal, err)
	}
	t.metrics.ObserveProvider("teach", metrics.OutcomeOK, time.Since(start))
	t.log.Info().Str("topic", topic).Msg("teaching content generated")
	return text, nil
}

func outcome(err error) string {
	switch {
	case errors.Is(err, ErrRateLimited):
		return metrics.OutcomeRateLimited
	case errors.Is(err, ErrConfiguration):
		return metrics.OutcomeConfiguration
	}
	return metrics.OutcomeError
}
