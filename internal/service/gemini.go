package service

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/googleapi"
	"google.golang.org/api/option"

	"github.com/katakuxiko/santijr/internal/model"
)

// GeminiClient talks to the Google Gemini API.
type GeminiClient struct {
	client    *genai.Client
	modelName string
}

// NewGeminiClient creates the process-wide Gemini client.
func NewGeminiClient(ctx context.Context, apiKey, modelName string) (*GeminiClient, error) {
	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("gemini client: %w", err)
	}
	return &GeminiClient{client: client, modelName: modelName}, nil
}

func (g *GeminiClient) model(gen model.GenerationConfig) *genai.GenerativeModel {
	m := g.client.GenerativeModel(g.modelName)
	if gen.Temperature != 0 {
		m.SetTemperature(gen.Temperature)
	}
	if gen.TopP != 0 {
		m.SetTopP(gen.TopP)
	}
	if gen.TopK != 0 {
		m.SetTopK(gen.TopK)
	}
	if gen.MaxOutputTokens != 0 {
		m.SetMaxOutputTokens(gen.MaxOutputTokens)
	}
	return m
}

// Chat starts a fresh chat session seeded with history and sends message.
func (g *GeminiClient) Chat(ctx context.Context, history []model.Turn, message string, gen model.GenerationConfig) (string, error) {
	cs := g.model(gen).StartChat()
	cs.History = make([]*genai.Content, 0, len(history))
	for _, t := range history {
		cs.History = append(cs.History, &genai.Content{
			Role:  t.Role,
			Parts: []genai.Part{genai.Text(t.Text)},
		})
	}
	resp, err := cs.SendMessage(ctx, genai.Text(message))
	if err != nil {
		return "", geminiError(err)
	}
	return geminiText(resp)
}

func (g *GeminiClient) Generate(ctx context.Context, prompt string, gen model.GenerationConfig) (string, error) {
	resp, err := g.model(gen).GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return "", geminiError(err)
	}
	return geminiText(resp)
}

func (g *GeminiClient) Close() error {
	return g.client.Close()
}

// geminiText joins the text parts of the first candidate.
func geminiText(resp *genai.GenerateContentResponse) (string, error) {
	if resp == nil || len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return "", errors.New("gemini returned no candidates")
	}
	var b strings.Builder
	for _, p := range resp.Candidates[0].Content.Parts {
		if t, ok := p.(genai.Text); ok {
			b.WriteString(string(t))
		}
	}
	return b.String(), nil
}

func geminiError(err error) error {
	var gerr *googleapi.Error
	if !errors.As(err, &gerr) {
		return err
	}
	switch gerr.Code {
	case http.StatusTooManyRequests:
		return classify(ErrRateLimited, err)
	case http.StatusUnauthorized, http.StatusForbidden:
		return classify(ErrConfiguration, err)
	}
	for _, item := range gerr.Errors {
		if item.Reason == "API_KEY_INVALID" {
			return classify(ErrConfiguration, err)
		}
	}
	return err
}
