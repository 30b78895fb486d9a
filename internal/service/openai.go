package service

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/sashabaranov/go-openai"

	"github.com/katakuxiko/santijr/internal/model"
)

// OpenAIClient talks to OpenAI or any OpenAI-compatible server
// (LM Studio, vLLM, Ollama).
type OpenAIClient struct {
	client    *openai.Client
	modelName string
}

// NewOpenAIClient creates a client for baseURL using apiKey.
func NewOpenAIClient(apiKey, baseURL, modelName string) *OpenAIClient {
	oaiCfg := openai.DefaultConfig(apiKey)
	if baseURL != "" {
		oaiCfg.BaseURL = baseURL
	}
	return &OpenAIClient{
		client:    openai.NewClientWithConfig(oaiCfg),
		modelName: modelName,
	}
}

func (o *OpenAIClient) Chat(ctx context.Context, history []model.Turn, message string, gen model.GenerationConfig) (string, error) {
	msgs := make([]openai.ChatCompletionMessage, 0, len(history)+1)
	for _, t := range history {
		role := openai.ChatMessageRoleUser
		if t.Role == model.RoleModel {
			role = openai.ChatMessageRoleAssistant
		}
		msgs = append(msgs, openai.ChatCompletionMessage{Role: role, Content: t.Text})
	}
	msgs = append(msgs, openai.ChatCompletionMessage{Role: openai.ChatMessageRoleUser, Content: message})
	return o.complete(ctx, msgs, gen)
}

func (o *OpenAIClient) Generate(ctx context.Context, prompt string, gen model.GenerationConfig) (string, error) {
	return o.complete(ctx, []openai.ChatCompletionMessage{
		{Role: openai.ChatMessageRoleUser, Content: prompt},
	}, gen)
}

func (o *OpenAIClient) Close() error { return nil }

// complete sends one chat completion. TopK has no OpenAI equivalent and is
// dropped.
func (o *OpenAIClient) complete(ctx context.Context, msgs []openai.ChatCompletionMessage, gen model.GenerationConfig) (string, error) {
	resp, err := o.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:       o.modelName,
		Messages:    msgs,
		Temperature: gen.Temperature,
		TopP:        gen.TopP,
		MaxTokens:   int(gen.MaxOutputTokens),
	})
	if err != nil {
		return "", openAIError(err)
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("openai returned no choices")
	}
	return strings.TrimSpace(resp.Choices[0].Message.Content), nil
}

func openAIError(err error) error {
	status := 0
	var apiErr *openai.APIError
	var reqErr *openai.RequestError
	switch {
	case errors.As(err, &apiErr):
		status = apiErr.HTTPStatusCode
	case errors.As(err, &reqErr):
		status = reqErr.HTTPStatusCode
	}
	switch status {
	case http.StatusTooManyRequests:
		return classify(ErrRateLimited, err)
	case http.StatusUnauthorized, http.StatusForbidden:
		return classify(ErrConfiguration, err)
	}
	return err
}
