package service

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/google/generative-ai-go/genai"
	"github.com/stretchr/testify/require"
	"google.golang.org/api/googleapi"
)

func TestGeminiText(t *testing.T) {
	t.Run("should join the text parts of the first candidate", func(t *testing.T) {
		req := require.New(t)
		resp := &genai.GenerateContentResponse{
			Candidates: []*genai.Candidate{
				{Content: &genai.Content{Role: "model", Parts: []genai.Part{genai.Text("Hello, "), genai.Text("world")}}},
				{Content: &genai.Content{Role: "model", Parts: []genai.Part{genai.Text("ignored")}}},
			},
		}

		text, err := geminiText(resp)

		req.NoError(err)
		req.Equal("Hello, world", text)
	})

	t.Run("should fail without candidates", func(t *testing.T) {
		req := require.New(t)

		_, err := geminiText(&genai.GenerateContentResponse{})
		req.Error(err)

		_, err = geminiText(nil)
		req.Error(err)
	})
}

func TestGeminiError(t *testing.T) {
	cases := []struct {
		name string
		err  error
		want error
	}{
		{"too many requests", &googleapi.Error{Code: http.StatusTooManyRequests, Message: "Resource has been exhausted"}, ErrRateLimited},
		{"forbidden", &googleapi.Error{Code: http.StatusForbidden, Message: "permission denied"}, ErrConfiguration},
		{"invalid key reason", &googleapi.Error{Code: http.StatusBadRequest, Errors: []googleapi.ErrorItem{{Reason: "API_KEY_INVALID"}}}, ErrConfiguration},
		{"wrapped", fmt.Errorf("send: %w", &googleapi.Error{Code: http.StatusTooManyRequests}), ErrRateLimited},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			require.ErrorIs(t, geminiError(tc.err), tc.want)
		})
	}

	t.Run("should pass through unstructured errors", func(t *testing.T) {
		req := require.New(t)
		plain := errors.New("boom")
		req.Same(plain, geminiError(plain))

		server := &googleapi.Error{Code: http.StatusInternalServerError}
		req.Equal(error(server), geminiError(server))
	})
}
