package service

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/katakuxiko/santijr/internal/model"
)

type mockProvider struct {
	mock.Mock
}

func (m *mockProvider) Chat(ctx context.Context, history []model.Turn, message string, gen model.GenerationConfig) (string, error) {
	args := m.Called(ctx, history, message, gen)
	return args.String(0), args.Error(1)
}

func (m *mockProvider) Generate(ctx context.Context, prompt string, gen model.GenerationConfig) (string, error) {
	args := m.Called(ctx, prompt, gen)
	return args.String(0), args.Error(1)
}

func (m *mockProvider) Close() error { return nil }
