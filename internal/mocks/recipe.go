package mocks

import (
	"context"

	"github.com/pageza/promptchef/backend/internal/prompt"
	"github.com/stretchr/testify/mock"
)

// MockGenerator is a mock implementation of the upstream generator
type MockGenerator struct {
	mock.Mock
}

// Generate mocks the Generate method
func (m *MockGenerator) Generate(ctx context.Context, prompt string) (string, error) {
	args := m.Called(ctx, prompt)
	return args.String(0), args.Error(1)
}

// MockRecipeService is a mock implementation of the recipe service
type MockRecipeService struct {
	mock.Mock
}

// Generate mocks the Generate method
func (m *MockRecipeService) Generate(ctx context.Context, strategy prompt.Strategy, ingredients string) (string, error) {
	args := m.Called(ctx, strategy, ingredients)
	return args.String(0), args.Error(1)
}
