package service

import (
	"context"
	"log"

	"github.com/pageza/promptchef/backend/internal/prompt"
)

// RecipeService fills a prompt template and relays it to the upstream generator
type RecipeService struct {
	generator Generator
}

// NewRecipeService creates a new RecipeService instance
func NewRecipeService(generator Generator) *RecipeService {
	return &RecipeService{generator: generator}
}

// Generate returns the model's raw text for ingredients under strategy.
// An empty ingredients string yields ErrMissingIngredients without an upstream call;
// any generator failure is returned as *UpstreamError.
func (s *RecipeService) Generate(ctx context.Context, strategy prompt.Strategy, ingredients string) (string, error) {
	if ingredients == "" {
		return "", ErrMissingIngredients
	}

	text, err := prompt.Build(strategy, ingredients)
	if err != nil {
		return "", err
	}

	recipe, err := s.generator.Generate(ctx, text)
	if err != nil {
		log.Printf("[RecipeService] Error generating %s recipe: %v", strategy, err)
		return "", &UpstreamError{Strategy: strategy, Err: err}
	}

	return recipe, nil
}
