package service

import (
	"errors"
	"fmt"

	"github.com/pageza/promptchef/backend/internal/prompt"
)

var (
	// ErrMissingIngredients is returned when a request carries no ingredients
	ErrMissingIngredients = errors.New("ingredients are required")

	// ErrRunNotFound is returned when no evaluation run has the requested id
	ErrRunNotFound = errors.New("evaluation run not found")
)

// UpstreamError wraps any failure of the upstream model call
type UpstreamError struct {
	Strategy prompt.Strategy
	Err      error
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("upstream generation failed for %s prompt: %v", e.Strategy, e.Err)
}

func (e *UpstreamError) Unwrap() error {
	return e.Err
}
