package types

import "github.com/pageza/promptchef/backend/internal/models"

// Fixed error messages returned to clients
const (
	ErrMsgIngredientsRequired = "Ingredients are required"
	ErrMsgInternal            = "Internal server error"
)

// RecipeRequest is the body accepted by every generation endpoint
type RecipeRequest struct {
	Ingredients string `json:"ingredients" binding:"required"`
}

// RecipeResponse carries the model's text verbatim
type RecipeResponse struct {
	Recipe string `json:"recipe"`
}

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error string `json:"error"`
}

// EvaluateResponse is returned by the evaluation endpoint
type EvaluateResponse struct {
	EvaluationResults []models.EvaluationResult `json:"evaluationResults"`
}

// EvaluationListResponse wraps a page of stored runs
type EvaluationListResponse struct {
	Evaluations []*models.EvaluationRun `json:"evaluations"`
}

// EvaluationDetailResponse wraps a single stored run
type EvaluationDetailResponse struct {
	Evaluation *models.EvaluationRun `json:"evaluation"`
}
