package service

import (
	"context"

	"github.com/google/uuid"
	"github.com/pageza/promptchef/backend/internal/models"
	"github.com/pageza/promptchef/backend/internal/prompt"
)

// Generator sends a single text prompt to the upstream model and returns its reply verbatim
type Generator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

// IRecipeService defines the interface for prompt-strategy recipe generation
type IRecipeService interface {
	Generate(ctx context.Context, strategy prompt.Strategy, ingredients string) (string, error)
}

// IEvaluationService defines the interface for running the fixed evaluation suite
type IEvaluationService interface {
	Run(ctx context.Context) *models.EvaluationRun
}

// IHistoryService defines the interface for persisted evaluation runs
type IHistoryService interface {
	SaveRun(ctx context.Context, run *models.EvaluationRun) error
	SetReportKey(ctx context.Context, id uuid.UUID, key string) error
	GetRun(ctx context.Context, id uuid.UUID) (*models.EvaluationRun, error)
	ListRuns(ctx context.Context, limit int) ([]*models.EvaluationRun, error)
}

// IReportArchive defines the interface for uploading evaluation reports
type IReportArchive interface {
	Archive(ctx context.Context, run *models.EvaluationRun) (string, error)
	ReportURL(ctx context.Context, run *models.EvaluationRun) (string, error)
}
