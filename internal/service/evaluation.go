package service

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"
	"github.com/pageza/promptchef/backend/internal/models"
	"github.com/pageza/promptchef/backend/internal/prompt"
)

// EvaluationService runs the fixed evaluation cases through generate-then-judge
type EvaluationService struct {
	generator Generator
	model     string
}

// NewEvaluationService creates a new EvaluationService instance
func NewEvaluationService(generator Generator, model string) *EvaluationService {
	return &EvaluationService{
		generator: generator,
		model:     model,
	}
}

// Run evaluates every case in fixture order, one upstream call at a time.
// For each case a candidate recipe is generated with the plain prompt and then
// handed to the judge prompt. A failure in either call only affects its own
// entry, whose verdict becomes models.JudgeErrorPlaceholder.
func (s *EvaluationService) Run(ctx context.Context) *models.EvaluationRun {
	cases := prompt.EvaluationCases()
	run := &models.EvaluationRun{
		ID:        uuid.New(),
		CreatedAt: time.Now().UTC(),
		Model:     s.model,
		Results:   make([]models.EvaluationResult, 0, len(cases)),
	}

	for i, c := range cases {
		result := models.EvaluationResult{
			Position:    i,
			Ingredients: c.Ingredients,
			Expected:    c.ExpectedRecipeName,
		}

		candidate, judge, err := s.evaluate(ctx, c)
		if err != nil {
			log.Printf("[Evaluation] Error evaluating recipe %q: %v", c.ExpectedRecipeName, err)
			result.Judge = models.JudgeErrorPlaceholder
			run.Failed++
		} else {
			result.Recipe = candidate
			result.Judge = judge
		}

		run.Results = append(run.Results, result)
	}

	return run
}

func (s *EvaluationService) evaluate(ctx context.Context, c prompt.Case) (string, string, error) {
	text, err := prompt.Build(prompt.Plain, c.Ingredients)
	if err != nil {
		return "", "", err
	}

	candidate, err := s.generator.Generate(ctx, text)
	if err != nil {
		return "", "", fmt.Errorf("failed to generate candidate: %w", err)
	}

	judge, err := s.generator.Generate(ctx, prompt.Judge(c, candidate))
	if err != nil {
		return "", "", fmt.Errorf("failed to judge candidate: %w", err)
	}

	return candidate, judge, nil
}
