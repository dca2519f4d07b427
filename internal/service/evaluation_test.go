package service

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/pageza/promptchef/backend/internal/mocks"
	"github.com/pageza/promptchef/backend/internal/models"
	"github.com/pageza/promptchef/backend/internal/prompt"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func isJudgePrompt(p string) bool {
	return strings.Contains(p, "You are a food expert")
}

func candidatePrompt(ingredients string) interface{} {
	return mock.MatchedBy(func(p string) bool {
		return !isJudgePrompt(p) && strings.Contains(p, ingredients)
	})
}

func judgePrompt(ingredients string) interface{} {
	return mock.MatchedBy(func(p string) bool {
		return isJudgePrompt(p) && strings.Contains(p, ingredients)
	})
}

func TestEvaluationService_Run(t *testing.T) {
	ctx := context.Background()
	gen := new(mocks.MockGenerator)

	gen.On("Generate", ctx, mock.MatchedBy(func(p string) bool { return !isJudgePrompt(p) })).
		Return("candidate recipe", nil)
	gen.On("Generate", ctx, mock.MatchedBy(func(p string) bool {
		return isJudgePrompt(p) && strings.Contains(p, "candidate recipe")
	})).Return("YES. Uses only the given ingredients.", nil)

	svc := NewEvaluationService(gen, "gemini-2.5-flash")
	run := svc.Run(ctx)

	require.NotNil(t, run)
	assert.NotEqual(t, uuid.Nil, run.ID)
	assert.Equal(t, "gemini-2.5-flash", run.Model)
	assert.Zero(t, run.Failed)

	cases := prompt.EvaluationCases()
	require.Len(t, run.Results, len(cases))
	for i, c := range cases {
		assert.Equal(t, i, run.Results[i].Position)
		assert.Equal(t, c.Ingredients, run.Results[i].Ingredients)
		assert.Equal(t, c.ExpectedRecipeName, run.Results[i].Expected)
		assert.Equal(t, "YES. Uses only the given ingredients.", run.Results[i].Judge)
		assert.Equal(t, "candidate recipe", run.Results[i].Recipe)
	}
	gen.AssertNumberOfCalls(t, "Generate", 2*len(cases))
}

func TestEvaluationService_RunIsolatesFailures(t *testing.T) {
	ctx := context.Background()
	gen := new(mocks.MockGenerator)

	// candidate generation fails for the fries case, judging fails for the milkshake case
	gen.On("Generate", ctx, candidatePrompt("Potato, Salt, Oil")).Return("", errors.New("503 from upstream"))
	gen.On("Generate", ctx, judgePrompt("Milk, Sugar, Mango")).Return("", errors.New("timeout"))
	gen.On("Generate", ctx, mock.MatchedBy(func(p string) bool { return !isJudgePrompt(p) })).Return("candidate recipe", nil)
	gen.On("Generate", ctx, mock.MatchedBy(isJudgePrompt)).Return("NO. Wrong dish.", nil)

	svc := NewEvaluationService(gen, "gemini-2.5-flash")
	run := svc.Run(ctx)

	require.Len(t, run.Results, 5)
	assert.Equal(t, 2, run.Failed)

	assert.Equal(t, "NO. Wrong dish.", run.Results[0].Judge)
	assert.Equal(t, "NO. Wrong dish.", run.Results[1].Judge)
	assert.Equal(t, models.JudgeErrorPlaceholder, run.Results[2].Judge)
	assert.Empty(t, run.Results[2].Recipe)
	assert.Equal(t, "NO. Wrong dish.", run.Results[3].Judge)
	assert.Equal(t, models.JudgeErrorPlaceholder, run.Results[4].Judge)
	assert.Empty(t, run.Results[4].Recipe)

	assert.Equal(t, "Crispy Salted Fries", run.Results[2].Expected)
	assert.Equal(t, "Mango Milkshake", run.Results[4].Expected)
}
