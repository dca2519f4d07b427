package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/pageza/promptchef/backend/internal/models"
	"github.com/stretchr/testify/mock"
)

// MockEvaluationService is a mock implementation of the evaluation service
type MockEvaluationService struct {
	mock.Mock
}

// Run mocks the Run method
func (m *MockEvaluationService) Run(ctx context.Context) *models.EvaluationRun {
	args := m.Called(ctx)
	return args.Get(0).(*models.EvaluationRun)
}

// MockHistoryService is a mock implementation of the history service
type MockHistoryService struct {
	mock.Mock
}

// SaveRun mocks the SaveRun method
func (m *MockHistoryService) SaveRun(ctx context.Context, run *models.EvaluationRun) error {
	args := m.Called(ctx, run)
	return args.Error(0)
}

// SetReportKey mocks the SetReportKey method
func (m *MockHistoryService) SetReportKey(ctx context.Context, id uuid.UUID, key string) error {
	args := m.Called(ctx, id, key)
	return args.Error(0)
}

// GetRun mocks the GetRun method
func (m *MockHistoryService) GetRun(ctx context.Context, id uuid.UUID) (*models.EvaluationRun, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.EvaluationRun), args.Error(1)
}

// ListRuns mocks the ListRuns method
func (m *MockHistoryService) ListRuns(ctx context.Context, limit int) ([]*models.EvaluationRun, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.EvaluationRun), args.Error(1)
}

// MockReportArchive is a mock implementation of the report archive
type MockReportArchive struct {
	mock.Mock
}

// Archive mocks the Archive method
func (m *MockReportArchive) Archive(ctx context.Context, run *models.EvaluationRun) (string, error) {
	args := m.Called(ctx, run)
	return args.String(0), args.Error(1)
}

// ReportURL mocks the ReportURL method
func (m *MockReportArchive) ReportURL(ctx context.Context, run *models.EvaluationRun) (string, error) {
	args := m.Called(ctx, run)
	return args.String(0), args.Error(1)
}
