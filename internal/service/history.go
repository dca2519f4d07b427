package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/pageza/promptchef/backend/internal/models"
	"gorm.io/gorm"
)

const (
	defaultHistoryLimit = 20
	maxHistoryLimit     = 100
)

// HistoryService persists evaluation runs
type HistoryService struct {
	db *gorm.DB
}

// NewHistoryService creates a new HistoryService instance
func NewHistoryService(db *gorm.DB) *HistoryService {
	return &HistoryService{db: db}
}

// SaveRun stores the run together with its results
func (s *HistoryService) SaveRun(ctx context.Context, run *models.EvaluationRun) error {
	if err := s.db.WithContext(ctx).Create(run).Error; err != nil {
		return fmt.Errorf("failed to save evaluation run: %w", err)
	}
	return nil
}

// SetReportKey records where the run's report was archived
func (s *HistoryService) SetReportKey(ctx context.Context, id uuid.UUID, key string) error {
	result := s.db.WithContext(ctx).Model(&models.EvaluationRun{}).Where("id = ?", id).Update("report_key", key)
	if result.Error != nil {
		return fmt.Errorf("failed to update report key: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrRunNotFound
	}
	return nil
}

// GetRun loads a run and its results in case order
func (s *HistoryService) GetRun(ctx context.Context, id uuid.UUID) (*models.EvaluationRun, error) {
	var run models.EvaluationRun
	err := s.db.WithContext(ctx).
		Preload("Results", func(db *gorm.DB) *gorm.DB { return db.Order("position ASC") }).
		First(&run, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRunNotFound
		}
		return nil, fmt.Errorf("failed to get evaluation run: %w", err)
	}
	return &run, nil
}

// ListRuns returns the most recent runs, newest first.
// limit is clamped to [1, 100]; zero or negative means the default of 20.
func (s *HistoryService) ListRuns(ctx context.Context, limit int) ([]*models.EvaluationRun, error) {
	if limit <= 0 {
		limit = defaultHistoryLimit
	}
	if limit > maxHistoryLimit {
		limit = maxHistoryLimit
	}

	var runs []*models.EvaluationRun
	err := s.db.WithContext(ctx).
		Preload("Results", func(db *gorm.DB) *gorm.DB { return db.Order("position ASC") }).
		Order("created_at DESC").
		Limit(limit).
		Find(&runs).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list evaluation runs: %w", err)
	}
	return runs, nil
}
