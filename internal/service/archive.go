package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/pageza/promptchef/backend/internal/models"
)

// reportURLExpiry bounds how long a presigned report link stays valid
const reportURLExpiry = 15 * time.Minute

// ObjectStore is the subset of the S3 config the archive needs
type ObjectStore interface {
	PutJSON(ctx context.Context, objectKey string, body []byte) error
	GeneratePresignedURL(ctx context.Context, objectKey string, expiration time.Duration) (string, error)
}

// ReportArchive uploads evaluation runs as JSON documents
type ReportArchive struct {
	store ObjectStore
}

// NewReportArchive creates a new ReportArchive instance
func NewReportArchive(store ObjectStore) *ReportArchive {
	return &ReportArchive{store: store}
}

// ReportKey returns the object key a run is archived under
func ReportKey(run *models.EvaluationRun) string {
	return fmt.Sprintf("evaluations/%s/%s.json", run.CreatedAt.UTC().Format("2006-01-02"), run.ID)
}

// Archive uploads run and returns the object key it was stored under
func (a *ReportArchive) Archive(ctx context.Context, run *models.EvaluationRun) (string, error) {
	body, err := json.MarshalIndent(run, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to marshal evaluation report: %w", err)
	}

	key := ReportKey(run)
	if err := a.store.PutJSON(ctx, key, body); err != nil {
		return "", fmt.Errorf("failed to upload evaluation report: %w", err)
	}
	return key, nil
}

// ReportURL returns a short-lived download link for an archived run
func (a *ReportArchive) ReportURL(ctx context.Context, run *models.EvaluationRun) (string, error) {
	if run.ReportKey == "" {
		return "", errors.New("evaluation run has no archived report")
	}
	return a.store.GeneratePresignedURL(ctx, run.ReportKey, reportURLExpiry)
}
