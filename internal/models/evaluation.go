package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// JudgeErrorPlaceholder replaces the verdict of a case whose upstream calls failed
const JudgeErrorPlaceholder = "Error generating evaluation"

// EvaluationRun is one execution of the fixed evaluation suite
type EvaluationRun struct {
	ID        uuid.UUID          `gorm:"type:uuid;primaryKey" json:"id"`
	CreatedAt time.Time          `json:"created_at"`
	Model     string             `gorm:"size:100" json:"model"`
	Failed    int                `gorm:"not null;default:0" json:"failed"`
	ReportKey string             `gorm:"size:255" json:"report_key,omitempty"`
	Results   []EvaluationResult `gorm:"foreignKey:RunID;constraint:OnDelete:CASCADE" json:"results"`
}

// BeforeCreate assigns an id to runs created without one
func (r *EvaluationRun) BeforeCreate(tx *gorm.DB) error {
	if r.ID == uuid.Nil {
		r.ID = uuid.New()
	}
	return nil
}

// EvaluationResult is the outcome of a single evaluation case.
// Judge is the model's raw verdict text, not a parsed boolean.
type EvaluationResult struct {
	ID          uint      `gorm:"primaryKey" json:"-"`
	RunID       uuid.UUID `gorm:"type:uuid;index;not null" json:"-"`
	Position    int       `gorm:"not null" json:"-"`
	Ingredients string    `gorm:"type:text;not null" json:"ingredients"`
	Expected    string    `gorm:"size:255;not null" json:"expected"`
	Judge       string    `gorm:"type:text" json:"judge"`
	Recipe      string    `gorm:"type:text" json:"recipe,omitempty"`
}

