// ABOUTME: BodyMetric and QuestionnaireResponse models.
// ABOUTME: Dated per-user records; questionnaire answers are a structured field.
package models

import (
	"time"

	"github.com/google/uuid"
)

// BodyMetric is a dated body measurement for a user.
type BodyMetric struct {
	ID             string   `json:"id"`
	UserID         string   `json:"userId"`
	Date           string   `json:"date"` // YYYY-MM-DD
	WeightKg       float64  `json:"weightKg"`
	BodyFatPercent *float64 `json:"bodyFatPercent,omitempty"`
	MuscleMassKg   *float64 `json:"muscleMassKg,omitempty"`
	Notes          string   `json:"notes,omitempty"`
	CreatedAt      string   `json:"createdAt"`
	UpdatedAt      string   `json:"updatedAt"`
}

// NewBodyMetric creates a body metric for the given user and date.
func NewBodyMetric(userID, date string) *BodyMetric {
	now := time.Now().UTC().Format(time.RFC3339)
	return &BodyMetric{
		ID:        uuid.New().String(),
		UserID:    userID,
		Date:      date,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// QuestionnaireResponse stores a user's onboarding questionnaire answers.
// Answers is a structured field keyed by question id.
type QuestionnaireResponse struct {
	ID          string            `json:"id"`
	UserID      string            `json:"userId"`
	Answers     map[string]string `json:"answers"`
	CompletedAt string            `json:"completedAt,omitempty"`
	CreatedAt   string            `json:"createdAt"`
	UpdatedAt   string            `json:"updatedAt"`
}
