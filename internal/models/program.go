// ABOUTME: WorkoutProgram and RoutineAnalytics models.
// ABOUTME: Programs bundle routines; analytics are derived counters recomputed on completion.
package models

import (
	"time"

	"github.com/google/uuid"
)

// WorkoutProgram is an ordered bundle of routines. IsEnabled toggles
// visibility without deleting the program.
type WorkoutProgram struct {
	ID         string    `json:"id"`
	Name       string    `json:"name"`
	TemplateID string    `json:"templateId,omitempty"`
	Workouts   []Routine `json:"workouts"`
	IsEnabled  bool      `json:"isEnabled"`
	CreatedAt  string    `json:"createdAt"`
	UpdatedAt  string    `json:"updatedAt"`
}

// NewWorkoutProgram creates an enabled program with a generated id.
func NewWorkoutProgram(name string) *WorkoutProgram {
	now := time.Now().UTC().Format(time.RFC3339)
	return &WorkoutProgram{
		ID:        uuid.New().String(),
		Name:      name,
		Workouts:  []Routine{},
		IsEnabled: true,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// RoutineAnalytics caches aggregated counters for one routine. Derived
// data: recomputed from workout history whenever a workout completes.
type RoutineAnalytics struct {
	ID                 string  `json:"id"`
	RoutineID          string  `json:"routineId"`
	TotalCompletions   int     `json:"totalCompletions"`
	CompletionRate     float64 `json:"completionRate"`
	AvgDurationMinutes float64 `json:"avgDurationMinutes"`
	TotalVolume        float64 `json:"totalVolume"`
	BestVolume         float64 `json:"bestVolume"`
	LastCompletedAt    string  `json:"lastCompletedAt,omitempty"`
	CreatedAt          string  `json:"createdAt"`
	UpdatedAt          string  `json:"updatedAt"`
}

// NewRoutineAnalytics creates an empty analytics record for a routine.
func NewRoutineAnalytics(routineID string) *RoutineAnalytics {
	now := time.Now().UTC().Format(time.RFC3339)
	return &RoutineAnalytics{
		ID:        uuid.New().String(),
		RoutineID: routineID,
		CreatedAt: now,
		UpdatedAt: now,
	}
}
