// ABOUTME: Routine model: a reusable workout template without performed-set data.
// ABOUTME: Routines are either user-created (custom) or derived from a bundled template.
package models

import (
	"time"

	"github.com/google/uuid"
)

// RoutineType distinguishes user-created routines from bundled templates.
type RoutineType string

const (
	RoutineCustom   RoutineType = "custom"
	RoutineTemplate RoutineType = "template"
)

// Routine is the template shape of a workout: exercises with target sets,
// but no completed-set data.
type Routine struct {
	ID                       string            `json:"id"`
	Name                     string            `json:"name"`
	Exercises                []RoutineExercise `json:"exercises"`
	Type                     RoutineType       `json:"type"`
	TemplateID               string            `json:"templateId,omitempty"`
	IsFavorite               bool              `json:"isFavorite"`
	Difficulty               string            `json:"difficulty,omitempty"`
	EstimatedDurationMinutes int               `json:"estimatedDuration,omitempty"`
	CreatedAt                string            `json:"createdAt"`
	UpdatedAt                string            `json:"updatedAt"`
}

// RoutineExercise is one exercise slot in a routine.
type RoutineExercise struct {
	ExerciseID  string       `json:"exerciseId"`
	Name        string       `json:"name"`
	Sets        []RoutineSet `json:"sets"`
	RestSeconds int          `json:"restSeconds,omitempty"`
	Notes       string       `json:"notes,omitempty"`
}

// RoutineSet is a target set prescription.
type RoutineSet struct {
	TargetReps   int     `json:"targetReps"`
	TargetWeight float64 `json:"targetWeight,omitempty"`
}

// NewRoutine creates a custom routine with a generated id and current timestamps.
func NewRoutine(name string) *Routine {
	now := time.Now().UTC().Format(time.RFC3339)
	return &Routine{
		ID:        uuid.New().String(),
		Name:      name,
		Exercises: []RoutineExercise{},
		Type:      RoutineCustom,
		CreatedAt: now,
		UpdatedAt: now,
	}
}
