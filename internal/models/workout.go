// ABOUTME: Workout model and its structured sub-records (exercises, sets, intervals, cardio).
// ABOUTME: A workout with no end time and completed=false is the single active workout.
package models

import (
	"time"

	"github.com/google/uuid"
)

// WorkoutType distinguishes the four tracked session kinds.
type WorkoutType string

const (
	WorkoutRegular      WorkoutType = "regular"
	WorkoutInterval     WorkoutType = "interval"
	WorkoutCardioGPS    WorkoutType = "cardio-gps"
	WorkoutCardioManual WorkoutType = "cardio-manual"
)

// Workout represents a single training session.
// Exercises, IntervalConfig, IntervalProgress and CardioData are structured
// fields: stored natively by the document backend and as JSON text by the
// relational backend.
type Workout struct {
	ID                   string            `json:"id"`
	Name                 string            `json:"name"`
	Type                 WorkoutType       `json:"type"`
	Exercises            []WorkoutExercise `json:"exercises"`
	IntervalConfig       *IntervalConfig   `json:"intervalConfig,omitempty"`
	IntervalProgress     *IntervalProgress `json:"intervalProgress,omitempty"`
	CardioData           *CardioData       `json:"cardioData,omitempty"`
	StartTime            string            `json:"startTime"`
	EndTime              string            `json:"endTime,omitempty"`
	Completed            bool              `json:"completed"`
	CompletionPercentage float64           `json:"completionPercentage"`
	RoutineID            string            `json:"routineId,omitempty"`
	ProgramID            string            `json:"programId,omitempty"`
	CreatedAt            string            `json:"createdAt"`
	UpdatedAt            string            `json:"updatedAt"`
}

// WorkoutExercise is one exercise performed within a workout.
type WorkoutExercise struct {
	ExerciseID  string       `json:"exerciseId"`
	Name        string       `json:"name"`
	Sets        []WorkoutSet `json:"sets"`
	RestSeconds int          `json:"restSeconds,omitempty"`
	Notes       string       `json:"notes,omitempty"`
}

// WorkoutSet is a single performed set.
type WorkoutSet struct {
	Reps            int     `json:"reps"`
	Weight          float64 `json:"weight"`
	DurationSeconds int     `json:"durationSeconds,omitempty"`
	DistanceMeters  float64 `json:"distanceMeters,omitempty"`
	Completed       bool    `json:"completed"`
}

// IntervalConfig describes a timed interval session.
type IntervalConfig struct {
	Rounds      int      `json:"rounds"`
	WorkSeconds int      `json:"workSeconds"`
	RestSeconds int      `json:"restSeconds"`
	Exercises   []string `json:"exercises,omitempty"`
}

// IntervalProgress tracks where an in-flight interval session stands.
type IntervalProgress struct {
	CurrentRound   int    `json:"currentRound"`
	CurrentPhase   string `json:"currentPhase"`
	ElapsedSeconds int    `json:"elapsedSeconds"`
}

// CardioData holds distance/pace data for cardio sessions, with an
// optional GPS route for tracked outdoor sessions.
type CardioData struct {
	DistanceMeters   float64    `json:"distanceMeters"`
	DurationSeconds  int        `json:"durationSeconds"`
	PaceSecondsPerKm float64    `json:"paceSecondsPerKm,omitempty"`
	Calories         float64    `json:"calories,omitempty"`
	Route            []GPSPoint `json:"route,omitempty"`
}

// GPSPoint is one recorded route sample.
type GPSPoint struct {
	Lat       float64 `json:"lat"`
	Lng       float64 `json:"lng"`
	Altitude  float64 `json:"altitude,omitempty"`
	Timestamp string  `json:"timestamp"`
}

// NewWorkout creates a workout with a generated id and current timestamps.
// The workout starts active: no end time, not completed.
func NewWorkout(name string, workoutType WorkoutType) *Workout {
	now := time.Now().UTC().Format(time.RFC3339)
	return &Workout{
		ID:        uuid.New().String(),
		Name:      name,
		Type:      workoutType,
		Exercises: []WorkoutExercise{},
		StartTime: now,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// IsActive reports whether the workout is the in-progress session.
func (w *Workout) IsActive() bool {
	return w.EndTime == "" && !w.Completed
}
