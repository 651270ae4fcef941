// ABOUTME: Platform-neutral storage contract for all fittrack entities.
// ABOUTME: Both the sqlite and docstore backends implement Store with identical semantics.
package storage

import (
	"encoding/json"

	"github.com/harperreed/fittrack/internal/models"
)

// Store is the complete storage contract. Domain repositories depend on
// this interface only; the backend behind it is chosen once at startup.
//
// Contract rules, identical across backends:
//   - Every "get by key" lookup returns (nil, nil) when nothing matches.
//   - Save is an upsert keyed by primary key; it never fails for "not found".
//   - Name search is case-insensitive substring match.
//   - BulkInsert has insert-or-ignore semantics: existing primary keys are
//     left untouched, never duplicated, never overwritten.
//   - Clear removes all rows for one entity family only.
type Store interface {
	// Initialize opens the underlying engine, runs DDL and migrations.
	// Safe to call on every launch.
	Initialize() error
	// Close releases the underlying engine connection.
	Close() error
	// DeleteDatabase destroys all stored data and re-initializes a fresh
	// database. Administrative; not safe concurrent with other traffic.
	DeleteDatabase() error

	WorkoutStore
	RoutineStore
	ProgramStore
	RoutineAnalyticsStore
	ExerciseLibraryStore
	FoodStore
	FoodLogStore
	NutritionStore
	BodyStore
	SettingsStore
}

// WorkoutStore persists training sessions.
type WorkoutStore interface {
	GetWorkouts() ([]*models.Workout, error)
	GetWorkout(id string) (*models.Workout, error)
	SaveWorkout(w *models.Workout) (string, error)
	DeleteWorkout(id string) error
	// GetActiveWorkout returns the single workout with no end time and
	// completed=false, or nil when no session is in progress.
	GetActiveWorkout() (*models.Workout, error)
	GetWorkoutsByDateRange(start, end string) ([]*models.Workout, error)
}

// RoutineStore persists workout templates.
type RoutineStore interface {
	GetRoutines() ([]*models.Routine, error)
	GetRoutine(id string) (*models.Routine, error)
	SaveRoutine(r *models.Routine) (string, error)
	DeleteRoutine(id string) error
	GetFavoriteRoutines() ([]*models.Routine, error)
}

// ProgramStore persists workout programs.
type ProgramStore interface {
	GetPrograms() ([]*models.WorkoutProgram, error)
	GetProgram(id string) (*models.WorkoutProgram, error)
	SaveProgram(p *models.WorkoutProgram) (string, error)
	DeleteProgram(id string) error
	GetProgramsByTemplate(templateID string) ([]*models.WorkoutProgram, error)
}

// RoutineAnalyticsStore persists derived per-routine counters.
type RoutineAnalyticsStore interface {
	GetRoutineAnalytics() ([]*models.RoutineAnalytics, error)
	GetRoutineAnalyticsByRoutine(routineID string) (*models.RoutineAnalytics, error)
	SaveRoutineAnalytics(a *models.RoutineAnalytics) (string, error)
	DeleteRoutineAnalytics(id string) error
}

// ExerciseLibraryStore persists bulk-loaded reference data: exercises,
// body parts, equipment and muscles.
type ExerciseLibraryStore interface {
	GetExercises() ([]*models.Exercise, error)
	GetExercise(exerciseID string) (*models.Exercise, error)
	SaveExercise(e *models.Exercise) (string, error)
	SearchExercisesByName(query string) ([]*models.Exercise, error)
	BulkInsertExercises(list []models.Exercise) error
	ClearExercises() error

	GetBodyParts() ([]*models.BodyPart, error)
	BulkInsertBodyParts(list []models.BodyPart) error
	ClearBodyParts() error

	GetEquipment() ([]*models.Equipment, error)
	BulkInsertEquipment(list []models.Equipment) error
	ClearEquipment() error

	GetMuscles() ([]*models.Muscle, error)
	BulkInsertMuscles(list []models.Muscle) error
	ClearMuscles() error
}

// FoodStore persists the food library.
type FoodStore interface {
	GetFoods() ([]*models.Food, error)
	GetFood(id string) (*models.Food, error)
	SaveFood(f *models.Food) (string, error)
	DeleteFood(id string) error
	SearchFoodsByName(query string) ([]*models.Food, error)
	BulkInsertFoods(list []models.Food) error
	ClearFoods() error
}

// FoodLogStore persists dated consumption entries.
type FoodLogStore interface {
	GetFoodLogs() ([]*models.FoodLog, error)
	GetFoodLog(id string) (*models.FoodLog, error)
	SaveFoodLog(l *models.FoodLog) (string, error)
	DeleteFoodLog(id string) error
	GetFoodLogsByDate(date string) ([]*models.FoodLog, error)
	GetFoodLogsByDateRange(start, end string) ([]*models.FoodLog, error)
}

// NutritionStore persists targets, daily analytics and coaching settings.
type NutritionStore interface {
	GetNutritionTargets(userID string) ([]*models.NutritionTarget, error)
	GetNutritionTarget(id string) (*models.NutritionTarget, error)
	// GetActiveNutritionTarget returns the user's target with an empty end
	// date, or nil when none is active.
	GetActiveNutritionTarget(userID string) (*models.NutritionTarget, error)
	SaveNutritionTarget(t *models.NutritionTarget) (string, error)
	DeleteNutritionTarget(id string) error

	GetNutritionAnalytics(userID string) ([]*models.NutritionAnalytic, error)
	GetNutritionAnalyticByDate(userID, date string) (*models.NutritionAnalytic, error)
	SaveNutritionAnalytic(a *models.NutritionAnalytic) (string, error)
	DeleteNutritionAnalytic(id string) error

	GetCoachingSetting(userID string) (*models.CoachingSetting, error)
	SaveCoachingSetting(s *models.CoachingSetting) (string, error)
	DeleteCoachingSetting(id string) error
}

// BodyStore persists body measurements and questionnaire responses.
type BodyStore interface {
	GetBodyMetrics(userID string) ([]*models.BodyMetric, error)
	GetBodyMetric(id string) (*models.BodyMetric, error)
	GetBodyMetricsByDateRange(userID, start, end string) ([]*models.BodyMetric, error)
	SaveBodyMetric(m *models.BodyMetric) (string, error)
	DeleteBodyMetric(id string) error

	GetQuestionnaireResponses(userID string) ([]*models.QuestionnaireResponse, error)
	GetQuestionnaireResponse(id string) (*models.QuestionnaireResponse, error)
	SaveQuestionnaireResponse(q *models.QuestionnaireResponse) (string, error)
	DeleteQuestionnaireResponse(id string) error
}

// SettingsStore is the generic key to opaque-JSON-value surface. Values
// round-trip byte-for-byte without interpretation.
type SettingsStore interface {
	GetSetting(key string) (json.RawMessage, error)
	SetSetting(key string, value json.RawMessage) error
	DeleteSetting(key string) error
	GetAllSettings() ([]*models.AppSetting, error)
}
