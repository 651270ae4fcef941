// ABOUTME: Tests for the domain repositories over a real SQLite backend.
// ABOUTME: Verifies workout lifecycle, active-target exclusivity and rollup recomputation.
package repository

import (
	"errors"
	"testing"

	"github.com/harperreed/fittrack/internal/models"
	"github.com/harperreed/fittrack/internal/sqlite"
	"github.com/harperreed/fittrack/internal/storage"
)

func setupStore(t *testing.T) storage.Store {
	t.Helper()
	s := sqlite.New("fittrack", t.TempDir())
	if err := s.Initialize(); err != nil {
		t.Fatalf("Initialize failed: %v", err)
	}
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func TestStartRefusesSecondActiveWorkout(t *testing.T) {
	store := setupStore(t)
	repo := NewWorkoutRepository(store)

	if _, err := repo.Start("Leg Day", models.WorkoutRegular, ""); err != nil {
		t.Fatalf("Start failed: %v", err)
	}
	if _, err := repo.Start("Push Day", models.WorkoutRegular, ""); !errors.Is(err, ErrWorkoutInProgress) {
		t.Errorf("expected ErrWorkoutInProgress, got %v", err)
	}
}

func TestCompleteComputesPercentageAndAnalytics(t *testing.T) {
	store := setupStore(t)
	repo := NewWorkoutRepository(store)

	routine := models.NewRoutine("Push A")
	if _, err := store.SaveRoutine(routine); err != nil {
		t.Fatalf("SaveRoutine failed: %v", err)
	}

	w, err := repo.Start("Push A", models.WorkoutRegular, routine.ID)
	if err != nil {
		t.Fatalf("Start failed: %v", err)
	}

	w.Exercises = []models.WorkoutExercise{{
		ExerciseID: "bench",
		Name:       "Bench Press",
		Sets: []models.WorkoutSet{
			{Reps: 5, Weight: 100, Completed: true},
			{Reps: 5, Weight: 100, Completed: false},
		},
	}}
	if _, err := store.SaveWorkout(w); err != nil {
		t.Fatalf("SaveWorkout failed: %v", err)
	}

	done, err := repo.Complete(w.ID)
	if err != nil {
		t.Fatalf("Complete failed: %v", err)
	}
	if !done.Completed || done.EndTime == "" {
		t.Errorf("workout not marked complete: %+v", done)
	}
	if done.CompletionPercentage != 50 {
		t.Errorf("completion percentage: got %.1f, want 50", done.CompletionPercentage)
	}

	a, err := store.GetRoutineAnalyticsByRoutine(routine.ID)
	if err != nil {
		t.Fatalf("GetRoutineAnalyticsByRoutine failed: %v", err)
	}
	if a == nil {
		t.Fatal("analytics not created on completion")
	}
	if a.TotalCompletions != 1 {
		t.Errorf("total completions: got %d, want 1", a.TotalCompletions)
	}
	if a.TotalVolume != 500 {
		t.Errorf("total volume: got %.1f, want 500", a.TotalVolume)
	}
	if a.LastCompletedAt != done.EndTime {
		t.Errorf("last completed at: got %s, want %s", a.LastCompletedAt, done.EndTime)
	}
}

func TestCompleteMissingWorkout(t *testing.T) {
	store := setupStore(t)
	repo := NewWorkoutRepository(store)

	if _, err := repo.Complete("no-such-id"); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestEmptyWorkoutCompletesAtHundred(t *testing.T) {
	store := setupStore(t)
	repo := NewWorkoutRepository(store)

	w, err := repo.Start("Quick Stretch", models.WorkoutRegular, "")
	if err != nil {
		t.Fatalf("Start failed: %v", err)
	}
	done, err := repo.Complete(w.ID)
	if err != nil {
		t.Fatalf("Complete failed: %v", err)
	}
	if done.CompletionPercentage != 100 {
		t.Errorf("setless workout percentage: got %.1f, want 100", done.CompletionPercentage)
	}
}

func TestReplaceActiveTargetKeepsOneActive(t *testing.T) {
	store := setupStore(t)
	repo := NewNutritionRepository(store)

	first, err := repo.ReplaceActiveTarget("u1", 2000, 150, 200, 60)
	if err != nil {
		t.Fatalf("ReplaceActiveTarget failed: %v", err)
	}
	second, err := repo.ReplaceActiveTarget("u1", 2200, 160, 220, 70)
	if err != nil {
		t.Fatalf("second ReplaceActiveTarget failed: %v", err)
	}

	targets, err := store.GetNutritionTargets("u1")
	if err != nil {
		t.Fatalf("GetNutritionTargets failed: %v", err)
	}
	if len(targets) != 2 {
		t.Fatalf("expected 2 targets, got %d", len(targets))
	}

	activeCount := 0
	for _, target := range targets {
		if target.IsActive() {
			activeCount++
		}
	}
	if activeCount != 1 {
		t.Errorf("expected exactly 1 active target, got %d", activeCount)
	}

	active, err := store.GetActiveNutritionTarget("u1")
	if err != nil {
		t.Fatalf("GetActiveNutritionTarget failed: %v", err)
	}
	if active.ID != second.ID {
		t.Errorf("active target is %s, want %s", active.ID, second.ID)
	}
	if active.ID == first.ID {
		t.Error("old target still active")
	}
}

func TestLogFoodSnapshotsAndRollsUp(t *testing.T) {
	store := setupStore(t)
	repo := NewNutritionRepository(store)

	f := models.NewFood("Oatmeal")
	f.Calories = 150
	f.Protein = 5
	if _, err := store.SaveFood(f); err != nil {
		t.Fatalf("SaveFood failed: %v", err)
	}

	l, err := repo.LogFood("u1", f.ID, "2026-08-30", "breakfast", 2)
	if err != nil {
		t.Fatalf("LogFood failed: %v", err)
	}
	if l.Calories != 300 || l.Protein != 10 {
		t.Errorf("macros not scaled by servings: %+v", l)
	}

	// Editing the food afterwards must not rewrite the logged snapshot.
	f.Calories = 999
	if _, err := store.SaveFood(f); err != nil {
		t.Fatalf("SaveFood failed: %v", err)
	}
	rollup, err := repo.RecomputeDay("u1", "2026-08-30")
	if err != nil {
		t.Fatalf("RecomputeDay failed: %v", err)
	}
	if rollup.Calories != 300 {
		t.Errorf("rollup used live food instead of snapshot: %.1f", rollup.Calories)
	}
	if rollup.MealsLogged != 1 {
		t.Errorf("meals logged: got %d, want 1", rollup.MealsLogged)
	}
}

func TestDeleteFoodLogRecomputes(t *testing.T) {
	store := setupStore(t)
	repo := NewNutritionRepository(store)

	f := models.NewFood("Rice")
	f.Calories = 200
	if _, err := store.SaveFood(f); err != nil {
		t.Fatalf("SaveFood failed: %v", err)
	}

	l, err := repo.LogFood("u1", f.ID, "2026-08-30", "lunch", 1)
	if err != nil {
		t.Fatalf("LogFood failed: %v", err)
	}
	if err := repo.DeleteFoodLog(l.ID); err != nil {
		t.Fatalf("DeleteFoodLog failed: %v", err)
	}

	rollup, err := store.GetNutritionAnalyticByDate("u1", "2026-08-30")
	if err != nil {
		t.Fatalf("GetNutritionAnalyticByDate failed: %v", err)
	}
	if rollup == nil {
		t.Fatal("rollup removed instead of zeroed")
	}
	if rollup.Calories != 0 || rollup.MealsLogged != 0 {
		t.Errorf("rollup not recomputed after delete: %+v", rollup)
	}
}

func TestLogUnknownFood(t *testing.T) {
	store := setupStore(t)
	repo := NewNutritionRepository(store)

	if _, err := repo.LogFood("u1", "no-such-food", "2026-08-30", "", 1); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestRecordMetricSameDateUpdates(t *testing.T) {
	store := setupStore(t)
	repo := NewBodyRepository(store)

	first, err := repo.RecordMetric("u1", "2026-08-30", 82.5, nil, nil, "")
	if err != nil {
		t.Fatalf("RecordMetric failed: %v", err)
	}

	bodyFat := 18.2
	second, err := repo.RecordMetric("u1", "2026-08-30", 82.1, &bodyFat, nil, "evening")
	if err != nil {
		t.Fatalf("second RecordMetric failed: %v", err)
	}
	if second.ID != first.ID {
		t.Error("same-date record created a second metric")
	}

	all, err := store.GetBodyMetrics("u1")
	if err != nil {
		t.Fatalf("GetBodyMetrics failed: %v", err)
	}
	if len(all) != 1 {
		t.Fatalf("expected 1 metric, got %d", len(all))
	}
	if all[0].WeightKg != 82.1 {
		t.Errorf("weight not updated: %.1f", all[0].WeightKg)
	}
	if all[0].BodyFatPercent == nil || *all[0].BodyFatPercent != 18.2 {
		t.Errorf("body fat not recorded: %+v", all[0].BodyFatPercent)
	}
}

func TestSettingsTypedAccessors(t *testing.T) {
	store := setupStore(t)
	repo := NewSettingsRepository(store)

	units, err := repo.GetString(SettingUnits, "metric")
	if err != nil {
		t.Fatalf("GetString failed: %v", err)
	}
	if units != "metric" {
		t.Errorf("unset key should yield fallback, got %q", units)
	}

	if err := repo.SetString(SettingUnits, "imperial"); err != nil {
		t.Fatalf("SetString failed: %v", err)
	}
	units, err = repo.GetString(SettingUnits, "metric")
	if err != nil {
		t.Fatalf("GetString failed: %v", err)
	}
	if units != "imperial" {
		t.Errorf("value mismatch: got %q, want imperial", units)
	}

	if err := repo.SetBool("notifications", true); err != nil {
		t.Fatalf("SetBool failed: %v", err)
	}
	on, err := repo.GetBool("notifications", false)
	if err != nil {
		t.Fatalf("GetBool failed: %v", err)
	}
	if !on {
		t.Error("boolean setting did not round-trip")
	}

	// A type mismatch falls back rather than erroring.
	got, err := repo.GetFloat(SettingUnits, 42)
	if err != nil {
		t.Fatalf("GetFloat failed: %v", err)
	}
	if got != 42 {
		t.Errorf("type mismatch should yield fallback, got %v", got)
	}
}
