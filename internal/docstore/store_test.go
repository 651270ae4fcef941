// ABOUTME: Tests for the BadgerDB document storage backend.
// ABOUTME: Verifies contract parity with the relational backend: upserts, filters, bulk loads.
package docstore

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/harperreed/fittrack/internal/models"
	"github.com/harperreed/fittrack/internal/storage"
)

func setupStore(t *testing.T) *Store {
	t.Helper()
	s := New(t.TempDir())
	if err := s.Initialize(); err != nil {
		t.Fatalf("Initialize failed: %v", err)
	}
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func TestNotInitialized(t *testing.T) {
	s := New(t.TempDir())
	if _, err := s.GetWorkouts(); !errors.Is(err, storage.ErrNotInitialized) {
		t.Errorf("expected ErrNotInitialized, got %v", err)
	}
}

func TestSchemaVersionPersists(t *testing.T) {
	dir := t.TempDir()

	s := New(dir)
	if err := s.Initialize(); err != nil {
		t.Fatalf("Initialize failed: %v", err)
	}
	version, err := s.schemaVersion()
	if err != nil {
		t.Fatalf("schemaVersion failed: %v", err)
	}
	if version != storage.CurrentStoreVersion() {
		t.Errorf("version mismatch: got %d, want %d", version, storage.CurrentStoreVersion())
	}
	if err := s.Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}

	// Reopening an up-to-date store applies nothing and keeps the version.
	s2 := New(dir)
	if err := s2.Initialize(); err != nil {
		t.Fatalf("re-Initialize failed: %v", err)
	}
	t.Cleanup(func() { _ = s2.Close() })

	version, err = s2.schemaVersion()
	if err != nil {
		t.Fatalf("schemaVersion failed: %v", err)
	}
	if version != storage.CurrentStoreVersion() {
		t.Errorf("version changed on reopen: got %d", version)
	}

	stores, err := s2.registeredStores()
	if err != nil {
		t.Fatalf("registeredStores failed: %v", err)
	}
	want := 0
	for _, v := range storage.StoreVersions() {
		want += len(v.Stores)
	}
	if len(stores) != want {
		t.Errorf("manifest has %d stores, want %d", len(stores), want)
	}
}

func TestSaveAndGetWorkout(t *testing.T) {
	s := setupStore(t)

	w := models.NewWorkout("Intervals", models.WorkoutInterval)
	w.IntervalConfig = &models.IntervalConfig{Rounds: 8, WorkSeconds: 20, RestSeconds: 10}
	w.Exercises = []models.WorkoutExercise{{
		ExerciseID: "burpee",
		Name:       "Burpee",
		Sets:       []models.WorkoutSet{{Reps: 10, Completed: true}},
	}}

	if _, err := s.SaveWorkout(w); err != nil {
		t.Fatalf("SaveWorkout failed: %v", err)
	}

	got, err := s.GetWorkout(w.ID)
	if err != nil {
		t.Fatalf("GetWorkout failed: %v", err)
	}
	if got == nil {
		t.Fatal("GetWorkout returned nil for existing workout")
	}
	if got.IntervalConfig == nil || got.IntervalConfig.Rounds != 8 {
		t.Errorf("interval config did not round-trip: %+v", got.IntervalConfig)
	}
	if len(got.Exercises) != 1 || !got.Exercises[0].Sets[0].Completed {
		t.Errorf("exercises did not round-trip: %+v", got.Exercises)
	}
}

func TestGetWorkoutNotFound(t *testing.T) {
	s := setupStore(t)

	got, err := s.GetWorkout("no-such-id")
	if err != nil {
		t.Fatalf("GetWorkout failed: %v", err)
	}
	if got != nil {
		t.Errorf("expected nil for missing workout, got %+v", got)
	}
}

func TestSaveWorkoutUpsert(t *testing.T) {
	s := setupStore(t)

	w := models.NewWorkout("Push A", models.WorkoutRegular)
	if _, err := s.SaveWorkout(w); err != nil {
		t.Fatalf("SaveWorkout failed: %v", err)
	}
	w.Name = "Push A (deload)"
	if _, err := s.SaveWorkout(w); err != nil {
		t.Fatalf("second SaveWorkout failed: %v", err)
	}

	all, err := s.GetWorkouts()
	if err != nil {
		t.Fatalf("GetWorkouts failed: %v", err)
	}
	if len(all) != 1 {
		t.Fatalf("upsert created a duplicate: %d documents", len(all))
	}
	if all[0].Name != "Push A (deload)" {
		t.Errorf("update not applied: got %q", all[0].Name)
	}
}

func TestActiveWorkoutLifecycle(t *testing.T) {
	s := setupStore(t)

	w := models.NewWorkout("Morning Run", models.WorkoutCardioManual)
	if _, err := s.SaveWorkout(w); err != nil {
		t.Fatalf("SaveWorkout failed: %v", err)
	}

	active, err := s.GetActiveWorkout()
	if err != nil {
		t.Fatalf("GetActiveWorkout failed: %v", err)
	}
	if active == nil || active.ID != w.ID {
		t.Fatalf("expected active workout %s, got %+v", w.ID, active)
	}

	w.EndTime = "2026-08-30T08:00:00Z"
	w.Completed = true
	if _, err := s.SaveWorkout(w); err != nil {
		t.Fatalf("SaveWorkout failed: %v", err)
	}

	active, err = s.GetActiveWorkout()
	if err != nil {
		t.Fatalf("GetActiveWorkout failed: %v", err)
	}
	if active != nil {
		t.Errorf("completed workout still reported active: %+v", active)
	}
}

func TestWorkoutsByDateRange(t *testing.T) {
	s := setupStore(t)

	in := models.NewWorkout("In Range", models.WorkoutRegular)
	in.StartTime = "2026-08-10T09:00:00Z"
	out := models.NewWorkout("Out of Range", models.WorkoutRegular)
	out.StartTime = "2026-07-01T09:00:00Z"
	for _, w := range []*models.Workout{in, out} {
		if _, err := s.SaveWorkout(w); err != nil {
			t.Fatalf("SaveWorkout failed: %v", err)
		}
	}

	got, err := s.GetWorkoutsByDateRange("2026-08-01T00:00:00Z", "2026-08-31T23:59:59Z")
	if err != nil {
		t.Fatalf("GetWorkoutsByDateRange failed: %v", err)
	}
	if len(got) != 1 || got[0].ID != in.ID {
		t.Errorf("date range returned wrong workouts: %+v", got)
	}
}

func TestSearchExercisesCaseInsensitive(t *testing.T) {
	s := setupStore(t)

	if err := s.BulkInsertExercises([]models.Exercise{
		{ExerciseID: "0001", Name: "Barbell Squat"},
		{ExerciseID: "0002", Name: "Leg Press"},
	}); err != nil {
		t.Fatalf("BulkInsertExercises failed: %v", err)
	}

	got, err := s.SearchExercisesByName("SQUAT")
	if err != nil {
		t.Fatalf("SearchExercisesByName failed: %v", err)
	}
	if len(got) != 1 || got[0].ExerciseID != "0001" {
		t.Errorf("search returned wrong exercises: %+v", got)
	}
}

func TestSearchFoodsTreatsMetacharactersLiterally(t *testing.T) {
	s := setupStore(t)

	for _, name := range []string{"Greek Yogurt", "2% Milk"} {
		f := models.NewFood(name)
		if _, err := s.SaveFood(f); err != nil {
			t.Fatalf("SaveFood(%q) failed: %v", name, err)
		}
	}

	got, err := s.SearchFoodsByName("g%t")
	if err != nil {
		t.Fatalf("SearchFoodsByName failed: %v", err)
	}
	if len(got) != 0 {
		t.Errorf("wildcard-style query matched %d foods, want 0", len(got))
	}

	got, err = s.SearchFoodsByName("2% m")
	if err != nil {
		t.Fatalf("SearchFoodsByName failed: %v", err)
	}
	if len(got) != 1 || got[0].Name != "2% Milk" {
		t.Errorf("literal %% query returned wrong foods: %+v", got)
	}
}

func TestBulkInsertSurvivesOversizedBatch(t *testing.T) {
	s := setupStore(t)

	// Enough payload to outgrow a single write transaction, forcing the
	// commit-and-continue path mid-batch.
	brand := strings.Repeat("x", 8<<10)
	list := make([]models.Food, 3000)
	for i := range list {
		list[i] = models.Food{
			ID:    fmt.Sprintf("food-%04d", i),
			Name:  fmt.Sprintf("Bulk Food %04d", i),
			Brand: brand,
		}
	}

	if err := s.BulkInsertFoods(list); err != nil {
		t.Fatalf("BulkInsertFoods failed: %v", err)
	}

	foods, err := s.GetFoods()
	if err != nil {
		t.Fatalf("GetFoods failed: %v", err)
	}
	if len(foods) != len(list) {
		t.Fatalf("expected %d foods, got %d", len(list), len(foods))
	}

	// Re-running the oversized batch still ignores every existing key.
	list[0].Brand = "changed"
	if err := s.BulkInsertFoods(list); err != nil {
		t.Fatalf("second BulkInsertFoods failed: %v", err)
	}
	first, err := s.GetFood("food-0000")
	if err != nil {
		t.Fatalf("GetFood failed: %v", err)
	}
	if first.Brand != brand {
		t.Error("bulk insert overwrote an existing document")
	}
}

func TestBulkInsertIgnoresExisting(t *testing.T) {
	s := setupStore(t)

	if err := s.BulkInsertExercises([]models.Exercise{
		{ExerciseID: "0001", Name: "Squat"},
	}); err != nil {
		t.Fatalf("BulkInsertExercises failed: %v", err)
	}
	if err := s.BulkInsertExercises([]models.Exercise{
		{ExerciseID: "0001", Name: "Back Squat (edited)"},
		{ExerciseID: "0002", Name: "Deadlift"},
	}); err != nil {
		t.Fatalf("second BulkInsertExercises failed: %v", err)
	}

	all, err := s.GetExercises()
	if err != nil {
		t.Fatalf("GetExercises failed: %v", err)
	}
	if len(all) != 2 {
		t.Fatalf("expected 2 exercises, got %d", len(all))
	}

	squat, err := s.GetExercise("0001")
	if err != nil {
		t.Fatalf("GetExercise failed: %v", err)
	}
	if squat.Name != "Squat" {
		t.Errorf("bulk insert overwrote existing document: %q", squat.Name)
	}
}

func TestClearIsScopedToOneStore(t *testing.T) {
	s := setupStore(t)

	if err := s.BulkInsertExercises([]models.Exercise{{ExerciseID: "0001", Name: "Squat"}}); err != nil {
		t.Fatalf("BulkInsertExercises failed: %v", err)
	}
	if err := s.BulkInsertBodyParts([]models.BodyPart{{Name: "legs"}}); err != nil {
		t.Fatalf("BulkInsertBodyParts failed: %v", err)
	}

	if err := s.ClearExercises(); err != nil {
		t.Fatalf("ClearExercises failed: %v", err)
	}

	exercises, err := s.GetExercises()
	if err != nil {
		t.Fatalf("GetExercises failed: %v", err)
	}
	if len(exercises) != 0 {
		t.Errorf("exercises not cleared: %d remain", len(exercises))
	}

	parts, err := s.GetBodyParts()
	if err != nil {
		t.Fatalf("GetBodyParts failed: %v", err)
	}
	if len(parts) != 1 {
		t.Errorf("clear leaked into body_parts: %d remain", len(parts))
	}
}

func TestActiveNutritionTarget(t *testing.T) {
	s := setupStore(t)

	closed := models.NewNutritionTarget("u1")
	closed.EndDate = "2026-08-01"
	active := models.NewNutritionTarget("u1")
	active.Calories = 2200
	for _, target := range []*models.NutritionTarget{closed, active} {
		if _, err := s.SaveNutritionTarget(target); err != nil {
			t.Fatalf("SaveNutritionTarget failed: %v", err)
		}
	}

	got, err := s.GetActiveNutritionTarget("u1")
	if err != nil {
		t.Fatalf("GetActiveNutritionTarget failed: %v", err)
	}
	if got == nil || got.ID != active.ID {
		t.Fatalf("wrong active target: %+v", got)
	}
}

func TestSettingsRoundTrip(t *testing.T) {
	s := setupStore(t)

	value := json.RawMessage(`{"default":90}`)
	if err := s.SetSetting("restTimers", value); err != nil {
		t.Fatalf("SetSetting failed: %v", err)
	}

	got, err := s.GetSetting("restTimers")
	if err != nil {
		t.Fatalf("GetSetting failed: %v", err)
	}
	if string(got) != string(value) {
		t.Errorf("value mismatch: got %s, want %s", got, value)
	}

	unset, err := s.GetSetting("missing")
	if err != nil {
		t.Fatalf("GetSetting failed: %v", err)
	}
	if unset != nil {
		t.Errorf("expected nil for unset key, got %s", unset)
	}
}

func TestDeleteDatabase(t *testing.T) {
	s := setupStore(t)

	w := models.NewWorkout("Doomed", models.WorkoutRegular)
	if _, err := s.SaveWorkout(w); err != nil {
		t.Fatalf("SaveWorkout failed: %v", err)
	}

	if err := s.DeleteDatabase(); err != nil {
		t.Fatalf("DeleteDatabase failed: %v", err)
	}

	all, err := s.GetWorkouts()
	if err != nil {
		t.Fatalf("GetWorkouts after reset failed: %v", err)
	}
	if len(all) != 0 {
		t.Errorf("reset store still has %d workouts", len(all))
	}

	version, err := s.schemaVersion()
	if err != nil {
		t.Fatalf("schemaVersion failed: %v", err)
	}
	if version != storage.CurrentStoreVersion() {
		t.Errorf("reset store not upgraded: version %d", version)
	}
}
