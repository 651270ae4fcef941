// ABOUTME: Tests for the SQLite storage backend.
// ABOUTME: Verifies upserts, not-found semantics, structured fields, migrations and bulk loads.
package sqlite

import (
	"database/sql"
	"encoding/json"
	"errors"
	"path/filepath"
	"testing"

	"github.com/harperreed/fittrack/internal/models"
	"github.com/harperreed/fittrack/internal/storage"
)

func setupStore(t *testing.T) *Store {
	t.Helper()
	s := New("fittrack", t.TempDir())
	if err := s.Initialize(); err != nil {
		t.Fatalf("Initialize failed: %v", err)
	}
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func TestNotInitialized(t *testing.T) {
	s := New("fittrack", t.TempDir())
	if _, err := s.GetWorkouts(); !errors.Is(err, storage.ErrNotInitialized) {
		t.Errorf("expected ErrNotInitialized, got %v", err)
	}
}

func TestInitializeIdempotent(t *testing.T) {
	s := setupStore(t)
	if err := s.Initialize(); err != nil {
		t.Fatalf("second Initialize failed: %v", err)
	}

	w := models.NewWorkout("Leg Day", models.WorkoutRegular)
	if _, err := s.SaveWorkout(w); err != nil {
		t.Fatalf("SaveWorkout failed: %v", err)
	}
}

func TestSaveAndGetWorkout(t *testing.T) {
	s := setupStore(t)

	w := models.NewWorkout("Intervals", models.WorkoutInterval)
	w.Exercises = []models.WorkoutExercise{{
		ExerciseID: "burpee",
		Name:       "Burpee",
		Sets:       []models.WorkoutSet{{Reps: 10, Weight: 0, Completed: true}},
	}}
	w.IntervalConfig = &models.IntervalConfig{Rounds: 8, WorkSeconds: 20, RestSeconds: 10}
	w.CardioData = &models.CardioData{
		DistanceMeters: 1200,
		Route:          []models.GPSPoint{{Lat: 41.88, Lng: -87.63, Timestamp: w.StartTime}},
	}

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
	if got.Name != "Intervals" || got.Type != models.WorkoutInterval {
		t.Errorf("workout mismatch: got %q/%s", got.Name, got.Type)
	}
	if len(got.Exercises) != 1 || len(got.Exercises[0].Sets) != 1 {
		t.Fatalf("exercises did not round-trip: %+v", got.Exercises)
	}
	if got.IntervalConfig == nil || got.IntervalConfig.Rounds != 8 {
		t.Errorf("interval config did not round-trip: %+v", got.IntervalConfig)
	}
	if got.IntervalProgress != nil {
		t.Errorf("absent interval progress came back non-nil: %+v", got.IntervalProgress)
	}
	if got.CardioData == nil || len(got.CardioData.Route) != 1 {
		t.Errorf("cardio data did not round-trip: %+v", got.CardioData)
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
		t.Fatalf("upsert created a duplicate: %d rows", len(all))
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

func TestWorkoutsByDateRangeComparesBoundsVerbatim(t *testing.T) {
	s := setupStore(t)

	w := models.NewWorkout("Morning Session", models.WorkoutRegular)
	w.StartTime = "2026-08-10T09:00:00Z"
	if _, err := s.SaveWorkout(w); err != nil {
		t.Fatalf("SaveWorkout failed: %v", err)
	}

	// A space-separated end bound sorts before 'T' and so excludes the
	// stored RFC 3339 start time; both backends must agree on that.
	got, err := s.GetWorkoutsByDateRange("2026-08-01", "2026-08-10 23:59:59")
	if err != nil {
		t.Fatalf("GetWorkoutsByDateRange failed: %v", err)
	}
	if len(got) != 0 {
		t.Errorf("space-separated end bound matched %d workouts, want 0", len(got))
	}

	got, err = s.GetWorkoutsByDateRange("2026-08-01", "2026-08-10T23:59:59Z")
	if err != nil {
		t.Fatalf("GetWorkoutsByDateRange failed: %v", err)
	}
	if len(got) != 1 {
		t.Errorf("RFC 3339 end bound matched %d workouts, want 1", len(got))
	}
}

func TestCorruptStructuredColumnsFallBack(t *testing.T) {
	s := setupStore(t)

	w := models.NewWorkout("Corrupted", models.WorkoutRegular)
	if _, err := s.SaveWorkout(w); err != nil {
		t.Fatalf("SaveWorkout failed: %v", err)
	}

	_, err := s.db.Exec(
		`UPDATE workouts SET exercises = 'undefined', interval_config = '{broken' WHERE id = ?`,
		w.ID)
	if err != nil {
		t.Fatalf("corrupting row failed: %v", err)
	}

	got, err := s.GetWorkout(w.ID)
	if err != nil {
		t.Fatalf("GetWorkout on corrupt row failed: %v", err)
	}
	if got == nil {
		t.Fatal("corrupt row dropped entirely")
	}
	if len(got.Exercises) != 0 {
		t.Errorf("corrupt exercises should decode empty, got %+v", got.Exercises)
	}
	if got.IntervalConfig != nil {
		t.Errorf("corrupt interval config should decode nil, got %+v", got.IntervalConfig)
	}
}

func TestSearchFoodsCaseInsensitive(t *testing.T) {
	s := setupStore(t)

	f := models.NewFood("Greek Yogurt")
	if _, err := s.SaveFood(f); err != nil {
		t.Fatalf("SaveFood failed: %v", err)
	}

	for _, query := range []string{"greek", "YOGURT", "eK Yo"} {
		got, err := s.SearchFoodsByName(query)
		if err != nil {
			t.Fatalf("SearchFoodsByName(%q) failed: %v", query, err)
		}
		if len(got) != 1 {
			t.Errorf("query %q matched %d foods, want 1", query, len(got))
		}
	}

	got, err := s.SearchFoodsByName("salmon")
	if err != nil {
		t.Fatalf("SearchFoodsByName failed: %v", err)
	}
	if len(got) != 0 {
		t.Errorf("non-matching query returned %d foods", len(got))
	}
}

func TestSearchFoodsTreatsMetacharactersLiterally(t *testing.T) {
	s := setupStore(t)

	for _, name := range []string{"Greek Yogurt", "2% Milk", "Café au Lait"} {
		f := models.NewFood(name)
		if _, err := s.SaveFood(f); err != nil {
			t.Fatalf("SaveFood(%q) failed: %v", name, err)
		}
	}

	// % and _ are literal characters, not wildcards.
	for _, query := range []string{"g%t", "_reek", "%"} {
		got, err := s.SearchFoodsByName(query)
		if err != nil {
			t.Fatalf("SearchFoodsByName(%q) failed: %v", query, err)
		}
		want := 0
		if query == "%" {
			want = 1 // "2% Milk" contains a literal percent sign
		}
		if len(got) != want {
			t.Errorf("query %q matched %d foods, want %d", query, len(got), want)
		}
	}

	got, err := s.SearchFoodsByName("2% m")
	if err != nil {
		t.Fatalf("SearchFoodsByName failed: %v", err)
	}
	if len(got) != 1 || got[0].Name != "2% Milk" {
		t.Errorf("literal %% query returned wrong foods: %+v", got)
	}

	// Case folding covers non-ASCII letters.
	got, err = s.SearchFoodsByName("CAFÉ")
	if err != nil {
		t.Fatalf("SearchFoodsByName failed: %v", err)
	}
	if len(got) != 1 || got[0].Name != "Café au Lait" {
		t.Errorf("non-ASCII query returned wrong foods: %+v", got)
	}
}

func TestSearchExercisesTreatsMetacharactersLiterally(t *testing.T) {
	s := setupStore(t)

	if err := s.BulkInsertExercises([]models.Exercise{
		{ExerciseID: "0001", Name: "Barbell Squat"},
	}); err != nil {
		t.Fatalf("BulkInsertExercises failed: %v", err)
	}

	got, err := s.SearchExercisesByName("b%t")
	if err != nil {
		t.Fatalf("SearchExercisesByName failed: %v", err)
	}
	if len(got) != 0 {
		t.Errorf("wildcard-style query matched %d exercises, want 0", len(got))
	}
}

func TestBulkInsertExercisesIgnoresExisting(t *testing.T) {
	s := setupStore(t)

	first := []models.Exercise{
		{ExerciseID: "0001", Name: "Squat"},
		{ExerciseID: "0002", Name: "Deadlift"},
	}
	if err := s.BulkInsertExercises(first); err != nil {
		t.Fatalf("BulkInsertExercises failed: %v", err)
	}

	// Same IDs with edited names plus one new entry: edits must be ignored.
	second := []models.Exercise{
		{ExerciseID: "0001", Name: "Back Squat (edited)"},
		{ExerciseID: "0003", Name: "Bench Press"},
	}
	if err := s.BulkInsertExercises(second); err != nil {
		t.Fatalf("second BulkInsertExercises failed: %v", err)
	}

	all, err := s.GetExercises()
	if err != nil {
		t.Fatalf("GetExercises failed: %v", err)
	}
	if len(all) != 3 {
		t.Fatalf("expected 3 exercises, got %d", len(all))
	}

	squat, err := s.GetExercise("0001")
	if err != nil {
		t.Fatalf("GetExercise failed: %v", err)
	}
	if squat.Name != "Squat" {
		t.Errorf("bulk insert overwrote existing row: %q", squat.Name)
	}
}

func TestClearIsScopedToOneFamily(t *testing.T) {
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

	none, err := s.GetActiveNutritionTarget("u2")
	if err != nil {
		t.Fatalf("GetActiveNutritionTarget failed: %v", err)
	}
	if none != nil {
		t.Errorf("expected nil for user with no targets, got %+v", none)
	}
}

func TestSettingsRoundTrip(t *testing.T) {
	s := setupStore(t)

	value := json.RawMessage(`{"default":90,"perExercise":{"squat":180}}`)
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

	if err := s.DeleteSetting("missing"); err != nil {
		t.Errorf("deleting a missing key should not error: %v", err)
	}
}

func TestMigrationAddsMissingColumns(t *testing.T) {
	dir := t.TempDir()

	// Simulate a database created by an older version with fewer columns.
	raw, err := sql.Open("sqlite", filepath.Join(dir, "fittrack.db"))
	if err != nil {
		t.Fatalf("open raw database failed: %v", err)
	}
	_, err = raw.Exec(`CREATE TABLE workouts (
		id TEXT PRIMARY KEY,
		name TEXT NOT NULL DEFAULT '',
		created_at TEXT NOT NULL DEFAULT '',
		updated_at TEXT NOT NULL DEFAULT '')`)
	if err != nil {
		t.Fatalf("create legacy table failed: %v", err)
	}
	if err := raw.Close(); err != nil {
		t.Fatalf("close raw database failed: %v", err)
	}

	s := New("fittrack", dir)
	if err := s.Initialize(); err != nil {
		t.Fatalf("Initialize failed: %v", err)
	}
	t.Cleanup(func() { _ = s.Close() })

	cols, err := s.tableColumns("workouts")
	if err != nil {
		t.Fatalf("tableColumns failed: %v", err)
	}
	for _, want := range []string{"type", "exercises", "completed", "cardio_data"} {
		if !cols[want] {
			t.Errorf("column %s not added by migration", want)
		}
	}

	// A full save must now succeed against the migrated table.
	w := models.NewWorkout("Post-migration", models.WorkoutRegular)
	if _, err := s.SaveWorkout(w); err != nil {
		t.Fatalf("SaveWorkout after migration failed: %v", err)
	}

	// Re-running is a no-op.
	if err := s.Initialize(); err != nil {
		t.Fatalf("re-Initialize after migration failed: %v", err)
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
		t.Errorf("reset database still has %d workouts", len(all))
	}
}
