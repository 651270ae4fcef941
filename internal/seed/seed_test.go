// ABOUTME: Tests for the reference data seed loader.
// ABOUTME: Verifies loading from disk and insert-or-ignore on re-apply.
package seed

import (
	"os"
	"path/filepath"
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

func TestLoadFromFile(t *testing.T) {
	store := setupStore(t)

	path := filepath.Join(t.TempDir(), "seed.json")
	content := `{
		"exercises": [{"exerciseId": "0001", "name": "Squat", "bodyParts": ["legs"]}],
		"bodyParts": [{"name": "legs"}, {"name": "back"}],
		"foods": [{"id": "f1", "name": "Oatmeal", "calories": 150}]
	}`
	if err := os.WriteFile(path, []byte(content), 0600); err != nil {
		t.Fatalf("write seed file failed: %v", err)
	}

	if err := Load(store, path); err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	exercises, err := store.GetExercises()
	if err != nil {
		t.Fatalf("GetExercises failed: %v", err)
	}
	if len(exercises) != 1 || exercises[0].Name != "Squat" {
		t.Errorf("exercises not seeded: %+v", exercises)
	}

	parts, err := store.GetBodyParts()
	if err != nil {
		t.Fatalf("GetBodyParts failed: %v", err)
	}
	if len(parts) != 2 {
		t.Errorf("expected 2 body parts, got %d", len(parts))
	}

	foods, err := store.GetFoods()
	if err != nil {
		t.Fatalf("GetFoods failed: %v", err)
	}
	if len(foods) != 1 || foods[0].Calories != 150 {
		t.Errorf("foods not seeded: %+v", foods)
	}
}

func TestReapplyLeavesEditsAlone(t *testing.T) {
	store := setupStore(t)

	f := &File{Exercises: []models.Exercise{{ExerciseID: "0001", Name: "Squat"}}}
	if err := Apply(store, f); err != nil {
		t.Fatalf("Apply failed: %v", err)
	}

	// Local edit after seeding.
	e, err := store.GetExercise("0001")
	if err != nil {
		t.Fatalf("GetExercise failed: %v", err)
	}
	e.Name = "Low-Bar Squat"
	if _, err := store.SaveExercise(e); err != nil {
		t.Fatalf("SaveExercise failed: %v", err)
	}

	if err := Apply(store, f); err != nil {
		t.Fatalf("re-Apply failed: %v", err)
	}

	got, err := store.GetExercise("0001")
	if err != nil {
		t.Fatalf("GetExercise failed: %v", err)
	}
	if got.Name != "Low-Bar Squat" {
		t.Errorf("re-seed clobbered local edit: %q", got.Name)
	}
}

func TestLoadMissingFile(t *testing.T) {
	store := setupStore(t)
	if err := Load(store, filepath.Join(t.TempDir(), "nope.json")); err == nil {
		t.Error("expected error for missing seed file")
	}
}
