// ABOUTME: Reference data loader: reads a JSON seed file and bulk-loads libraries.
// ABOUTME: Loading is insert-or-ignore, so re-seeding never clobbers edits.
package seed

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"

	"github.com/harperreed/fittrack/internal/models"
	"github.com/harperreed/fittrack/internal/storage"
)

// File is the shape of a seed file. Every section is optional.
type File struct {
	Exercises []models.Exercise  `json:"exercises,omitempty"`
	BodyParts []models.BodyPart  `json:"bodyParts,omitempty"`
	Equipment []models.Equipment `json:"equipment,omitempty"`
	Muscles   []models.Muscle    `json:"muscles,omitempty"`
	Foods     []models.Food      `json:"foods,omitempty"`
}

// Load reads a seed file and bulk-inserts its sections. Existing records
// with the same primary key are left untouched.
func Load(store storage.Store, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read seed file: %w", err)
	}

	var f File
	if err := json.Unmarshal(data, &f); err != nil {
		return fmt.Errorf("parse seed file: %w", err)
	}
	return Apply(store, &f)
}

// Apply bulk-inserts every populated section of a seed file.
func Apply(store storage.Store, f *File) error {
	if len(f.Exercises) > 0 {
		if err := store.BulkInsertExercises(f.Exercises); err != nil {
			return fmt.Errorf("seed exercises: %w", err)
		}
	}
	if len(f.BodyParts) > 0 {
		if err := store.BulkInsertBodyParts(f.BodyParts); err != nil {
			return fmt.Errorf("seed body parts: %w", err)
		}
	}
	if len(f.Equipment) > 0 {
		if err := store.BulkInsertEquipment(f.Equipment); err != nil {
			return fmt.Errorf("seed equipment: %w", err)
		}
	}
	if len(f.Muscles) > 0 {
		if err := store.BulkInsertMuscles(f.Muscles); err != nil {
			return fmt.Errorf("seed muscles: %w", err)
		}
	}
	if len(f.Foods) > 0 {
		if err := store.BulkInsertFoods(f.Foods); err != nil {
			return fmt.Errorf("seed foods: %w", err)
		}
	}

	slog.Info("seed applied",
		"exercises", len(f.Exercises),
		"bodyParts", len(f.BodyParts),
		"equipment", len(f.Equipment),
		"muscles", len(f.Muscles),
		"foods", len(f.Foods))
	return nil
}
