// ABOUTME: Exercise library documents: exercises, body parts, equipment, muscles.
// ABOUTME: Reference data is bulk-loaded with insert-or-ignore and cleared per store.
package docstore

import (
	"sort"

	"github.com/harperreed/fittrack/internal/models"
)

const (
	exerciseStore = "exercises"
	bodyPartStore = "body_parts"
	equipStore    = "equipment"
	muscleStore   = "muscles"
)

// GetExercises retrieves the full exercise library ordered by name.
func (s *Store) GetExercises() ([]*models.Exercise, error) {
	exercises, err := listDocs[models.Exercise](s, exerciseStore)
	if err != nil {
		return nil, err
	}
	sort.Slice(exercises, func(i, j int) bool {
		return exercises[i].Name < exercises[j].Name
	})
	return exercises, nil
}

// GetExercise retrieves an exercise by its library id, or nil when absent.
func (s *Store) GetExercise(exerciseID string) (*models.Exercise, error) {
	return getDoc[models.Exercise](s, exerciseStore, exerciseID)
}

// SaveExercise upserts an exercise keyed by exercise id.
func (s *Store) SaveExercise(e *models.Exercise) (string, error) {
	if err := s.putDoc(exerciseStore, e.ExerciseID, e); err != nil {
		return "", err
	}
	return e.ExerciseID, nil
}

// SearchExercisesByName performs a case-insensitive substring match.
func (s *Store) SearchExercisesByName(query string) ([]*models.Exercise, error) {
	exercises, err := s.GetExercises()
	if err != nil {
		return nil, err
	}

	var matched []*models.Exercise
	for _, e := range exercises {
		if matchesName(e.Name, query) {
			matched = append(matched, e)
		}
	}
	return matched, nil
}

// BulkInsertExercises loads reference exercises with insert-or-ignore semantics.
func (s *Store) BulkInsertExercises(list []models.Exercise) error {
	keys := make([]string, len(list))
	docs := make([]any, len(list))
	for i := range list {
		keys[i] = list[i].ExerciseID
		docs[i] = &list[i]
	}
	return s.bulkPut(exerciseStore, keys, docs)
}

// ClearExercises removes every exercise library document.
func (s *Store) ClearExercises() error {
	return s.clearStore(exerciseStore)
}

// GetBodyParts retrieves all body part names.
func (s *Store) GetBodyParts() ([]*models.BodyPart, error) {
	return sortedNames[models.BodyPart](s, bodyPartStore, func(v *models.BodyPart) string {
		return v.Name
	})
}

// BulkInsertBodyParts loads body part names with insert-or-ignore semantics.
func (s *Store) BulkInsertBodyParts(list []models.BodyPart) error {
	keys := make([]string, len(list))
	docs := make([]any, len(list))
	for i := range list {
		keys[i] = list[i].Name
		docs[i] = &list[i]
	}
	return s.bulkPut(bodyPartStore, keys, docs)
}

// ClearBodyParts removes every body part document.
func (s *Store) ClearBodyParts() error {
	return s.clearStore(bodyPartStore)
}

// GetEquipment retrieves all equipment names.
func (s *Store) GetEquipment() ([]*models.Equipment, error) {
	return sortedNames[models.Equipment](s, equipStore, func(v *models.Equipment) string {
		return v.Name
	})
}

// BulkInsertEquipment loads equipment names with insert-or-ignore semantics.
func (s *Store) BulkInsertEquipment(list []models.Equipment) error {
	keys := make([]string, len(list))
	docs := make([]any, len(list))
	for i := range list {
		keys[i] = list[i].Name
		docs[i] = &list[i]
	}
	return s.bulkPut(equipStore, keys, docs)
}

// ClearEquipment removes every equipment document.
func (s *Store) ClearEquipment() error {
	return s.clearStore(equipStore)
}

// GetMuscles retrieves all muscle names.
func (s *Store) GetMuscles() ([]*models.Muscle, error) {
	return sortedNames[models.Muscle](s, muscleStore, func(v *models.Muscle) string {
		return v.Name
	})
}

// BulkInsertMuscles loads muscle names with insert-or-ignore semantics.
func (s *Store) BulkInsertMuscles(list []models.Muscle) error {
	keys := make([]string, len(list))
	docs := make([]any, len(list))
	for i := range list {
		keys[i] = list[i].Name
		docs[i] = &list[i]
	}
	return s.bulkPut(muscleStore, keys, docs)
}

// ClearMuscles removes every muscle document.
func (s *Store) ClearMuscles() error {
	return s.clearStore(muscleStore)
}

func sortedNames[T any](s *Store, store string, name func(*T) string) ([]*T, error) {
	docs, err := listDocs[T](s, store)
	if err != nil {
		return nil, err
	}
	sort.Slice(docs, func(i, j int) bool {
		return name(docs[i]) < name(docs[j])
	})
	return docs, nil
}
