// ABOUTME: Exercise library persistence: exercises, body parts, equipment, muscles.
// ABOUTME: Reference data is bulk-loaded with insert-or-ignore and cleared per family.
package sqlite

import (
	"database/sql"
	"fmt"

	"github.com/harperreed/fittrack/internal/models"
)

const exerciseColumns = `exercise_id, name, gif_url, body_parts, equipments,
	target_muscles, secondary_muscles, instructions`

// GetExercises retrieves the full exercise library ordered by name.
func (s *Store) GetExercises() ([]*models.Exercise, error) {
	db, err := s.conn()
	if err != nil {
		return nil, err
	}

	rows, err := db.Query(fmt.Sprintf(
		"SELECT %s FROM exercises ORDER BY name", exerciseColumns))
	if err != nil {
		return nil, fmt.Errorf("list exercises: %w", err)
	}
	defer rows.Close()

	return scanExercises(rows)
}

// GetExercise retrieves an exercise by its library id, or nil when absent.
func (s *Store) GetExercise(exerciseID string) (*models.Exercise, error) {
	db, err := s.conn()
	if err != nil {
		return nil, err
	}

	row := db.QueryRow(fmt.Sprintf(
		"SELECT %s FROM exercises WHERE exercise_id = ?", exerciseColumns), exerciseID)
	e, err := scanExercise(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get exercise: %w", err)
	}
	return e, nil
}

// SaveExercise upserts an exercise keyed by exercise_id.
func (s *Store) SaveExercise(e *models.Exercise) (string, error) {
	db, err := s.conn()
	if err != nil {
		return "", err
	}

	row, err := exerciseRow(e)
	if err != nil {
		return "", err
	}

	_, err = db.Exec(`
		INSERT INTO exercises (exercise_id, name, gif_url, body_parts, equipments,
			target_muscles, secondary_muscles, instructions)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(exercise_id) DO UPDATE SET
			name = excluded.name,
			gif_url = excluded.gif_url,
			body_parts = excluded.body_parts,
			equipments = excluded.equipments,
			target_muscles = excluded.target_muscles,
			secondary_muscles = excluded.secondary_muscles,
			instructions = excluded.instructions`,
		row...,
	)
	if err != nil {
		return "", fmt.Errorf("save exercise: %w", err)
	}
	return e.ExerciseID, nil
}

// SearchExercisesByName performs a case-insensitive substring match through
// the shared predicate; the query string carries no pattern syntax.
func (s *Store) SearchExercisesByName(query string) ([]*models.Exercise, error) {
	db, err := s.conn()
	if err != nil {
		return nil, err
	}

	rows, err := db.Query(fmt.Sprintf(`
		SELECT %s FROM exercises
		WHERE name_matches(name, ?)
		ORDER BY name`, exerciseColumns), query)
	if err != nil {
		return nil, fmt.Errorf("search exercises: %w", err)
	}
	defer rows.Close()

	return scanExercises(rows)
}

// BulkInsertExercises loads reference exercises with insert-or-ignore semantics.
func (s *Store) BulkInsertExercises(list []models.Exercise) error {
	rows := make([][]any, 0, len(list))
	for i := range list {
		row, err := exerciseRow(&list[i])
		if err != nil {
			return err
		}
		rows = append(rows, row)
	}
	return s.bulkInsert("exercises",
		[]string{"exercise_id", "name", "gif_url", "body_parts", "equipments",
			"target_muscles", "secondary_muscles", "instructions"},
		rows)
}

// ClearExercises removes every exercise library row.
func (s *Store) ClearExercises() error {
	return s.clearTable("exercises")
}

// GetBodyParts retrieves all body part names.
func (s *Store) GetBodyParts() ([]*models.BodyPart, error) {
	names, err := s.nameRows("body_parts")
	if err != nil {
		return nil, err
	}
	list := make([]*models.BodyPart, len(names))
	for i, n := range names {
		list[i] = &models.BodyPart{Name: n}
	}
	return list, nil
}

// BulkInsertBodyParts loads body part names with insert-or-ignore semantics.
func (s *Store) BulkInsertBodyParts(list []models.BodyPart) error {
	rows := make([][]any, len(list))
	for i, bp := range list {
		rows[i] = []any{bp.Name}
	}
	return s.bulkInsert("body_parts", []string{"name"}, rows)
}

// ClearBodyParts removes every body part row.
func (s *Store) ClearBodyParts() error {
	return s.clearTable("body_parts")
}

// GetEquipment retrieves all equipment names.
func (s *Store) GetEquipment() ([]*models.Equipment, error) {
	names, err := s.nameRows("equipment")
	if err != nil {
		return nil, err
	}
	list := make([]*models.Equipment, len(names))
	for i, n := range names {
		list[i] = &models.Equipment{Name: n}
	}
	return list, nil
}

// BulkInsertEquipment loads equipment names with insert-or-ignore semantics.
func (s *Store) BulkInsertEquipment(list []models.Equipment) error {
	rows := make([][]any, len(list))
	for i, eq := range list {
		rows[i] = []any{eq.Name}
	}
	return s.bulkInsert("equipment", []string{"name"}, rows)
}

// ClearEquipment removes every equipment row.
func (s *Store) ClearEquipment() error {
	return s.clearTable("equipment")
}

// GetMuscles retrieves all muscle names.
func (s *Store) GetMuscles() ([]*models.Muscle, error) {
	names, err := s.nameRows("muscles")
	if err != nil {
		return nil, err
	}
	list := make([]*models.Muscle, len(names))
	for i, n := range names {
		list[i] = &models.Muscle{Name: n}
	}
	return list, nil
}

// BulkInsertMuscles loads muscle names with insert-or-ignore semantics.
func (s *Store) BulkInsertMuscles(list []models.Muscle) error {
	rows := make([][]any, len(list))
	for i, m := range list {
		rows[i] = []any{m.Name}
	}
	return s.bulkInsert("muscles", []string{"name"}, rows)
}

// ClearMuscles removes every muscle row.
func (s *Store) ClearMuscles() error {
	return s.clearTable("muscles")
}

func (s *Store) nameRows(table string) ([]string, error) {
	db, err := s.conn()
	if err != nil {
		return nil, err
	}

	rows, err := db.Query(fmt.Sprintf("SELECT name FROM %s ORDER BY name", table))
	if err != nil {
		return nil, fmt.Errorf("list %s: %w", table, err)
	}
	defer rows.Close()

	var names []string
	for rows.Next() {
		var n string
		if err := rows.Scan(&n); err != nil {
			return nil, fmt.Errorf("scan %s: %w", table, err)
		}
		names = append(names, n)
	}
	return names, rows.Err()
}

func exerciseRow(e *models.Exercise) ([]any, error) {
	bodyParts, err := jsonText(e.BodyParts)
	if err != nil {
		return nil, fmt.Errorf("serialize body parts: %w", err)
	}
	equipments, err := jsonText(e.Equipments)
	if err != nil {
		return nil, fmt.Errorf("serialize equipments: %w", err)
	}
	targetMuscles, err := jsonText(e.TargetMuscles)
	if err != nil {
		return nil, fmt.Errorf("serialize target muscles: %w", err)
	}
	secondaryMuscles, err := jsonText(e.SecondaryMuscles)
	if err != nil {
		return nil, fmt.Errorf("serialize secondary muscles: %w", err)
	}
	instructions, err := jsonText(e.Instructions)
	if err != nil {
		return nil, fmt.Errorf("serialize instructions: %w", err)
	}
	return []any{
		e.ExerciseID,
		e.Name,
		nullIfEmpty(e.GifURL),
		bodyParts,
		equipments,
		targetMuscles,
		secondaryMuscles,
		instructions,
	}, nil
}

func scanExercise(row rowScanner) (*models.Exercise, error) {
	var e models.Exercise
	var gifURL sql.NullString
	var bodyParts, equipments, targetMuscles, secondaryMuscles, instructions sql.NullString

	err := row.Scan(
		&e.ExerciseID,
		&e.Name,
		&gifURL,
		&bodyParts,
		&equipments,
		&targetMuscles,
		&secondaryMuscles,
		&instructions,
	)
	if err != nil {
		return nil, err
	}

	e.GifURL = stringValue(gifURL)
	e.BodyParts = unmarshalColumn(bodyParts, []string{})
	e.Equipments = unmarshalColumn(equipments, []string{})
	e.TargetMuscles = unmarshalColumn(targetMuscles, []string{})
	e.SecondaryMuscles = unmarshalColumn(secondaryMuscles, []string{})
	e.Instructions = unmarshalColumn(instructions, []string{})

	return &e, nil
}

func scanExercises(rows *sql.Rows) ([]*models.Exercise, error) {
	var exercises []*models.Exercise
	for rows.Next() {
		e, err := scanExercise(rows)
		if err != nil {
			return nil, fmt.Errorf("scan exercise: %w", err)
		}
		exercises = append(exercises, e)
	}
	return exercises, rows.Err()
}
