// ABOUTME: Routine CRUD and favorite lookup for the SQLite backend.
// ABOUTME: Routine exercises are a structured JSON TEXT column.
package sqlite

import (
	"database/sql"
	"fmt"

	"github.com/harperreed/fittrack/internal/models"
)

const routineColumns = `id, name, exercises, type, template_id, is_favorite,
	difficulty, estimated_duration, created_at, updated_at`

// GetRoutines retrieves all routines, most recently created first.
func (s *Store) GetRoutines() ([]*models.Routine, error) {
	db, err := s.conn()
	if err != nil {
		return nil, err
	}

	rows, err := db.Query(fmt.Sprintf(
		"SELECT %s FROM routines ORDER BY created_at DESC", routineColumns))
	if err != nil {
		return nil, fmt.Errorf("list routines: %w", err)
	}
	defer rows.Close()

	return scanRoutines(rows)
}

// GetRoutine retrieves a routine by id, or nil when absent.
func (s *Store) GetRoutine(id string) (*models.Routine, error) {
	db, err := s.conn()
	if err != nil {
		return nil, err
	}

	row := db.QueryRow(fmt.Sprintf(
		"SELECT %s FROM routines WHERE id = ?", routineColumns), id)
	r, err := scanRoutine(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get routine: %w", err)
	}
	return r, nil
}

// SaveRoutine upserts a routine keyed by id and returns the id.
func (s *Store) SaveRoutine(r *models.Routine) (string, error) {
	db, err := s.conn()
	if err != nil {
		return "", err
	}

	exercises, err := jsonText(r.Exercises)
	if err != nil {
		return "", fmt.Errorf("serialize exercises: %w", err)
	}

	_, err = db.Exec(`
		INSERT INTO routines (id, name, exercises, type, template_id, is_favorite,
			difficulty, estimated_duration, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			name = excluded.name,
			exercises = excluded.exercises,
			type = excluded.type,
			template_id = excluded.template_id,
			is_favorite = excluded.is_favorite,
			difficulty = excluded.difficulty,
			estimated_duration = excluded.estimated_duration,
			created_at = excluded.created_at,
			updated_at = excluded.updated_at`,
		r.ID,
		r.Name,
		exercises,
		string(r.Type),
		nullIfEmpty(r.TemplateID),
		boolToInt(r.IsFavorite),
		nullIfEmpty(r.Difficulty),
		r.EstimatedDurationMinutes,
		normalizeTime(r.CreatedAt),
		normalizeTime(r.UpdatedAt),
	)
	if err != nil {
		return "", fmt.Errorf("save routine: %w", err)
	}
	return r.ID, nil
}

// DeleteRoutine removes a routine by id.
func (s *Store) DeleteRoutine(id string) error {
	db, err := s.conn()
	if err != nil {
		return err
	}
	if _, err := db.Exec("DELETE FROM routines WHERE id = ?", id); err != nil {
		return fmt.Errorf("delete routine: %w", err)
	}
	return nil
}

// GetFavoriteRoutines retrieves routines marked favorite.
func (s *Store) GetFavoriteRoutines() ([]*models.Routine, error) {
	db, err := s.conn()
	if err != nil {
		return nil, err
	}

	rows, err := db.Query(fmt.Sprintf(
		"SELECT %s FROM routines WHERE is_favorite = 1 ORDER BY created_at DESC",
		routineColumns))
	if err != nil {
		return nil, fmt.Errorf("list favorite routines: %w", err)
	}
	defer rows.Close()

	return scanRoutines(rows)
}

func scanRoutine(row rowScanner) (*models.Routine, error) {
	var r models.Routine
	var routineType string
	var exercises, templateID, difficulty sql.NullString
	var isFavorite, estimatedDuration sql.NullInt64

	err := row.Scan(
		&r.ID,
		&r.Name,
		&exercises,
		&routineType,
		&templateID,
		&isFavorite,
		&difficulty,
		&estimatedDuration,
		&r.CreatedAt,
		&r.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	r.Type = models.RoutineType(routineType)
	r.Exercises = unmarshalColumn(exercises, []models.RoutineExercise{})
	r.TemplateID = stringValue(templateID)
	r.IsFavorite = isFavorite.Valid && isFavorite.Int64 != 0
	r.Difficulty = stringValue(difficulty)
	if estimatedDuration.Valid {
		r.EstimatedDurationMinutes = int(estimatedDuration.Int64)
	}

	return &r, nil
}

func scanRoutines(rows *sql.Rows) ([]*models.Routine, error) {
	var routines []*models.Routine
	for rows.Next() {
		r, err := scanRoutine(rows)
		if err != nil {
			return nil, fmt.Errorf("scan routine: %w", err)
		}
		routines = append(routines, r)
	}
	return routines, rows.Err()
}
