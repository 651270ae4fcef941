// ABOUTME: Workout CRUD and active-workout lookup for the SQLite backend.
// ABOUTME: Structured fields (exercises, intervals, cardio) serialize to JSON TEXT columns.
package sqlite

import (
	"database/sql"
	"fmt"

	"github.com/harperreed/fittrack/internal/models"
)

const workoutColumns = `id, name, type, exercises, interval_config, interval_progress,
	cardio_data, start_time, end_time, completed, completion_percentage,
	routine_id, program_id, created_at, updated_at`

// GetWorkouts retrieves all workouts, most recently created first.
func (s *Store) GetWorkouts() ([]*models.Workout, error) {
	db, err := s.conn()
	if err != nil {
		return nil, err
	}

	rows, err := db.Query(fmt.Sprintf(
		"SELECT %s FROM workouts ORDER BY created_at DESC", workoutColumns))
	if err != nil {
		return nil, fmt.Errorf("list workouts: %w", err)
	}
	defer rows.Close()

	return scanWorkouts(rows)
}

// GetWorkout retrieves a workout by id, or nil when absent.
func (s *Store) GetWorkout(id string) (*models.Workout, error) {
	db, err := s.conn()
	if err != nil {
		return nil, err
	}

	row := db.QueryRow(fmt.Sprintf(
		"SELECT %s FROM workouts WHERE id = ?", workoutColumns), id)
	w, err := scanWorkout(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get workout: %w", err)
	}
	return w, nil
}

// SaveWorkout upserts a workout keyed by id and returns the id.
func (s *Store) SaveWorkout(w *models.Workout) (string, error) {
	db, err := s.conn()
	if err != nil {
		return "", err
	}

	exercises, err := jsonText(w.Exercises)
	if err != nil {
		return "", fmt.Errorf("serialize exercises: %w", err)
	}
	intervalConfig, err := jsonTextPtr(w.IntervalConfig)
	if err != nil {
		return "", fmt.Errorf("serialize interval config: %w", err)
	}
	intervalProgress, err := jsonTextPtr(w.IntervalProgress)
	if err != nil {
		return "", fmt.Errorf("serialize interval progress: %w", err)
	}
	cardioData, err := jsonTextPtr(w.CardioData)
	if err != nil {
		return "", fmt.Errorf("serialize cardio data: %w", err)
	}

	_, err = db.Exec(`
		INSERT INTO workouts (id, name, type, exercises, interval_config, interval_progress,
			cardio_data, start_time, end_time, completed, completion_percentage,
			routine_id, program_id, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			name = excluded.name,
			type = excluded.type,
			exercises = excluded.exercises,
			interval_config = excluded.interval_config,
			interval_progress = excluded.interval_progress,
			cardio_data = excluded.cardio_data,
			start_time = excluded.start_time,
			end_time = excluded.end_time,
			completed = excluded.completed,
			completion_percentage = excluded.completion_percentage,
			routine_id = excluded.routine_id,
			program_id = excluded.program_id,
			created_at = excluded.created_at,
			updated_at = excluded.updated_at`,
		w.ID,
		w.Name,
		string(w.Type),
		exercises,
		intervalConfig,
		intervalProgress,
		cardioData,
		normalizeTime(w.StartTime),
		nullIfEmpty(normalizeTime(w.EndTime)),
		boolToInt(w.Completed),
		w.CompletionPercentage,
		nullIfEmpty(w.RoutineID),
		nullIfEmpty(w.ProgramID),
		normalizeTime(w.CreatedAt),
		normalizeTime(w.UpdatedAt),
	)
	if err != nil {
		return "", fmt.Errorf("save workout: %w", err)
	}
	return w.ID, nil
}

// DeleteWorkout removes a workout by id. Deleting a missing id is not an error.
func (s *Store) DeleteWorkout(id string) error {
	db, err := s.conn()
	if err != nil {
		return err
	}
	if _, err := db.Exec("DELETE FROM workouts WHERE id = ?", id); err != nil {
		return fmt.Errorf("delete workout: %w", err)
	}
	return nil
}

// GetActiveWorkout returns the single in-progress workout: no end time and
// not completed. The engine filters; no application-side scan.
func (s *Store) GetActiveWorkout() (*models.Workout, error) {
	db, err := s.conn()
	if err != nil {
		return nil, err
	}

	row := db.QueryRow(fmt.Sprintf(`
		SELECT %s FROM workouts
		WHERE (end_time IS NULL OR end_time = '')
		  AND (completed = 0 OR completed IS NULL)
		ORDER BY created_at DESC
		LIMIT 1`, workoutColumns))
	w, err := scanWorkout(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get active workout: %w", err)
	}
	return w, nil
}

// GetWorkoutsByDateRange retrieves workouts whose start time falls within
// [start, end], most recent first. Bounds compare verbatim against the
// stored RFC 3339 strings, the same as the document backend.
func (s *Store) GetWorkoutsByDateRange(start, end string) ([]*models.Workout, error) {
	db, err := s.conn()
	if err != nil {
		return nil, err
	}

	rows, err := db.Query(fmt.Sprintf(`
		SELECT %s FROM workouts
		WHERE start_time >= ? AND start_time <= ?
		ORDER BY start_time DESC`, workoutColumns),
		start, end)
	if err != nil {
		return nil, fmt.Errorf("list workouts by date range: %w", err)
	}
	defer rows.Close()

	return scanWorkouts(rows)
}

func scanWorkout(row rowScanner) (*models.Workout, error) {
	var w models.Workout
	var workoutType string
	var exercises, intervalConfig, intervalProgress, cardioData sql.NullString
	var startTime, endTime, routineID, programID sql.NullString
	var completed sql.NullInt64

	err := row.Scan(
		&w.ID,
		&w.Name,
		&workoutType,
		&exercises,
		&intervalConfig,
		&intervalProgress,
		&cardioData,
		&startTime,
		&endTime,
		&completed,
		&w.CompletionPercentage,
		&routineID,
		&programID,
		&w.CreatedAt,
		&w.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	w.Type = models.WorkoutType(workoutType)
	w.Exercises = unmarshalColumn(exercises, []models.WorkoutExercise{})
	w.IntervalConfig = unmarshalColumn[*models.IntervalConfig](intervalConfig, nil)
	w.IntervalProgress = unmarshalColumn[*models.IntervalProgress](intervalProgress, nil)
	w.CardioData = unmarshalColumn[*models.CardioData](cardioData, nil)
	w.StartTime = stringValue(startTime)
	w.EndTime = stringValue(endTime)
	w.Completed = completed.Valid && completed.Int64 != 0
	w.RoutineID = stringValue(routineID)
	w.ProgramID = stringValue(programID)

	return &w, nil
}

func scanWorkouts(rows *sql.Rows) ([]*models.Workout, error) {
	var workouts []*models.Workout
	for rows.Next() {
		w, err := scanWorkout(rows)
		if err != nil {
			return nil, fmt.Errorf("scan workout: %w", err)
		}
		workouts = append(workouts, w)
	}
	return workouts, rows.Err()
}
