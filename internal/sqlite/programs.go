// ABOUTME: WorkoutProgram and RoutineAnalytics persistence for the SQLite backend.
// ABOUTME: A program's routine list is one structured JSON TEXT column.
package sqlite

import (
	"database/sql"
	"fmt"

	"github.com/harperreed/fittrack/internal/models"
)

const programColumns = `id, name, template_id, workouts, is_enabled, created_at, updated_at`

const analyticsColumns = `id, routine_id, total_completions, completion_rate,
	avg_duration_minutes, total_volume, best_volume, last_completed_at,
	created_at, updated_at`

// GetPrograms retrieves all programs, most recently created first.
func (s *Store) GetPrograms() ([]*models.WorkoutProgram, error) {
	db, err := s.conn()
	if err != nil {
		return nil, err
	}

	rows, err := db.Query(fmt.Sprintf(
		"SELECT %s FROM workout_programs ORDER BY created_at DESC", programColumns))
	if err != nil {
		return nil, fmt.Errorf("list programs: %w", err)
	}
	defer rows.Close()

	return scanPrograms(rows)
}

// GetProgram retrieves a program by id, or nil when absent.
func (s *Store) GetProgram(id string) (*models.WorkoutProgram, error) {
	db, err := s.conn()
	if err != nil {
		return nil, err
	}

	row := db.QueryRow(fmt.Sprintf(
		"SELECT %s FROM workout_programs WHERE id = ?", programColumns), id)
	p, err := scanProgram(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get program: %w", err)
	}
	return p, nil
}

// SaveProgram upserts a program keyed by id and returns the id.
func (s *Store) SaveProgram(p *models.WorkoutProgram) (string, error) {
	db, err := s.conn()
	if err != nil {
		return "", err
	}

	workouts, err := jsonText(p.Workouts)
	if err != nil {
		return "", fmt.Errorf("serialize program workouts: %w", err)
	}

	_, err = db.Exec(`
		INSERT INTO workout_programs (id, name, template_id, workouts, is_enabled,
			created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			name = excluded.name,
			template_id = excluded.template_id,
			workouts = excluded.workouts,
			is_enabled = excluded.is_enabled,
			created_at = excluded.created_at,
			updated_at = excluded.updated_at`,
		p.ID,
		p.Name,
		nullIfEmpty(p.TemplateID),
		workouts,
		boolToInt(p.IsEnabled),
		normalizeTime(p.CreatedAt),
		normalizeTime(p.UpdatedAt),
	)
	if err != nil {
		return "", fmt.Errorf("save program: %w", err)
	}
	return p.ID, nil
}

// DeleteProgram removes a program by id.
func (s *Store) DeleteProgram(id string) error {
	db, err := s.conn()
	if err != nil {
		return err
	}
	if _, err := db.Exec("DELETE FROM workout_programs WHERE id = ?", id); err != nil {
		return fmt.Errorf("delete program: %w", err)
	}
	return nil
}

// GetProgramsByTemplate retrieves programs created from a template.
func (s *Store) GetProgramsByTemplate(templateID string) ([]*models.WorkoutProgram, error) {
	db, err := s.conn()
	if err != nil {
		return nil, err
	}

	rows, err := db.Query(fmt.Sprintf(
		"SELECT %s FROM workout_programs WHERE template_id = ? ORDER BY created_at DESC",
		programColumns), templateID)
	if err != nil {
		return nil, fmt.Errorf("list programs by template: %w", err)
	}
	defer rows.Close()

	return scanPrograms(rows)
}

func scanProgram(row rowScanner) (*models.WorkoutProgram, error) {
	var p models.WorkoutProgram
	var templateID, workouts sql.NullString
	var isEnabled sql.NullInt64

	err := row.Scan(
		&p.ID,
		&p.Name,
		&templateID,
		&workouts,
		&isEnabled,
		&p.CreatedAt,
		&p.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	p.TemplateID = stringValue(templateID)
	p.Workouts = unmarshalColumn(workouts, []models.Routine{})
	p.IsEnabled = isEnabled.Valid && isEnabled.Int64 != 0

	return &p, nil
}

func scanPrograms(rows *sql.Rows) ([]*models.WorkoutProgram, error) {
	var programs []*models.WorkoutProgram
	for rows.Next() {
		p, err := scanProgram(rows)
		if err != nil {
			return nil, fmt.Errorf("scan program: %w", err)
		}
		programs = append(programs, p)
	}
	return programs, rows.Err()
}

// GetRoutineAnalytics retrieves all cached routine analytics.
func (s *Store) GetRoutineAnalytics() ([]*models.RoutineAnalytics, error) {
	db, err := s.conn()
	if err != nil {
		return nil, err
	}

	rows, err := db.Query(fmt.Sprintf(
		"SELECT %s FROM routine_analytics ORDER BY created_at DESC", analyticsColumns))
	if err != nil {
		return nil, fmt.Errorf("list routine analytics: %w", err)
	}
	defer rows.Close()

	var list []*models.RoutineAnalytics
	for rows.Next() {
		a, err := scanRoutineAnalytics(rows)
		if err != nil {
			return nil, fmt.Errorf("scan routine analytics: %w", err)
		}
		list = append(list, a)
	}
	return list, rows.Err()
}

// GetRoutineAnalyticsByRoutine retrieves the analytics row for a routine,
// or nil when none has been computed yet.
func (s *Store) GetRoutineAnalyticsByRoutine(routineID string) (*models.RoutineAnalytics, error) {
	db, err := s.conn()
	if err != nil {
		return nil, err
	}

	row := db.QueryRow(fmt.Sprintf(
		"SELECT %s FROM routine_analytics WHERE routine_id = ? LIMIT 1",
		analyticsColumns), routineID)
	a, err := scanRoutineAnalytics(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get routine analytics: %w", err)
	}
	return a, nil
}

// SaveRoutineAnalytics upserts an analytics row keyed by id.
func (s *Store) SaveRoutineAnalytics(a *models.RoutineAnalytics) (string, error) {
	db, err := s.conn()
	if err != nil {
		return "", err
	}

	_, err = db.Exec(`
		INSERT INTO routine_analytics (id, routine_id, total_completions, completion_rate,
			avg_duration_minutes, total_volume, best_volume, last_completed_at,
			created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			routine_id = excluded.routine_id,
			total_completions = excluded.total_completions,
			completion_rate = excluded.completion_rate,
			avg_duration_minutes = excluded.avg_duration_minutes,
			total_volume = excluded.total_volume,
			best_volume = excluded.best_volume,
			last_completed_at = excluded.last_completed_at,
			created_at = excluded.created_at,
			updated_at = excluded.updated_at`,
		a.ID,
		a.RoutineID,
		a.TotalCompletions,
		a.CompletionRate,
		a.AvgDurationMinutes,
		a.TotalVolume,
		a.BestVolume,
		nullIfEmpty(normalizeTime(a.LastCompletedAt)),
		normalizeTime(a.CreatedAt),
		normalizeTime(a.UpdatedAt),
	)
	if err != nil {
		return "", fmt.Errorf("save routine analytics: %w", err)
	}
	return a.ID, nil
}

// DeleteRoutineAnalytics removes an analytics row by id.
func (s *Store) DeleteRoutineAnalytics(id string) error {
	db, err := s.conn()
	if err != nil {
		return err
	}
	if _, err := db.Exec("DELETE FROM routine_analytics WHERE id = ?", id); err != nil {
		return fmt.Errorf("delete routine analytics: %w", err)
	}
	return nil
}

func scanRoutineAnalytics(row rowScanner) (*models.RoutineAnalytics, error) {
	var a models.RoutineAnalytics
	var lastCompletedAt sql.NullString

	err := row.Scan(
		&a.ID,
		&a.RoutineID,
		&a.TotalCompletions,
		&a.CompletionRate,
		&a.AvgDurationMinutes,
		&a.TotalVolume,
		&a.BestVolume,
		&lastCompletedAt,
		&a.CreatedAt,
		&a.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	a.LastCompletedAt = stringValue(lastCompletedAt)
	return &a, nil
}
