// ABOUTME: NutritionTarget, NutritionAnalytic and CoachingSetting persistence.
// ABOUTME: The active target is the single row per user with an empty end_date.
package sqlite

import (
	"database/sql"
	"fmt"

	"github.com/harperreed/fittrack/internal/models"
)

const targetColumns = `id, user_id, calories, protein, carbs, fat,
	start_date, end_date, created_at, updated_at`

const analyticColumns = `id, user_id, date, calories, protein, carbs, fat,
	meals_logged, created_at, updated_at`

const coachingColumns = `id, user_id, goal, activity_level, weekly_rate_kg,
	enabled, created_at, updated_at`

// GetNutritionTargets retrieves all of a user's targets, newest first.
func (s *Store) GetNutritionTargets(userID string) ([]*models.NutritionTarget, error) {
	db, err := s.conn()
	if err != nil {
		return nil, err
	}

	rows, err := db.Query(fmt.Sprintf(
		"SELECT %s FROM nutrition_targets WHERE user_id = ? ORDER BY created_at DESC",
		targetColumns), userID)
	if err != nil {
		return nil, fmt.Errorf("list nutrition targets: %w", err)
	}
	defer rows.Close()

	var targets []*models.NutritionTarget
	for rows.Next() {
		t, err := scanNutritionTarget(rows)
		if err != nil {
			return nil, fmt.Errorf("scan nutrition target: %w", err)
		}
		targets = append(targets, t)
	}
	return targets, rows.Err()
}

// GetNutritionTarget retrieves a target by id, or nil when absent.
func (s *Store) GetNutritionTarget(id string) (*models.NutritionTarget, error) {
	db, err := s.conn()
	if err != nil {
		return nil, err
	}

	row := db.QueryRow(fmt.Sprintf(
		"SELECT %s FROM nutrition_targets WHERE id = ?", targetColumns), id)
	t, err := scanNutritionTarget(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get nutrition target: %w", err)
	}
	return t, nil
}

// GetActiveNutritionTarget returns the user's target with no end date, or
// nil when none is active.
func (s *Store) GetActiveNutritionTarget(userID string) (*models.NutritionTarget, error) {
	db, err := s.conn()
	if err != nil {
		return nil, err
	}

	row := db.QueryRow(fmt.Sprintf(`
		SELECT %s FROM nutrition_targets
		WHERE user_id = ? AND (end_date IS NULL OR end_date = '')
		ORDER BY created_at DESC
		LIMIT 1`, targetColumns), userID)
	t, err := scanNutritionTarget(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get active nutrition target: %w", err)
	}
	return t, nil
}

// SaveNutritionTarget upserts a target keyed by id and returns the id.
func (s *Store) SaveNutritionTarget(t *models.NutritionTarget) (string, error) {
	db, err := s.conn()
	if err != nil {
		return "", err
	}

	_, err = db.Exec(`
		INSERT INTO nutrition_targets (id, user_id, calories, protein, carbs, fat,
			start_date, end_date, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			user_id = excluded.user_id,
			calories = excluded.calories,
			protein = excluded.protein,
			carbs = excluded.carbs,
			fat = excluded.fat,
			start_date = excluded.start_date,
			end_date = excluded.end_date,
			created_at = excluded.created_at,
			updated_at = excluded.updated_at`,
		t.ID,
		t.UserID,
		t.Calories,
		t.Protein,
		t.Carbs,
		t.Fat,
		nullIfEmpty(t.StartDate),
		nullIfEmpty(t.EndDate),
		normalizeTime(t.CreatedAt),
		normalizeTime(t.UpdatedAt),
	)
	if err != nil {
		return "", fmt.Errorf("save nutrition target: %w", err)
	}
	return t.ID, nil
}

// DeleteNutritionTarget removes a target by id.
func (s *Store) DeleteNutritionTarget(id string) error {
	db, err := s.conn()
	if err != nil {
		return err
	}
	if _, err := db.Exec("DELETE FROM nutrition_targets WHERE id = ?", id); err != nil {
		return fmt.Errorf("delete nutrition target: %w", err)
	}
	return nil
}

// GetNutritionAnalytics retrieves a user's daily rollups, newest date first.
func (s *Store) GetNutritionAnalytics(userID string) ([]*models.NutritionAnalytic, error) {
	db, err := s.conn()
	if err != nil {
		return nil, err
	}

	rows, err := db.Query(fmt.Sprintf(
		"SELECT %s FROM nutrition_analytics WHERE user_id = ? ORDER BY date DESC",
		analyticColumns), userID)
	if err != nil {
		return nil, fmt.Errorf("list nutrition analytics: %w", err)
	}
	defer rows.Close()

	var list []*models.NutritionAnalytic
	for rows.Next() {
		a, err := scanNutritionAnalytic(rows)
		if err != nil {
			return nil, fmt.Errorf("scan nutrition analytic: %w", err)
		}
		list = append(list, a)
	}
	return list, rows.Err()
}

// GetNutritionAnalyticByDate retrieves one day's rollup, or nil when absent.
func (s *Store) GetNutritionAnalyticByDate(userID, date string) (*models.NutritionAnalytic, error) {
	db, err := s.conn()
	if err != nil {
		return nil, err
	}

	row := db.QueryRow(fmt.Sprintf(
		"SELECT %s FROM nutrition_analytics WHERE user_id = ? AND date = ? LIMIT 1",
		analyticColumns), userID, date)
	a, err := scanNutritionAnalytic(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get nutrition analytic: %w", err)
	}
	return a, nil
}

// SaveNutritionAnalytic upserts a daily rollup keyed by id.
func (s *Store) SaveNutritionAnalytic(a *models.NutritionAnalytic) (string, error) {
	db, err := s.conn()
	if err != nil {
		return "", err
	}

	_, err = db.Exec(`
		INSERT INTO nutrition_analytics (id, user_id, date, calories, protein, carbs,
			fat, meals_logged, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			user_id = excluded.user_id,
			date = excluded.date,
			calories = excluded.calories,
			protein = excluded.protein,
			carbs = excluded.carbs,
			fat = excluded.fat,
			meals_logged = excluded.meals_logged,
			created_at = excluded.created_at,
			updated_at = excluded.updated_at`,
		a.ID,
		a.UserID,
		a.Date,
		a.Calories,
		a.Protein,
		a.Carbs,
		a.Fat,
		a.MealsLogged,
		normalizeTime(a.CreatedAt),
		normalizeTime(a.UpdatedAt),
	)
	if err != nil {
		return "", fmt.Errorf("save nutrition analytic: %w", err)
	}
	return a.ID, nil
}

// DeleteNutritionAnalytic removes a daily rollup by id.
func (s *Store) DeleteNutritionAnalytic(id string) error {
	db, err := s.conn()
	if err != nil {
		return err
	}
	if _, err := db.Exec("DELETE FROM nutrition_analytics WHERE id = ?", id); err != nil {
		return fmt.Errorf("delete nutrition analytic: %w", err)
	}
	return nil
}

// GetCoachingSetting retrieves a user's coaching settings, or nil when unset.
func (s *Store) GetCoachingSetting(userID string) (*models.CoachingSetting, error) {
	db, err := s.conn()
	if err != nil {
		return nil, err
	}

	row := db.QueryRow(fmt.Sprintf(
		"SELECT %s FROM coaching_settings WHERE user_id = ? LIMIT 1",
		coachingColumns), userID)
	c, err := scanCoachingSetting(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get coaching setting: %w", err)
	}
	return c, nil
}

// SaveCoachingSetting upserts coaching settings keyed by id.
func (s *Store) SaveCoachingSetting(c *models.CoachingSetting) (string, error) {
	db, err := s.conn()
	if err != nil {
		return "", err
	}

	_, err = db.Exec(`
		INSERT INTO coaching_settings (id, user_id, goal, activity_level,
			weekly_rate_kg, enabled, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			user_id = excluded.user_id,
			goal = excluded.goal,
			activity_level = excluded.activity_level,
			weekly_rate_kg = excluded.weekly_rate_kg,
			enabled = excluded.enabled,
			created_at = excluded.created_at,
			updated_at = excluded.updated_at`,
		c.ID,
		c.UserID,
		nullIfEmpty(c.Goal),
		nullIfEmpty(c.ActivityLevel),
		c.WeeklyRateKg,
		boolToInt(c.Enabled),
		normalizeTime(c.CreatedAt),
		normalizeTime(c.UpdatedAt),
	)
	if err != nil {
		return "", fmt.Errorf("save coaching setting: %w", err)
	}
	return c.ID, nil
}

// DeleteCoachingSetting removes a coaching setting by id.
func (s *Store) DeleteCoachingSetting(id string) error {
	db, err := s.conn()
	if err != nil {
		return err
	}
	if _, err := db.Exec("DELETE FROM coaching_settings WHERE id = ?", id); err != nil {
		return fmt.Errorf("delete coaching setting: %w", err)
	}
	return nil
}

func scanNutritionTarget(row rowScanner) (*models.NutritionTarget, error) {
	var t models.NutritionTarget
	var startDate, endDate sql.NullString

	err := row.Scan(
		&t.ID,
		&t.UserID,
		&t.Calories,
		&t.Protein,
		&t.Carbs,
		&t.Fat,
		&startDate,
		&endDate,
		&t.CreatedAt,
		&t.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	t.StartDate = stringValue(startDate)
	t.EndDate = stringValue(endDate)
	return &t, nil
}

func scanNutritionAnalytic(row rowScanner) (*models.NutritionAnalytic, error) {
	var a models.NutritionAnalytic
	err := row.Scan(
		&a.ID,
		&a.UserID,
		&a.Date,
		&a.Calories,
		&a.Protein,
		&a.Carbs,
		&a.Fat,
		&a.MealsLogged,
		&a.CreatedAt,
		&a.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &a, nil
}

func scanCoachingSetting(row rowScanner) (*models.CoachingSetting, error) {
	var c models.CoachingSetting
	var goal, activityLevel sql.NullString
	var enabled sql.NullInt64

	err := row.Scan(
		&c.ID,
		&c.UserID,
		&goal,
		&activityLevel,
		&c.WeeklyRateKg,
		&enabled,
		&c.CreatedAt,
		&c.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	c.Goal = stringValue(goal)
	c.ActivityLevel = stringValue(activityLevel)
	c.Enabled = enabled.Valid && enabled.Int64 != 0
	return &c, nil
}
