// ABOUTME: Food library and FoodLog persistence for the SQLite backend.
// ABOUTME: Serving size and micronutrients serialize to JSON TEXT columns.
package sqlite

import (
	"database/sql"
	"fmt"

	"github.com/harperreed/fittrack/internal/models"
)

const foodColumns = `id, name, brand, barcode, calories, protein, carbs, fat,
	fiber, sugar, sodium, serving_size, micronutrients, created_at, updated_at`

const foodLogColumns = `id, food_id, user_id, date, meal_type, servings,
	calories, protein, carbs, fat, created_at, updated_at`

// GetFoods retrieves all foods, most recently created first.
func (s *Store) GetFoods() ([]*models.Food, error) {
	db, err := s.conn()
	if err != nil {
		return nil, err
	}

	rows, err := db.Query(fmt.Sprintf(
		"SELECT %s FROM foods ORDER BY created_at DESC", foodColumns))
	if err != nil {
		return nil, fmt.Errorf("list foods: %w", err)
	}
	defer rows.Close()

	return scanFoods(rows)
}

// GetFood retrieves a food by id, or nil when absent.
func (s *Store) GetFood(id string) (*models.Food, error) {
	db, err := s.conn()
	if err != nil {
		return nil, err
	}

	row := db.QueryRow(fmt.Sprintf(
		"SELECT %s FROM foods WHERE id = ?", foodColumns), id)
	f, err := scanFood(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get food: %w", err)
	}
	return f, nil
}

// SaveFood upserts a food keyed by id and returns the id.
func (s *Store) SaveFood(f *models.Food) (string, error) {
	db, err := s.conn()
	if err != nil {
		return "", err
	}

	row, err := foodRow(f)
	if err != nil {
		return "", err
	}

	_, err = db.Exec(`
		INSERT INTO foods (id, name, brand, barcode, calories, protein, carbs, fat,
			fiber, sugar, sodium, serving_size, micronutrients, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			name = excluded.name,
			brand = excluded.brand,
			barcode = excluded.barcode,
			calories = excluded.calories,
			protein = excluded.protein,
			carbs = excluded.carbs,
			fat = excluded.fat,
			fiber = excluded.fiber,
			sugar = excluded.sugar,
			sodium = excluded.sodium,
			serving_size = excluded.serving_size,
			micronutrients = excluded.micronutrients,
			created_at = excluded.created_at,
			updated_at = excluded.updated_at`,
		row...,
	)
	if err != nil {
		return "", fmt.Errorf("save food: %w", err)
	}
	return f.ID, nil
}

// DeleteFood removes a food by id.
func (s *Store) DeleteFood(id string) error {
	db, err := s.conn()
	if err != nil {
		return err
	}
	if _, err := db.Exec("DELETE FROM foods WHERE id = ?", id); err != nil {
		return fmt.Errorf("delete food: %w", err)
	}
	return nil
}

// SearchFoodsByName performs a case-insensitive substring match through
// the shared predicate; the query string carries no pattern syntax.
func (s *Store) SearchFoodsByName(query string) ([]*models.Food, error) {
	db, err := s.conn()
	if err != nil {
		return nil, err
	}

	rows, err := db.Query(fmt.Sprintf(`
		SELECT %s FROM foods
		WHERE name_matches(name, ?)
		ORDER BY name`, foodColumns), query)
	if err != nil {
		return nil, fmt.Errorf("search foods: %w", err)
	}
	defer rows.Close()

	return scanFoods(rows)
}

// BulkInsertFoods loads reference foods with insert-or-ignore semantics.
func (s *Store) BulkInsertFoods(list []models.Food) error {
	rows := make([][]any, 0, len(list))
	for i := range list {
		row, err := foodRow(&list[i])
		if err != nil {
			return err
		}
		rows = append(rows, row)
	}
	return s.bulkInsert("foods",
		[]string{"id", "name", "brand", "barcode", "calories", "protein", "carbs",
			"fat", "fiber", "sugar", "sodium", "serving_size", "micronutrients",
			"created_at", "updated_at"},
		rows)
}

// ClearFoods removes every food library row.
func (s *Store) ClearFoods() error {
	return s.clearTable("foods")
}

// GetFoodLogs retrieves all food logs, most recently created first.
func (s *Store) GetFoodLogs() ([]*models.FoodLog, error) {
	db, err := s.conn()
	if err != nil {
		return nil, err
	}

	rows, err := db.Query(fmt.Sprintf(
		"SELECT %s FROM food_logs ORDER BY created_at DESC", foodLogColumns))
	if err != nil {
		return nil, fmt.Errorf("list food logs: %w", err)
	}
	defer rows.Close()

	return scanFoodLogs(rows)
}

// GetFoodLog retrieves a food log by id, or nil when absent.
func (s *Store) GetFoodLog(id string) (*models.FoodLog, error) {
	db, err := s.conn()
	if err != nil {
		return nil, err
	}

	row := db.QueryRow(fmt.Sprintf(
		"SELECT %s FROM food_logs WHERE id = ?", foodLogColumns), id)
	l, err := scanFoodLog(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get food log: %w", err)
	}
	return l, nil
}

// SaveFoodLog upserts a food log keyed by id and returns the id.
func (s *Store) SaveFoodLog(l *models.FoodLog) (string, error) {
	db, err := s.conn()
	if err != nil {
		return "", err
	}

	_, err = db.Exec(`
		INSERT INTO food_logs (id, food_id, user_id, date, meal_type, servings,
			calories, protein, carbs, fat, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			food_id = excluded.food_id,
			user_id = excluded.user_id,
			date = excluded.date,
			meal_type = excluded.meal_type,
			servings = excluded.servings,
			calories = excluded.calories,
			protein = excluded.protein,
			carbs = excluded.carbs,
			fat = excluded.fat,
			created_at = excluded.created_at,
			updated_at = excluded.updated_at`,
		l.ID,
		l.FoodID,
		l.UserID,
		l.Date,
		nullIfEmpty(l.MealType),
		l.Servings,
		l.Calories,
		l.Protein,
		l.Carbs,
		l.Fat,
		normalizeTime(l.CreatedAt),
		normalizeTime(l.UpdatedAt),
	)
	if err != nil {
		return "", fmt.Errorf("save food log: %w", err)
	}
	return l.ID, nil
}

// DeleteFoodLog removes a food log by id.
func (s *Store) DeleteFoodLog(id string) error {
	db, err := s.conn()
	if err != nil {
		return err
	}
	if _, err := db.Exec("DELETE FROM food_logs WHERE id = ?", id); err != nil {
		return fmt.Errorf("delete food log: %w", err)
	}
	return nil
}

// GetFoodLogsByDate retrieves logs for one calendar date.
func (s *Store) GetFoodLogsByDate(date string) ([]*models.FoodLog, error) {
	db, err := s.conn()
	if err != nil {
		return nil, err
	}

	rows, err := db.Query(fmt.Sprintf(
		"SELECT %s FROM food_logs WHERE date = ? ORDER BY created_at", foodLogColumns), date)
	if err != nil {
		return nil, fmt.Errorf("list food logs by date: %w", err)
	}
	defer rows.Close()

	return scanFoodLogs(rows)
}

// GetFoodLogsByDateRange retrieves logs with date in [start, end].
func (s *Store) GetFoodLogsByDateRange(start, end string) ([]*models.FoodLog, error) {
	db, err := s.conn()
	if err != nil {
		return nil, err
	}

	rows, err := db.Query(fmt.Sprintf(
		"SELECT %s FROM food_logs WHERE date >= ? AND date <= ? ORDER BY date, created_at",
		foodLogColumns), start, end)
	if err != nil {
		return nil, fmt.Errorf("list food logs by date range: %w", err)
	}
	defer rows.Close()

	return scanFoodLogs(rows)
}

func foodRow(f *models.Food) ([]any, error) {
	servingSize, err := jsonText(f.ServingSize)
	if err != nil {
		return nil, fmt.Errorf("serialize serving size: %w", err)
	}
	var micronutrients any
	if f.Micronutrients != nil {
		micronutrients, err = jsonText(f.Micronutrients)
		if err != nil {
			return nil, fmt.Errorf("serialize micronutrients: %w", err)
		}
	}
	return []any{
		f.ID,
		f.Name,
		nullIfEmpty(f.Brand),
		nullIfEmpty(f.Barcode),
		f.Calories,
		f.Protein,
		f.Carbs,
		f.Fat,
		f.Fiber,
		f.Sugar,
		f.Sodium,
		servingSize,
		micronutrients,
		normalizeTime(f.CreatedAt),
		normalizeTime(f.UpdatedAt),
	}, nil
}

func scanFood(row rowScanner) (*models.Food, error) {
	var f models.Food
	var brand, barcode, servingSize, micronutrients sql.NullString

	err := row.Scan(
		&f.ID,
		&f.Name,
		&brand,
		&barcode,
		&f.Calories,
		&f.Protein,
		&f.Carbs,
		&f.Fat,
		&f.Fiber,
		&f.Sugar,
		&f.Sodium,
		&servingSize,
		&micronutrients,
		&f.CreatedAt,
		&f.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	f.Brand = stringValue(brand)
	f.Barcode = stringValue(barcode)
	f.ServingSize = unmarshalColumn(servingSize, models.ServingSize{})
	f.Micronutrients = unmarshalColumn[map[string]float64](micronutrients, nil)

	return &f, nil
}

func scanFoods(rows *sql.Rows) ([]*models.Food, error) {
	var foods []*models.Food
	for rows.Next() {
		f, err := scanFood(rows)
		if err != nil {
			return nil, fmt.Errorf("scan food: %w", err)
		}
		foods = append(foods, f)
	}
	return foods, rows.Err()
}

func scanFoodLog(row rowScanner) (*models.FoodLog, error) {
	var l models.FoodLog
	var mealType sql.NullString

	err := row.Scan(
		&l.ID,
		&l.FoodID,
		&l.UserID,
		&l.Date,
		&mealType,
		&l.Servings,
		&l.Calories,
		&l.Protein,
		&l.Carbs,
		&l.Fat,
		&l.CreatedAt,
		&l.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	l.MealType = stringValue(mealType)
	return &l, nil
}

func scanFoodLogs(rows *sql.Rows) ([]*models.FoodLog, error) {
	var logs []*models.FoodLog
	for rows.Next() {
		l, err := scanFoodLog(rows)
		if err != nil {
			return nil, fmt.Errorf("scan food log: %w", err)
		}
		logs = append(logs, l)
	}
	return logs, rows.Err()
}
