// ABOUTME: Nutrition domain operations: targets, food logging, daily rollups.
// ABOUTME: Replacing the active target closes the old one before creating the new one.
package repository

import (
	"fmt"
	"time"

	"github.com/harperreed/fittrack/internal/models"
	"github.com/harperreed/fittrack/internal/storage"
)

// NutritionRepository wraps the storage contract with nutrition rules.
type NutritionRepository struct {
	store storage.Store
}

// NewNutritionRepository creates a nutrition repository over a store.
func NewNutritionRepository(store storage.Store) *NutritionRepository {
	return &NutritionRepository{store: store}
}

// ReplaceActiveTarget closes the user's current target, then creates and
// returns the new active one. The close and the create are separate
// writes; a crash between them leaves no active target rather than two.
func (r *NutritionRepository) ReplaceActiveTarget(userID string, calories, protein, carbs, fat float64) (*models.NutritionTarget, error) {
	now := time.Now().UTC()
	current, err := r.store.GetActiveNutritionTarget(userID)
	if err != nil {
		return nil, err
	}
	if current != nil {
		current.EndDate = now.Format("2006-01-02")
		current.UpdatedAt = now.Format(time.RFC3339)
		if _, err := r.store.SaveNutritionTarget(current); err != nil {
			return nil, fmt.Errorf("close current target: %w", err)
		}
	}

	t := models.NewNutritionTarget(userID)
	t.Calories = calories
	t.Protein = protein
	t.Carbs = carbs
	t.Fat = fat
	if _, err := r.store.SaveNutritionTarget(t); err != nil {
		return nil, fmt.Errorf("save new target: %w", err)
	}
	return t, nil
}

// LogFood records a consumed food for a date, snapshotting the food's
// macros scaled by servings, then refreshes that day's rollup.
func (r *NutritionRepository) LogFood(userID, foodID, date, mealType string, servings float64) (*models.FoodLog, error) {
	food, err := r.store.GetFood(foodID)
	if err != nil {
		return nil, err
	}
	if food == nil {
		return nil, fmt.Errorf("log food %s: %w", foodID, ErrNotFound)
	}
	if servings <= 0 {
		servings = 1
	}

	l := models.NewFoodLog(foodID, userID, date)
	l.MealType = mealType
	l.Servings = servings
	l.Calories = food.Calories * servings
	l.Protein = food.Protein * servings
	l.Carbs = food.Carbs * servings
	l.Fat = food.Fat * servings

	if _, err := r.store.SaveFoodLog(l); err != nil {
		return nil, err
	}
	if _, err := r.RecomputeDay(userID, date); err != nil {
		return nil, fmt.Errorf("recompute daily rollup: %w", err)
	}
	return l, nil
}

// DeleteFoodLog removes a log entry and refreshes its day's rollup.
func (r *NutritionRepository) DeleteFoodLog(id string) error {
	l, err := r.store.GetFoodLog(id)
	if err != nil {
		return err
	}
	if l == nil {
		return nil
	}
	if err := r.store.DeleteFoodLog(id); err != nil {
		return err
	}
	_, err = r.RecomputeDay(l.UserID, l.Date)
	return err
}

// RecomputeDay rebuilds one day's nutrition rollup from that day's logs.
func (r *NutritionRepository) RecomputeDay(userID, date string) (*models.NutritionAnalytic, error) {
	logs, err := r.store.GetFoodLogsByDate(date)
	if err != nil {
		return nil, err
	}

	a, err := r.store.GetNutritionAnalyticByDate(userID, date)
	if err != nil {
		return nil, err
	}
	if a == nil {
		a = models.NewNutritionAnalytic(userID, date)
	}

	a.Calories, a.Protein, a.Carbs, a.Fat = 0, 0, 0, 0
	a.MealsLogged = 0
	for _, l := range logs {
		if l.UserID != userID {
			continue
		}
		a.Calories += l.Calories
		a.Protein += l.Protein
		a.Carbs += l.Carbs
		a.Fat += l.Fat
		a.MealsLogged++
	}
	a.UpdatedAt = time.Now().UTC().Format(time.RFC3339)

	if _, err := r.store.SaveNutritionAnalytic(a); err != nil {
		return nil, err
	}
	return a, nil
}
