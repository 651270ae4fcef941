// ABOUTME: NutritionTarget, NutritionAnalytic and CoachingSetting models.
// ABOUTME: A target with an empty endDate is the single active target for its user.
package models

import (
	"time"

	"github.com/google/uuid"
)

// NutritionTarget is a time-bounded macro target. EndDate empty means the
// target is currently active; closing a target sets its EndDate.
type NutritionTarget struct {
	ID        string  `json:"id"`
	UserID    string  `json:"userId"`
	Calories  float64 `json:"calories"`
	Protein   float64 `json:"protein"`
	Carbs     float64 `json:"carbs"`
	Fat       float64 `json:"fat"`
	StartDate string  `json:"startDate"`
	EndDate   string  `json:"endDate,omitempty"`
	CreatedAt string  `json:"createdAt"`
	UpdatedAt string  `json:"updatedAt"`
}

// IsActive reports whether the target is the currently-effective one.
func (t *NutritionTarget) IsActive() bool {
	return t.EndDate == ""
}

// NewNutritionTarget creates an active target starting today.
func NewNutritionTarget(userID string) *NutritionTarget {
	now := time.Now().UTC()
	return &NutritionTarget{
		ID:        uuid.New().String(),
		UserID:    userID,
		StartDate: now.Format("2006-01-02"),
		CreatedAt: now.Format(time.RFC3339),
		UpdatedAt: now.Format(time.RFC3339),
	}
}

// NutritionAnalytic is a per-day rollup of logged nutrition for a user.
type NutritionAnalytic struct {
	ID          string  `json:"id"`
	UserID      string  `json:"userId"`
	Date        string  `json:"date"` // YYYY-MM-DD
	Calories    float64 `json:"calories"`
	Protein     float64 `json:"protein"`
	Carbs       float64 `json:"carbs"`
	Fat         float64 `json:"fat"`
	MealsLogged int     `json:"mealsLogged"`
	CreatedAt   string  `json:"createdAt"`
	UpdatedAt   string  `json:"updatedAt"`
}

// NewNutritionAnalytic creates an empty rollup for the given user and day.
func NewNutritionAnalytic(userID, date string) *NutritionAnalytic {
	now := time.Now().UTC().Format(time.RFC3339)
	return &NutritionAnalytic{
		ID:        uuid.New().String(),
		UserID:    userID,
		Date:      date,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// CoachingSetting stores a user's coaching preferences.
type CoachingSetting struct {
	ID            string  `json:"id"`
	UserID        string  `json:"userId"`
	Goal          string  `json:"goal,omitempty"`
	ActivityLevel string  `json:"activityLevel,omitempty"`
	WeeklyRateKg  float64 `json:"weeklyRateKg,omitempty"`
	Enabled       bool    `json:"enabled"`
	CreatedAt     string  `json:"createdAt"`
	UpdatedAt     string  `json:"updatedAt"`
}
