// ABOUTME: Food and FoodLog models for nutrition tracking.
// ABOUTME: Foods carry per-serving macros; logs snapshot consumed amounts by date.
package models

import (
	"time"

	"github.com/google/uuid"
)

// ServingSize is the reference serving a food's macros are expressed in.
type ServingSize struct {
	Amount float64 `json:"amount"`
	Unit   string  `json:"unit"`
}

// Food is a nutrition-library entry. ServingSize and Micronutrients are
// structured fields; Micronutrients is optional and keyed by nutrient name.
type Food struct {
	ID             string             `json:"id"`
	Name           string             `json:"name"`
	Brand          string             `json:"brand,omitempty"`
	Barcode        string             `json:"barcode,omitempty"`
	Calories       float64            `json:"calories"`
	Protein        float64            `json:"protein"`
	Carbs          float64            `json:"carbs"`
	Fat            float64            `json:"fat"`
	Fiber          float64            `json:"fiber,omitempty"`
	Sugar          float64            `json:"sugar,omitempty"`
	Sodium         float64            `json:"sodium,omitempty"`
	ServingSize    ServingSize        `json:"servingSize"`
	Micronutrients map[string]float64 `json:"micronutrients,omitempty"`
	CreatedAt      string             `json:"createdAt"`
	UpdatedAt      string             `json:"updatedAt"`
}

// NewFood creates a food with a generated id and current timestamps.
func NewFood(name string) *Food {
	now := time.Now().UTC().Format(time.RFC3339)
	return &Food{
		ID:        uuid.New().String(),
		Name:      name,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// FoodLog records a consumed food on a calendar date. Macro fields are a
// snapshot at logging time so later food edits don't rewrite history.
type FoodLog struct {
	ID        string  `json:"id"`
	FoodID    string  `json:"foodId"`
	UserID    string  `json:"userId"`
	Date      string  `json:"date"` // YYYY-MM-DD
	MealType  string  `json:"mealType,omitempty"`
	Servings  float64 `json:"servings"`
	Calories  float64 `json:"calories"`
	Protein   float64 `json:"protein"`
	Carbs     float64 `json:"carbs"`
	Fat       float64 `json:"fat"`
	CreatedAt string  `json:"createdAt"`
	UpdatedAt string  `json:"updatedAt"`
}

// NewFoodLog creates a log entry for a food on the given date.
func NewFoodLog(foodID, userID, date string) *FoodLog {
	now := time.Now().UTC().Format(time.RFC3339)
	return &FoodLog{
		ID:        uuid.New().String(),
		FoodID:    foodID,
		UserID:    userID,
		Date:      date,
		Servings:  1,
		CreatedAt: now,
		UpdatedAt: now,
	}
}
