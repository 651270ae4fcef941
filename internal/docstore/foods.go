// ABOUTME: Food library and food log documents for the BadgerDB backend.
// ABOUTME: Date lookups filter in memory; search matches the relational predicate.
package docstore

import (
	"sort"

	"github.com/harperreed/fittrack/internal/models"
)

const (
	foodStore    = "foods"
	foodLogStore = "food_logs"
)

// GetFoods retrieves the food library, most recently created first.
func (s *Store) GetFoods() ([]*models.Food, error) {
	foods, err := listDocs[models.Food](s, foodStore)
	if err != nil {
		return nil, err
	}
	sort.Slice(foods, func(i, j int) bool {
		return foods[i].CreatedAt > foods[j].CreatedAt
	})
	return foods, nil
}

// GetFood retrieves a food by id, or nil when absent.
func (s *Store) GetFood(id string) (*models.Food, error) {
	return getDoc[models.Food](s, foodStore, id)
}

// SaveFood upserts a food keyed by id and returns the id.
func (s *Store) SaveFood(f *models.Food) (string, error) {
	if err := s.putDoc(foodStore, f.ID, f); err != nil {
		return "", err
	}
	return f.ID, nil
}

// DeleteFood removes a food by id.
func (s *Store) DeleteFood(id string) error {
	return s.deleteDoc(foodStore, id)
}

// SearchFoodsByName performs a case-insensitive substring match, results
// ordered by name.
func (s *Store) SearchFoodsByName(query string) ([]*models.Food, error) {
	foods, err := listDocs[models.Food](s, foodStore)
	if err != nil {
		return nil, err
	}

	var matched []*models.Food
	for _, f := range foods {
		if matchesName(f.Name, query) {
			matched = append(matched, f)
		}
	}
	sort.Slice(matched, func(i, j int) bool {
		return matched[i].Name < matched[j].Name
	})
	return matched, nil
}

// BulkInsertFoods loads reference foods with insert-or-ignore semantics.
func (s *Store) BulkInsertFoods(list []models.Food) error {
	keys := make([]string, len(list))
	docs := make([]any, len(list))
	for i := range list {
		keys[i] = list[i].ID
		docs[i] = &list[i]
	}
	return s.bulkPut(foodStore, keys, docs)
}

// ClearFoods removes every food library document.
func (s *Store) ClearFoods() error {
	return s.clearStore(foodStore)
}

// GetFoodLogs retrieves all food logs, most recently created first.
func (s *Store) GetFoodLogs() ([]*models.FoodLog, error) {
	logs, err := listDocs[models.FoodLog](s, foodLogStore)
	if err != nil {
		return nil, err
	}
	sort.Slice(logs, func(i, j int) bool {
		return logs[i].CreatedAt > logs[j].CreatedAt
	})
	return logs, nil
}

// GetFoodLog retrieves a food log by id, or nil when absent.
func (s *Store) GetFoodLog(id string) (*models.FoodLog, error) {
	return getDoc[models.FoodLog](s, foodLogStore, id)
}

// SaveFoodLog upserts a food log keyed by id and returns the id.
func (s *Store) SaveFoodLog(l *models.FoodLog) (string, error) {
	if err := s.putDoc(foodLogStore, l.ID, l); err != nil {
		return "", err
	}
	return l.ID, nil
}

// DeleteFoodLog removes a food log by id.
func (s *Store) DeleteFoodLog(id string) error {
	return s.deleteDoc(foodLogStore, id)
}

// GetFoodLogsByDate retrieves the logs for one calendar day.
func (s *Store) GetFoodLogsByDate(date string) ([]*models.FoodLog, error) {
	return s.GetFoodLogsByDateRange(date, date)
}

// GetFoodLogsByDateRange retrieves logs with date in [start, end], oldest
// date first.
func (s *Store) GetFoodLogsByDateRange(start, end string) ([]*models.FoodLog, error) {
	logs, err := listDocs[models.FoodLog](s, foodLogStore)
	if err != nil {
		return nil, err
	}

	var matched []*models.FoodLog
	for _, l := range logs {
		if l.Date >= start && l.Date <= end {
			matched = append(matched, l)
		}
	}
	sort.Slice(matched, func(i, j int) bool {
		if matched[i].Date != matched[j].Date {
			return matched[i].Date < matched[j].Date
		}
		return matched[i].CreatedAt < matched[j].CreatedAt
	})
	return matched, nil
}
