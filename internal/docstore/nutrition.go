// ABOUTME: NutritionTarget, NutritionAnalytic and CoachingSetting documents.
// ABOUTME: The active target is the newest document per user with an empty end date.
package docstore

import (
	"sort"

	"github.com/harperreed/fittrack/internal/models"
)

const (
	targetStore   = "nutrition_targets"
	analyticStore = "nutrition_analytics"
	coachingStore = "coaching_settings"
)

// GetNutritionTargets retrieves all of a user's targets, newest first.
func (s *Store) GetNutritionTargets(userID string) ([]*models.NutritionTarget, error) {
	targets, err := listDocs[models.NutritionTarget](s, targetStore)
	if err != nil {
		return nil, err
	}

	var matched []*models.NutritionTarget
	for _, t := range targets {
		if t.UserID == userID {
			matched = append(matched, t)
		}
	}
	sort.Slice(matched, func(i, j int) bool {
		return matched[i].CreatedAt > matched[j].CreatedAt
	})
	return matched, nil
}

// GetNutritionTarget retrieves a target by id, or nil when absent.
func (s *Store) GetNutritionTarget(id string) (*models.NutritionTarget, error) {
	return getDoc[models.NutritionTarget](s, targetStore, id)
}

// GetActiveNutritionTarget returns the user's target with no end date, or
// nil when none is active.
func (s *Store) GetActiveNutritionTarget(userID string) (*models.NutritionTarget, error) {
	targets, err := s.GetNutritionTargets(userID)
	if err != nil {
		return nil, err
	}
	for _, t := range targets {
		if t.IsActive() {
			return t, nil
		}
	}
	return nil, nil
}

// SaveNutritionTarget upserts a target keyed by id and returns the id.
func (s *Store) SaveNutritionTarget(t *models.NutritionTarget) (string, error) {
	if err := s.putDoc(targetStore, t.ID, t); err != nil {
		return "", err
	}
	return t.ID, nil
}

// DeleteNutritionTarget removes a target by id.
func (s *Store) DeleteNutritionTarget(id string) error {
	return s.deleteDoc(targetStore, id)
}

// GetNutritionAnalytics retrieves a user's daily rollups, newest date first.
func (s *Store) GetNutritionAnalytics(userID string) ([]*models.NutritionAnalytic, error) {
	analytics, err := listDocs[models.NutritionAnalytic](s, analyticStore)
	if err != nil {
		return nil, err
	}

	var matched []*models.NutritionAnalytic
	for _, a := range analytics {
		if a.UserID == userID {
			matched = append(matched, a)
		}
	}
	sort.Slice(matched, func(i, j int) bool {
		return matched[i].Date > matched[j].Date
	})
	return matched, nil
}

// GetNutritionAnalyticByDate retrieves one day's rollup, or nil when absent.
func (s *Store) GetNutritionAnalyticByDate(userID, date string) (*models.NutritionAnalytic, error) {
	analytics, err := listDocs[models.NutritionAnalytic](s, analyticStore)
	if err != nil {
		return nil, err
	}
	for _, a := range analytics {
		if a.UserID == userID && a.Date == date {
			return a, nil
		}
	}
	return nil, nil
}

// SaveNutritionAnalytic upserts a daily rollup keyed by id.
func (s *Store) SaveNutritionAnalytic(a *models.NutritionAnalytic) (string, error) {
	if err := s.putDoc(analyticStore, a.ID, a); err != nil {
		return "", err
	}
	return a.ID, nil
}

// DeleteNutritionAnalytic removes a daily rollup by id.
func (s *Store) DeleteNutritionAnalytic(id string) error {
	return s.deleteDoc(analyticStore, id)
}

// GetCoachingSetting retrieves a user's coaching settings, or nil when unset.
func (s *Store) GetCoachingSetting(userID string) (*models.CoachingSetting, error) {
	settings, err := listDocs[models.CoachingSetting](s, coachingStore)
	if err != nil {
		return nil, err
	}
	for _, c := range settings {
		if c.UserID == userID {
			return c, nil
		}
	}
	return nil, nil
}

// SaveCoachingSetting upserts coaching settings keyed by id.
func (s *Store) SaveCoachingSetting(c *models.CoachingSetting) (string, error) {
	if err := s.putDoc(coachingStore, c.ID, c); err != nil {
		return "", err
	}
	return c.ID, nil
}

// DeleteCoachingSetting removes a coaching setting by id.
func (s *Store) DeleteCoachingSetting(id string) error {
	return s.deleteDoc(coachingStore, id)
}
