// ABOUTME: Body measurement domain operations over the storage contract.
// ABOUTME: One metric per user per date; recording again on a date updates it.
package repository

import (
	"time"

	"github.com/harperreed/fittrack/internal/models"
	"github.com/harperreed/fittrack/internal/storage"
)

// BodyRepository wraps the storage contract with body tracking rules.
type BodyRepository struct {
	store storage.Store
}

// NewBodyRepository creates a body repository over a store.
func NewBodyRepository(store storage.Store) *BodyRepository {
	return &BodyRepository{store: store}
}

// RecordMetric upserts the user's measurement for a date. Recording twice
// on the same date updates the existing record instead of adding a second.
func (r *BodyRepository) RecordMetric(userID, date string, weightKg float64, bodyFatPercent, muscleMassKg *float64, notes string) (*models.BodyMetric, error) {
	existing, err := r.store.GetBodyMetricsByDateRange(userID, date, date)
	if err != nil {
		return nil, err
	}

	var m *models.BodyMetric
	if len(existing) > 0 {
		m = existing[0]
	} else {
		m = models.NewBodyMetric(userID, date)
	}

	m.WeightKg = weightKg
	if bodyFatPercent != nil {
		m.BodyFatPercent = bodyFatPercent
	}
	if muscleMassKg != nil {
		m.MuscleMassKg = muscleMassKg
	}
	if notes != "" {
		m.Notes = notes
	}
	m.UpdatedAt = time.Now().UTC().Format(time.RFC3339)

	if _, err := r.store.SaveBodyMetric(m); err != nil {
		return nil, err
	}
	return m, nil
}

// History returns the user's metrics between two dates, oldest first.
func (r *BodyRepository) History(userID, start, end string) ([]*models.BodyMetric, error) {
	return r.store.GetBodyMetricsByDateRange(userID, start, end)
}
