// ABOUTME: Workout documents for the BadgerDB backend.
// ABOUTME: Non-keyed predicates (active workout, date range) filter in memory.
package docstore

import (
	"sort"

	"github.com/harperreed/fittrack/internal/models"
)

const workoutStore = "workouts"

// GetWorkouts retrieves all workouts, most recently created first.
func (s *Store) GetWorkouts() ([]*models.Workout, error) {
	workouts, err := listDocs[models.Workout](s, workoutStore)
	if err != nil {
		return nil, err
	}
	sort.Slice(workouts, func(i, j int) bool {
		return workouts[i].CreatedAt > workouts[j].CreatedAt
	})
	return workouts, nil
}

// GetWorkout retrieves a workout by id, or nil when absent.
func (s *Store) GetWorkout(id string) (*models.Workout, error) {
	return getDoc[models.Workout](s, workoutStore, id)
}

// SaveWorkout upserts a workout keyed by id and returns the id.
func (s *Store) SaveWorkout(w *models.Workout) (string, error) {
	if err := s.putDoc(workoutStore, w.ID, w); err != nil {
		return "", err
	}
	return w.ID, nil
}

// DeleteWorkout removes a workout by id. Deleting a missing id is not an error.
func (s *Store) DeleteWorkout(id string) error {
	return s.deleteDoc(workoutStore, id)
}

// GetActiveWorkout returns the single in-progress workout: no end time and
// not completed, newest created first when more than one matches.
func (s *Store) GetActiveWorkout() (*models.Workout, error) {
	workouts, err := listDocs[models.Workout](s, workoutStore)
	if err != nil {
		return nil, err
	}

	var active *models.Workout
	for _, w := range workouts {
		if !w.IsActive() {
			continue
		}
		if active == nil || w.CreatedAt > active.CreatedAt {
			active = w
		}
	}
	return active, nil
}

// GetWorkoutsByDateRange retrieves workouts whose start time falls within
// [start, end], most recent first.
func (s *Store) GetWorkoutsByDateRange(start, end string) ([]*models.Workout, error) {
	workouts, err := listDocs[models.Workout](s, workoutStore)
	if err != nil {
		return nil, err
	}

	var matched []*models.Workout
	for _, w := range workouts {
		if w.StartTime >= start && w.StartTime <= end {
			matched = append(matched, w)
		}
	}
	sort.Slice(matched, func(i, j int) bool {
		return matched[i].StartTime > matched[j].StartTime
	})
	return matched, nil
}
