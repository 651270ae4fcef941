// ABOUTME: Workout domain operations over the storage contract.
// ABOUTME: Completing a workout recomputes its routine's derived analytics.
package repository

import (
	"errors"
	"fmt"
	"time"

	"github.com/harperreed/fittrack/internal/models"
	"github.com/harperreed/fittrack/internal/storage"
)

// ErrWorkoutInProgress is returned when starting a workout while another
// one is still active.
var ErrWorkoutInProgress = errors.New("a workout is already in progress")

// ErrNotFound is returned by repository operations that require an
// existing record.
var ErrNotFound = errors.New("record not found")

// WorkoutRepository wraps the storage contract with workout lifecycle
// rules. It works identically over either backend.
type WorkoutRepository struct {
	store storage.Store
}

// NewWorkoutRepository creates a workout repository over a store.
func NewWorkoutRepository(store storage.Store) *WorkoutRepository {
	return &WorkoutRepository{store: store}
}

// Start begins a new workout session. Only one session may be active at
// a time.
func (r *WorkoutRepository) Start(name string, workoutType models.WorkoutType, routineID string) (*models.Workout, error) {
	active, err := r.store.GetActiveWorkout()
	if err != nil {
		return nil, err
	}
	if active != nil {
		return nil, ErrWorkoutInProgress
	}

	w := models.NewWorkout(name, workoutType)
	w.RoutineID = routineID
	if _, err := r.store.SaveWorkout(w); err != nil {
		return nil, err
	}
	return w, nil
}

// Complete finishes a workout: stamps the end time, marks it completed,
// computes the completion percentage from its sets, and refreshes the
// routine's analytics when the workout came from one.
func (r *WorkoutRepository) Complete(id string) (*models.Workout, error) {
	w, err := r.store.GetWorkout(id)
	if err != nil {
		return nil, err
	}
	if w == nil {
		return nil, fmt.Errorf("complete workout %s: %w", id, ErrNotFound)
	}

	now := time.Now().UTC().Format(time.RFC3339)
	w.EndTime = now
	w.Completed = true
	w.CompletionPercentage = completionPercentage(w)
	w.UpdatedAt = now

	if _, err := r.store.SaveWorkout(w); err != nil {
		return nil, err
	}

	if w.RoutineID != "" {
		if err := r.RecomputeRoutineAnalytics(w.RoutineID); err != nil {
			return nil, fmt.Errorf("recompute routine analytics: %w", err)
		}
	}
	return w, nil
}

// Cancel discards the active workout without recording a completion.
func (r *WorkoutRepository) Cancel() error {
	active, err := r.store.GetActiveWorkout()
	if err != nil {
		return err
	}
	if active == nil {
		return nil
	}
	return r.store.DeleteWorkout(active.ID)
}

// RecomputeRoutineAnalytics rebuilds the derived counters for one routine
// from the full workout history.
func (r *WorkoutRepository) RecomputeRoutineAnalytics(routineID string) error {
	workouts, err := r.store.GetWorkouts()
	if err != nil {
		return err
	}

	a, err := r.store.GetRoutineAnalyticsByRoutine(routineID)
	if err != nil {
		return err
	}
	if a == nil {
		a = models.NewRoutineAnalytics(routineID)
	}

	var total, completed int
	var durationMinutes, totalVolume, bestVolume float64
	var lastCompletedAt string
	for _, w := range workouts {
		if w.RoutineID != routineID {
			continue
		}
		total++
		if !w.Completed {
			continue
		}
		completed++
		durationMinutes += durationMin(w.StartTime, w.EndTime)

		volume := workoutVolume(w)
		totalVolume += volume
		if volume > bestVolume {
			bestVolume = volume
		}
		if w.EndTime > lastCompletedAt {
			lastCompletedAt = w.EndTime
		}
	}

	a.TotalCompletions = completed
	if total > 0 {
		a.CompletionRate = float64(completed) / float64(total) * 100
	}
	if completed > 0 {
		a.AvgDurationMinutes = durationMinutes / float64(completed)
	}
	a.TotalVolume = totalVolume
	a.BestVolume = bestVolume
	a.LastCompletedAt = lastCompletedAt
	a.UpdatedAt = time.Now().UTC().Format(time.RFC3339)

	_, err = r.store.SaveRoutineAnalytics(a)
	return err
}

// completionPercentage is the share of sets marked completed. A workout
// with no sets counts as fully done.
func completionPercentage(w *models.Workout) float64 {
	var total, done int
	for _, e := range w.Exercises {
		for _, set := range e.Sets {
			total++
			if set.Completed {
				done++
			}
		}
	}
	if total == 0 {
		return 100
	}
	return float64(done) / float64(total) * 100
}

// workoutVolume sums reps times weight over completed sets.
func workoutVolume(w *models.Workout) float64 {
	var volume float64
	for _, e := range w.Exercises {
		for _, set := range e.Sets {
			if set.Completed {
				volume += float64(set.Reps) * set.Weight
			}
		}
	}
	return volume
}

func durationMin(start, end string) float64 {
	startTime, err := time.Parse(time.RFC3339, start)
	if err != nil {
		return 0
	}
	endTime, err := time.Parse(time.RFC3339, end)
	if err != nil {
		return 0
	}
	d := endTime.Sub(startTime)
	if d < 0 {
		return 0
	}
	return d.Minutes()
}
