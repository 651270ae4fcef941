// ABOUTME: WorkoutProgram and RoutineAnalytics documents for the BadgerDB backend.
// ABOUTME: Template and routine lookups filter in memory over the store prefix.
package docstore

import (
	"sort"

	"github.com/harperreed/fittrack/internal/models"
)

const (
	programStore          = "workout_programs"
	routineAnalyticsStore = "routine_analytics"
)

// GetPrograms retrieves all programs, most recently created first.
func (s *Store) GetPrograms() ([]*models.WorkoutProgram, error) {
	programs, err := listDocs[models.WorkoutProgram](s, programStore)
	if err != nil {
		return nil, err
	}
	sort.Slice(programs, func(i, j int) bool {
		return programs[i].CreatedAt > programs[j].CreatedAt
	})
	return programs, nil
}

// GetProgram retrieves a program by id, or nil when absent.
func (s *Store) GetProgram(id string) (*models.WorkoutProgram, error) {
	return getDoc[models.WorkoutProgram](s, programStore, id)
}

// SaveProgram upserts a program keyed by id and returns the id.
func (s *Store) SaveProgram(p *models.WorkoutProgram) (string, error) {
	if err := s.putDoc(programStore, p.ID, p); err != nil {
		return "", err
	}
	return p.ID, nil
}

// DeleteProgram removes a program by id.
func (s *Store) DeleteProgram(id string) error {
	return s.deleteDoc(programStore, id)
}

// GetProgramsByTemplate retrieves programs created from one template.
func (s *Store) GetProgramsByTemplate(templateID string) ([]*models.WorkoutProgram, error) {
	programs, err := s.GetPrograms()
	if err != nil {
		return nil, err
	}

	var matched []*models.WorkoutProgram
	for _, p := range programs {
		if p.TemplateID == templateID {
			matched = append(matched, p)
		}
	}
	return matched, nil
}

// GetRoutineAnalytics retrieves all per-routine counters.
func (s *Store) GetRoutineAnalytics() ([]*models.RoutineAnalytics, error) {
	analytics, err := listDocs[models.RoutineAnalytics](s, routineAnalyticsStore)
	if err != nil {
		return nil, err
	}
	sort.Slice(analytics, func(i, j int) bool {
		return analytics[i].CreatedAt > analytics[j].CreatedAt
	})
	return analytics, nil
}

// GetRoutineAnalyticsByRoutine retrieves the counters for one routine, or
// nil when the routine has never been completed.
func (s *Store) GetRoutineAnalyticsByRoutine(routineID string) (*models.RoutineAnalytics, error) {
	analytics, err := listDocs[models.RoutineAnalytics](s, routineAnalyticsStore)
	if err != nil {
		return nil, err
	}
	for _, a := range analytics {
		if a.RoutineID == routineID {
			return a, nil
		}
	}
	return nil, nil
}

// SaveRoutineAnalytics upserts counters keyed by id.
func (s *Store) SaveRoutineAnalytics(a *models.RoutineAnalytics) (string, error) {
	if err := s.putDoc(routineAnalyticsStore, a.ID, a); err != nil {
		return "", err
	}
	return a.ID, nil
}

// DeleteRoutineAnalytics removes counters by id.
func (s *Store) DeleteRoutineAnalytics(id string) error {
	return s.deleteDoc(routineAnalyticsStore, id)
}
