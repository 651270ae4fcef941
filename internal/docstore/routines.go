// ABOUTME: Routine documents for the BadgerDB backend.
// ABOUTME: Favorites filter in memory; both backends return the same ordering.
package docstore

import (
	"sort"

	"github.com/harperreed/fittrack/internal/models"
)

const routineStore = "routines"

// GetRoutines retrieves all routines, most recently created first.
func (s *Store) GetRoutines() ([]*models.Routine, error) {
	routines, err := listDocs[models.Routine](s, routineStore)
	if err != nil {
		return nil, err
	}
	sort.Slice(routines, func(i, j int) bool {
		return routines[i].CreatedAt > routines[j].CreatedAt
	})
	return routines, nil
}

// GetRoutine retrieves a routine by id, or nil when absent.
func (s *Store) GetRoutine(id string) (*models.Routine, error) {
	return getDoc[models.Routine](s, routineStore, id)
}

// SaveRoutine upserts a routine keyed by id and returns the id.
func (s *Store) SaveRoutine(r *models.Routine) (string, error) {
	if err := s.putDoc(routineStore, r.ID, r); err != nil {
		return "", err
	}
	return r.ID, nil
}

// DeleteRoutine removes a routine by id.
func (s *Store) DeleteRoutine(id string) error {
	return s.deleteDoc(routineStore, id)
}

// GetFavoriteRoutines retrieves favorited routines, most recently created first.
func (s *Store) GetFavoriteRoutines() ([]*models.Routine, error) {
	routines, err := s.GetRoutines()
	if err != nil {
		return nil, err
	}

	var favorites []*models.Routine
	for _, r := range routines {
		if r.IsFavorite {
			favorites = append(favorites, r)
		}
	}
	return favorites, nil
}
