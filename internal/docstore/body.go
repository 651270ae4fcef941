// ABOUTME: BodyMetric and QuestionnaireResponse documents for the BadgerDB backend.
// ABOUTME: Optional measurements survive as-is; whole entities round-trip as JSON.
package docstore

import (
	"sort"

	"github.com/harperreed/fittrack/internal/models"
)

const (
	bodyMetricStore    = "body_metrics"
	questionnaireStore = "questionnaire_responses"
)

// GetBodyMetrics retrieves a user's body metrics, newest date first.
func (s *Store) GetBodyMetrics(userID string) ([]*models.BodyMetric, error) {
	metrics, err := listDocs[models.BodyMetric](s, bodyMetricStore)
	if err != nil {
		return nil, err
	}

	var matched []*models.BodyMetric
	for _, m := range metrics {
		if m.UserID == userID {
			matched = append(matched, m)
		}
	}
	sort.Slice(matched, func(i, j int) bool {
		return matched[i].Date > matched[j].Date
	})
	return matched, nil
}

// GetBodyMetric retrieves a body metric by id, or nil when absent.
func (s *Store) GetBodyMetric(id string) (*models.BodyMetric, error) {
	return getDoc[models.BodyMetric](s, bodyMetricStore, id)
}

// GetBodyMetricsByDateRange retrieves metrics with date in [start, end],
// oldest date first.
func (s *Store) GetBodyMetricsByDateRange(userID, start, end string) ([]*models.BodyMetric, error) {
	metrics, err := listDocs[models.BodyMetric](s, bodyMetricStore)
	if err != nil {
		return nil, err
	}

	var matched []*models.BodyMetric
	for _, m := range metrics {
		if m.UserID == userID && m.Date >= start && m.Date <= end {
			matched = append(matched, m)
		}
	}
	sort.Slice(matched, func(i, j int) bool {
		return matched[i].Date < matched[j].Date
	})
	return matched, nil
}

// SaveBodyMetric upserts a body metric keyed by id and returns the id.
func (s *Store) SaveBodyMetric(m *models.BodyMetric) (string, error) {
	if err := s.putDoc(bodyMetricStore, m.ID, m); err != nil {
		return "", err
	}
	return m.ID, nil
}

// DeleteBodyMetric removes a body metric by id.
func (s *Store) DeleteBodyMetric(id string) error {
	return s.deleteDoc(bodyMetricStore, id)
}

// GetQuestionnaireResponses retrieves a user's responses, newest first.
func (s *Store) GetQuestionnaireResponses(userID string) ([]*models.QuestionnaireResponse, error) {
	responses, err := listDocs[models.QuestionnaireResponse](s, questionnaireStore)
	if err != nil {
		return nil, err
	}

	var matched []*models.QuestionnaireResponse
	for _, q := range responses {
		if q.UserID == userID {
			matched = append(matched, q)
		}
	}
	sort.Slice(matched, func(i, j int) bool {
		return matched[i].CreatedAt > matched[j].CreatedAt
	})
	return matched, nil
}

// GetQuestionnaireResponse retrieves a response by id, or nil when absent.
func (s *Store) GetQuestionnaireResponse(id string) (*models.QuestionnaireResponse, error) {
	return getDoc[models.QuestionnaireResponse](s, questionnaireStore, id)
}

// SaveQuestionnaireResponse upserts a response keyed by id.
func (s *Store) SaveQuestionnaireResponse(q *models.QuestionnaireResponse) (string, error) {
	if err := s.putDoc(questionnaireStore, q.ID, q); err != nil {
		return "", err
	}
	return q.ID, nil
}

// DeleteQuestionnaireResponse removes a response by id.
func (s *Store) DeleteQuestionnaireResponse(id string) error {
	return s.deleteDoc(questionnaireStore, id)
}
