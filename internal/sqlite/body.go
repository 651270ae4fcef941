// ABOUTME: BodyMetric and QuestionnaireResponse persistence for the SQLite backend.
// ABOUTME: Optional measurements map to nullable REAL columns; answers to JSON TEXT.
package sqlite

import (
	"database/sql"
	"fmt"

	"github.com/harperreed/fittrack/internal/models"
)

const bodyMetricColumns = `id, user_id, date, weight_kg, body_fat_percent,
	muscle_mass_kg, notes, created_at, updated_at`

const questionnaireColumns = `id, user_id, answers, completed_at, created_at, updated_at`

// GetBodyMetrics retrieves a user's body metrics, newest date first.
func (s *Store) GetBodyMetrics(userID string) ([]*models.BodyMetric, error) {
	db, err := s.conn()
	if err != nil {
		return nil, err
	}

	rows, err := db.Query(fmt.Sprintf(
		"SELECT %s FROM body_metrics WHERE user_id = ? ORDER BY date DESC",
		bodyMetricColumns), userID)
	if err != nil {
		return nil, fmt.Errorf("list body metrics: %w", err)
	}
	defer rows.Close()

	return scanBodyMetrics(rows)
}

// GetBodyMetric retrieves a body metric by id, or nil when absent.
func (s *Store) GetBodyMetric(id string) (*models.BodyMetric, error) {
	db, err := s.conn()
	if err != nil {
		return nil, err
	}

	row := db.QueryRow(fmt.Sprintf(
		"SELECT %s FROM body_metrics WHERE id = ?", bodyMetricColumns), id)
	m, err := scanBodyMetric(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get body metric: %w", err)
	}
	return m, nil
}

// GetBodyMetricsByDateRange retrieves metrics with date in [start, end].
func (s *Store) GetBodyMetricsByDateRange(userID, start, end string) ([]*models.BodyMetric, error) {
	db, err := s.conn()
	if err != nil {
		return nil, err
	}

	rows, err := db.Query(fmt.Sprintf(`
		SELECT %s FROM body_metrics
		WHERE user_id = ? AND date >= ? AND date <= ?
		ORDER BY date`, bodyMetricColumns), userID, start, end)
	if err != nil {
		return nil, fmt.Errorf("list body metrics by date range: %w", err)
	}
	defer rows.Close()

	return scanBodyMetrics(rows)
}

// SaveBodyMetric upserts a body metric keyed by id and returns the id.
func (s *Store) SaveBodyMetric(m *models.BodyMetric) (string, error) {
	db, err := s.conn()
	if err != nil {
		return "", err
	}

	_, err = db.Exec(`
		INSERT INTO body_metrics (id, user_id, date, weight_kg, body_fat_percent,
			muscle_mass_kg, notes, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			user_id = excluded.user_id,
			date = excluded.date,
			weight_kg = excluded.weight_kg,
			body_fat_percent = excluded.body_fat_percent,
			muscle_mass_kg = excluded.muscle_mass_kg,
			notes = excluded.notes,
			created_at = excluded.created_at,
			updated_at = excluded.updated_at`,
		m.ID,
		m.UserID,
		m.Date,
		m.WeightKg,
		nullFloatPtr(m.BodyFatPercent),
		nullFloatPtr(m.MuscleMassKg),
		nullIfEmpty(m.Notes),
		normalizeTime(m.CreatedAt),
		normalizeTime(m.UpdatedAt),
	)
	if err != nil {
		return "", fmt.Errorf("save body metric: %w", err)
	}
	return m.ID, nil
}

// DeleteBodyMetric removes a body metric by id.
func (s *Store) DeleteBodyMetric(id string) error {
	db, err := s.conn()
	if err != nil {
		return err
	}
	if _, err := db.Exec("DELETE FROM body_metrics WHERE id = ?", id); err != nil {
		return fmt.Errorf("delete body metric: %w", err)
	}
	return nil
}

// GetQuestionnaireResponses retrieves a user's responses, newest first.
func (s *Store) GetQuestionnaireResponses(userID string) ([]*models.QuestionnaireResponse, error) {
	db, err := s.conn()
	if err != nil {
		return nil, err
	}

	rows, err := db.Query(fmt.Sprintf(
		"SELECT %s FROM questionnaire_responses WHERE user_id = ? ORDER BY created_at DESC",
		questionnaireColumns), userID)
	if err != nil {
		return nil, fmt.Errorf("list questionnaire responses: %w", err)
	}
	defer rows.Close()

	var list []*models.QuestionnaireResponse
	for rows.Next() {
		q, err := scanQuestionnaireResponse(rows)
		if err != nil {
			return nil, fmt.Errorf("scan questionnaire response: %w", err)
		}
		list = append(list, q)
	}
	return list, rows.Err()
}

// GetQuestionnaireResponse retrieves a response by id, or nil when absent.
func (s *Store) GetQuestionnaireResponse(id string) (*models.QuestionnaireResponse, error) {
	db, err := s.conn()
	if err != nil {
		return nil, err
	}

	row := db.QueryRow(fmt.Sprintf(
		"SELECT %s FROM questionnaire_responses WHERE id = ?", questionnaireColumns), id)
	q, err := scanQuestionnaireResponse(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get questionnaire response: %w", err)
	}
	return q, nil
}

// SaveQuestionnaireResponse upserts a response keyed by id.
func (s *Store) SaveQuestionnaireResponse(q *models.QuestionnaireResponse) (string, error) {
	db, err := s.conn()
	if err != nil {
		return "", err
	}

	answers, err := jsonText(q.Answers)
	if err != nil {
		return "", fmt.Errorf("serialize answers: %w", err)
	}

	_, err = db.Exec(`
		INSERT INTO questionnaire_responses (id, user_id, answers, completed_at,
			created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			user_id = excluded.user_id,
			answers = excluded.answers,
			completed_at = excluded.completed_at,
			created_at = excluded.created_at,
			updated_at = excluded.updated_at`,
		q.ID,
		q.UserID,
		answers,
		nullIfEmpty(normalizeTime(q.CompletedAt)),
		normalizeTime(q.CreatedAt),
		normalizeTime(q.UpdatedAt),
	)
	if err != nil {
		return "", fmt.Errorf("save questionnaire response: %w", err)
	}
	return q.ID, nil
}

// DeleteQuestionnaireResponse removes a response by id.
func (s *Store) DeleteQuestionnaireResponse(id string) error {
	db, err := s.conn()
	if err != nil {
		return err
	}
	if _, err := db.Exec("DELETE FROM questionnaire_responses WHERE id = ?", id); err != nil {
		return fmt.Errorf("delete questionnaire response: %w", err)
	}
	return nil
}

func scanBodyMetric(row rowScanner) (*models.BodyMetric, error) {
	var m models.BodyMetric
	var bodyFat, muscleMass sql.NullFloat64
	var notes sql.NullString

	err := row.Scan(
		&m.ID,
		&m.UserID,
		&m.Date,
		&m.WeightKg,
		&bodyFat,
		&muscleMass,
		&notes,
		&m.CreatedAt,
		&m.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	m.BodyFatPercent = floatPtr(bodyFat)
	m.MuscleMassKg = floatPtr(muscleMass)
	m.Notes = stringValue(notes)
	return &m, nil
}

func scanBodyMetrics(rows *sql.Rows) ([]*models.BodyMetric, error) {
	var metrics []*models.BodyMetric
	for rows.Next() {
		m, err := scanBodyMetric(rows)
		if err != nil {
			return nil, fmt.Errorf("scan body metric: %w", err)
		}
		metrics = append(metrics, m)
	}
	return metrics, rows.Err()
}

func scanQuestionnaireResponse(row rowScanner) (*models.QuestionnaireResponse, error) {
	var q models.QuestionnaireResponse
	var answers, completedAt sql.NullString

	err := row.Scan(
		&q.ID,
		&q.UserID,
		&answers,
		&completedAt,
		&q.CreatedAt,
		&q.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	q.Answers = unmarshalColumn(answers, map[string]string{})
	q.CompletedAt = stringValue(completedAt)
	return &q, nil
}
