package admin

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/personality-cat/backend/internal/models"
)

const pageSize = 10

// Store runs the aggregation queries behind the admin dashboard. It reads
// the extracted demographic columns, never the JSONB state.
type Store struct {
	db *sql.DB
}

func NewStore(db *sql.DB) *Store {
	return &Store{db: db}
}

func (s *Store) Dashboard(ctx context.Context) (*models.DashboardResponse, error) {
	resp := &models.DashboardResponse{}

	err := s.db.QueryRowContext(ctx, `
		SELECT COUNT(*),
		       COUNT(*) FILTER (WHERE status = 'completed'),
		       COUNT(*) FILTER (WHERE status = 'active')
		FROM sessions`).Scan(&resp.TotalParticipants, &resp.CompletedTests, &resp.ActiveSessions)
	if err != nil {
		return nil, fmt.Errorf("counting sessions: %w", err)
	}
	if resp.TotalParticipants > 0 {
		resp.CompletionRate = float64(resp.CompletedTests) / float64(resp.TotalParticipants) * 100
	}

	resp.GenderDistribution, err = s.distribution(ctx, "gender")
	if err != nil {
		return nil, err
	}
	resp.EducationDistribution, err = s.distribution(ctx, "education_level")
	if err != nil {
		return nil, err
	}
	resp.AgeDistribution, err = s.ageDistribution(ctx)
	if err != nil {
		return nil, err
	}
	resp.DailyStats, err = s.dailyStats(ctx, 7)
	if err != nil {
		return nil, err
	}

	return resp, nil
}

// distribution groups sessions by one demographic column. NULL and empty
// values are reported as "unknown".
func (s *Store) distribution(ctx context.Context, column string) ([]models.DistributionEntry, error) {
	// column comes from a fixed caller-side set, never user input.
	query := fmt.Sprintf(`
		SELECT COALESCE(NULLIF(%s, ''), 'unknown') AS label, COUNT(*)
		FROM sessions GROUP BY label ORDER BY COUNT(*) DESC`, column)

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("%s distribution: %w", column, err)
	}
	defer rows.Close()

	var out []models.DistributionEntry
	for rows.Next() {
		var e models.DistributionEntry
		if err := rows.Scan(&e.Label, &e.Value); err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	if out == nil {
		out = []models.DistributionEntry{}
	}
	return out, rows.Err()
}

func (s *Store) ageDistribution(ctx context.Context) ([]models.DistributionEntry, error) {
	year := time.Now().Year()
	rows, err := s.db.QueryContext(ctx, `
		SELECT CASE
			WHEN birth_year IS NULL THEN 'unknown'
			WHEN $1 - birth_year < 20 THEN 'teen'
			WHEN $1 - birth_year < 30 THEN 'young_adult'
			WHEN $1 - birth_year < 50 THEN 'middle_age'
			ELSE 'senior'
		END AS label, COUNT(*)
		FROM sessions GROUP BY label ORDER BY COUNT(*) DESC`, year)
	if err != nil {
		return nil, fmt.Errorf("age distribution: %w", err)
	}
	defer rows.Close()

	var out []models.DistributionEntry
	for rows.Next() {
		var e models.DistributionEntry
		if err := rows.Scan(&e.Label, &e.Value); err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	if out == nil {
		out = []models.DistributionEntry{}
	}
	return out, rows.Err()
}

func (s *Store) dailyStats(ctx context.Context, days int) ([]models.DailyStat, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT d::date,
		       COALESCE(c.created, 0),
		       COALESCE(f.finished, 0)
		FROM generate_series(CURRENT_DATE - ($1 - 1) * INTERVAL '1 day', CURRENT_DATE, '1 day') AS d
		LEFT JOIN (
			SELECT created_at::date AS day, COUNT(*) AS created
			FROM sessions GROUP BY day
		) c ON c.day = d::date
		LEFT JOIN (
			SELECT completed_at::date AS day, COUNT(*) AS finished
			FROM sessions WHERE completed_at IS NOT NULL GROUP BY day
		) f ON f.day = d::date
		ORDER BY d`, days)
	if err != nil {
		return nil, fmt.Errorf("daily stats: %w", err)
	}
	defer rows.Close()

	var out []models.DailyStat
	for rows.Next() {
		var day time.Time
		var stat models.DailyStat
		if err := rows.Scan(&day, &stat.NewParticipants, &stat.CompletedTests); err != nil {
			return nil, err
		}
		stat.Date = day.Format("2006-01-02")
		out = append(out, stat)
	}
	if out == nil {
		out = []models.DailyStat{}
	}
	return out, rows.Err()
}

// Participants returns one page of sessions, newest first, optionally
// filtered by a case-insensitive name search.
func (s *Store) Participants(ctx context.Context, page int, search string) (*models.ParticipantListResponse, error) {
	if page < 1 {
		page = 1
	}
	pattern := "%" + search + "%"

	var total int
	err := s.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM sessions WHERE name ILIKE $1`, pattern).Scan(&total)
	if err != nil {
		return nil, fmt.Errorf("counting participants: %w", err)
	}

	rows, err := s.db.QueryContext(ctx, `
		SELECT id, name, COALESCE(gender, ''), birth_year,
		       COALESCE(education_level, ''), COALESCE(marital_status, ''),
		       status, current_dimension, total_answered, completed_at
		FROM sessions
		WHERE name ILIKE $1
		ORDER BY created_at DESC
		LIMIT $2 OFFSET $3`, pattern, pageSize, (page-1)*pageSize)
	if err != nil {
		return nil, fmt.Errorf("listing participants: %w", err)
	}
	defer rows.Close()

	year := time.Now().Year()
	participants := []models.Participant{}
	for rows.Next() {
		var p models.Participant
		var completedAt *time.Time
		if err := rows.Scan(&p.SessionID, &p.Name, &p.Gender, &p.BirthYear,
			&p.EducationLevel, &p.MaritalStatus, &p.Status,
			&p.CurrentDimension, &p.QuestionsAnswered, &completedAt); err != nil {
			return nil, err
		}
		if p.BirthYear != nil {
			age := year - *p.BirthYear
			p.Age = &age
		}
		if completedAt != nil {
			d := completedAt.Format(time.RFC3339)
			p.CompletionDate = &d
		}
		participants = append(participants, p)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	totalPages := (total + pageSize - 1) / pageSize
	if totalPages == 0 {
		totalPages = 1
	}
	return &models.ParticipantListResponse{
		Participants:      participants,
		TotalPages:        totalPages,
		CurrentPage:       page,
		TotalParticipants: total,
	}, nil
}
