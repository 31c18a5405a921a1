package assessment

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/personality-cat/backend/internal/models"
)

// PGStore persists sessions to Postgres. The full session document is stored
// as a JSONB snapshot; demographic and progress fields are duplicated into
// columns so the admin dashboard can aggregate without unpacking JSON.
type PGStore struct {
	db *sql.DB
}

func NewPGStore(db *sql.DB) *PGStore {
	return &PGStore{db: db}
}

type sessionSnapshot struct {
	CurrentDimension models.Dimension                            `json:"current_dimension"`
	States           map[models.Dimension]*models.DimensionState `json:"states"`
	Pools            map[models.Dimension][]models.Item          `json:"pools"`
	AgeGroup         string                                      `json:"age_group"`
}

func (s *PGStore) Put(ctx context.Context, sess *models.Session) error {
	snap := sessionSnapshot{
		CurrentDimension: sess.CurrentDimension,
		States:           sess.States,
		Pools:            sess.Pools,
		AgeGroup:         sess.Demographics.AgeGroup,
	}
	state, err := json.Marshal(snap)
	if err != nil {
		return fmt.Errorf("marshaling session state: %w", err)
	}

	var completedAt *time.Time
	if sess.Status == models.SessionCompleted {
		if sess.CompletedAt == nil {
			now := time.Now().UTC()
			sess.CompletedAt = &now
		}
		completedAt = sess.CompletedAt
	}

	_, err = s.db.ExecContext(ctx, `
		INSERT INTO sessions
			(id, name, gender, birth_year, education_level, marital_status,
			 status, current_dimension, total_answered, state, created_at, completed_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
		ON CONFLICT (id) DO UPDATE SET
			status = EXCLUDED.status,
			current_dimension = EXCLUDED.current_dimension,
			total_answered = EXCLUDED.total_answered,
			state = EXCLUDED.state,
			completed_at = EXCLUDED.completed_at`,
		sess.ID, sess.Name, sess.Demographics.Gender, sess.Demographics.BirthYear,
		sess.Demographics.EducationLevel, sess.Demographics.MaritalStatus,
		string(sess.Status), string(sess.CurrentDimension), sess.TotalAnswered,
		state, sess.CreatedAt, completedAt)
	if err != nil {
		return fmt.Errorf("saving session %s: %w", sess.ID, err)
	}
	return nil
}

func (s *PGStore) Get(ctx context.Context, id string) (*models.Session, error) {
	sess := &models.Session{ID: id}
	var (
		status, currentDim string
		state              []byte
	)
	err := s.db.QueryRowContext(ctx, `
		SELECT name, gender, birth_year, education_level, marital_status,
		       status, current_dimension, total_answered, state, created_at, completed_at
		FROM sessions WHERE id = $1`, id).Scan(
		&sess.Name, &sess.Demographics.Gender, &sess.Demographics.BirthYear,
		&sess.Demographics.EducationLevel, &sess.Demographics.MaritalStatus,
		&status, &currentDim, &sess.TotalAnswered, &state,
		&sess.CreatedAt, &sess.CompletedAt)
	if err == sql.ErrNoRows {
		return nil, ErrSessionNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("loading session %s: %w", id, err)
	}

	var snap sessionSnapshot
	if err := json.Unmarshal(state, &snap); err != nil {
		return nil, fmt.Errorf("unmarshaling session %s state: %w", id, err)
	}
	sess.Status = models.SessionStatus(status)
	sess.CurrentDimension = snap.CurrentDimension
	sess.States = snap.States
	sess.Pools = snap.Pools
	sess.Demographics.AgeGroup = snap.AgeGroup
	if sess.States == nil {
		sess.States = make(map[models.Dimension]*models.DimensionState)
	}
	return sess, nil
}

func (s *PGStore) Delete(ctx context.Context, id string) error {
	if _, err := s.db.ExecContext(ctx, `DELETE FROM sessions WHERE id = $1`, id); err != nil {
		return fmt.Errorf("deleting session %s: %w", id, err)
	}
	return nil
}
