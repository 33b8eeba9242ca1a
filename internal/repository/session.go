package repository

import (
	"database/sql"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/willowworks/batrack/internal/model"
)

var (
	ErrSessionNotFound = errors.New("session not found")
)

type SessionRepository interface {
	Create(session *model.Session) error
	ByID(id string) (*model.Session, error)
	UpdateFlash(id, flash string) error
	Delete(id string) error
	DeleteExpired() (int64, error)
}

type sessionRepository struct {
	db *sqlx.DB
}

func NewSessionRepository(db *sqlx.DB) SessionRepository {
	return &sessionRepository{db: db}
}

func (r *sessionRepository) Create(session *model.Session) error {
	if session.ID == "" {
		session.ID = uuid.New().String()
	}
	if session.CreatedAt.IsZero() {
		session.CreatedAt = time.Now()
	}
	if session.Flash == "" {
		session.Flash = "[]"
	}

	query := `INSERT INTO sessions (id, user_id, flash, created_at, expires_at)
	          VALUES ($1, $2, $3, $4, $5)`

	_, err := r.db.Exec(query,
		session.ID,
		session.UserID,
		session.Flash,
		session.CreatedAt,
		session.ExpiresAt,
	)
	return err
}

// ByID returns a live session; expired rows are treated as absent.
func (r *sessionRepository) ByID(id string) (*model.Session, error) {
	session := &model.Session{}
	query := `SELECT * FROM sessions WHERE id = $1 AND expires_at > $2`

	err := r.db.Get(session, query, id, time.Now())
	if err == sql.ErrNoRows {
		return nil, ErrSessionNotFound
	}

	return session, err
}

func (r *sessionRepository) UpdateFlash(id, flash string) error {
	query := `UPDATE sessions SET flash = $1 WHERE id = $2`

	result, err := r.db.Exec(query, flash, id)
	if err != nil {
		return err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if rows == 0 {
		return ErrSessionNotFound
	}

	return nil
}

// Delete is idempotent: removing an absent session is not an error, so
// logout can always succeed.
func (r *sessionRepository) Delete(id string) error {
	query := `DELETE FROM sessions WHERE id = $1`
	_, err := r.db.Exec(query, id)
	return err
}

// DeleteExpired removes expired session rows. Optional maintenance, handy
// for long-running deployments.
func (r *sessionRepository) DeleteExpired() (int64, error) {
	query := `DELETE FROM sessions WHERE expires_at < $1`

	result, err := r.db.Exec(query, time.Now())
	if err != nil {
		return 0, err
	}

	return result.RowsAffected()
}
