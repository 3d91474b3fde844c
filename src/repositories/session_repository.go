package repositories

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/resumevault/resume-vault/src/models"
)

// PostgresSessionRepository is the pgx-backed SessionRepository.
type PostgresSessionRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresSessionRepository creates a new session repository
func NewPostgresSessionRepository(pool *pgxpool.Pool) *PostgresSessionRepository {
	return &PostgresSessionRepository{pool: pool}
}

func (r *PostgresSessionRepository) CreateWithLoginStamp(ctx context.Context, session *models.AdminSession) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	_, err = tx.Exec(ctx,
		`INSERT INTO admin_sessions (id, admin_id, session_token, expires_at, created_at)
		 VALUES ($1, $2, $3, $4, $5)`,
		session.ID, session.AdminID, session.SessionToken, session.ExpiresAt, session.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create session: %w", err)
	}

	_, err = tx.Exec(ctx,
		`UPDATE admin_users SET last_login = $1 WHERE id = $2`,
		time.Now().UTC(), session.AdminID,
	)
	if err != nil {
		return fmt.Errorf("failed to update last_login: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit session: %w", err)
	}
	return nil
}

func (r *PostgresSessionRepository) GetIdentityByToken(ctx context.Context, token string) (*models.SessionIdentity, error) {
	ident := &models.SessionIdentity{}
	err := r.pool.QueryRow(ctx,
		`SELECT s.admin_id, a.email, s.expires_at
		 FROM admin_sessions s
		 JOIN admin_users a ON s.admin_id = a.id
		 WHERE s.session_token = $1`,
		token,
	).Scan(&ident.AdminID, &ident.AdminEmail, &ident.ExpiresAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query session: %w", err)
	}
	return ident, nil
}

func (r *PostgresSessionRepository) DeleteByToken(ctx context.Context, token string) error {
	_, err := r.pool.Exec(ctx,
		`DELETE FROM admin_sessions WHERE session_token = $1`, token)
	if err != nil {
		return fmt.Errorf("failed to delete session: %w", err)
	}
	return nil
}

func (r *PostgresSessionRepository) DeleteExpired(ctx context.Context) (int64, error) {
	result, err := r.pool.Exec(ctx,
		`DELETE FROM admin_sessions WHERE expires_at < NOW()`)
	if err != nil {
		return 0, fmt.Errorf("failed to delete expired sessions: %w", err)
	}
	return result.RowsAffected(), nil
}

var _ SessionRepository = (*PostgresSessionRepository)(nil)
