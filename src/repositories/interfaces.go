package repositories

import (
	"context"

	"github.com/google/uuid"
	"github.com/resumevault/resume-vault/src/models"
)

// AdminRepository defines the interface for admin account data access
type AdminRepository interface {
	Create(ctx context.Context, admin *models.AdminUser) error
	// GetByEmail returns (nil, nil) when no admin has the given email.
	GetByEmail(ctx context.Context, email string) (*models.AdminUser, error)
}

// SessionRepository defines the interface for admin session data access
type SessionRepository interface {
	// CreateWithLoginStamp inserts the session and updates the owning
	// admin's last_login in a single transaction.
	CreateWithLoginStamp(ctx context.Context, session *models.AdminSession) error

	// GetIdentityByToken resolves a token to the owning admin identity,
	// joined with the session expiry. Returns (nil, nil) on a miss.
	GetIdentityByToken(ctx context.Context, token string) (*models.SessionIdentity, error)

	// DeleteByToken removes the session row; deleting an absent token is
	// not an error.
	DeleteByToken(ctx context.Context, token string) error

	// DeleteExpired bulk-deletes every expired session and reports how
	// many rows were removed.
	DeleteExpired(ctx context.Context) (int64, error)
}

// ResumeRepository defines the interface for resume data access
type ResumeRepository interface {
	Create(ctx context.Context, resume *models.Resume) error
	List(ctx context.Context, limit, offset int) ([]models.ResumeSummary, error)
	Count(ctx context.Context) (int, error)
	// GetByID returns (nil, nil) when no resume has the given id.
	GetByID(ctx context.Context, id uuid.UUID) (*models.Resume, error)
	// Delete reports whether a row was actually removed.
	Delete(ctx context.Context, id uuid.UUID) (bool, error)
}
