package services

import (
	"context"
	"crypto/rand"
	"encoding/base64"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/resumevault/resume-vault/src/models"
	"github.com/resumevault/resume-vault/src/repositories"
	"github.com/rs/zerolog/log"
	"golang.org/x/crypto/bcrypt"
)

// sessionTokenBytes is the entropy of a session token before encoding.
const sessionTokenBytes = 64

// dummyHash is a bcrypt hash compared against when the email is unknown,
// so the miss path does not return measurably faster than a mismatch.
var dummyHash = []byte("$2a$12$R9h/cIPz0gi.URNNX3kh2OPST9/PgBkqquzi.Ss7KIUgO2t0jWMUW")

// SessionService manages the admin session lifecycle: login, bearer
// token verification, logout and expiry sweeps.
type SessionService struct {
	admins   repositories.AdminRepository
	sessions repositories.SessionRepository
	expiry   time.Duration
}

// NewSessionService creates a new session service
func NewSessionService(admins repositories.AdminRepository, sessions repositories.SessionRepository, expiryHours int) *SessionService {
	return &SessionService{
		admins:   admins,
		sessions: sessions,
		expiry:   time.Duration(expiryHours) * time.Hour,
	}
}

// Login verifies the credentials and, on success, persists a new session
// and stamps last_login in one transaction. The returned token is the
// only copy; it is never logged.
func (ss *SessionService) Login(ctx context.Context, email, password string) (string, error) {
	admin, err := ss.admins.GetByEmail(ctx, email)
	if err != nil {
		return "", fmt.Errorf("failed to look up admin: %w", err)
	}
	if admin == nil {
		_ = bcrypt.CompareHashAndPassword(dummyHash, []byte(password))
		return "", ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(admin.PasswordHash), []byte(password)); err != nil {
		return "", ErrInvalidCredentials
	}

	token, err := generateSessionToken()
	if err != nil {
		return "", fmt.Errorf("failed to generate session token: %w", err)
	}

	now := time.Now().UTC()
	session := &models.AdminSession{
		ID:           uuid.New(),
		AdminID:      admin.ID,
		SessionToken: token,
		ExpiresAt:    now.Add(ss.expiry),
		CreatedAt:    now,
	}

	if err := ss.sessions.CreateWithLoginStamp(ctx, session); err != nil {
		return "", fmt.Errorf("failed to create session: %w", err)
	}

	return token, nil
}

// Verify resolves a bearer token to an admin identity. An expired row is
// deleted on the spot and treated as absent; expiry here is routine and
// not logged as an error.
func (ss *SessionService) Verify(ctx context.Context, token string) (*models.SessionIdentity, error) {
	ident, err := ss.sessions.GetIdentityByToken(ctx, token)
	if err != nil {
		return nil, err
	}
	if ident == nil {
		return nil, nil
	}

	if ident.Expired(time.Now().UTC()) {
		if err := ss.sessions.DeleteByToken(ctx, token); err != nil {
			log.Warn().Err(err).Msg("failed to remove expired session")
		}
		return nil, nil
	}

	return ident, nil
}

// Logout destroys the session row. Logging out a token that no longer
// exists is not an error.
func (ss *SessionService) Logout(ctx context.Context, token string) error {
	return ss.sessions.DeleteByToken(ctx, token)
}

// SweepExpired bulk-deletes every expired session.
func (ss *SessionService) SweepExpired(ctx context.Context) (int64, error) {
	return ss.sessions.DeleteExpired(ctx)
}

// generateSessionToken returns a URL-safe token with sessionTokenBytes
// of entropy.
func generateSessionToken() (string, error) {
	buf := make([]byte, sessionTokenBytes)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return base64.RawURLEncoding.EncodeToString(buf), nil
}
