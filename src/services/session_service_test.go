package services

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/resumevault/resume-vault/src/models"
	"github.com/resumevault/resume-vault/src/repositories/mock"
	"golang.org/x/crypto/bcrypt"
)

func testAdmin(t *testing.T, password string) *models.AdminUser {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("failed to hash password: %v", err)
	}
	return &models.AdminUser{
		ID:           uuid.New(),
		Email:        "admin@example.com",
		PasswordHash: string(hash),
	}
}

func TestLogin_Success(t *testing.T) {
	admin := testAdmin(t, "correct-password")

	admins := mock.NewAdminRepository()
	admins.GetByEmailFunc = func(ctx context.Context, email string) (*models.AdminUser, error) {
		return admin, nil
	}
	sessions := mock.NewSessionRepository()

	ss := NewSessionService(admins, sessions, 24)
	token, err := ss.Login(context.Background(), "admin@example.com", "correct-password")
	if err != nil {
		t.Fatalf("Login failed: %v", err)
	}

	if token == "" {
		t.Fatal("expected a session token")
	}
	// 64 bytes of entropy base64-encoded without padding
	if len(token) != 86 {
		t.Errorf("expected token length 86, got %d", len(token))
	}
	if strings.ContainsAny(token, "+/=") {
		t.Errorf("expected URL-safe token, got %q", token)
	}

	calls := sessions.Calls["CreateWithLoginStamp"]
	if len(calls) != 1 {
		t.Fatalf("expected 1 CreateWithLoginStamp call, got %d", len(calls))
	}
	session := calls[0].(*models.AdminSession)
	if session.AdminID != admin.ID {
		t.Errorf("expected session for admin %s, got %s", admin.ID, session.AdminID)
	}
	if session.SessionToken != token {
		t.Error("stored token does not match returned token")
	}
	if !session.ExpiresAt.After(time.Now().UTC().Add(23 * time.Hour)) {
		t.Errorf("expected expiry ~24h out, got %v", session.ExpiresAt)
	}
}

func TestLogin_WrongPassword(t *testing.T) {
	admin := testAdmin(t, "correct-password")

	admins := mock.NewAdminRepository()
	admins.GetByEmailFunc = func(ctx context.Context, email string) (*models.AdminUser, error) {
		return admin, nil
	}
	sessions := mock.NewSessionRepository()

	ss := NewSessionService(admins, sessions, 24)
	_, err := ss.Login(context.Background(), "admin@example.com", "wrong-password")
	if !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}

	if len(sessions.Calls["CreateWithLoginStamp"]) != 0 {
		t.Error("no session should be created on failed login")
	}
}

func TestLogin_UnknownEmail(t *testing.T) {
	admins := mock.NewAdminRepository()
	sessions := mock.NewSessionRepository()

	ss := NewSessionService(admins, sessions, 24)
	_, err := ss.Login(context.Background(), "nobody@example.com", "whatever")
	if !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestLogin_UnknownEmailAndWrongPasswordIndistinguishable(t *testing.T) {
	admin := testAdmin(t, "correct-password")

	admins := mock.NewAdminRepository()
	admins.GetByEmailFunc = func(ctx context.Context, email string) (*models.AdminUser, error) {
		if email == admin.Email {
			return admin, nil
		}
		return nil, nil
	}
	sessions := mock.NewSessionRepository()
	ss := NewSessionService(admins, sessions, 24)

	_, errUnknown := ss.Login(context.Background(), "nobody@example.com", "x")
	_, errWrong := ss.Login(context.Background(), admin.Email, "x")

	if !errors.Is(errUnknown, errWrong) {
		t.Errorf("expected identical errors, got %v and %v", errUnknown, errWrong)
	}
}

func TestVerify_ValidSession(t *testing.T) {
	adminID := uuid.New()
	sessions := mock.NewSessionRepository()
	sessions.GetIdentityByTokenFunc = func(ctx context.Context, token string) (*models.SessionIdentity, error) {
		return &models.SessionIdentity{
			AdminID:    adminID,
			AdminEmail: "admin@example.com",
			ExpiresAt:  time.Now().UTC().Add(time.Hour),
		}, nil
	}

	ss := NewSessionService(mock.NewAdminRepository(), sessions, 24)
	ident, err := ss.Verify(context.Background(), "some-token")
	if err != nil {
		t.Fatalf("Verify failed: %v", err)
	}
	if ident == nil {
		t.Fatal("expected an identity")
	}
	if ident.AdminID != adminID {
		t.Errorf("expected admin %s, got %s", adminID, ident.AdminID)
	}
}

func TestVerify_UnknownToken(t *testing.T) {
	ss := NewSessionService(mock.NewAdminRepository(), mock.NewSessionRepository(), 24)
	ident, err := ss.Verify(context.Background(), "unknown")
	if err != nil {
		t.Fatalf("Verify failed: %v", err)
	}
	if ident != nil {
		t.Error("expected nil identity for unknown token")
	}
}

func TestVerify_ExpiredSessionDeleted(t *testing.T) {
	sessions := mock.NewSessionRepository()
	sessions.GetIdentityByTokenFunc = func(ctx context.Context, token string) (*models.SessionIdentity, error) {
		return &models.SessionIdentity{
			AdminID:    uuid.New(),
			AdminEmail: "admin@example.com",
			ExpiresAt:  time.Now().UTC().Add(-time.Minute),
		}, nil
	}

	ss := NewSessionService(mock.NewAdminRepository(), sessions, 24)
	ident, err := ss.Verify(context.Background(), "stale-token")
	if err != nil {
		t.Fatalf("Verify failed: %v", err)
	}
	if ident != nil {
		t.Error("expected nil identity for expired session")
	}

	deletes := sessions.Calls["DeleteByToken"]
	if len(deletes) != 1 {
		t.Fatalf("expected 1 DeleteByToken call, got %d", len(deletes))
	}
	if deletes[0].(string) != "stale-token" {
		t.Errorf("expected stale-token deleted, got %v", deletes[0])
	}
}

func TestLogout_UnknownTokenIsNoError(t *testing.T) {
	ss := NewSessionService(mock.NewAdminRepository(), mock.NewSessionRepository(), 24)
	if err := ss.Logout(context.Background(), "never-issued"); err != nil {
		t.Fatalf("Logout failed: %v", err)
	}
}

func TestSweepExpired(t *testing.T) {
	sessions := mock.NewSessionRepository()
	sessions.DeleteExpiredFunc = func(ctx context.Context) (int64, error) {
		return 3, nil
	}

	ss := NewSessionService(mock.NewAdminRepository(), sessions, 24)
	deleted, err := ss.SweepExpired(context.Background())
	if err != nil {
		t.Fatalf("SweepExpired failed: %v", err)
	}
	if deleted != 3 {
		t.Errorf("expected 3 deleted, got %d", deleted)
	}
}

func TestGenerateSessionToken_Unique(t *testing.T) {
	a, err := generateSessionToken()
	if err != nil {
		t.Fatalf("generateSessionToken failed: %v", err)
	}
	b, err := generateSessionToken()
	if err != nil {
		t.Fatalf("generateSessionToken failed: %v", err)
	}
	if a == b {
		t.Error("expected unique tokens")
	}
}
