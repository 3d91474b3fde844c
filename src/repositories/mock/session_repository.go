package mock

import (
	"context"

	"github.com/resumevault/resume-vault/src/models"
	"github.com/resumevault/resume-vault/src/repositories"
)

// SessionRepository is a mock implementation of repositories.SessionRepository
type SessionRepository struct {
	// Function stubs that can be overridden in tests
	CreateWithLoginStampFunc func(ctx context.Context, session *models.AdminSession) error
	GetIdentityByTokenFunc   func(ctx context.Context, token string) (*models.SessionIdentity, error)
	DeleteByTokenFunc        func(ctx context.Context, token string) error
	DeleteExpiredFunc        func(ctx context.Context) (int64, error)

	// Call tracking
	Calls map[string][]interface{}
}

// NewSessionRepository creates a new mock session repository
func NewSessionRepository() *SessionRepository {
	return &SessionRepository{
		Calls: make(map[string][]interface{}),
	}
}

func (m *SessionRepository) CreateWithLoginStamp(ctx context.Context, session *models.AdminSession) error {
	m.Calls["CreateWithLoginStamp"] = append(m.Calls["CreateWithLoginStamp"], session)
	if m.CreateWithLoginStampFunc != nil {
		return m.CreateWithLoginStampFunc(ctx, session)
	}
	return nil
}

func (m *SessionRepository) GetIdentityByToken(ctx context.Context, token string) (*models.SessionIdentity, error) {
	m.Calls["GetIdentityByToken"] = append(m.Calls["GetIdentityByToken"], token)
	if m.GetIdentityByTokenFunc != nil {
		return m.GetIdentityByTokenFunc(ctx, token)
	}
	return nil, nil
}

func (m *SessionRepository) DeleteByToken(ctx context.Context, token string) error {
	m.Calls["DeleteByToken"] = append(m.Calls["DeleteByToken"], token)
	if m.DeleteByTokenFunc != nil {
		return m.DeleteByTokenFunc(ctx, token)
	}
	return nil
}

func (m *SessionRepository) DeleteExpired(ctx context.Context) (int64, error) {
	m.Calls["DeleteExpired"] = append(m.Calls["DeleteExpired"], nil)
	if m.DeleteExpiredFunc != nil {
		return m.DeleteExpiredFunc(ctx)
	}
	return 0, nil
}

// Ensure SessionRepository implements the interface
var _ repositories.SessionRepository = (*SessionRepository)(nil)
