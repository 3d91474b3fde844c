package mock

import (
	"context"

	"github.com/google/uuid"
	"github.com/resumevault/resume-vault/src/models"
	"github.com/resumevault/resume-vault/src/repositories"
)

// ResumeRepository is a mock implementation of repositories.ResumeRepository
type ResumeRepository struct {
	// Function stubs that can be overridden in tests
	CreateFunc  func(ctx context.Context, resume *models.Resume) error
	ListFunc    func(ctx context.Context, limit, offset int) ([]models.ResumeSummary, error)
	CountFunc   func(ctx context.Context) (int, error)
	GetByIDFunc func(ctx context.Context, id uuid.UUID) (*models.Resume, error)
	DeleteFunc  func(ctx context.Context, id uuid.UUID) (bool, error)

	// Call tracking
	Calls map[string][]interface{}
}

// NewResumeRepository creates a new mock resume repository
func NewResumeRepository() *ResumeRepository {
	return &ResumeRepository{
		Calls: make(map[string][]interface{}),
	}
}

func (m *ResumeRepository) Create(ctx context.Context, resume *models.Resume) error {
	m.Calls["Create"] = append(m.Calls["Create"], resume)
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, resume)
	}
	return nil
}

func (m *ResumeRepository) List(ctx context.Context, limit, offset int) ([]models.ResumeSummary, error) {
	m.Calls["List"] = append(m.Calls["List"], []int{limit, offset})
	if m.ListFunc != nil {
		return m.ListFunc(ctx, limit, offset)
	}
	return []models.ResumeSummary{}, nil
}

func (m *ResumeRepository) Count(ctx context.Context) (int, error) {
	m.Calls["Count"] = append(m.Calls["Count"], nil)
	if m.CountFunc != nil {
		return m.CountFunc(ctx)
	}
	return 0, nil
}

func (m *ResumeRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Resume, error) {
	m.Calls["GetByID"] = append(m.Calls["GetByID"], id)
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *ResumeRepository) Delete(ctx context.Context, id uuid.UUID) (bool, error) {
	m.Calls["Delete"] = append(m.Calls["Delete"], id)
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	return false, nil
}

// Ensure ResumeRepository implements the interface
var _ repositories.ResumeRepository = (*ResumeRepository)(nil)
