package services

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/resumevault/resume-vault/src/models"
	"github.com/resumevault/resume-vault/src/repositories"
)

const (
	// DefaultPerPage is the listing page size when none is requested.
	DefaultPerPage = 20

	// MaxPerPage caps the listing page size.
	MaxPerPage = 100
)

// ResumeListResult is one page of the admin resume index.
type ResumeListResult struct {
	Resumes    []models.ResumeSummary `json:"resumes"`
	Total      int                    `json:"total"`
	Page       int                    `json:"page"`
	PerPage    int                    `json:"per_page"`
	TotalPages int                    `json:"total_pages"`
}

// ResumeService handles resume storage operations.
type ResumeService struct {
	repo repositories.ResumeRepository
}

// NewResumeService creates a new resume service
func NewResumeService(repo repositories.ResumeRepository) *ResumeService {
	return &ResumeService{repo: repo}
}

// Create assigns an id and persists a sanitized resume record.
func (rs *ResumeService) Create(ctx context.Context, resume *models.Resume) error {
	resume.ID = uuid.New()
	if err := rs.repo.Create(ctx, resume); err != nil {
		return fmt.Errorf("failed to store resume: %w", err)
	}
	return nil
}

// List returns one page of resume summaries, newest first. Page numbers
// start at 1; per_page is clamped to MaxPerPage.
func (rs *ResumeService) List(ctx context.Context, page, perPage int) (*ResumeListResult, error) {
	if page < 1 {
		page = 1
	}
	if perPage < 1 {
		perPage = DefaultPerPage
	}
	if perPage > MaxPerPage {
		perPage = MaxPerPage
	}

	summaries, err := rs.repo.List(ctx, perPage, (page-1)*perPage)
	if err != nil {
		return nil, fmt.Errorf("failed to list resumes: %w", err)
	}
	if summaries == nil {
		summaries = []models.ResumeSummary{}
	}

	total, err := rs.repo.Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count resumes: %w", err)
	}

	return &ResumeListResult{
		Resumes:    summaries,
		Total:      total,
		Page:       page,
		PerPage:    perPage,
		TotalPages: (total + perPage - 1) / perPage,
	}, nil
}

// Get fetches a full resume record by id. A syntactically invalid id is
// indistinguishable from an unknown one.
func (rs *ResumeService) Get(ctx context.Context, id string) (*models.Resume, error) {
	resumeID, err := uuid.Parse(id)
	if err != nil {
		return nil, ErrResumeNotFound
	}

	resume, err := rs.repo.GetByID(ctx, resumeID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch resume: %w", err)
	}
	if resume == nil {
		return nil, ErrResumeNotFound
	}
	return resume, nil
}

// Delete removes a resume by id.
func (rs *ResumeService) Delete(ctx context.Context, id string) error {
	resumeID, err := uuid.Parse(id)
	if err != nil {
		return ErrResumeNotFound
	}

	deleted, err := rs.repo.Delete(ctx, resumeID)
	if err != nil {
		return fmt.Errorf("failed to delete resume: %w", err)
	}
	if !deleted {
		return ErrResumeNotFound
	}
	return nil
}
