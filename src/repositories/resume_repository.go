package repositories

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/resumevault/resume-vault/src/models"
)

// PostgresResumeRepository is the pgx-backed ResumeRepository. The
// structured sub-fields are stored as JSONB and round-trip through the
// models package codecs.
type PostgresResumeRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresResumeRepository creates a new resume repository
func NewPostgresResumeRepository(pool *pgxpool.Pool) *PostgresResumeRepository {
	return &PostgresResumeRepository{pool: pool}
}

func (r *PostgresResumeRepository) Create(ctx context.Context, resume *models.Resume) error {
	socialLinks, err := json.Marshal(resume.SocialLinks)
	if err != nil {
		return fmt.Errorf("failed to encode social_links: %w", err)
	}
	education, err := json.Marshal(resume.Education)
	if err != nil {
		return fmt.Errorf("failed to encode education: %w", err)
	}
	technicalSkills, err := json.Marshal(resume.TechnicalSkills)
	if err != nil {
		return fmt.Errorf("failed to encode technical_skills: %w", err)
	}
	workExperience, err := json.Marshal(resume.WorkExperience)
	if err != nil {
		return fmt.Errorf("failed to encode work_experience: %w", err)
	}
	projects, err := json.Marshal(resume.Projects)
	if err != nil {
		return fmt.Errorf("failed to encode projects: %w", err)
	}
	languages, err := json.Marshal(resume.Languages)
	if err != nil {
		return fmt.Errorf("failed to encode languages: %w", err)
	}
	certifications, err := json.Marshal(resume.Certifications)
	if err != nil {
		return fmt.Errorf("failed to encode certifications: %w", err)
	}

	err = r.pool.QueryRow(ctx,
		`INSERT INTO resumes (
			id, user_email, full_name, phone, social_links,
			profile_summary, education, technical_skills,
			work_experience, projects, languages, certifications
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
		RETURNING created_at, updated_at`,
		resume.ID, resume.UserEmail, resume.FullName, nullable(resume.Phone),
		socialLinks, nullable(resume.ProfileSummary), education, technicalSkills,
		workExperience, projects, languages, certifications,
	).Scan(&resume.CreatedAt, &resume.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to insert resume: %w", err)
	}
	return nil
}

func (r *PostgresResumeRepository) List(ctx context.Context, limit, offset int) ([]models.ResumeSummary, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT id, user_email, full_name, COALESCE(phone, ''), created_at, updated_at
		 FROM resumes
		 ORDER BY created_at DESC
		 LIMIT $1 OFFSET $2`,
		limit, offset,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to query resumes: %w", err)
	}
	defer rows.Close()

	summaries := []models.ResumeSummary{}
	for rows.Next() {
		var s models.ResumeSummary
		if err := rows.Scan(&s.ID, &s.UserEmail, &s.FullName, &s.Phone, &s.CreatedAt, &s.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan resume: %w", err)
		}
		summaries = append(summaries, s)
	}
	return summaries, rows.Err()
}

func (r *PostgresResumeRepository) Count(ctx context.Context) (int, error) {
	var total int
	if err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM resumes`).Scan(&total); err != nil {
		return 0, fmt.Errorf("failed to count resumes: %w", err)
	}
	return total, nil
}

func (r *PostgresResumeRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Resume, error) {
	resume := &models.Resume{}
	var socialLinks, education, technicalSkills, workExperience, projects, languages, certifications []byte

	err := r.pool.QueryRow(ctx,
		`SELECT id, user_email, full_name, COALESCE(phone, ''), social_links,
		        COALESCE(profile_summary, ''), education, technical_skills,
		        work_experience, projects, languages, certifications,
		        created_at, updated_at
		 FROM resumes
		 WHERE id = $1`,
		id,
	).Scan(
		&resume.ID, &resume.UserEmail, &resume.FullName, &resume.Phone, &socialLinks,
		&resume.ProfileSummary, &education, &technicalSkills,
		&workExperience, &projects, &languages, &certifications,
		&resume.CreatedAt, &resume.UpdatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query resume: %w", err)
	}

	for _, field := range []struct {
		name string
		data []byte
		dst  any
	}{
		{"social_links", socialLinks, &resume.SocialLinks},
		{"education", education, &resume.Education},
		{"technical_skills", technicalSkills, &resume.TechnicalSkills},
		{"work_experience", workExperience, &resume.WorkExperience},
		{"projects", projects, &resume.Projects},
		{"languages", languages, &resume.Languages},
		{"certifications", certifications, &resume.Certifications},
	} {
		if err := json.Unmarshal(field.data, field.dst); err != nil {
			return nil, fmt.Errorf("failed to decode %s: %w", field.name, err)
		}
	}
	return resume, nil
}

func (r *PostgresResumeRepository) Delete(ctx context.Context, id uuid.UUID) (bool, error) {
	result, err := r.pool.Exec(ctx, `DELETE FROM resumes WHERE id = $1`, id)
	if err != nil {
		return false, fmt.Errorf("failed to delete resume: %w", err)
	}
	return result.RowsAffected() > 0, nil
}

// nullable maps an empty string to SQL NULL for optional text columns.
func nullable(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

var _ ResumeRepository = (*PostgresResumeRepository)(nil)
