package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/jonathan/recruitment-workbench/internal/model"
)

// CreateJobPosting inserts a job posting.
func (s *Store) CreateJobPosting(ctx context.Context, j *model.JobPosting) error {
	_, err := s.pool.Exec(ctx,
		`INSERT INTO job_postings
		 (id, title, description, location, salary_min, salary_max,
		  required_experience, required_skills, preferred_skills, active, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`,
		j.ID, j.Title, j.Description, j.Location, decimalString(j.SalaryMin), decimalString(j.SalaryMax),
		j.RequiredExperience, j.RequiredSkills, j.PreferredSkills, j.Active, j.CreatedAt, j.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create job posting: %w", err)
	}
	return nil
}

// UpdateJobPosting persists the mutable posting fields.
func (s *Store) UpdateJobPosting(ctx context.Context, j *model.JobPosting) error {
	tag, err := s.pool.Exec(ctx,
		`UPDATE job_postings
		 SET title = $2, description = $3, location = $4, salary_min = $5, salary_max = $6,
		     required_experience = $7, required_skills = $8, preferred_skills = $9,
		     active = $10, updated_at = $11
		 WHERE id = $1`,
		j.ID, j.Title, j.Description, j.Location, decimalString(j.SalaryMin), decimalString(j.SalaryMax),
		j.RequiredExperience, j.RequiredSkills, j.PreferredSkills, j.Active, j.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to update job posting: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("job posting %s not found", j.ID)
	}
	return nil
}

// SetJobPostingActive toggles the active flag.
func (s *Store) SetJobPostingActive(ctx context.Context, id uuid.UUID, active bool) error {
	tag, err := s.pool.Exec(ctx,
		`UPDATE job_postings SET active = $2, updated_at = NOW() WHERE id = $1`, id, active)
	if err != nil {
		return fmt.Errorf("failed to toggle job posting: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("job posting %s not found", id)
	}
	return nil
}

// GetJobPosting fetches a posting by ID; (nil, nil) when absent.
func (s *Store) GetJobPosting(ctx context.Context, id uuid.UUID) (*model.JobPosting, error) {
	return s.scanJobPosting(s.pool.QueryRow(ctx,
		`SELECT id, title, description, location, salary_min::text, salary_max::text,
		        required_experience, required_skills, preferred_skills, active, created_at, updated_at
		 FROM job_postings WHERE id = $1`, id))
}

// ListJobPostings returns postings, newest first; activeOnly restricts to
// active ones.
func (s *Store) ListJobPostings(ctx context.Context, activeOnly bool) ([]*model.JobPosting, error) {
	query := `SELECT id, title, description, location, salary_min::text, salary_max::text,
	                 required_experience, required_skills, preferred_skills, active, created_at, updated_at
	          FROM job_postings`
	if activeOnly {
		query += ` WHERE active`
	}
	query += ` ORDER BY created_at DESC`

	rows, err := s.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list job postings: %w", err)
	}
	defer rows.Close()

	var jobs []*model.JobPosting
	for rows.Next() {
		j, err := s.scanJobPosting(rows)
		if err != nil {
			return nil, err
		}
		jobs = append(jobs, j)
	}
	return jobs, rows.Err()
}

// DeleteJobPosting removes a posting by ID.
func (s *Store) DeleteJobPosting(ctx context.Context, id uuid.UUID) error {
	tag, err := s.pool.Exec(ctx, `DELETE FROM job_postings WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete job posting: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("job posting %s not found", id)
	}
	return nil
}

func (s *Store) scanJobPosting(row rowScanner) (*model.JobPosting, error) {
	var (
		j        model.JobPosting
		min, max *string
	)
	err := row.Scan(&j.ID, &j.Title, &j.Description, &j.Location, &min, &max,
		&j.RequiredExperience, &j.RequiredSkills, &j.PreferredSkills,
		&j.Active, &j.CreatedAt, &j.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to scan job posting: %w", err)
	}
	if j.SalaryMin, err = parseDecimal(min); err != nil {
		return nil, err
	}
	if j.SalaryMax, err = parseDecimal(max); err != nil {
		return nil, err
	}
	return &j, nil
}

func decimalString(d *decimal.Decimal) *string {
	if d == nil {
		return nil
	}
	s := d.String()
	return &s
}

func parseDecimal(s *string) (*decimal.Decimal, error) {
	if s == nil {
		return nil, nil
	}
	d, err := decimal.NewFromString(*s)
	if err != nil {
		return nil, fmt.Errorf("failed to parse salary %q: %w", *s, err)
	}
	return &d, nil
}
