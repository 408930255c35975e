package store

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/jonathan/recruitment-workbench/internal/model"
)

// ErrDuplicateEmail reports an insert that would violate email uniqueness.
var ErrDuplicateEmail = errors.New("candidate email already exists")

// CreateCandidate inserts a candidate. The store enforces email uniqueness.
func (s *Store) CreateCandidate(ctx context.Context, c *model.Candidate) error {
	_, err := s.pool.Exec(ctx,
		`INSERT INTO candidates
		 (id, name, email, phone, education, experience_years, resume_text, skills, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`,
		c.ID, c.Name, c.Email, c.Phone, c.Education, c.ExperienceYears,
		c.ResumeText, c.Skills, c.CreatedAt, c.UpdatedAt,
	)
	if err != nil {
		if strings.Contains(err.Error(), "duplicate key") {
			return fmt.Errorf("%w: %s", ErrDuplicateEmail, c.Email)
		}
		return fmt.Errorf("failed to create candidate: %w", err)
	}
	return nil
}

// UpdateCandidate persists the mutable candidate fields.
func (s *Store) UpdateCandidate(ctx context.Context, c *model.Candidate) error {
	tag, err := s.pool.Exec(ctx,
		`UPDATE candidates
		 SET name = $2, email = $3, phone = $4, education = $5,
		     experience_years = $6, resume_text = $7, skills = $8, updated_at = $9
		 WHERE id = $1`,
		c.ID, c.Name, c.Email, c.Phone, c.Education,
		c.ExperienceYears, c.ResumeText, c.Skills, c.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to update candidate: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("candidate %s not found", c.ID)
	}
	return nil
}

// GetCandidate fetches a candidate by ID; (nil, nil) when absent.
func (s *Store) GetCandidate(ctx context.Context, id uuid.UUID) (*model.Candidate, error) {
	return s.scanCandidate(s.pool.QueryRow(ctx,
		`SELECT id, name, email, phone, education, experience_years, resume_text, skills, created_at, updated_at
		 FROM candidates WHERE id = $1`, id))
}

// GetCandidateByEmail fetches a candidate by normalized email; (nil, nil)
// when absent.
func (s *Store) GetCandidateByEmail(ctx context.Context, email string) (*model.Candidate, error) {
	return s.scanCandidate(s.pool.QueryRow(ctx,
		`SELECT id, name, email, phone, education, experience_years, resume_text, skills, created_at, updated_at
		 FROM candidates WHERE email = $1`, strings.ToLower(email)))
}

// ListCandidates returns all candidates, newest first.
func (s *Store) ListCandidates(ctx context.Context) ([]*model.Candidate, error) {
	rows, err := s.pool.Query(ctx,
		`SELECT id, name, email, phone, education, experience_years, resume_text, skills, created_at, updated_at
		 FROM candidates ORDER BY created_at DESC`)
	if err != nil {
		return nil, fmt.Errorf("failed to list candidates: %w", err)
	}
	defer rows.Close()

	var candidates []*model.Candidate
	for rows.Next() {
		c, err := s.scanCandidate(rows)
		if err != nil {
			return nil, err
		}
		candidates = append(candidates, c)
	}
	return candidates, rows.Err()
}

// DeleteCandidate removes a candidate by ID.
func (s *Store) DeleteCandidate(ctx context.Context, id uuid.UUID) error {
	tag, err := s.pool.Exec(ctx, `DELETE FROM candidates WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete candidate: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("candidate %s not found", id)
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func (s *Store) scanCandidate(row rowScanner) (*model.Candidate, error) {
	var c model.Candidate
	err := row.Scan(&c.ID, &c.Name, &c.Email, &c.Phone, &c.Education,
		&c.ExperienceYears, &c.ResumeText, &c.Skills, &c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to scan candidate: %w", err)
	}
	return &c, nil
}
