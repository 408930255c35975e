// Package model defines the core records shared by the extraction pipeline,
// the résumé parser, and the matching engine: candidates, job postings, and
// match results.
package model

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Candidate is the normalized record of a job-seeker, produced by the résumé
// parser or entered by an operator. Skills are case-insensitively unique and
// preserve the casing they were first added with.
type Candidate struct {
	ID              uuid.UUID `json:"id"`
	Name            string    `json:"name"`
	Email           string    `json:"email" validate:"omitempty,email"`
	Phone           string    `json:"phone"`
	Education       string    `json:"education"`
	ExperienceYears int       `json:"experience_years" validate:"gte=0"`
	ResumeText      string    `json:"resume_text,omitempty"`
	Skills          []string  `json:"skills"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

// NewCandidate creates an empty candidate with a fresh ID and timestamps.
func NewCandidate() *Candidate {
	now := time.Now()
	return &Candidate{
		ID:        uuid.New(),
		Skills:    []string{},
		CreatedAt: now,
		UpdatedAt: now,
	}
}

func (c *Candidate) touch() {
	c.UpdatedAt = time.Now()
}

// SetName sets the candidate name and refreshes UpdatedAt.
func (c *Candidate) SetName(name string) {
	c.Name = name
	c.touch()
}

// SetEmail stores the email normalized to lowercase.
func (c *Candidate) SetEmail(email string) {
	c.Email = strings.ToLower(strings.TrimSpace(email))
	c.touch()
}

// SetPhone sets the candidate phone number.
func (c *Candidate) SetPhone(phone string) {
	c.Phone = phone
	c.touch()
}

// SetEducation sets the education free-text summary.
func (c *Candidate) SetEducation(education string) {
	c.Education = education
	c.touch()
}

// SetExperienceYears sets the experience; negative values are clamped to 0.
func (c *Candidate) SetExperienceYears(years int) {
	if years < 0 {
		years = 0
	}
	c.ExperienceYears = years
	c.touch()
}

// SetResumeText attaches the cleaned résumé text blob.
func (c *Candidate) SetResumeText(text string) {
	c.ResumeText = text
	c.touch()
}

// AddSkill appends a skill unless it is blank or already present under
// case-insensitive comparison. The original casing of the first occurrence
// wins.
func (c *Candidate) AddSkill(skill string) {
	skill = strings.TrimSpace(skill)
	if skill == "" || c.HasSkill(skill) {
		return
	}
	c.Skills = append(c.Skills, skill)
	c.touch()
}

// SetSkills replaces the skill list, deduplicating case-insensitively while
// keeping insertion order.
func (c *Candidate) SetSkills(skills []string) {
	c.Skills = c.Skills[:0]
	seen := make(map[string]bool, len(skills))
	for _, s := range skills {
		s = strings.TrimSpace(s)
		if s == "" {
			continue
		}
		key := strings.ToLower(s)
		if seen[key] {
			continue
		}
		seen[key] = true
		c.Skills = append(c.Skills, s)
	}
	c.touch()
}

// RemoveSkill removes a skill by case-insensitive comparison.
func (c *Candidate) RemoveSkill(skill string) {
	key := strings.ToLower(strings.TrimSpace(skill))
	for i, s := range c.Skills {
		if strings.ToLower(s) == key {
			c.Skills = append(c.Skills[:i], c.Skills[i+1:]...)
			c.touch()
			return
		}
	}
}

// HasSkill reports whether the candidate lists the skill, ignoring case.
func (c *Candidate) HasSkill(skill string) bool {
	key := strings.ToLower(strings.TrimSpace(skill))
	for _, s := range c.Skills {
		if strings.ToLower(s) == key {
			return true
		}
	}
	return false
}

// IsExperienced reports whether the candidate meets a years-of-experience
// requirement.
func (c *Candidate) IsExperienced(requiredYears int) bool {
	return c.ExperienceYears >= requiredYears
}

// Validate checks structural invariants (email shape, non-negative
// experience).
func (c *Candidate) Validate() error {
	return validate.Struct(c)
}

// Summary renders a short human-readable description of the candidate.
func (c *Candidate) Summary() string {
	var b strings.Builder
	fmt.Fprintf(&b, "Name: %s\n", c.Name)
	fmt.Fprintf(&b, "Email: %s\n", c.Email)
	if c.Phone != "" {
		fmt.Fprintf(&b, "Phone: %s\n", c.Phone)
	}
	fmt.Fprintf(&b, "Experience: %d years\n", c.ExperienceYears)
	if c.Education != "" {
		fmt.Fprintf(&b, "Education: %s\n", c.Education)
	}
	if len(c.Skills) > 0 {
		fmt.Fprintf(&b, "Skills: %s\n", strings.Join(c.Skills, ", "))
	}
	return b.String()
}

func (c *Candidate) String() string {
	return fmt.Sprintf("Candidate{id=%s, name=%q, email=%q, experience=%d years, skills=%d}",
		c.ID, c.Name, c.Email, c.ExperienceYears, len(c.Skills))
}
