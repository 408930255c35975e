package model

import (
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var validate = validator.New()

// JobPosting is a recruiter-defined target specification. Required and
// preferred skill lists are ordered and kept disjoint on insertion.
type JobPosting struct {
	ID                 uuid.UUID        `json:"id"`
	Title              string           `json:"title" validate:"required"`
	Description        string           `json:"description"`
	Location           string           `json:"location"`
	SalaryMin          *decimal.Decimal `json:"salary_min,omitempty"`
	SalaryMax          *decimal.Decimal `json:"salary_max,omitempty"`
	RequiredExperience int              `json:"required_experience" validate:"gte=0"`
	RequiredSkills     []string         `json:"required_skills"`
	PreferredSkills    []string         `json:"preferred_skills"`
	Active             bool             `json:"active"`
	CreatedAt          time.Time        `json:"created_at"`
	UpdatedAt          time.Time        `json:"updated_at"`
}

// NewJobPosting creates an active posting with a fresh ID and timestamps.
func NewJobPosting(title string) *JobPosting {
	now := time.Now()
	return &JobPosting{
		ID:              uuid.New(),
		Title:           title,
		RequiredSkills:  []string{},
		PreferredSkills: []string{},
		Active:          true,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
}

func (j *JobPosting) touch() {
	j.UpdatedAt = time.Now()
}

// SetTitle sets the posting title.
func (j *JobPosting) SetTitle(title string) {
	j.Title = title
	j.touch()
}

// SetDescription sets the free-text description.
func (j *JobPosting) SetDescription(desc string) {
	j.Description = desc
	j.touch()
}

// SetLocation sets the posting location.
func (j *JobPosting) SetLocation(location string) {
	j.Location = location
	j.touch()
}

// SetSalaryRange sets the optional salary bounds. Either bound may be nil.
func (j *JobPosting) SetSalaryRange(min, max *decimal.Decimal) {
	j.SalaryMin = min
	j.SalaryMax = max
	j.touch()
}

// SetRequiredExperience sets the minimum years of experience; negative
// values are clamped to 0.
func (j *JobPosting) SetRequiredExperience(years int) {
	if years < 0 {
		years = 0
	}
	j.RequiredExperience = years
	j.touch()
}

// SetActive toggles the active flag.
func (j *JobPosting) SetActive(active bool) {
	j.Active = active
	j.touch()
}

// AddRequiredSkill appends a required skill unless blank or already listed
// in either skill list (case-insensitive).
func (j *JobPosting) AddRequiredSkill(skill string) {
	skill = strings.TrimSpace(skill)
	if skill == "" || containsFold(j.RequiredSkills, skill) || containsFold(j.PreferredSkills, skill) {
		return
	}
	j.RequiredSkills = append(j.RequiredSkills, skill)
	j.touch()
}

// AddPreferredSkill appends a preferred skill unless blank or already listed
// in either skill list (case-insensitive). Required and preferred stay
// disjoint.
func (j *JobPosting) AddPreferredSkill(skill string) {
	skill = strings.TrimSpace(skill)
	if skill == "" || containsFold(j.RequiredSkills, skill) || containsFold(j.PreferredSkills, skill) {
		return
	}
	j.PreferredSkills = append(j.PreferredSkills, skill)
	j.touch()
}

// RemoveRequiredSkill removes a required skill by case-insensitive match.
func (j *JobPosting) RemoveRequiredSkill(skill string) {
	j.RequiredSkills = removeFold(j.RequiredSkills, skill)
	j.touch()
}

// RemovePreferredSkill removes a preferred skill by case-insensitive match.
func (j *JobPosting) RemovePreferredSkill(skill string) {
	j.PreferredSkills = removeFold(j.PreferredSkills, skill)
	j.touch()
}

// AllSkills returns required skills followed by preferred skills.
func (j *JobPosting) AllSkills() []string {
	all := make([]string, 0, len(j.RequiredSkills)+len(j.PreferredSkills))
	all = append(all, j.RequiredSkills...)
	all = append(all, j.PreferredSkills...)
	return all
}

// RequiresSkill reports whether the skill is required, ignoring case.
func (j *JobPosting) RequiresSkill(skill string) bool {
	return containsFold(j.RequiredSkills, skill)
}

// PrefersSkill reports whether the skill is preferred, ignoring case.
func (j *JobPosting) PrefersSkill(skill string) bool {
	return containsFold(j.PreferredSkills, skill)
}

// Validate checks structural invariants, including salary bound ordering
// when both bounds are present.
func (j *JobPosting) Validate() error {
	if err := validate.Struct(j); err != nil {
		return err
	}
	if j.SalaryMin != nil && j.SalaryMax != nil && j.SalaryMin.GreaterThan(*j.SalaryMax) {
		return fmt.Errorf("salary_min %s exceeds salary_max %s", j.SalaryMin, j.SalaryMax)
	}
	return nil
}

// SalaryRange renders the salary bounds for display.
func (j *JobPosting) SalaryRange() string {
	switch {
	case j.SalaryMin != nil && j.SalaryMax != nil:
		return fmt.Sprintf("$%s - $%s", j.SalaryMin.StringFixed(0), j.SalaryMax.StringFixed(0))
	case j.SalaryMin != nil:
		return fmt.Sprintf("$%s+", j.SalaryMin.StringFixed(0))
	case j.SalaryMax != nil:
		return fmt.Sprintf("Up to $%s", j.SalaryMax.StringFixed(0))
	default:
		return "Salary not specified"
	}
}

// Summary renders a short human-readable description of the posting.
func (j *JobPosting) Summary() string {
	var b strings.Builder
	fmt.Fprintf(&b, "Title: %s\n", j.Title)
	fmt.Fprintf(&b, "Location: %s\n", j.Location)
	fmt.Fprintf(&b, "Experience Required: %d years\n", j.RequiredExperience)
	fmt.Fprintf(&b, "Salary: %s\n", j.SalaryRange())
	if len(j.RequiredSkills) > 0 {
		fmt.Fprintf(&b, "Required Skills: %s\n", strings.Join(j.RequiredSkills, ", "))
	}
	if len(j.PreferredSkills) > 0 {
		fmt.Fprintf(&b, "Preferred Skills: %s\n", strings.Join(j.PreferredSkills, ", "))
	}
	if j.Description != "" {
		fmt.Fprintf(&b, "Description: %s\n", j.Description)
	}
	return b.String()
}

func (j *JobPosting) String() string {
	return fmt.Sprintf("JobPosting{id=%s, title=%q, location=%q, experience=%d years, skills=%d}",
		j.ID, j.Title, j.Location, j.RequiredExperience, len(j.AllSkills()))
}

func containsFold(list []string, skill string) bool {
	for _, s := range list {
		if strings.EqualFold(s, skill) {
			return true
		}
	}
	return false
}

func removeFold(list []string, skill string) []string {
	skill = strings.TrimSpace(skill)
	for i, s := range list {
		if strings.EqualFold(s, skill) {
			return append(list[:i], list[i+1:]...)
		}
	}
	return list
}
