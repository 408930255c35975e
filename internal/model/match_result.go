package model

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// MatchResult is the scored, explainable comparison of a candidate against a
// job posting. It is immutable once produced by the engine.
type MatchResult struct {
	CandidateID     uuid.UUID `json:"candidate_id"`
	JobID           uuid.UUID `json:"job_id"`
	Score           float64   `json:"score"`
	SkillMatchCount int       `json:"skill_match_count"`
	TotalSkills     int       `json:"total_skills"`
	ExperienceMatch bool      `json:"experience_match"`
	MatchedSkills   []string  `json:"matched_skills"`
	MissingSkills   []string  `json:"missing_skills"`
	Summary         string    `json:"summary,omitempty"`
	CalculatedAt    time.Time `json:"calculated_at"`
}

// ClampScore bounds a raw score to [0, 100].
func ClampScore(score float64) float64 {
	if score < 0 {
		return 0
	}
	if score > 100 {
		return 100
	}
	return score
}

// Grade maps the numeric score onto its discrete label.
func (m *MatchResult) Grade() string {
	return GradeForScore(m.Score)
}

// GradeForScore maps a score in [0, 100] onto its discrete label.
func GradeForScore(score float64) string {
	switch {
	case score >= 90:
		return "Excellent"
	case score >= 80:
		return "Very Good"
	case score >= 70:
		return "Good"
	case score >= 60:
		return "Fair"
	case score >= 50:
		return "Poor"
	default:
		return "Very Poor"
	}
}

// SkillMatchPercentage reports matched skills over the reported required
// total. The denominator is the required count only, so values above 100 are
// possible when preferred skills also match; kept for compatibility with the
// reference behavior.
func (m *MatchResult) SkillMatchPercentage() float64 {
	if m.TotalSkills == 0 {
		return 0
	}
	return float64(m.SkillMatchCount) / float64(m.TotalSkills) * 100
}

// IsStrongMatch reports a score of at least 80.
func (m *MatchResult) IsStrongMatch() bool { return m.Score >= 80 }

// IsGoodMatch reports a score of at least 70.
func (m *MatchResult) IsGoodMatch() bool { return m.Score >= 70 }

// GenerateSummary renders the textual explanation of the match.
func (m *MatchResult) GenerateSummary() {
	var b strings.Builder
	fmt.Fprintf(&b, "Match Score: %.1f%% (%s)\n", m.Score, m.Grade())
	fmt.Fprintf(&b, "Skills Match: %d/%d (%.1f%%)\n", m.SkillMatchCount, m.TotalSkills, m.SkillMatchPercentage())
	if m.ExperienceMatch {
		b.WriteString("Experience Match: meets requirement\n")
	} else {
		b.WriteString("Experience Match: below requirement\n")
	}
	if len(m.MatchedSkills) > 0 {
		fmt.Fprintf(&b, "Matched Skills: %s\n", strings.Join(m.MatchedSkills, ", "))
	}
	if len(m.MissingSkills) > 0 {
		fmt.Fprintf(&b, "Missing Skills: %s\n", strings.Join(m.MissingSkills, ", "))
	}
	m.Summary = b.String()
}

func (m *MatchResult) String() string {
	return fmt.Sprintf("MatchResult{candidate=%s, job=%s, score=%.1f%%, grade=%s}",
		m.CandidateID, m.JobID, m.Score, m.Grade())
}
