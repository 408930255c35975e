// Package engine computes bounded, explainable match scores between
// candidates and job postings, plus batch ranking operations over them.
package engine

import (
	"errors"
	"sort"
	"strings"
	"time"

	"github.com/jonathan/recruitment-workbench/internal/model"
)

// Component weights. Required-skill coverage dominates.
const (
	requiredSkillsWeight  = 0.6
	preferredSkillsWeight = 0.2
	experienceWeight      = 0.2
)

// Bonus points added after weighting.
const (
	maxExperienceBonus = 10.0 // for exceeding the experience requirement
	perfectSkillsBonus = 5.0  // for covering every required skill
)

// ErrNilInput reports a nil candidate or job posting passed to Match.
var ErrNilInput = errors.New("candidate and job posting must be non-nil")

// Engine scores candidates against job postings. It is stateless and safe
// for concurrent use.
type Engine struct{}

// New creates a matching engine.
func New() *Engine {
	return &Engine{}
}

// skillMatch is the intermediate skill-coverage tally.
type skillMatch struct {
	requiredMatched  int
	preferredMatched int
	totalRequired    int
	totalPreferred   int
	matched          []string
	missing          []string
}

// Match scores one candidate against one job posting. It is total,
// deterministic, and performs no I/O.
func (e *Engine) Match(candidate *model.Candidate, job *model.JobPosting) (*model.MatchResult, error) {
	if candidate == nil || job == nil {
		return nil, ErrNilInput
	}

	skills := matchSkills(candidate, job)
	experienceMatch := candidate.ExperienceYears >= job.RequiredExperience

	result := &model.MatchResult{
		CandidateID: candidate.ID,
		JobID:       job.ID,
		Score:       score(skills, experienceMatch, candidate, job),
		// The reported denominator is the required count only, even though
		// the matched count includes preferred hits. Preserved as-is for
		// compatibility with existing consumers.
		SkillMatchCount: skills.requiredMatched + skills.preferredMatched,
		TotalSkills:     skills.totalRequired,
		ExperienceMatch: experienceMatch,
		MatchedSkills:   skills.matched,
		MissingSkills:   skills.missing,
		CalculatedAt:    time.Now(),
	}
	result.GenerateSummary()
	return result, nil
}

// matchSkills compares skill lists case-insensitively. Matched and missing
// skills are reported in lowercase: required hits first, then preferred hits
// not already listed.
func matchSkills(candidate *model.Candidate, job *model.JobPosting) skillMatch {
	have := make(map[string]bool, len(candidate.Skills))
	for _, s := range candidate.Skills {
		have[strings.ToLower(s)] = true
	}

	sm := skillMatch{
		totalRequired:  len(job.RequiredSkills),
		totalPreferred: len(job.PreferredSkills),
		matched:        []string{},
		missing:        []string{},
	}
	listed := make(map[string]bool)

	for _, skill := range job.RequiredSkills {
		lower := strings.ToLower(skill)
		if have[lower] {
			sm.matched = append(sm.matched, lower)
			listed[lower] = true
			sm.requiredMatched++
		} else {
			sm.missing = append(sm.missing, lower)
		}
	}
	for _, skill := range job.PreferredSkills {
		lower := strings.ToLower(skill)
		if have[lower] && !listed[lower] {
			sm.matched = append(sm.matched, lower)
			listed[lower] = true
			sm.preferredMatched++
		}
	}
	return sm
}

// score combines the weighted components and bonuses, clamped to [0, 100].
func score(sm skillMatch, experienceMatch bool, candidate *model.Candidate, job *model.JobPosting) float64 {
	total := 0.0

	if sm.totalRequired > 0 {
		total += float64(sm.requiredMatched) / float64(sm.totalRequired) * 100 * requiredSkillsWeight
	} else {
		total += 100 * requiredSkillsWeight
	}

	if sm.totalPreferred > 0 {
		total += float64(sm.preferredMatched) / float64(sm.totalPreferred) * 100 * preferredSkillsWeight
	} else {
		total += 100 * preferredSkillsWeight
	}

	if experienceMatch {
		total += 100 * experienceWeight
		if excess := candidate.ExperienceYears - job.RequiredExperience; excess > 0 {
			bonus := float64(excess) * 2
			if bonus > maxExperienceBonus {
				bonus = maxExperienceBonus
			}
			total += bonus
		}
	} else if job.RequiredExperience > 0 {
		ratio := float64(candidate.ExperienceYears) / float64(job.RequiredExperience)
		if ratio > 1 {
			ratio = 1
		}
		total += ratio * 100 * experienceWeight
	}

	if sm.totalRequired > 0 && sm.requiredMatched == sm.totalRequired {
		total += perfectSkillsBonus
	}

	return model.ClampScore(total)
}

// TopK scores every candidate against the job and returns the results sorted
// by descending score; ties keep input order. A non-positive k returns all.
func (e *Engine) TopK(job *model.JobPosting, candidates []*model.Candidate, k int) []*model.MatchResult {
	if job == nil || len(candidates) == 0 {
		return []*model.MatchResult{}
	}

	results := make([]*model.MatchResult, 0, len(candidates))
	for _, candidate := range candidates {
		if candidate == nil {
			continue
		}
		result, err := e.Match(candidate, job)
		if err != nil {
			continue
		}
		results = append(results, result)
	}

	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Score > results[j].Score
	})

	if k > 0 && k < len(results) {
		results = results[:k]
	}
	return results
}

// AboveThreshold returns every match scoring at least minScore, sorted by
// descending score.
func (e *Engine) AboveThreshold(job *model.JobPosting, candidates []*model.Candidate, minScore float64) []*model.MatchResult {
	all := e.TopK(job, candidates, 0)
	kept := make([]*model.MatchResult, 0, len(all))
	for _, result := range all {
		if result.Score >= minScore {
			kept = append(kept, result)
		}
	}
	return kept
}

// SuitableJobs ranks active job postings for a fixed candidate, best first.
// A non-positive k returns all.
func (e *Engine) SuitableJobs(candidate *model.Candidate, jobs []*model.JobPosting, k int) []*model.MatchResult {
	if candidate == nil || len(jobs) == 0 {
		return []*model.MatchResult{}
	}

	results := make([]*model.MatchResult, 0, len(jobs))
	for _, job := range jobs {
		if job == nil || !job.Active {
			continue
		}
		result, err := e.Match(candidate, job)
		if err != nil {
			continue
		}
		results = append(results, result)
	}

	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Score > results[j].Score
	})

	if k > 0 && k < len(results) {
		results = results[:k]
	}
	return results
}

// Stats summarizes the score distribution of all candidates against a job.
type Stats struct {
	TotalCandidates  int     `json:"total_candidates"`
	ExcellentMatches int     `json:"excellent_matches"` // score >= 90
	GoodMatches      int     `json:"good_matches"`      // 70-89
	FairMatches      int     `json:"fair_matches"`      // 50-69
	PoorMatches      int     `json:"poor_matches"`      // < 50
	AverageScore     float64 `json:"average_score"`
	HighestScore     float64 `json:"highest_score"`
	LowestScore      float64 `json:"lowest_score"`
}

// MatchingStats computes the score distribution for a candidate pool.
func (e *Engine) MatchingStats(job *model.JobPosting, candidates []*model.Candidate) Stats {
	var stats Stats
	if job == nil || len(candidates) == 0 {
		return stats
	}

	results := e.TopK(job, candidates, 0)
	stats.TotalCandidates = len(candidates)

	sum := 0.0
	for i, result := range results {
		switch {
		case result.Score >= 90:
			stats.ExcellentMatches++
		case result.Score >= 70:
			stats.GoodMatches++
		case result.Score >= 50:
			stats.FairMatches++
		default:
			stats.PoorMatches++
		}
		sum += result.Score
		if i == 0 || result.Score > stats.HighestScore {
			stats.HighestScore = result.Score
		}
		if i == 0 || result.Score < stats.LowestScore {
			stats.LowestScore = result.Score
		}
	}
	if len(results) > 0 {
		stats.AverageScore = sum / float64(len(results))
	}
	return stats
}
