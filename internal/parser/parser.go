// Package parser turns a cleaned résumé text blob into a populated
// Candidate by running heuristic field extractors in a fixed order. Missing
// fields are reported as empty values, never as errors.
package parser

import (
	"errors"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/jonathan/recruitment-workbench/internal/extract"
	"github.com/jonathan/recruitment-workbench/internal/model"
)

// ErrEmptyInput reports a blank résumé text blob, the only input the parser
// rejects.
var ErrEmptyInput = errors.New("resume text is empty")

var (
	emailRe = regexp.MustCompile(`(?i)\b[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}\b`)

	// Tried in order; the first hit wins.
	phoneRes = []*regexp.Regexp{
		regexp.MustCompile(`\(?\b\d{3}\)?[-. ]?\d{3}[-. ]?\d{4}\b`),          // US
		regexp.MustCompile(`\+\d{1,3}[-. ]?\(?\d{3}\)?[-. ]?\d{3}[-. ]?\d{4}\b`), // international
		regexp.MustCompile(`\b\d{10}\b`),                                     // bare digits
		regexp.MustCompile(`\+\d{1,3}\s?\(?\d{3}\)?[-. ]?\d{3}[-. ]?\d{4}\b`), // extended country code
	}
	nonPhoneCharRe = regexp.MustCompile(`[^\d+]`)

	honorificRe = regexp.MustCompile(`(?i)^(mr\.?|mrs\.?|ms\.?|dr\.?|prof\.?)\s+`)
	suffixRe    = regexp.MustCompile(`(?i)\s+(jr\.?|sr\.?|ii|iii|iv)$`)
	nameWordRe  = regexp.MustCompile(`^[A-Z][a-z]+$`)

	explicitExpRe = regexp.MustCompile(`(?i)(\d+)\s*\+?\s*years?\s*(?:of\s*)?(?:experience|exp)`)
	dateRangeRe   = regexp.MustCompile(`(?i)(\d{4})\s*[-–—]\s*(\d{4}|present|current)`)

	skillsHeadingRe = regexp.MustCompile(`(?i)(?:technical\s+)?skills?\s*:?\s*`)
	sectionHeaderRe = regexp.MustCompile(`^\s*[A-Z][^:\n]*:`)
	skillSplitRe    = regexp.MustCompile(`[,;|•\n]`)
	listMarkerRe    = regexp.MustCompile(`^[-•*]\s*`)
	validSkillRe    = regexp.MustCompile(`^[a-zA-Z0-9\s.+#-]+$`)
	skillStopWordRe = regexp.MustCompile(`(?i)\b(and|or|the|with|in|of|for|to|at)\b`)
	whitespaceRunRe = regexp.MustCompile(`\s+`)
)

var educationKeywords = []string{
	"bachelor", "master", "phd", "doctorate", "degree", "university", "college",
	"b.s.", "b.a.", "m.s.", "m.a.", "m.b.a.", "ph.d.", "b.tech", "m.tech",
}

// Parser extracts candidate fields from résumé text. The zero value is not
// usable; construct with New.
type Parser struct {
	vocabulary []string
	skillRes   []*regexp.Regexp
	now        func() time.Time
}

// Option customizes a Parser.
type Option func(*Parser)

// WithVocabulary replaces the built-in skill vocabulary.
func WithVocabulary(skills []string) Option {
	return func(p *Parser) { p.vocabulary = skills }
}

// WithClock replaces the time source used to resolve open-ended date ranges
// ("2018 - Present"). Tests pin this to a fixed year.
func WithClock(now func() time.Time) Option {
	return func(p *Parser) { p.now = now }
}

// New creates a Parser with the default vocabulary and wall clock.
func New(opts ...Option) *Parser {
	p := &Parser{
		vocabulary: DefaultVocabulary,
		now:        time.Now,
	}
	for _, opt := range opts {
		opt(p)
	}
	p.skillRes = make([]*regexp.Regexp, len(p.vocabulary))
	for i, skill := range p.vocabulary {
		p.skillRes[i] = regexp.MustCompile(`(?i)\b` + regexp.QuoteMeta(strings.ToLower(skill)) + `\b`)
	}
	return p
}

// ParseFile extracts text from a résumé document and parses it.
func (p *Parser) ParseFile(path string) (*model.Candidate, error) {
	text, err := extract.File(path)
	if err != nil {
		return nil, err
	}
	return p.ParseText(text)
}

// ParseText parses a cleaned résumé text blob into a Candidate. Absent
// fields come back empty; only blank input is an error.
func (p *Parser) ParseText(text string) (*model.Candidate, error) {
	if strings.TrimSpace(text) == "" {
		return nil, ErrEmptyInput
	}

	c := model.NewCandidate()
	c.SetResumeText(text)

	email := extractEmail(text)
	if name := extractName(text); name != "" {
		c.SetName(name)
	} else if email != "" {
		c.SetName(nameFromEmail(email))
	}
	if email != "" {
		c.SetEmail(email)
	}
	if phone := extractPhone(text); phone != "" {
		c.SetPhone(phone)
	}
	if education := extractEducation(text); education != "" {
		c.SetEducation(education)
	}
	c.SetExperienceYears(p.extractExperience(text))
	c.SetSkills(p.extractSkills(text))

	return c, nil
}

// extractName scans the first five non-empty lines for something shaped like
// a person's name.
func extractName(text string) string {
	seen := 0
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		seen++
		if seen > 5 {
			break
		}
		lower := strings.ToLower(line)
		if strings.Contains(lower, "resume") || strings.Contains(lower, "curriculum vitae") || lower == "cv" {
			continue
		}
		if isLikelyName(line) {
			return line
		}
	}
	return ""
}

// isLikelyName accepts 2-4 capitalized alphabetic words after stripping
// honorifics and generational suffixes.
func isLikelyName(line string) bool {
	line = honorificRe.ReplaceAllString(line, "")
	line = suffixRe.ReplaceAllString(line, "")

	words := strings.Fields(line)
	if len(words) < 2 || len(words) > 4 {
		return false
	}
	for _, word := range words {
		if len(word) < 2 || !nameWordRe.MatchString(word) {
			return false
		}
	}
	return true
}

// nameFromEmail derives a display name from the local part of an email
// address: segments split on '.', '_' and '-', title-cased, space-joined.
func nameFromEmail(email string) string {
	local, _, _ := strings.Cut(email, "@")
	segments := strings.FieldsFunc(local, func(r rune) bool {
		return r == '.' || r == '_' || r == '-'
	})
	for i, seg := range segments {
		segments[i] = strings.ToUpper(seg[:1]) + strings.ToLower(seg[1:])
	}
	return strings.Join(segments, " ")
}

// extractEmail returns the first email address, lowercased.
func extractEmail(text string) string {
	return strings.ToLower(emailRe.FindString(text))
}

// extractPhone tries the phone patterns in order and cleans the first match:
// a leading '+' survives, every other non-digit is stripped.
func extractPhone(text string) string {
	for _, re := range phoneRes {
		if match := re.FindString(text); match != "" {
			return cleanPhone(match)
		}
	}
	return ""
}

func cleanPhone(phone string) string {
	plus := strings.HasPrefix(phone, "+")
	digits := nonPhoneCharRe.ReplaceAllString(phone, "")
	digits = strings.ReplaceAll(digits, "+", "")
	if plus {
		return "+" + digits
	}
	return digits
}

// extractEducation keeps lowercased lines mentioning an education keyword,
// whitespace-collapsed and length-bounded, joined with "; ".
func extractEducation(text string) string {
	var kept []string
	for _, line := range strings.Split(strings.ToLower(text), "\n") {
		for _, keyword := range educationKeywords {
			if !strings.Contains(line, keyword) {
				continue
			}
			clean := whitespaceRunRe.ReplaceAllString(strings.TrimSpace(line), " ")
			if len(clean) > 10 && len(clean) < 200 {
				kept = append(kept, clean)
			}
			break
		}
	}
	return strings.Join(kept, "; ")
}

// extractExperience computes the maximum of the largest explicit "N years of
// experience" claim and the sum of all date ranges, with open-ended ranges
// closed at the current year.
func (p *Parser) extractExperience(text string) int {
	explicit := 0
	for _, m := range explicitExpRe.FindAllStringSubmatch(text, -1) {
		if years, err := strconv.Atoi(m[1]); err == nil && years > explicit {
			explicit = years
		}
	}

	currentYear := p.now().Year()
	derived := 0
	for _, m := range dateRangeRe.FindAllStringSubmatch(text, -1) {
		start, err := strconv.Atoi(m[1])
		if err != nil {
			continue
		}
		end := currentYear
		if endStr := strings.ToLower(m[2]); endStr != "present" && endStr != "current" {
			if end, err = strconv.Atoi(endStr); err != nil {
				continue
			}
		}
		if end > start {
			derived += end - start
		}
	}

	if explicit > derived {
		return explicit
	}
	return derived
}

// extractSkills unions the vocabulary lookup with the skills-section scan,
// insertion-ordered with case-insensitive deduplication.
func (p *Parser) extractSkills(text string) []string {
	var found []string
	seen := make(map[string]bool)
	add := func(skill string) {
		key := strings.ToLower(skill)
		if !seen[key] {
			seen[key] = true
			found = append(found, skill)
		}
	}

	lowerText := strings.ToLower(text)
	for i, re := range p.skillRes {
		if re.MatchString(lowerText) {
			add(p.vocabulary[i])
		}
	}

	for _, token := range skillSectionTokens(text) {
		add(token)
	}
	return found
}

// skillSectionTokens locates "Skills:"-style sections and splits their
// contents into candidate tokens. A section runs until the next header line
// ("Word...:") or end of input.
func skillSectionTokens(text string) []string {
	var tokens []string
	for _, loc := range skillsHeadingRe.FindAllStringIndex(text, -1) {
		block := sectionBlock(text[loc[1]:])
		for _, raw := range skillSplitRe.Split(block, -1) {
			token := listMarkerRe.ReplaceAllString(strings.TrimSpace(raw), "")
			if isValidSkillToken(token) {
				tokens = append(tokens, token)
			}
		}
	}
	return tokens
}

func sectionBlock(rest string) string {
	lines := strings.Split(rest, "\n")
	end := len(lines)
	for i := 1; i < len(lines); i++ {
		if sectionHeaderRe.MatchString(lines[i]) {
			end = i
			break
		}
	}
	return strings.Join(lines[:end], "\n")
}

func isValidSkillToken(token string) bool {
	if len(token) <= 2 || len(token) >= 50 {
		return false
	}
	return validSkillRe.MatchString(token) && !skillStopWordRe.MatchString(strings.ToLower(token))
}
