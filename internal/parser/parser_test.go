package parser

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fixedYear pins the parser clock so open-ended date ranges resolve
// deterministically.
func fixedYear(year int) Option {
	return WithClock(func() time.Time {
		return time.Date(year, time.June, 1, 0, 0, 0, 0, time.UTC)
	})
}

func TestParseTextEmpty(t *testing.T) {
	p := New()
	for _, input := range []string{"", "   ", "\n\t\n"} {
		_, err := p.ParseText(input)
		assert.ErrorIs(t, err, ErrEmptyInput)
	}
}

func TestParseTextFullResume(t *testing.T) {
	text := `John Smith
Software Engineer
john.smith@example.com | (555) 123-4567

Summary:
Backend developer with 8 years of experience.

Education:
Bachelor of Science in Computer Science, State University

Skills:
Java, Spring, PostgreSQL, Docker

Experience:
Acme Corp, 2016 - 2020
Widget LLC, 2020 - Present`

	p := New(fixedYear(2024))
	c, err := p.ParseText(text)
	require.NoError(t, err)

	assert.Equal(t, "John Smith", c.Name)
	assert.Equal(t, "john.smith@example.com", c.Email)
	assert.Equal(t, "5551234567", c.Phone)
	assert.Equal(t, "bachelor of science in computer science, state university", c.Education)
	assert.Equal(t, 8, c.ExperienceYears)
	assert.Equal(t, []string{"Java", "Spring", "PostgreSQL", "Docker"}, c.Skills)
	assert.Equal(t, text, c.ResumeText)
}

func TestExtractName(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		expected string
	}{
		{"Simple two-word name", "John Smith\nEngineer", "John Smith"},
		{"Three-word name", "Mary Jane Watson\nDesigner", "Mary Jane Watson"},
		{"Resume header skipped", "Resume\nJohn Smith\n", "John Smith"},
		{"Curriculum vitae header skipped", "Curriculum Vitae\nJane Doe\n", "Jane Doe"},
		{"Bare CV header skipped", "CV\nJane Doe\n", "Jane Doe"},
		{"Honorific accepted", "Dr. John Smith\n", "Dr. John Smith"},
		{"Suffix accepted", "John Smith Jr.\n", "John Smith Jr."},
		{"Single word rejected", "John\nsomething else entirely here\n", ""},
		{"Lowercase rejected", "john smith\nmore body text follows\n", ""},
		{"Five words rejected", "One Two Three Four Five\nbody\n", ""},
		{"All caps rejected", "JOHN SMITH\nbody text\n", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, extractName(tt.text))
		})
	}
}

func TestNameFallsBackToEmail(t *testing.T) {
	p := New()
	c, err := p.ParseText("Contact: jane.q.public@example.com")
	require.NoError(t, err)
	assert.Equal(t, "Jane Q Public", c.Name)
	assert.Equal(t, "jane.q.public@example.com", c.Email)
}

func TestExtractEmail(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		expected string
	}{
		{"Plain address", "reach me at bob@example.com please", "bob@example.com"},
		{"Uppercase lowered", "Email: BOB.JONES@Example.COM", "bob.jones@example.com"},
		{"Plus and percent", "a+b%c@sub.example.org", "a+b%c@sub.example.org"},
		{"First of several wins", "a@x.com b@y.com", "a@x.com"},
		{"None present", "no contact information", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, extractEmail(tt.text))
		})
	}
}

func TestExtractPhone(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		expected string
	}{
		{"Parenthesized area code", "Phone: (555) 123-4567", "5551234567"},
		{"Dashed", "555-123-4567", "5551234567"},
		{"Dotted", "call 555.123.4567 anytime", "5551234567"},
		{"Bare ten digits", "5551234567", "5551234567"},
		{"None present", "no phone listed", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, extractPhone(tt.text))
		})
	}
}

func TestCleanPhone(t *testing.T) {
	assert.Equal(t, "+15551234567", cleanPhone("+1 (555) 123-4567"))
	assert.Equal(t, "5551234567", cleanPhone("(555) 123.4567"))
}

func TestExtractEducation(t *testing.T) {
	t.Run("Keyword lines kept lowercased", func(t *testing.T) {
		text := "Intro line\nBachelor of Science, State University\nClosing line"
		assert.Equal(t, "bachelor of science, state university", extractEducation(text))
	})

	t.Run("Multiple lines joined with separator", func(t *testing.T) {
		text := "Master of Arts in History\nPhD candidate at Tech College"
		assert.Equal(t, "master of arts in history; phd candidate at tech college", extractEducation(text))
	})

	t.Run("Short lines dropped", func(t *testing.T) {
		assert.Equal(t, "", extractEducation("BS degree"))
	})

	t.Run("No keywords", func(t *testing.T) {
		assert.Equal(t, "", extractEducation("worked at a warehouse for years"))
	})
}

func TestExtractExperience(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		expected int
	}{
		{"Explicit years", "5 years of experience in retail", 5},
		{"Explicit with plus", "7+ years experience", 7},
		{"Largest explicit claim wins", "3 years of experience, then 6 years of experience", 6},
		{"Summed date ranges", "Acme 2015 - 2017\nGlobex 2018 - 2022", 6},
		{"Open-ended range uses clock year", "2018–Present", 6},
		{"Current keyword", "2020 - current", 4},
		{"Inverted range ignored", "2022 - 2018", 0},
		{"Explicit beats smaller derived", "10 years of experience\n2020 - 2022", 10},
		{"Derived beats smaller explicit", "2 years of experience\n2014 - 2020", 6},
		{"Nothing found", "no work history at all", 0},
	}

	p := New(fixedYear(2024))
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, p.extractExperience(tt.text))
		})
	}
}

func TestExtractSkills(t *testing.T) {
	p := New()

	t.Run("Vocabulary scan keeps canonical casing", func(t *testing.T) {
		c, err := p.ParseText("Built services in java and PYTHON backed by postgresql.")
		require.NoError(t, err)
		assert.Equal(t, []string{"Java", "Python", "PostgreSQL"}, c.Skills)
	})

	t.Run("Skills section tokens added", func(t *testing.T) {
		c, err := p.ParseText("Body text here.\nSkills: Terraform, Ansible | Grafana\nOther Things: ignored")
		require.NoError(t, err)
		assert.Contains(t, c.Skills, "Terraform")
		assert.Contains(t, c.Skills, "Ansible")
		assert.Contains(t, c.Skills, "Grafana")
		assert.NotContains(t, c.Skills, "ignored")
	})

	t.Run("Section duplicates of vocabulary hits collapse", func(t *testing.T) {
		c, err := p.ParseText("Skills: Java, docker")
		require.NoError(t, err)
		assert.Equal(t, []string{"Java", "Docker"}, c.Skills)
	})

	t.Run("Symbol-suffixed names never match the vocabulary", func(t *testing.T) {
		c, err := p.ParseText("Shipped C++ and Java components.")
		require.NoError(t, err)
		assert.Equal(t, []string{"Java"}, c.Skills)
	})

	t.Run("Stop-word tokens rejected", func(t *testing.T) {
		assert.False(t, isValidSkillToken("communication and teamwork"))
		assert.False(t, isValidSkillToken("ab"))
		assert.False(t, isValidSkillToken("contains/slash"))
		assert.True(t, isValidSkillToken("Node.js"))
		assert.True(t, isValidSkillToken("CI-CD tooling"))
	})
}

func TestCustomVocabulary(t *testing.T) {
	p := New(WithVocabulary([]string{"Fortran", "COBOL"}))
	c, err := p.ParseText("Maintains fortran simulations and some Java tools.")
	require.NoError(t, err)
	assert.Equal(t, []string{"Fortran"}, c.Skills)
}
