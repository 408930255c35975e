package model

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCandidate(t *testing.T) {
	c := NewCandidate()
	assert.NotEqual(t, uuid.Nil, c.ID)
	assert.Empty(t, c.Skills)
	assert.NotNil(t, c.Skills)
	assert.False(t, c.CreatedAt.IsZero())
}

func TestCandidateSetEmail(t *testing.T) {
	c := NewCandidate()
	c.SetEmail("  John.Doe@Example.COM ")
	assert.Equal(t, "john.doe@example.com", c.Email)
}

func TestCandidateSetExperienceYears(t *testing.T) {
	c := NewCandidate()
	c.SetExperienceYears(7)
	assert.Equal(t, 7, c.ExperienceYears)
	c.SetExperienceYears(-3)
	assert.Equal(t, 0, c.ExperienceYears)
}

func TestCandidateSkills(t *testing.T) {
	t.Run("AddSkill dedupes case-insensitively", func(t *testing.T) {
		c := NewCandidate()
		c.AddSkill("Java")
		c.AddSkill("java")
		c.AddSkill("  ")
		c.AddSkill("Go")
		assert.Equal(t, []string{"Java", "Go"}, c.Skills)
	})

	t.Run("SetSkills replaces and dedupes", func(t *testing.T) {
		c := NewCandidate()
		c.AddSkill("Old")
		c.SetSkills([]string{"Python", "python", "", " SQL ", "sql"})
		assert.Equal(t, []string{"Python", "SQL"}, c.Skills)
	})

	t.Run("HasSkill ignores case", func(t *testing.T) {
		c := NewCandidate()
		c.AddSkill("Docker")
		assert.True(t, c.HasSkill("docker"))
		assert.True(t, c.HasSkill(" DOCKER "))
		assert.False(t, c.HasSkill("Kubernetes"))
	})

	t.Run("RemoveSkill ignores case", func(t *testing.T) {
		c := NewCandidate()
		c.SetSkills([]string{"Java", "Go", "SQL"})
		c.RemoveSkill("go")
		assert.Equal(t, []string{"Java", "SQL"}, c.Skills)
	})
}

func TestCandidateIsExperienced(t *testing.T) {
	c := NewCandidate()
	c.SetExperienceYears(5)
	assert.True(t, c.IsExperienced(5))
	assert.True(t, c.IsExperienced(3))
	assert.False(t, c.IsExperienced(6))
}

func TestCandidateValidate(t *testing.T) {
	c := NewCandidate()
	require.NoError(t, c.Validate())

	c.SetEmail("valid@example.com")
	require.NoError(t, c.Validate())

	c.Email = "not-an-email"
	assert.Error(t, c.Validate())
}

func TestCandidateSummary(t *testing.T) {
	c := NewCandidate()
	c.SetName("Jane Doe")
	c.SetEmail("jane@example.com")
	c.SetExperienceYears(4)
	c.SetSkills([]string{"Go", "SQL"})

	summary := c.Summary()
	assert.Contains(t, summary, "Name: Jane Doe")
	assert.Contains(t, summary, "Email: jane@example.com")
	assert.Contains(t, summary, "Experience: 4 years")
	assert.Contains(t, summary, "Skills: Go, SQL")
	assert.NotContains(t, summary, "Phone:")
}
