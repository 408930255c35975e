package model

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dec(s string) *decimal.Decimal {
	d := decimal.RequireFromString(s)
	return &d
}

func TestNewJobPosting(t *testing.T) {
	j := NewJobPosting("Backend Engineer")
	assert.Equal(t, "Backend Engineer", j.Title)
	assert.True(t, j.Active)
	assert.Empty(t, j.RequiredSkills)
	assert.Empty(t, j.PreferredSkills)
}

func TestJobPostingSkillListsStayDisjoint(t *testing.T) {
	j := NewJobPosting("Engineer")
	j.AddRequiredSkill("Go")
	j.AddRequiredSkill("go")
	j.AddRequiredSkill("SQL")
	j.AddPreferredSkill("GO")
	j.AddPreferredSkill("Docker")
	j.AddRequiredSkill("docker")

	assert.Equal(t, []string{"Go", "SQL"}, j.RequiredSkills)
	assert.Equal(t, []string{"Docker"}, j.PreferredSkills)
}

func TestJobPostingSkillQueries(t *testing.T) {
	j := NewJobPosting("Engineer")
	j.AddRequiredSkill("Go")
	j.AddPreferredSkill("Docker")

	assert.True(t, j.RequiresSkill("go"))
	assert.False(t, j.RequiresSkill("docker"))
	assert.True(t, j.PrefersSkill("DOCKER"))
	assert.Equal(t, []string{"Go", "Docker"}, j.AllSkills())

	j.RemoveRequiredSkill("GO")
	assert.Empty(t, j.RequiredSkills)
}

func TestJobPostingSetRequiredExperience(t *testing.T) {
	j := NewJobPosting("Engineer")
	j.SetRequiredExperience(-1)
	assert.Equal(t, 0, j.RequiredExperience)
	j.SetRequiredExperience(5)
	assert.Equal(t, 5, j.RequiredExperience)
}

func TestJobPostingValidate(t *testing.T) {
	t.Run("Valid posting", func(t *testing.T) {
		j := NewJobPosting("Engineer")
		j.SetSalaryRange(dec("50000"), dec("90000"))
		require.NoError(t, j.Validate())
	})

	t.Run("Missing title", func(t *testing.T) {
		j := NewJobPosting("")
		assert.Error(t, j.Validate())
	})

	t.Run("Inverted salary range", func(t *testing.T) {
		j := NewJobPosting("Engineer")
		j.SetSalaryRange(dec("90000"), dec("50000"))
		assert.ErrorContains(t, j.Validate(), "exceeds")
	})

	t.Run("Single salary bound", func(t *testing.T) {
		j := NewJobPosting("Engineer")
		j.SetSalaryRange(dec("90000"), nil)
		require.NoError(t, j.Validate())
	})
}

func TestJobPostingSalaryRange(t *testing.T) {
	tests := []struct {
		name     string
		min, max *decimal.Decimal
		expected string
	}{
		{"Both bounds", dec("50000"), dec("90000"), "$50000 - $90000"},
		{"Min only", dec("50000"), nil, "$50000+"},
		{"Max only", nil, dec("90000"), "Up to $90000"},
		{"Neither", nil, nil, "Salary not specified"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			j := NewJobPosting("Engineer")
			j.SetSalaryRange(tt.min, tt.max)
			assert.Equal(t, tt.expected, j.SalaryRange())
		})
	}
}
