package visibility

import (
	"testing"

	"resume-builder/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleResume() *model.Resume {
	return &model.Resume{
		Basics: model.Basics{
			Name:    "Ada",
			Email:   "ada@example.com",
			Phone:   "+351 555 0100",
			Summary: "Engineer",
			Location: model.Location{
				City:        "Lisbon",
				CountryCode: "PT",
			},
			Profiles: []model.Profile{
				{Network: "GitHub", Username: "ada"},
				{Network: "LinkedIn", Username: "ada"},
			},
		},
		Work: []model.WorkItem{
			{Name: "Acme", Position: "Engineer"},
			{Name: "Nimbus", Position: "Engineer"},
		},
		Education: []model.EducationItem{
			{Institution: "IST"},
		},
		Skills: []model.SkillItem{
			{Name: "Go"},
			{Name: "Postgres"},
			{Name: "Docker"},
		},
	}
}

func TestBuildDefault(t *testing.T) {
	v := BuildDefault("r1", sampleResume())

	assert.Equal(t, "r1", v.ResumeID)
	assert.True(t, v.PersonalDetails.Enabled)
	assert.False(t, v.PersonalDetails.Expanded)

	assert.True(t, v.Work.Enabled)
	assert.Equal(t, []bool{true, true}, v.Work.Items)
	assert.False(t, v.Work.Expanded)

	assert.True(t, v.Skills.Enabled)
	assert.Equal(t, []bool{true, true, true}, v.Skills.Items)

	// empty sections default to excluded
	assert.False(t, v.Projects.Enabled)
	assert.Empty(t, v.Projects.Items)
	assert.False(t, v.Volunteer.Enabled)

	assert.True(t, v.PersonalDetails.Fields.Email)
	assert.True(t, v.PersonalDetails.Fields.Location.City)
	assert.Equal(t, map[string]bool{"GitHub": true, "LinkedIn": true}, v.PersonalDetails.Fields.Profiles)
}

func TestBuildDefaultDuplicateNetworksCollapse(t *testing.T) {
	r := sampleResume()
	r.Basics.Profiles = append(r.Basics.Profiles, model.Profile{Network: "GitHub", Username: "ada2"})

	v := BuildDefault("r1", r)
	require.Len(t, v.PersonalDetails.Fields.Profiles, 2)
	assert.True(t, v.PersonalDetails.Fields.Profiles["GitHub"])
}

func TestBuildDefaultNilResume(t *testing.T) {
	v := BuildDefault("r1", nil)
	assert.True(t, v.PersonalDetails.Enabled)
	for _, id := range ArraySections {
		sec := v.Section(id)
		assert.False(t, sec.Enabled, string(id))
		assert.Empty(t, sec.Items, string(id))
	}
}
