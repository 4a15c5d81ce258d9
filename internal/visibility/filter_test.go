package visibility

import (
	"testing"

	"resume-builder/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFilterDisabledSectionYieldsEmptyArray(t *testing.T) {
	r := sampleResume()
	v := BuildDefault("r1", r)
	v.ToggleSection(SectionSkills) // exclude

	got := Filter(r, v)
	require.NotNil(t, got)
	assert.NotNil(t, got.Skills)
	assert.Empty(t, got.Skills)

	// original document untouched
	assert.Len(t, r.Skills, 3)
}

func TestFilterDropsHiddenItemsInOrder(t *testing.T) {
	r := sampleResume()
	v := BuildDefault("r1", r)
	v.ToggleItem(SectionSkills, 1)

	got := Filter(r, v)
	require.Len(t, got.Skills, 2)
	assert.Equal(t, "Go", got.Skills[0].Name)
	assert.Equal(t, "Docker", got.Skills[1].Name)
}

func TestFilterBlanksExcludedScalarFields(t *testing.T) {
	r := sampleResume()
	v := BuildDefault("r1", r)
	v.TogglePersonalField(FieldPhone)
	v.TogglePersonalField(FieldSummary)

	got := Filter(r, v)
	assert.Empty(t, got.Basics.Phone)
	assert.Empty(t, got.Basics.Summary)
	// name and untouched fields survive
	assert.Equal(t, "Ada", got.Basics.Name)
	assert.Equal(t, "ada@example.com", got.Basics.Email)

	assert.Equal(t, "+351 555 0100", r.Basics.Phone)
}

func TestFilterLocationSubFields(t *testing.T) {
	r := sampleResume()
	v := BuildDefault("r1", r)
	v.PersonalDetails.Fields.Location.City = false

	got := Filter(r, v)
	assert.Empty(t, got.Basics.Location.City)
	assert.Equal(t, "PT", got.Basics.Location.CountryCode)
}

func TestFilterDropsHiddenProfiles(t *testing.T) {
	r := sampleResume()
	v := BuildDefault("r1", r)
	v.TogglePersonalField("profiles:LinkedIn")

	got := Filter(r, v)
	require.Len(t, got.Basics.Profiles, 1)
	assert.Equal(t, "GitHub", got.Basics.Profiles[0].Network)
}

func TestFilterMissingProfileFlagCountsAsIncluded(t *testing.T) {
	r := sampleResume()
	v := BuildDefault("r1", r)
	delete(v.PersonalDetails.Fields.Profiles, "LinkedIn")

	got := Filter(r, v)
	assert.Len(t, got.Basics.Profiles, 2)
}

func TestFilterNilInputs(t *testing.T) {
	r := sampleResume()
	v := BuildDefault("r1", r)
	assert.Nil(t, Filter(nil, v))
	assert.Nil(t, Filter(r, nil))
}

func TestFilterItemsShorterThanSection(t *testing.T) {
	// drift between document and flags before a reconcile pass: extra
	// entries without flags stay out of the output
	r := sampleResume()
	v := BuildDefault("r1", r)
	r.Work = append(r.Work, model.WorkItem{Name: "Third"})

	got := Filter(r, v)
	assert.Len(t, got.Work, 2)
}
