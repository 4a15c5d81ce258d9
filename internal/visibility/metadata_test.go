package visibility

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProjectMetadata(t *testing.T) {
	r := sampleResume()
	v := BuildDefault("r1", r)
	v.ToggleItem(SectionWork, 1)

	metas := ProjectMetadata(r, v)
	require.Len(t, metas, len(SectionOrder))

	byType := map[SectionID]SectionMetadata{}
	for i, m := range metas {
		assert.Equal(t, SectionOrder[i], m.Type, "order must match the canonical section order")
		byType[m.Type] = m
	}

	pd := byType[SectionPersonalDetails]
	assert.True(t, pd.HasData)
	assert.Zero(t, pd.ItemCount)
	assert.Zero(t, pd.VisibleItemCount)
	assert.Equal(t, "sections.personalDetails", pd.LabelKey)

	work := byType[SectionWork]
	assert.True(t, work.HasData)
	assert.Equal(t, 2, work.ItemCount)
	assert.Equal(t, 1, work.VisibleItemCount)

	projects := byType[SectionProjects]
	assert.False(t, projects.HasData)
	assert.Zero(t, projects.ItemCount)
	assert.Zero(t, projects.VisibleItemCount)
}

func TestProjectMetadataNilVisibility(t *testing.T) {
	metas := ProjectMetadata(sampleResume(), nil)
	require.Len(t, metas, len(SectionOrder))
	for _, m := range metas {
		assert.Zero(t, m.VisibleItemCount)
	}
}
