package repository

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"resume-builder/internal/model"
	"resume-builder/internal/visibility"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testResume() *model.Resume {
	return &model.Resume{
		Basics: model.Basics{
			Name: "Ada",
			Profiles: []model.Profile{
				{Network: "GitHub"},
			},
		},
		Work: []model.WorkItem{
			{Name: "Acme"},
			{Name: "Nimbus"},
		},
	}
}

func TestFileRepoRoundTrip(t *testing.T) {
	repo := NewFileVisibilityRepo(t.TempDir())
	ctx := context.Background()

	v := visibility.BuildDefault("r1", testResume())
	v.ToggleItem(visibility.SectionWork, 1)
	v.TogglePersonalField("profiles:GitHub")

	require.NoError(t, repo.Save(ctx, v))
	got, err := repo.Load(ctx, "r1")
	require.NoError(t, err)
	assert.Equal(t, v, got)
}

func TestFileRepoMissingSnapshot(t *testing.T) {
	repo := NewFileVisibilityRepo(t.TempDir())
	got, err := repo.Load(context.Background(), "nope")
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestFileRepoCorruptSnapshot(t *testing.T) {
	dir := t.TempDir()
	repo := NewFileVisibilityRepo(dir)

	require.NoError(t, os.WriteFile(filepath.Join(dir, "r1.json"), []byte("{not json"), 0o644))
	_, err := repo.Load(context.Background(), "r1")
	assert.ErrorIs(t, err, visibility.ErrCorrupt)
}

func TestFileRepoRejectsWrongShape(t *testing.T) {
	dir := t.TempDir()
	repo := NewFileVisibilityRepo(dir)

	// valid JSON, invalid snapshot shape
	payload := []byte(`{"resumeId":"r1","personalDetails":{"enabled":"yes"}}`)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "r1.json"), payload, 0o644))
	_, err := repo.Load(context.Background(), "r1")
	assert.ErrorIs(t, err, visibility.ErrCorrupt)
}

func TestFileRepoSanitizesResumeID(t *testing.T) {
	dir := t.TempDir()
	repo := NewFileVisibilityRepo(dir)

	v := visibility.BuildDefault("../evil/id", testResume())
	require.NoError(t, repo.Save(context.Background(), v))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.NotContains(t, entries[0].Name(), "/")

	got, err := repo.Load(context.Background(), "../evil/id")
	require.NoError(t, err)
	assert.Equal(t, v, got)
}
