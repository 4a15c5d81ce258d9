package usecase

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"resume-builder/internal/domain"
	"resume-builder/internal/model"
	"resume-builder/internal/visibility"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeRenderer struct {
	lastHTML string
	err      error
}

func (f *fakeRenderer) RenderHTMLToPDF(_ context.Context, html string) ([]byte, error) {
	f.lastHTML = html
	if f.err != nil {
		return nil, f.err
	}
	return []byte("%PDF-fake"), nil
}

type fakeJobs struct {
	statuses []string
}

func (f *fakeJobs) Save(_ context.Context, j *domain.ExportJob) error {
	f.statuses = append(f.statuses, j.Status)
	return nil
}

func writeTemplate(t *testing.T, dir, name, body string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name+".html"), []byte(body), 0o644))
}

func exportFixture(t *testing.T) (*model.Resume, *visibility.SectionVisibility) {
	t.Helper()
	resume := &model.Resume{
		Basics: model.Basics{Name: "Ada"},
		Work: []model.WorkItem{
			{Name: "Acme"},
			{Name: "Nimbus"},
		},
	}
	vis := visibility.BuildDefault("r1", resume)
	return resume, vis
}

func newJob() *domain.ExportJob {
	return &domain.ExportJob{
		ID:         uuid.New(),
		ResumeID:   "r1",
		TemplateID: "basic",
		Status:     domain.ExportPending,
		Metadata:   map[string]interface{}{},
		CreatedAt:  time.Now(),
		UpdatedAt:  time.Now(),
	}
}

func TestExportRendersFilteredResume(t *testing.T) {
	tplDir := t.TempDir()
	outDir := t.TempDir()
	writeTemplate(t, tplDir, "basic",
		`<h1>{{ .Resume.Basics.Name }}</h1>{{ range .Resume.Work }}<p>{{ .Name }}</p>{{ end }}`)

	renderer := &fakeRenderer{}
	jobs := &fakeJobs{}
	e := NewExporter(nil, renderer, jobs, tplDir, outDir, nil)

	resume, vis := exportFixture(t)
	vis.ToggleItem(visibility.SectionWork, 1) // hide Nimbus
	job := newJob()

	require.NoError(t, e.Export(context.Background(), job, resume, vis, NewTemplateParamsFromMap(nil)))

	assert.Contains(t, renderer.lastHTML, "Acme")
	assert.NotContains(t, renderer.lastHTML, "Nimbus")

	assert.Equal(t, domain.ExportCompleted, job.Status)
	assert.Equal(t, []string{domain.ExportProcessing, domain.ExportCompleted}, jobs.statuses)

	pdfPath, _ := job.Metadata["generated_pdf"].(string)
	require.NotEmpty(t, pdfPath)
	b, err := os.ReadFile(pdfPath)
	require.NoError(t, err)
	assert.Equal(t, []byte("%PDF-fake"), b)
}

func TestExportMissingTemplateFailsJob(t *testing.T) {
	renderer := &fakeRenderer{}
	jobs := &fakeJobs{}
	e := NewExporter(nil, renderer, jobs, t.TempDir(), t.TempDir(), nil)

	resume, vis := exportFixture(t)
	job := newJob()
	job.TemplateID = "missing"

	err := e.Export(context.Background(), job, resume, vis, NewTemplateParamsFromMap(nil))
	require.Error(t, err)
	assert.Equal(t, domain.ExportFailed, job.Status)
	assert.NotEmpty(t, job.Error)
}

func TestExportNilVisibilityFailsJob(t *testing.T) {
	e := NewExporter(nil, &fakeRenderer{}, &fakeJobs{}, t.TempDir(), t.TempDir(), nil)
	resume, _ := exportFixture(t)
	job := newJob()

	err := e.Export(context.Background(), job, resume, nil, NewTemplateParamsFromMap(nil))
	require.Error(t, err)
	assert.Equal(t, domain.ExportFailed, job.Status)
}

type fakeGenerator struct {
	gotTemplate string
	gotResume   *model.Resume
	gotParams   map[string]interface{}
}

func (f *fakeGenerator) Generate(_ context.Context, templateID string, resume *model.Resume, params map[string]interface{}) ([]byte, error) {
	f.gotTemplate = templateID
	f.gotResume = resume
	f.gotParams = params
	return []byte("%PDF-remote"), nil
}

func TestExportPrefersRemoteGenerator(t *testing.T) {
	gen := &fakeGenerator{}
	e := NewExporter(gen, nil, &fakeJobs{}, "", t.TempDir(), nil)

	resume, vis := exportFixture(t)
	vis.ToggleSection(visibility.SectionWork) // exclude everything
	job := newJob()

	require.NoError(t, e.Export(context.Background(), job, resume, vis, NewTemplateParamsFromMap(map[string]interface{}{"fontSize": 10})))

	assert.Equal(t, "basic", gen.gotTemplate)
	require.NotNil(t, gen.gotResume)
	assert.Empty(t, gen.gotResume.Work, "remote generator receives the filtered resume")
	assert.Equal(t, "10pt", gen.gotParams["fontSize"])
	assert.Equal(t, domain.ExportCompleted, job.Status)
}

func TestRenderHTMLUsesTemplateFuncs(t *testing.T) {
	tplDir := t.TempDir()
	writeTemplate(t, tplDir, "basic",
		`{{ period "2020-01" "" }}|{{ range .Resume.Work }}{{ join .Highlights "; " }}{{ end }}`)

	e := NewExporter(nil, &fakeRenderer{}, nil, tplDir, t.TempDir(), nil)
	resume := &model.Resume{
		Basics: model.Basics{Name: "Ada"},
		Work:   []model.WorkItem{{Name: "Acme", Highlights: []string{"a", "b"}}},
	}

	html, err := e.RenderHTML("basic", resume, NewTemplateParamsFromMap(nil))
	require.NoError(t, err)
	assert.Contains(t, html, "2020-01 – present")
	assert.Contains(t, html, "a; b")
}
