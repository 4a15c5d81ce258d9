package usecase

import (
	"bytes"
	"context"
	"fmt"
	"html/template"
	"os"
	"path/filepath"
	"strings"
	"time"

	"resume-builder/internal/domain"
	"resume-builder/internal/model"
	"resume-builder/internal/visibility"

	"go.uber.org/zap"
)

// Renderer turns an HTML page into a PDF locally.
type Renderer interface {
	RenderHTMLToPDF(ctx context.Context, html string) ([]byte, error)
}

// Generator produces a PDF remotely from the filtered resume. When one
// is configured it takes precedence over local rendering.
type Generator interface {
	Generate(ctx context.Context, templateID string, resume *model.Resume, params map[string]interface{}) ([]byte, error)
}

// JobsRepo persists export jobs.
type JobsRepo interface {
	Save(ctx context.Context, j *domain.ExportJob) error
}

// Exporter runs one export: filter the resume through its visibility
// model, render with the selected template, store the artifacts and keep
// the job row up to date.
type Exporter struct {
	generator Generator
	renderer  Renderer
	jobs      JobsRepo
	tplDir    string
	outDir    string
	log       *zap.Logger
}

func NewExporter(gen Generator, r Renderer, jobs JobsRepo, tplDir, outDir string, log *zap.Logger) *Exporter {
	if log == nil {
		log = zap.NewNop()
	}
	return &Exporter{generator: gen, renderer: r, jobs: jobs, tplDir: tplDir, outDir: outDir, log: log}
}

var tplFuncs = template.FuncMap{
	"join": func(items []string, sep string) string { return strings.Join(items, sep) },
	"period": func(start, end string) string {
		switch {
		case start == "" && end == "":
			return ""
		case end == "":
			return start + " – present"
		case start == "":
			return end
		default:
			return start + " – " + end
		}
	},
}

// RenderHTML executes the named template over the filtered resume.
func (e *Exporter) RenderHTML(templateID string, resume *model.Resume, params *TemplateParams) (string, error) {
	name := filepath.Base(templateID) + ".html"
	tpl, err := template.New(name).Funcs(tplFuncs).ParseFiles(filepath.Join(e.tplDir, name))
	if err != nil {
		return "", fmt.Errorf("parse template %s: %w", templateID, err)
	}

	var buf bytes.Buffer
	data := map[string]interface{}{
		"Resume": resume,
		"Params": params,
	}
	if err := tpl.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("execute template %s: %w", templateID, err)
	}
	return buf.String(), nil
}

// Export processes the job to completion. The visibility model is
// assumed to be reconciled against the document already.
func (e *Exporter) Export(ctx context.Context, job *domain.ExportJob, resume *model.Resume, vis *visibility.SectionVisibility, params *TemplateParams) error {
	job.Status = domain.ExportProcessing
	job.UpdatedAt = time.Now()
	e.saveJob(ctx, job)

	filtered := visibility.Filter(resume, vis)
	if filtered == nil {
		return e.fail(ctx, job, fmt.Errorf("missing resume or visibility model"))
	}

	var pdf []byte
	var err error
	if e.generator != nil {
		pdf, err = e.generator.Generate(ctx, job.TemplateID, filtered, params.ToMap())
	} else {
		var html string
		html, err = e.RenderHTML(job.TemplateID, filtered, params)
		if err == nil {
			pdf, err = e.renderer.RenderHTMLToPDF(ctx, html)
		}
	}
	if err != nil {
		return e.fail(ctx, job, err)
	}

	pdfPath := filepath.Join(e.outDir, job.ID.String()+".pdf")
	if err := os.MkdirAll(e.outDir, 0o755); err != nil {
		return e.fail(ctx, job, err)
	}
	if err := os.WriteFile(pdfPath, pdf, 0o644); err != nil {
		return e.fail(ctx, job, err)
	}

	if job.Metadata == nil {
		job.Metadata = map[string]interface{}{}
	}
	job.Metadata["generated_pdf"] = pdfPath
	job.Metadata["pdf_size"] = len(pdf)
	job.Status = domain.ExportCompleted
	job.UpdatedAt = time.Now()
	e.saveJob(ctx, job)

	e.log.Info("export completed",
		zap.String("jobId", job.ID.String()),
		zap.String("resumeId", job.ResumeID),
		zap.String("template", job.TemplateID),
		zap.Int("pdfBytes", len(pdf)))
	return nil
}

func (e *Exporter) fail(ctx context.Context, job *domain.ExportJob, cause error) error {
	job.Status = domain.ExportFailed
	job.Error = cause.Error()
	job.UpdatedAt = time.Now()
	e.saveJob(ctx, job)
	e.log.Error("export failed", zap.String("jobId", job.ID.String()), zap.Error(cause))
	return cause
}

// saveJob persists best-effort; a broken jobs store must not abort an
// export in flight.
func (e *Exporter) saveJob(ctx context.Context, job *domain.ExportJob) {
	if e.jobs == nil {
		return
	}
	if err := e.jobs.Save(ctx, job); err != nil {
		e.log.Warn("failed to save export job", zap.String("jobId", job.ID.String()), zap.Error(err))
	}
}
