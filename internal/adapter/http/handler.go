package http

import (
	"context"
	"sync"
	"time"

	"resume-builder/internal/domain"
	"resume-builder/internal/model"
	"resume-builder/internal/usecase"
	"resume-builder/internal/visibility"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// ResumeSource provides the raw documents the visibility layer works on.
type ResumeSource interface {
	Get(ctx context.Context, id string) (*model.Resume, error)
	Put(ctx context.Context, id string, doc *model.Resume) error
}

// JobsStore reads and writes export jobs.
type JobsStore interface {
	Save(ctx context.Context, j *domain.ExportJob) error
	Get(ctx context.Context, id uuid.UUID) (*domain.ExportJob, error)
}

// Handler exposes the visibility and export API. One visibility store is
// kept per resume id, initialized lazily from the persisted snapshot.
type Handler struct {
	visRepo  visibility.Repository
	resumes  ResumeSource
	exporter *usecase.Exporter
	jobs     JobsStore
	log      *zap.Logger

	mu     sync.Mutex
	stores map[string]*visibility.Store
	// docs caches documents for deployments without a resume database
	docs map[string]*model.Resume
}

func NewHandler(visRepo visibility.Repository, resumes ResumeSource, exporter *usecase.Exporter, jobs JobsStore, log *zap.Logger) *Handler {
	if log == nil {
		log = zap.NewNop()
	}
	return &Handler{
		visRepo:  visRepo,
		resumes:  resumes,
		exporter: exporter,
		jobs:     jobs,
		log:      log,
		stores:   map[string]*visibility.Store{},
		docs:     map[string]*model.Resume{},
	}
}

// Register mounts all routes on the app.
func (h *Handler) Register(app *fiber.App) {
	app.Post("/resumes", h.CreateResume)
	app.Put("/resumes/:id", h.PutResume)
	app.Get("/resumes/:id/visibility", h.GetVisibility)
	app.Post("/resumes/:id/visibility/reset", h.ResetVisibility)
	app.Post("/resumes/:id/visibility/toggles", h.ApplyToggle)
	app.Get("/resumes/:id/sections", h.GetSections)
	app.Get("/resumes/:id/preview", h.GetPreview)
	app.Post("/resumes/:id/export", h.StartExport)
	app.Get("/jobs/:id", h.GetJob)
}

// document returns the resume for id, preferring the database over the
// in-process cache.
func (h *Handler) document(ctx context.Context, id string) (*model.Resume, error) {
	if h.resumes != nil {
		doc, err := h.resumes.Get(ctx, id)
		if err != nil {
			return nil, err
		}
		if doc != nil {
			return doc, nil
		}
	}
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.docs[id], nil
}

// store returns the initialized visibility store for id, creating it on
// first use. Initialization reconciles the saved snapshot against the
// current document before any caller sees the model.
func (h *Handler) store(ctx context.Context, id string, doc *model.Resume) (*visibility.Store, error) {
	h.mu.Lock()
	st, ok := h.stores[id]
	if !ok {
		st = visibility.NewStore(h.visRepo, h.log)
		h.stores[id] = st
	}
	h.mu.Unlock()

	// a store that failed to initialize earlier retries on next access
	if !ok || st.Visibility() == nil {
		if err := st.Init(ctx, id, doc); err != nil {
			return nil, err
		}
	}
	return st, nil
}

type createReq struct {
	ID     string       `json:"id,omitempty"`
	Resume model.Resume `json:"resume"`
}

// CreateResume stores a new document. Without a client-supplied id a
// fresh one is generated; single-resume clients pass "default".
func (h *Handler) CreateResume(c *fiber.Ctx) error {
	var req createReq
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid payload"})
	}

	id := req.ID
	if id == "" {
		id = uuid.NewString()
	}
	if err := h.saveDocument(c.Context(), id, &req.Resume); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"id": id})
}

// PutResume replaces the document and re-synchronizes the visibility
// model against the new shape.
func (h *Handler) PutResume(c *fiber.Ctx) error {
	id := c.Params("id")
	var doc model.Resume
	if err := c.BodyParser(&doc); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid payload"})
	}

	if err := h.saveDocument(c.Context(), id, &doc); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	h.mu.Lock()
	st := h.stores[id]
	h.mu.Unlock()
	if st != nil {
		st.Sync(&doc)
	}
	return c.JSON(fiber.Map{"id": id})
}

func (h *Handler) saveDocument(ctx context.Context, id string, doc *model.Resume) error {
	h.mu.Lock()
	h.docs[id] = doc
	h.mu.Unlock()
	if h.resumes == nil {
		return nil
	}
	return h.resumes.Put(ctx, id, doc)
}

// withStore resolves the document and visibility store for the :id
// param, handling the not-found and init-failure responses.
func (h *Handler) withStore(c *fiber.Ctx, fn func(st *visibility.Store, doc *model.Resume) error) error {
	id := c.Params("id")
	doc, err := h.document(c.Context(), id)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	if doc == nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "resume not found"})
	}
	st, err := h.store(c.Context(), id, doc)
	if err != nil {
		return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{"error": err.Error()})
	}
	return fn(st, doc)
}

func (h *Handler) GetVisibility(c *fiber.Ctx) error {
	return h.withStore(c, func(st *visibility.Store, _ *model.Resume) error {
		return c.JSON(st.Visibility())
	})
}

func (h *Handler) ResetVisibility(c *fiber.Ctx) error {
	return h.withStore(c, func(st *visibility.Store, doc *model.Resume) error {
		st.Reset(c.Params("id"), doc)
		return c.JSON(st.Visibility())
	})
}

type toggleReq struct {
	Op      string `json:"op"`
	Section string `json:"section,omitempty"`
	Index   int    `json:"index,omitempty"`
	Field   string `json:"field,omitempty"`
}

// ApplyToggle applies one toggle operation and returns the updated
// model. Invalid targets inside a known op are silent no-ops, matching
// the core's best-effort contract; only an unknown op is a client error.
func (h *Handler) ApplyToggle(c *fiber.Ctx) error {
	var req toggleReq
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid payload"})
	}

	return h.withStore(c, func(st *visibility.Store, _ *model.Resume) error {
		switch req.Op {
		case "section":
			st.ToggleSection(visibility.SectionID(req.Section))
		case "item":
			st.ToggleItem(visibility.SectionID(req.Section), req.Index)
		case "expanded":
			st.ToggleExpanded(visibility.SectionID(req.Section))
		case "field":
			st.TogglePersonalField(req.Field)
		default:
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "unknown op"})
		}
		return c.JSON(st.Visibility())
	})
}

func (h *Handler) GetSections(c *fiber.Ctx) error {
	return h.withStore(c, func(st *visibility.Store, doc *model.Resume) error {
		return c.JSON(st.Metadata(doc))
	})
}

// GetPreview returns the filtered resume, the exact structure handed to
// PDF generation.
func (h *Handler) GetPreview(c *fiber.Ctx) error {
	return h.withStore(c, func(st *visibility.Store, doc *model.Resume) error {
		return c.JSON(st.Filtered(doc))
	})
}

type exportReq struct {
	TemplateID string                 `json:"templateId"`
	Params     map[string]interface{} `json:"params,omitempty"`
}

// StartExport accepts the job and processes it in the background,
// answering 202 immediately.
func (h *Handler) StartExport(c *fiber.Ctx) error {
	var req exportReq
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid payload"})
	}
	if req.TemplateID == "" {
		req.TemplateID = "modern"
	}

	return h.withStore(c, func(st *visibility.Store, doc *model.Resume) error {
		job := &domain.ExportJob{
			ID:         uuid.New(),
			ResumeID:   c.Params("id"),
			TemplateID: req.TemplateID,
			Status:     domain.ExportPending,
			Metadata:   map[string]interface{}{},
			CreatedAt:  time.Now(),
			UpdatedAt:  time.Now(),
		}

		// persist initial job (best-effort)
		if h.jobs != nil {
			if err := h.jobs.Save(c.Context(), job); err != nil {
				h.log.Warn("failed to save export job", zap.Error(err))
			}
		}

		vis := st.Visibility()
		params := usecase.NewTemplateParamsFromMap(req.Params)

		go func(j *domain.ExportJob, doc *model.Resume, vis *visibility.SectionVisibility) {
			ctx := context.Background()
			if err := h.exporter.Export(ctx, j, doc, vis, params); err != nil {
				h.log.Error("export job failed", zap.String("jobId", j.ID.String()), zap.Error(err))
			}
		}(job, doc, vis)

		return c.Status(fiber.StatusAccepted).JSON(fiber.Map{"jobId": job.ID.String(), "status": "started"})
	})
}

func (h *Handler) GetJob(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid job id"})
	}
	if h.jobs == nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "job not found"})
	}
	job, err := h.jobs.Get(c.Context(), id)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	if job == nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "job not found"})
	}
	return c.JSON(job)
}
