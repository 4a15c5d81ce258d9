package main

import (
	"context"
	"path/filepath"

	httpadapter "resume-builder/internal/adapter/http"
	repo "resume-builder/internal/adapter/repository"
	"resume-builder/internal/config"
	"resume-builder/internal/infrastructure/migration"
	"resume-builder/internal/usecase"
	"resume-builder/internal/visibility"
	infra "resume-builder/pkg/infrastructure"
	"resume-builder/pkg/renderservice"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

func main() {
	ctx := context.Background()
	opts := config.Parse()

	log, err := zap.NewProduction()
	if err != nil {
		panic(err)
	}
	defer func() { _ = log.Sync() }()

	// infra setup: the database is best-effort, the server stays usable
	// on the file-backed store without it
	pool, err := infra.NewPool(ctx, opts.DatabaseURL)
	if err != nil {
		log.Warn("database not available, using file-backed visibility store", zap.Error(err))
		pool = nil
	}
	if pool != nil {
		if err := migration.RunMigrations(ctx, pool); err != nil {
			log.Fatal("migrations failed", zap.Error(err))
		}
	}

	var visibilityRepo visibility.Repository
	if pool != nil {
		visibilityRepo = repo.NewVisibilityRepo(pool)
	} else {
		visibilityRepo = repo.NewFileVisibilityRepo(filepath.Join(opts.DataDir, "visibility"))
	}

	resumes := repo.NewResumeRepo(pool)
	jobs := repo.NewJobsRepo(pool)

	// external render service wins over the local headless Chrome
	var generator usecase.Generator
	var renderer usecase.Renderer
	if opts.RenderServiceURL != "" {
		generator = renderservice.NewClient(opts.RenderServiceURL)
	} else {
		renderer = infra.NewChromedpRenderer(opts.TemplateDir)
	}

	exporter := usecase.NewExporter(generator, renderer, jobs, opts.TemplateDir, filepath.Join(opts.DataDir, "generated"), log)

	app := fiber.New()
	h := httpadapter.NewHandler(visibilityRepo, resumes, exporter, jobs, log)
	h.Register(app)

	log.Info("starting server", zap.String("port", opts.Port))
	if err := app.Listen(":" + opts.Port); err != nil {
		log.Fatal("server failed", zap.Error(err))
	}
}
