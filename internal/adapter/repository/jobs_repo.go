package repository

import (
	"context"
	"encoding/json"
	"fmt"

	"resume-builder/internal/domain"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v4"
	"github.com/jackc/pgx/v4/pgxpool"
)

// JobsRepo persists export jobs.
type JobsRepo struct {
	pool *pgxpool.Pool
}

func NewJobsRepo(pool *pgxpool.Pool) *JobsRepo {
	return &JobsRepo{pool: pool}
}

func (r *JobsRepo) Save(ctx context.Context, j *domain.ExportJob) error {
	if r.pool == nil {
		return nil
	}

	metaB, _ := json.Marshal(j.Metadata)

	_, err := r.pool.Exec(ctx, `INSERT INTO export_jobs (id, resume_id, template_id, status, error, metadata, created_at, updated_at)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8)
		ON CONFLICT (id) DO UPDATE SET resume_id = EXCLUDED.resume_id, template_id = EXCLUDED.template_id, status = EXCLUDED.status, error = EXCLUDED.error, metadata = EXCLUDED.metadata, updated_at = EXCLUDED.updated_at`,
		j.ID, j.ResumeID, j.TemplateID, j.Status, j.Error, metaB, j.CreatedAt, j.UpdatedAt)
	if err != nil {
		return fmt.Errorf("save export job %s: %w", j.ID, err)
	}
	return nil
}

func (r *JobsRepo) Get(ctx context.Context, id uuid.UUID) (*domain.ExportJob, error) {
	if r.pool == nil {
		return nil, nil
	}

	var j domain.ExportJob
	var metaB []byte
	err := r.pool.QueryRow(ctx, `SELECT id, resume_id, template_id, status, error, metadata, created_at, updated_at
		FROM export_jobs WHERE id = $1`, id).
		Scan(&j.ID, &j.ResumeID, &j.TemplateID, &j.Status, &j.Error, &metaB, &j.CreatedAt, &j.UpdatedAt)
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get export job %s: %w", id, err)
	}
	if len(metaB) > 0 {
		_ = json.Unmarshal(metaB, &j.Metadata)
	}
	return &j, nil
}
