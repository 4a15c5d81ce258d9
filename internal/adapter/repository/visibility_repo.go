package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"resume-builder/internal/model"
	"resume-builder/internal/visibility"

	"github.com/jackc/pgx/v4"
	"github.com/jackc/pgx/v4/pgxpool"
)

// VisibilityRepo stores visibility snapshots as JSONB rows keyed by
// resume id.
type VisibilityRepo struct {
	pool *pgxpool.Pool
}

func NewVisibilityRepo(pool *pgxpool.Pool) *VisibilityRepo {
	return &VisibilityRepo{pool: pool}
}

// Load fetches the snapshot for resumeID. Returns (nil, nil) when no row
// exists; a row that fails schema validation or decoding is reported as
// visibility.ErrCorrupt so the caller falls back to defaults.
func (r *VisibilityRepo) Load(ctx context.Context, resumeID string) (*visibility.SectionVisibility, error) {
	if r.pool == nil {
		return nil, nil
	}

	var payload []byte
	err := r.pool.QueryRow(ctx, `SELECT payload FROM section_visibility WHERE resume_id = $1`, resumeID).Scan(&payload)
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("load visibility %s: %w", resumeID, err)
	}

	if err := model.ValidateVisibilityPayload(payload); err != nil {
		return nil, fmt.Errorf("%w: %v", visibility.ErrCorrupt, err)
	}

	var v visibility.SectionVisibility
	if err := json.Unmarshal(payload, &v); err != nil {
		return nil, fmt.Errorf("%w: %v", visibility.ErrCorrupt, err)
	}
	return &v, nil
}

// Save upserts the full snapshot. Round-trip fidelity with Load is the
// only contract on the stored form.
func (r *VisibilityRepo) Save(ctx context.Context, v *visibility.SectionVisibility) error {
	if r.pool == nil || v == nil {
		return nil
	}

	payload, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("encode visibility %s: %w", v.ResumeID, err)
	}

	_, err = r.pool.Exec(ctx, `INSERT INTO section_visibility (resume_id, payload, updated_at)
		VALUES ($1,$2,$3)
		ON CONFLICT (resume_id) DO UPDATE SET payload = EXCLUDED.payload, updated_at = EXCLUDED.updated_at`,
		v.ResumeID, payload, time.Now())
	if err != nil {
		return fmt.Errorf("save visibility %s: %w", v.ResumeID, err)
	}
	return nil
}
