package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"resume-builder/internal/model"

	"github.com/jackc/pgx/v4"
	"github.com/jackc/pgx/v4/pgxpool"
)

// ResumeRepo stores the raw resume documents the visibility layer
// filters. Draft/autosave semantics live in the editor; this is a plain
// upsert/get of the latest document per id.
type ResumeRepo struct {
	pool *pgxpool.Pool
}

func NewResumeRepo(pool *pgxpool.Pool) *ResumeRepo {
	return &ResumeRepo{pool: pool}
}

// queryJSON runs a SQL that returns a single json value and unmarshals
// it into out.
func queryJSON(ctx context.Context, pool *pgxpool.Pool, out interface{}, sql string, args ...interface{}) error {
	var raw []byte
	if err := pool.QueryRow(ctx, sql, args...).Scan(&raw); err != nil {
		return err
	}
	return json.Unmarshal(raw, out)
}

// Get fetches the document for id. Returns (nil, nil) when absent.
func (r *ResumeRepo) Get(ctx context.Context, id string) (*model.Resume, error) {
	if r.pool == nil {
		return nil, nil
	}
	var doc model.Resume
	err := queryJSON(ctx, r.pool, &doc, `SELECT payload FROM resumes WHERE id = $1`, id)
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get resume %s: %w", id, err)
	}
	return &doc, nil
}

// Put upserts the document under id.
func (r *ResumeRepo) Put(ctx context.Context, id string, doc *model.Resume) error {
	if r.pool == nil || doc == nil {
		return nil
	}
	payload, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("encode resume %s: %w", id, err)
	}
	_, err = r.pool.Exec(ctx, `INSERT INTO resumes (id, payload, updated_at)
		VALUES ($1,$2,$3)
		ON CONFLICT (id) DO UPDATE SET payload = EXCLUDED.payload, updated_at = EXCLUDED.updated_at`,
		id, payload, time.Now())
	if err != nil {
		return fmt.Errorf("put resume %s: %w", id, err)
	}
	return nil
}
