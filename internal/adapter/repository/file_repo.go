package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"resume-builder/internal/model"
	"resume-builder/internal/visibility"
)

// FileVisibilityRepo keeps one JSON file per resume id under a base
// directory. It backs the service when no database is configured.
type FileVisibilityRepo struct {
	dir string
	mu  sync.Mutex
}

func NewFileVisibilityRepo(dir string) *FileVisibilityRepo {
	return &FileVisibilityRepo{dir: dir}
}

// fileName maps a resume id to a safe file name.
func (r *FileVisibilityRepo) fileName(resumeID string) string {
	safe := strings.Map(func(c rune) rune {
		switch {
		case c >= 'a' && c <= 'z', c >= 'A' && c <= 'Z', c >= '0' && c <= '9', c == '-', c == '_':
			return c
		default:
			return '_'
		}
	}, resumeID)
	return filepath.Join(r.dir, safe+".json")
}

func (r *FileVisibilityRepo) Load(_ context.Context, resumeID string) (*visibility.SectionVisibility, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	payload, err := os.ReadFile(r.fileName(resumeID))
	if os.IsNotExist(err) {
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

func (r *FileVisibilityRepo) Save(_ context.Context, v *visibility.SectionVisibility) error {
	if v == nil {
		return nil
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if err := os.MkdirAll(r.dir, 0o755); err != nil {
		return fmt.Errorf("save visibility %s: %w", v.ResumeID, err)
	}
	payload, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("encode visibility %s: %w", v.ResumeID, err)
	}
	if err := os.WriteFile(r.fileName(v.ResumeID), payload, 0o644); err != nil {
		return fmt.Errorf("save visibility %s: %w", v.ResumeID, err)
	}
	return nil
}
