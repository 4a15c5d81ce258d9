package domain

import (
	"time"

	"github.com/google/uuid"
)

// Export job lifecycle states.
const (
	ExportPending    = "pending"
	ExportProcessing = "processing"
	ExportCompleted  = "completed"
	ExportFailed     = "failed"
)

// ExportJob tracks one PDF export of a filtered resume.
type ExportJob struct {
	ID         uuid.UUID              `json:"id"`
	ResumeID   string                 `json:"resume_id"`
	TemplateID string                 `json:"template_id"`
	Status     string                 `json:"status"`
	Error      string                 `json:"error,omitempty"`
	Metadata   map[string]interface{} `json:"metadata"`
	CreatedAt  time.Time              `json:"created_at"`
	UpdatedAt  time.Time              `json:"updated_at"`
}
