package dto

import (
	"time"

	"resume_backend/internal/feature/resume/domain/entity"
)

// ResumeRes is the public projection of a persisted resume.
type ResumeRes struct {
	ID         uint           `json:"id"`
	TemplateID int            `json:"templateId"`
	Content    entity.Content `json:"content"`
	CreatedAt  time.Time      `json:"createdAt"`
	UpdatedAt  time.Time      `json:"updatedAt"`
}

// NewResumeRes converts an entity into its response shape.
func NewResumeRes(r *entity.Resume) ResumeRes {
	return ResumeRes{
		ID:         r.ID,
		TemplateID: r.TemplateID,
		Content:    r.Content,
		CreatedAt:  r.CreatedAt,
		UpdatedAt:  r.UpdatedAt,
	}
}

// MessageRes is the generic success/failure envelope.
type MessageRes struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// CreateRes is returned after a successful create.
type CreateRes struct {
	Success  bool   `json:"success"`
	Message  string `json:"message"`
	ResumeID uint   `json:"resumeId"`
}

// ListRes is returned by the list endpoint.
type ListRes struct {
	Success bool        `json:"success"`
	Resumes []ResumeRes `json:"resumes"`
	Count   int         `json:"count"`
}

// UpdateRes is returned after a successful update.
type UpdateRes struct {
	Success bool      `json:"success"`
	Message string    `json:"message"`
	Resume  ResumeRes `json:"resume"`
}

// PreviewRes carries the rendered preview markup.
type PreviewRes struct {
	Success bool   `json:"success"`
	Markup  string `json:"markup"`
}

// DraftRes carries the latest draft snapshot.
type DraftRes struct {
	Success bool           `json:"success"`
	Content entity.Content `json:"content"`
}
