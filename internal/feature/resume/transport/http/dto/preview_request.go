package dto

import "resume_backend/internal/feature/resume/domain/entity"

// PreviewReq represents the request body for POST /api/resume/preview.
// Preview is stateless; the content does not need to be persisted first.
type PreviewReq struct {
	TemplateID int            `json:"templateId" binding:"required"`
	Content    entity.Content `json:"content"`
}
