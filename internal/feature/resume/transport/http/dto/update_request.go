package dto

import "resume_backend/internal/feature/resume/domain/entity"

// UpdateResumeReq represents the request body for PUT /api/resume/:id.
// Updates are a full-content replace, never a partial patch.
type UpdateResumeReq struct {
	Content entity.Content `json:"content" binding:"required"`
}
