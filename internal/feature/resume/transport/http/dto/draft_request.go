package dto

import "resume_backend/internal/feature/resume/domain/entity"

// DraftReq represents the request body for PUT /api/resume/draft.
type DraftReq struct {
	Content entity.Content `json:"content" binding:"required"`
}
