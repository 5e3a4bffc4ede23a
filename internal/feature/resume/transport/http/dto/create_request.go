// Package dto defines data transfer objects for the resume feature's HTTP transport layer.
package dto

import "resume_backend/internal/feature/resume/domain/entity"

// CreateResumeReq represents the request body for POST /api/resume/create.
type CreateResumeReq struct {
	TemplateID int            `json:"templateId" binding:"required"`
	Content    entity.Content `json:"content" binding:"required"`
}
