// Package usecase implements the business logic for the resume feature.
package usecase

import "errors"

var (
	// ErrResumeNotFound is returned when no resume matches the id for the
	// requesting owner. Foreign resumes are indistinguishable from missing
	// ones on purpose.
	ErrResumeNotFound = errors.New("resume not found")

	// ErrTemplateNotFound is returned when the template id is not in the
	// catalog.
	ErrTemplateNotFound = errors.New("template not found")

	// ErrDraftNotFound is returned when no draft snapshot exists for the
	// account.
	ErrDraftNotFound = errors.New("draft not found")

	// ErrEmptyDraft is returned when a draft save carries no content.
	ErrEmptyDraft = errors.New("draft content is empty")

	// ErrUnsupportedFormat is returned for export formats other than pdf
	// and doc.
	ErrUnsupportedFormat = errors.New("unsupported export format")
)
