package entity

import "time"

// Resume is a persisted resume document. One owner may hold many resumes;
// a resume is only readable and writable by its owner.
type Resume struct {
	// ID is the unique identifier for the resume.
	ID uint `gorm:"primaryKey"`

	// UserID references the owning account.
	UserID uint `gorm:"index;not null"`

	// TemplateID selects the visual template from the static catalog.
	TemplateID int `gorm:"not null"`

	// Content is the full resume payload, stored as a JSON column.
	Content Content `gorm:"serializer:json"`

	// CreatedAt is the timestamp when the resume was created.
	CreatedAt time.Time

	// UpdatedAt is the timestamp when the resume was last updated.
	UpdatedAt time.Time
}

// Draft is the autosaved working snapshot of a resume form, one per account.
// Used by the SQL fallback store; the Redis store keeps the same payload
// under a TTL key.
type Draft struct {
	// UserID keys the snapshot; each account holds at most one draft.
	UserID uint `gorm:"primaryKey"`

	// Content is the snapshot payload, stored as a JSON column.
	Content Content `gorm:"serializer:json"`

	// UpdatedAt is the timestamp of the latest snapshot.
	UpdatedAt time.Time
}
