// Package entity defines the domain entities for the auth feature.
package entity

import "time"

// User represents a registered account in the system.
// An account starts unverified; ownership of the email address is proven
// with a short-lived one-time code before the account becomes usable.
type User struct {
	// ID is the unique identifier for the user.
	ID uint `gorm:"primaryKey"`

	// Name is the display name given at signup.
	Name string `gorm:"size:255;not null"`

	// Email is the user's email address used for authentication.
	// It must be unique across all users and is compared as stored.
	Email string `gorm:"uniqueIndex;size:255;not null"`

	// Password is the bcrypt hash of the user's password.
	// This should never store plaintext passwords.
	Password string `gorm:"size:255;not null"`

	// IsVerified reports whether the email address has been proven.
	// The transition to true happens exactly once.
	IsVerified bool `gorm:"not null;default:false"`

	// VerificationCode is the outstanding one-time code, if any.
	// Set together with CodeExpiry; both are cleared when the account
	// is verified and are never reused.
	VerificationCode *string `gorm:"size:6"`

	// CodeExpiry is the instant the outstanding code stops being valid.
	CodeExpiry *time.Time

	// CreatedAt is the timestamp when the user was created.
	CreatedAt time.Time

	// UpdatedAt is the timestamp when the user was last updated.
	UpdatedAt time.Time
}

// HasPendingCode reports whether an unconsumed verification code is
// outstanding for this account.
func (u *User) HasPendingCode() bool {
	return u.VerificationCode != nil && u.CodeExpiry != nil
}
