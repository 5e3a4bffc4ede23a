// Package usecase implements the business logic for the auth feature.
package usecase

import "errors"

var (
	// ErrUserNotFound is returned when a user cannot be found by email or ID.
	ErrUserNotFound = errors.New("user not found")

	// ErrEmailAlreadyExists is returned when attempting to sign up with an
	// email that already belongs to a verified account.
	ErrEmailAlreadyExists = errors.New("email already exists")

	// ErrAlreadyVerified is returned when a verification operation targets an
	// account that has already been verified.
	ErrAlreadyVerified = errors.New("account already verified")

	// ErrCodeMismatch is returned when the submitted verification code does
	// not match the outstanding one.
	ErrCodeMismatch = errors.New("invalid verification code")

	// ErrCodeExpired is returned when the outstanding verification code has
	// passed its expiry.
	ErrCodeExpired = errors.New("verification code expired")

	// ErrNotVerified is returned on login when the account has not completed
	// email verification yet.
	ErrNotVerified = errors.New("email not verified")

	// ErrInvalidCredentials is returned when email or password is wrong.
	ErrInvalidCredentials = errors.New("invalid email or password")

	// ErrMailDispatch is returned when the verification email could not be
	// handed to the mail transport.
	ErrMailDispatch = errors.New("failed to send verification email")
)
