package dto

// UserRes is the public projection of a user returned by auth endpoints.
// The password hash and verification sub-state never leave the server.
type UserRes struct {
	ID         uint   `json:"id"`
	Name       string `json:"name"`
	Email      string `json:"email"`
	IsVerified bool   `json:"isVerified"`
}

// MessageRes is the generic success/failure envelope used by all endpoints.
type MessageRes struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// SignupRes is returned by the signup endpoint.
type SignupRes struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	UserID  uint   `json:"userId,omitempty"`
	Email   string `json:"email,omitempty"`
}

// AuthRes is returned after successful verification or login.
type AuthRes struct {
	Success bool    `json:"success"`
	Message string  `json:"message"`
	Token   string  `json:"token"`
	User    UserRes `json:"user"`
}

// LoginFailRes is returned when login is rejected; NeedsVerification tells
// the client to switch to the verification flow instead of retrying.
type LoginFailRes struct {
	Success           bool   `json:"success"`
	Message           string `json:"message"`
	NeedsVerification bool   `json:"needsVerification,omitempty"`
	Email             string `json:"email,omitempty"`
}
