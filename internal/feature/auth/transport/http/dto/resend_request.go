package dto

// ResendReq represents the request body for the /api/auth/resend-code endpoint.
type ResendReq struct {
	Email string `json:"email" binding:"required,email"`
}
