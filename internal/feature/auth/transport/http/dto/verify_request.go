package dto

// VerifyReq represents the request body for the /api/auth/verify-email endpoint.
// The code is compared as a string after trimming, never parsed numerically.
type VerifyReq struct {
	Email string `json:"email" binding:"required,email"`
	Code  string `json:"code" binding:"required"`
}
