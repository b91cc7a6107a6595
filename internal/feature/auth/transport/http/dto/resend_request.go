package dto

// ResendVerificationReq represents the request body for the
// /auth/resend-verification endpoint.
type ResendVerificationReq struct {
	Email string `json:"email" binding:"required,email"`
}
