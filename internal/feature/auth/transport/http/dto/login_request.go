package dto

// LoginReq represents the request body for the /auth/login endpoint.
// It requires a well-formed email and a non-empty password.
type LoginReq struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}
