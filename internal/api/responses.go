// Package api defines the shared request/response envelopes used by HTTP handlers.
package api

import "github.com/google/uuid"

// ErrorResponse is the JSON body returned for any failed request.
type ErrorResponse struct {
	Error string `json:"error"`
}

// MessageResponse is the JSON body returned for successful requests
// that carry no payload beyond a human-readable message.
type MessageResponse struct {
	Message string `json:"message"`
}

// UserInfo is the public projection of a user returned by auth endpoints.
// It never exposes credentials or verification state.
type UserInfo struct {
	ID       uuid.UUID `json:"id"`
	Fullname string    `json:"fullname"`
	Email    string    `json:"email"`
}

// AuthResponse is returned on successful registration and login.
type AuthResponse struct {
	Token   string   `json:"token"`
	User    UserInfo `json:"user"`
	Message string   `json:"message,omitempty"`
}
