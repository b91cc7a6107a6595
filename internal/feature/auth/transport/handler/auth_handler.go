// Package handler provides the HTTP handlers for the auth feature.
package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mananuf/voba-portal/internal/api"
	"github.com/mananuf/voba-portal/internal/feature/auth/domain/entity"
	"github.com/mananuf/voba-portal/internal/feature/auth/transport/http/dto"
	"github.com/mananuf/voba-portal/internal/feature/auth/usecase"
)

// AuthUsecase defines the authentication operations the handler depends on.
// Following Go convention: interfaces are defined by the consumer (handler), not the provider (usecase).
type AuthUsecase interface {
	// Register creates an unverified account and returns a session token.
	Register(ctx context.Context, in usecase.RegisterInput) (*usecase.AuthResult, error)
	// Login authenticates a user and returns a session token.
	Login(ctx context.Context, email, password string) (*usecase.AuthResult, error)
	// VerifyEmail consumes a verification code.
	VerifyEmail(ctx context.Context, code string) (*entity.User, error)
	// ResendVerification installs and emails a fresh verification code.
	ResendVerification(ctx context.Context, email string) error
}

// AuthHandler handles the HTTP requests for authentication operations.
type AuthHandler struct {
	auth AuthUsecase
}

// NewAuthHandler creates a new instance of AuthHandler.
func NewAuthHandler(auth AuthUsecase) *AuthHandler {
	return &AuthHandler{auth: auth}
}

func userInfo(u *entity.User) api.UserInfo {
	return api.UserInfo{ID: u.ID, Fullname: u.Fullname, Email: u.Email}
}

// Register handles the user registration endpoint.
// - 400 on validation errors
// - 409 when the email is already taken
// - 201 with a session token on success
func (h *AuthHandler) Register(c *gin.Context) {
	var req dto.RegisterReq
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Warn("register validation failed", "error", err, "remote_addr", c.ClientIP())
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "invalid request"})
		return
	}

	in := usecase.RegisterInput{
		Fullname: req.Fullname,
		Email:    req.Email,
		Password: req.Password,
		Role:     req.Role,
	}
	if req.IsActive != nil {
		in.IsActive = *req.IsActive
	}

	res, err := h.auth.Register(c.Request.Context(), in)
	if err != nil {
		if errors.Is(err, usecase.ErrEmailAlreadyExists) {
			slog.Warn("register conflict", "email", req.Email, "remote_addr", c.ClientIP())
			c.JSON(http.StatusConflict, api.ErrorResponse{Error: "email already exists"})
			return
		}
		slog.Error("register failed", "error", err, "email", req.Email, "remote_addr", c.ClientIP())
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "failed to create user"})
		return
	}

	slog.Info("user registered", "email", req.Email, "remote_addr", c.ClientIP())
	c.JSON(http.StatusCreated, api.AuthResponse{
		Token:   res.Token,
		User:    userInfo(res.User),
		Message: "Registration successful. Please check your email to verify your account.",
	})
}

// Login handles the user login endpoint.
// - 400 on validation errors
// - 401 on bad credentials (unknown email and wrong password answered identically)
// - 403 when the account is inactive or unverified
// - 200 with a session token on success
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginReq
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Warn("login validation failed", "error", err, "remote_addr", c.ClientIP())
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "invalid request"})
		return
	}

	res, err := h.auth.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrInvalidCredentials):
			// The exact reason stays in the logs only.
			slog.Warn("login failed", "error", err, "email", req.Email, "remote_addr", c.ClientIP())
			c.JSON(http.StatusUnauthorized, api.ErrorResponse{Error: "invalid credentials"})
		case errors.Is(err, usecase.ErrAccountInactive), errors.Is(err, usecase.ErrEmailNotVerified):
			slog.Warn("login blocked", "error", err, "email", req.Email, "remote_addr", c.ClientIP())
			c.JSON(http.StatusForbidden, api.ErrorResponse{Error: err.Error()})
		default:
			slog.Error("login failed", "error", err, "email", req.Email, "remote_addr", c.ClientIP())
			c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "authentication error"})
		}
		return
	}

	slog.Info("user login successful", "email", req.Email, "remote_addr", c.ClientIP())
	c.JSON(http.StatusOK, api.AuthResponse{Token: res.Token, User: userInfo(res.User)})
}

// VerifyEmail handles the verification link target. The code arrives as a
// query parameter.
// - 400 for an unknown or expired code
// - 200 on success
func (h *AuthHandler) VerifyEmail(c *gin.Context) {
	code := c.Query("code")

	user, err := h.auth.VerifyEmail(c.Request.Context(), code)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrInvalidVerificationCode), errors.Is(err, usecase.ErrVerificationCodeExpired):
			slog.Warn("email verification rejected", "error", err, "remote_addr", c.ClientIP())
			c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: err.Error()})
		default:
			slog.Error("email verification failed", "error", err, "remote_addr", c.ClientIP())
			c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "email verification failed"})
		}
		return
	}

	slog.Info("email verified", "email", user.Email, "remote_addr", c.ClientIP())
	c.JSON(http.StatusOK, api.MessageResponse{Message: "Email verified successfully! Welcome to the portal."})
}

// ResendVerification handles the verification resend endpoint.
// - 404 for an unknown email
// - 500 when the email cannot be delivered (delivery is the point of a resend)
// - 200 on success, including for already verified accounts
func (h *AuthHandler) ResendVerification(c *gin.Context) {
	var req dto.ResendVerificationReq
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Warn("resend validation failed", "error", err, "remote_addr", c.ClientIP())
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "invalid request"})
		return
	}

	if err := h.auth.ResendVerification(c.Request.Context(), req.Email); err != nil {
		switch {
		case errors.Is(err, usecase.ErrUserNotFound):
			c.JSON(http.StatusNotFound, api.ErrorResponse{Error: "user not found"})
		case errors.Is(err, usecase.ErrNotificationFailed):
			slog.Error("resend delivery failed", "error", err, "email", req.Email)
			c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "failed to send verification email"})
		default:
			slog.Error("resend failed", "error", err, "email", req.Email)
			c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "failed to resend verification code"})
		}
		return
	}

	slog.Info("verification email resent", "email", req.Email, "remote_addr", c.ClientIP())
	c.JSON(http.StatusOK, api.MessageResponse{Message: "Verification email resent to: " + req.Email})
}
