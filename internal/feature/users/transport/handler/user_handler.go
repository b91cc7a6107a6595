// Package handler provides the HTTP handlers for user administration.
package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/mananuf/voba-portal/internal/api"
	"github.com/mananuf/voba-portal/internal/feature/auth/domain"
	"github.com/mananuf/voba-portal/internal/feature/auth/domain/entity"
	"github.com/mananuf/voba-portal/internal/feature/users/usecase"
	jwtmw "github.com/mananuf/voba-portal/internal/platform/jwt"
)

// UserUsecase defines the user administration operations the handler depends on.
// Following Go convention: interfaces are defined by the consumer (handler), not the provider (usecase).
type UserUsecase interface {
	// List returns every user, newest first.
	List(ctx context.Context) ([]entity.User, error)
	// ToggleActive flips the target user's active flag.
	ToggleActive(ctx context.Context, callerID uuid.UUID, callerRole entity.Role, targetID uuid.UUID) (*entity.User, error)
}

// UserHandler handles the HTTP requests for user administration.
type UserHandler struct {
	users UserUsecase
}

// NewUserHandler creates a new instance of UserHandler.
func NewUserHandler(users UserUsecase) *UserHandler {
	return &UserHandler{users: users}
}

// List handles the user listing endpoint.
// - 200 with the full user list on success
func (h *UserHandler) List(c *gin.Context) {
	users, err := h.users.List(c.Request.Context())
	if err != nil {
		slog.Error("list users failed", "error", err, "remote_addr", c.ClientIP())
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "failed to fetch users"})
		return
	}

	c.JSON(http.StatusOK, users)
}

// ToggleActive handles the account activation toggle endpoint.
// - 400 on a malformed user id or attempted self-deactivation
// - 403 when the caller lacks the required role
// - 404 when the target user does not exist
// - 200 with the updated user on success
func (h *UserHandler) ToggleActive(c *gin.Context) {
	targetID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "invalid user id"})
		return
	}

	callerID, callerRole, ok := jwtmw.Caller(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, api.ErrorResponse{Error: "authentication required"})
		return
	}

	updated, err := h.users.ToggleActive(c.Request.Context(), callerID, callerRole, targetID)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrSelfDeactivation):
			slog.Warn("self-deactivation blocked", "caller_id", callerID, "remote_addr", c.ClientIP())
			c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: err.Error()})
		case errors.Is(err, domain.ErrPermissionDenied):
			slog.Warn("toggle active denied", "caller_id", callerID, "target_id", targetID, "remote_addr", c.ClientIP())
			c.JSON(http.StatusForbidden, api.ErrorResponse{Error: err.Error()})
		case errors.Is(err, usecase.ErrUserNotFound):
			c.JSON(http.StatusNotFound, api.ErrorResponse{Error: "user not found"})
		default:
			slog.Error("toggle active failed", "error", err, "target_id", targetID)
			c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "failed to update user"})
		}
		return
	}

	slog.Info("user active flag toggled", "caller_id", callerID, "target_id", targetID, "is_active", updated.IsActive)
	c.JSON(http.StatusOK, updated)
}
