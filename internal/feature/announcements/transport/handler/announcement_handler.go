// Package handler provides the HTTP handlers for the announcement feature.
package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/mananuf/voba-portal/internal/api"
	"github.com/mananuf/voba-portal/internal/domain"
	"github.com/mananuf/voba-portal/internal/feature/announcements/domain/entity"
	"github.com/mananuf/voba-portal/internal/feature/announcements/transport/http/dto"
	"github.com/mananuf/voba-portal/internal/feature/announcements/usecase"
	authdomain "github.com/mananuf/voba-portal/internal/feature/auth/domain"
	authentity "github.com/mananuf/voba-portal/internal/feature/auth/domain/entity"
	jwtmw "github.com/mananuf/voba-portal/internal/platform/jwt"
)

// AnnouncementUsecase defines the announcement operations the handler
// depends on.
// Following Go convention: interfaces are defined by the consumer (handler), not the provider (usecase).
type AnnouncementUsecase interface {
	Create(ctx context.Context, callerID uuid.UUID, title, body string) (*entity.Announcement, error)
	List(ctx context.Context) ([]entity.Announcement, error)
	Get(ctx context.Context, id uuid.UUID) (*entity.Announcement, error)
	Update(ctx context.Context, callerID uuid.UUID, callerRole authentity.Role, id uuid.UUID, in usecase.UpdateInput) (*entity.Announcement, error)
	Delete(ctx context.Context, callerID uuid.UUID, callerRole authentity.Role, id uuid.UUID) error
}

// AnnouncementHandler handles the HTTP requests for announcements.
type AnnouncementHandler struct {
	announcements AnnouncementUsecase
}

// NewAnnouncementHandler creates a new instance of AnnouncementHandler.
func NewAnnouncementHandler(announcements AnnouncementUsecase) *AnnouncementHandler {
	return &AnnouncementHandler{announcements: announcements}
}

// Create handles the announcement creation endpoint.
// - 400 on validation errors
// - 201 with the created announcement on success
func (h *AnnouncementHandler) Create(c *gin.Context) {
	var req dto.CreateAnnouncementReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "invalid request"})
		return
	}

	callerID, _, ok := jwtmw.Caller(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, api.ErrorResponse{Error: "authentication required"})
		return
	}

	a, err := h.announcements.Create(c.Request.Context(), callerID, req.Title, req.Body)
	if err != nil {
		slog.Error("create announcement failed", "error", err, "caller_id", callerID)
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "failed to create announcement"})
		return
	}

	slog.Info("announcement created", "id", a.ID, "caller_id", callerID)
	c.JSON(http.StatusCreated, a)
}

// List handles the public announcement listing endpoint.
func (h *AnnouncementHandler) List(c *gin.Context) {
	out, err := h.announcements.List(c.Request.Context())
	if err != nil {
		slog.Error("list announcements failed", "error", err, "remote_addr", c.ClientIP())
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "failed to fetch announcements"})
		return
	}

	c.JSON(http.StatusOK, out)
}

// Get handles the single announcement endpoint.
// - 400 on a malformed id
// - 404 when no such announcement exists
func (h *AnnouncementHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "invalid announcement id"})
		return
	}

	a, err := h.announcements.Get(c.Request.Context(), id)
	if err != nil {
		if domain.IsNotFound(err) {
			c.JSON(http.StatusNotFound, api.ErrorResponse{Error: "announcement not found"})
			return
		}
		slog.Error("get announcement failed", "error", err, "id", id)
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "failed to fetch announcement"})
		return
	}

	c.JSON(http.StatusOK, a)
}

// Update handles the announcement edit endpoint.
// - 400 on a malformed id, bad payload or an update with no fields
// - 403 when the caller is neither the author nor an admin
// - 404 when no such announcement exists
// - 200 with the updated announcement on success
func (h *AnnouncementHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "invalid announcement id"})
		return
	}

	var req dto.UpdateAnnouncementReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "invalid request"})
		return
	}

	callerID, callerRole, ok := jwtmw.Caller(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, api.ErrorResponse{Error: "authentication required"})
		return
	}

	a, err := h.announcements.Update(c.Request.Context(), callerID, callerRole, id, usecase.UpdateInput{
		Title: req.Title,
		Body:  req.Body,
	})
	if err != nil {
		h.writeMutationError(c, err, "update", id, callerID)
		return
	}

	slog.Info("announcement updated", "id", id, "caller_id", callerID)
	c.JSON(http.StatusOK, a)
}

// Delete handles the announcement removal endpoint.
// - 400 on a malformed id
// - 403 when the caller is neither the author nor an admin
// - 404 when no such announcement exists
// - 200 with a confirmation message on success
func (h *AnnouncementHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "invalid announcement id"})
		return
	}

	callerID, callerRole, ok := jwtmw.Caller(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, api.ErrorResponse{Error: "authentication required"})
		return
	}

	if err := h.announcements.Delete(c.Request.Context(), callerID, callerRole, id); err != nil {
		h.writeMutationError(c, err, "delete", id, callerID)
		return
	}

	slog.Info("announcement deleted", "id", id, "caller_id", callerID)
	c.JSON(http.StatusOK, api.MessageResponse{Message: "announcement deleted"})
}

// writeMutationError maps update/delete failures onto HTTP statuses.
func (h *AnnouncementHandler) writeMutationError(c *gin.Context, err error, op string, id, callerID uuid.UUID) {
	switch {
	case errors.Is(err, authdomain.ErrPermissionDenied):
		slog.Warn("announcement mutation denied", "op", op, "id", id, "caller_id", callerID)
		c.JSON(http.StatusForbidden, api.ErrorResponse{Error: err.Error()})
	case domain.IsNoUpdateFields(err):
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "no fields provided for update"})
	case domain.IsNotFound(err):
		c.JSON(http.StatusNotFound, api.ErrorResponse{Error: "announcement not found"})
	default:
		slog.Error("announcement mutation failed", "op", op, "error", err, "id", id, "caller_id", callerID)
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "failed to " + op + " announcement"})
	}
}
