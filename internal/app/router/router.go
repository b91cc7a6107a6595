// Package router wires the HTTP endpoints to their handlers.
package router

import (
	"github.com/gin-gonic/gin"

	announcementhandler "github.com/mananuf/voba-portal/internal/feature/announcements/transport/handler"
	authhandler "github.com/mananuf/voba-portal/internal/feature/auth/transport/handler"
	userhandler "github.com/mananuf/voba-portal/internal/feature/users/transport/handler"
	"github.com/mananuf/voba-portal/internal/platform/http/handler"
	jwtmw "github.com/mananuf/voba-portal/internal/platform/jwt"
)

// NewRouter builds the Gin engine with every route of the portal.
func NewRouter(
	tokens *jwtmw.Service,
	auth *authhandler.AuthHandler,
	users *userhandler.UserHandler,
	announcements *announcementhandler.AnnouncementHandler,
) *gin.Engine {
	r := gin.Default()

	// No authentication required
	r.GET("/healthz", handler.Health)
	r.HEAD("/healthz", handler.Health)

	r.POST("/auth/register", auth.Register)
	r.POST("/auth/login", auth.Login)
	// Link target of the verification email
	r.GET("/auth/verify-email", auth.VerifyEmail)
	r.POST("/auth/resend-verification", auth.ResendVerification)

	// Announcements are readable by anyone
	r.GET("/announcements", announcements.List)
	r.GET("/announcements/:id", announcements.Get)

	// Routes requiring a valid bearer token
	authed := r.Group("/")
	authed.Use(jwtmw.AuthRequired(tokens))
	{
		authed.GET("/users", users.List)
		authed.PATCH("/users/:id/toggle-active", users.ToggleActive)

		authed.POST("/announcements", announcements.Create)
		authed.PUT("/announcements/:id", announcements.Update)
		authed.DELETE("/announcements/:id", announcements.Delete)
	}

	return r
}
