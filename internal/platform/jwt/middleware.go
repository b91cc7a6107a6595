package jwtmw

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/mananuf/voba-portal/internal/api"
	"github.com/mananuf/voba-portal/internal/feature/auth/domain/entity"
)

// Gin context keys populated by AuthRequired.
const (
	ContextUserID    = "userID"
	ContextUserEmail = "userEmail"
	ContextUserRole  = "userRole"
)

// AuthRequired returns a Gin middleware that validates the Bearer token and
// restricts access to authenticated users. On success the caller's identity,
// email and role are stored in the request context; any missing or invalid
// token aborts with 401 before handler logic runs.
func AuthRequired(svc *Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		auth := c.GetHeader("Authorization")
		if !strings.HasPrefix(auth, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, api.ErrorResponse{Error: "missing bearer token"})
			return
		}

		claims, err := svc.Validate(strings.TrimPrefix(auth, "Bearer "))
		if err != nil {
			status := http.StatusUnauthorized
			msg := "invalid token"
			switch err {
			case ErrTokenExpired:
				msg = "token has expired"
			case ErrMissingSecret:
				// Server misconfiguration, not a client fault.
				status = http.StatusInternalServerError
				msg = "server misconfigured"
			}
			c.AbortWithStatusJSON(status, api.ErrorResponse{Error: msg})
			return
		}

		userID := claims.UserID()
		if userID == uuid.Nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, api.ErrorResponse{Error: "invalid token"})
			return
		}

		c.Set(ContextUserID, userID)
		c.Set(ContextUserEmail, claims.Email)
		c.Set(ContextUserRole, claims.Role)
		c.Next()
	}
}

// Caller extracts the authenticated identity and role stored by AuthRequired.
// The boolean is false when the middleware did not run on this request.
func Caller(c *gin.Context) (uuid.UUID, entity.Role, bool) {
	idVal, ok := c.Get(ContextUserID)
	if !ok {
		return uuid.Nil, "", false
	}
	id, ok := idVal.(uuid.UUID)
	if !ok {
		return uuid.Nil, "", false
	}
	roleVal, ok := c.Get(ContextUserRole)
	if !ok {
		return uuid.Nil, "", false
	}
	role, ok := roleVal.(entity.Role)
	if !ok {
		return uuid.Nil, "", false
	}
	return id, role, true
}
