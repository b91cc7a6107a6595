// Package domain holds the access-control policy and domain-level errors for
// the auth feature.
package domain

import (
	"github.com/google/uuid"

	"github.com/mananuf/voba-portal/internal/feature/auth/domain/entity"
)

// CanMutate decides whether a caller may mutate a resource owned by ownerID.
// Owners may mutate their own resources; admins and super admins may mutate
// anything. Every resource mutation endpoint applies this same rule with the
// resource's posted_by/created_by/user_id as the owner.
func CanMutate(callerID uuid.UUID, callerRole entity.Role, ownerID uuid.UUID) bool {
	return callerID == ownerID || callerRole.IsAdmin()
}

// CanToggleActive decides whether a caller may flip another user's active
// flag. Only admins and super admins may, and never on their own account:
// self-deactivation is blocked regardless of role.
func CanToggleActive(callerID uuid.UUID, callerRole entity.Role, targetID uuid.UUID) bool {
	return callerRole.IsAdmin() && callerID != targetID
}
