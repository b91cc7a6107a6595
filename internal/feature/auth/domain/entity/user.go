// Package entity defines the domain entities for the auth feature.
package entity

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Role is the access level assigned to a user. The stored and wire form is
// the lowercase snake_case name.
type Role string

const (
	RoleSuperAdmin Role = "super_admin"
	RoleAdmin      Role = "admin"
	RoleMember     Role = "member"
	RoleTreasurer  Role = "treasurer"
)

// ParseRole maps a wire-form role name to a Role. Unknown or empty input
// falls back to RoleMember, the registration default.
func ParseRole(s string) Role {
	switch Role(s) {
	case RoleSuperAdmin, RoleAdmin, RoleTreasurer:
		return Role(s)
	default:
		return RoleMember
	}
}

// IsAdmin reports whether the role carries administrative privileges.
func (r Role) IsAdmin() bool {
	return r == RoleAdmin || r == RoleSuperAdmin
}

// User represents a registered member of the portal.
// It is mutated only through the authentication flow and the privileged
// user-management operations.
type User struct {
	// ID is the unique identifier for the user, immutable after creation.
	ID uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`

	// Fullname is the user's display name.
	Fullname string `gorm:"size:255;not null" json:"fullname"`

	// Email is the user's address used for authentication.
	// It must be unique across all users.
	Email string `gorm:"uniqueIndex;size:255;not null" json:"email"`

	// PasswordHash is the bcrypt hash of the user's password.
	// Plaintext passwords are never stored.
	PasswordHash string `gorm:"size:255;not null" json:"-"`

	// Role is the user's access level. Defaults to member.
	Role Role `gorm:"size:32;not null;default:member" json:"role"`

	// EmailVerificationCode is the pending single-use verification code.
	// It is non-nil only while the email is unverified and a code is live.
	EmailVerificationCode *string `gorm:"size:64;index" json:"-"`

	// EmailVerificationExpiresAt is when the pending code stops being valid.
	EmailVerificationExpiresAt *time.Time `json:"-"`

	// IsEmailVerified becomes true exactly once, via the verification flow.
	IsEmailVerified bool `gorm:"not null;default:false" json:"is_email_verified"`

	// IsActive gates login. Toggled only by privileged users.
	IsActive bool `gorm:"not null;default:false" json:"is_active"`

	// CreatedAt is the timestamp when the user was created.
	CreatedAt time.Time `json:"created_at"`

	// UpdatedAt is the timestamp when the user was last updated.
	UpdatedAt time.Time `json:"updated_at"`
}

// BeforeCreate assigns a fresh UUID when none was set by the caller.
func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	return nil
}

// HasLiveVerificationCode reports whether a code has been issued and has not
// expired at the given instant.
func (u *User) HasLiveVerificationCode(now time.Time) bool {
	return u.EmailVerificationCode != nil &&
		u.EmailVerificationExpiresAt != nil &&
		now.Before(*u.EmailVerificationExpiresAt)
}
