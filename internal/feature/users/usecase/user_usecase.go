package usecase

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/mananuf/voba-portal/internal/feature/auth/domain"
	"github.com/mananuf/voba-portal/internal/feature/auth/domain/entity"
	authusecase "github.com/mananuf/voba-portal/internal/feature/auth/usecase"
)

// ErrUserNotFound mirrors the auth repository's not-found sentinel so that
// callers of this feature do not have to import the auth usecase package.
var ErrUserNotFound = authusecase.ErrUserNotFound

// UserRepository abstracts the user reads and status writes this feature needs.
// Following Go convention: interfaces are defined by the consumer, not the
// implementer.
type UserRepository interface {
	FindAll(ctx context.Context) ([]entity.User, error)
	FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error)
	SetActive(ctx context.Context, id uuid.UUID, active bool) error
}

type userUsecase struct {
	users UserRepository
}

// NewUserUsecase builds the user administration usecase.
func NewUserUsecase(users UserRepository) *userUsecase {
	return &userUsecase{users: users}
}

// List returns every user ordered by creation time, newest first.
func (u *userUsecase) List(ctx context.Context) ([]entity.User, error) {
	return u.users.FindAll(ctx)
}

// ToggleActive flips the target user's active flag and returns the updated
// record. Only admins and super admins may do this, and never on their own
// account.
func (u *userUsecase) ToggleActive(ctx context.Context, callerID uuid.UUID, callerRole entity.Role, targetID uuid.UUID) (*entity.User, error) {
	if !domain.CanToggleActive(callerID, callerRole, targetID) {
		if callerRole.IsAdmin() && callerID == targetID {
			return nil, domain.ErrSelfDeactivation
		}
		return nil, domain.ErrPermissionDenied
	}

	target, err := u.users.FindByID(ctx, targetID)
	if err != nil {
		if errors.Is(err, ErrUserNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	next := !target.IsActive
	if err := u.users.SetActive(ctx, targetID, next); err != nil {
		return nil, err
	}

	target.IsActive = next
	return target, nil
}
