// Package adapters provides the repository implementations for the auth feature.
package adapters

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"

	"github.com/mananuf/voba-portal/internal/feature/auth/domain/entity"
	"github.com/mananuf/voba-portal/internal/feature/auth/usecase"
	usersusecase "github.com/mananuf/voba-portal/internal/feature/users/usecase"
)

// userPostgres is the gorm-backed implementation of the credential store.
type userPostgres struct {
	db *gorm.DB
}

// Compile-time checks that userPostgres satisfies the usecase contracts.
var (
	_ usecase.UserRepository      = (*userPostgres)(nil)
	_ usersusecase.UserRepository = (*userPostgres)(nil)
)

// NewUserPostgres creates a userPostgres instance on the given gorm connection.
func NewUserPostgres(db *gorm.DB) *userPostgres {
	return &userPostgres{db: db}
}

// isUniqueViolation reports whether err is the store's duplicate-key error.
// The column carries a unique index, so the store, not the pre-check, is the
// source of truth for email uniqueness under concurrent registration.
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23505" {
		return true
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	// SQLite wording, hit by the in-memory test database.
	return strings.Contains(err.Error(), "UNIQUE constraint failed")
}

// Create persists a new user. A duplicate email yields
// usecase.ErrEmailAlreadyExists.
func (r *userPostgres) Create(ctx context.Context, u *entity.User) error {
	if err := r.db.WithContext(ctx).Create(u).Error; err != nil {
		if isUniqueViolation(err) {
			return usecase.ErrEmailAlreadyExists
		}
		return err
	}
	return nil
}

// FindByEmail retrieves a user by email address.
// It returns usecase.ErrUserNotFound when no such user exists.
func (r *userPostgres) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	var u entity.User
	if err := r.db.WithContext(ctx).Where("email = ?", email).First(&u).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, usecase.ErrUserNotFound
		}
		return nil, err
	}
	return &u, nil
}

// FindByID retrieves a user by ID.
// It returns usecase.ErrUserNotFound when no such user exists.
func (r *userPostgres) FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	var u entity.User
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&u).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, usecase.ErrUserNotFound
		}
		return nil, err
	}
	return &u, nil
}

// FindByVerificationCode retrieves the user carrying the given pending code.
// It returns usecase.ErrUserNotFound when no user does.
func (r *userPostgres) FindByVerificationCode(ctx context.Context, code string) (*entity.User, error) {
	var u entity.User
	if err := r.db.WithContext(ctx).Where("email_verification_code = ?", code).First(&u).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, usecase.ErrUserNotFound
		}
		return nil, err
	}
	return &u, nil
}

// MarkEmailVerified flips is_email_verified and clears the pending code and
// expiry in a single update, so a consumed code can never be presented twice.
func (r *userPostgres) MarkEmailVerified(ctx context.Context, id uuid.UUID) error {
	res := r.db.WithContext(ctx).Model(&entity.User{}).Where("id = ?", id).Updates(map[string]any{
		"is_email_verified":             true,
		"email_verification_code":       nil,
		"email_verification_expires_at": nil,
	})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return usecase.ErrUserNotFound
	}
	return nil
}

// ReplaceVerificationCode installs a new pending code and expiry, discarding
// any previous one.
func (r *userPostgres) ReplaceVerificationCode(ctx context.Context, id uuid.UUID, code string, expiresAt time.Time) error {
	res := r.db.WithContext(ctx).Model(&entity.User{}).Where("id = ?", id).Updates(map[string]any{
		"email_verification_code":       code,
		"email_verification_expires_at": expiresAt,
	})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return usecase.ErrUserNotFound
	}
	return nil
}

// FindAll returns every user, newest first.
func (r *userPostgres) FindAll(ctx context.Context) ([]entity.User, error) {
	var users []entity.User
	if err := r.db.WithContext(ctx).Order("created_at DESC").Find(&users).Error; err != nil {
		return nil, err
	}
	return users, nil
}

// SetActive sets the is_active flag on the given user.
func (r *userPostgres) SetActive(ctx context.Context, id uuid.UUID, active bool) error {
	res := r.db.WithContext(ctx).Model(&entity.User{}).Where("id = ?", id).Update("is_active", active)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return usecase.ErrUserNotFound
	}
	return nil
}
