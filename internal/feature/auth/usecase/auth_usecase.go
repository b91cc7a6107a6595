package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/mananuf/voba-portal/internal/feature/auth/domain/entity"
	"github.com/mananuf/voba-portal/internal/platform/verification"
)

const (
	// minPasswordLength is the minimum accepted password length.
	minPasswordLength = 8

	// dummyHash keeps bcrypt comparison time constant when the email is
	// unknown, so login timing does not leak account existence.
	dummyHash = "$2a$10$N9qo8uLOickgx2ZMRZoMyeIjZAgcfl7p92ldGxad68LJZdL17lhWy"
)

// UserRepository abstracts the credential store.
// Following Go convention: interfaces are defined by the consumer (usecase), not the provider (adapters).
type UserRepository interface {
	// Create persists a new user. It returns ErrEmailAlreadyExists when the
	// email is already taken; the store's uniqueness constraint is the
	// source of truth, not a pre-check.
	Create(ctx context.Context, user *entity.User) error

	// FindByEmail retrieves the user with the given email address.
	// It returns ErrUserNotFound when no such user exists.
	FindByEmail(ctx context.Context, email string) (*entity.User, error)

	// FindByID retrieves the user with the given ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error)

	// FindByVerificationCode retrieves the user carrying the given pending
	// verification code. It returns ErrUserNotFound when no user does.
	FindByVerificationCode(ctx context.Context, code string) (*entity.User, error)

	// MarkEmailVerified sets is_email_verified and clears the pending code
	// and its expiry in one update.
	MarkEmailVerified(ctx context.Context, id uuid.UUID) error

	// ReplaceVerificationCode installs a new pending code and expiry,
	// discarding any previous one.
	ReplaceVerificationCode(ctx context.Context, id uuid.UUID, code string, expiresAt time.Time) error
}

// PasswordHasher abstracts the one-way password hash primitive.
type PasswordHasher interface {
	// Hash returns the salted hash of the plaintext password.
	Hash(plain string) (string, error)

	// Verify reports whether plain matches the stored hash, failing closed
	// on malformed hashes.
	Verify(plain, hash string) bool
}

// CodeGenerator abstracts the verification code source.
type CodeGenerator interface {
	// Generate returns a fresh cryptographically unpredictable code.
	Generate() (string, error)
}

// TokenIssuer abstracts session token issuance.
type TokenIssuer interface {
	// Generate creates a signed session token for the given user.
	Generate(user *entity.User) (string, error)
}

// Notifier abstracts outbound email delivery. Implementations render the
// templates; the flow only decides when delivery failures are fatal.
type Notifier interface {
	// SendVerification delivers the verification email carrying the code.
	SendVerification(ctx context.Context, toEmail, toName, code string) error

	// SendWelcome delivers the post-verification welcome email.
	SendWelcome(ctx context.Context, toEmail, toName string) error
}

// RegisterInput carries the registration request fields.
type RegisterInput struct {
	Fullname string
	Email    string
	Password string
	// Role is the requested wire-form role; unknown values fall back to member.
	Role string
	// IsActive is the initial activation flag; privileged seeding sets it true.
	IsActive bool
}

// AuthResult is returned by Register and Login.
type AuthResult struct {
	Token string
	User  *entity.User
}

// authUsecase orchestrates registration, login and the email verification
// lifecycle.
type authUsecase struct {
	users    UserRepository
	hasher   PasswordHasher
	codes    CodeGenerator
	tokens   TokenIssuer
	notifier Notifier
}

// NewAuthUsecase creates a new instance of authUsecase.
func NewAuthUsecase(users UserRepository, hasher PasswordHasher, codes CodeGenerator,
	tokens TokenIssuer, notifier Notifier) *authUsecase {
	return &authUsecase{
		users:    users,
		hasher:   hasher,
		codes:    codes,
		tokens:   tokens,
		notifier: notifier,
	}
}

// validatePassword checks that the password meets the security requirements.
func validatePassword(password string) error {
	if len(password) < minPasswordLength {
		return fmt.Errorf("password must be at least %d characters long", minPasswordLength)
	}
	return nil
}

// Register creates an unverified account, emails the verification code, and
// returns a session token so the caller is authenticated immediately.
// Failure to send the email does not fail registration; it is only logged.
func (u *authUsecase) Register(ctx context.Context, in RegisterInput) (*AuthResult, error) {
	if err := validatePassword(in.Password); err != nil {
		return nil, err
	}

	hashed, err := u.hasher.Hash(in.Password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	code, err := u.codes.Generate()
	if err != nil {
		return nil, fmt.Errorf("failed to generate verification code: %w", err)
	}
	expiresAt := time.Now().Add(verification.CodeTTL)

	user := &entity.User{
		Fullname:                   in.Fullname,
		Email:                      in.Email,
		PasswordHash:               hashed,
		Role:                       entity.ParseRole(in.Role),
		EmailVerificationCode:      &code,
		EmailVerificationExpiresAt: &expiresAt,
		IsEmailVerified:            false,
		IsActive:                   in.IsActive,
	}
	if err := u.users.Create(ctx, user); err != nil {
		return nil, err
	}

	// Best effort: the account exists either way, the user can ask for a resend.
	if err := u.notifier.SendVerification(ctx, user.Email, user.Fullname, code); err != nil {
		slog.Error("failed to send verification email", "email", user.Email, "error", err)
	} else {
		slog.Info("verification email sent", "email", user.Email)
	}

	token, err := u.tokens.Generate(user)
	if err != nil {
		return nil, fmt.Errorf("failed to generate token: %w", err)
	}

	return &AuthResult{Token: token, User: user}, nil
}

// Login authenticates a user and returns a session token. Unknown emails and
// wrong passwords produce the same ErrInvalidCredentials; inactive and
// unverified accounts are reported distinctly only after the password check.
func (u *authUsecase) Login(ctx context.Context, email, password string) (*AuthResult, error) {
	user, err := u.users.FindByEmail(ctx, email)
	if err != nil && !errors.Is(err, ErrUserNotFound) {
		return nil, err
	}

	// Always run the bcrypt comparison so an unknown email costs the same
	// as a wrong password.
	hash := dummyHash
	if err == nil {
		hash = user.PasswordHash
	}
	ok := u.hasher.Verify(password, hash)
	if err != nil || !ok {
		return nil, ErrInvalidCredentials
	}

	if !user.IsActive {
		return nil, ErrAccountInactive
	}
	if !user.IsEmailVerified {
		return nil, ErrEmailNotVerified
	}

	token, err := u.tokens.Generate(user)
	if err != nil {
		return nil, fmt.Errorf("failed to generate token: %w", err)
	}

	return &AuthResult{Token: token, User: user}, nil
}

// VerifyEmail consumes a verification code: the matching user becomes
// verified and the code is cleared, making it single-use. An expired code is
// rejected and left in place; only a resend installs a new one.
func (u *authUsecase) VerifyEmail(ctx context.Context, code string) (*entity.User, error) {
	if code == "" {
		return nil, ErrInvalidVerificationCode
	}

	user, err := u.users.FindByVerificationCode(ctx, code)
	if err != nil {
		if errors.Is(err, ErrUserNotFound) {
			return nil, ErrInvalidVerificationCode
		}
		return nil, err
	}

	if user.EmailVerificationExpiresAt != nil && time.Now().After(*user.EmailVerificationExpiresAt) {
		return nil, ErrVerificationCodeExpired
	}

	if err := u.users.MarkEmailVerified(ctx, user.ID); err != nil {
		return nil, err
	}
	user.IsEmailVerified = true
	user.EmailVerificationCode = nil
	user.EmailVerificationExpiresAt = nil

	// Best effort: verification already succeeded.
	if err := u.notifier.SendWelcome(ctx, user.Email, user.Fullname); err != nil {
		slog.Error("failed to send welcome email", "email", user.Email, "error", err)
	}

	slog.Info("email verified", "email", user.Email)
	return user, nil
}

// ResendVerification installs a fresh code with a fresh expiry and emails it.
// An already verified account is an idempotent success: no new code, no
// email. A delivery failure is fatal here and surfaces as ErrNotificationFailed.
func (u *authUsecase) ResendVerification(ctx context.Context, email string) error {
	user, err := u.users.FindByEmail(ctx, email)
	if err != nil {
		return err
	}

	if user.IsEmailVerified {
		return nil
	}

	code, err := u.codes.Generate()
	if err != nil {
		return fmt.Errorf("failed to generate verification code: %w", err)
	}
	if err := u.users.ReplaceVerificationCode(ctx, user.ID, code, time.Now().Add(verification.CodeTTL)); err != nil {
		return err
	}

	if err := u.notifier.SendVerification(ctx, user.Email, user.Fullname, code); err != nil {
		return fmt.Errorf("%w: %v", ErrNotificationFailed, err)
	}

	slog.Info("verification email resent", "email", user.Email)
	return nil
}
