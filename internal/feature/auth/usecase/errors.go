// Package usecase implements the business logic for the auth feature.
package usecase

import "errors"

var (
	// ErrUserNotFound is returned when a user cannot be found by email or ID.
	ErrUserNotFound = errors.New("user not found")

	// ErrEmailAlreadyExists is returned when attempting to register an email
	// that already exists.
	ErrEmailAlreadyExists = errors.New("email already exists")

	// ErrInvalidCredentials is returned when the email or password is wrong.
	// The two cases are deliberately indistinguishable to the caller.
	ErrInvalidCredentials = errors.New("invalid email or password")

	// ErrAccountInactive is returned when a deactivated account attempts to
	// log in with otherwise valid credentials.
	ErrAccountInactive = errors.New("account is not active")

	// ErrEmailNotVerified is returned when an unverified account attempts to
	// log in with otherwise valid credentials.
	ErrEmailNotVerified = errors.New("please verify your email address before logging in")

	// ErrInvalidVerificationCode is returned when no user carries the
	// presented verification code.
	ErrInvalidVerificationCode = errors.New("invalid verification code")

	// ErrVerificationCodeExpired is returned when the presented code exists
	// but its expiry has passed. The code stays in place; only a resend
	// replaces it.
	ErrVerificationCodeExpired = errors.New("verification code has expired")

	// ErrNotificationFailed is returned when resending the verification
	// email fails. Unlike registration, delivery is the whole point of a
	// resend, so the failure is fatal for that operation.
	ErrNotificationFailed = errors.New("failed to send verification email")
)
