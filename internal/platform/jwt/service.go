// Package jwtmw provides the session token service and the Gin middleware
// that enforces it.
package jwtmw

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/mananuf/voba-portal/internal/feature/auth/domain/entity"
)

// Token service errors. ErrMissingSecret is a server misconfiguration; the
// other two classify every client-supplied token failure.
var (
	// ErrMissingSecret is returned when the signing secret is not configured.
	ErrMissingSecret = errors.New("jwt signing secret is not configured")

	// ErrInvalidToken is returned for malformed, tampered, or wrongly signed tokens.
	ErrInvalidToken = errors.New("invalid token")

	// ErrTokenExpired is returned when a token's expiry is in the past.
	ErrTokenExpired = errors.New("token has expired")
)

// Claims is the decoded payload of a session token: the caller's identity,
// email and role plus the standard issued-at/expires-at timestamps. Tokens
// are stateless; validation never touches the store, so role and active-state
// changes only take effect after the token expires.
type Claims struct {
	Email string      `json:"email"`
	Role  entity.Role `json:"role"`
	jwt.RegisteredClaims
}

// UserID returns the subject identity carried by the token.
// It returns uuid.Nil if the subject is not a valid UUID.
func (c *Claims) UserID() uuid.UUID {
	id, err := uuid.Parse(c.Subject)
	if err != nil {
		return uuid.Nil
	}
	return id
}

// Service issues and validates signed session tokens.
type Service struct {
	secret []byte
	ttl    time.Duration
}

// NewService creates a token Service with the provided signing secret and
// token lifetime.
func NewService(secret string, ttl time.Duration) *Service {
	return &Service{
		secret: []byte(secret),
		ttl:    ttl,
	}
}

// Generate creates a signed HS256 token carrying the user's identity, email
// and role. It fails with ErrMissingSecret when no secret is configured.
func (s *Service) Generate(user *entity.User) (string, error) {
	if len(s.secret) == 0 {
		return "", ErrMissingSecret
	}

	now := time.Now()
	claims := Claims{
		Email: user.Email,
		Role:  user.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   user.ID.String(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", err
	}
	return signed, nil
}

// Validate verifies the signature and expiry of a raw token and returns its
// claims. Expired tokens yield ErrTokenExpired; every other failure (bad
// signature, wrong algorithm, malformed structure) yields ErrInvalidToken.
// Validation is pure computation with no store lookup.
func (s *Service) Validate(raw string) (*Claims, error) {
	if len(s.secret) == 0 {
		return nil, ErrMissingSecret
	}

	var claims Claims
	token, err := jwt.ParseWithClaims(raw, &claims, func(t *jwt.Token) (interface{}, error) {
		// Only HMAC is accepted; rejects alg-substitution tokens.
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return s.secret, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrTokenExpired
		}
		return nil, ErrInvalidToken
	}
	if !token.Valid {
		return nil, ErrInvalidToken
	}
	return &claims, nil
}
