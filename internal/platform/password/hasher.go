// Package password provides the one-way password hashing primitive used by
// the authentication flow.
package password

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// Hasher hashes and verifies passwords with bcrypt.
//
// Hashing is CPU-bound, so a semaphore bounds the number of bcrypt operations
// running at once: a burst of logins slows down instead of starving every
// other request of CPU.
type Hasher struct {
	cost int
	sem  chan struct{}
}

// NewHasher creates a Hasher with the given bcrypt cost and concurrency bound.
// Out-of-range costs fall back to bcrypt.DefaultCost; a non-positive
// maxConcurrent falls back to 8.
func NewHasher(cost, maxConcurrent int) *Hasher {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = bcrypt.DefaultCost
	}
	if maxConcurrent <= 0 {
		maxConcurrent = 8
	}
	return &Hasher{
		cost: cost,
		sem:  make(chan struct{}, maxConcurrent),
	}
}

// Hash returns the bcrypt hash of the plaintext password.
func (h *Hasher) Hash(plain string) (string, error) {
	h.sem <- struct{}{}
	defer func() { <-h.sem }()

	hashed, err := bcrypt.GenerateFromPassword([]byte(plain), h.cost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}
	return string(hashed), nil
}

// Verify reports whether plain matches the stored hash. Any bcrypt error,
// including a malformed stored hash, yields false: verification fails closed
// instead of propagating.
func (h *Hasher) Verify(plain, hash string) bool {
	h.sem <- struct{}{}
	defer func() { <-h.sem }()

	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(plain)) == nil
}
