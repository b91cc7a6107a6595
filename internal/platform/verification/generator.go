// Package verification generates the single-use codes that prove control of
// an email address.
package verification

import (
	"crypto/rand"
	"fmt"
	"time"
)

const (
	// CodeLength is the number of characters in a verification code.
	CodeLength = 32

	// CodeTTL is how long a freshly issued code stays valid.
	CodeTTL = 24 * time.Hour

	alphabet = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
)

// Generator produces cryptographically unpredictable alphanumeric codes.
// The zero value is ready to use.
type Generator struct{}

// Generate returns a new CodeLength-character code drawn from crypto/rand.
// Each byte is selected by rejection sampling so the alphabet stays uniform.
func (Generator) Generate() (string, error) {
	// 256 % 62 != 0, so bytes at or above the largest multiple of 62 are
	// rejected to avoid biasing the first characters of the alphabet.
	const max = byte(256 - 256%len(alphabet))

	code := make([]byte, 0, CodeLength)
	buf := make([]byte, CodeLength)
	for len(code) < CodeLength {
		if _, err := rand.Read(buf); err != nil {
			return "", fmt.Errorf("failed to read random bytes: %w", err)
		}
		for _, b := range buf {
			if b >= max {
				continue
			}
			code = append(code, alphabet[int(b)%len(alphabet)])
			if len(code) == CodeLength {
				break
			}
		}
	}
	return string(code), nil
}
