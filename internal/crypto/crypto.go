// Package crypto implements secret generation and password hashing.
package crypto

import (
	"crypto/rand"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"
)

// TokenHex returns n cryptographically secure random bytes hex-encoded
// (2n characters). Used for salts, account tokens and security tokens.
func TokenHex(n int) (string, error) {
	b := make([]byte, n)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return hex.EncodeToString(b), nil
}

// HashPassword returns the hex SHA-256 digest of password||salt. The digest
// layout is fixed: every hash already stored by deployed installations was
// produced this way, so changing it would lock out existing accounts.
func HashPassword(password, salt string) string {
	sum := sha256.Sum256([]byte(password + salt))
	return hex.EncodeToString(sum[:])
}

// VerifyPassword recomputes the digest and compares in constant time.
func VerifyPassword(password, salt, expected string) bool {
	got := HashPassword(password, salt)
	return subtle.ConstantTimeCompare([]byte(got), []byte(expected)) == 1
}
