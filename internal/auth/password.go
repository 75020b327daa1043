// ABOUTME: Credential digest utility for the admin password
// ABOUTME: Deterministic unsalted SHA-256 hex, matching the stored format

package auth

import (
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"
)

// Digest returns the one-way transform of a plaintext password as a lowercase
// hex string. The same input always produces the same output.
//
// The scheme is unsalted SHA-256, kept for compatibility with digests already
// stored in deployed databases. It offers no protection against rainbow-table
// attacks; acceptable only under the single-trusted-admin threat model.
func Digest(password string) string {
	sum := sha256.Sum256([]byte(password))
	return hex.EncodeToString(sum[:])
}

// VerifyDigest reports whether the plaintext password matches the stored
// digest. Comparison is constant-time.
func VerifyDigest(password, digest string) bool {
	return subtle.ConstantTimeCompare([]byte(Digest(password)), []byte(digest)) == 1
}
