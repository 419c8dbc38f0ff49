package utils

import (
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"
)

// HashRefreshToken generates a SHA256 hash of a refresh token. Only this hash
// is persisted, so a store compromise cannot yield reusable sessions.
// bcrypt is not usable here: signed refresh tokens exceed its 72-byte input limit.
func HashRefreshToken(token string) string {
	sum := sha256.Sum256([]byte(token))
	return hex.EncodeToString(sum[:])
}

// CompareRefreshTokenHash compares a raw refresh token with its stored hash in
// constant time. The token parameter is the raw token string, not a hash.
func CompareRefreshTokenHash(token string, storedHash string) bool {
	computed := HashRefreshToken(token)
	return subtle.ConstantTimeCompare([]byte(computed), []byte(storedHash)) == 1
}
