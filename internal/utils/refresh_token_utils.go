package utils

import (
	"crypto/sha256"
	"encoding/hex"
)

// HashRefreshToken derives the storable hash of a refresh token. Only the
// hash ever reaches the database.
func HashRefreshToken(token string) string {
	sum := sha256.Sum256([]byte(token))
	return hex.EncodeToString(sum[:])
}
