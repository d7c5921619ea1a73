package utils

import (
	"encoding/hex"

	"golang.org/x/crypto/blake2b"
)

// HashSessionToken derives a fixed length, non reversible key fragment from the upstream
// session token so raw tokens never appear in cache keys or logs.
func HashSessionToken(token string) string {
	sum := blake2b.Sum256([]byte(token))
	return hex.EncodeToString(sum[:16])
}
