package helpers

import (
	"crypto/sha256"
	"encoding/hex"

	"github.com/google/uuid"
)

// GenerateToken returns an opaque single-use token: the hex digest of a
// fresh UUIDv4. 64 characters, safe to embed in links and store as text.
func GenerateToken() string {
	sum := sha256.Sum256([]byte(uuid.NewString()))
	return hex.EncodeToString(sum[:])
}
