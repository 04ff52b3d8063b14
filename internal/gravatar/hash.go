package gravatar

import (
	"crypto/sha256"
	"encoding/hex"
	"strings"
)

// HashKey computes the address hash for a lookup key: the lowercase hex
// SHA-256 digest of the trimmed, lower-cased key. Normalization happens
// before hashing so case and whitespace variants of the same address map
// to the same digest. Pure function, no failure modes.
func HashKey(key string) string {
	normalized := strings.ToLower(strings.TrimSpace(key))
	sum := sha256.Sum256([]byte(normalized))
	return hex.EncodeToString(sum[:])
}
