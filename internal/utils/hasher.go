package utils

import (
	"crypto/sha256"
	"encoding/hex"
)

// Hash generates a SHA-256 hash of the input string
func Hash(input string) string {
	hasher := sha256.New()
	hasher.Write([]byte(input))
	return hex.EncodeToString(hasher.Sum(nil))
}

// ShortHash returns the first 12 hex characters of Hash. Used for stable
// article ids keyed on the URL: long enough to avoid collisions within a
// 30-item feed, short enough for routing.
func ShortHash(input string) string {
	return Hash(input)[:12]
}
