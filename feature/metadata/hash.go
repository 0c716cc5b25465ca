package metadata

import (
	"crypto/sha256"
	"encoding/hex"
	"strings"
)

// hashLen is the number of hex characters kept from the sha256 digest.
// The result is a stable storage key, not a cryptographic identity;
// collisions between identical normalized inputs are the dedup contract.
const hashLen = 16

func hashOf(input string) string {
	sum := sha256.Sum256([]byte(input))
	return hex.EncodeToString(sum[:])[:hashLen]
}

func normalize(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// PerformerHash derives the stable storage key for a performer from its
// normalized name. Deterministic and independent of the database id, so
// the performers/{hash}/ namespace survives database rebuilds.
func PerformerHash(name string) string {
	return hashOf("performer:" + normalize(name))
}

// ContentHash derives the stable storage key for a content item from its
// normalized title and the owning performer's hash.
func ContentHash(title, performerHash string) string {
	return hashOf("content:" + normalize(title) + ":" + performerHash)
}
