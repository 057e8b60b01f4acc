package issue

import (
	"crypto/sha1"
	"encoding/hex"
)

// Fingerprint derives the dedup key for a message: the first 8 hex
// characters of its SHA-1 digest. Stable across processes and restarts,
// so the same message always lands on the same issue.
func Fingerprint(message string) string {
	sum := sha1.Sum([]byte(message))
	return hex.EncodeToString(sum[:])[:8]
}
