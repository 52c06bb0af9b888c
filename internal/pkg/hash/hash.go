package hash

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
)

// Sum returns the keyed HMAC-SHA256 digest of a plaintext password as hex.
// Deterministic: the stored digest is compared against a fresh digest of the
// supplied password at login.
func Sum(plaintext, secret string) string {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write([]byte(plaintext))
	return hex.EncodeToString(mac.Sum(nil))
}

// Equal compares a stored digest against the digest of a candidate password
// in constant time.
func Equal(digest, plaintext, secret string) bool {
	return hmac.Equal([]byte(digest), []byte(Sum(plaintext, secret)))
}
