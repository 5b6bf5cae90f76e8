package utils

import (
	"crypto/hmac"
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"strings"
)

// HashPassword hashes a password with HMAC-SHA256 keyed by a fresh random
// 16-byte salt. The result is "salt:digest", both hex-encoded, so the same
// password never hashes to the same string twice.
func HashPassword(password string) string {
	salt := make([]byte, 16)
	if _, err := rand.Read(salt); err != nil {
		panic("failed to read random salt: " + err.Error())
	}
	saltHex := hex.EncodeToString(salt)

	mac := hmac.New(sha256.New, []byte(saltHex))
	mac.Write([]byte(password))
	return saltHex + ":" + hex.EncodeToString(mac.Sum(nil))
}

// VerifyPassword checks a password against a stored "salt:digest" string.
// The digest comparison is constant time. A malformed stored value (no
// separator) verifies as false rather than failing.
func VerifyPassword(password, stored string) bool {
	salt, digest, found := strings.Cut(stored, ":")
	if !found {
		return false
	}

	mac := hmac.New(sha256.New, []byte(salt))
	mac.Write([]byte(password))
	expected, err := hex.DecodeString(digest)
	if err != nil {
		return false
	}
	return hmac.Equal(mac.Sum(nil), expected)
}

// GenerateToken returns length cryptographically random bytes, hex-encoded.
func GenerateToken(length int) string {
	b := make([]byte, length)
	if _, err := rand.Read(b); err != nil {
		panic("failed to read random token: " + err.Error())
	}
	return hex.EncodeToString(b)
}
