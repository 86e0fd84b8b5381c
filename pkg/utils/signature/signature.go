// Package signature verifies GitHub webhook deliveries signed with
// HMAC-SHA256 over the raw request body.
package signature

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
)

const (
	HeaderName = "X-Hub-Signature-256"
	prefix     = "sha256="
)

// Sign returns the expected X-Hub-Signature-256 value of body
func Sign(secret, body []byte) string {
	mac := hmac.New(sha256.New, secret)
	mac.Write(body)
	return prefix + hex.EncodeToString(mac.Sum(nil))
}

// Verify reports whether headerValues carries exactly one signature equal to
// Sign(secret, body). Missing or repeated headers, an empty secret and length
// mismatches are rejected. The comparison is constant time.
func Verify(secret, body []byte, headerValues []string) bool {
	if len(secret) == 0 || len(headerValues) != 1 {
		return false
	}

	expected := []byte(Sign(secret, body))
	actual := []byte(headerValues[0])
	if len(actual) != len(expected) {
		return false
	}

	return hmac.Equal(actual, expected)
}
