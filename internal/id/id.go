// Package id provides random identifier generation utilities.
// This is the canonical source for ID generation across the codebase.
package id

import (
	"crypto/rand"
)

const (
	// alphanumeric is the 62-character alphabet behind {random:N}.
	alphanumeric = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"
	// lowerAlphanumeric is the 36-character alphabet behind {shortid}.
	lowerAlphanumeric = "abcdefghijklmnopqrstuvwxyz0123456789"

	shortLength = 8
)

// Short generates an 8-character lowercase alphanumeric identifier.
// Suitable for user-facing IDs where brevity matters.
func Short() string {
	return FromCharset(lowerAlphanumeric, shortLength)
}

// Alphanumeric generates a random alphanumeric string of the given
// length, drawn uniformly from uppercase and lowercase letters and
// digits. A non-positive length yields an empty string.
func Alphanumeric(length int) string {
	return FromCharset(alphanumeric, length)
}

// FromCharset generates a random string of the given length drawn from
// charset. All randomness comes from crypto/rand.
func FromCharset(charset string, length int) string {
	if length <= 0 || charset == "" {
		return ""
	}
	b := make([]byte, length)
	randBytes := make([]byte, length)
	_, _ = rand.Read(randBytes)
	for i := range b {
		b[i] = charset[int(randBytes[i])%len(charset)]
	}
	return string(b)
}
