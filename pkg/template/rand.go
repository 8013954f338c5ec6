package template

import (
	"fmt"
	mathrand "math/rand/v2"

	"github.com/notegen/notegen/internal/id"
)

// lowerAlphanumeric mirrors the {shortid} alphabet for the seeded path.
const lowerAlphanumeric = "abcdefghijklmnopqrstuvwxyz0123456789"

// alphanumeric mirrors the {random:N} alphabet for the seeded path.
const alphanumeric = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"

// randomToken draws n characters from the 62-character alphabet. When
// rng is non-nil the seeded PRNG makes the result deterministic;
// otherwise crypto/rand backs it through the id package.
func randomToken(rng *mathrand.Rand, n int) string {
	if n <= 0 {
		return ""
	}
	if rng == nil {
		return id.Alphanumeric(n)
	}
	return seededString(rng, alphanumeric, n)
}

// shortIDToken generates the 8-character lowercase alphanumeric
// identifier behind {shortid}.
func shortIDToken(rng *mathrand.Rand) string {
	if rng == nil {
		return id.Short()
	}
	return seededString(rng, lowerAlphanumeric, 8)
}

func seededString(rng *mathrand.Rand, charset string, n int) string {
	b := make([]byte, n)
	for i := range b {
		b[i] = charset[rng.IntN(len(charset))]
	}
	return string(b)
}

// rngUUID generates a version-4 UUID string from the seeded PRNG for
// deterministic output.
func rngUUID(rng *mathrand.Rand) string {
	var b [16]byte
	for i := range b {
		b[i] = byte(rng.IntN(256))
	}
	// Version 4 and variant bits per RFC 4122.
	b[6] = (b[6] & 0x0f) | 0x40
	b[8] = (b[8] & 0x3f) | 0x80
	return fmt.Sprintf("%x-%x-%x-%x-%x", b[0:4], b[4:6], b[6:8], b[8:10], b[10:])
}
