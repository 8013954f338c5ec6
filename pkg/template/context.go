package template

import (
	mathrand "math/rand/v2"
	"time"
)

// Fallback literals used when the Context carries no identity.
const (
	FallbackHostname = "device"
	FallbackUsername = "user"
)

// Identity supplies hostname and username placeholders. Empty fields fall
// back to the fixed literals, so a zero Identity is always usable.
type Identity struct {
	Hostname string
	Username string
}

// Context holds all external inputs for one Expand call.
// A nil Context behaves like a zero Context: wall-clock time, empty
// clipboard, fallback identity, unseeded randomness.
type Context struct {
	// Now is the instant the expansion is evaluated against. All date
	// tokens in one call derive from this single instant. Zero means
	// time.Now().
	Now time.Time

	// Clipboard is the clipboard text, fetched once by the caller
	// before expansion. Empty when no clipboard is available.
	Clipboard string

	// Identity optionally supplies {hostname} and {username}.
	Identity Identity

	// Rand, when set, makes {random:N}, {uuid} and {shortid}
	// deterministic for the given seed. When nil, crypto/rand backs
	// them.
	Rand *mathrand.Rand
}

// hostname returns the identity hostname or the fallback literal.
func (c *Context) hostname() string {
	if c.Identity.Hostname != "" {
		return c.Identity.Hostname
	}
	return FallbackHostname
}

// username returns the identity username or the fallback literal.
func (c *Context) username() string {
	if c.Identity.Username != "" {
		return c.Identity.Username
	}
	return FallbackUsername
}
