// Package clipboard supplies clipboard text for {clip} token expansion.
// The engine only slices text; providers own the fetching. A missing or
// unreadable clipboard degrades to empty text, never an error at the
// expansion boundary.
package clipboard

import atotto "github.com/atotto/clipboard"

// Provider fetches clipboard text. Fetch happens once per expansion,
// before any substitution pass runs.
type Provider interface {
	Read() (string, error)
}

// System reads the operating system clipboard.
type System struct{}

// Read returns the current clipboard contents.
func (System) Read() (string, error) {
	return atotto.ReadAll()
}

// Nop is a provider with no clipboard. It always yields empty text.
type Nop struct{}

// Read returns empty text.
func (Nop) Read() (string, error) {
	return "", nil
}

// Static serves fixed text, mainly for tests and dry runs.
type Static string

// Read returns the static text.
func (s Static) Read() (string, error) {
	return string(s), nil
}

// Text resolves a provider to plain text. A nil provider or a read
// error yields empty text.
func Text(p Provider) string {
	if p == nil {
		return ""
	}
	text, err := p.Read()
	if err != nil {
		return ""
	}
	return text
}
