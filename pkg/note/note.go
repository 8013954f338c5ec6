// Package note turns an expanded template into a note file on disk.
// It owns the two boundary rules around file creation: an expansion
// without an extension gets ".md" appended, and an existing file is
// never overwritten.
package note

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"strings"
)

// DefaultExtension is appended when the expanded filename has none.
const DefaultExtension = ".md"

// ErrExists is returned by Create when the target file already exists.
var ErrExists = errors.New("note already exists")

// Filename normalizes an expanded template into a relative note path:
// backslashes become forward slashes and the default extension is
// appended when the name has none. Subdirectories in the expansion are
// preserved, so a template like "YYYY/MM/DD" files notes by date.
func Filename(expanded string) string {
	name := strings.ReplaceAll(expanded, `\`, "/")
	if path.Ext(name) == "" {
		name += DefaultExtension
	}
	return name
}

// Create writes a new note under dir, creating parent directories as
// needed. It fails with ErrExists when the target is already present
// and returns the full path of the written file.
func Create(dir, name, content string) (string, error) {
	full := filepath.Join(dir, filepath.FromSlash(name))

	if parent := filepath.Dir(full); parent != "." {
		if err := os.MkdirAll(parent, 0o755); err != nil {
			return "", fmt.Errorf("failed to create note directory: %w", err)
		}
	}

	f, err := os.OpenFile(full, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		if errors.Is(err, fs.ErrExist) {
			return "", fmt.Errorf("%w: %s", ErrExists, full)
		}
		return "", fmt.Errorf("failed to create note: %w", err)
	}

	if _, err := f.WriteString(content); err != nil {
		_ = f.Close()
		return "", fmt.Errorf("failed to write note: %w", err)
	}
	if err := f.Close(); err != nil {
		return "", fmt.Errorf("failed to close note: %w", err)
	}
	return full, nil
}
