// Package config loads and saves notegen settings.
//
// Settings live in a YAML file, by default ~/.notegen/config.yaml. The
// file holds the default filename template and note content plus a few
// shell-side knobs; the expansion engine itself is configured entirely
// through its inputs and owns none of this.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Common errors for configuration loading/saving.
var (
	ErrFileNotFound = errors.New("configuration file not found")
	ErrInvalidYAML  = errors.New("invalid YAML syntax")
)

// DefaultTemplate is the filename template used when none is configured.
const DefaultTemplate = "YYYY-MM-DD_HH-mm-ss"

// Config holds all notegen settings.
type Config struct {
	// FilenameTemplate is the default template expanded into a note
	// filename.
	FilenameTemplate string `yaml:"filename_template"`

	// NoteContent is the default body written into new notes. It is
	// expanded with the same engine as the filename.
	NoteContent string `yaml:"note_content"`

	// NotesDir is the directory new notes are created under.
	NotesDir string `yaml:"notes_dir"`

	// UseHostIdentity resolves {hostname} and {username} from the
	// operating system instead of the fallback literals.
	UseHostIdentity bool `yaml:"use_host_identity"`

	// LogLevel is one of debug, info, warn, error.
	LogLevel string `yaml:"log_level"`

	// LogFormat is text or json.
	LogFormat string `yaml:"log_format"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		FilenameTemplate: DefaultTemplate,
		NoteContent:      "",
		NotesDir:         ".",
		UseHostIdentity:  false,
		LogLevel:         "info",
		LogFormat:        "text",
	}
}

// DefaultPath returns the default config file location,
// ~/.notegen/config.yaml.
func DefaultPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to resolve home directory: %w", err)
	}
	return filepath.Join(home, ".notegen", "config.yaml"), nil
}

// Load reads a Config from a YAML file. Fields absent from the file
// keep their defaults.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrFileNotFound, path)
		}
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidYAML, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Save writes the config as YAML, creating parent directories as
// needed.
func Save(path string, cfg *Config) error {
	if cfg == nil {
		return errors.New("config cannot be nil")
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}
	return nil
}

// Validate checks field values. An empty template is rejected because
// expansion of nothing can only ever produce the bare ".md" extension.
func (c *Config) Validate() error {
	if c.FilenameTemplate == "" {
		return errors.New("filename_template cannot be empty")
	}
	switch c.LogLevel {
	case "", "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("unknown log_level %q", c.LogLevel)
	}
	switch c.LogFormat {
	case "", "text", "json":
	default:
		return fmt.Errorf("unknown log_format %q", c.LogFormat)
	}
	return nil
}
