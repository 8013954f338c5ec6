package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/notegen/notegen/pkg/template"
	"gopkg.in/yaml.v3"
)

// stateFile is the on-disk shape of persisted engine state. Counter
// tokens are the only stateful part of the template language, and a CLI
// process is one-shot, so the shell snapshots the store around each
// expansion to keep {counter} numbering sequential across invocations.
type stateFile struct {
	Counters template.CounterSnapshot `yaml:"counters"`
}

// statePath returns the default state file location,
// ~/.notegen/state.yaml.
func statePath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to resolve home directory: %w", err)
	}
	return filepath.Join(home, ".notegen", "state.yaml"), nil
}

// loadCounters restores counter state from path into the store. A
// missing file is not an error: the store simply keeps its fresh state.
func loadCounters(path string, store *template.CounterStore) error {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to read state file: %w", err)
	}

	var sf stateFile
	if err := yaml.Unmarshal(data, &sf); err != nil {
		return fmt.Errorf("failed to parse state file: %w", err)
	}
	store.Restore(sf.Counters)
	return nil
}

// saveCounters writes the store's snapshot to path, creating the parent
// directory as needed.
func saveCounters(path string, store *template.CounterStore) error {
	data, err := yaml.Marshal(stateFile{Counters: store.Snapshot()})
	if err != nil {
		return fmt.Errorf("failed to marshal state: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create state directory: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write state file: %w", err)
	}
	return nil
}
