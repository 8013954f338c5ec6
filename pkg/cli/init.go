package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/notegen/notegen/pkg/config"
)

var (
	initForce  bool
	initOutput string
)

// starterConfig is the commented config written by notegen init.
const starterConfig = `# notegen configuration

# Template expanded into new note filenames. Date tokens (YYYY, MM, DD,
# HH, mm, ss, ...) and brace tokens ({counter}, {random:8}, {uuid},
# {slugify:...}, {clip}, ...) are available. See 'notegen new --help'.
filename_template: "YYYY-MM-DD_HH-mm-ss"

# Default body of new notes, expanded with the same template language.
note_content: ""

# Directory new notes are created under.
notes_dir: "."

# Resolve {hostname} and {username} from the system instead of the
# fallback literals "device" and "user".
use_host_identity: false

# Logging: level is debug, info, warn or error; format is text or json.
log_level: "info"
log_format: "text"
`

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Create a starter config file",
	RunE: func(cmd *cobra.Command, args []string) error {
		path := initOutput
		if path == "" {
			var err error
			path, err = config.DefaultPath()
			if err != nil {
				return err
			}
		}

		if _, err := os.Stat(path); err == nil && !initForce {
			return fmt.Errorf("config file %s already exists (use --force to overwrite)", path)
		}

		// Round-trip through the loader so the starter text can never
		// drift from a valid Config.
		cfg := config.Default()
		if err := cfg.Validate(); err != nil {
			return err
		}
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return fmt.Errorf("failed to create config directory: %w", err)
		}
		if err := os.WriteFile(path, []byte(starterConfig), 0o644); err != nil {
			return fmt.Errorf("failed to write config: %w", err)
		}
		if _, err := config.Load(path); err != nil {
			return fmt.Errorf("starter config is invalid: %w", err)
		}

		fmt.Printf("Created %s\n", path)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(initCmd)

	initCmd.Flags().BoolVar(&initForce, "force", false, "Overwrite an existing config file")
	initCmd.Flags().StringVarP(&initOutput, "output", "o", "", "Output path (default: ~/.notegen/config.yaml)")
}
