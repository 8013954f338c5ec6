package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/notegen/notegen/pkg/clipboard"
	"github.com/notegen/notegen/pkg/template"
)

var (
	expandNoClipboard bool
	expandNoState     bool
)

var expandCmd = &cobra.Command{
	Use:   "expand [template]",
	Short: "Expand a template and print the result",
	Long: `Expand a template and print the result without creating a file.

Useful for previewing filename templates. Counter tokens still advance
and persist unless --no-state is given, exactly as they would for a
real note.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		logger := newLogger(cfg)

		tmpl := cfg.FilenameTemplate
		if len(args) == 1 {
			tmpl = args[0]
		}

		store := template.NewCounterStore()
		var spath string
		if !expandNoState {
			spath, err = statePath()
			if err != nil {
				return err
			}
			if err := loadCounters(spath, store); err != nil {
				logger.Warn("ignoring unreadable counter state", "error", err)
			}
		}

		var provider clipboard.Provider
		if !expandNoClipboard {
			provider = clipboard.System{}
		}

		engine := template.NewWithCounters(store)
		result := engine.Expand(tmpl, expandContext(cfg, provider, tmpl))

		if !expandNoState {
			if err := saveCounters(spath, store); err != nil {
				return err
			}
		}

		fmt.Println(result)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(expandCmd)

	expandCmd.Flags().BoolVar(&expandNoClipboard, "no-clipboard", false, "Treat the clipboard as empty")
	expandCmd.Flags().BoolVar(&expandNoState, "no-state", false, "Do not read or persist counter state")
}
