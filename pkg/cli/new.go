package cli

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"

	"github.com/notegen/notegen/internal/id"
	"github.com/notegen/notegen/pkg/clipboard"
	"github.com/notegen/notegen/pkg/config"
	"github.com/notegen/notegen/pkg/note"
	"github.com/notegen/notegen/pkg/template"
)

var (
	newContent     string
	newDir         string
	newDryRun      bool
	newInteractive bool
	newNoClipboard bool
	newNoState     bool
)

var newCmd = &cobra.Command{
	Use:   "new [template]",
	Short: "Create a note file from a filename template",
	Long: `Create a note file from a filename template.

The template argument overrides the configured filename_template. With
--interactive, a form asks for the template and content instead. The
expanded filename gets a ".md" extension when it has none, and an
existing file is never overwritten.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		logger := newLogger(cfg).With("run", id.Short())

		opts := newOptions{
			template: cfg.FilenameTemplate,
			content:  cfg.NoteContent,
			dir:      cfg.NotesDir,
			dryRun:   newDryRun,
			noState:  newNoState,
		}
		if len(args) == 1 {
			opts.template = args[0]
		}
		if cmd.Flags().Changed("content") {
			opts.content = newContent
		}
		if cmd.Flags().Changed("dir") {
			opts.dir = newDir
		}

		if newInteractive {
			if err := promptNewNote(&opts); err != nil {
				return err
			}
		}

		if !newNoClipboard {
			opts.clip = clipboard.System{}
		}

		path, err := createNote(cfg, opts, logger)
		if err != nil {
			return err
		}
		if opts.dryRun {
			fmt.Println(path)
			return nil
		}
		fmt.Printf("Created %s\n", path)
		return nil
	},
}

// newOptions carries everything createNote needs, resolved from config,
// flags and the interactive form.
type newOptions struct {
	template  string
	content   string
	dir       string
	dryRun    bool
	noState   bool
	clip      clipboard.Provider
	statePath string // empty means the default location
}

// promptNewNote fills the template and content from an interactive
// form, pre-seeded with the resolved defaults.
func promptNewNote(opts *newOptions) error {
	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Filename template").
				Placeholder(config.DefaultTemplate).
				Value(&opts.template).
				Validate(func(s string) error {
					if s == "" {
						return errors.New("template is required")
					}
					return nil
				}),
			huh.NewText().
				Title("Note content").
				Placeholder("# {uppercase:title}").
				Value(&opts.content),
		),
	)
	return form.Run()
}

// createNote expands the filename and content templates and writes the
// note. Counter state is persisted right after expansion: a later file
// collision does not roll counters back, so the next attempt gets fresh
// numbers.
func createNote(cfg *config.Config, opts newOptions, logger *slog.Logger) (string, error) {
	store := template.NewCounterStore()
	spath := opts.statePath
	if !opts.noState {
		if spath == "" {
			var err error
			spath, err = statePath()
			if err != nil {
				return "", err
			}
		}
		if err := loadCounters(spath, store); err != nil {
			logger.Warn("ignoring unreadable counter state", "error", err)
		}
	}

	engine := template.NewWithCounters(store)
	ctx := expandContext(cfg, opts.clip, opts.template, opts.content)

	name := note.Filename(engine.Expand(opts.template, ctx))
	content := engine.Expand(opts.content, ctx)

	if !opts.noState && !opts.dryRun {
		if err := saveCounters(spath, store); err != nil {
			return "", err
		}
	}

	if opts.dryRun {
		return name, nil
	}

	path, err := note.Create(opts.dir, name, content)
	if err != nil {
		return "", err
	}
	logger.Info("note created", "path", path)
	return path, nil
}

func init() {
	rootCmd.AddCommand(newCmd)

	newCmd.Flags().StringVar(&newContent, "content", "", "Note content template (overrides config)")
	newCmd.Flags().StringVarP(&newDir, "dir", "d", "", "Directory to create the note in (overrides config)")
	newCmd.Flags().BoolVar(&newDryRun, "dry-run", false, "Print the filename without creating anything")
	newCmd.Flags().BoolVarP(&newInteractive, "interactive", "i", false, "Ask for template and content interactively")
	newCmd.Flags().BoolVar(&newNoClipboard, "no-clipboard", false, "Treat the clipboard as empty")
	newCmd.Flags().BoolVar(&newNoState, "no-state", false, "Do not read or persist counter state")
}
