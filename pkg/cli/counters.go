package cli

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"github.com/notegen/notegen/pkg/template"
)

var countersCmd = &cobra.Command{
	Use:   "counters",
	Short: "Show persisted counter state",
	RunE: func(cmd *cobra.Command, args []string) error {
		path, err := statePath()
		if err != nil {
			return err
		}
		store := template.NewCounterStore()
		if err := loadCounters(path, store); err != nil {
			return err
		}

		snap := store.Snapshot()
		fmt.Printf("global: %d\n", snap.Global)

		names := make([]string, 0, len(snap.Named))
		for name := range snap.Named {
			names = append(names, name)
		}
		sort.Strings(names)
		for _, name := range names {
			fmt.Printf("%s: %d\n", name, snap.Named[name])
		}
		return nil
	},
}

var countersResetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Reset all counters",
	Long: `Reset all counters: the global counter goes back to 1 and every
named counter is forgotten. Equivalent to expanding {counter:reset}.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		path, err := statePath()
		if err != nil {
			return err
		}
		store := template.NewCounterStore()
		if err := saveCounters(path, store); err != nil {
			return err
		}
		fmt.Println("Counters reset")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(countersCmd)
	countersCmd.AddCommand(countersResetCmd)
}
