package cmd

import (
	"github.com/spf13/cobra"

	"github.com/depwave/depwave-cli/internal/state"
	"github.com/depwave/depwave-cli/internal/ui/console"
)

func init() {
	cmd := &cobra.Command{
		Use:   "status",
		Short: "Show each item's level and last recorded run",
		RunE: func(cmd *cobra.Command, args []string) error {
			plan, err := buildPlan()
			if err != nil {
				return err
			}
			st, err := state.NewManager(stateDir())
			if err != nil {
				return err
			}
			ui := console.NewConsoleUI(plan)
			return ui.RunStatusImperative(st)
		},
	}
	rootCmd.AddCommand(cmd)
}
