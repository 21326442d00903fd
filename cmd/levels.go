package cmd

import (
	"github.com/spf13/cobra"

	"github.com/depwave/depwave-cli/internal/ui/console"
)

func init() {
	cmd := &cobra.Command{
		Use:   "levels",
		Short: "Show items grouped by dependency level",
		RunE: func(cmd *cobra.Command, args []string) error {
			plan, err := buildPlan()
			if err != nil {
				return err
			}
			ui := console.NewConsoleUI(plan)
			return ui.RunLevelsImperative()
		},
	}
	rootCmd.AddCommand(cmd)
}
