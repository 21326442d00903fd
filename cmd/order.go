package cmd

import (
	"github.com/spf13/cobra"

	"github.com/depwave/depwave-cli/internal/ui/console"
)

func init() {
	cmd := &cobra.Command{
		Use:   "order",
		Short: "Show the flat processing order (dependencies first)",
		RunE: func(cmd *cobra.Command, args []string) error {
			plan, err := buildPlan()
			if err != nil {
				return err
			}
			ui := console.NewConsoleUI(plan)
			return ui.RunOrderImperative()
		},
	}
	rootCmd.AddCommand(cmd)
}
