package cmd

import (
	"github.com/spf13/cobra"

	"github.com/depwave/depwave-cli/internal/assets"
	"github.com/depwave/depwave-cli/internal/logging"
)

func init() {
	cmd := &cobra.Command{
		Use:   "init [dir]",
		Short: "Write an example depwave.yaml if none exists",
		Args:  cobra.RangeArgs(0, 1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := "."
			if len(args) == 1 {
				dir = args[0]
			}
			if err := assets.WriteExampleIfMissing(dir); err != nil {
				return err
			}
			logging.Success("wrote depwave.yaml (or kept the existing one)")
			return nil
		},
	}
	rootCmd.AddCommand(cmd)
}
