package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Validate the manifest: schema, unknown dependencies, cycles",
	RunE: func(cmd *cobra.Command, args []string) error {
		if _, err := buildPlan(); err != nil {
			return err
		}
		fmt.Println("Manifest is valid")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(validateCmd)
}
