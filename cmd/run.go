package cmd

import (
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/depwave/depwave-cli/internal/planner"
	"github.com/depwave/depwave-cli/internal/state"
	"github.com/depwave/depwave-cli/internal/ui/console"
)

func stateDir() string {
	dir, _ := os.UserConfigDir()
	return filepath.Join(dir, "depwave")
}

func init() {
	var force bool
	var pick bool
	var yes bool
	cmd := &cobra.Command{
		Use:   "run [item...]",
		Short: "Execute item commands wave by wave",
		Long:  "Runs each item's command, level by level. Items within a level run concurrently; a level must finish before the next starts. Naming items restricts the run to those items and their dependencies.",
		RunE: func(cmd *cobra.Command, args []string) error {
			plan, err := buildPlan()
			if err != nil {
				return err
			}
			st, err := state.NewManager(stateDir())
			if err != nil {
				return err
			}
			opts := planner.RunOptions{
				Only:  args,
				Force: force,
				State: st,
			}
			ui := console.NewConsoleUI(plan)
			if yes {
				opts.Reporter = console.NewRunReporter()
				return planner.Run(plan, opts)
			}
			return ui.RunExecute(opts, pick)
		},
	}
	cmd.Flags().BoolVar(&force, "force", false, "run items even when up-to-date")
	cmd.Flags().BoolVar(&pick, "pick", false, "interactively select items to run")
	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "skip the confirmation prompt")
	rootCmd.AddCommand(cmd)
}
