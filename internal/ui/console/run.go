package console

import (
	"fmt"

	survey "github.com/AlecAivazis/survey/v2"

	"github.com/depwave/depwave-cli/internal/planner"
)

// RunExecute walks the user through executing the plan: an optional pick of
// items, a confirmation, then wave-by-wave execution with console progress.
func (c *ConsoleUI) RunExecute(opts planner.RunOptions, pick bool) error {
	if pick {
		names := c.plan.Order()
		selected := make([]string, 0)
		ms := &survey.MultiSelect{Message: "Select items to run", Options: names, Default: names}
		if err := survey.AskOne(ms, &selected); err != nil {
			return err
		}
		if len(selected) == 0 {
			fmt.Println("Nothing selected")
			return nil
		}
		opts.Only = selected
	}

	fmt.Print(renderLevels(c.plan))
	ok := false
	if err := survey.AskOne(&survey.Confirm{Message: "Proceed to run the plan?", Default: true}, &ok); err != nil {
		return err
	}
	if !ok {
		return nil
	}

	if opts.Reporter == nil {
		opts.Reporter = NewRunReporter()
	}
	return planner.Run(c.plan, opts)
}
