package console

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"

	"github.com/depwave/depwave-cli/internal/planner"
)

func (c *ConsoleUI) RunLevelsImperative() error {
	fmt.Print(renderLevels(c.plan))
	return nil
}

// renderLevels prints one table per level, ascending. Items in the same level
// have no dependency relationship, so each table is a batch that may run in
// parallel.
func renderLevels(plan *planner.Plan) string {
	var b strings.Builder
	for level, wave := range plan.Waves() {
		b.WriteString(text.Bold.Sprint("level "+strconv.Itoa(level)) + "\n")
		tw := table.NewWriter()
		tw.SetStyle(table.StyleLight)
		tw.AppendHeader(table.Row{"Item", "Depends On", "Command"})
		for _, name := range wave {
			it, _ := plan.Item(name)
			deps := strings.Join(it.DependsOn, ", ")
			if deps == "" {
				deps = "-"
			}
			cmd := it.Run.Command
			if cmd == "" {
				cmd = text.FgHiBlack.Sprint("(none)")
			}
			tw.AppendRow(table.Row{name, deps, cmd})
		}
		b.WriteString(tw.Render())
		b.WriteString("\n\n")
	}
	return b.String()
}
