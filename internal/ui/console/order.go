package console

import (
	"fmt"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"

	"github.com/depwave/depwave-cli/internal/planner"
)

func (c *ConsoleUI) RunOrderImperative() error {
	fmt.Print(renderOrder(c.plan))
	return nil
}

// renderOrder prints the flat processing order: ascending level, and within a
// level the order items were first declared in the manifest.
func renderOrder(plan *planner.Plan) string {
	var b strings.Builder
	tw := table.NewWriter()
	tw.SetStyle(table.StyleLight)
	tw.AppendHeader(table.Row{"#", "Item", "Level"})
	for i, name := range plan.Order() {
		lv, _ := plan.LevelOf(name)
		tw.AppendRow(table.Row{i + 1, name, lv})
	}
	b.WriteString(tw.Render())
	b.WriteString("\n")
	return b.String()
}
