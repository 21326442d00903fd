package console

import (
	"fmt"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"

	"github.com/depwave/depwave-cli/internal/planner"
	"github.com/depwave/depwave-cli/internal/state"
)

func (c *ConsoleUI) RunStatusImperative(st *state.Manager) error {
	fmt.Print(renderStatus(c.plan, st))
	return nil
}

func renderStatus(plan *planner.Plan, st *state.Manager) string {
	var b strings.Builder
	tw := table.NewWriter()
	tw.SetStyle(table.StyleLight)
	tw.AppendHeader(table.Row{"Item", "Level", "Status", "Last Run"})
	for _, name := range plan.Order() {
		lv, _ := plan.LevelOf(name)
		status := "-"
		ranAt := "-"
		if is, ok := st.GetItemState(name); ok {
			ranAt = is.RanAt
			switch is.Status {
			case "ok":
				status = colorGreen(is.Status)
			case "failed":
				status = colorRed(is.Status)
			default:
				status = is.Status
			}
		} else {
			status = text.FgHiBlack.Sprint("never ran")
		}
		tw.AppendRow(table.Row{name, lv, status, ranAt})
	}
	b.WriteString(tw.Render())
	b.WriteString("\n")
	return b.String()
}
