package console

import (
	"github.com/depwave/depwave-cli/internal/planner"
)

// ConsoleUI renders a resolved plan to the terminal.
type ConsoleUI struct {
	plan *planner.Plan
}

func NewConsoleUI(plan *planner.Plan) *ConsoleUI { return &ConsoleUI{plan: plan} }
