package console

import (
	"fmt"
	"strings"
	"sync"

	"github.com/jedib0t/go-pretty/v6/text"

	"github.com/depwave/depwave-cli/internal/planner"
)

// runReporter prints wave and item progress. Items within a wave finish on
// their own goroutines, so every callback takes the mutex before writing.
type runReporter struct {
	mu sync.Mutex
}

func NewRunReporter() planner.RunReporter { return &runReporter{} }

func (r *runReporter) OnWaveStart(level int, names []string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	fmt.Printf("%s %s\n", text.Bold.Sprintf("wave %d:", level), strings.Join(names, ", "))
}

func (r *runReporter) OnItemDone(name string, level int, err error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if err != nil {
		fmt.Println(colorRed("failed:  " + name))
		fmt.Println(err.Error())
		return
	}
	fmt.Println(colorGreen("done: " + name))
}

func (r *runReporter) OnItemSkipped(name string, level int) {
	r.mu.Lock()
	defer r.mu.Unlock()
	fmt.Println(text.FgHiBlack.Sprint("up-to-date: " + name))
}

func (r *runReporter) OnDone(ran, skipped int) {
	r.mu.Lock()
	defer r.mu.Unlock()
	fmt.Printf("%d ran, %d up-to-date\n", ran, skipped)
}

func colorGreen(s string) string { return text.FgGreen.Sprint(s) }
func colorRed(s string) string   { return text.FgRed.Sprint(s) }
