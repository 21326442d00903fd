package planner

import (
	"fmt"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/depwave/depwave-cli/internal/config"
	"github.com/depwave/depwave-cli/internal/executil"
	"github.com/depwave/depwave-cli/internal/logging"
	"github.com/depwave/depwave-cli/internal/state"
)

// ShellRunner abstracts command execution so tests can fake it.
type ShellRunner interface {
	Run(name string, c config.Command) error
}

type shellRunner struct{}

func (shellRunner) Run(name string, c config.Command) error {
	logging.Debug(fmt.Sprintf("%s [run]: %s", name, c.Command))
	res := executil.RunShell(c)
	if res.Code != 0 {
		msg := strings.TrimSpace(res.Stderr)
		if msg != "" {
			return fmt.Errorf("command failed for %s: exit %d: %s", name, res.Code, msg)
		}
		return fmt.Errorf("command failed for %s: exit %d", name, res.Code)
	}
	return nil
}

// RunReporter receives progress while a plan executes. Implementations must
// tolerate concurrent calls: items within a wave run in parallel.
type RunReporter interface {
	OnWaveStart(level int, names []string)
	OnItemDone(name string, level int, err error)
	OnItemSkipped(name string, level int)
	OnDone(ran, skipped int)
}

type RunOptions struct {
	// Only restricts execution to these items plus their transitive
	// dependencies. Empty means run everything.
	Only []string
	// Force runs items even when their last recorded run succeeded with an
	// unchanged command.
	Force bool
	// State records outcomes and powers the skip logic. May be nil.
	State *state.Manager
	// Runner defaults to the bash shell runner.
	Runner   ShellRunner
	Reporter RunReporter
}

type nopReporter struct{}

func (nopReporter) OnWaveStart(int, []string)     {}
func (nopReporter) OnItemDone(string, int, error) {}
func (nopReporter) OnItemSkipped(string, int)     {}
func (nopReporter) OnDone(int, int)               {}

// Run executes the plan wave by wave: items inside a wave run concurrently,
// and a wave must finish before the next one starts. The levels guarantee
// that no two items in a wave depend on each other. A failed wave stops the
// run; later waves are not started.
func Run(plan *Plan, opts RunOptions) error {
	runner := opts.Runner
	if runner == nil {
		runner = shellRunner{}
	}
	rep := opts.Reporter
	if rep == nil {
		rep = nopReporter{}
	}
	sel, err := plan.Closure(opts.Only)
	if err != nil {
		return err
	}

	ran, skipped := 0, 0
	for level, wave := range plan.Waves() {
		var toRun []string
		for _, name := range wave {
			if !sel[name] {
				continue
			}
			it, _ := plan.Item(name)
			if it.Run.Command == "" {
				continue // nothing to execute, dependency-only item
			}
			if !opts.Force && opts.State != nil && opts.State.UpToDate(name, state.CommandHash(it.Run.Command)) {
				skipped++
				rep.OnItemSkipped(name, level)
				continue
			}
			toRun = append(toRun, name)
		}
		if len(toRun) == 0 {
			continue
		}

		rep.OnWaveStart(level, toRun)
		var g errgroup.Group
		for _, name := range toRun {
			it, _ := plan.Item(name)
			g.Go(func() error {
				err := runner.Run(name, it.Run)
				if opts.State != nil {
					_ = opts.State.RecordRun(name, level, state.CommandHash(it.Run.Command), err == nil)
				}
				rep.OnItemDone(name, level, err)
				return err
			})
		}
		ran += len(toRun)
		if err := g.Wait(); err != nil {
			return fmt.Errorf("wave %d failed: %w", level, err)
		}
	}
	rep.OnDone(ran, skipped)
	return nil
}
