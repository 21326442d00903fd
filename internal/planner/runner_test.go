package planner

import (
	"errors"
	"strings"
	"sync"
	"testing"

	"github.com/depwave/depwave-cli/internal/config"
	"github.com/depwave/depwave-cli/internal/state"
)

type recordingRunner struct {
	mu    sync.Mutex
	calls []string
	fail  map[string]bool
}

func (r *recordingRunner) Run(name string, c config.Command) error {
	r.mu.Lock()
	r.calls = append(r.calls, name)
	r.mu.Unlock()
	if r.fail[name] {
		return errors.New("boom: " + name)
	}
	return nil
}

func (r *recordingRunner) pos(name string) int {
	for i, n := range r.calls {
		if n == name {
			return i
		}
	}
	return -1
}

func planFor(t *testing.T, items ...config.Item) *Plan {
	t.Helper()
	plan, err := New(config.Manifest{Items: items}).Plan()
	if err != nil {
		t.Fatalf("plan: %v", err)
	}
	return plan
}

func TestRun_WaveBarrier(t *testing.T) {
	plan := planFor(t,
		config.Item{Name: "db", Run: config.Command{Command: "x"}},
		config.Item{Name: "cache", Run: config.Command{Command: "x"}},
		config.Item{Name: "app", DependsOn: []string{"db", "cache"}, Run: config.Command{Command: "x"}},
	)
	r := &recordingRunner{}
	if err := Run(plan, RunOptions{Runner: r}); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(r.calls) != 3 {
		t.Fatalf("want 3 calls, got %v", r.calls)
	}
	// Both level-0 items must finish before app starts.
	if !(r.pos("db") < r.pos("app") && r.pos("cache") < r.pos("app")) {
		t.Fatalf("wave barrier violated: %v", r.calls)
	}
}

func TestRun_FailureStopsLaterWaves(t *testing.T) {
	plan := planFor(t,
		config.Item{Name: "db", Run: config.Command{Command: "x"}},
		config.Item{Name: "app", DependsOn: []string{"db"}, Run: config.Command{Command: "x"}},
	)
	r := &recordingRunner{fail: map[string]bool{"db": true}}
	err := Run(plan, RunOptions{Runner: r})
	if err == nil || !strings.Contains(err.Error(), "wave 0 failed") {
		t.Fatalf("want wave failure, got %v", err)
	}
	if r.pos("app") != -1 {
		t.Fatalf("app should not have run: %v", r.calls)
	}
}

func TestRun_SkipsCommandlessItems(t *testing.T) {
	plan := planFor(t,
		config.Item{Name: "db"},
		config.Item{Name: "app", DependsOn: []string{"db"}, Run: config.Command{Command: "x"}},
	)
	r := &recordingRunner{}
	if err := Run(plan, RunOptions{Runner: r}); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(r.calls) != 1 || r.calls[0] != "app" {
		t.Fatalf("want only app, got %v", r.calls)
	}
}

func TestRun_OnlyRestrictsToClosure(t *testing.T) {
	plan := planFor(t,
		config.Item{Name: "db", Run: config.Command{Command: "x"}},
		config.Item{Name: "app", DependsOn: []string{"db"}, Run: config.Command{Command: "x"}},
		config.Item{Name: "docs", Run: config.Command{Command: "x"}},
	)
	r := &recordingRunner{}
	if err := Run(plan, RunOptions{Runner: r, Only: []string{"app"}}); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if r.pos("docs") != -1 {
		t.Fatalf("docs should be excluded: %v", r.calls)
	}
	if r.pos("db") == -1 || r.pos("app") == -1 {
		t.Fatalf("closure items should run: %v", r.calls)
	}
}

func TestRun_StateSkipAndForce(t *testing.T) {
	plan := planFor(t,
		config.Item{Name: "db", Run: config.Command{Command: "make db"}},
	)
	st, err := state.NewManager(t.TempDir())
	if err != nil {
		t.Fatalf("state: %v", err)
	}

	r := &recordingRunner{}
	if err := Run(plan, RunOptions{Runner: r, State: st}); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(r.calls) != 1 {
		t.Fatalf("first run should execute: %v", r.calls)
	}

	// Unchanged command, previous success: skipped.
	if err := Run(plan, RunOptions{Runner: r, State: st}); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(r.calls) != 1 {
		t.Fatalf("second run should skip: %v", r.calls)
	}

	// Force overrides the skip.
	if err := Run(plan, RunOptions{Runner: r, State: st, Force: true}); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(r.calls) != 2 {
		t.Fatalf("forced run should execute: %v", r.calls)
	}
}

type countingReporter struct {
	mu      sync.Mutex
	waves   []int
	done    []string
	skipped []string
	ran     int
	skips   int
}

func (c *countingReporter) OnWaveStart(level int, names []string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.waves = append(c.waves, level)
}
func (c *countingReporter) OnItemDone(name string, level int, err error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.done = append(c.done, name)
}
func (c *countingReporter) OnItemSkipped(name string, level int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.skipped = append(c.skipped, name)
}
func (c *countingReporter) OnDone(ran, skipped int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.ran, c.skips = ran, skipped
}

func TestRun_ReporterSequence(t *testing.T) {
	plan := planFor(t,
		config.Item{Name: "db", Run: config.Command{Command: "x"}},
		config.Item{Name: "app", DependsOn: []string{"db"}, Run: config.Command{Command: "x"}},
	)
	rep := &countingReporter{}
	if err := Run(plan, RunOptions{Runner: &recordingRunner{}, Reporter: rep}); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(rep.waves) != 2 || rep.waves[0] != 0 || rep.waves[1] != 1 {
		t.Fatalf("bad wave sequence: %v", rep.waves)
	}
	if len(rep.done) != 2 || rep.ran != 2 || rep.skips != 0 {
		t.Fatalf("bad reporter totals: done=%v ran=%d skipped=%d", rep.done, rep.ran, rep.skips)
	}
}
