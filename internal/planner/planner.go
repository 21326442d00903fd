package planner

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/depwave/depwave-cli/internal/config"
	"github.com/depwave/depwave-cli/resolve"
)

// manifestItem adapts a config.Item to the resolver's contract.
type manifestItem struct {
	it config.Item
}

func (m manifestItem) Identity() string       { return m.it.Name }
func (m manifestItem) Dependencies() []string { return m.it.DependsOn }

type Planner struct {
	man    config.Manifest
	byName map[string]config.Item
}

func New(man config.Manifest) *Planner {
	p := &Planner{man: man, byName: make(map[string]config.Item, len(man.Items))}
	for _, it := range man.Items {
		p.byName[it.Name] = it
	}
	return p
}

// Plan resolves the manifest into dependency levels. Engine errors are
// rewrapped with manifest wording; the underlying typed error stays reachable
// through errors.As.
func (p *Planner) Plan() (*Plan, error) {
	g := resolve.NewGraph[string]()
	for _, it := range p.man.Items {
		g.Add(manifestItem{it})
	}
	res, err := g.Resolve()
	if err != nil {
		var unk *resolve.UnknownDependencyError[string]
		if errors.As(err, &unk) {
			return nil, fmt.Errorf("item '%s' depends on '%s', which is not in the manifest: %w", unk.Item, unk.Missing, err)
		}
		var cyc *resolve.CycleError[string]
		if errors.As(err, &cyc) {
			return nil, fmt.Errorf("manifest has a dependency cycle (%s): %w", strings.Join(cyc.Path, " -> "), err)
		}
		return nil, err
	}
	return &Plan{res: res, byName: p.byName}, nil
}

// Plan is a resolved manifest: every item assigned to a level, queryable as a
// flat order or as waves.
type Plan struct {
	res    *resolve.Result[string]
	byName map[string]config.Item
}

func (p *Plan) Len() int       { return p.res.Len() }
func (p *Plan) NumLevels() int { return p.res.NumLevels() }

func (p *Plan) LevelOf(name string) (int, bool) { return p.res.LevelOf(name) }

func (p *Plan) Item(name string) (config.Item, bool) {
	it, ok := p.byName[name]
	return it, ok
}

// Order returns all item names, dependencies always before dependents.
func (p *Plan) Order() []string { return p.res.SortedByLevel() }

// Waves groups item names by level, ascending. Level membership is a set, so
// each wave is sorted by name for stable display and scheduling.
func (p *Plan) Waves() [][]string {
	waves := make([][]string, 0, p.res.NumLevels())
	for group := range p.res.IterLevels() {
		names := make([]string, 0, len(group.Members))
		for n := range group.Members {
			names = append(names, n)
		}
		sort.Strings(names)
		waves = append(waves, names)
	}
	return waves
}

// Closure returns the set of names reachable from the given roots through
// depends_on edges, including the roots. A nil or empty roots slice selects
// everything.
func (p *Plan) Closure(roots []string) (map[string]bool, error) {
	if len(roots) == 0 {
		all := make(map[string]bool, len(p.byName))
		for n := range p.byName {
			all[n] = true
		}
		return all, nil
	}
	sel := map[string]bool{}
	var visit func(n string)
	visit = func(n string) {
		if sel[n] {
			return
		}
		sel[n] = true
		for _, d := range p.byName[n].DependsOn {
			visit(d)
		}
	}
	for _, r := range roots {
		if _, ok := p.byName[r]; !ok {
			return nil, fmt.Errorf("unknown item: %s", r)
		}
		visit(r)
	}
	return sel, nil
}
