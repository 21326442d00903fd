// Package resolve computes a dependency-ordered leveling of a set of items.
//
// Items are added to a Graph and resolved in one pass. Every item is assigned a
// level: items with no dependencies sit at level 0, and every other item sits one
// level above the highest of its dependencies. Items sharing a level have no
// dependency relationship between them, so a caller may process a level's items
// in parallel and use level boundaries as barriers.
package resolve

// Item is the contract an input must satisfy: a stable identity plus the
// identities it depends on. Dependency order is irrelevant and duplicates are
// ignored.
type Item[ID comparable] interface {
	Identity() ID
	Dependencies() []ID
}

// Graph accumulates items across any number of Add calls before a single
// Resolve. It is mutable shared state; callers sharing a Graph across
// goroutines must serialize access themselves.
type Graph[ID comparable] struct {
	deps  map[ID][]ID
	order []ID // identities in first-Add order
}

// NewGraph returns an empty graph.
func NewGraph[ID comparable]() *Graph[ID] {
	return &Graph[ID]{deps: make(map[ID][]ID)}
}

// Add records the given items. A dependency naming an identity that has not
// been added yet is fine here; missing identities only become an error at
// Resolve time, so batches may arrive in any order. Adding an item whose
// identity is already present silently overwrites the earlier dependency list
// and keeps the identity's original position in the insertion order.
func (g *Graph[ID]) Add(items ...Item[ID]) {
	for _, it := range items {
		id := it.Identity()
		if _, exists := g.deps[id]; !exists {
			g.order = append(g.order, id)
		}
		g.deps[id] = dedup(it.Dependencies())
	}
}

// Len reports the number of distinct identities added so far.
func (g *Graph[ID]) Len() int { return len(g.deps) }

// Resolve validates the graph and assigns levels. It fails with
// *UnknownDependencyError if an item references an identity that was never
// added, or with *CycleError if the dependency graph is cyclic. A failed
// Resolve leaves the graph untouched: the caller can Add the missing or
// corrected items and Resolve again.
func (g *Graph[ID]) Resolve() (*Result[ID], error) {
	if err := g.checkRefs(); err != nil {
		return nil, err
	}
	if cycle := g.findCycle(); cycle != nil {
		return nil, &CycleError[ID]{Path: cycle}
	}
	levels, max := g.assignLevels()
	order := make([]ID, len(g.order))
	copy(order, g.order)
	return &Result[ID]{levels: levels, order: order, max: max}, nil
}

func (g *Graph[ID]) checkRefs() error {
	for _, id := range g.order {
		for _, dep := range g.deps[id] {
			if _, ok := g.deps[dep]; !ok {
				return &UnknownDependencyError[ID]{Item: id, Missing: dep}
			}
		}
	}
	return nil
}

func dedup[ID comparable](ids []ID) []ID {
	if len(ids) < 2 {
		return append([]ID(nil), ids...)
	}
	seen := make(map[ID]struct{}, len(ids))
	out := make([]ID, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}
