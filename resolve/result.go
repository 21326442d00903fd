package resolve

import "iter"

// Result is the immutable outcome of a successful Resolve. It never changes
// after construction and is safe for concurrent reads without synchronization.
type Result[ID comparable] struct {
	levels map[ID]int
	order  []ID
	max    int
}

// Level is one group of a Result, read level by level. Members is a set:
// identities within a level have no defined relative order, and callers must
// not depend on map iteration order.
type Level[ID comparable] struct {
	N       int
	Members map[ID]struct{}
}

// Len reports the number of resolved identities.
func (r *Result[ID]) Len() int { return len(r.levels) }

// NumLevels reports how many distinct levels were assigned (0 for an empty
// result). Levels are dense: every value in [0, NumLevels) is present.
func (r *Result[ID]) NumLevels() int { return r.max + 1 }

// LevelOf returns the level assigned to id, or false if id was never added.
func (r *Result[ID]) LevelOf(id ID) (int, bool) {
	lv, ok := r.levels[id]
	return lv, ok
}

// SortedByLevel returns every identity ordered by ascending level. Within a
// level, identities keep the order they were first added in, so the sequence
// is reproducible for identical input order.
func (r *Result[ID]) SortedByLevel() []ID {
	buckets := make([][]ID, r.NumLevels())
	for _, id := range r.order {
		lv := r.levels[id]
		buckets[lv] = append(buckets[lv], id)
	}
	out := make([]ID, 0, len(r.order))
	for _, b := range buckets {
		out = append(out, b...)
	}
	return out
}

// IterLevels yields one Level group per distinct level, in ascending level
// order. Groups are built lazily from the level map, so the sequence may be
// ranged over any number of times.
func (r *Result[ID]) IterLevels() iter.Seq[Level[ID]] {
	return func(yield func(Level[ID]) bool) {
		for n := 0; n <= r.max; n++ {
			members := make(map[ID]struct{})
			for id, lv := range r.levels {
				if lv == n {
					members[id] = struct{}{}
				}
			}
			if !yield(Level[ID]{N: n, Members: members}) {
				return
			}
		}
	}
}
