package resolve

import (
	"fmt"
	"strings"
)

// UnknownDependencyError reports an item whose dependency list names an
// identity that was never added to the graph.
type UnknownDependencyError[ID comparable] struct {
	Item    ID
	Missing ID
}

func (e *UnknownDependencyError[ID]) Error() string {
	return fmt.Sprintf("item %v depends on unknown item %v", e.Item, e.Missing)
}

// CycleError reports a dependency cycle. Path holds the offending identities
// in traversal order; the last entry depends on the first.
type CycleError[ID comparable] struct {
	Path []ID
}

func (e *CycleError[ID]) Error() string {
	if len(e.Path) == 0 {
		return "dependency cycle"
	}
	parts := make([]string, 0, len(e.Path)+1)
	for _, id := range e.Path {
		parts = append(parts, fmt.Sprint(id))
	}
	parts = append(parts, parts[0])
	return "dependency cycle: " + strings.Join(parts, " -> ")
}
