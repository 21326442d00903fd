package resolve

const (
	white = iota // not yet visited
	gray         // on the current traversal stack
	black        // fully explored, proven cycle-free
)

// findCycle runs a depth-first traversal from every unvisited identity and
// returns one cycle as a witness, or nil if the graph is acyclic. The returned
// path is the traversal stack from the revisited identity to the identity that
// closed the loop. Traversal state lives only for the duration of the call.
func (g *Graph[ID]) findCycle() []ID {
	color := make(map[ID]int, len(g.deps))
	var stack []ID
	var cycle []ID

	var visit func(id ID) bool
	visit = func(id ID) bool {
		color[id] = gray
		stack = append(stack, id)
		for _, dep := range g.deps[id] {
			switch color[dep] {
			case white:
				if visit(dep) {
					return true
				}
			case gray:
				for i := range stack {
					if stack[i] == dep {
						cycle = append([]ID(nil), stack[i:]...)
						return true
					}
				}
			}
		}
		stack = stack[:len(stack)-1]
		color[id] = black
		return false
	}

	for _, id := range g.order {
		if color[id] == white && visit(id) {
			return cycle
		}
	}
	return nil
}

// assignLevels computes level(n) = 0 for dependency-free items, else
// 1 + max(level(dep)). It walks with an explicit work stack rather than
// recursing, so a pathological chain cannot exhaust the call stack. Acyclicity
// is already proven, so the walk always terminates. Returns the level map and
// the highest level assigned (-1 for an empty graph).
func (g *Graph[ID]) assignLevels() (map[ID]int, int) {
	levels := make(map[ID]int, len(g.deps))
	max := -1
	stack := make([]ID, 0, len(g.deps))
	for _, start := range g.order {
		if _, done := levels[start]; done {
			continue
		}
		stack = append(stack[:0], start)
		for len(stack) > 0 {
			id := stack[len(stack)-1]
			if _, done := levels[id]; done {
				stack = stack[:len(stack)-1]
				continue
			}
			highest := -1
			ready := true
			for _, dep := range g.deps[id] {
				lv, ok := levels[dep]
				if !ok {
					stack = append(stack, dep)
					ready = false
					continue
				}
				if lv > highest {
					highest = lv
				}
			}
			if !ready {
				continue
			}
			stack = stack[:len(stack)-1]
			levels[id] = highest + 1
			if levels[id] > max {
				max = levels[id]
			}
		}
	}
	return levels, max
}
