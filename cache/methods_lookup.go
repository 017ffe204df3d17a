// File: methods_lookup.go
// Role: read-only traversal over an already-built DAG — FindConnected and
// the compile-order helper the eval package uses to walk a tree's
// transitive closure in rank order.
package cache

import "sort"

// FindConnected returns the set of ids reachable from root: root itself
// plus every operand transitively referenced (spec.md §4.2). It is a
// forward DFS — the DAG carries no parent pointers (spec.md §9), so there
// is nothing to walk but down.
func (c *Cache) FindConnected(root NodeID) (map[NodeID]struct{}, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if err := c.checkID(root); err != nil {
		return nil, err
	}

	seen := make(map[NodeID]struct{})
	stack := []NodeID{root}
	for len(stack) > 0 {
		id := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if _, visited := seen[id]; visited {
			continue
		}
		seen[id] = struct{}{}
		n := c.nodes[id]
		if n.lhs != null {
			stack = append(stack, n.lhs)
		}
		if n.rhs != null {
			stack = append(stack, n.rhs)
		}
	}
	return seen, nil
}

// CompileOrder returns ids (a set previously obtained from FindConnected)
// sorted ascending by (rank, id). Ascending rank guarantees every operand
// precedes its consumer — the invariant the evaluator's tape construction
// depends on (spec.md §3) — and id order breaks ties deterministically
// since ids are assigned in first-insertion order within a rank.
func (c *Cache) CompileOrder(ids map[NodeID]struct{}) []NodeID {
	c.mu.RLock()
	ordered := make([]NodeID, 0, len(ids))
	for id := range ids {
		ordered = append(ordered, id)
	}
	ranks := make(map[NodeID]int, len(ids))
	for _, id := range ordered {
		ranks[id] = c.nodes[id].rank
	}
	c.mu.RUnlock()

	sort.Slice(ordered, func(i, j int) bool {
		a, b := ordered[i], ordered[j]
		if ranks[a] != ranks[b] {
			return ranks[a] < ranks[b]
		}
		return a < b
	})
	return ordered
}
