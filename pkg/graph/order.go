package graph

// Ordering returns a total order over all labels consistent with edge
// direction: for every edge u -> v, u appears before v. Among equally-ready
// nodes the order follows node insertion order, which keeps diagrams and
// repeated calls reproducible; any valid topological order satisfies the
// contract.
//
// The order is recomputed fresh on every call via in-degree reduction
// (Kahn): the frontier starts as the source set and nodes leave it as their
// remaining predecessors are consumed. Because the graph can never hold a
// cycle, the result always covers every node.
func (g *Graph[T]) Ordering() []T {
	degrees := g.indegrees()
	frontier := g.sourceKeys()
	result := make([]T, 0, len(g.nodes))

	for len(frontier) > 0 {
		key := frontier[0]
		frontier = frontier[1:]
		result = append(result, g.label(key))

		for _, next := range g.neighborKeys(key) {
			degrees[next]--
			if degrees[next] == 0 {
				frontier = append(frontier, next)
			}
		}
	}
	return result
}
