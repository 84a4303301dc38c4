package depgraph

import "sort"

// TopologicalOrder returns every vertex in an order where each
// vertex's predecessors appear before it, using Kahn's algorithm.
// Ties are broken by ascending vertex id, so the order is
// deterministic for a given graph.
func (g *DependencyGraph) TopologicalOrder() ([]VertexID, error) {
	all := make([]VertexID, len(g.vertices))
	for i := range g.vertices {
		all[i] = VertexID(i)
	}
	return kahn(all, g.preds, g.succs)
}

// IsAcyclic reports whether the graph contains no directed cycle.
// The builder guarantees acyclicity; this is the verification hook.
func (g *DependencyGraph) IsAcyclic() bool {
	_, err := g.TopologicalOrder()
	return err == nil
}

// kahn runs Kahn's algorithm restricted to the given vertex set.
// Edges to vertices outside the set are ignored.
func kahn(vertices []VertexID, preds, succs [][]VertexID) ([]VertexID, error) {
	inSet := make(map[VertexID]struct{}, len(vertices))
	for _, v := range vertices {
		inSet[v] = struct{}{}
	}

	inDegree := make(map[VertexID]int, len(vertices))
	for _, v := range vertices {
		count := 0
		for _, u := range preds[v] {
			if _, ok := inSet[u]; ok {
				count++
			}
		}
		inDegree[v] = count
	}

	ready := make([]VertexID, 0)
	for _, v := range vertices {
		if inDegree[v] == 0 {
			ready = append(ready, v)
		}
	}

	sorted := make([]VertexID, 0, len(vertices))
	for len(ready) > 0 {
		sort.Slice(ready, func(i, j int) bool { return ready[i] < ready[j] })
		current := ready[0]
		ready = ready[1:]
		sorted = append(sorted, current)

		for _, w := range succs[current] {
			if _, ok := inSet[w]; !ok {
				continue
			}
			inDegree[w]--
			if inDegree[w] == 0 {
				ready = append(ready, w)
			}
		}
	}

	if len(sorted) != len(vertices) {
		return nil, ErrCyclic
	}
	return sorted, nil
}
