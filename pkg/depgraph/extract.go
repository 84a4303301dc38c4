package depgraph

// Extract selects a subgraph whose total evaluation cost stays at or
// below the operation budget, controlling problem difficulty.
//
// The selection is a greedy fixed-point loop: sweep parameter vertices
// from the highest difficulty level down, and for each one whose
// dependencies are not yet fully included, tentatively add it together
// with its direct predecessors. Only direct predecessors are pulled
// in; a predecessor parameter enters as a given fact and is itself a
// completion candidate at its own, lower, level in a later sweep. If
// the tentative cost fits the budget the addition is committed and the
// sweep restarts, since committed vertices change the in-subgraph
// degree (and so the cost) of the remaining candidates. The loop
// terminates because every commit strictly grows the subgraph, which
// is bounded by the full graph.
//
// A budget below 1 yields the empty subgraph: even a single given
// parameter costs one rendering step.
func Extract(g *DependencyGraph, budget int) *Subgraph {
	s := newSubgraph(g)
	if budget < 1 {
		return s
	}

	for extendOnce(s, budget) {
	}
	return s
}

// extendOnce scans candidates from the highest difficulty level down
// and commits the first affordable addition. Returns false when a full
// sweep commits nothing, i.e. the fixed point is reached.
func extendOnce(s *Subgraph, budget int) bool {
	g := s.g
	for level := g.MaxDifficulty(); level >= 1; level-- {
		for _, v := range g.ParametersAtDifficulty(level) {
			delta := completionDelta(s, v)
			if len(delta) == 0 {
				continue
			}
			if costWith(s, delta) <= budget {
				for _, u := range delta {
					s.add(u)
				}
				return true
			}
		}
	}
	return false
}

// completionDelta returns the vertices needed to make v fully
// materialized in s: v itself if absent, plus its absent direct
// predecessors. An empty delta means v is already complete.
func completionDelta(s *Subgraph, v VertexID) []VertexID {
	delta := make([]VertexID, 0)
	if !s.Contains(v) {
		delta = append(delta, v)
	}
	for _, u := range s.g.Predecessors(v) {
		if !s.Contains(u) {
			delta = append(delta, u)
		}
	}
	return delta
}

// costWith evaluates the cost of the subgraph with the delta applied,
// without committing it.
func costWith(s *Subgraph, delta []VertexID) int {
	included := make([]bool, len(s.included))
	copy(included, s.included)
	for _, v := range delta {
		included[v] = true
	}
	return costOf(s.g, included)
}
