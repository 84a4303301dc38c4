package depgraph

// Subgraph is an induced sub-DAG of a dependency graph, retained for a
// single problem instance. It holds its own membership state and never
// mutates the graph it was cut from. A parameter whose dependencies
// are not all included is rendered as a given fact rather than a
// computed one, which is what the in-subgraph degree in the cost model
// captures.
type Subgraph struct {
	g        *DependencyGraph
	included []bool
	count    int
}

func newSubgraph(g *DependencyGraph) *Subgraph {
	return &Subgraph{
		g:        g,
		included: make([]bool, g.NumVertices()),
	}
}

// Graph returns the dependency graph the subgraph was cut from.
func (s *Subgraph) Graph() *DependencyGraph {
	return s.g
}

// Contains reports whether a vertex is part of the subgraph.
func (s *Subgraph) Contains(v VertexID) bool {
	return s.included[v]
}

func (s *Subgraph) add(v VertexID) {
	if !s.included[v] {
		s.included[v] = true
		s.count++
	}
}

// Size returns the number of included vertices.
func (s *Subgraph) Size() int {
	return s.count
}

// Vertices returns the included vertices in ascending id order.
func (s *Subgraph) Vertices() []VertexID {
	ids := make([]VertexID, 0, s.count)
	for v, in := range s.included {
		if in {
			ids = append(ids, VertexID(v))
		}
	}
	return ids
}

// InDegree returns the number of a vertex's predecessors that are
// themselves included in the subgraph.
func (s *Subgraph) InDegree(v VertexID) int {
	count := 0
	for _, u := range s.g.Predecessors(v) {
		if s.included[u] {
			count++
		}
	}
	return count
}

// Cost returns the total evaluation cost of the subgraph: each
// included parameter costs max(1, k-1) where k is its in-subgraph
// degree, since combining k dependencies takes k-1 arithmetic steps
// and even a given parameter takes one rendering step. Raw vertices
// cost nothing.
func (s *Subgraph) Cost() int {
	return costOf(s.g, s.included)
}

func costOf(g *DependencyGraph, included []bool) int {
	total := 0
	for v, in := range included {
		if !in || !g.IsParameter(VertexID(v)) {
			continue
		}
		k := 0
		for _, u := range g.preds[v] {
			if included[u] {
				k++
			}
		}
		if k <= 2 {
			total++
		} else {
			total += k - 1
		}
	}
	return total
}

// TopologicalOrder returns the included vertices in an order where
// every vertex's included predecessors appear before it. Deterministic
// for a given subgraph (ties broken by ascending id).
func (s *Subgraph) TopologicalOrder() ([]VertexID, error) {
	return kahn(s.Vertices(), s.g.preds, s.g.succs)
}

// Target returns the question target: the included parameter with the
// highest difficulty level, lowest id winning ties. ok is false when
// the subgraph holds no parameters.
func (s *Subgraph) Target() (VertexID, bool) {
	best := VertexID(-1)
	bestLevel := 0
	for _, v := range s.Vertices() {
		if !s.g.IsParameter(v) {
			continue
		}
		if level := s.g.Difficulty(v); best < 0 || level > bestLevel {
			best = v
			bestLevel = level
		}
	}
	if best < 0 {
		return 0, false
	}
	return best, true
}
