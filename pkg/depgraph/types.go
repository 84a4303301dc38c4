// Package depgraph constructs the directed dependency graph of
// computable quantities derived from a structure graph, and extracts
// difficulty-bounded subgraphs from it. Vertices are either raw
// structure nodes (given facts, in-degree 0) or abstract parameters
// (derived quantities); an edge u -> v means v's value requires u's.
package depgraph

import (
	"github.com/mathforge/mathforge/pkg/structure"
)

// VertexID identifies a vertex within a single dependency graph.
// IDs are dense and index the graph's vertex arena.
type VertexID int

// VertexKind discriminates raw structure nodes from derived parameters.
type VertexKind int

const (
	// KindRaw marks a vertex standing for a structure node itself.
	KindRaw VertexKind = iota
	// KindParameter marks a derived abstract parameter.
	KindParameter
)

// Parameter is a derived quantity attached to a structure node. The
// owner is referenced by id only; ownership bookkeeping lives in a
// separate table on the graph, not on the node.
type Parameter struct {
	// Difficulty is the number of layers the computation spans.
	Difficulty int
	// Category names what is being aggregated (the target layer's category).
	Category string
	// Name is the derived phrase, e.g. "FreshMart's Ingredient".
	Name string
	// OwnerLayer and TargetLayer are 0-indexed layer positions.
	OwnerLayer  int
	TargetLayer int
	// Owner is the structure node the parameter is attached to.
	Owner structure.NodeID
}

// Vertex is one node of the dependency graph.
type Vertex struct {
	ID    VertexID
	Kind  VertexKind
	Node  structure.NodeID // raw: the structure node; parameter: its owner
	Param Parameter        // zero value for raw vertices
}

// DependencyGraph is a DAG over raw structure nodes and abstract
// parameters. It is acyclic by construction: parameters are created
// while ascending the structure graph, so a parameter only ever
// depends on raw nodes or on parameters of strictly lower difficulty.
type DependencyGraph struct {
	sg        *structure.Graph
	vertices  []Vertex
	preds     [][]VertexID
	succs     [][]VertexID
	rawVertex map[structure.NodeID]VertexID
	owned     map[structure.NodeID][]VertexID
}

func newDependencyGraph(sg *structure.Graph) *DependencyGraph {
	return &DependencyGraph{
		sg:        sg,
		vertices:  make([]Vertex, 0, sg.NumNodes()),
		preds:     make([][]VertexID, 0, sg.NumNodes()),
		succs:     make([][]VertexID, 0, sg.NumNodes()),
		rawVertex: make(map[structure.NodeID]VertexID),
		owned:     make(map[structure.NodeID][]VertexID),
	}
}

func (g *DependencyGraph) addRaw(node structure.NodeID) VertexID {
	id := VertexID(len(g.vertices))
	g.vertices = append(g.vertices, Vertex{ID: id, Kind: KindRaw, Node: node})
	g.preds = append(g.preds, nil)
	g.succs = append(g.succs, nil)
	g.rawVertex[node] = id
	return id
}

func (g *DependencyGraph) addParameter(p Parameter, preds []VertexID) VertexID {
	id := VertexID(len(g.vertices))
	g.vertices = append(g.vertices, Vertex{ID: id, Kind: KindParameter, Node: p.Owner, Param: p})
	g.preds = append(g.preds, append([]VertexID(nil), preds...))
	g.succs = append(g.succs, nil)
	for _, u := range preds {
		g.succs[u] = append(g.succs[u], id)
	}
	g.owned[p.Owner] = append(g.owned[p.Owner], id)
	return id
}

// Structure returns the structure graph the dependency graph was built from.
func (g *DependencyGraph) Structure() *structure.Graph {
	return g.sg
}

// NumVertices returns the total vertex count.
func (g *DependencyGraph) NumVertices() int {
	return len(g.vertices)
}

// Vertex returns the vertex with the given id.
func (g *DependencyGraph) Vertex(id VertexID) Vertex {
	return g.vertices[id]
}

// IsParameter reports whether the vertex is a derived parameter.
func (g *DependencyGraph) IsParameter(id VertexID) bool {
	return g.vertices[id].Kind == KindParameter
}

// Predecessors returns the direct dependencies of a vertex.
func (g *DependencyGraph) Predecessors(id VertexID) []VertexID {
	return g.preds[id]
}

// Successors returns the vertices that directly depend on a vertex.
func (g *DependencyGraph) Successors(id VertexID) []VertexID {
	return g.succs[id]
}

// Difficulty returns the difficulty level of a vertex; raw vertices
// are level 0.
func (g *DependencyGraph) Difficulty(id VertexID) int {
	if g.vertices[id].Kind == KindRaw {
		return 0
	}
	return g.vertices[id].Param.Difficulty
}

// Name returns the display name of a vertex.
func (g *DependencyGraph) Name(id VertexID) string {
	v := g.vertices[id]
	if v.Kind == KindRaw {
		return g.sg.Node(v.Node).Name
	}
	return v.Param.Name
}

// Category returns the category a vertex counts.
func (g *DependencyGraph) Category(id VertexID) string {
	v := g.vertices[id]
	if v.Kind == KindRaw {
		return g.sg.Node(v.Node).Category
	}
	return v.Param.Category
}

// OwnedBy returns the parameter vertices attached to a structure node,
// in creation order.
func (g *DependencyGraph) OwnedBy(node structure.NodeID) []VertexID {
	return g.owned[node]
}

// Parameters returns all parameter vertices in ascending id order.
func (g *DependencyGraph) Parameters() []VertexID {
	ids := make([]VertexID, 0)
	for _, v := range g.vertices {
		if v.Kind == KindParameter {
			ids = append(ids, v.ID)
		}
	}
	return ids
}

// ParametersAtDifficulty returns the parameter vertices at the given
// difficulty level in ascending id order.
func (g *DependencyGraph) ParametersAtDifficulty(level int) []VertexID {
	ids := make([]VertexID, 0)
	for _, v := range g.vertices {
		if v.Kind == KindParameter && v.Param.Difficulty == level {
			ids = append(ids, v.ID)
		}
	}
	return ids
}

// MaxDifficulty returns the highest difficulty level present, or 0 if
// the graph holds no parameters.
func (g *DependencyGraph) MaxDifficulty() int {
	max := 0
	for _, v := range g.vertices {
		if v.Kind == KindParameter && v.Param.Difficulty > max {
			max = v.Param.Difficulty
		}
	}
	return max
}
