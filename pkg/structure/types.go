// Package structure builds the random layered entity graph underlying
// a generated problem. Nodes are concrete entity instances (a specific
// supermarket, a specific product); undirected edges connect instances
// in adjacent layers and mean "belongs to / contains".
package structure

import "sort"

// NodeID identifies a node within a single graph. IDs are dense and
// index the graph's node arena.
type NodeID int

// Node is an entity instance. Immutable once named.
type Node struct {
	ID       NodeID
	Layer    int // 1-indexed; layer 1 is the most abstract
	Category string
	Name     string // unique within its layer
}

// Graph is an undirected graph over layered nodes. Every edge connects
// nodes in adjacent layers, and every node above layer 1 has at least
// one neighbor in the layer above it.
type Graph struct {
	nodes      []Node
	adjacency  []map[NodeID]struct{}
	layers     [][]NodeID
	categories []string // one category per layer
	edgeCount  int
}

func newGraph(numLayers int, categories []string) *Graph {
	return &Graph{
		nodes:      make([]Node, 0),
		adjacency:  make([]map[NodeID]struct{}, 0),
		layers:     make([][]NodeID, numLayers),
		categories: categories,
	}
}

func (g *Graph) addNode(layer int, category string) NodeID {
	id := NodeID(len(g.nodes))
	g.nodes = append(g.nodes, Node{ID: id, Layer: layer, Category: category})
	g.adjacency = append(g.adjacency, make(map[NodeID]struct{}))
	g.layers[layer-1] = append(g.layers[layer-1], id)
	return id
}

func (g *Graph) addEdge(u, v NodeID) {
	g.adjacency[u][v] = struct{}{}
	g.adjacency[v][u] = struct{}{}
	g.edgeCount++
}

// HasEdge reports whether u and v are connected.
func (g *Graph) HasEdge(u, v NodeID) bool {
	_, ok := g.adjacency[u][v]
	return ok
}

// Node returns the node with the given id.
func (g *Graph) Node(id NodeID) Node {
	return g.nodes[id]
}

// NumNodes returns the total node count.
func (g *Graph) NumNodes() int {
	return len(g.nodes)
}

// NumEdges returns the total edge count.
func (g *Graph) NumEdges() int {
	return g.edgeCount
}

// NumLayers returns the layer count.
func (g *Graph) NumLayers() int {
	return len(g.layers)
}

// Layers returns node ids grouped by layer, shallowest first.
func (g *Graph) Layers() [][]NodeID {
	return g.layers
}

// Layer returns the node ids of a single layer (0-indexed).
func (g *Graph) Layer(i int) []NodeID {
	return g.layers[i]
}

// Categories returns the category assigned to each layer.
func (g *Graph) Categories() []string {
	return g.categories
}

// Neighbors returns u's neighbors in ascending id order.
func (g *Graph) Neighbors(u NodeID) []NodeID {
	ids := make([]NodeID, 0, len(g.adjacency[u]))
	for v := range g.adjacency[u] {
		ids = append(ids, v)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}

// NeighborsInLayer returns u's neighbors lying exactly in the given
// 0-indexed layer, in ascending id order. Neighbors are matched by
// their layer attribute, not by position, since extra edges only ever
// connect adjacent layers but callers should not have to assume that.
func (g *Graph) NeighborsInLayer(u NodeID, layer int) []NodeID {
	ids := make([]NodeID, 0)
	for v := range g.adjacency[u] {
		if g.nodes[v].Layer-1 == layer {
			ids = append(ids, v)
		}
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}
