package depgraph

import (
	"fmt"
	"sort"

	"github.com/mathforge/mathforge/pkg/structure"
)

// BuildDependencyGraph walks the structure graph from the
// deepest-but-one layer up to the shallowest and derives the abstract
// parameter graph. Each node with direct children in the layer below
// gets a difficulty-1 parameter aggregating those children; child
// parameters created in deeper iterations are composed upward into
// parameters whose difficulty grows by exactly one per ascended layer.
func BuildDependencyGraph(sg *structure.Graph) *DependencyGraph {
	g := newDependencyGraph(sg)

	// Raw vertices first, one per structure node, preserving node order.
	for id := 0; id < sg.NumNodes(); id++ {
		g.addRaw(structure.NodeID(id))
	}

	categories := sg.Categories()
	for i := sg.NumLayers() - 2; i >= 0; i-- {
		for _, v := range sg.Layer(i) {
			children := sg.NeighborsInLayer(v, i+1)
			if len(children) == 0 {
				continue
			}
			owner := sg.Node(v)

			preds := make([]VertexID, len(children))
			for k, c := range children {
				preds[k] = g.rawVertex[c]
			}
			g.addParameter(Parameter{
				Difficulty:  1,
				Category:    categories[i+1],
				Name:        fmt.Sprintf("%s's %s", owner.Name, categories[i+1]),
				OwnerLayer:  i,
				TargetLayer: i + 1,
				Owner:       v,
			}, preds)

			// Compose child-owned parameters upward, one parameter per
			// distinct child difficulty so the aggregate spans exactly
			// one more layer than its inputs.
			byDifficulty := make(map[int][]VertexID)
			for _, c := range children {
				for _, pv := range g.owned[c] {
					d := g.vertices[pv].Param.Difficulty
					byDifficulty[d] = append(byDifficulty[d], pv)
				}
			}
			levels := make([]int, 0, len(byDifficulty))
			for d := range byDifficulty {
				levels = append(levels, d)
			}
			sort.Ints(levels)
			for _, d := range levels {
				target := i + d + 1
				g.addParameter(Parameter{
					Difficulty:  d + 1,
					Category:    categories[target],
					Name:        fmt.Sprintf("%s's %s", owner.Name, categories[target]),
					OwnerLayer:  i,
					TargetLayer: target,
					Owner:       v,
				}, byDifficulty[d])
			}
		}
	}
	return g
}
