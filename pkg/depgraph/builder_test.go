package depgraph

import (
	"math/rand"
	"testing"

	"github.com/mathforge/mathforge/pkg/catalog"
	"github.com/mathforge/mathforge/pkg/structure"
)

func buildPipeline(t *testing.T, seed int64, cfg structure.BuilderConfig) *DependencyGraph {
	t.Helper()
	sg, err := structure.Build(rand.New(rand.NewSource(seed)), catalog.Default(), cfg)
	if err != nil {
		t.Fatalf("structure.Build failed: %v", err)
	}
	return BuildDependencyGraph(sg)
}

func TestBuildDependencyGraph_RawVertices(t *testing.T) {
	g := buildPipeline(t, 1, structure.BuilderConfig{MinPerLayer: 2, MaxPerLayer: 3, NumLayers: 3})

	raws := 0
	for id := 0; id < g.NumVertices(); id++ {
		v := VertexID(id)
		if g.IsParameter(v) {
			continue
		}
		raws++
		if len(g.Predecessors(v)) != 0 {
			t.Errorf("raw vertex %d has predecessors", v)
		}
		if g.Difficulty(v) != 0 {
			t.Errorf("raw vertex %d has difficulty %d", v, g.Difficulty(v))
		}
	}
	if raws != g.Structure().NumNodes() {
		t.Errorf("got %d raw vertices, want %d", raws, g.Structure().NumNodes())
	}
}

// TestBuildDependencyGraph_DifficultyInvariant checks that every
// parameter sits exactly one level above its hardest predecessor
// parameter (or at level 1 when all predecessors are raw).
func TestBuildDependencyGraph_DifficultyInvariant(t *testing.T) {
	cfgs := []structure.BuilderConfig{
		{MinPerLayer: 1, MaxPerLayer: 2, NumLayers: 2},
		{MinPerLayer: 2, MaxPerLayer: 3, NumLayers: 3},
		{MinPerLayer: 1, MaxPerLayer: 3, NumLayers: 4},
	}
	for _, cfg := range cfgs {
		for seed := int64(0); seed < 15; seed++ {
			g := buildPipeline(t, seed, cfg)
			for _, v := range g.Parameters() {
				preds := g.Predecessors(v)
				if len(preds) == 0 {
					t.Fatalf("parameter %d has no dependencies", v)
				}
				maxPred := 0
				for _, u := range preds {
					if d := g.Difficulty(u); d > maxPred {
						maxPred = d
					}
				}
				if got := g.Difficulty(v); got != maxPred+1 {
					t.Errorf("parameter %d difficulty %d, want %d", v, got, maxPred+1)
				}
				p := g.Vertex(v).Param
				if p.TargetLayer-p.OwnerLayer != p.Difficulty {
					t.Errorf("parameter %d spans %d layers but difficulty is %d",
						v, p.TargetLayer-p.OwnerLayer, p.Difficulty)
				}
			}
		}
	}
}

func TestBuildDependencyGraph_Acyclic(t *testing.T) {
	for seed := int64(0); seed < 20; seed++ {
		g := buildPipeline(t, seed, structure.BuilderConfig{MinPerLayer: 1, MaxPerLayer: 3})
		if !g.IsAcyclic() {
			t.Fatalf("seed %d: dependency graph has a cycle", seed)
		}
		order, err := g.TopologicalOrder()
		if err != nil {
			t.Fatalf("seed %d: TopologicalOrder failed: %v", seed, err)
		}
		position := make(map[VertexID]int, len(order))
		for i, v := range order {
			position[v] = i
		}
		for _, v := range order {
			for _, u := range g.Predecessors(v) {
				if position[u] >= position[v] {
					t.Errorf("seed %d: predecessor %d not before %d", seed, u, v)
				}
			}
		}
	}
}

// TestBuildDependencyGraph_TwoLayers pins the concrete scenario: with
// two layers, every layer-1 node with a layer-2 neighbor owns exactly
// one parameter at difficulty 1, and nothing else exists.
func TestBuildDependencyGraph_TwoLayers(t *testing.T) {
	for seed := int64(0); seed < 30; seed++ {
		g := buildPipeline(t, seed, structure.BuilderConfig{MinPerLayer: 2, MaxPerLayer: 2, NumLayers: 2})
		sg := g.Structure()
		for _, id := range sg.Layer(0) {
			owned := g.OwnedBy(id)
			children := sg.NeighborsInLayer(id, 1)
			if len(children) == 0 {
				if len(owned) != 0 {
					t.Errorf("seed %d: childless node %d owns parameters", seed, id)
				}
				continue
			}
			if len(owned) != 1 {
				t.Fatalf("seed %d: node %d owns %d parameters, want 1", seed, id, len(owned))
			}
			p := g.Vertex(owned[0]).Param
			if p.Difficulty != 1 {
				t.Errorf("seed %d: parameter difficulty %d, want 1", seed, p.Difficulty)
			}
			if len(g.Predecessors(owned[0])) != len(children) {
				t.Errorf("seed %d: parameter depends on %d vertices, want %d",
					seed, len(g.Predecessors(owned[0])), len(children))
			}
		}
		for _, id := range sg.Layer(1) {
			if len(g.OwnedBy(id)) != 0 {
				t.Errorf("seed %d: deepest-layer node %d owns parameters", seed, id)
			}
		}
	}
}

func TestBuildDependencyGraph_Deterministic(t *testing.T) {
	cfg := structure.BuilderConfig{MinPerLayer: 2, MaxPerLayer: 4, NumLayers: 3}
	a := buildPipeline(t, 11, cfg)
	b := buildPipeline(t, 11, cfg)

	if a.NumVertices() != b.NumVertices() {
		t.Fatalf("vertex counts differ: %d vs %d", a.NumVertices(), b.NumVertices())
	}
	for id := 0; id < a.NumVertices(); id++ {
		v := VertexID(id)
		if a.Vertex(v) != b.Vertex(v) {
			t.Errorf("vertex %d differs: %+v vs %+v", id, a.Vertex(v), b.Vertex(v))
		}
		ap, bp := a.Predecessors(v), b.Predecessors(v)
		if len(ap) != len(bp) {
			t.Errorf("vertex %d predecessor counts differ", id)
			continue
		}
		for k := range ap {
			if ap[k] != bp[k] {
				t.Errorf("vertex %d predecessors differ at %d", id, k)
			}
		}
	}
}

// TestBuildDependencyGraph_Names spot-checks the derived phrases.
func TestBuildDependencyGraph_Names(t *testing.T) {
	g := buildPipeline(t, 5, structure.BuilderConfig{MinPerLayer: 2, MaxPerLayer: 2, NumLayers: 3})
	sg := g.Structure()
	for _, v := range g.Parameters() {
		p := g.Vertex(v).Param
		owner := sg.Node(p.Owner)
		want := owner.Name + "'s " + p.Category
		if g.Name(v) != want {
			t.Errorf("parameter %d named %q, want %q", v, g.Name(v), want)
		}
	}
}
