package depgraph

import (
	"math/rand"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"

	"github.com/mathforge/mathforge/pkg/catalog"
	"github.com/mathforge/mathforge/pkg/structure"
)

func propertyPipeline(seed int64, min, spread, layers int) (*DependencyGraph, error) {
	sg, err := structure.Build(rand.New(rand.NewSource(seed)), catalog.Default(), structure.BuilderConfig{
		MinPerLayer: min, MaxPerLayer: min + spread, NumLayers: layers,
	})
	if err != nil {
		return nil, err
	}
	return BuildDependencyGraph(sg), nil
}

// TestDependencyGraphProperties verifies the dependency-graph
// invariants across random structures.
func TestDependencyGraphProperties(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 50

	properties := gopter.NewProperties(parameters)

	properties.Property("graph is acyclic", prop.ForAll(
		func(seed int64, min, spread, layers int) bool {
			g, err := propertyPipeline(seed, min, spread, layers)
			return err == nil && g.IsAcyclic()
		},
		gen.Int64(), gen.IntRange(1, 3), gen.IntRange(0, 2), gen.IntRange(2, 4),
	))

	properties.Property("difficulty is one above the hardest dependency", prop.ForAll(
		func(seed int64, min, spread, layers int) bool {
			g, err := propertyPipeline(seed, min, spread, layers)
			if err != nil {
				return false
			}
			for _, v := range g.Parameters() {
				maxPred := 0
				for _, u := range g.Predecessors(v) {
					if d := g.Difficulty(u); d > maxPred {
						maxPred = d
					}
				}
				if g.Difficulty(v) != maxPred+1 {
					return false
				}
			}
			return true
		},
		gen.Int64(), gen.IntRange(1, 3), gen.IntRange(0, 2), gen.IntRange(2, 4),
	))

	properties.Property("extraction cost never exceeds the budget", prop.ForAll(
		func(seed int64, min, spread, layers, budget int) bool {
			g, err := propertyPipeline(seed, min, spread, layers)
			if err != nil {
				return false
			}
			return Extract(g, budget).Cost() <= budget
		},
		gen.Int64(), gen.IntRange(1, 3), gen.IntRange(0, 2), gen.IntRange(2, 4), gen.IntRange(0, 20),
	))

	properties.Property("extraction is a pure function of the seed", prop.ForAll(
		func(seed int64, budget int) bool {
			a, errA := propertyPipeline(seed, 2, 1, 3)
			b, errB := propertyPipeline(seed, 2, 1, 3)
			if errA != nil || errB != nil {
				return false
			}
			subA := Extract(a, budget)
			subB := Extract(b, budget)
			va, vb := subA.Vertices(), subB.Vertices()
			if len(va) != len(vb) {
				return false
			}
			for i := range va {
				if va[i] != vb[i] {
					return false
				}
			}
			return true
		},
		gen.Int64(), gen.IntRange(0, 15),
	))

	properties.TestingRun(t)
}
