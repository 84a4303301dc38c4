package structure

import (
	"fmt"
	"math/rand"

	"github.com/mathforge/mathforge/pkg/catalog"
)

// BuilderConfig bounds the randomized construction of a structure graph.
type BuilderConfig struct {
	// MinPerLayer and MaxPerLayer bound the node count of every layer.
	MinPerLayer int
	MaxPerLayer int
	// NumLayers fixes the layer count; 0 draws it uniformly from {2,3,4}.
	NumLayers int
}

// Build constructs a random layered structure graph. The target edge
// count is drawn uniformly from [(L-1)*min, (L-1)*max^2]; layer sizes
// grow from the minimum until that target is achievable and then keep
// growing stochastically. If the target cannot be reached once all
// adjacent-layer pairs are connected, the graph keeps the maximum
// feasible edge count rather than failing.
func Build(rng *rand.Rand, cat *catalog.Catalog, cfg BuilderConfig) (*Graph, error) {
	if cfg.MinPerLayer < 1 || cfg.MaxPerLayer < cfg.MinPerLayer {
		return nil, fmt.Errorf("%w: min=%d max=%d", ErrInvalidSizeRange, cfg.MinPerLayer, cfg.MaxPerLayer)
	}

	numLayers := cfg.NumLayers
	if numLayers == 0 {
		numLayers = 2 + rng.Intn(3)
	}
	if numLayers < 2 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidLayerCount, numLayers)
	}

	categories, err := pickCategories(rng, cat, numLayers)
	if err != nil {
		return nil, err
	}

	minEdges := (numLayers - 1) * cfg.MinPerLayer
	maxEdges := (numLayers - 1) * cfg.MaxPerLayer * cfg.MaxPerLayer
	numEdges := minEdges + rng.Intn(maxEdges-minEdges+1)

	sizes := growLayerSizes(rng, numLayers, cfg.MinPerLayer, cfg.MaxPerLayer, numEdges)

	g := newGraph(numLayers, categories)
	for i := 0; i < numLayers; i++ {
		for k := 0; k < sizes[i]; k++ {
			g.addNode(i+1, categories[i])
		}
	}

	// Every node below the first layer gets one edge to a uniform random
	// node in the layer above it, so no node is orphaned.
	for i := 1; i < numLayers; i++ {
		upper := g.Layer(i - 1)
		for _, v := range g.Layer(i) {
			g.addEdge(upper[rng.Intn(len(upper))], v)
		}
	}

	// Top up with random adjacent-layer edges until the target is met or
	// every adjacent pair is already connected.
	capacity := 0
	for i := 0; i < numLayers-1; i++ {
		capacity += sizes[i] * sizes[i+1]
	}
	for g.NumEdges() < numEdges && g.NumEdges() < capacity {
		i := rng.Intn(numLayers - 1)
		u := g.Layer(i)[rng.Intn(sizes[i])]
		v := g.Layer(i + 1)[rng.Intn(sizes[i+1])]
		if !g.HasEdge(u, v) {
			g.addEdge(u, v)
		}
	}

	assignNames(rng, cat, g)
	return g, nil
}

// pickCategories chooses one categorization uniformly among those deep
// enough, then a contiguous window of numLayers levels within it.
func pickCategories(rng *rand.Rand, cat *catalog.Catalog, numLayers int) ([]string, error) {
	eligible := make([]catalog.Categorization, 0)
	for _, c := range cat.Categorizations() {
		if len(c.Levels) >= numLayers {
			eligible = append(eligible, c)
		}
	}
	if len(eligible) == 0 {
		return nil, fmt.Errorf("%w: need %d levels", ErrNoCategorization, numLayers)
	}
	chosen := eligible[rng.Intn(len(eligible))]
	start := rng.Intn(len(chosen.Levels) - numLayers + 1)
	return chosen.Levels[start : start+numLayers], nil
}

// growLayerSizes starts every layer at min and grows random layers:
// forced while the maximum achievable edge count is still below the
// target, then stochastically with a per-run probability drawn once.
// Reaching the target edge count is the authoritative stopping
// condition; when no layer can grow further, growth stops.
func growLayerSizes(rng *rand.Rand, numLayers, min, max, numEdges int) []int {
	sizes := make([]int, numLayers)
	for i := range sizes {
		sizes[i] = min
	}

	achievable := func() int {
		total := 0
		for i := 0; i < numLayers-1; i++ {
			total += sizes[i] * sizes[i+1]
		}
		return total
	}
	growable := func() []int {
		idx := make([]int, 0, numLayers)
		for i, s := range sizes {
			if s < max {
				idx = append(idx, i)
			}
		}
		return idx
	}

	for achievable() < numEdges {
		idx := growable()
		if len(idx) == 0 {
			break
		}
		sizes[idx[rng.Intn(len(idx))]]++
	}

	p := rng.Float64()
	for {
		idx := growable()
		if len(idx) == 0 {
			break
		}
		if rng.Float64() >= p {
			break
		}
		sizes[idx[rng.Intn(len(idx))]]++
	}
	return sizes
}
