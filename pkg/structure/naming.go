package structure

import (
	"fmt"
	"math/rand"

	"github.com/mathforge/mathforge/pkg/catalog"
)

// assignNames gives every node a name unique within its layer. Catalog
// items are handed out in shuffled order; when the pool runs dry,
// names are synthesized as "<category> <k>" with k continuing past the
// names already assigned. A category with no registered items is not
// an error: all of its layer's names are synthesized.
func assignNames(rng *rand.Rand, cat *catalog.Catalog, g *Graph) {
	for i, ids := range g.Layers() {
		category := g.Categories()[i]
		items, _ := cat.Items(category)
		pool := make([]string, len(items))
		copy(pool, items)
		rng.Shuffle(len(pool), func(a, b int) { pool[a], pool[b] = pool[b], pool[a] })

		used := make(map[string]struct{})
		next := 0
		synth := 0
		for _, id := range ids {
			name := ""
			for next < len(pool) {
				candidate := pool[next]
				next++
				if _, taken := used[candidate]; !taken {
					name = candidate
					break
				}
			}
			for name == "" {
				synth++
				candidate := fmt.Sprintf("%s %d", category, synth)
				if _, taken := used[candidate]; !taken {
					name = candidate
				}
			}
			used[name] = struct{}{}
			g.nodes[id].Name = name
		}
	}
}
