// Package renderer turns an extracted subgraph and its topological
// order into question and solution text. Prose quality is not the
// point; what matters is that given facts appear before the question,
// every solution step only uses values established earlier in the
// order, and the arithmetic is consistent.
package renderer

import (
	"errors"
	"fmt"
	"math/rand"
	"strings"

	"github.com/mathforge/mathforge/pkg/depgraph"
)

// ErrNothingToAsk indicates the subgraph holds no parameter to build a
// question around (e.g. the operation budget admitted nothing).
var ErrNothingToAsk = errors.New("renderer: subgraph holds no parameter")

// Rendering is the textual form of one problem.
type Rendering struct {
	Question string
	Answer   int
	Steps    []string
	Target   string // name of the asked parameter
}

// Render assigns small random values to the subgraph's given facts,
// evaluates every computed parameter along the topological order, and
// emits the question and step-by-step solution. The question asks for
// the highest-difficulty parameter in the subgraph.
func Render(rng *rand.Rand, s *depgraph.Subgraph) (*Rendering, error) {
	target, ok := s.Target()
	if !ok {
		return nil, ErrNothingToAsk
	}

	order, err := s.TopologicalOrder()
	if err != nil {
		return nil, err
	}
	g := s.Graph()

	values := make(map[depgraph.VertexID]int, len(order))
	givens := make([]string, 0)
	steps := make([]string, 0)

	for _, v := range order {
		if s.InDegree(v) == 0 {
			// Given fact: a raw entity count or a parameter whose
			// dependencies were left out of the subgraph.
			values[v] = 1 + rng.Intn(9)
			givens = append(givens, fmt.Sprintf("The number of %s is %d.", g.Name(v), values[v]))
			continue
		}

		terms := make([]string, 0)
		total := 0
		for _, u := range g.Predecessors(v) {
			if !s.Contains(u) {
				continue
			}
			terms = append(terms, fmt.Sprintf("%d", values[u]))
			total += values[u]
		}
		values[v] = total
		if len(terms) == 1 {
			steps = append(steps, fmt.Sprintf("The number of %s equals %d.", g.Name(v), total))
		} else {
			steps = append(steps, fmt.Sprintf("The number of %s is %s = %d.", g.Name(v), strings.Join(terms, " + "), total))
		}
	}

	question := fmt.Sprintf("%s How many %s does %s have in total?",
		strings.Join(givens, " "),
		g.Category(target),
		g.Structure().Node(g.Vertex(target).Node).Name,
	)

	return &Rendering{
		Question: question,
		Answer:   values[target],
		Steps:    steps,
		Target:   g.Name(target),
	}, nil
}
