// Package generator orchestrates the full pipeline for one problem
// instance: structure graph -> dependency graph -> budget-bounded
// subgraph -> rendered question and solution. Every instance builds
// its own graphs from scratch; the only shared state is the seeded
// random source, so a fixed seed reproduces a dataset exactly.
package generator

import (
	"errors"
	"fmt"
	"math/rand"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/mathforge/mathforge/pkg/catalog"
	"github.com/mathforge/mathforge/pkg/depgraph"
	"github.com/mathforge/mathforge/pkg/logging"
	"github.com/mathforge/mathforge/pkg/metrics"
	"github.com/mathforge/mathforge/pkg/renderer"
	"github.com/mathforge/mathforge/pkg/structure"
	"github.com/mathforge/mathforge/pkg/validation"
)

// maxAttempts bounds retries when a drawn structure admits nothing
// within the operation budget.
const maxAttempts = 25

// ErrBudgetTooTight indicates repeated draws produced no subgraph
// within the operation budget.
var ErrBudgetTooTight = errors.New("generator: operation budget admits no subgraph")

// Config bounds one generator's output.
type Config struct {
	// NumLayersMin and NumLayersMax bound the per-instance layer count.
	// Both zero means the structure builder's default draw of {2,3,4}.
	NumLayersMin int
	NumLayersMax int
	// MinPerLayer and MaxPerLayer bound every layer's node count.
	MinPerLayer int
	MaxPerLayer int
	// OperationBudget caps the arithmetic-step cost of each problem.
	OperationBudget int
}

// Validate fails fast on invalid ranges, before any construction.
func (c Config) Validate() error {
	cv := validation.NewConfigValidator("generator.Config")
	cv.Positive("MinPerLayer", c.MinPerLayer).
		OrderedRange("ItemsPerLayer", c.MinPerLayer, c.MaxPerLayer).
		Positive("OperationBudget", c.OperationBudget).
		When(c.NumLayersMin != 0 || c.NumLayersMax != 0, func(v *validation.ConfigValidator) {
			v.MinInt("NumLayersMin", c.NumLayersMin, 2).
				OrderedRange("NumLayers", c.NumLayersMin, c.NumLayersMax)
		})
	return cv.Validate()
}

// Problem is one generated record, ready for rendering or export.
type Problem struct {
	ID         string   `json:"id"`
	Question   string   `json:"question"`
	Answer     int      `json:"answer"`
	Solution   []string `json:"solution"`
	Target     string   `json:"target"`
	Difficulty int      `json:"difficulty"`
	Operations int      `json:"operations"`
	NumLayers  int      `json:"num_layers"`
	NumNodes   int      `json:"num_nodes"`
	NumEdges   int      `json:"num_edges"`
}

// Record flattens the problem for the exporters.
func (p *Problem) Record() map[string]any {
	return map[string]any{
		"id":         p.ID,
		"question":   p.Question,
		"answer":     p.Answer,
		"solution":   strings.Join(p.Solution, "\n"),
		"target":     p.Target,
		"difficulty": p.Difficulty,
		"operations": p.Operations,
		"num_layers": p.NumLayers,
		"num_nodes":  p.NumNodes,
		"num_edges":  p.NumEdges,
	}
}

// Generator produces problems from a single seeded random source.
type Generator struct {
	rng     *rand.Rand
	catalog *catalog.Catalog
	cfg     Config
	logger  logging.Logger
	metrics *metrics.Registry
}

// Option configures a Generator.
type Option func(*Generator)

// WithLogger sets the logger; the default discards output.
func WithLogger(logger logging.Logger) Option {
	return func(g *Generator) { g.logger = logger }
}

// WithMetrics sets the metrics registry; the default records nothing.
func WithMetrics(registry *metrics.Registry) Option {
	return func(g *Generator) { g.metrics = registry }
}

// New creates a generator seeded once for reproducibility.
func New(seed int64, cat *catalog.Catalog, cfg Config, opts ...Option) (*Generator, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	g := &Generator{
		rng:     rand.New(rand.NewSource(seed)),
		catalog: cat,
		cfg:     cfg,
		logger:  logging.NewNopLogger(),
	}
	for _, opt := range opts {
		opt(g)
	}
	return g, nil
}

// GenerateProblem builds one problem instance. A fresh structure is
// drawn per attempt; if the budget admits no parameter at all the
// draw is retried a bounded number of times before giving up.
func (g *Generator) GenerateProblem() (*Problem, error) {
	start := time.Now()
	for attempt := 0; attempt < maxAttempts; attempt++ {
		problem, err := g.generateOnce()
		if errors.Is(err, renderer.ErrNothingToAsk) {
			g.logger.Debug("budget admitted nothing, redrawing structure",
				logging.Int("attempt", attempt+1),
				logging.Operations(g.cfg.OperationBudget))
			continue
		}
		if err != nil {
			g.recordAttempt("error", start, nil)
			return nil, err
		}
		g.recordAttempt("success", start, problem)
		return problem, nil
	}
	g.recordAttempt("exhausted", start, nil)
	return nil, fmt.Errorf("%w: budget=%d", ErrBudgetTooTight, g.cfg.OperationBudget)
}

func (g *Generator) generateOnce() (*Problem, error) {
	numLayers := 0
	if g.cfg.NumLayersMin != 0 || g.cfg.NumLayersMax != 0 {
		numLayers = g.cfg.NumLayersMin + g.rng.Intn(g.cfg.NumLayersMax-g.cfg.NumLayersMin+1)
	}

	sg, err := structure.Build(g.rng, g.catalog, structure.BuilderConfig{
		MinPerLayer: g.cfg.MinPerLayer,
		MaxPerLayer: g.cfg.MaxPerLayer,
		NumLayers:   numLayers,
	})
	if err != nil {
		return nil, fmt.Errorf("building structure graph: %w", err)
	}

	dg := depgraph.BuildDependencyGraph(sg)
	sub := depgraph.Extract(dg, g.cfg.OperationBudget)

	rendering, err := renderer.Render(g.rng, sub)
	if err != nil {
		return nil, err
	}

	id, err := uuid.NewRandomFromReader(g.rng)
	if err != nil {
		return nil, fmt.Errorf("generating problem id: %w", err)
	}

	difficulty := 0
	if target, ok := sub.Target(); ok {
		difficulty = dg.Difficulty(target)
	}

	return &Problem{
		ID:         id.String(),
		Question:   rendering.Question,
		Answer:     rendering.Answer,
		Solution:   rendering.Steps,
		Target:     rendering.Target,
		Difficulty: difficulty,
		Operations: sub.Cost(),
		NumLayers:  sg.NumLayers(),
		NumNodes:   sg.NumNodes(),
		NumEdges:   sg.NumEdges(),
	}, nil
}

// GenerateDataset builds count problems in sequence.
func (g *Generator) GenerateDataset(count int) ([]*Problem, error) {
	problems := make([]*Problem, 0, count)
	for i := 0; i < count; i++ {
		problem, err := g.GenerateProblem()
		if err != nil {
			return nil, fmt.Errorf("generating problem %d of %d: %w", i+1, count, err)
		}
		g.logger.Debug("problem generated",
			logging.ProblemID(problem.ID),
			logging.Difficulty(problem.Difficulty),
			logging.Operations(problem.Operations))
		problems = append(problems, problem)
	}
	g.logger.Info("dataset generated", logging.Count(len(problems)))
	return problems, nil
}

func (g *Generator) recordAttempt(status string, start time.Time, p *Problem) {
	if g.metrics == nil {
		return
	}
	if p == nil {
		g.metrics.RecordProblem(status, time.Since(start), 0, 0, 0, 0)
		return
	}
	g.metrics.RecordProblem(status, time.Since(start), p.NumNodes, p.NumEdges, p.Operations, p.Difficulty)
}
