// Package metrics exposes prometheus metrics for the generation
// pipeline: problem counts, generation latency, graph sizes, and
// export outcomes.
package metrics

import (
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Registry holds all metrics for the generator.
type Registry struct {
	ProblemsGeneratedTotal *prometheus.CounterVec
	GenerationDuration     prometheus.Histogram
	StructureNodes         prometheus.Histogram
	StructureEdges         prometheus.Histogram
	OperationCost          prometheus.Histogram
	ProblemDifficulty      prometheus.Histogram
	ExportsTotal           *prometheus.CounterVec

	registry *prometheus.Registry
}

var (
	defaultRegistry *Registry
	once            sync.Once
)

// DefaultRegistry returns the global metrics registry.
func DefaultRegistry() *Registry {
	once.Do(func() {
		defaultRegistry = NewRegistry()
	})
	return defaultRegistry
}

// NewRegistry creates a metrics registry with all metrics initialized.
func NewRegistry() *Registry {
	reg := prometheus.NewRegistry()
	r := &Registry{registry: reg}

	r.ProblemsGeneratedTotal = promauto.With(reg).NewCounterVec(
		prometheus.CounterOpts{
			Name: "mathforge_problems_generated_total",
			Help: "Total number of problem generation attempts",
		},
		[]string{"status"},
	)

	r.GenerationDuration = promauto.With(reg).NewHistogram(
		prometheus.HistogramOpts{
			Name:    "mathforge_generation_duration_seconds",
			Help:    "Time spent generating a single problem",
			Buckets: []float64{0.0001, 0.0005, 0.001, 0.005, 0.01, 0.05, 0.1, 0.5},
		},
	)

	r.StructureNodes = promauto.With(reg).NewHistogram(
		prometheus.HistogramOpts{
			Name:    "mathforge_structure_nodes",
			Help:    "Node count of generated structure graphs",
			Buckets: prometheus.LinearBuckets(2, 4, 10),
		},
	)

	r.StructureEdges = promauto.With(reg).NewHistogram(
		prometheus.HistogramOpts{
			Name:    "mathforge_structure_edges",
			Help:    "Edge count of generated structure graphs",
			Buckets: prometheus.LinearBuckets(2, 8, 10),
		},
	)

	r.OperationCost = promauto.With(reg).NewHistogram(
		prometheus.HistogramOpts{
			Name:    "mathforge_operation_cost",
			Help:    "Evaluation cost of extracted subgraphs",
			Buckets: prometheus.LinearBuckets(1, 2, 12),
		},
	)

	r.ProblemDifficulty = promauto.With(reg).NewHistogram(
		prometheus.HistogramOpts{
			Name:    "mathforge_problem_difficulty",
			Help:    "Difficulty level of generated problems",
			Buckets: prometheus.LinearBuckets(1, 1, 4),
		},
	)

	r.ExportsTotal = promauto.With(reg).NewCounterVec(
		prometheus.CounterOpts{
			Name: "mathforge_exports_total",
			Help: "Total number of dataset exports",
		},
		[]string{"format", "status"},
	)

	return r
}

// PrometheusRegistry returns the underlying prometheus registry for
// exposition.
func (r *Registry) PrometheusRegistry() *prometheus.Registry {
	return r.registry
}

// RecordProblem records one generation attempt.
func (r *Registry) RecordProblem(status string, duration time.Duration, nodes, edges, cost, difficulty int) {
	r.ProblemsGeneratedTotal.WithLabelValues(status).Inc()
	r.GenerationDuration.Observe(duration.Seconds())
	if status == "success" {
		r.StructureNodes.Observe(float64(nodes))
		r.StructureEdges.Observe(float64(edges))
		r.OperationCost.Observe(float64(cost))
		r.ProblemDifficulty.Observe(float64(difficulty))
	}
}

// RecordExport records one dataset export.
func (r *Registry) RecordExport(format, status string) {
	r.ExportsTotal.WithLabelValues(format, status).Inc()
}
