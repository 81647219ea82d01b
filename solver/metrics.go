// SPDX-License-Identifier: MIT

package solver

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Outcome label values for jumpmaze_solves_total.
const (
	OutcomeSolved      = "solved"
	OutcomeUnreachable = "unreachable"
	OutcomeError       = "error"
)

// Metrics groups the collectors a Solver reports to.
type Metrics struct {
	// Solves counts Solve calls by outcome.
	Solves *prometheus.CounterVec
	// PathJumps observes the jump count of each solved board.
	PathJumps prometheus.Histogram
	// GraphEdges is the edge count of the most recently built graph.
	GraphEdges prometheus.Gauge
	// Duration observes wall time of each Solve call.
	Duration prometheus.Histogram
}

// NewMetrics creates the solver collectors and registers them with reg.
// A nil reg leaves them unregistered.
func NewMetrics(reg prometheus.Registerer) (*Metrics, error) {
	m := &Metrics{
		Solves: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "jumpmaze_solves_total",
				Help: "Total number of boards solved, by outcome",
			},
			[]string{"outcome"},
		),
		PathJumps: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "jumpmaze_path_jumps",
			Help:    "Number of jumps on the shortest path, goal link included",
			Buckets: prometheus.ExponentialBuckets(1, 2, 10),
		}),
		GraphEdges: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "jumpmaze_graph_edges",
			Help: "Edges in the most recently built jump graph",
		}),
		Duration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "jumpmaze_solve_duration_seconds",
			Help:    "Time spent building, searching and decoding one board",
			Buckets: prometheus.DefBuckets,
		}),
	}
	if reg == nil {
		return m, nil
	}
	for _, c := range []prometheus.Collector{m.Solves, m.PathJumps, m.GraphEdges, m.Duration} {
		if err := reg.Register(c); err != nil {
			return nil, err
		}
	}
	return m, nil
}
