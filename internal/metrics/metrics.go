// Package metrics counts simulation runs with Prometheus collectors.
//
// Collectors live on a private registry, never the global default one, and
// are exported by writing a textfile.
package metrics

import (
	"context"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/aretw0/patrol/pkg/domain"
)

// Recorder holds the patrol collectors.
type Recorder struct {
	registry   *prometheus.Registry
	runs       *prometheus.CounterVec
	steps      *prometheus.CounterVec
	candidates prometheus.Counter
	loops      prometheus.Gauge
}

// NewRecorder creates a Recorder with its own registry.
func NewRecorder() *Recorder {
	r := &Recorder{
		registry: prometheus.NewRegistry(),
		runs: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "patrol_runs_total",
				Help: "Total number of simulation runs by mode and outcome",
			},
			[]string{"mode", "outcome"},
		),
		steps: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "patrol_steps_total",
				Help: "Total number of guard steps by mode",
			},
			[]string{"mode"},
		),
		candidates: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "patrol_search_candidates_total",
			Help: "Total number of obstruction candidates tried",
		}),
		loops: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "patrol_search_loops",
			Help: "Looping placements found by the last obstruction search",
		}),
	}
	r.registry.MustRegister(r.runs, r.steps, r.candidates, r.loops)
	return r
}

// Hooks returns lifecycle hooks that feed the collectors.
func (r *Recorder) Hooks() domain.LifecycleHooks {
	return domain.LifecycleHooks{
		OnRunEnd: func(_ context.Context, e *domain.RunEvent) {
			r.runs.WithLabelValues(string(e.Mode), string(e.Status)).Inc()
			r.steps.WithLabelValues(string(e.Mode)).Add(float64(e.Steps))
		},
		OnSearchEnd: func(_ context.Context, e *domain.SearchEvent) {
			r.candidates.Add(float64(e.Candidates))
			r.loops.Set(float64(e.Loops))
		},
	}
}

// Gatherer exposes the registry.
func (r *Recorder) Gatherer() prometheus.Gatherer {
	return r.registry
}

// WriteFile writes all collectors in the Prometheus text format.
func (r *Recorder) WriteFile(path string) error {
	return prometheus.WriteToTextfile(path, r.registry)
}
