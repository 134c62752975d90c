// Package metrics exports path search activity as Prometheus collectors.
//
// A Recorder is attached to a pathsearch.Controller through the controller's
// hook options, so the search core itself never imports Prometheus.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/katalvlaran/hexpath/hexgrid"
	"github.com/katalvlaran/hexpath/pathsearch"
)

const (
	namespace = "hexpath"
	subsystem = "search"
)

// Outcome label values.
const (
	OutcomeFound       = "found"
	OutcomeUnreachable = "unreachable"
)

// Recorder holds the search collectors. All label sets are keyed by mode.
type Recorder struct {
	expansions  *prometheus.CounterVec
	relaxations *prometheus.CounterVec
	finished    *prometheus.CounterVec
	slices      *prometheus.HistogramVec
	duration    *prometheus.HistogramVec
}

// New registers the collectors on reg. Registering twice on the same
// registry panics, as promauto does.
func New(reg prometheus.Registerer) *Recorder {
	f := promauto.With(reg)

	return &Recorder{
		// Labels: mode
		expansions: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "expansions_total",
			Help:      "Candidates popped from the frontier.",
		}, []string{"mode"}),

		// Labels: mode
		relaxations: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "relaxations_total",
			Help:      "Cheaper paths found to already reached cells.",
		}, []string{"mode"}),

		// Labels: mode, outcome (found, unreachable)
		finished: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "finished_total",
			Help:      "Completed search sessions by outcome.",
		}, []string{"mode", "outcome"}),

		// Labels: mode
		slices: f.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "slice_expansions",
			Help:      "Expansions performed by one Step call.",
			Buckets:   prometheus.ExponentialBuckets(1, 2, 12),
		}, []string{"mode"}),

		// Labels: mode
		duration: f.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "duration_seconds",
			Help:      "Wall time from Enter to Done.",
			Buckets:   prometheus.ExponentialBuckets(0.0001, 4, 10),
		}, []string{"mode"}),
	}
}

// Options returns controller hooks that feed r under the given mode label.
func (r *Recorder) Options(mode string) []pathsearch.Option {
	exp := r.expansions.WithLabelValues(mode)
	rel := r.relaxations.WithLabelValues(mode)
	found := r.finished.WithLabelValues(mode, OutcomeFound)
	lost := r.finished.WithLabelValues(mode, OutcomeUnreachable)
	slices := r.slices.WithLabelValues(mode)

	return []pathsearch.Option{
		pathsearch.WithOnExpand(func(hexgrid.Cell, float64) { exp.Inc() }),
		pathsearch.WithOnRelax(func(hexgrid.Cell, float64, float64) { rel.Inc() }),
		pathsearch.WithOnSlice(func(n int) { slices.Observe(float64(n)) }),
		pathsearch.WithOnDone(func(ok bool, _ int) {
			if ok {
				found.Inc()
				return
			}
			lost.Inc()
		}),
	}
}

// ObserveSearch records the wall time of one complete search.
func (r *Recorder) ObserveSearch(mode string, d time.Duration) {
	r.duration.WithLabelValues(mode).Observe(d.Seconds())
}
