// Package metrics wires Prometheus instrumentation around the detector,
// following the counters/histograms style of the teacher pack's
// indexer/internal/pkg/metrics example.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Detector holds the Prometheus collectors an optional *detect.Detector
// reports through. Construct with NewDetector and register it with
// prometheus.MustRegister (or a Registerer's MustRegister) exactly once.
type Detector struct {
	Calls        prometheus.Counter
	EmptyResults prometheus.Counter
	NGramCount   prometheus.Histogram
	TrialLength  prometheus.Histogram
}

// NewDetector builds a fresh set of collectors, unregistered.
func NewDetector() *Detector {
	return &Detector{
		Calls: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "langdetect_detect_calls_total",
			Help: "Total number of DetectAll calls.",
		}),
		EmptyResults: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "langdetect_empty_results_total",
			Help: "Total number of DetectAll calls that returned no candidates.",
		}),
		NGramCount: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "langdetect_ngram_count",
			Help:    "Number of in-vocabulary n-grams extracted per call.",
			Buckets: prometheus.ExponentialBuckets(1, 4, 8),
		}),
		TrialLength: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "langdetect_trial_iterations",
			Help:    "Number of iterations a Monte-Carlo trial ran before converging or hitting the iteration limit.",
			Buckets: prometheus.ExponentialBuckets(5, 2, 12),
		}),
	}
}

// MustRegister registers every collector on reg, panicking on a
// registration error (duplicate metric names), matching promauto's
// fail-fast style without pulling in the global default registerer.
func (d *Detector) MustRegister(reg prometheus.Registerer) {
	reg.MustRegister(d.Calls, d.EmptyResults, d.NGramCount, d.TrialLength)
}
