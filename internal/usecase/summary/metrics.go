package summary

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// MetricsRecorder records pipeline metrics. The interface abstracts the
// metrics backend so tests can inject a recorder and read what the
// pipeline observed.
type MetricsRecorder interface {
	// RecordSentenceCount records the number of sentences in a summary.
	RecordSentenceCount(count int)

	// RecordDuration records the wall time of a summarization call.
	RecordDuration(duration time.Duration)

	// RecordDegenerateFallback increments the counter of corpora with no
	// measurable similarity, where the uniform-weight fallback applied.
	RecordDegenerateFallback()

	// RecordEmptyResult increments the counter of calls that returned an
	// empty summary for a degenerate input.
	RecordEmptyResult()
}

// PrometheusMetrics implements MetricsRecorder using Prometheus.
type PrometheusMetrics struct {
	sentenceHistogram prometheus.Histogram
	durationHistogram prometheus.Histogram
	degenerateCounter prometheus.Counter
	emptyCounter      prometheus.Counter
}

// getOrCreateHistogram gets an existing histogram or creates a new one if it doesn't exist.
func getOrCreateHistogram(opts prometheus.HistogramOpts) prometheus.Histogram {
	h := prometheus.NewHistogram(opts)
	if err := prometheus.Register(h); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			return are.ExistingCollector.(prometheus.Histogram)
		}
		return promauto.NewHistogram(opts)
	}
	return h
}

// getOrCreateCounter gets an existing counter or creates a new one if it doesn't exist.
func getOrCreateCounter(opts prometheus.CounterOpts) prometheus.Counter {
	c := prometheus.NewCounter(opts)
	if err := prometheus.Register(c); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			return are.ExistingCollector.(prometheus.Counter)
		}
		return promauto.NewCounter(opts)
	}
	return c
}

// NewPrometheusMetrics creates the production metrics recorder. Metric
// registration is idempotent, so multiple services can share the default
// registry.
func NewPrometheusMetrics() *PrometheusMetrics {
	return &PrometheusMetrics{
		sentenceHistogram: getOrCreateHistogram(prometheus.HistogramOpts{
			Name:    "summary_sentences",
			Help:    "Number of sentences in generated summaries",
			Buckets: []float64{1, 2, 5, 10, 20, 50, 100},
		}),
		durationHistogram: getOrCreateHistogram(prometheus.HistogramOpts{
			Name:    "summary_duration_seconds",
			Help:    "Summarization duration in seconds",
			Buckets: []float64{.001, .005, .01, .05, .1, .5, 1, 5, 10},
		}),
		degenerateCounter: getOrCreateCounter(prometheus.CounterOpts{
			Name: "summary_degenerate_fallback_total",
			Help: "Total number of corpora with no measurable similarity",
		}),
		emptyCounter: getOrCreateCounter(prometheus.CounterOpts{
			Name: "summary_empty_results_total",
			Help: "Total number of summarization calls returning an empty result",
		}),
	}
}

// RecordSentenceCount records the number of sentences in a summary.
func (m *PrometheusMetrics) RecordSentenceCount(count int) {
	m.sentenceHistogram.Observe(float64(count))
}

// RecordDuration records the wall time of a summarization call.
func (m *PrometheusMetrics) RecordDuration(duration time.Duration) {
	m.durationHistogram.Observe(duration.Seconds())
}

// RecordDegenerateFallback increments the degenerate-corpus counter.
func (m *PrometheusMetrics) RecordDegenerateFallback() {
	m.degenerateCounter.Inc()
}

// RecordEmptyResult increments the empty-result counter.
func (m *PrometheusMetrics) RecordEmptyResult() {
	m.emptyCounter.Inc()
}

// NoopMetrics implements MetricsRecorder without recording anything.
// Useful for CLI invocations where no metrics endpoint exists.
type NoopMetrics struct{}

// RecordSentenceCount does nothing.
func (NoopMetrics) RecordSentenceCount(int) {}

// RecordDuration does nothing.
func (NoopMetrics) RecordDuration(time.Duration) {}

// RecordDegenerateFallback does nothing.
func (NoopMetrics) RecordDegenerateFallback() {}

// RecordEmptyResult does nothing.
func (NoopMetrics) RecordEmptyResult() {}
