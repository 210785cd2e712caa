package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// BenchCollector records per-iteration benchmark observations as Prometheus
// metrics, labeled by benchmark mode ("single", "process", "thread").
// It implements the coordinators' Observer seam.
type BenchCollector struct {
	iterations     *prometheus.HistogramVec
	mismatches     *prometheus.CounterVec
	workerFailures *prometheus.CounterVec
}

// NewBenchCollector creates a collector and registers its metrics with reg.
func NewBenchCollector(reg prometheus.Registerer) *BenchCollector {
	c := &BenchCollector{
		iterations: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "concbench_iteration_seconds",
			Help:    "Wall-clock duration of one benchmark iteration.",
			Buckets: prometheus.ExponentialBuckets(1e-5, 4, 12),
		}, []string{"mode"}),
		mismatches: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "concbench_sum_mismatch_total",
			Help: "Iterations whose sum differed from iteration 0.",
		}, []string{"mode"}),
		workerFailures: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "concbench_worker_failure_total",
			Help: "Workers that exited abnormally.",
		}, []string{"mode"}),
	}
	reg.MustRegister(c.iterations, c.mismatches, c.workerFailures)
	return c
}

// ObserveIteration records one iteration's elapsed time for a mode.
func (c *BenchCollector) ObserveIteration(mode string, elapsed time.Duration) {
	c.iterations.WithLabelValues(mode).Observe(elapsed.Seconds())
}

// CountMismatch records a sum mismatch warning for a mode.
func (c *BenchCollector) CountMismatch(mode string) {
	c.mismatches.WithLabelValues(mode).Inc()
}

// CountWorkerFailure records an abnormal worker exit for a mode.
func (c *BenchCollector) CountWorkerFailure(mode string) {
	c.workerFailures.WithLabelValues(mode).Inc()
}

// Serve exposes the registry's metrics over HTTP at /metrics. It blocks,
// so callers run it in a goroutine; the listener lives for the process
// lifetime.
func Serve(addr string, reg *prometheus.Registry) error {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{}))
	return http.ListenAndServe(addr, mux)
}
