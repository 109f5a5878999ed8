package bench

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Metrics exports benchmark measurements to Prometheus.
//
// All methods are safe on a nil *Metrics, which records nothing.
type Metrics struct {
	duration   *prometheus.HistogramVec
	calls      *prometheus.CounterVec
	mismatches prometheus.Counter
}

// NewMetrics creates the collectors and registers them on reg.
//
// Exported series:
//   - closestpair_bench_duration_seconds{algorithm,size} (histogram)
//   - closestpair_bench_calls_total{algorithm}           (counter)
//   - closestpair_bench_mismatches_total                 (counter)
func NewMetrics(reg prometheus.Registerer) (*Metrics, error) {
	m := &Metrics{
		duration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "closestpair",
			Subsystem: "bench",
			Name:      "duration_seconds",
			Help:      "Wall-clock duration of one closest-pair computation.",
			Buckets:   prometheus.ExponentialBuckets(0.0001, 4, 10),
		}, []string{"algorithm", "size"}),
		calls: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "closestpair",
			Subsystem: "bench",
			Name:      "calls_total",
			Help:      "Number of timed closest-pair computations.",
		}, []string{"algorithm"}),
		mismatches: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "closestpair",
			Subsystem: "bench",
			Name:      "mismatches_total",
			Help:      "Runs where algorithms disagreed on the minimum distance.",
		}),
	}

	for _, c := range []prometheus.Collector{m.duration, m.calls, m.mismatches} {
		if err := reg.Register(c); err != nil {
			return nil, err
		}
	}
	return m, nil
}

func (m *Metrics) observe(algorithm string, size int, d time.Duration) {
	if m == nil {
		return
	}
	m.duration.WithLabelValues(algorithm, strconv.Itoa(size)).Observe(d.Seconds())
	m.calls.WithLabelValues(algorithm).Inc()
}

func (m *Metrics) mismatch() {
	if m == nil {
		return
	}
	m.mismatches.Inc()
}
