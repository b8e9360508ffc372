package metrics

import "github.com/prometheus/client_golang/prometheus"

// RefineMetrics exposes counters/histograms for suggestion refinement.
type RefineMetrics struct {
	refineTotal   *prometheus.CounterVec
	slotsProduced prometheus.Histogram
	refineLatency prometheus.Histogram
	quotaRejected prometheus.Counter
}

func NewRefineMetrics(reg prometheus.Registerer) *RefineMetrics {
	m := &RefineMetrics{
		refineTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "chouette",
			Subsystem: "refine",
			Name:      "requests_total",
			Help:      "Total refinement requests",
		}, []string{"context", "type"}),
		slotsProduced: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "chouette",
			Subsystem: "refine",
			Name:      "slots_produced",
			Help:      "Number of time slots in the refined suggestion",
			Buckets:   []float64{0, 1, 2, 3, 5, 10},
		}),
		refineLatency: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "chouette",
			Subsystem: "refine",
			Name:      "latency_seconds",
			Help:      "Latency of suggestion refinement",
			Buckets:   prometheus.DefBuckets,
		}),
		quotaRejected: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "chouette",
			Subsystem: "refine",
			Name:      "quota_rejected_total",
			Help:      "Refinement requests rejected by the daily quota",
		}),
	}
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	reg.MustRegister(m.refineTotal, m.slotsProduced, m.refineLatency, m.quotaRejected)
	return m
}

func (m *RefineMetrics) ObserveRefine(contextTag, suggestionType string, slots int, seconds float64) {
	if m == nil {
		return
	}
	if contextTag == "" {
		contextTag = "none"
	}
	m.refineTotal.WithLabelValues(contextTag, suggestionType).Inc()
	m.slotsProduced.Observe(float64(slots))
	m.refineLatency.Observe(seconds)
}

func (m *RefineMetrics) ObserveQuotaRejected() {
	if m == nil {
		return
	}
	m.quotaRejected.Inc()
}
