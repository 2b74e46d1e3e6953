package utils

import "github.com/prometheus/client_golang/prometheus"

// BookingMetrics exposes counters for catalog queries and wizard transitions.
type BookingMetrics struct {
	catalogQueries *prometheus.CounterVec
	transitions    *prometheus.CounterVec
	submitLatency  prometheus.Histogram
}

func NewBookingMetrics(reg prometheus.Registerer) *BookingMetrics {
	m := &BookingMetrics{
		catalogQueries: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "evently",
			Subsystem: "catalog",
			Name:      "queries_total",
			Help:      "Catalog queries by sort key",
		}, []string{"sort"}),
		transitions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "evently",
			Subsystem: "booking",
			Name:      "transitions_total",
			Help:      "Booking wizard transitions by action and outcome",
		}, []string{"action", "outcome"}),
		submitLatency: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "evently",
			Subsystem: "booking",
			Name:      "submit_seconds",
			Help:      "Wall time spent finalizing a booking submission",
			Buckets:   prometheus.DefBuckets,
		}),
	}
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	reg.MustRegister(m.catalogQueries, m.transitions, m.submitLatency)
	return m
}

func (m *BookingMetrics) ObserveQuery(sort string) {
	if m == nil {
		return
	}
	m.catalogQueries.WithLabelValues(sort).Inc()
}

func (m *BookingMetrics) ObserveTransition(action, outcome string) {
	if m == nil {
		return
	}
	m.transitions.WithLabelValues(action, outcome).Inc()
}

func (m *BookingMetrics) ObserveSubmit(seconds float64) {
	if m == nil {
		return
	}
	m.submitLatency.Observe(seconds)
}
