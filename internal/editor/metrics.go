package editor

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics counts editor activity. A nil *Metrics records nothing.
type Metrics struct {
	edits              *prometheus.CounterVec
	parseFallbacks     prometheus.Counter
	validationFailures *prometheus.CounterVec
}

// NewMetrics creates the editor collectors and registers them on reg
// (prometheus.DefaultRegisterer when nil).
func NewMetrics(namespace string, reg prometheus.Registerer) *Metrics {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}

	m := &Metrics{
		edits: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "editor_edits_total",
				Help:      "Total number of applied editor operations",
			},
			[]string{"op"},
		),
		parseFallbacks: prometheus.NewCounter(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "editor_parse_fallbacks_total",
				Help:      "Expressions replaced by the default schedule because they were malformed",
			},
		),
		validationFailures: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "editor_validation_failures_total",
				Help:      "Edits that left the schedule incomplete",
			},
			[]string{"reason"},
		),
	}

	reg.MustRegister(m.edits, m.parseFallbacks, m.validationFailures)

	return m
}

func (m *Metrics) recordEdit(op string) {
	if m == nil {
		return
	}
	m.edits.WithLabelValues(op).Inc()
}

func (m *Metrics) recordParseFallback() {
	if m == nil {
		return
	}
	m.parseFallbacks.Inc()
}

func (m *Metrics) recordValidationFailure(reason string) {
	if m == nil {
		return
	}
	m.validationFailures.WithLabelValues(reason).Inc()
}
