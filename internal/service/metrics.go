package service

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Metrics records roast pipeline outcomes. A nil *Metrics records nothing.
type Metrics struct {
	outcomes      *prometheus.CounterVec
	stageDuration *prometheus.HistogramVec
}

// NewMetrics creates and registers the pipeline collectors on reg.
func NewMetrics(reg prometheus.Registerer) (*Metrics, error) {
	m := &Metrics{
		outcomes: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "roast_requests_total",
				Help: "Roast requests by final outcome.",
			},
			[]string{"outcome"},
		),
		stageDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "roast_stage_duration_seconds",
				Help:    "Duration of the extract and generate stages.",
				Buckets: []float64{.01, .05, .1, .25, .5, 1, 2.5, 5, 10, 30, 60},
			},
			[]string{"stage"},
		),
	}
	for _, c := range []prometheus.Collector{m.outcomes, m.stageDuration} {
		if err := reg.Register(c); err != nil {
			return nil, err
		}
	}
	return m, nil
}

func (m *Metrics) outcome(label string) {
	if m == nil {
		return
	}
	m.outcomes.WithLabelValues(label).Inc()
}

func (m *Metrics) since(stage string, start time.Time) {
	if m == nil {
		return
	}
	m.stageDuration.WithLabelValues(stage).Observe(time.Since(start).Seconds())
}
