package service

import "github.com/prometheus/client_golang/prometheus"

// Metrics holds the analysis counters. A nil *Metrics is valid and records
// nothing, so tests and ad-hoc wiring can skip registration.
type Metrics struct {
	analyzed *prometheus.CounterVec
}

// NewMetrics registers the analysis metrics on the given registerer.
func NewMetrics(reg prometheus.Registerer) (*Metrics, error) {
	m := &Metrics{
		analyzed: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "documents_analyzed_total",
				Help: "Total number of documents scored, by outcome.",
			},
			[]string{"outcome"},
		),
	}
	if err := reg.Register(m.analyzed); err != nil {
		return nil, err
	}
	return m, nil
}

func (m *Metrics) observe(err error) {
	if m == nil {
		return
	}
	outcome := "ok"
	if err != nil {
		outcome = "error"
	}
	m.analyzed.WithLabelValues(outcome).Inc()
}
