package controllers

import "github.com/prometheus/client_golang/prometheus"

type Metrics struct {
	documents  *prometheus.CounterVec
	rejections *prometheus.CounterVec
}

func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		documents: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "employee_documents_rendered_total",
				Help: "Total number of rendered employee documents",
			},
			[]string{"kind"},
		),
		rejections: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "employee_requests_rejected_total",
				Help: "Total number of employee mutations rejected by a guard",
			},
			[]string{"reason"},
		),
	}
	reg.MustRegister(m.documents, m.rejections)

	return m
}

func (m *Metrics) documentRendered(kind string) {
	if m != nil {
		m.documents.WithLabelValues(kind).Inc()
	}
}

func (m *Metrics) rejected(reason string) {
	if m != nil {
		m.rejections.WithLabelValues(reason).Inc()
	}
}
