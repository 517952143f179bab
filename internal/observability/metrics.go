package observability

import (
	"github.com/prometheus/client_golang/prometheus"

	"productdb/internal/model"
)

// Fallback reasons.
const (
	ReasonNoCredential = "no_credential"
	ReasonRequestError = "request_error"
	ReasonMalformed    = "malformed_response"
)

// Metrics counts what a run produced. All methods are safe on a nil *Metrics.
type Metrics struct {
	Registry  *prometheus.Registry
	Rows      *prometheus.CounterVec
	Fallbacks *prometheus.CounterVec
	Requests  prometheus.Counter
}

func NewMetrics() *Metrics {
	m := &Metrics{
		Registry: prometheus.NewRegistry(),
		Rows: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "catalog_rows_total",
				Help: "Catalog rows written, by source",
			},
			[]string{"source"},
		),
		Fallbacks: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "catalog_generation_fallbacks_total",
				Help: "Rows whose content came from the keyword fallback, by reason",
			},
			[]string{"reason"},
		),
		Requests: prometheus.NewCounter(
			prometheus.CounterOpts{
				Name: "catalog_generation_requests_total",
				Help: "Generation requests sent",
			},
		),
	}
	m.Registry.MustRegister(m.Rows, m.Fallbacks, m.Requests)
	return m
}

func (m *Metrics) ObserveRow(source model.Source) {
	if m == nil {
		return
	}
	m.Rows.WithLabelValues(string(source)).Inc()
}

func (m *Metrics) ObserveRequest() {
	if m == nil {
		return
	}
	m.Requests.Inc()
}

func (m *Metrics) ObserveFallback(reason string) {
	if m == nil {
		return
	}
	m.Fallbacks.WithLabelValues(reason).Inc()
}

// WriteTextfile dumps the counters in the node_exporter textfile format.
func (m *Metrics) WriteTextfile(path string) error {
	return prometheus.WriteToTextfile(path, m.Registry)
}

// Totals flattens the registry into "name" or "name{value}" keys, for the run summary.
func (m *Metrics) Totals() (map[string]float64, error) {
	families, err := m.Registry.Gather()
	if err != nil {
		return nil, err
	}
	out := map[string]float64{}
	for _, mf := range families {
		for _, metric := range mf.GetMetric() {
			key := mf.GetName()
			if pairs := metric.GetLabel(); len(pairs) > 0 {
				key += "{" + pairs[0].GetValue() + "}"
			}
			out[key] = metric.GetCounter().GetValue()
		}
	}
	return out, nil
}
