package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "sales_charts"

// Recorder registra o resultado das buscas de vendas
type Recorder interface {
	ObserveRefresh(source string, duration time.Duration, err error)
	SetSnapshotRecords(count int)
}

type Metrics struct {
	registry        *prometheus.Registry
	refreshTotal    *prometheus.CounterVec
	refreshDuration *prometheus.HistogramVec
	snapshotRecords prometheus.Gauge
}

// New cria as métricas em um registro próprio, junto com as métricas do processo Go
func New() *Metrics {
	registry := prometheus.NewRegistry()

	m := &Metrics{
		registry: registry,
		refreshTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "snapshot_refresh_total",
			Help:      "Buscas de vendas por origem e resultado.",
		}, []string{"source", "result"}),
		refreshDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "snapshot_refresh_duration_seconds",
			Help:      "Duração das buscas de vendas.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"source"}),
		snapshotRecords: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "snapshot_records",
			Help:      "Quantidade de registros no snapshot atual.",
		}),
	}

	registry.MustRegister(
		m.refreshTotal,
		m.refreshDuration,
		m.snapshotRecords,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	return m
}

func (m *Metrics) ObserveRefresh(source string, duration time.Duration, err error) {
	result := "success"
	if err != nil {
		result = "error"
	}

	m.refreshTotal.WithLabelValues(source, result).Inc()
	m.refreshDuration.WithLabelValues(source).Observe(duration.Seconds())
}

func (m *Metrics) SetSnapshotRecords(count int) {
	m.snapshotRecords.Set(float64(count))
}

func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}

// Nop descarta as métricas
type Nop struct{}

func (Nop) ObserveRefresh(string, time.Duration, error) {}

func (Nop) SetSnapshotRecords(int) {}
