// Package metrics exposes daemon counters in the Prometheus format.
package metrics

import (
	"net/http"

	"github.com/genricoloni/radiod/internal/catalog"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/multierr"
)

// Load outcomes used as the "result" label
const (
	ResultOK    = "ok"
	ResultEmpty = "empty"
	ResultError = "error"
)

// Metrics owns a private registry so tests can create as many as they like
type Metrics struct {
	registry *prometheus.Registry

	catalogLoads     *prometheus.CounterVec
	catalogDuration  prometheus.Histogram
	stations         prometheus.Gauge
	artworkFailures  prometheus.Counter
	notificationsOut *prometheus.CounterVec
}

// New creates and registers the collectors
func New() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		catalogLoads: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "radiod_catalog_loads_total",
				Help: "Catalog loads by result",
			},
			[]string{"result"},
		),
		catalogDuration: prometheus.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "radiod_catalog_load_duration_seconds",
				Help:    "Time to fetch and build the station catalog",
				Buckets: prometheus.DefBuckets,
			},
		),
		stations: prometheus.NewGauge(
			prometheus.GaugeOpts{Name: "radiod_catalog_stations", Help: "Stations in the last loaded catalog"},
		),
		artworkFailures: prometheus.NewCounter(
			prometheus.CounterOpts{Name: "radiod_artwork_failures_total", Help: "Station artwork that fell back to the default image"},
		),
		notificationsOut: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "radiod_notifications_total",
				Help: "Now playing notifications by result",
			},
			[]string{"result"},
		),
	}

	m.registry.MustRegister(
		m.catalogLoads,
		m.catalogDuration,
		m.stations,
		m.artworkFailures,
		m.notificationsOut,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return m
}

// ObserveLoad records a finished catalog load
func (m *Metrics) ObserveLoad(res catalog.Result) {
	switch {
	case res.Failed():
		m.catalogLoads.WithLabelValues(ResultError).Inc()
	case len(res.Items) == 0:
		m.catalogLoads.WithLabelValues(ResultEmpty).Inc()
	default:
		m.catalogLoads.WithLabelValues(ResultOK).Inc()
	}

	m.catalogDuration.Observe(res.Elapsed.Seconds())
	if !res.Failed() {
		m.stations.Set(float64(len(res.Items)))
	}
	m.artworkFailures.Add(float64(len(multierr.Errors(res.ArtworkErr))))
}

// ObserveNotification records a notification post
func (m *Metrics) ObserveNotification(err error) {
	if err != nil {
		m.notificationsOut.WithLabelValues(ResultError).Inc()
		return
	}
	m.notificationsOut.WithLabelValues(ResultOK).Inc()
}

// Handler serves the registry in the exposition format
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}
