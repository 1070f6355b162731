// Package metrics exposes Prometheus counters for page rendering.
package metrics

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "cineverse"

// Metrics owns its registry so tests can build isolated instances.
type Metrics struct {
	registry     *prometheus.Registry
	pageViews    *prometheus.CounterVec
	slugLookups  *prometheus.CounterVec
	catalogueLen prometheus.Gauge
}

func New() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		pageViews: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "page_views_total",
			Help:      "Rendered pages by template.",
		}, []string{"page"}),
		slugLookups: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "slug_lookups_total",
			Help:      "Movie slug lookups by outcome.",
		}, []string{"result"}),
		catalogueLen: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "catalogue_movies",
			Help:      "Movies in the loaded catalogue snapshot.",
		}),
	}

	m.registry.MustRegister(
		m.pageViews,
		m.slugLookups,
		m.catalogueLen,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return m
}

func (m *Metrics) PageView(page string) {
	m.pageViews.WithLabelValues(page).Inc()
}

func (m *Metrics) SlugLookup(found bool) {
	result := "hit"
	if !found {
		result = "miss"
	}
	m.slugLookups.WithLabelValues(result).Inc()
}

func (m *Metrics) SetCatalogueSize(n int) {
	m.catalogueLen.Set(float64(n))
}

// Handler serves the registry in the Prometheus text format.
func (m *Metrics) Handler() fiber.Handler {
	return adaptor.HTTPHandler(promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{}))
}

// PageViews exposes the counter vector for tests.
func (m *Metrics) PageViews() *prometheus.CounterVec {
	return m.pageViews
}

// SlugLookups exposes the counter vector for tests.
func (m *Metrics) SlugLookups() *prometheus.CounterVec {
	return m.slugLookups
}
