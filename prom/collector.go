// Package prom exports identification key metrics to Prometheus.
package prom

import (
	"time"

	"github.com/hupe1980/idkey"
	"github.com/prometheus/client_golang/prometheus"
)

// Collector implements idkey.MetricsCollector with Prometheus metrics.
type Collector struct {
	opLatency     *prometheus.HistogramVec
	visible       prometheus.Gauge
	catalogItems  prometheus.Gauge
	activeFilters prometheus.Histogram
	passes        *prometheus.CounterVec
}

var _ idkey.MetricsCollector = (*Collector)(nil)

// New creates a Collector and registers its metrics with reg.
// A nil reg uses prometheus.DefaultRegisterer.
func New(reg prometheus.Registerer) *Collector {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}

	c := &Collector{
		opLatency: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "idkey_operation_latency_seconds",
			Help:    "Latency of key operations",
			Buckets: prometheus.ExponentialBuckets(0.00001, 4, 10),
		}, []string{"op", "status"}),
		visible: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "idkey_visible_items",
			Help: "Number of items visible after the last pass",
		}),
		catalogItems: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "idkey_catalog_items",
			Help: "Number of items in the loaded catalog",
		}),
		activeFilters: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "idkey_active_filters",
			Help:    "Number of active filters per pass",
			Buckets: prometheus.LinearBuckets(1, 1, 10),
		}),
		passes: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "idkey_passes_total",
			Help: "Total evaluation passes",
		}, []string{"status"}),
	}

	reg.MustRegister(c.opLatency, c.visible, c.catalogItems, c.activeFilters, c.passes)
	return c
}

func status(err error) string {
	if err != nil {
		return "error"
	}
	return "success"
}

// RecordLoad implements idkey.MetricsCollector.
func (c *Collector) RecordLoad(items int, d time.Duration, err error) {
	c.opLatency.WithLabelValues("load", status(err)).Observe(d.Seconds())
	if err == nil {
		c.catalogItems.Set(float64(items))
	}
}

// RecordPass implements idkey.MetricsCollector.
func (c *Collector) RecordPass(activeFilters, visible int, d time.Duration, err error) {
	c.opLatency.WithLabelValues("pass", status(err)).Observe(d.Seconds())
	c.passes.WithLabelValues(status(err)).Inc()
	c.activeFilters.Observe(float64(activeFilters))
	c.visible.Set(float64(visible))
}

// RecordReset implements idkey.MetricsCollector.
func (c *Collector) RecordReset(visible int, d time.Duration) {
	c.opLatency.WithLabelValues("reset", "success").Observe(d.Seconds())
	c.visible.Set(float64(visible))
}
