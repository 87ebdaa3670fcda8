package reiter

import (
	"github.com/prometheus/client_golang/prometheus"
)

type metrics struct {
	pulls   prometheus.Counter
	hits    prometheus.Counter
	length  prometheus.Gauge
	cursors prometheus.Counter
}

func newMetrics(registerer prometheus.Registerer, namespace, subsystem string) *metrics {
	m := metrics{
		pulls: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "source_pulls",
			Help:      "Number of items pulled from the source",
		}),
		hits: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "cache_hits",
			Help:      "Number of advances served from the cache",
		}),
		length: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "cache_length",
			Help:      "Number of items in the cache",
		}),
		cursors: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "cursors",
			Help:      "Number of cursors created",
		}),
	}

	if registerer != nil {
		registerer = prometheus.WrapRegistererWith(
			prometheus.Labels{"component": "reiter"},
			registerer,
		)
		registerer.MustRegister(
			m.pulls,
			m.hits,
			m.length,
			m.cursors,
		)
	}

	return &m
}
