// Copyright 2026 The lcqueue Authors
// This file is part of the lcqueue library.
//
// This software is provided "as is", without warranty of any kind,
// express or implied, including but not limited to the warranties
// of merchantability, fitness for a particular purpose and
// noninfringement. In no event shall the authors or copyright
// holders be liable for any claim, damages, or other liability,
// whether in an action of contract, tort or otherwise, arising
// from, out of or in connection with the software or the use or
// other dealings in the software.

// Package metrics exposes the run loop's operational counters in Prometheus
// format. The core queue package is instrumentation-free by design (it is a
// pure-ish reducer); the run loop calls into this package at its observation
// points (step start/end, retry, aggregate fan-in).
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Registry is the process-wide collector set: genuine prometheus/client_golang
// collectors registered directly, rather than sampled into Prometheus text
// format on scrape via a go-metrics adapter, since nothing else in this
// module depends on go-metrics.
type Registry struct {
	QueueDepth     prometheus.Gauge
	StepsTotal     *prometheus.CounterVec
	RetriesTotal   prometheus.Counter
	StepDuration   *prometheus.HistogramVec
	AggregateFanIn prometheus.Histogram
}

// New registers and returns the metric set against reg. Pass
// prometheus.NewRegistry() for an isolated registry (tests), or
// prometheus.DefaultRegisterer for the global one.
func New(reg prometheus.Registerer) *Registry {
	m := &Registry{
		QueueDepth: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "lcrelay",
			Subsystem: "queue",
			Name:      "depth",
			Help:      "Number of top-level workflow values currently held by the run loop.",
		}),
		StepsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "lcrelay",
			Subsystem: "queue",
			Name:      "steps_total",
			Help:      "Number of reducer steps taken, by value variant.",
		}, []string{"variant"}),
		RetriesTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "lcrelay",
			Subsystem: "queue",
			Name:      "retries_total",
			Help:      "Number of reducer steps taken on a top-level Retry value; Retry frames nested inside another value are not counted.",
		}),
		StepDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "lcrelay",
			Subsystem: "queue",
			Name:      "step_duration_seconds",
			Help:      "Wall-clock duration of a single reducer step, by value variant.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"variant"}),
		AggregateFanIn: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "lcrelay",
			Subsystem: "queue",
			Name:      "aggregate_fan_in_size",
			Help:      "Number of Data values collected by an Aggregate by the time it terminates.",
			Buckets:   []float64{1, 2, 4, 8, 16, 32, 64},
		}),
	}
	reg.MustRegister(m.QueueDepth, m.StepsTotal, m.RetriesTotal, m.StepDuration, m.AggregateFanIn)
	return m
}

// Handler returns the standard Prometheus scrape endpoint for reg.
func Handler(reg *prometheus.Registry) http.Handler {
	return promhttp.HandlerFor(reg, promhttp.HandlerOpts{})
}
