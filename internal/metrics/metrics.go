// Package metrics holds the prometheus collectors for compiles and the live
// server.
package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Compile statuses used as the "status" label.
const (
	StatusOK     = "ok"
	StatusError  = "error"
	StatusIssues = "issues"
)

// CompileStatus classifies a compile for the "status" label.
func CompileStatus(ok bool, issues int) string {
	switch {
	case !ok:
		return StatusError
	case issues > 0:
		return StatusIssues
	}
	return StatusOK
}

// Registry holds all metrics for one process.
type Registry struct {
	CompilesTotal    *prometheus.CounterVec
	CompileDuration  prometheus.Histogram
	CacheLookups     *prometheus.CounterVec
	NetNodes         prometheus.Histogram
	NetEdges         prometheus.Histogram
	ConnectedClients prometheus.Gauge

	registry *prometheus.Registry
}

// NewRegistry creates a registry with all metrics initialized.
func NewRegistry() *Registry {
	r := &Registry{registry: prometheus.NewRegistry()}
	auto := promauto.With(r.registry)

	r.CompilesTotal = auto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "inetgraph_compiles_total",
			Help: "Total number of compiled documents",
		},
		[]string{"status"},
	)

	r.CompileDuration = auto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "inetgraph_compile_duration_seconds",
			Help:    "Time to parse, build and check one document",
			Buckets: []float64{.0001, .0005, .001, .005, .01, .05, .1, .5, 1},
		},
	)

	r.CacheLookups = auto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "inetgraph_cache_lookups_total",
			Help: "Compile cache lookups by result",
		},
		[]string{"result"},
	)

	r.NetNodes = auto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "inetgraph_net_nodes",
			Help:    "Number of nodes per compiled document",
			Buckets: prometheus.ExponentialBuckets(1, 4, 8),
		},
	)

	r.NetEdges = auto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "inetgraph_net_edges",
			Help:    "Number of edges per compiled document",
			Buckets: prometheus.ExponentialBuckets(1, 4, 8),
		},
	)

	r.ConnectedClients = auto.NewGauge(
		prometheus.GaugeOpts{
			Name: "inetgraph_connected_clients",
			Help: "Current number of live editor connections",
		},
	)

	return r
}

// RecordCompile records one compile. cached is true when the result came from
// the compile cache, in which case the duration covers only the lookup.
func (r *Registry) RecordCompile(status string, cached bool, duration time.Duration, nodes, edges int) {
	r.CompilesTotal.WithLabelValues(status).Inc()
	r.CompileDuration.Observe(duration.Seconds())
	r.NetNodes.Observe(float64(nodes))
	r.NetEdges.Observe(float64(edges))
	if cached {
		r.CacheLookups.WithLabelValues("hit").Inc()
	} else {
		r.CacheLookups.WithLabelValues("miss").Inc()
	}
}

// Handler serves the registry in the prometheus exposition format.
func (r *Registry) Handler() http.Handler {
	return promhttp.HandlerFor(r.registry, promhttp.HandlerOpts{})
}
