package services

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	queryTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "routing_queries_total",
		Help: "Graph queries by kind and outcome.",
	}, []string{"kind", "outcome"})

	queryDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "routing_query_duration_seconds",
		Help:    "Latency of graph queries including the store fetch.",
		Buckets: prometheus.ExponentialBuckets(0.0005, 2, 14), // 0.5ms to ~4s
	}, []string{"kind"})

	snapshotLoads = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "routing_snapshot_loads_total",
		Help: "Vertex/edge snapshot loads from the graph store.",
	}, []string{"source"})
)

const (
	kindNearest   = "nearest"
	kindPath      = "shortest_path"
	kindReachable = "reachable"

	outcomeOK     = "ok"
	outcomeNoPath = "no_path"
	outcomeError  = "error"
)
