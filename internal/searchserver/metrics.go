package searchserver

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	queriesTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "lexi_queries_total",
		Help: "Total queries by kind and outcome",
	}, []string{"kind", "outcome"})

	queryDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "lexi_query_duration_seconds",
		Help:    "Query duration in seconds",
		Buckets: prometheus.ExponentialBuckets(0.0001, 2, 16),
	}, []string{"kind"})

	candidatesHistogram = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "lexi_anagram_candidates",
		Help:    "Number of candidate words per anagram decomposition",
		Buckets: []float64{1, 10, 50, 100, 500, 1000, 5000},
	})

	oversizeCounter = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "lexi_oversize_total",
		Help: "Searches refused for having too many hits",
	}, []string{"kind"})
)
