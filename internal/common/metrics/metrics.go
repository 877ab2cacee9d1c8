// internal/common/metrics/metrics.go
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	SourceFetchesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "source_fetches_total",
			Help: "Total number of directory fetches by source",
		},
		[]string{"source"},
	)

	SourceFetchesFailed = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "source_fetches_failed_total",
			Help: "Total number of failed directory fetches by source",
		},
		[]string{"source", "error_code"},
	)

	SourceFetchDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name: "source_fetch_duration_seconds",
			Help: "Duration of directory fetches in seconds",
		},
		[]string{"source"},
	)

	RecordsNormalized = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "records_normalized_total",
			Help: "Total number of raw records normalized by source",
		},
		[]string{"source"},
	)

	RecordsDropped = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "records_dropped_total",
			Help: "Total number of records dropped during normalization or filtering",
		},
		[]string{"source", "reason"},
	)

	ScansCompleted = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "scans_completed_total",
			Help: "Total number of scans completed by outcome",
		},
		[]string{"status"},
	)

	ScanDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name: "scan_duration_seconds",
			Help: "Duration of full pipeline scans in seconds",
		},
		[]string{"industry"},
	)

	BusinessesMerged = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "businesses_merged",
			Help: "Number of unique businesses produced by the last scan",
		},
		[]string{"industry"},
	)

	CacheHits = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "scan_cache_events_total",
			Help: "Scan cache hits and misses",
		},
		[]string{"result"},
	)
)
