// Package metrics provides Prometheus metrics for the phrase search service.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// SearchesTotal counts searches by mode and outcome.
	SearchesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "phrase_search",
			Name:      "searches_total",
			Help:      "Total number of phrase searches",
		},
		[]string{"mode", "status"},
	)

	// SearchDuration measures end-to-end search duration.
	SearchDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "phrase_search",
			Name:      "search_duration_seconds",
			Help:      "Duration of phrase searches in seconds",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"mode"},
	)

	// PagesScanned counts pages read from the corpus.
	PagesScanned = promauto.NewCounter(
		prometheus.CounterOpts{
			Namespace: "phrase_search",
			Name:      "pages_scanned_total",
			Help:      "Total number of pages scanned by searches",
		},
	)

	// Occurrences observes the total occurrence count per search.
	Occurrences = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "phrase_search",
			Name:      "occurrences",
			Help:      "Distribution of occurrences found per search",
			Buckets:   []float64{0, 1, 5, 10, 50, 100, 500, 1000, 5000},
		},
		[]string{"mode"},
	)

	// PagesIngested counts pages written by the ingest command.
	PagesIngested = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "phrase_search",
			Name:      "pages_ingested_total",
			Help:      "Total number of pages ingested from source documents",
		},
		[]string{"status"},
	)
)

// RecordSearch records a completed search.
func RecordSearch(mode, status string, pages, occurrences int, duration float64) {
	SearchesTotal.WithLabelValues(mode, status).Inc()
	SearchDuration.WithLabelValues(mode).Observe(duration)
	PagesScanned.Add(float64(pages))
	if status == "ok" {
		Occurrences.WithLabelValues(mode).Observe(float64(occurrences))
	}
}

// RecordIngest records the pages written (or skipped) for one source document.
func RecordIngest(status string, pages int) {
	PagesIngested.WithLabelValues(status).Add(float64(pages))
}
