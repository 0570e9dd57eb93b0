// Package metrics exposes Prometheus counters for the triage pipeline.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// ItemsListed counts items returned by inbox listings.
	ItemsListed = promauto.NewCounter(prometheus.CounterOpts{
		Name: "cortexgate_items_listed_total",
		Help: "Total number of items returned by inbox listings.",
	})

	// ItemsSaved counts successful archive operations.
	ItemsSaved = promauto.NewCounter(prometheus.CounterOpts{
		Name: "cortexgate_items_saved_total",
		Help: "Total number of items archived to the knowledge base.",
	})

	// ItemsDismissed counts successful dismiss operations.
	ItemsDismissed = promauto.NewCounter(prometheus.CounterOpts{
		Name: "cortexgate_items_dismissed_total",
		Help: "Total number of items dismissed from the inbox.",
	})

	// ParseFailures counts inbox files that failed to parse even after
	// sanitization.
	ParseFailures = promauto.NewCounter(prometheus.CounterOpts{
		Name: "cortexgate_parse_failures_total",
		Help: "Total number of inbox files skipped as unparsable JSON.",
	})

	// AutoRepairs counts files recovered by punctuation sanitization.
	AutoRepairs = promauto.NewCounter(prometheus.CounterOpts{
		Name: "cortexgate_json_auto_repairs_total",
		Help: "Total number of inbox files repaired by JSON sanitization.",
	})
)
