// Package metrics defines and registers all custom Prometheus metrics for
// the iDekita API. It is the single source of truth for metric names,
// labels, and help strings; everything registers with the default registry
// at package init via promauto.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "idekita"

// EndorsementsTotal counts endorsement attempts by outcome.
// Label:
//   - result: "created", "duplicate", or "error"
var EndorsementsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "endorsements_total",
		Help:      "Total number of endorsement attempts, by result.",
	},
	[]string{"result"},
)

// HandleProbesTotal counts availability probes by outcome.
// Label:
//   - result: "available", "taken", "invalid", or "error"
var HandleProbesTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "handle_probes_total",
		Help:      "Total number of username availability probes, by result.",
	},
	[]string{"result"},
)

// RegistrationsTotal counts registration attempts by outcome.
// Label:
//   - result: "created", "taken", "invalid", or "error"
var RegistrationsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "registrations_total",
		Help:      "Total number of username registration attempts, by result.",
	},
	[]string{"result"},
)

// FeedPagesTotal counts feed pages served.
// Label:
//   - page: "first" or "next"
var FeedPagesTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "feed_pages_total",
		Help:      "Total number of feed pages served, by page kind.",
	},
	[]string{"page"},
)

// FeedPageDuration measures how long one feed page query takes.
var FeedPageDuration = promauto.NewHistogram(
	prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "feed_page_duration_seconds",
		Help:      "Duration of feed page queries end-to-end.",
		Buckets:   prometheus.DefBuckets,
	},
)

// NotificationQueueDepth tracks the number of notifications waiting in each
// dispatcher worker channel.
// Label:
//   - worker_id: numeric worker index (e.g. "0", "1", ...)
var NotificationQueueDepth = promauto.NewGaugeVec(
	prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "notification_queue_depth",
		Help:      "Current number of notifications pending in each dispatcher worker channel.",
	},
	[]string{"worker_id"},
)
