// Package metrics defines and registers all custom Prometheus metrics for the
// nursery API. It is the single source of truth for metric names, labels, and
// help strings.
//
// Metrics are registered with the default Prometheus registry on import via
// promauto.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "nursery"

// --- Access metrics ---

// GateDecisionsTotal counts role gate evaluations.
// Label:
//   - outcome: "granted", "denied_no_identity", or "denied_wrong_role"
var GateDecisionsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "gate_decisions_total",
		Help:      "Total number of role gate decisions, labelled by outcome.",
	},
	[]string{"outcome"},
)

// SessionsResolvedTotal counts session resolution attempts.
// Label:
//   - result: "identified" (profile resolved), "anonymous" (no usable
//     identity), or "error" (session store unreachable)
var SessionsResolvedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "sessions_resolved_total",
		Help:      "Total number of session resolution attempts, labelled by result.",
	},
	[]string{"result"},
)

// --- Stock event metrics ---

// StockEventsProcessedTotal counts stock events that completed processing.
// Labels:
//   - reason: the adjustment reason reported by the sender (e.g. "restock")
//   - source: the event source (e.g. "warehouse_app")
var StockEventsProcessedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "stock_events_processed_total",
		Help:      "Total number of stock events successfully processed.",
	},
	[]string{"reason", "source"},
)

// StockEventsErrorsTotal counts stock events that failed processing.
// Label:
//   - reason: short description of the failure (e.g. "process_failed")
var StockEventsErrorsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "stock_events_errors_total",
		Help:      "Total number of stock events that failed processing.",
	},
	[]string{"reason"},
)

// StockQueueDepth tracks the current number of events waiting in each worker channel.
// Label:
//   - worker_id: numeric worker index (e.g. "0", "1", …)
var StockQueueDepth = promauto.NewGaugeVec(
	prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "stock_queue_depth",
		Help:      "Current number of events pending in each dispatcher worker channel.",
	},
	[]string{"worker_id"},
)

// --- Order metrics ---

// OrdersPlacedTotal counts newly placed orders.
var OrdersPlacedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "orders_placed_total",
		Help:      "Total number of orders placed.",
	},
)
