// Package metrics defines and registers all custom Prometheus metrics for
// the invoicing API. It is the single source of truth for metric names,
// labels, and help strings.
//
// Metrics use promauto, so importing this package is enough to register them
// with the default Prometheus registry.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "invoicing"

// InvoicesCreatedTotal counts newly created invoices.
// Label:
//   - status: the status the invoice was created with ("draft", "pending", ...)
var InvoicesCreatedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "invoices_created_total",
		Help:      "Total number of invoices created, by initial status.",
	},
	[]string{"status"},
)

// InvoicesDeletedTotal counts deleted invoices.
var InvoicesDeletedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "invoices_deleted_total",
		Help:      "Total number of invoices deleted.",
	},
)

// InvoicesInStore tracks the current size of the invoice collection. Fed by
// a store subscriber, so it follows every mutation synchronously.
var InvoicesInStore = promauto.NewGauge(
	prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "invoices_in_store",
		Help:      "Current number of invoices held in the in-memory store.",
	},
)

// ClientsInStore tracks the current size of the client collection.
var ClientsInStore = promauto.NewGauge(
	prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "clients_in_store",
		Help:      "Current number of clients held in the in-memory store.",
	},
)
