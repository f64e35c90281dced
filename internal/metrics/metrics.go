// Package metrics exposes the platform's prometheus collectors on the
// default registry.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	StatusTransitions = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "delivery_order_status_transitions_total",
		Help: "Committed order status transitions.",
	}, []string{"from", "to"})

	Assignments = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "delivery_order_assignments_total",
		Help: "Partner assignment attempts by outcome.",
	}, []string{"outcome"})

	WalletAppends = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "delivery_wallet_transactions_total",
		Help: "Wallet ledger appends by type and outcome.",
	}, []string{"type", "outcome"})

	PushDeliveries = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "delivery_push_notifications_total",
		Help: "Push notification deliveries by outcome.",
	}, []string{"outcome"})
)
