package handler

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	ordersCreated = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "glowgroove",
		Subsystem: "orders",
		Name:      "created_total",
		Help:      "Total number of orders created",
	})

	ordersCancelled = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "glowgroove",
		Subsystem: "orders",
		Name:      "cancelled_total",
		Help:      "Total number of orders cancelled",
	})

	insufficientStock = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "glowgroove",
		Subsystem: "orders",
		Name:      "insufficient_stock_total",
		Help:      "Total number of requests rejected for insufficient stock",
	})

	paymentsConfirmed = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "glowgroove",
		Subsystem: "payments",
		Name:      "confirmations_total",
		Help:      "Total number of successfully handled payment confirmation events",
	}, []string{"source"})

	webhooksRejected = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "glowgroove",
		Subsystem: "payments",
		Name:      "webhooks_rejected_total",
		Help:      "Total number of webhooks rejected for an invalid signature",
	})
)
