// Package metrics holds the Prometheus collectors of the backend.
package metrics

import (
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
)

// Results for Donations
const (
	DonationCreated   = "created"
	DonationDuplicate = "duplicate"
	DonationFailed    = "failed"
)

// Outcomes for Webhooks
const (
	WebhookProcessed        = "processed"
	WebhookIgnored          = "ignored"
	WebhookSignatureInvalid = "signature_invalid"
	WebhookInvalid          = "invalid"
	WebhookUnknownGoal      = "unknown_goal"
	WebhookError            = "error"
)

var RequestCount = prometheus.NewCounterVec(
	prometheus.CounterOpts{
		Name: "requests_total",
		Help: "How many HTTP requests processed, partitioned by status code and HTTP method.",
	},
	[]string{"code", "method", "url"},
)

var RequestDuration = prometheus.NewHistogramVec(
	prometheus.HistogramOpts{
		Name: "request_duration_seconds",
		Help: "The HTTP request latencies in seconds.",
	},
	[]string{"code", "method", "url"},
)

var Donations = prometheus.NewCounterVec(
	prometheus.CounterOpts{
		Name: "donations_total",
		Help: "Confirmed payments written to the donation ledger, partitioned by result.",
	},
	[]string{"result"},
)

var Webhooks = prometheus.NewCounterVec(
	prometheus.CounterOpts{
		Name: "payment_webhooks_total",
		Help: "Payment provider notifications received, partitioned by outcome.",
	},
	[]string{"outcome"},
)

// LiveSubscribers is the number of open live views.
var LiveSubscribers = prometheus.NewGauge(
	prometheus.GaugeOpts{
		Name: "live_subscribers",
		Help: "Number of open live goal views.",
	},
)

var collectors = []prometheus.Collector{
	RequestCount,
	RequestDuration,
	Donations,
	Webhooks,
	LiveSubscribers,
}

// Register registers all collectors with the default registry.
func Register() error {
	for _, c := range collectors {
		if err := prometheus.Register(c); err != nil {
			return fmt.Errorf("could not register %s with Prometheus: %w", c, err)
		}
	}

	return nil
}

// Unregister unregisters all collectors.
//
// This is needed to cleanly exit and to set up the router more than once
// in tests.
func Unregister() bool {
	ok := true
	for _, c := range collectors {
		if !prometheus.Unregister(c) {
			ok = false
		}
	}

	return ok
}
