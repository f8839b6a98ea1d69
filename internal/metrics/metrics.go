package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// AuctionsClosed counts closer results by outcome (won, no_bids, skipped, error).
	AuctionsClosed = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "auction",
		Subsystem: "settlement",
		Name:      "auctions_closed_total",
		Help:      "Auctions processed by the closer, by outcome.",
	}, []string{"outcome"})

	// Charges counts charger results by processor status, or "error" when no charge was recorded.
	Charges = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "auction",
		Subsystem: "settlement",
		Name:      "charges_total",
		Help:      "Winner charges attempted by the charger, by resulting status.",
	}, []string{"status"})

	// BidsPlaced counts accepted bids.
	BidsPlaced = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "auction",
		Name:      "bids_placed_total",
		Help:      "Bids accepted.",
	})

	HTTPRequests = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "auction",
		Subsystem: "http",
		Name:      "requests_total",
		Help:      "HTTP requests by route and status code.",
	}, []string{"method", "route", "status"})

	HTTPDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "auction",
		Subsystem: "http",
		Name:      "request_duration_seconds",
		Help:      "HTTP request latency by route.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"method", "route"})
)
