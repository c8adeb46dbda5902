package market

import "github.com/prometheus/client_golang/prometheus"

var (
	auctionsCreatedCounter = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "auctions_created_total",
		Help: "Counter of created auctions",
	})
	bidsCounter = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "bids_total",
		Help: "Counter of accepted bids",
	})
	auctionsFinalizedCounter = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "auctions_finalized_total",
		Help: "Counter of finalized auctions, cancelled ones included",
	})
)

func init() {
	prometheus.MustRegister(auctionsCreatedCounter)
	prometheus.MustRegister(bidsCounter)
	prometheus.MustRegister(auctionsFinalizedCounter)
}
