package minter

import "github.com/prometheus/client_golang/prometheus"

var (
	mintsCounter = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "mints_total",
		Help: "Counter of successfully minted assets",
	})
	supplyIssuedGauge = prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "supply_issued",
		Help: "Count of assets issued against the supply cap",
	})
)

func init() {
	prometheus.MustRegister(mintsCounter)
	prometheus.MustRegister(supplyIssuedGauge)
}
