package jump

import "github.com/prometheus/client_golang/prometheus"

var (
	selectionCounter = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "jump",
		Subsystem: "selector",
		Name:      "selections_total",
		Help:      "Number of keys mapped to a bucket by the selector",
	}, []string{"selector"})

	bucketsGauge = prometheus.NewGaugeVec(prometheus.GaugeOpts{
		Namespace: "jump",
		Subsystem: "selector",
		Name:      "buckets",
		Help:      "Bucket count of the latest selection",
	}, []string{"selector"})
)

func init() {
	prometheus.MustRegister(
		selectionCounter,
		bucketsGauge)
}
