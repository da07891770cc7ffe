package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "scatter"

var (
	eventsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "session",
		Name:      "events_total",
		Help:      "Number of state change events processed by kind.",
	}, []string{"kind"})

	viewDuration = prometheus.NewHistogram(prometheus.HistogramOpts{
		Namespace: namespace,
		Subsystem: "session",
		Name:      "view_duration_seconds",
		Help:      "Time spent deriving a view from the plot state.",
		Buckets:   prometheus.ExponentialBuckets(0.00001, 4, 8),
	})

	pointsRendered = prometheus.NewGauge(prometheus.GaugeOpts{
		Namespace: namespace,
		Subsystem: "plot",
		Name:      "points",
		Help:      "Number of marks in the last derived view.",
	})

	datasetLoads = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "dataset",
		Name:      "loads_total",
		Help:      "Number of dataset loads by outcome.",
	}, []string{"outcome"})
)

func init() {
	prometheus.MustRegister(eventsTotal, viewDuration, pointsRendered, datasetLoads)
}

func IncEvent(kind string) {
	eventsTotal.WithLabelValues(kind).Inc()
}

func ObserveView(seconds float64, points int) {
	viewDuration.Observe(seconds)
	pointsRendered.Set(float64(points))
}

func IncLoad(ok bool) {
	outcome := "ok"
	if !ok {
		outcome = "error"
	}
	datasetLoads.WithLabelValues(outcome).Inc()
}
