// Package metrics exposes operational counters for the dashboard.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	PagesServed = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "dashboard",
		Name:      "pages_served_total",
		Help:      "Number of times the dashboard page was served.",
	})

	QuestionFetches = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "dashboard",
		Name:      "question_fetches_total",
		Help:      "Live question fetch attempts by outcome.",
	}, []string{"status"})

	ObservationsLoaded = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: "dashboard",
		Name:      "observations_loaded",
		Help:      "Observations loaded at startup.",
	})
)

func Handler() http.Handler {
	return promhttp.Handler()
}
