package server

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// metrics holds the server's prometheus instruments on a private registry
// so multiple servers can coexist in tests.
type metrics struct {
	registry       *prometheus.Registry
	analysesScored *prometheus.CounterVec
}

func newMetrics() *metrics {
	registry := prometheus.NewRegistry()
	analysesScored := prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "kiroscore",
		Name:      "analyses_scored_total",
		Help:      "Number of submissions scored, by analysis pathway.",
	}, []string{"pathway"})
	registry.MustRegister(analysesScored)

	return &metrics{
		registry:       registry,
		analysesScored: analysesScored,
	}
}

func (m *metrics) handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}
