// apps/go-server/internal/httpserver/metrics.go
//
// Prometheus counters for games started, guesses and finished games,
// served from a private registry on /metrics.

package httpserver

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// metrics owns a private registry so each Server can be built independently.
type metrics struct {
	reg           *prometheus.Registry
	gamesStarted  *prometheus.CounterVec
	guesses       *prometheus.CounterVec
	gamesFinished *prometheus.CounterVec
}

func newMetrics() *metrics {
	m := &metrics{
		reg: prometheus.NewRegistry(),
		gamesStarted: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "endgame",
			Name:      "games_started_total",
			Help:      "Games started, by word mode.",
		}, []string{"mode"}),
		guesses: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "endgame",
			Name:      "guesses_total",
			Help:      "Letter guesses, by result (correct, wrong, repeat, rejected).",
		}, []string{"result"}),
		gamesFinished: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "endgame",
			Name:      "games_finished_total",
			Help:      "Games finished, by outcome.",
		}, []string{"outcome"}),
	}
	m.reg.MustRegister(
		m.gamesStarted, m.guesses, m.gamesFinished,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return m
}

func (m *metrics) handler() http.Handler {
	return promhttp.HandlerFor(m.reg, promhttp.HandlerOpts{})
}
