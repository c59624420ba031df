package main

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	sessionCount = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "dino_ssh_sessions",
		Help: "The number of open game sessions.",
	})

	sessionCountTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "dino_ssh_sessions_total",
		Help: "The total number of game sessions.",
	})
)

func instrumentSessionStart() {
	sessionCount.Inc()
	sessionCountTotal.Inc()
}

func instrumentSessionEnd() {
	sessionCount.Dec()
}
