package loop

import (
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	handledLabel = "handled"
)

var (
	indexDropped = promauto.NewCounter(prometheus.CounterOpts{
		Name: "dino_index_dropped_total",
		Help: "The number of entities left out of the quadtree because no node contained them.",
	})

	indexEntities = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "dino_index_entities",
		Help: "The number of entities indexed by the last rebuild.",
	})

	collisionsDispatched = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "dino_collisions_total",
		Help: "The overlapping candidates dispatched to the player's collision handler.",
	}, []string{
		handledLabel,
	})

	gamesStarted = promauto.NewCounter(prometheus.CounterOpts{
		Name: "dino_games_total",
		Help: "The number of games started.",
	})
)

func instrumentRebuild(indexed, dropped int) {
	indexEntities.Set(float64(indexed))
	indexDropped.Add(float64(dropped))
}

func instrumentCollision(handled bool) {
	collisionsDispatched.
		With(prometheus.Labels{handledLabel: strconv.FormatBool(handled)}).
		Inc()
}

func instrumentGameStart() {
	gamesStarted.Inc()
}
