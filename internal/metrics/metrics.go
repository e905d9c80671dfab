package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	log "github.com/sirupsen/logrus"
)

var (
	ErrorsCounter = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "engine_errors_total",
			Help: "Total number of occurred errors.",
		},
		[]string{"type"},
	)
	ScoringDuration = prometheus.NewSummary(
		prometheus.SummaryOpts{
			Name:       "engine_catalog_scoring_duration_seconds",
			Help:       "Duration of scoring the full catalog against preferences.",
			Objectives: map[float64]float64{0.5: 0.05, 0.9: 0.01, 0.99: 0.001},
		},
	)
	DigestsGeneratedCounter = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "engine_digests_generated_total",
			Help: "Total number of freshly generated digest snapshots.",
		},
	)
	StatusUpdatesCounter = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "engine_status_updates_total",
			Help: "Total number of recorded application status updates.",
		},
	)
)

func StartMetricsServer() {

	prometheus.MustRegister(ErrorsCounter)
	prometheus.MustRegister(ScoringDuration)
	prometheus.MustRegister(DigestsGeneratedCounter)
	prometheus.MustRegister(StatusUpdatesCounter)

	http.Handle("/metrics", promhttp.Handler())
	go func() {
		log.Fatal(http.ListenAndServe(":8080", nil))
	}()
}
