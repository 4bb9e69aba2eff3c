package metricsService

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	PredictionsWritten = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "predictions_written_total",
		Help: "Prediction records persisted by ingestion runs.",
	}, []string{"plan"})

	PredictionsFiltered = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "predictions_filtered_total",
		Help: "Candidates rejected by the classifier's threshold/window filter.",
	}, []string{"plan"})

	PredictionsSettled = promauto.NewCounter(prometheus.CounterOpts{
		Name: "predictions_settled_total",
		Help: "Predictions updated by settlement runs.",
	})
)
