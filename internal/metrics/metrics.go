package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/mlops-lab/churn-predictor/pkg/models"
)

var (
	predictionsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "churn_predictions_total",
			Help: "Total number of churn predictions.",
		},
		[]string{"prediction", "risk_level"},
	)

	predictionLatency = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Name: "churn_prediction_latency_seconds",
			Help: "Latency of churn predictions.",
		},
	)

	highRiskCustomers = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "churn_high_risk_customers",
			Help: "Number of high risk customers in the most recent batch.",
		},
	)
)

func init() {
	_ = prometheus.Register(predictionsTotal)
	_ = prometheus.Register(predictionLatency)
	_ = prometheus.Register(highRiskCustomers)
}

// RecordPrediction counts one completed prediction by outcome.
func RecordPrediction(prediction string, risk models.RiskLevel) {
	predictionsTotal.WithLabelValues(prediction, string(risk)).Inc()
}

// ObserveLatency records the wall time of one prediction request.
func ObserveLatency(d time.Duration) {
	predictionLatency.Observe(d.Seconds())
}

// SetHighRiskCount updates the gauge to the high-risk count of the most
// recent batch.
func SetHighRiskCount(n int) {
	highRiskCustomers.Set(float64(n))
}

// Handler exposes the prometheus text format for scraping.
func Handler() http.Handler {
	return promhttp.Handler()
}
