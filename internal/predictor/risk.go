package predictor

import (
	"math"

	"github.com/mlops-lab/churn-predictor/pkg/models"
)

// Risk tier boundaries on the churn probability. Lower bound inclusive,
// upper bound exclusive.
const (
	riskMediumFloor = 0.30
	riskHighFloor   = 0.70
)

// RiskLevelFor buckets a churn probability into a coarse tier.
func RiskLevelFor(p float64) models.RiskLevel {
	switch {
	case p < riskMediumFloor:
		return models.RiskLow
	case p < riskHighFloor:
		return models.RiskMedium
	default:
		return models.RiskHigh
	}
}

// ConfidenceFor measures how far the probability sits from the maximally
// uncertain point (0.5), scaled to [0, 1]. It says nothing about calibration.
func ConfidenceFor(p float64) float64 {
	return math.Abs(p-0.5) * 2
}
