package models

type RiskLevel string

const (
	RiskLow    RiskLevel = "Low"
	RiskMedium RiskLevel = "Medium"
	RiskHigh   RiskLevel = "High"
)

// PredictionResult is the outcome of scoring one customer. Immutable once
// created; discarded after the response is sent.
type PredictionResult struct {
	CustomerID       string    `json:"customer_id"`
	ChurnProbability float64   `json:"churn_probability"`
	ChurnPrediction  string    `json:"churn_prediction"`
	Confidence       float64   `json:"confidence"`
	RiskLevel        RiskLevel `json:"risk_level"`
}

// BatchItemError records a per-item failure inside a batch, tied to the
// position-based identifier of the item that failed.
type BatchItemError struct {
	CustomerID string `json:"customer_id"`
	Error      string `json:"error"`
}

// BatchResult aggregates the outcomes of a batch prediction. Predictions
// preserves input order for the items that succeeded; failed items appear
// only in Errors and are counted implicitly via TotalProcessed.
type BatchResult struct {
	Predictions    []*PredictionResult `json:"predictions"`
	Errors         []BatchItemError    `json:"-"`
	TotalProcessed int                 `json:"total_processed"`
	HighRiskCount  int                 `json:"high_risk_count"`
}
