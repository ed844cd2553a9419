package model

import (
	"fmt"
	"math"
)

// LogisticClassifier is a pre-fitted binary churn classifier. The positive
// class (index 1) is "churns".
//
// Threshold is the classifier's own decision boundary fitted during training.
// Predict uses it directly, so the hard label is a pass-through of the
// trained model's native decision and is not re-derived from a 0.5 cut on
// the probability.
type LogisticClassifier struct {
	ModelType    string    `json:"model_type"`
	Coefficients []float64 `json:"coefficients"`
	Intercept    float64   `json:"intercept"`
	Threshold    float64   `json:"threshold"`
}

// PredictProba returns the probability of the positive (churn) class for a
// scaled feature vector.
func (c *LogisticClassifier) PredictProba(x []float64) (float64, error) {
	z, err := c.decision(x)
	if err != nil {
		return 0, err
	}
	return sigmoid(z), nil
}

// Predict returns the hard label (1 = churns) using the model's native
// decision threshold.
func (c *LogisticClassifier) Predict(x []float64) (int, error) {
	p, err := c.PredictProba(x)
	if err != nil {
		return 0, err
	}
	if p >= c.Threshold {
		return 1, nil
	}
	return 0, nil
}

func (c *LogisticClassifier) decision(x []float64) (float64, error) {
	if len(x) != len(c.Coefficients) {
		return 0, fmt.Errorf("classifier expects %d features, got %d", len(c.Coefficients), len(x))
	}
	z := c.Intercept
	for i, v := range x {
		z += c.Coefficients[i] * v
	}
	return z, nil
}

func (c *LogisticClassifier) validate() error {
	if len(c.Coefficients) == 0 {
		return fmt.Errorf("classifier has no coefficients")
	}
	if c.ModelType == "" {
		return fmt.Errorf("classifier model_type is empty")
	}
	if c.Threshold <= 0 || c.Threshold >= 1 {
		return fmt.Errorf("classifier threshold must be in (0, 1), got %v", c.Threshold)
	}
	return nil
}

func sigmoid(z float64) float64 {
	return 1 / (1 + math.Exp(-z))
}
