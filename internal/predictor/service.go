package predictor

import (
	"errors"
	"fmt"

	"github.com/mlops-lab/churn-predictor/internal/events"
	"github.com/mlops-lab/churn-predictor/internal/features"
	"github.com/mlops-lab/churn-predictor/internal/logger"
	"github.com/mlops-lab/churn-predictor/internal/model"
	"github.com/mlops-lab/churn-predictor/pkg/models"
)

// ErrModelNotLoaded is returned when predictions are requested while the
// training artifacts are unavailable.
var ErrModelNotLoaded = errors.New("model not loaded")

// Service orchestrates the prediction pipeline: feature transform, scaled
// scoring, and risk classification. It is explicitly constructed and injected
// into handlers; there is no package-level instance.
//
// The artifacts are immutable after construction, so a single Service is safe
// for concurrent use without locking.
type Service struct {
	artifacts   *model.Artifacts
	transformer *features.Transformer
	publisher   *events.Publisher
}

// NewService builds a prediction service around loaded artifacts. artifacts
// may be nil when loading failed at startup; the service then reports not
// ready and rejects predictions until restarted. publisher may be nil.
func NewService(artifacts *model.Artifacts, publisher *events.Publisher) *Service {
	s := &Service{
		artifacts: artifacts,
		publisher: publisher,
	}
	if artifacts != nil {
		s.transformer = features.NewTransformer(artifacts.FeatureNames)
	}
	return s
}

// Ready reports whether the training artifacts are loaded.
func (s *Service) Ready() bool {
	return s.artifacts != nil
}

// ModelType returns the loaded classifier's algorithm name, or "" when the
// service is not ready.
func (s *Service) ModelType() string {
	if s.artifacts == nil {
		return ""
	}
	return s.artifacts.ModelType()
}

// FeatureNames returns the training feature schema, or nil when not ready.
func (s *Service) FeatureNames() []string {
	if s.artifacts == nil {
		return nil
	}
	return s.artifacts.FeatureNames
}

// Predict scores a single customer and assigns a freshly generated random
// identifier.
func (s *Service) Predict(rec *models.CustomerRecord) (*models.PredictionResult, error) {
	if !s.Ready() {
		return nil, ErrModelNotLoaded
	}

	customerID := models.NewCustomerID()
	result, err := s.predictOne(rec, customerID)
	if err != nil {
		logger.WithCustomer(customerID).Errorf("Prediction failed: %v", err)
		if s.publisher != nil {
			s.publisher.PredictionFailed(customerID, err)
		}
		return nil, err
	}

	logger.WithCustomer(customerID).Infof("Prediction made: %s (risk: %s)", result.ChurnPrediction, result.RiskLevel)
	if s.publisher != nil {
		s.publisher.PredictionCompleted(result)
	}
	return result, nil
}

// PredictBatch scores an ordered sequence of customers, isolating per-item
// failures. A failing item becomes an error entry carrying its position-based
// identifier; the remaining items keep processing. Successful predictions
// preserve input order.
//
// Failed items are excluded from Predictions and surface to callers only
// through the TotalProcessed count (see BatchResult.Errors for the detail the
// outward response does not carry).
func (s *Service) PredictBatch(customers []models.CustomerRecord) (*models.BatchResult, error) {
	if !s.Ready() {
		return nil, ErrModelNotLoaded
	}

	batch := &models.BatchResult{
		Predictions: make([]*models.PredictionResult, 0, len(customers)),
	}

	for i := range customers {
		customerID := models.BatchCustomerID(i)
		result, err := s.predictOne(&customers[i], customerID)
		if err != nil {
			logger.WithCustomer(customerID).Warnf("Batch item %d failed: %v", i, err)
			batch.Errors = append(batch.Errors, models.BatchItemError{
				CustomerID: customerID,
				Error:      err.Error(),
			})
			continue
		}

		batch.Predictions = append(batch.Predictions, result)
		if result.RiskLevel == models.RiskHigh {
			batch.HighRiskCount++
		}
	}

	batch.TotalProcessed = len(batch.Predictions)

	logger.Infof("Batch prediction completed: %d customers, %d high risk, %d errors",
		batch.TotalProcessed, batch.HighRiskCount, len(batch.Errors))
	if s.publisher != nil {
		s.publisher.BatchCompleted(batch)
	}
	return batch, nil
}

// predictOne runs the full pipeline for one record under a fixed identifier.
func (s *Service) predictOne(rec *models.CustomerRecord, customerID string) (*models.PredictionResult, error) {
	vec, err := s.transformer.Transform(rec)
	if err != nil {
		return nil, fmt.Errorf("transform features: %w", err)
	}

	probability, label, err := s.artifacts.Score(vec)
	if err != nil {
		return nil, fmt.Errorf("score features: %w", err)
	}

	prediction := "No"
	if label == 1 {
		prediction = "Yes"
	}

	return &models.PredictionResult{
		CustomerID:       customerID,
		ChurnProbability: probability,
		ChurnPrediction:  prediction,
		Confidence:       ConfidenceFor(probability),
		RiskLevel:        RiskLevelFor(probability),
	}, nil
}
