package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/mlops-lab/churn-predictor/internal/logger"
	"github.com/mlops-lab/churn-predictor/internal/metrics"
	"github.com/mlops-lab/churn-predictor/internal/predictor"
	"github.com/mlops-lab/churn-predictor/pkg/models"
	"github.com/mlops-lab/churn-predictor/pkg/validation"
)

type PredictHandler struct {
	svc          *predictor.Service
	maxBatchSize int
}

func NewPredictHandler(svc *predictor.Service, maxBatchSize int) *PredictHandler {
	return &PredictHandler{svc: svc, maxBatchSize: maxBatchSize}
}

type BatchPredictRequest struct {
	Customers []models.CustomerRecord `json:"customers" binding:"required"`
}

type BatchPredictResponse struct {
	Predictions    []*models.PredictionResult `json:"predictions"`
	TotalProcessed int                        `json:"total_processed"`
	HighRiskCount  int                        `json:"high_risk_count"`
}

// Predict scores a single customer record.
func (h *PredictHandler) Predict(c *gin.Context) {
	start := time.Now()

	var rec models.CustomerRecord
	if err := c.ShouldBindJSON(&rec); err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
		return
	}
	if err := validation.ValidateCustomer(&rec); err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
		return
	}

	if !h.svc.Ready() {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "model not loaded"})
		return
	}

	result, err := h.svc.Predict(&rec)
	if err != nil {
		if errors.Is(err, predictor.ErrModelNotLoaded) {
			c.JSON(http.StatusServiceUnavailable, gin.H{"error": "model not loaded"})
			return
		}
		logger.Errorf("Prediction error: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	metrics.RecordPrediction(result.ChurnPrediction, result.RiskLevel)
	metrics.ObserveLatency(time.Since(start))

	c.JSON(http.StatusOK, result)
}

// BatchPredict scores an ordered list of customer records, isolating per-item
// pipeline failures. Items that fail inside the pipeline are dropped from the
// prediction list; callers detect them by comparing total_processed against
// the submitted count.
func (h *PredictHandler) BatchPredict(c *gin.Context) {
	start := time.Now()

	var req BatchPredictRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
		return
	}
	if len(req.Customers) > h.maxBatchSize {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "batch exceeds maximum size"})
		return
	}
	if err := validation.ValidateBatch(req.Customers); err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
		return
	}

	if !h.svc.Ready() {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "model not loaded"})
		return
	}

	batch, err := h.svc.PredictBatch(req.Customers)
	if err != nil {
		if errors.Is(err, predictor.ErrModelNotLoaded) {
			c.JSON(http.StatusServiceUnavailable, gin.H{"error": "model not loaded"})
			return
		}
		logger.Errorf("Batch prediction error: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	for _, result := range batch.Predictions {
		metrics.RecordPrediction(result.ChurnPrediction, result.RiskLevel)
	}
	metrics.SetHighRiskCount(batch.HighRiskCount)
	metrics.ObserveLatency(time.Since(start))

	c.JSON(http.StatusOK, BatchPredictResponse{
		Predictions:    batch.Predictions,
		TotalProcessed: batch.TotalProcessed,
		HighRiskCount:  batch.HighRiskCount,
	})
}
