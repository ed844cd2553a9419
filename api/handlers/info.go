package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mlops-lab/churn-predictor/internal/predictor"
)

type InfoHandler struct {
	svc     *predictor.Service
	name    string
	version string
}

func NewInfoHandler(svc *predictor.Service, name, version string) *InfoHandler {
	return &InfoHandler{svc: svc, name: name, version: version}
}

// Root lists the service endpoints.
func (h *InfoHandler) Root(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"message": h.name,
		"version": h.version,
		"endpoints": gin.H{
			"health":        "/health",
			"predict":       "/predict",
			"batch_predict": "/batch_predict",
			"model_info":    "/model/info",
			"metrics":       "/metrics",
			"events":        "/ws",
		},
	})
}

// ModelInfo describes the loaded classifier.
func (h *InfoHandler) ModelInfo(c *gin.Context) {
	if !h.svc.Ready() {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "model not loaded"})
		return
	}

	featureNames := h.svc.FeatureNames()
	preview := featureNames
	if len(preview) > 10 {
		preview = preview[:10]
	}

	c.JSON(http.StatusOK, gin.H{
		"model_type":    h.svc.ModelType(),
		"feature_count": len(featureNames),
		"features":      preview,
	})
}
