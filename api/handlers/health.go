package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mlops-lab/churn-predictor/internal/predictor"
)

type HealthHandler struct {
	svc     *predictor.Service
	version string
}

func NewHealthHandler(svc *predictor.Service, version string) *HealthHandler {
	return &HealthHandler{svc: svc, version: version}
}

type HealthResponse struct {
	Status      string `json:"status"`
	ModelLoaded bool   `json:"model_loaded"`
	Version     string `json:"version"`
}

// Health reports the readiness of the prediction pipeline. The service is
// unhealthy exactly when the training artifacts failed to load; the endpoint
// itself always answers 200 so probes can read the body.
func (h *HealthHandler) Health(c *gin.Context) {
	modelLoaded := h.svc.Ready()

	status := "healthy"
	if !modelLoaded {
		status = "unhealthy"
	}

	c.JSON(http.StatusOK, HealthResponse{
		Status:      status,
		ModelLoaded: modelLoaded,
		Version:     h.version,
	})
}
