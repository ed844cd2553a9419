package integration

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mlops-lab/churn-predictor/api"
	"github.com/mlops-lab/churn-predictor/internal/events"
	"github.com/mlops-lab/churn-predictor/internal/model"
	"github.com/mlops-lab/churn-predictor/internal/predictor"
	"github.com/mlops-lab/churn-predictor/pkg/config"
	"github.com/mlops-lab/churn-predictor/pkg/models"
)

const artifactsDir = "../../artifacts"

func loadArtifacts(t *testing.T) *model.Artifacts {
	t.Helper()
	artifacts, err := model.Load(artifactsDir)
	require.NoError(t, err, "training artifacts must be present in %s", artifactsDir)
	return artifacts
}

func newServer(t *testing.T, svc *predictor.Service, bus *events.EventBus) *api.Server {
	t.Helper()
	gin.SetMode(gin.TestMode)
	return api.NewServer(
		config.APIConfig{
			Port:         8000,
			ReadTimeout:  5 * time.Second,
			WriteTimeout: 5 * time.Second,
			RateLimit:    10000,
			MaxBatchSize: 1000,
		},
		config.AppConfig{Name: "churn-predictor", Mode: "test", Version: "1.0.0"},
		svc, bus, config.WebSocketConfig{BroadcastBuffer: 16},
	)
}

func sampleCustomer() models.CustomerRecord {
	return models.CustomerRecord{
		Gender:           "Male",
		SeniorCitizen:    0,
		Partner:          "Yes",
		Dependents:       "No",
		Tenure:           12,
		PhoneService:     "Yes",
		MultipleLines:    "No",
		InternetService:  "Fiber optic",
		OnlineSecurity:   "No",
		OnlineBackup:     "Yes",
		DeviceProtection: "No",
		TechSupport:      "No",
		StreamingTV:      "No",
		StreamingMovies:  "No",
		Contract:         "Month-to-month",
		PaperlessBilling: "Yes",
		PaymentMethod:    "Electronic check",
		MonthlyCharges:   70.35,
		TotalCharges:     844.20,
	}
}

func postJSON(t *testing.T, router *gin.Engine, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	data, err := json.Marshal(body)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(data))
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestPredict_EndToEnd(t *testing.T) {
	artifacts := loadArtifacts(t)
	svc := predictor.NewService(artifacts, nil)
	server := newServer(t, svc, nil)

	w := postJSON(t, server.Router(), "/predict", sampleCustomer())
	require.Equal(t, http.StatusOK, w.Code)

	var result models.PredictionResult
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &result))

	assert.Regexp(t, `^CUST_[0-9A-F]{8}$`, result.CustomerID)
	assert.Greater(t, result.ChurnProbability, 0.0)
	assert.Less(t, result.ChurnProbability, 1.0)
	assert.Contains(t, []string{"Yes", "No"}, result.ChurnPrediction)
	assert.Equal(t, predictor.RiskLevelFor(result.ChurnProbability), result.RiskLevel)
	assert.InDelta(t, predictor.ConfidenceFor(result.ChurnProbability), result.Confidence, 1e-9)
}

func TestPredict_Deterministic(t *testing.T) {
	artifacts := loadArtifacts(t)
	svc := predictor.NewService(artifacts, nil)

	rec := sampleCustomer()
	first, err := svc.Predict(&rec)
	require.NoError(t, err)

	rec = sampleCustomer()
	second, err := svc.Predict(&rec)
	require.NoError(t, err)

	assert.Equal(t, first.ChurnProbability, second.ChurnProbability)
	assert.Equal(t, first.ChurnPrediction, second.ChurnPrediction)
	assert.Equal(t, first.RiskLevel, second.RiskLevel)
	assert.NotEqual(t, first.CustomerID, second.CustomerID)
}

func TestBatchPredict_EndToEnd(t *testing.T) {
	artifacts := loadArtifacts(t)
	svc := predictor.NewService(artifacts, nil)
	server := newServer(t, svc, nil)

	loyal := sampleCustomer()
	loyal.Tenure = 70
	loyal.Contract = "Two year"
	loyal.InternetService = "DSL"
	loyal.PaymentMethod = "Credit card (automatic)"
	loyal.TotalCharges = 4900.0

	req := map[string]interface{}{
		"customers": []models.CustomerRecord{sampleCustomer(), loyal},
	}
	w := postJSON(t, server.Router(), "/batch_predict", req)
	require.Equal(t, http.StatusOK, w.Code)

	var body struct {
		Predictions    []models.PredictionResult `json:"predictions"`
		TotalProcessed int                       `json:"total_processed"`
		HighRiskCount  int                       `json:"high_risk_count"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))

	assert.Equal(t, 2, body.TotalProcessed)
	require.Len(t, body.Predictions, 2)
	assert.Equal(t, "CUST_0001", body.Predictions[0].CustomerID)
	assert.Equal(t, "CUST_0002", body.Predictions[1].CustomerID)

	// A long-tenure two-year contract should score lower than a new
	// month-to-month fiber customer on electronic check.
	assert.Less(t, body.Predictions[1].ChurnProbability, body.Predictions[0].ChurnProbability)
}

func TestModelInfo_EndToEnd(t *testing.T) {
	artifacts := loadArtifacts(t)
	svc := predictor.NewService(artifacts, nil)
	server := newServer(t, svc, nil)

	req := httptest.NewRequest(http.MethodGet, "/model/info", nil)
	w := httptest.NewRecorder()
	server.Router().ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "LogisticRegression", body["model_type"])
	assert.Equal(t, float64(artifacts.FeatureCount()), body["feature_count"])
}

func TestEventBus_PredictionFlow(t *testing.T) {
	artifacts := loadArtifacts(t)

	bus := events.NewEventBus(10)
	defer bus.Close()

	ch := bus.Subscribe(models.EventTypePredictionCompleted)
	svc := predictor.NewService(artifacts, events.NewPublisher(bus))

	rec := sampleCustomer()
	result, err := svc.Predict(&rec)
	require.NoError(t, err)

	select {
	case event := <-ch:
		assert.Equal(t, models.EventTypePredictionCompleted, event.Type)
		assert.Equal(t, result.CustomerID, event.CustomerID)
		payload, ok := event.Data.(*models.PredictionResult)
		require.True(t, ok)
		assert.Equal(t, result.ChurnProbability, payload.ChurnProbability)
	case <-time.After(time.Second):
		t.Fatal("timeout waiting for event")
	}
}

func TestEventBus_BatchFlow(t *testing.T) {
	artifacts := loadArtifacts(t)

	bus := events.NewEventBus(10)
	defer bus.Close()

	ch := bus.Subscribe(models.EventTypeBatchCompleted)
	svc := predictor.NewService(artifacts, events.NewPublisher(bus))

	_, err := svc.PredictBatch([]models.CustomerRecord{sampleCustomer(), sampleCustomer()})
	require.NoError(t, err)

	select {
	case event := <-ch:
		assert.Equal(t, models.EventTypeBatchCompleted, event.Type)
	case <-time.After(time.Second):
		t.Fatal("timeout waiting for event")
	}
}
