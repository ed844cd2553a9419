package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCustomerID(t *testing.T) {
	id := NewCustomerID()
	assert.Regexp(t, `^CUST_[0-9A-F]{8}$`, id)
	assert.NotEqual(t, id, NewCustomerID())
}

func TestBatchCustomerID(t *testing.T) {
	assert.Equal(t, "CUST_0001", BatchCustomerID(0))
	assert.Equal(t, "CUST_0042", BatchCustomerID(41))
	assert.Equal(t, "CUST_1000", BatchCustomerID(999))
}

func TestNewEvent(t *testing.T) {
	event := NewEvent(EventTypePredictionCompleted, "CUST_0001", "done").
		WithSeverity(SeverityWarning).
		WithData(map[string]int{"n": 1}).
		WithTraceID("trace-1")

	assert.NotEmpty(t, event.ID)
	assert.Equal(t, EventTypePredictionCompleted, event.Type)
	assert.Equal(t, SeverityWarning, event.Severity)
	assert.Equal(t, "CUST_0001", event.CustomerID)
	assert.Equal(t, "trace-1", event.TraceID)
	assert.False(t, event.Timestamp.IsZero())
}

func TestPredictionResult_JSON(t *testing.T) {
	result := PredictionResult{
		CustomerID:       "CUST_0001",
		ChurnProbability: 0.73,
		ChurnPrediction:  "Yes",
		Confidence:       0.46,
		RiskLevel:        RiskHigh,
	}

	data, err := json.Marshal(result)
	require.NoError(t, err)

	var fields map[string]interface{}
	require.NoError(t, json.Unmarshal(data, &fields))
	assert.Equal(t, "CUST_0001", fields["customer_id"])
	assert.Equal(t, 0.73, fields["churn_probability"])
	assert.Equal(t, "Yes", fields["churn_prediction"])
	assert.Equal(t, "High", fields["risk_level"])
}

func TestBatchResult_ErrorsHiddenFromJSON(t *testing.T) {
	batch := BatchResult{
		Predictions:    []*PredictionResult{},
		Errors:         []BatchItemError{{CustomerID: "CUST_0002", Error: "bad record"}},
		TotalProcessed: 0,
	}

	data, err := json.Marshal(batch)
	require.NoError(t, err)
	assert.NotContains(t, string(data), "bad record")
}
