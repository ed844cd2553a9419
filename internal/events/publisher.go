package events

import (
	"github.com/mlops-lab/churn-predictor/pkg/models"
)

type Publisher struct {
	bus     *EventBus
	traceID string
}

func NewPublisher(bus *EventBus) *Publisher {
	return &Publisher{bus: bus}
}

func (p *Publisher) WithTraceID(traceID string) *Publisher {
	return &Publisher{
		bus:     p.bus,
		traceID: traceID,
	}
}

func (p *Publisher) publish(event *models.Event) {
	if p.traceID != "" {
		event.TraceID = p.traceID
	}
	p.bus.Publish(event)
}

func (p *Publisher) PredictionCompleted(result *models.PredictionResult) {
	event := models.NewEvent(models.EventTypePredictionCompleted, result.CustomerID, "Prediction completed").
		WithData(result)
	if result.RiskLevel == models.RiskHigh {
		event = event.WithSeverity(models.SeverityWarning)
	}
	p.publish(event)
}

func (p *Publisher) PredictionFailed(customerID string, err error) {
	event := models.NewEvent(models.EventTypePredictionFailed, customerID, err.Error()).
		WithSeverity(models.SeverityWarning)
	p.publish(event)
}

func (p *Publisher) BatchCompleted(batch *models.BatchResult) {
	event := models.NewEvent(models.EventTypeBatchCompleted, "", "Batch prediction completed").
		WithData(map[string]interface{}{
			"total_processed": batch.TotalProcessed,
			"high_risk_count": batch.HighRiskCount,
			"error_count":     len(batch.Errors),
		})
	p.publish(event)
}

func (p *Publisher) ModelLoaded(modelType string, featureCount int) {
	event := models.NewEvent(models.EventTypeModelLoaded, "", "Model artifacts loaded").
		WithData(map[string]interface{}{
			"model_type":    modelType,
			"feature_count": featureCount,
		})
	p.publish(event)
}
