package websocket

import (
	"context"
	"encoding/json"
	"time"

	"github.com/mlops-lab/churn-predictor/internal/logger"
	"github.com/mlops-lab/churn-predictor/pkg/models"
)

// EventBridge forwards prediction pipeline events to WebSocket clients
type EventBridge struct {
	hub        *Hub
	eventsChan <-chan *models.Event
	ctx        context.Context
	cancel     context.CancelFunc
}

// NewEventBridge creates a new bridge between pipeline events and WebSocket
func NewEventBridge(hub *Hub, eventsChan <-chan *models.Event) *EventBridge {
	ctx, cancel := context.WithCancel(context.Background())
	return &EventBridge{
		hub:        hub,
		eventsChan: eventsChan,
		ctx:        ctx,
		cancel:     cancel,
	}
}

// Start begins listening for events and forwarding to WebSocket clients
func (b *EventBridge) Start() {
	go b.run()
	logger.Info("WebSocket event bridge started")
}

// Stop stops the event bridge
func (b *EventBridge) Stop() {
	b.cancel()
	logger.Info("WebSocket event bridge stopped")
}

func (b *EventBridge) run() {
	for {
		select {
		case <-b.ctx.Done():
			return
		case event, ok := <-b.eventsChan:
			if !ok {
				logger.Info("Event channel closed, stopping bridge")
				return
			}
			b.forwardEvent(event)
		}
	}
}

func (b *EventBridge) forwardEvent(event *models.Event) {
	wsMessage := convertToWSMessage(event)
	if wsMessage == nil {
		return
	}

	data, err := json.Marshal(wsMessage)
	if err != nil {
		logger.Errorf("Failed to marshal WebSocket message: %v", err)
		return
	}

	b.hub.Broadcast(data, isHighRisk(event))
}

// WebSocketEvent is the message format sent to WebSocket clients
type WebSocketEvent struct {
	Type       string      `json:"type"`
	CustomerID string      `json:"customer_id,omitempty"`
	Timestamp  time.Time   `json:"timestamp"`
	Severity   string      `json:"severity,omitempty"`
	Message    string      `json:"message,omitempty"`
	Data       interface{} `json:"data,omitempty"`
}

func convertToWSMessage(event *models.Event) *WebSocketEvent {
	wsType := mapEventType(event.Type)
	if wsType == "" {
		return nil // Skip events we don't want to broadcast
	}

	return &WebSocketEvent{
		Type:       wsType,
		CustomerID: event.CustomerID,
		Timestamp:  event.Timestamp,
		Severity:   string(event.Severity),
		Message:    event.Message,
		Data:       event.Data,
	}
}

func mapEventType(eventType models.EventType) string {
	switch eventType {
	case models.EventTypePredictionCompleted:
		return "prediction"
	case models.EventTypePredictionFailed:
		return "prediction_failed"
	case models.EventTypeBatchCompleted:
		return "batch"
	case models.EventTypeModelLoaded:
		return "model_loaded"
	case models.EventTypeAlert:
		return "alert"
	default:
		return ""
	}
}

func isHighRisk(event *models.Event) bool {
	if event.Type != models.EventTypePredictionCompleted {
		return false
	}
	result, ok := event.Data.(*models.PredictionResult)
	return ok && result.RiskLevel == models.RiskHigh
}
