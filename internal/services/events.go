package services

import (
	"encoding/json"
	"log"
)

// Event routing keys published to the message broker.
const (
	EventOrderCreated     = "order.created"
	EventOrderCancelled   = "order.cancelled"
	EventPaymentCompleted = "payment.completed"
	EventPaymentRefunded  = "payment.refunded"
)

// EventsExchange is the broker exchange all store events go to.
const EventsExchange = "belanja"

// EventPublisher publishes domain events to the message broker. The
// RabbitMQ client satisfies it; tests substitute a mock.
type EventPublisher interface {
	Publish(exchange, routingKey string, body []byte) error
}

// publishEvent sends an event best-effort. Publishing happens after the
// settlement unit of work has committed and a broker failure must never
// undo committed money movement, so failures are only logged.
func publishEvent(publisher EventPublisher, routingKey string, payload map[string]interface{}) {
	if publisher == nil {
		return
	}

	body, err := json.Marshal(payload)
	if err != nil {
		log.Printf("Failed to marshal %s event: %v", routingKey, err)
		return
	}
	if err := publisher.Publish(EventsExchange, routingKey, body); err != nil {
		log.Printf("Warning: Failed to publish %s event: %v", routingKey, err)
	}
}
