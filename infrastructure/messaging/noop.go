// Package messaging provides the event-bus fallbacks used when no broker
// is configured.
package messaging

import (
	"context"

	"stocks-api/application/ports"
	"stocks-api/domain/events"
)

// NoopEventBus discards events. Used when EVENT_BUS_NAME is unset.
type NoopEventBus struct{}

// NewNoopEventBus creates a bus that drops every event.
func NewNoopEventBus() ports.EventBus {
	return NoopEventBus{}
}

// Publish implements ports.EventBus.
func (NoopEventBus) Publish(ctx context.Context, event events.StockEvent) error {
	return nil
}
