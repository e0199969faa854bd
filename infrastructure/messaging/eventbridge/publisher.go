// Package eventbridge publishes stock domain events to AWS EventBridge.
package eventbridge

import (
	"context"
	"encoding/json"
	"fmt"

	"stocks-api/application/ports"
	"stocks-api/domain/events"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/eventbridge"
	"github.com/aws/aws-sdk-go-v2/service/eventbridge/types"
	"go.uber.org/zap"
)

// Publisher implements ports.EventBus using EventBridge.
type Publisher struct {
	client       *eventbridge.Client
	eventBusName string
	logger       *zap.Logger
}

// NewPublisher creates a new EventBridge publisher.
func NewPublisher(client *eventbridge.Client, eventBusName string, logger *zap.Logger) ports.EventBus {
	return &Publisher{
		client:       client,
		eventBusName: eventBusName,
		logger:       logger,
	}
}

// Publish sends one event to the configured bus.
func (p *Publisher) Publish(ctx context.Context, event events.StockEvent) error {
	detail, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal event: %w", err)
	}

	entry := types.PutEventsRequestEntry{
		EventBusName: aws.String(p.eventBusName),
		Source:       aws.String(events.Source),
		DetailType:   aws.String(event.EventType),
		Detail:       aws.String(string(detail)),
		Time:         aws.Time(event.OccurredAt),
	}

	result, err := p.client.PutEvents(ctx, &eventbridge.PutEventsInput{
		Entries: []types.PutEventsRequestEntry{entry},
	})
	if err != nil {
		return fmt.Errorf("failed to publish event: %w", err)
	}
	if result.FailedEntryCount > 0 {
		return fmt.Errorf("event bus rejected %d entries", result.FailedEntryCount)
	}

	p.logger.Debug("event published",
		zap.String("eventType", event.EventType),
		zap.String("stockCode", event.StockCode),
	)
	return nil
}
