// Package handlers contains the command handlers that execute stock
// mutations against the store.
package handlers

import (
	"context"
	"fmt"

	"stocks-api/application/commands"
	"stocks-api/application/commands/bus"
	"stocks-api/application/ports"
	"stocks-api/domain/events"

	"go.uber.org/zap"
)

// CreateStockHandler inserts new stock records.
type CreateStockHandler struct {
	repo     ports.StockRepository
	eventBus ports.EventBus
	logger   *zap.Logger
}

// NewCreateStockHandler creates a new create handler.
func NewCreateStockHandler(repo ports.StockRepository, eventBus ports.EventBus, logger *zap.Logger) *CreateStockHandler {
	return &CreateStockHandler{
		repo:     repo,
		eventBus: eventBus,
		logger:   logger,
	}
}

// Handle implements bus.CommandHandler. The store's not-exists guard makes
// the insert idempotent in the failure direction: a duplicate code never
// yields a second live record.
func (h *CreateStockHandler) Handle(ctx context.Context, cmd bus.Command) error {
	create, ok := cmd.(commands.CreateStockCommand)
	if !ok {
		return fmt.Errorf("unexpected command type %T", cmd)
	}

	if err := h.repo.Create(ctx, create.Record); err != nil {
		return err
	}

	publishEvent(ctx, h.eventBus, h.logger, events.NewStockCreated(create.Record.Code()))
	return nil
}

// publishEvent sends the event best effort. A bus failure after a
// committed write must not fail the request.
func publishEvent(ctx context.Context, eventBus ports.EventBus, logger *zap.Logger, event events.StockEvent) {
	if err := eventBus.Publish(ctx, event); err != nil {
		logger.Warn("failed to publish stock event",
			zap.String("eventType", event.EventType),
			zap.String("stockCode", event.StockCode),
			zap.Error(err),
		)
	}
}
