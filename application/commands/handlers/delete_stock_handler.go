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

// DeleteStockHandler removes stock records.
type DeleteStockHandler struct {
	repo     ports.StockRepository
	eventBus ports.EventBus
	logger   *zap.Logger
}

// NewDeleteStockHandler creates a new delete handler.
func NewDeleteStockHandler(repo ports.StockRepository, eventBus ports.EventBus, logger *zap.Logger) *DeleteStockHandler {
	return &DeleteStockHandler{
		repo:     repo,
		eventBus: eventBus,
		logger:   logger,
	}
}

// Handle implements bus.CommandHandler. The repository reports not-found
// when the store returned no prior item, which keeps the delete of a
// missing code a routine 404 rather than a silent success.
func (h *DeleteStockHandler) Handle(ctx context.Context, cmd bus.Command) error {
	del, ok := cmd.(commands.DeleteStockCommand)
	if !ok {
		return fmt.Errorf("unexpected command type %T", cmd)
	}

	if _, err := h.repo.Delete(ctx, del.StockCode); err != nil {
		return err
	}

	publishEvent(ctx, h.eventBus, h.logger, events.NewStockDeleted(del.StockCode))
	return nil
}
