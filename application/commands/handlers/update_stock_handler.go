package handlers

import (
	"context"
	"fmt"

	"stocks-api/application/commands"
	"stocks-api/application/commands/bus"
	"stocks-api/application/ports"
	"stocks-api/domain/events"
	"stocks-api/domain/stock"

	"go.uber.org/zap"
)

// UpdateStockHandler applies partial updates to existing records.
type UpdateStockHandler struct {
	repo     ports.StockRepository
	eventBus ports.EventBus
	logger   *zap.Logger
}

// NewUpdateStockHandler creates a new update handler.
func NewUpdateStockHandler(repo ports.StockRepository, eventBus ports.EventBus, logger *zap.Logger) *UpdateStockHandler {
	return &UpdateStockHandler{
		repo:     repo,
		eventBus: eventBus,
		logger:   logger,
	}
}

// Handle implements bus.CommandHandler. Only supplied fields enter the
// update expression, so attributes absent from the command survive
// untouched.
func (h *UpdateStockHandler) Handle(ctx context.Context, cmd bus.Command) error {
	update, ok := cmd.(commands.UpdateStockCommand)
	if !ok {
		return fmt.Errorf("unexpected command type %T", cmd)
	}

	updates := make(map[string]interface{}, 2)
	if update.StockName != nil {
		updates[stock.AttrName] = *update.StockName
	}
	if update.Quantity != nil {
		updates[stock.AttrQuantity] = *update.Quantity
	}

	if _, err := h.repo.Update(ctx, update.StockCode, updates); err != nil {
		return err
	}

	publishEvent(ctx, h.eventBus, h.logger, events.NewStockUpdated(update.StockCode))
	return nil
}
