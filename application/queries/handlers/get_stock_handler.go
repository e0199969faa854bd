// Package handlers contains the query handlers serving stock reads.
package handlers

import (
	"context"
	"fmt"

	"stocks-api/application/ports"
	"stocks-api/application/queries"
	"stocks-api/application/queries/bus"

	"go.uber.org/zap"
)

// GetStockHandler serves point lookups.
type GetStockHandler struct {
	repo   ports.StockRepository
	logger *zap.Logger
}

// NewGetStockHandler creates a new get handler.
func NewGetStockHandler(repo ports.StockRepository, logger *zap.Logger) *GetStockHandler {
	return &GetStockHandler{
		repo:   repo,
		logger: logger,
	}
}

// Handle implements bus.QueryHandler.
func (h *GetStockHandler) Handle(ctx context.Context, query bus.Query) (interface{}, error) {
	get, ok := query.(queries.GetStockQuery)
	if !ok {
		return nil, fmt.Errorf("unexpected query type %T", query)
	}

	record, err := h.repo.Get(ctx, get.StockCode)
	if err != nil {
		return nil, err
	}
	return record, nil
}
