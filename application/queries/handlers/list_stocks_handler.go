package handlers

import (
	"context"
	"fmt"

	"stocks-api/application/ports"
	"stocks-api/application/queries"
	"stocks-api/application/queries/bus"
	"stocks-api/domain/stock"

	"go.uber.org/zap"
)

// ListStocksHandler serves collection reads: a filtered store scan followed
// by client-side sort and pagination.
type ListStocksHandler struct {
	repo   ports.StockRepository
	logger *zap.Logger
}

// NewListStocksHandler creates a new list handler.
func NewListStocksHandler(repo ports.StockRepository, logger *zap.Logger) *ListStocksHandler {
	return &ListStocksHandler{
		repo:   repo,
		logger: logger,
	}
}

// Handle implements bus.QueryHandler. Filtering happens in the store scan;
// sorting and slicing happen here, so Total reflects the whole filtered
// set while the page is bounded by offset and limit.
func (h *ListStocksHandler) Handle(ctx context.Context, query bus.Query) (interface{}, error) {
	list, ok := query.(queries.ListStocksQuery)
	if !ok {
		return nil, fmt.Errorf("unexpected query type %T", query)
	}

	filters := make(map[string]string, 2)
	if list.Name != "" {
		filters[stock.AttrName] = list.Name
	}
	if list.Category != "" {
		filters["category"] = list.Category
	}

	items, err := h.repo.Scan(ctx, filters)
	if err != nil {
		return nil, err
	}

	stock.SortRecords(items, stock.ParseSortFields(list.Sort))

	total := len(items)
	page := paginate(items, list.Offset, list.Limit)

	return &queries.ListStocksResult{
		Items:  page,
		Total:  total,
		Limit:  list.Limit,
		Offset: list.Offset,
	}, nil
}

// paginate slices [offset, offset+limit), clamped to the set. The result
// is never nil so an empty page serializes as [] rather than null.
func paginate(items []stock.Record, offset, limit int) []stock.Record {
	if offset >= len(items) {
		return []stock.Record{}
	}
	end := offset + limit
	if end > len(items) {
		end = len(items)
	}
	return items[offset:end]
}
