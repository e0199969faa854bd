// Package queries defines the read-only operations of the stocks resource.
package queries

import (
	apperrors "stocks-api/pkg/errors"
)

// GetStockQuery is a point lookup by stock code.
type GetStockQuery struct {
	StockCode string
}

// Validate implements bus.Query.
func (q GetStockQuery) Validate() error {
	if q.StockCode == "" {
		return apperrors.NewValidationError("stock_code is required")
	}
	return nil
}
