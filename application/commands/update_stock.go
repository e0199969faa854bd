package commands

import (
	apperrors "stocks-api/pkg/errors"
)

// UpdateStockCommand applies a partial update to an existing record. Only
// the recognized attributes are ever persisted; unrecognized body fields
// are accepted upstream and dropped.
type UpdateStockCommand struct {
	StockCode string
	StockName *string
	Quantity  *float64
}

// Validate implements bus.Command.
func (c UpdateStockCommand) Validate() error {
	if c.StockCode == "" {
		return apperrors.NewValidationError("stock_code is required")
	}
	if c.StockName == nil && c.Quantity == nil {
		return apperrors.NewValidationError("no fields to update")
	}
	return nil
}
