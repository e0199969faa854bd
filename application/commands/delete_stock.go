package commands

import (
	apperrors "stocks-api/pkg/errors"
)

// DeleteStockCommand removes a record by stock code.
type DeleteStockCommand struct {
	StockCode string
}

// Validate implements bus.Command.
func (c DeleteStockCommand) Validate() error {
	if c.StockCode == "" {
		return apperrors.NewValidationError("stock_code is required")
	}
	return nil
}
