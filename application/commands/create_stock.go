// Package commands defines the state-changing operations of the stocks
// resource.
package commands

import (
	"stocks-api/domain/stock"
	apperrors "stocks-api/pkg/errors"
)

// CreateStockCommand inserts a full record under a new stock code.
type CreateStockCommand struct {
	Record stock.Record
}

// Validate implements bus.Command.
func (c CreateStockCommand) Validate() error {
	if c.Record.Code() == "" {
		return apperrors.NewValidationError("stock_code is required")
	}
	return nil
}
