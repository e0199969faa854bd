package queries

import (
	"stocks-api/domain/stock"
	apperrors "stocks-api/pkg/errors"
)

// ListStocksQuery scans the collection with optional exact-match filters,
// then sorts and paginates the result client-side.
type ListStocksQuery struct {
	Limit    int
	Offset   int
	Name     string
	Category string
	Sort     string
}

// Validate implements bus.Query.
func (q ListStocksQuery) Validate() error {
	if q.Limit <= 0 {
		return apperrors.NewValidationError("limit must be positive")
	}
	if q.Offset < 0 {
		return apperrors.NewValidationError("offset must not be negative")
	}
	return nil
}

// ListStocksResult is the page produced by a list query. Total counts the
// whole filtered set, not just the returned slice.
type ListStocksResult struct {
	Items  []stock.Record
	Total  int
	Limit  int
	Offset int
}
