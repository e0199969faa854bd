// Package ports declares the interfaces the application layer depends on.
// Infrastructure supplies the implementations.
package ports

import (
	"context"

	"stocks-api/domain/events"
	"stocks-api/domain/stock"
)

// StockRepository is the document-store contract for stock records. The
// store enforces key uniqueness through conditional guards evaluated
// atomically during writes; implementations translate guard failures into
// the application error taxonomy (conflict on create, not-found on
// update/delete).
type StockRepository interface {
	// Get performs a point lookup by stock code.
	Get(ctx context.Context, code string) (stock.Record, error)

	// Create inserts the full record, guarded on the key not existing.
	Create(ctx context.Context, record stock.Record) error

	// Update applies an additive SET of the supplied attributes, guarded
	// on the key existing, and returns the updated record.
	Update(ctx context.Context, code string, updates map[string]interface{}) (stock.Record, error)

	// Delete removes the record and returns its prior state.
	Delete(ctx context.Context, code string) (stock.Record, error)

	// Scan returns all records matching the AND-combined exact-match
	// filters. An empty filter map returns the whole collection, bounded
	// by whatever a single scan round trip yields.
	Scan(ctx context.Context, filters map[string]string) ([]stock.Record, error)
}

// EventBus publishes domain events after committed mutations.
type EventBus interface {
	Publish(ctx context.Context, event events.StockEvent) error
}
