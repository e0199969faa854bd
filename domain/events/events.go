// Package events defines the domain events emitted after stock mutations.
package events

import (
	"time"

	"github.com/google/uuid"
)

// Source identifies this service on the event bus.
const Source = "stocks-api"

// Event types published for stock mutations.
const (
	TypeStockCreated = "stocks.created"
	TypeStockUpdated = "stocks.updated"
	TypeStockDeleted = "stocks.deleted"
)

// StockEvent describes one committed change to a stock record.
type StockEvent struct {
	EventID    string    `json:"eventId"`
	EventType  string    `json:"eventType"`
	StockCode  string    `json:"stockCode"`
	OccurredAt time.Time `json:"occurredAt"`
}

func newStockEvent(eventType, stockCode string) StockEvent {
	return StockEvent{
		EventID:    uuid.New().String(),
		EventType:  eventType,
		StockCode:  stockCode,
		OccurredAt: time.Now().UTC(),
	}
}

// NewStockCreated builds the event for a successful create.
func NewStockCreated(stockCode string) StockEvent {
	return newStockEvent(TypeStockCreated, stockCode)
}

// NewStockUpdated builds the event for a successful partial update.
func NewStockUpdated(stockCode string) StockEvent {
	return newStockEvent(TypeStockUpdated, stockCode)
}

// NewStockDeleted builds the event for a successful delete.
func NewStockDeleted(stockCode string) StockEvent {
	return newStockEvent(TypeStockDeleted, stockCode)
}
