// Package mocks provides testify mocks for the application ports.
package mocks

import (
	"context"

	"stocks-api/domain/events"
	"stocks-api/domain/stock"

	"github.com/stretchr/testify/mock"
)

// StockRepository is a testify mock of ports.StockRepository.
type StockRepository struct {
	mock.Mock
}

func (m *StockRepository) Get(ctx context.Context, code string) (stock.Record, error) {
	args := m.Called(ctx, code)
	if rec := args.Get(0); rec != nil {
		return rec.(stock.Record), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *StockRepository) Create(ctx context.Context, record stock.Record) error {
	args := m.Called(ctx, record)
	return args.Error(0)
}

func (m *StockRepository) Update(ctx context.Context, code string, updates map[string]interface{}) (stock.Record, error) {
	args := m.Called(ctx, code, updates)
	if rec := args.Get(0); rec != nil {
		return rec.(stock.Record), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *StockRepository) Delete(ctx context.Context, code string) (stock.Record, error) {
	args := m.Called(ctx, code)
	if rec := args.Get(0); rec != nil {
		return rec.(stock.Record), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *StockRepository) Scan(ctx context.Context, filters map[string]string) ([]stock.Record, error) {
	args := m.Called(ctx, filters)
	if recs := args.Get(0); recs != nil {
		return recs.([]stock.Record), args.Error(1)
	}
	return nil, args.Error(1)
}

// EventBus is a testify mock of ports.EventBus.
type EventBus struct {
	mock.Mock
}

func (m *EventBus) Publish(ctx context.Context, event events.StockEvent) error {
	args := m.Called(ctx, event)
	return args.Error(0)
}
