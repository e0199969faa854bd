package handlers

import (
	"context"
	"testing"

	"stocks-api/application/commands"
	"stocks-api/domain/events"
	"stocks-api/domain/stock"
	apperrors "stocks-api/pkg/errors"
	"stocks-api/tests/mocks"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestDeleteStockHandler_Success(t *testing.T) {
	ctx := context.Background()
	repo := new(mocks.StockRepository)
	eventBus := new(mocks.EventBus)

	prior := stock.Record{stock.AttrCode: "AAPL", stock.AttrQuantity: 10.0}
	repo.On("Delete", ctx, "AAPL").Return(prior, nil)
	eventBus.On("Publish", ctx, mock.MatchedBy(func(e events.StockEvent) bool {
		return e.EventType == events.TypeStockDeleted && e.StockCode == "AAPL"
	})).Return(nil)

	handler := NewDeleteStockHandler(repo, eventBus, zap.NewNop())

	err := handler.Handle(ctx, commands.DeleteStockCommand{StockCode: "AAPL"})

	require.NoError(t, err)
	repo.AssertExpectations(t)
	eventBus.AssertExpectations(t)
}

func TestDeleteStockHandler_MissingIsNotFound(t *testing.T) {
	ctx := context.Background()
	repo := new(mocks.StockRepository)
	eventBus := new(mocks.EventBus)

	repo.On("Delete", ctx, "MISSING").Return(nil, apperrors.NewNotFoundError("stock"))

	handler := NewDeleteStockHandler(repo, eventBus, zap.NewNop())

	err := handler.Handle(ctx, commands.DeleteStockCommand{StockCode: "MISSING"})

	require.Error(t, err)
	assert.True(t, apperrors.IsNotFound(err))
	eventBus.AssertNotCalled(t, "Publish", mock.Anything, mock.Anything)
}

func TestDeleteStockHandler_EventFailureDoesNotFailCommand(t *testing.T) {
	ctx := context.Background()
	repo := new(mocks.StockRepository)
	eventBus := new(mocks.EventBus)

	repo.On("Delete", ctx, "AAPL").Return(stock.Record{stock.AttrCode: "AAPL"}, nil)
	eventBus.On("Publish", ctx, mock.Anything).Return(assert.AnError)

	handler := NewDeleteStockHandler(repo, eventBus, zap.NewNop())

	err := handler.Handle(ctx, commands.DeleteStockCommand{StockCode: "AAPL"})

	require.NoError(t, err)
}
