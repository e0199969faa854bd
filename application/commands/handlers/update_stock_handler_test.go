package handlers

import (
	"context"
	"testing"

	"stocks-api/application/commands"
	"stocks-api/domain/stock"
	apperrors "stocks-api/pkg/errors"
	"stocks-api/tests/mocks"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func strPtr(s string) *string    { return &s }
func floatPtr(f float64) *float64 { return &f }

func TestUpdateStockHandler_OnlySuppliedFieldsReachTheStore(t *testing.T) {
	ctx := context.Background()
	repo := new(mocks.StockRepository)
	eventBus := new(mocks.EventBus)

	updated := stock.Record{stock.AttrCode: "AAPL", stock.AttrQuantity: 20.0}
	repo.On("Update", ctx, "AAPL", map[string]interface{}{
		stock.AttrQuantity: 20.0,
	}).Return(updated, nil)
	eventBus.On("Publish", ctx, mock.Anything).Return(nil)

	handler := NewUpdateStockHandler(repo, eventBus, zap.NewNop())

	err := handler.Handle(ctx, commands.UpdateStockCommand{
		StockCode: "AAPL",
		Quantity:  floatPtr(20),
	})

	require.NoError(t, err)
	repo.AssertExpectations(t)
}

func TestUpdateStockHandler_BothFields(t *testing.T) {
	ctx := context.Background()
	repo := new(mocks.StockRepository)
	eventBus := new(mocks.EventBus)

	repo.On("Update", ctx, "AAPL", map[string]interface{}{
		stock.AttrName:     "Apple Inc",
		stock.AttrQuantity: 7.0,
	}).Return(stock.Record{stock.AttrCode: "AAPL"}, nil)
	eventBus.On("Publish", ctx, mock.Anything).Return(nil)

	handler := NewUpdateStockHandler(repo, eventBus, zap.NewNop())

	err := handler.Handle(ctx, commands.UpdateStockCommand{
		StockCode: "AAPL",
		StockName: strPtr("Apple Inc"),
		Quantity:  floatPtr(7),
	})

	require.NoError(t, err)
	repo.AssertExpectations(t)
}

func TestUpdateStockHandler_NotFoundPassesThrough(t *testing.T) {
	ctx := context.Background()
	repo := new(mocks.StockRepository)
	eventBus := new(mocks.EventBus)

	repo.On("Update", ctx, "MISSING", mock.Anything).
		Return(nil, apperrors.NewNotFoundError("stock"))

	handler := NewUpdateStockHandler(repo, eventBus, zap.NewNop())

	err := handler.Handle(ctx, commands.UpdateStockCommand{
		StockCode: "MISSING",
		Quantity:  floatPtr(1),
	})

	require.Error(t, err)
	assert.True(t, apperrors.IsNotFound(err))
	eventBus.AssertNotCalled(t, "Publish", mock.Anything, mock.Anything)
}

func TestUpdateStockHandler_EventFailureDoesNotFailCommand(t *testing.T) {
	ctx := context.Background()
	repo := new(mocks.StockRepository)
	eventBus := new(mocks.EventBus)

	repo.On("Update", ctx, "AAPL", mock.Anything).
		Return(stock.Record{stock.AttrCode: "AAPL"}, nil)
	eventBus.On("Publish", ctx, mock.Anything).Return(assert.AnError)

	handler := NewUpdateStockHandler(repo, eventBus, zap.NewNop())

	err := handler.Handle(ctx, commands.UpdateStockCommand{
		StockCode: "AAPL",
		Quantity:  floatPtr(2),
	})

	require.NoError(t, err)
}

func TestUpdateStockCommand_Validate(t *testing.T) {
	err := commands.UpdateStockCommand{StockCode: "AAPL"}.Validate()
	require.Error(t, err)
	assert.True(t, apperrors.IsValidation(err))

	err = commands.UpdateStockCommand{Quantity: floatPtr(1)}.Validate()
	require.Error(t, err)
	assert.True(t, apperrors.IsValidation(err))

	err = commands.UpdateStockCommand{StockCode: "AAPL", Quantity: floatPtr(1)}.Validate()
	assert.NoError(t, err)
}
