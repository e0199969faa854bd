// Package dynamodb implements the stock store on DynamoDB. The table keys
// records by stock_code alone; conditional guards on that key enforce the
// create/update contracts atomically in the store.
package dynamodb

import (
	"context"
	"errors"

	"stocks-api/application/ports"
	"stocks-api/domain/stock"
	apperrors "stocks-api/pkg/errors"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/expression"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"go.uber.org/zap"
)

// StockRepository implements ports.StockRepository using DynamoDB.
type StockRepository struct {
	client    *dynamodb.Client
	tableName string
	logger    *zap.Logger
}

// NewStockRepository creates a new StockRepository.
func NewStockRepository(client *dynamodb.Client, tableName string, logger *zap.Logger) ports.StockRepository {
	return &StockRepository{
		client:    client,
		tableName: tableName,
		logger:    logger,
	}
}

func stockKey(code string) map[string]types.AttributeValue {
	return map[string]types.AttributeValue{
		stock.AttrCode: &types.AttributeValueMemberS{Value: code},
	}
}

// Get performs a point lookup by stock code.
func (r *StockRepository) Get(ctx context.Context, code string) (stock.Record, error) {
	input := &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key:       stockKey(code),
	}

	result, err := r.client.GetItem(ctx, input)
	if err != nil {
		r.logger.Error("failed to get stock",
			zap.String("stockCode", code),
			zap.Error(err),
		)
		return nil, apperrors.NewDatabaseError("get", err)
	}

	if result.Item == nil {
		return nil, apperrors.NewNotFoundError("stock")
	}

	var record stock.Record
	if err := attributevalue.UnmarshalMap(result.Item, &record); err != nil {
		return nil, apperrors.NewDatabaseError("get", err)
	}
	return record, nil
}

// Create inserts the full record, guarded on the key not existing. A
// failed guard means the code is already taken and maps to conflict.
func (r *StockRepository) Create(ctx context.Context, record stock.Record) error {
	item, err := attributevalue.MarshalMap(map[string]interface{}(record))
	if err != nil {
		return apperrors.NewDatabaseError("put", err)
	}

	condition := expression.Name(stock.AttrCode).AttributeNotExists()
	expr, err := expression.NewBuilder().WithCondition(condition).Build()
	if err != nil {
		return apperrors.NewDatabaseError("put", err)
	}

	input := &dynamodb.PutItemInput{
		TableName:                 aws.String(r.tableName),
		Item:                      item,
		ConditionExpression:       expr.Condition(),
		ExpressionAttributeNames:  expr.Names(),
		ExpressionAttributeValues: expr.Values(),
	}

	if _, err := r.client.PutItem(ctx, input); err != nil {
		var ccf *types.ConditionalCheckFailedException
		if errors.As(err, &ccf) {
			return apperrors.NewConflictError("stock already exists").WithCause(err)
		}
		r.logger.Error("failed to create stock",
			zap.String("stockCode", record.Code()),
			zap.Error(err),
		)
		return apperrors.NewDatabaseError("put", err)
	}

	r.logger.Debug("stock created", zap.String("stockCode", record.Code()))
	return nil
}

// Update applies an additive SET over the supplied attributes, guarded on
// the key existing. A failed guard means the record is absent.
func (r *StockRepository) Update(ctx context.Context, code string, updates map[string]interface{}) (stock.Record, error) {
	var updateExpr expression.UpdateBuilder
	for attr, value := range updates {
		updateExpr = updateExpr.Set(expression.Name(attr), expression.Value(value))
	}

	condition := expression.Name(stock.AttrCode).AttributeExists()

	expr, err := expression.NewBuilder().
		WithUpdate(updateExpr).
		WithCondition(condition).
		Build()
	if err != nil {
		return nil, apperrors.NewDatabaseError("update", err)
	}

	input := &dynamodb.UpdateItemInput{
		TableName:                 aws.String(r.tableName),
		Key:                       stockKey(code),
		UpdateExpression:          expr.Update(),
		ConditionExpression:       expr.Condition(),
		ExpressionAttributeNames:  expr.Names(),
		ExpressionAttributeValues: expr.Values(),
		ReturnValues:              types.ReturnValueAllNew,
	}

	result, err := r.client.UpdateItem(ctx, input)
	if err != nil {
		var ccf *types.ConditionalCheckFailedException
		if errors.As(err, &ccf) {
			return nil, apperrors.NewNotFoundError("stock")
		}
		r.logger.Error("failed to update stock",
			zap.String("stockCode", code),
			zap.Error(err),
		)
		return nil, apperrors.NewDatabaseError("update", err)
	}

	var record stock.Record
	if err := attributevalue.UnmarshalMap(result.Attributes, &record); err != nil {
		return nil, apperrors.NewDatabaseError("update", err)
	}

	r.logger.Debug("stock updated", zap.String("stockCode", code))
	return record, nil
}

// Delete removes the record, requesting the prior item back. No prior item
// means the code never existed.
func (r *StockRepository) Delete(ctx context.Context, code string) (stock.Record, error) {
	input := &dynamodb.DeleteItemInput{
		TableName:    aws.String(r.tableName),
		Key:          stockKey(code),
		ReturnValues: types.ReturnValueAllOld,
	}

	result, err := r.client.DeleteItem(ctx, input)
	if err != nil {
		r.logger.Error("failed to delete stock",
			zap.String("stockCode", code),
			zap.Error(err),
		)
		return nil, apperrors.NewDatabaseError("delete", err)
	}

	if len(result.Attributes) == 0 {
		return nil, apperrors.NewNotFoundError("stock")
	}

	var record stock.Record
	if err := attributevalue.UnmarshalMap(result.Attributes, &record); err != nil {
		return nil, apperrors.NewDatabaseError("delete", err)
	}

	r.logger.Debug("stock deleted", zap.String("stockCode", code))
	return record, nil
}

// Scan reads the collection with an AND-combined equality filter. One scan
// round trip only: no continuation across pages, matching the service's
// list contract.
func (r *StockRepository) Scan(ctx context.Context, filters map[string]string) ([]stock.Record, error) {
	input := &dynamodb.ScanInput{
		TableName: aws.String(r.tableName),
	}

	if len(filters) > 0 {
		var filter expression.ConditionBuilder
		first := true
		for attr, value := range filters {
			cond := expression.Name(attr).Equal(expression.Value(value))
			if first {
				filter = cond
				first = false
			} else {
				filter = filter.And(cond)
			}
		}

		expr, err := expression.NewBuilder().WithFilter(filter).Build()
		if err != nil {
			return nil, apperrors.NewDatabaseError("scan", err)
		}

		input.FilterExpression = expr.Filter()
		input.ExpressionAttributeNames = expr.Names()
		input.ExpressionAttributeValues = expr.Values()
	}

	result, err := r.client.Scan(ctx, input)
	if err != nil {
		r.logger.Error("failed to scan stocks", zap.Error(err))
		return nil, apperrors.NewDatabaseError("scan", err)
	}

	records := make([]stock.Record, 0, len(result.Items))
	for _, item := range result.Items {
		var record stock.Record
		if err := attributevalue.UnmarshalMap(item, &record); err != nil {
			return nil, apperrors.NewDatabaseError("scan", err)
		}
		records = append(records, record)
	}
	return records, nil
}
