// Package di wires the application together. Providers build each
// dependency from the explicit Config struct; nothing is a package-level
// singleton.
package di

import (
	"context"
	"fmt"

	"stocks-api/application/commands"
	"stocks-api/application/commands/bus"
	cmdhandlers "stocks-api/application/commands/handlers"
	"stocks-api/application/ports"
	"stocks-api/application/queries"
	querybus "stocks-api/application/queries/bus"
	queryhandlers "stocks-api/application/queries/handlers"
	"stocks-api/infrastructure/config"
	"stocks-api/infrastructure/messaging"
	ebmessaging "stocks-api/infrastructure/messaging/eventbridge"
	"stocks-api/infrastructure/persistence/dynamodb"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	awsdynamodb "github.com/aws/aws-sdk-go-v2/service/dynamodb"
	awseventbridge "github.com/aws/aws-sdk-go-v2/service/eventbridge"
	"go.uber.org/zap"
)

// Container holds all application dependencies.
type Container struct {
	Config     *config.Config
	Logger     *zap.Logger
	StockRepo  ports.StockRepository
	EventBus   ports.EventBus
	CommandBus *bus.CommandBus
	QueryBus   *querybus.QueryBus
}

// ProvideLogger creates the zap logger for the configured environment.
func ProvideLogger(cfg *config.Config) (*zap.Logger, error) {
	var zapCfg zap.Config
	if cfg.IsProduction() {
		zapCfg = zap.NewProductionConfig()
	} else {
		zapCfg = zap.NewDevelopmentConfig()
	}

	if level, err := zap.ParseAtomicLevel(cfg.LogLevel); err == nil {
		zapCfg.Level = level
	}

	return zapCfg.Build()
}

// ProvideAWSConfig loads the AWS SDK configuration, picking up credentials
// from the default chain.
func ProvideAWSConfig(ctx context.Context, cfg *config.Config) (aws.Config, error) {
	return awsconfig.LoadDefaultConfig(ctx,
		awsconfig.WithRegion(cfg.AWSRegion),
	)
}

// ProvideDynamoDBClient is the explicit store-client factory. An endpoint
// override points the client at a local DynamoDB.
func ProvideDynamoDBClient(awsCfg aws.Config, cfg *config.Config) *awsdynamodb.Client {
	return awsdynamodb.NewFromConfig(awsCfg, func(o *awsdynamodb.Options) {
		if cfg.DynamoDBEndpoint != "" {
			o.BaseEndpoint = aws.String(cfg.DynamoDBEndpoint)
		}
	})
}

// ProvideEventBridgeClient creates an EventBridge client.
func ProvideEventBridgeClient(awsCfg aws.Config) *awseventbridge.Client {
	return awseventbridge.NewFromConfig(awsCfg)
}

// ProvideStockRepository creates the DynamoDB-backed stock store.
func ProvideStockRepository(client *awsdynamodb.Client, cfg *config.Config, logger *zap.Logger) ports.StockRepository {
	return dynamodb.NewStockRepository(client, cfg.DynamoDBTable, logger)
}

// ProvideEventBus creates the event publisher, or a no-op bus when no
// event bus is configured.
func ProvideEventBus(client *awseventbridge.Client, cfg *config.Config, logger *zap.Logger) ports.EventBus {
	if cfg.EventBusName == "" {
		return messaging.NewNoopEventBus()
	}
	return ebmessaging.NewPublisher(client, cfg.EventBusName, logger)
}

// ProvideCommandBus creates the command bus with every mutation handler
// registered behind the logging middleware.
func ProvideCommandBus(repo ports.StockRepository, eventBus ports.EventBus, logger *zap.Logger) (*bus.CommandBus, error) {
	commandBus := bus.NewCommandBus()
	logging := bus.LoggingMiddleware(logger)

	registrations := []struct {
		cmd     bus.Command
		handler bus.CommandHandler
	}{
		{commands.CreateStockCommand{}, cmdhandlers.NewCreateStockHandler(repo, eventBus, logger)},
		{commands.UpdateStockCommand{}, cmdhandlers.NewUpdateStockHandler(repo, eventBus, logger)},
		{commands.DeleteStockCommand{}, cmdhandlers.NewDeleteStockHandler(repo, eventBus, logger)},
	}

	for _, reg := range registrations {
		if err := commandBus.Register(reg.cmd, bus.Chain(reg.handler, logging)); err != nil {
			return nil, fmt.Errorf("failed to register command handler: %w", err)
		}
	}

	return commandBus, nil
}

// ProvideQueryBus creates the query bus with every read handler registered.
func ProvideQueryBus(repo ports.StockRepository, logger *zap.Logger) (*querybus.QueryBus, error) {
	queryBus := querybus.NewQueryBus()

	registrations := []struct {
		query   querybus.Query
		handler querybus.QueryHandler
	}{
		{queries.GetStockQuery{}, queryhandlers.NewGetStockHandler(repo, logger)},
		{queries.ListStocksQuery{}, queryhandlers.NewListStocksHandler(repo, logger)},
	}

	for _, reg := range registrations {
		if err := queryBus.Register(reg.query, reg.handler); err != nil {
			return nil, fmt.Errorf("failed to register query handler: %w", err)
		}
	}

	return queryBus, nil
}
