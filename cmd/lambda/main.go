package main

import (
	"context"
	"log"
	"time"

	"stocks-api/infrastructure/config"
	"stocks-api/infrastructure/di"
	"stocks-api/interfaces/http/rest"

	"github.com/aws/aws-lambda-go/events"
	"github.com/aws/aws-lambda-go/lambda"
	chiadapter "github.com/awslabs/aws-lambda-go-api-proxy/chi"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// Lambda lifecycle state, initialized once per cold start.
var (
	chiLambda     *chiadapter.ChiLambdaV2
	container     *di.Container
	coldStart     = true
	coldStartTime time.Time
)

// init runs during cold start.
func init() {
	coldStartTime = time.Now()

	ctx := context.Background()

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	container, err = di.InitializeContainer(ctx, cfg)
	if err != nil {
		log.Fatalf("Failed to initialize container: %v", err)
	}

	router := rest.NewRouter(container.CommandBus, container.QueryBus, container.Logger)
	handler := router.Setup()

	chiRouter, ok := handler.(*chi.Mux)
	if !ok {
		log.Fatal("Failed to cast handler to chi.Mux")
	}
	chiLambda = chiadapter.NewV2(chiRouter)

	container.Logger.Info("lambda cold start completed",
		zap.Duration("duration", time.Since(coldStartTime)),
	)
}

// Handler is the Lambda function handler. API Gateway request ids flow
// through as X-Request-ID so envelopes correlate with gateway logs.
func Handler(ctx context.Context, req events.APIGatewayV2HTTPRequest) (events.APIGatewayV2HTTPResponse, error) {
	if req.RequestContext.RequestID != "" {
		if req.Headers == nil {
			req.Headers = make(map[string]string)
		}
		if req.Headers["x-request-id"] == "" && req.Headers["X-Request-ID"] == "" {
			req.Headers["X-Request-ID"] = req.RequestContext.RequestID
		}
	}

	resp, err := chiLambda.ProxyWithContextV2(ctx, req)

	if resp.Headers == nil {
		resp.Headers = make(map[string]string)
	}
	if coldStart {
		resp.Headers["X-Cold-Start"] = "true"
		coldStart = false
	}

	if resp.StatusCode >= 500 {
		container.Logger.Error("lambda error response",
			zap.String("method", req.RequestContext.HTTP.Method),
			zap.String("path", req.RequestContext.HTTP.Path),
			zap.Int("status", resp.StatusCode),
			zap.String("requestID", req.RequestContext.RequestID),
		)
	}

	return resp, err
}

func main() {
	lambda.Start(Handler)
}
