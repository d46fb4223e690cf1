//go:build lambda
// +build lambda

package main

import (
	"context"

	"github.com/aws/aws-lambda-go/events"
	"github.com/aws/aws-lambda-go/lambda"
	ginadapter "github.com/awslabs/aws-lambda-go-api-proxy/gin"
	"github.com/davecgh/go-spew/spew"
	"github.com/prometheus/client_golang/prometheus"
	httpclient "github.com/zra-sdk/zra-demo/internal/client/http"
	"github.com/zra-sdk/zra-demo/internal/client/zra"
	"github.com/zra-sdk/zra-demo/internal/config"
	"github.com/zra-sdk/zra-demo/internal/console"
	"github.com/zra-sdk/zra-demo/internal/logger"
	"github.com/zra-sdk/zra-demo/internal/metrics"
	"github.com/zra-sdk/zra-demo/internal/render/board"
	"github.com/zra-sdk/zra-demo/internal/workflow"
	"go.uber.org/zap"
)

// @title           ZRA Demo Console
// @version         1.0
// @description     Drives the taxpayer verification, tax calculation, compliance and report workflows against the integration service.

// @host      localhost:8000
// @BasePath  /api/v1

var ginLambda *ginadapter.GinLambda

func init() {
	cfg, err := config.Load("")
	if err != nil {
		logger.InitLogger(config.DefaultConfig().Stage)
		logger.Fatal("Unable to load configuration", zap.Error(err))
	}

	// Initialize logger
	logger.InitLoggerWithConfig(logger.LoggerConfig{
		Level:      cfg.LogLevel,
		Stage:      cfg.Stage,
		EnableJSON: true,
	})

	registry := prometheus.NewRegistry()
	collector := metrics.NewPrometheusCollector(registry)

	clientOpts := []httpclient.ClientOption{httpclient.WithMetricsCollector(collector)}
	if cfg.Service.Timeout > 0 {
		clientOpts = append(clientOpts, httpclient.WithTimeout(cfg.Service.Timeout))
	}
	client := zra.NewClient(cfg.Service.BaseURL, clientOpts...)

	// Lambda has no terminal; the engine renders into an in-memory board.
	engine := workflow.NewEngineFromConfig(cfg, client, board.New(100), workflow.WithResultRecorder(collector))

	router := console.NewRouter(console.Deps{
		Config:   cfg,
		Engine:   engine,
		Gatherer: registry,
	})

	ginLambda = ginadapter.New(router)
}

func Handler(ctx context.Context, req events.APIGatewayProxyRequest) (events.APIGatewayProxyResponse, error) {
	// Add debug logging
	logger.Debug("Received Lambda request",
		zap.String("path", req.Path),
		zap.String("request", spew.Sdump(req)),
	)

	return ginLambda.ProxyWithContext(ctx, req)
}

func main() {
	defer logger.Sync()
	lambda.Start(Handler)
}
