package main

import (
	"context"

	"github.com/aws/aws-lambda-go/events"
	"github.com/aws/aws-lambda-go/lambda"
	chiadapter "github.com/awslabs/aws-lambda-go-api-proxy/chi"

	"github.com/saulo-duarte/quizbank-lambda/internal/config"
	"github.com/saulo-duarte/quizbank-lambda/internal/container"
)

var adapter *chiadapter.ChiLambda

func init() {
	config.Init()

	cfg, err := config.Load()
	if err != nil {
		config.Log.WithError(err).Fatal("Failed to load configuration")
	}

	c, err := container.New(context.Background(), cfg)
	if err != nil {
		config.Log.WithError(err).Fatal("Failed to build container")
	}

	adapter = chiadapter.New(c.Router())
}

func handler(ctx context.Context, req events.APIGatewayProxyRequest) (events.APIGatewayProxyResponse, error) {
	return adapter.ProxyWithContext(ctx, req)
}

func main() {
	lambda.Start(handler)
}
