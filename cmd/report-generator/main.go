// report-generator is the Lambda function that builds and emails the daily
// sales report. It runs on a schedule (defaulting to yesterday's data) and
// can be invoked manually with {"report_date": "YYYY-MM-DD"}.
package main

import (
	"context"
	"log"

	"github.com/aws/aws-lambda-go/lambda"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/ses"

	"github.com/ShreeyashPatil2708/ecommerce-order-analytics/internal/config"
	"github.com/ShreeyashPatil2708/ecommerce-order-analytics/internal/mail"
	"github.com/ShreeyashPatil2708/ecommerce-order-analytics/internal/report"
	"github.com/ShreeyashPatil2708/ecommerce-order-analytics/internal/storage"
)

var generator *report.Generator

func init() {
	cfg, err := awsconfig.LoadDefaultConfig(context.Background())
	if err != nil {
		log.Fatalf("load aws config: %v", err)
	}
	generator = &report.Generator{
		Store:  storage.NewS3Store(s3.NewFromConfig(cfg)),
		Mailer: mail.NewSESMailer(ses.NewFromConfig(cfg)),
		Cfg:    config.Load(),
	}
}

func handler(ctx context.Context, event report.Event) (report.Result, error) {
	return generator.Run(ctx, event)
}

func main() {
	lambda.Start(handler)
}
