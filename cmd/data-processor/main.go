// data-processor is the Lambda function triggered per uploaded order CSV. It
// validates and transforms the rows and writes the valid records as a JSON
// batch to the processed bucket, partitioned by the file's date.
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log"

	"github.com/aws/aws-lambda-go/events"
	"github.com/aws/aws-lambda-go/lambda"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"

	"github.com/ShreeyashPatil2708/ecommerce-order-analytics/internal/config"
	"github.com/ShreeyashPatil2708/ecommerce-order-analytics/internal/ingest"
	"github.com/ShreeyashPatil2708/ecommerce-order-analytics/internal/storage"
)

// objectCreatedDetail is the "Object Created" detail payload inside the
// EventBridge envelope.
type objectCreatedDetail struct {
	Bucket struct {
		Name string `json:"name"`
	} `json:"bucket"`
	Object struct {
		Key string `json:"key"`
	} `json:"object"`
}

var processor *ingest.Processor

func init() {
	cfg, err := awsconfig.LoadDefaultConfig(context.Background())
	if err != nil {
		log.Fatalf("load aws config: %v", err)
	}
	processor = &ingest.Processor{
		Store:           storage.NewS3Store(s3.NewFromConfig(cfg)),
		ProcessedBucket: config.Load().ProcessedBucket,
	}
}

func handler(ctx context.Context, event events.CloudWatchEvent) (ingest.Result, error) {
	var detail objectCreatedDetail
	if err := json.Unmarshal(event.Detail, &detail); err != nil {
		log.Printf("ERROR: malformed event detail: %v", err)
		return ingest.Result{}, fmt.Errorf("parse event detail: %w", err)
	}
	if detail.Bucket.Name == "" || detail.Object.Key == "" {
		return ingest.Result{}, fmt.Errorf("event detail missing bucket or key: %s", event.Detail)
	}

	res, err := processor.Process(ctx, detail.Bucket.Name, detail.Object.Key)
	if err != nil {
		log.Printf("ERROR: %v", err)
		return ingest.Result{}, err
	}
	return res, nil
}

func main() {
	lambda.Start(handler)
}
