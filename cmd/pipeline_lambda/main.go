package main

import (
	"context"
	"encoding/json"
	"log"
	"log/slog"
	"os"

	"github.com/aws/aws-lambda-go/events"
	"github.com/aws/aws-lambda-go/lambda"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/bedrockruntime"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/textract"
	"github.com/joho/godotenv"

	"github.com/greenmiles/odometer-rewards/pkg/audit"
	"github.com/greenmiles/odometer-rewards/pkg/cache"
	"github.com/greenmiles/odometer-rewards/pkg/objectstore"
	"github.com/greenmiles/odometer-rewards/pkg/ocr"
	"github.com/greenmiles/odometer-rewards/pkg/pipeline"
	"github.com/greenmiles/odometer-rewards/pkg/scheduler"
	dydbstore "github.com/greenmiles/odometer-rewards/pkg/storage/dynamodb"
	"github.com/greenmiles/odometer-rewards/pkg/vision"
)

var uploadPipeline *pipeline.Pipeline

func init() {
	// Load environment variables from .env file (useful for local testing).
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	// Initialize dependencies once.
	cfg, err := config.LoadDefaultConfig(context.TODO())
	if err != nil {
		log.Fatalf("unable to load SDK config, %v", err)
	}

	dbClient := dynamodb.NewFromConfig(cfg)
	uploadsTable := os.Getenv("DYNAMODB_UPLOADS_TABLE_NAME")
	vehiclesTable := os.Getenv("DYNAMODB_VEHICLES_TABLE_NAME")
	rewardsTable := os.Getenv("DYNAMODB_REWARDS_TABLE_NAME")
	accountsTable := os.Getenv("DYNAMODB_ACCOUNTS_TABLE_NAME")
	if uploadsTable == "" || vehiclesTable == "" || rewardsTable == "" || accountsTable == "" {
		log.Fatal("One or more DynamoDB table name environment variables are not set")
	}
	store := dydbstore.New(dbClient, uploadsTable, vehiclesTable, rewardsTable, accountsTable)

	bucket := os.Getenv("S3_UPLOADS_BUCKET")
	if bucket == "" {
		log.Fatal("S3_UPLOADS_BUCKET environment variable not set")
	}
	objects := objectstore.NewS3Store(s3.NewFromConfig(cfg), bucket, os.Getenv("S3_BASE_URL"))

	var resultCache cache.Cache = cache.NewMaybe(nil)
	if cacheTable := os.Getenv("DYNAMODB_CACHE_TABLE_NAME"); cacheTable != "" {
		resultCache = cache.NewMaybe(cache.NewDynamoDBCache(dbClient, cacheTable))
	}
	extractor := ocr.NewExtractor(ocr.NewTextractProvider(textract.NewFromConfig(cfg)))
	modelID := os.Getenv("BEDROCK_MODEL_ID")
	if modelID == "" {
		log.Fatal("BEDROCK_MODEL_ID environment variable not set")
	}
	validator := vision.NewValidator(vision.NewBedrockProvider(bedrockruntime.NewFromConfig(cfg), modelID), resultCache, logger)

	var recorder audit.Recorder = audit.NoOpRecorder{}
	if auditTable := os.Getenv("DYNAMODB_AUDIT_TABLE_NAME"); auditTable != "" {
		recorder = audit.NewDynamoDBRecorder(dbClient, auditTable)
	}

	// The worker consumes the queue, so it never schedules; pass nil.
	uploadPipeline = pipeline.New(store, objects, nil, extractor, validator, recorder, logger)
}

// HandleRequest runs the pipeline for a batch of SQS messages through the
// bounded worker pool. Returning an error makes SQS redeliver the batch;
// uploads that already reached a terminal status are skipped on redelivery.
func HandleRequest(ctx context.Context, sqsEvent events.SQSEvent) error {
	uploadIDs := make([]string, 0, len(sqsEvent.Records))
	for _, message := range sqsEvent.Records {
		var msg scheduler.ProcessingMessage
		if err := json.Unmarshal([]byte(message.Body), &msg); err != nil {
			log.Printf("ERROR: failed to unmarshal processing message %s: %v", message.MessageId, err)
			return err
		}
		uploadIDs = append(uploadIDs, msg.UploadID)
	}

	log.Printf("Processing %d uploads", len(uploadIDs))
	if err := uploadPipeline.ProcessMany(ctx, uploadIDs); err != nil {
		// In a production system, persistent failures would be sent to a DLQ.
		return err
	}

	return nil
}

func main() {
	lambda.Start(HandleRequest)
}
