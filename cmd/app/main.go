package main

import (
	"context"
	"log"
	"log/slog"
	"net/http"
	"os"

	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/bedrockruntime"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/sqs"
	"github.com/aws/aws-sdk-go-v2/service/textract"
	"github.com/go-chi/chi/v5"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/greenmiles/odometer-rewards/pkg/audit"
	"github.com/greenmiles/odometer-rewards/pkg/cache"
	"github.com/greenmiles/odometer-rewards/pkg/handlers"
	"github.com/greenmiles/odometer-rewards/pkg/middleware"
	"github.com/greenmiles/odometer-rewards/pkg/objectstore"
	"github.com/greenmiles/odometer-rewards/pkg/ocr"
	"github.com/greenmiles/odometer-rewards/pkg/pipeline"
	"github.com/greenmiles/odometer-rewards/pkg/scheduler"
	dydbstore "github.com/greenmiles/odometer-rewards/pkg/storage/dynamodb"
	"github.com/greenmiles/odometer-rewards/pkg/vision"
)

func main() {
	// Load environment variables from .env file
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	// AWS Session
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

	// SQS Client and Scheduler
	sqsClient := sqs.NewFromConfig(cfg)
	sqsQueueURL := os.Getenv("SQS_QUEUE_URL")
	if sqsQueueURL == "" {
		log.Fatal("SQS_QUEUE_URL environment variable not set")
	}
	sqsScheduler := scheduler.NewSQSScheduler(sqsClient, sqsQueueURL)

	// Image storage
	bucket := os.Getenv("S3_UPLOADS_BUCKET")
	if bucket == "" {
		log.Fatal("S3_UPLOADS_BUCKET environment variable not set")
	}
	objects := objectstore.NewS3Store(s3.NewFromConfig(cfg), bucket, os.Getenv("S3_BASE_URL"))

	// External services, with an optional shared result cache.
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

	uploadPipeline := pipeline.New(store, objects, sqsScheduler, extractor, validator, recorder, logger)

	// Create our handler and router
	handler := handlers.NewApiHandler(store, uploadPipeline, recorder, logger)
	router := chi.NewRouter()
	router.Use(middleware.NewStructuredLogger(logger))
	handler.Mount(router)
	router.Handle("/metrics", promhttp.Handler())
	router.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	port := os.Getenv("HTTP_PORT")
	if port == "" {
		port = "8080" // Default port if not specified
	}

	log.Printf("Starting server on port %s", port)

	if err := http.ListenAndServe(":"+port, router); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
