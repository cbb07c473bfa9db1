// The sweeper runs the two periodic sweeps: batch distribution of pending
// rewards and confirmation reconciliation of sent ones. It also re-enqueues
// uploads stuck in PROCESSING.
package main

import (
	"context"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/sqs"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/greenmiles/odometer-rewards/pkg/audit"
	"github.com/greenmiles/odometer-rewards/pkg/chain"
	"github.com/greenmiles/odometer-rewards/pkg/distribution"
	"github.com/greenmiles/odometer-rewards/pkg/pipeline"
	"github.com/greenmiles/odometer-rewards/pkg/scheduler"
	dydbstore "github.com/greenmiles/odometer-rewards/pkg/storage/dynamodb"
)

const (
	distributionInterval   = time.Minute
	reconciliationInterval = 30 * time.Second
	recoveryInterval       = 5 * time.Minute
	stuckUploadMaxAge      = 15 * time.Minute
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

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

	ledgerURL := os.Getenv("LEDGER_BASE_URL")
	if ledgerURL == "" {
		log.Fatal("LEDGER_BASE_URL environment variable not set")
	}
	chainClient := chain.NewHTTPClient(ledgerURL, os.Getenv("LEDGER_API_KEY"))

	var recorder audit.Recorder = audit.NoOpRecorder{}
	if auditTable := os.Getenv("DYNAMODB_AUDIT_TABLE_NAME"); auditTable != "" {
		recorder = audit.NewDynamoDBRecorder(dbClient, auditTable)
	}

	distributor := distribution.NewDistributor(store, chainClient, recorder, logger)
	reconciler := distribution.NewReconciler(store, chainClient, recorder, logger)

	var sqsScheduler scheduler.Scheduler
	if queueURL := os.Getenv("SQS_QUEUE_URL"); queueURL != "" {
		sqsScheduler = scheduler.NewSQSScheduler(sqs.NewFromConfig(cfg), queueURL)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go runLoop(ctx, logger, "distribution", distributionInterval, distributor.SweepPending)
	go runLoop(ctx, logger, "reconciliation", reconciliationInterval, reconciler.SweepSent)
	if sqsScheduler != nil {
		// Only the recovery path of the pipeline runs here, so the OCR and
		// vision dependencies stay unset.
		uploadPipeline := &pipeline.Pipeline{Store: store, Scheduler: sqsScheduler, Logger: logger}
		go runLoop(ctx, logger, "upload recovery", recoveryInterval, func(ctx context.Context) error {
			_, err := uploadPipeline.RecoverStuck(ctx, stuckUploadMaxAge)
			return err
		})
	}

	// Metrics endpoint.
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())
	port := os.Getenv("METRICS_PORT")
	if port == "" {
		port = "9090"
	}
	server := &http.Server{Addr: ":" + port, Handler: mux}
	go func() {
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Failed to start metrics server: %v", err)
		}
	}()

	log.Println("Sweeper started")
	<-ctx.Done()
	log.Println("Shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	_ = server.Shutdown(shutdownCtx)
}

// runLoop invokes sweep immediately and then on every tick until the context
// is cancelled.
func runLoop(ctx context.Context, logger *slog.Logger, name string, interval time.Duration, sweep func(context.Context) error) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		if err := sweep(ctx); err != nil {
			logger.Error("sweep failed", "sweep", name, "error", err)
		}
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
		}
	}
}
