// Package pipeline orchestrates the upload lifecycle: synchronous ingestion
// followed by the staged asynchronous processing run.
package pipeline

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/greenmiles/odometer-rewards/pkg/audit"
	"github.com/greenmiles/odometer-rewards/pkg/carbon"
	"github.com/greenmiles/odometer-rewards/pkg/models"
	"github.com/greenmiles/odometer-rewards/pkg/objectstore"
	"github.com/greenmiles/odometer-rewards/pkg/ocr"
	"github.com/greenmiles/odometer-rewards/pkg/rewards"
	"github.com/greenmiles/odometer-rewards/pkg/scheduler"
	"github.com/greenmiles/odometer-rewards/pkg/storage"
	"github.com/greenmiles/odometer-rewards/pkg/vehicles"
	"github.com/greenmiles/odometer-rewards/pkg/vision"
)

// Ingestion limits. Violations are client-visible errors; no record is
// created.
const (
	MaxImageBytes = 10 << 20
)

var (
	ErrEmptyImage       = errors.New("image is empty")
	ErrImageTooLarge    = errors.New("image exceeds the 10 MiB limit")
	ErrInvalidImageType = errors.New("image must be JPEG or PNG")
)

var allowedContentTypes = map[string]bool{
	"image/jpeg": true,
	"image/jpg":  true,
	"image/png":  true,
}

// OcrExtractor extracts the odometer reading from image bytes.
type OcrExtractor interface {
	Extract(ctx context.Context, image []byte) (*ocr.Reading, error)
}

// VisionValidator runs the three vision-AI calls.
type VisionValidator interface {
	Analyze(ctx context.Context, imageRef string, image []byte) (*models.VisionAnalysis, error)
	DetectVehicle(ctx context.Context, imageRef string, image []byte) (*models.VehicleDetection, error)
	ValidateOCR(ctx context.Context, imageRef string, image []byte, candidateMileage float64) (*models.OcrValidation, error)
}

// Make sure the concrete services conform
var (
	_ OcrExtractor    = (*ocr.Extractor)(nil)
	_ VisionValidator = (*vision.Validator)(nil)
)

// Pipeline drives an upload from ingestion to a terminal status.
type Pipeline struct {
	Store     storage.PipelineStore
	Objects   objectstore.Store
	Scheduler scheduler.Scheduler
	Ocr       OcrExtractor
	Vision    VisionValidator
	Carbon    *carbon.Calculator
	Ledger    *rewards.Ledger
	Audit     audit.Recorder
	Logger    *slog.Logger

	// Workers bounds ProcessMany's concurrency, capping pressure on the
	// external OCR and vision services.
	Workers int
}

// New creates a fully wired Pipeline.
func New(store storage.PipelineStore, objects objectstore.Store, sched scheduler.Scheduler, ocrExtractor OcrExtractor, visionValidator VisionValidator, recorder audit.Recorder, logger *slog.Logger) *Pipeline {
	return &Pipeline{
		Store:     store,
		Objects:   objects,
		Scheduler: sched,
		Ocr:       ocrExtractor,
		Vision:    visionValidator,
		Carbon:    carbon.NewCalculator(store),
		Ledger:    rewards.NewLedger(store),
		Audit:     recorder,
		Logger:    logger,
		Workers:   4,
	}
}

// Ingest validates and stores the image, persists the upload row in
// PROCESSING, and schedules the asynchronous run. Returns as soon as the row
// exists.
func (p *Pipeline) Ingest(ctx context.Context, userID, vehicleID string, image []byte, contentType string) (*models.Upload, error) {
	if len(image) == 0 {
		return nil, ErrEmptyImage
	}
	if len(image) > MaxImageBytes {
		return nil, ErrImageTooLarge
	}
	if !allowedContentTypes[contentType] {
		return nil, ErrInvalidImageType
	}

	uploadID := uuid.New().String()
	key := objectstore.BuildKey(userID, uploadID)
	hash := sha256.Sum256(image)

	stored, err := p.Objects.Upload(ctx, key, image, contentType)
	if err != nil {
		return nil, fmt.Errorf("failed to store image: %w", err)
	}

	upload := &models.Upload{
		Id:               uploadID,
		UserId:           userID,
		VehicleId:        vehicleID,
		ImageKey:         stored.Key,
		ImageUrl:         stored.Url,
		ThumbnailUrl:     stored.ThumbnailUrl,
		ImageHash:        hex.EncodeToString(hash[:]),
		Status:           models.UploadProcessing,
		ValidationStatus: models.ValidationPending,
		CreatedAt:        time.Now(),
		UpdatedAt:        time.Now(),
	}

	created, err := p.Store.CreateUpload(ctx, upload)
	if err != nil {
		return nil, fmt.Errorf("failed to create upload record: %w", err)
	}

	if err := p.Scheduler.ScheduleProcessing(ctx, uploadID); err != nil {
		// The row exists and the stuck-upload sweep will pick it up, so
		// ingestion still succeeds.
		p.Logger.Error("failed to schedule upload processing", "upload_id", uploadID, "error", err)
	}

	p.record(ctx, audit.EventUploadIngested, userID, map[string]string{"upload_id": uploadID})

	return created, nil
}

// Process runs the staged pipeline for one upload. Safe to re-run on a row
// that is still PROCESSING; it fully overwrites derived fields. A row that
// already reached a terminal status is left untouched.
func (p *Pipeline) Process(ctx context.Context, uploadID string) error {
	upload, err := p.Store.GetUpload(ctx, uploadID)
	if err != nil {
		return fmt.Errorf("failed to load upload %s: %w", uploadID, err)
	}
	if models.IsTerminalUpload(upload.Status) {
		p.Logger.Info("upload already terminal, skipping", "upload_id", uploadID, "status", upload.Status)
		return nil
	}

	started := time.Now()

	image, err := p.Objects.Download(ctx, upload.ImageKey)
	if err != nil {
		return fmt.Errorf("failed to download image for upload %s: %w", uploadID, err)
	}

	// Stage 1: OCR. Failure here is a property of the image, not of the
	// system; the upload fails terminally instead of being retried.
	ocrStart := time.Now()
	reading, err := p.Ocr.Extract(ctx, image)
	upload.OcrDurationMs = time.Since(ocrStart).Milliseconds()
	if err != nil {
		return p.fail(ctx, upload, fmt.Sprintf("ocr extraction failed: %v", err))
	}
	upload.ExtractedMileage = &reading.Mileage
	upload.OcrConfidence = reading.Confidence
	upload.OcrRawText = reading.RawText
	upload.OcrMethod = reading.Method

	// Stage 2: vision analysis, detection, and cross-validation.
	aiStart := time.Now()
	analysis, err := p.Vision.Analyze(ctx, upload.ImageKey, image)
	if err != nil {
		return p.fail(ctx, upload, fmt.Sprintf("image analysis failed: %v", err))
	}
	upload.AiAnalysis = analysis

	detection, err := p.Vision.DetectVehicle(ctx, upload.ImageKey, image)
	if err != nil {
		return p.fail(ctx, upload, fmt.Sprintf("vehicle detection failed: %v", err))
	}
	upload.DetectedVehicle = detection

	validation, err := p.Vision.ValidateOCR(ctx, upload.ImageKey, image, reading.Mileage)
	if err != nil {
		return p.fail(ctx, upload, fmt.Sprintf("mileage validation failed: %v", err))
	}
	upload.AiValidation = validation
	upload.AiDurationMs = time.Since(aiStart).Milliseconds()

	// Stage 3: vehicle matching.
	fleet, err := p.Store.ListVehiclesByUserID(ctx, upload.UserId)
	if err != nil {
		return fmt.Errorf("failed to list vehicles for user %s: %w", upload.UserId, err)
	}
	match := vehicles.MatchVehicle(vehiclePtrs(fleet), detection, upload.VehicleId)

	// Stage 4: final mileage. Confidence is the average of the OCR reading
	// (0-100) and the AI cross-check (0-1), normalized to the 0-1 scale. The
	// model's suggestion overrides the OCR value when present.
	upload.MileageConfidence = (reading.Confidence/100 + validation.Confidence) / 2
	finalMileage := reading.Mileage
	if validation.SuggestedMileage != nil {
		finalMileage = *validation.SuggestedMileage
	}
	upload.FinalMileage = &finalMileage

	// Stage 5: carbon, against the matched vehicle's last approved reading.
	matchedVehicleID := ""
	var matchedVehicle *models.Vehicle
	if match != nil {
		matchedVehicle = match.Vehicle
		matchedVehicleID = match.Vehicle.Id
		upload.VehicleId = matchedVehicleID
	}
	carbonResult, err := p.Carbon.Compute(ctx, upload.UserId, matchedVehicleID, finalMileage, matchedVehicle)
	if err != nil {
		return fmt.Errorf("failed to compute carbon for upload %s: %w", uploadID, err)
	}
	upload.MileageDelta = carbonResult.MileageDelta
	upload.CarbonSavedKg = carbonResult.CarbonSavedKg

	switch {
	case !validation.IsValid:
		upload.ValidationStatus = models.ValidationRejected
	case match == nil:
		// A readable photo of an unregistered vehicle needs the user to
		// confirm or create the vehicle before it can earn anything.
		upload.ValidationStatus = models.ValidationFlagged
	default:
		upload.ValidationStatus = models.ValidationApproved
	}

	upload.Status = models.UploadCompleted
	upload.ProcessingDurationMs = time.Since(started).Milliseconds()
	upload.UpdatedAt = time.Now()

	if err := p.Store.CompleteUpload(ctx, upload); err != nil {
		if errors.Is(err, storage.ErrUploadAlreadyTerminal) {
			p.Logger.Info("upload completed by a concurrent run", "upload_id", uploadID)
			return nil
		}
		return fmt.Errorf("failed to complete upload %s: %w", uploadID, err)
	}

	p.record(ctx, audit.EventUploadCompleted, upload.UserId, map[string]any{
		"upload_id":         uploadID,
		"validation_status": upload.ValidationStatus,
		"final_mileage":     finalMileage,
	})

	if upload.ValidationStatus != models.ValidationApproved {
		return nil
	}
	return p.approve(ctx, upload, carbonResult)
}

// approve creates the reward and bumps the vehicle's running totals after an
// approved upload.
func (p *Pipeline) approve(ctx context.Context, upload *models.Upload, carbonResult *carbon.Result) error {
	carbonGrams := carbonResult.CarbonSavedKg * 1000
	proof := models.ProofData{
		UploadId:    upload.Id,
		ImageHash:   upload.ImageHash,
		Miles:       carbonResult.MileageDelta,
		CarbonGrams: carbonGrams,
	}

	reward, err := p.Ledger.CreateUploadReward(ctx, upload.UserId, upload.Id, carbonResult.MileageDelta, carbonGrams, proof)
	if err != nil {
		return fmt.Errorf("failed to create reward for upload %s: %w", upload.Id, err)
	}

	p.record(ctx, audit.EventRewardCreated, upload.UserId, map[string]string{
		"upload_id": upload.Id,
		"reward_id": reward.Id,
		"amount":    reward.Amount,
	})

	if upload.VehicleId != "" {
		if err := p.Store.AddVehicleTotals(ctx, upload.VehicleId, carbonResult.MileageDelta, carbonResult.CarbonSavedKg); err != nil {
			// Totals are derived bookkeeping; the reward already exists.
			p.Logger.Error("failed to update vehicle totals", "vehicle_id", upload.VehicleId, "error", err)
		}
	}

	return nil
}

// ProcessMany runs Process for a batch of uploads through a bounded worker
// pool. Every upload is attempted regardless of other failures; the joined
// per-upload errors are returned so a queue consumer can redeliver the batch.
// Redelivery is safe because Process skips terminal uploads.
func (p *Pipeline) ProcessMany(ctx context.Context, uploadIDs []string) error {
	workers := p.Workers
	if workers < 1 {
		workers = 1
	}

	sem := make(chan struct{}, workers)
	var (
		wg   sync.WaitGroup
		mu   sync.Mutex
		errs []error
	)
	for _, id := range uploadIDs {
		wg.Add(1)
		sem <- struct{}{}
		go func(uploadID string) {
			defer wg.Done()
			defer func() { <-sem }()
			if err := p.Process(ctx, uploadID); err != nil {
				p.Logger.Error("upload processing failed", "upload_id", uploadID, "error", err)
				mu.Lock()
				errs = append(errs, err)
				mu.Unlock()
			}
		}(id)
	}
	wg.Wait()
	return errors.Join(errs...)
}

// RecoverStuck re-enqueues uploads that have sat in PROCESSING longer than
// maxAge, which happens when a worker dies mid-run. Re-running is safe
// because every stage overwrites its derived fields.
func (p *Pipeline) RecoverStuck(ctx context.Context, maxAge time.Duration) (int, error) {
	stuck, err := p.Store.GetStuckUploads(ctx, maxAge)
	if err != nil {
		return 0, fmt.Errorf("failed to list stuck uploads: %w", err)
	}

	requeued := 0
	for _, upload := range stuck {
		if err := p.Scheduler.ScheduleProcessing(ctx, upload.Id); err != nil {
			p.Logger.Error("failed to re-enqueue stuck upload", "upload_id", upload.Id, "error", err)
			continue
		}
		requeued++
	}

	if requeued > 0 {
		p.Logger.Info("re-enqueued stuck uploads", "count", requeued)
	}
	return requeued, nil
}

// fail moves the upload to FAILED/REJECTED with the reason. The message is
// consumed; image-level failures are terminal, not retryable.
func (p *Pipeline) fail(ctx context.Context, upload *models.Upload, reason string) error {
	if err := p.Store.FailUpload(ctx, upload.Id, reason); err != nil {
		return fmt.Errorf("failed to mark upload %s failed: %w", upload.Id, err)
	}
	p.record(ctx, audit.EventUploadFailed, upload.UserId, map[string]string{
		"upload_id": upload.Id,
		"reason":    reason,
	})
	return nil
}

// record appends an audit event, best-effort.
func (p *Pipeline) record(ctx context.Context, event, userID string, payload any) {
	if err := p.Audit.Record(ctx, event, userID, payload); err != nil {
		p.Logger.Warn("failed to record audit event", "event", event, "error", err)
	}
}

func vehiclePtrs(fleet []models.Vehicle) []*models.Vehicle {
	out := make([]*models.Vehicle, len(fleet))
	for i := range fleet {
		out[i] = &fleet[i]
	}
	return out
}
