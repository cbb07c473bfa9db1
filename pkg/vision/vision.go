// Package vision wraps the vision-AI provider: image analysis, vehicle
// detection, and cross-validation of the OCR mileage.
package vision

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/greenmiles/odometer-rewards/pkg/cache"
	"github.com/greenmiles/odometer-rewards/pkg/models"
)

// CompletionProvider defines the interface for the external vision model.
// The prompt asks for a JSON object; the provider returns the raw completion
// text.
type CompletionProvider interface {
	Complete(ctx context.Context, prompt string, image []byte) (string, error)
}

// Cache TTLs per result kind. Analysis and detection describe the image
// itself and are stable; OCR validation depends on the candidate mileage and
// is kept short.
const (
	analysisTTL   = 24 * time.Hour
	detectionTTL  = 24 * time.Hour
	validationTTL = time.Hour
)

const (
	analysisPrompt = `Assess this odometer photo. Respond with only a JSON object:
{"vehicle_type": string, "quality": "good"|"fair"|"poor", "mileage_readable": bool, "confidence": number 0-1, "insights": [string]}`

	detectionPrompt = `Identify the vehicle in this photo. Respond with only a JSON object:
{"type": string, "make": string, "model": string, "year": number|null, "confidence": number 0-1}`

	validationPromptFmt = `An OCR system read the odometer in this photo as %.0f.
Respond with only a JSON object:
{"is_valid": bool, "confidence": number 0-1, "suggested_mileage": number|null}`
)

// Validator runs the three vision calls, consulting the cache first. The
// cache key is a hash of the image reference, namespaced per call.
type Validator struct {
	Provider CompletionProvider
	Cache    cache.Cache
	Logger   *slog.Logger
}

// NewValidator creates a new Validator. The cache may be a cache.Maybe
// wrapping nil, in which case every lookup misses.
func NewValidator(provider CompletionProvider, c cache.Cache, logger *slog.Logger) *Validator {
	return &Validator{Provider: provider, Cache: c, Logger: logger}
}

// Analyze produces the image-quality assessment. This call only enriches the
// upload, so a provider failure degrades to a conservative default instead of
// failing the pipeline.
func (v *Validator) Analyze(ctx context.Context, imageRef string, image []byte) (*models.VisionAnalysis, error) {
	var analysis models.VisionAnalysis
	key := cache.Key(cache.NamespaceAnalysis, imageRef)

	if hit, err := v.fromCache(ctx, key, &analysis); err == nil && hit {
		return &analysis, nil
	}

	raw, err := v.Provider.Complete(ctx, analysisPrompt, image)
	if err == nil {
		err = json.Unmarshal([]byte(raw), &analysis)
	}
	if err != nil {
		v.Logger.Warn("vision analysis degraded to conservative default", "image_ref", imageRef, "error", err)
		return &models.VisionAnalysis{Quality: "poor", MileageReadable: false, Confidence: 0}, nil
	}

	v.toCache(ctx, key, &analysis, analysisTTL)
	return &analysis, nil
}

// DetectVehicle identifies the vehicle in the photo. Detection is
// load-bearing for vehicle matching, so provider failures propagate.
func (v *Validator) DetectVehicle(ctx context.Context, imageRef string, image []byte) (*models.VehicleDetection, error) {
	var detection models.VehicleDetection
	key := cache.Key(cache.NamespaceVehicle, imageRef)

	if hit, err := v.fromCache(ctx, key, &detection); err == nil && hit {
		return &detection, nil
	}

	raw, err := v.Provider.Complete(ctx, detectionPrompt, image)
	if err != nil {
		return nil, fmt.Errorf("vehicle detection failed: %w", err)
	}
	if err := json.Unmarshal([]byte(raw), &detection); err != nil {
		return nil, fmt.Errorf("vehicle detection returned malformed JSON: %w", err)
	}

	v.toCache(ctx, key, &detection, detectionTTL)
	return &detection, nil
}

// ValidateOCR cross-checks the OCR mileage against what the model sees.
// Load-bearing for correctness; failures propagate.
func (v *Validator) ValidateOCR(ctx context.Context, imageRef string, image []byte, candidateMileage float64) (*models.OcrValidation, error) {
	var validation models.OcrValidation
	key := cache.Key(cache.NamespaceOcr, fmt.Sprintf("%s|%.0f", imageRef, candidateMileage))

	if hit, err := v.fromCache(ctx, key, &validation); err == nil && hit {
		return &validation, nil
	}

	raw, err := v.Provider.Complete(ctx, fmt.Sprintf(validationPromptFmt, candidateMileage), image)
	if err != nil {
		return nil, fmt.Errorf("ocr validation failed: %w", err)
	}
	if err := json.Unmarshal([]byte(raw), &validation); err != nil {
		return nil, fmt.Errorf("ocr validation returned malformed JSON: %w", err)
	}

	v.toCache(ctx, key, &validation, validationTTL)
	return &validation, nil
}

// fromCache loads and decodes a cached result. Cache errors are treated as
// misses; the cache is never load-bearing.
func (v *Validator) fromCache(ctx context.Context, key string, out any) (bool, error) {
	value, hit, err := v.Cache.Get(ctx, key)
	if err != nil {
		v.Logger.Warn("cache read failed", "key", key, "error", err)
		return false, nil
	}
	if !hit {
		return false, nil
	}
	if err := json.Unmarshal([]byte(value), out); err != nil {
		return false, nil
	}
	return true, nil
}

// toCache stores a result, best-effort.
func (v *Validator) toCache(ctx context.Context, key string, in any, ttl time.Duration) {
	data, err := json.Marshal(in)
	if err != nil {
		return
	}
	if err := v.Cache.Set(ctx, key, string(data), ttl); err != nil {
		v.Logger.Warn("cache write failed", "key", key, "error", err)
	}
}
