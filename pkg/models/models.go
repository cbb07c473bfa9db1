package models

import (
	"time"
)

// UploadStatus defines the processing states of an odometer upload.
type UploadStatus string

const (
	UploadPending    UploadStatus = "PENDING"
	UploadProcessing UploadStatus = "PROCESSING"
	UploadCompleted  UploadStatus = "COMPLETED"
	UploadFailed     UploadStatus = "FAILED"
)

// ValidationStatus is the review outcome of an upload, orthogonal to its
// processing status.
type ValidationStatus string

const (
	ValidationPending  ValidationStatus = "PENDING"
	ValidationApproved ValidationStatus = "APPROVED"
	ValidationRejected ValidationStatus = "REJECTED"
	ValidationFlagged  ValidationStatus = "FLAGGED"
)

// RewardStatus defines the business lifecycle of a reward.
type RewardStatus string

const (
	RewardPending    RewardStatus = "PENDING"
	RewardProcessing RewardStatus = "PROCESSING"
	RewardCompleted  RewardStatus = "COMPLETED"
	RewardFailed     RewardStatus = "FAILED"
	RewardCancelled  RewardStatus = "CANCELLED"
)

// ChainStatus defines the on-ledger lifecycle of a reward, independent of its
// business status.
type ChainStatus string

const (
	ChainNotSent   ChainStatus = "NOT_SENT"
	ChainSent      ChainStatus = "SENT"
	ChainConfirmed ChainStatus = "CONFIRMED"
	ChainFailed    ChainStatus = "FAILED"
)

// RewardType identifies what earned the reward.
type RewardType string

const (
	RewardTypeUpload    RewardType = "UPLOAD"
	RewardTypeBadge     RewardType = "BADGE"
	RewardTypeChallenge RewardType = "CHALLENGE"
	RewardTypeMilestone RewardType = "MILESTONE"
)

// VisionAnalysis is the image-quality assessment produced by the vision model.
type VisionAnalysis struct {
	VehicleType     string   `json:"vehicle_type" dynamodbav:"vehicle_type"`
	Quality         string   `json:"quality" dynamodbav:"quality"`
	MileageReadable bool     `json:"mileage_readable" dynamodbav:"mileage_readable"`
	Confidence      float64  `json:"confidence" dynamodbav:"confidence"`
	Insights        []string `json:"insights,omitempty" dynamodbav:"insights,omitempty"`
}

// VehicleDetection is the vehicle identified by the vision model.
type VehicleDetection struct {
	Type       string  `json:"type" dynamodbav:"type"`
	Make       string  `json:"make" dynamodbav:"make"`
	Model      string  `json:"model" dynamodbav:"model"`
	Year       *int    `json:"year,omitempty" dynamodbav:"year,omitempty"`
	Confidence float64 `json:"confidence" dynamodbav:"confidence"`
}

// OcrValidation is the vision model's cross-check of the OCR mileage.
type OcrValidation struct {
	IsValid          bool     `json:"is_valid" dynamodbav:"is_valid"`
	Confidence       float64  `json:"confidence" dynamodbav:"confidence"`
	SuggestedMileage *float64 `json:"suggested_mileage,omitempty" dynamodbav:"suggested_mileage,omitempty"`
}

// Upload represents one odometer photo submission and everything derived from
// it. The row is created in PROCESSING and mutated exactly once to a terminal
// status by the pipeline; FinalMileage is set iff Status is COMPLETED.
type Upload struct {
	Id               string           `dynamodbav:"id"`
	UserId           string           `dynamodbav:"user_id"`
	VehicleId        string           `dynamodbav:"vehicle_id,omitempty"`
	ImageKey         string           `dynamodbav:"image_key"`
	ImageUrl         string           `dynamodbav:"image_url"`
	ThumbnailUrl     string           `dynamodbav:"thumbnail_url,omitempty"`
	ImageHash        string           `dynamodbav:"image_hash"`
	Status           UploadStatus     `dynamodbav:"status"`
	ValidationStatus ValidationStatus `dynamodbav:"validation_status"`

	ExtractedMileage *float64          `dynamodbav:"extracted_mileage,omitempty"`
	OcrConfidence    float64           `dynamodbav:"ocr_confidence,omitempty"`
	OcrRawText       string            `dynamodbav:"ocr_raw_text,omitempty"`
	OcrMethod        string            `dynamodbav:"ocr_method,omitempty"`
	AiAnalysis       *VisionAnalysis   `dynamodbav:"ai_analysis,omitempty"`
	DetectedVehicle  *VehicleDetection `dynamodbav:"detected_vehicle,omitempty"`
	AiValidation     *OcrValidation    `dynamodbav:"ai_validation,omitempty"`

	FinalMileage      *float64 `dynamodbav:"final_mileage,omitempty"`
	MileageConfidence float64  `dynamodbav:"mileage_confidence,omitempty"`
	MileageDelta      float64  `dynamodbav:"mileage_delta,omitempty"`
	CarbonSavedKg     float64  `dynamodbav:"carbon_saved_kg,omitempty"`
	FailureReason     string   `dynamodbav:"failure_reason,omitempty"`

	OcrDurationMs        int64 `dynamodbav:"ocr_duration_ms,omitempty"`
	AiDurationMs         int64 `dynamodbav:"ai_duration_ms,omitempty"`
	ProcessingDurationMs int64 `dynamodbav:"processing_duration_ms,omitempty"`

	CreatedAt time.Time `dynamodbav:"created_at"`
	UpdatedAt time.Time `dynamodbav:"updated_at"`
}

// Vehicle is a registered vehicle in a user's fleet. EmissionFactor is
// kg CO2 saved per mile driven relative to a combustion baseline.
type Vehicle struct {
	Id             string    `dynamodbav:"id"`
	UserId         string    `dynamodbav:"user_id"`
	Type           string    `dynamodbav:"type"`
	Make           string    `dynamodbav:"make"`
	Model          string    `dynamodbav:"model"`
	Year           int       `dynamodbav:"year,omitempty"`
	EmissionFactor float64   `dynamodbav:"emission_factor"`
	TotalMileage   float64   `dynamodbav:"total_mileage,omitempty"`
	TotalCarbonKg  float64   `dynamodbav:"total_carbon_kg,omitempty"`
	IsPrimary      bool      `dynamodbav:"is_primary"`
	Active         bool      `dynamodbav:"active"`
	CreatedAt      time.Time `dynamodbav:"created_at"`
	UpdatedAt      time.Time `dynamodbav:"updated_at"`
}

// ProofData is the evidence payload attached to a reward for audit and
// on-ledger attestation.
type ProofData struct {
	UploadId    string  `json:"upload_id,omitempty" dynamodbav:"upload_id,omitempty"`
	BadgeId     string  `json:"badge_id,omitempty" dynamodbav:"badge_id,omitempty"`
	ChallengeId string  `json:"challenge_id,omitempty" dynamodbav:"challenge_id,omitempty"`
	ImageHash   string  `json:"image_hash,omitempty" dynamodbav:"image_hash,omitempty"`
	Miles       float64 `json:"miles,omitempty" dynamodbav:"miles,omitempty"`
	CarbonGrams float64 `json:"carbon_grams,omitempty" dynamodbav:"carbon_grams,omitempty"`
}

// ChainData tracks a reward's submission to the ledger.
type ChainData struct {
	TxRef         string     `json:"tx_ref,omitempty" dynamodbav:"tx_ref,omitempty"`
	RetryCount    int        `json:"retry_count" dynamodbav:"retry_count"`
	LastRetryAt   *time.Time `json:"last_retry_at,omitempty" dynamodbav:"last_retry_at,omitempty"`
	LastCheckedAt *time.Time `json:"last_checked_at,omitempty" dynamodbav:"last_checked_at,omitempty"`
	ConfirmedAt   *time.Time `json:"confirmed_at,omitempty" dynamodbav:"confirmed_at,omitempty"`
	BlockNumber   int64      `json:"block_number,omitempty" dynamodbav:"block_number,omitempty"`
	GasUsed       int64      `json:"gas_used,omitempty" dynamodbav:"gas_used,omitempty"`
}

// Reward is a token payout earned by a user. Amount is a decimal string with
// 8 fractional digits and is immutable once Status leaves PENDING. Status and
// ChainStatus are independent axes; their combined transitions form the
// distribution state machine.
type Reward struct {
	Id            string       `dynamodbav:"id"`
	UserId        string       `dynamodbav:"user_id"`
	Type          RewardType   `dynamodbav:"type"`
	Amount        string       `dynamodbav:"amount"`
	MilesDriven   float64      `dynamodbav:"miles_driven,omitempty"`
	CarbonGrams   float64      `dynamodbav:"carbon_grams,omitempty"`
	Status        RewardStatus `dynamodbav:"status"`
	ChainStatus   ChainStatus  `dynamodbav:"chain_status"`
	Proof         ProofData    `dynamodbav:"proof"`
	Chain         ChainData    `dynamodbav:"chain_data"`
	FailureReason string       `dynamodbav:"failure_reason,omitempty"`
	CreatedAt     time.Time    `dynamodbav:"created_at"`
	UpdatedAt     time.Time    `dynamodbav:"updated_at"`
}

// Account holds a user's wallet address and token balance. The balance is
// only ever mutated by the reconciler's confirmation write, as an atomic
// server-side increment.
type Account struct {
	UserId        string    `json:"user_id" dynamodbav:"user_id"`
	WalletAddress string    `json:"wallet_address" dynamodbav:"wallet_address,omitempty"`
	TokenBalance  float64   `json:"token_balance" dynamodbav:"token_balance"`
	CreatedAt     time.Time `json:"created_at" dynamodbav:"created_at"`
	UpdatedAt     time.Time `json:"updated_at" dynamodbav:"updated_at"`
}

// AuditEvent is a single append-only entry in the audit trail.
type AuditEvent struct {
	EventID   string    `dynamodbav:"event_id"`
	Event     string    `dynamodbav:"event"`
	UserID    string    `dynamodbav:"user_id"`
	Payload   string    `dynamodbav:"payload,omitempty"`
	Timestamp time.Time `dynamodbav:"timestamp"`
	GSI1PK    string    `dynamodbav:"gsi1pk"`
}
