// Package api defines the wire types of the HTTP surface. Kept in one place
// so the JSON contract is reviewable independently of the domain models.
package api

import (
	"time"
)

// Upload is the API representation of an odometer upload.
type Upload struct {
	Id                string    `json:"id"`
	UserId            string    `json:"user_id"`
	VehicleId         string    `json:"vehicle_id,omitempty"`
	ImageUrl          string    `json:"image_url"`
	ThumbnailUrl      string    `json:"thumbnail_url,omitempty"`
	Status            string    `json:"status"`
	ValidationStatus  string    `json:"validation_status"`
	ExtractedMileage  *float64  `json:"extracted_mileage,omitempty"`
	OcrConfidence     float64   `json:"ocr_confidence,omitempty"`
	FinalMileage      *float64  `json:"final_mileage,omitempty"`
	MileageConfidence float64   `json:"mileage_confidence,omitempty"`
	MileageDelta      float64   `json:"mileage_delta,omitempty"`
	CarbonSavedKg     float64   `json:"carbon_saved_kg,omitempty"`
	FailureReason     string    `json:"failure_reason,omitempty"`
	CreatedAt         time.Time `json:"created_at"`
	UpdatedAt         time.Time `json:"updated_at"`
}

// Reward is the API representation of a token reward.
type Reward struct {
	Id            string     `json:"id"`
	UserId        string     `json:"user_id"`
	Type          string     `json:"type"`
	Amount        string     `json:"amount"`
	MilesDriven   float64    `json:"miles_driven"`
	CarbonGrams   float64    `json:"carbon_grams"`
	Status        string     `json:"status"`
	ChainStatus   string     `json:"chain_status"`
	TxRef         string     `json:"tx_ref,omitempty"`
	RetryCount    int        `json:"retry_count"`
	CanRetry      bool       `json:"can_retry"`
	CanCancel     bool       `json:"can_cancel"`
	FailureReason string     `json:"failure_reason,omitempty"`
	ConfirmedAt   *time.Time `json:"confirmed_at,omitempty"`
	CreatedAt     time.Time  `json:"created_at"`
	UpdatedAt     time.Time  `json:"updated_at"`
}

// Account is the API representation of a user account.
type Account struct {
	UserId        string    `json:"user_id"`
	WalletAddress string    `json:"wallet_address,omitempty"`
	TokenBalance  string    `json:"token_balance"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// NewAccount is the request body for creating an account.
type NewAccount struct {
	UserId        string `json:"user_id"`
	WalletAddress string `json:"wallet_address,omitempty"`
}
