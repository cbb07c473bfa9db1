// Package rewards creates reward records with a deterministic payout amount.
package rewards

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/greenmiles/odometer-rewards/pkg/models"
	"github.com/greenmiles/odometer-rewards/pkg/storage"
)

// Payout formula coefficients: token units per mile driven and per kilogram
// of carbon saved.
var (
	ratePerMile     = decimal.NewFromFloat(0.01)
	ratePerCarbonKg = decimal.NewFromFloat(0.001)
)

// amountPrecision is the token's decimal precision. The amount string is the
// user-facing payout and must round-trip exactly.
const amountPrecision = 8

// Ledger creates rewards. Distribution and confirmation are handled by the
// sweeps; the ledger only mints PENDING/NOT_SENT records.
type Ledger struct {
	Store storage.RewardManager
}

// NewLedger creates a new Ledger.
func NewLedger(store storage.RewardManager) *Ledger {
	return &Ledger{Store: store}
}

// Amount computes the deterministic payout for an upload reward, rounded
// half-up to 8 decimal places and rendered with a fixed number of decimals.
func Amount(miles, carbonGrams float64) string {
	m := decimal.NewFromFloat(miles).Mul(ratePerMile)
	c := decimal.NewFromFloat(carbonGrams).
		Div(decimal.NewFromInt(1000)).
		Mul(ratePerCarbonKg)
	return m.Add(c).Round(amountPrecision).StringFixed(amountPrecision)
}

// CreateUploadReward mints the reward for an approved upload.
func (l *Ledger) CreateUploadReward(ctx context.Context, userID, uploadID string, miles, carbonGrams float64, proof models.ProofData) (*models.Reward, error) {
	reward := &models.Reward{
		Id:          uuid.New().String(),
		UserId:      userID,
		Type:        models.RewardTypeUpload,
		Amount:      Amount(miles, carbonGrams),
		MilesDriven: miles,
		CarbonGrams: carbonGrams,
		Proof:       proof,
		CreatedAt:   time.Now(),
		UpdatedAt:   time.Now(),
	}

	created, err := l.Store.CreateReward(ctx, reward)
	if err != nil {
		return nil, fmt.Errorf("failed to create reward for upload %s: %w", uploadID, err)
	}
	return created, nil
}
