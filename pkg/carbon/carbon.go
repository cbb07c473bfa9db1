// Package carbon derives the carbon-saved figure for an approved mileage
// reading.
package carbon

import (
	"context"
	"fmt"

	"github.com/greenmiles/odometer-rewards/pkg/models"
	"github.com/greenmiles/odometer-rewards/pkg/storage"
)

// Result carries the mileage delta and the carbon it earned.
type Result struct {
	MileageDelta  float64
	CarbonSavedKg float64
}

// Calculator computes carbon savings against the user's last approved
// reading.
type Calculator struct {
	Uploads storage.UploadReader
}

// NewCalculator creates a new Calculator.
func NewCalculator(uploads storage.UploadReader) *Calculator {
	return &Calculator{Uploads: uploads}
}

// Compute finds the most recent approved upload for the user (scoped to the
// vehicle when known) and derives the delta and carbon saved. The first
// approved reading establishes a baseline and earns nothing. A delta that
// comes out negative is a data error and clamps to zero rather than producing
// negative carbon.
func (c *Calculator) Compute(ctx context.Context, userID, vehicleID string, finalMileage float64, vehicle *models.Vehicle) (*Result, error) {
	previous, err := c.Uploads.GetLastApprovedUpload(ctx, userID, vehicleID)
	if err != nil {
		return nil, fmt.Errorf("failed to look up previous approved upload: %w", err)
	}
	if previous == nil || previous.FinalMileage == nil {
		return &Result{}, nil
	}

	delta := finalMileage - *previous.FinalMileage
	if delta < 0 {
		delta = 0
	}

	var factor float64
	if vehicle != nil {
		factor = vehicle.EmissionFactor
	}

	return &Result{
		MileageDelta:  delta,
		CarbonSavedKg: delta * factor,
	}, nil
}
