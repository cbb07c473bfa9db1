package storage

import (
	"context"

	"github.com/greenmiles/odometer-rewards/pkg/models"
)

// VehicleReader defines the interface for reading a user's fleet.
type VehicleReader interface {
	// GetVehicle retrieves a vehicle by its ID.
	GetVehicle(ctx context.Context, vehicleID string) (*models.Vehicle, error)

	// ListVehiclesByUserID retrieves all active vehicles owned by a user.
	ListVehiclesByUserID(ctx context.Context, userID string) ([]models.Vehicle, error)
}

// VehicleWriter defines the pipeline's vehicle mutation: the running-totals
// update after an approved upload.
type VehicleWriter interface {
	// AddVehicleTotals atomically increments a vehicle's total mileage and
	// carbon counters.
	AddVehicleTotals(ctx context.Context, vehicleID string, miles, carbonKg float64) error
}

// VehicleStore combines the reader and writer interfaces.
type VehicleStore interface {
	VehicleReader
	VehicleWriter
}
