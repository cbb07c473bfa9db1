package storage

import (
	"context"
	"time"

	"github.com/greenmiles/odometer-rewards/pkg/models"
)

// UploadReader defines the interface for reading upload data.
type UploadReader interface {
	// GetUpload retrieves an upload by its ID.
	GetUpload(ctx context.Context, uploadID string) (*models.Upload, error)

	// ListUploadsByUserID retrieves all uploads for a specific user, newest first.
	ListUploadsByUserID(ctx context.Context, userID string) ([]models.Upload, error)

	// GetLastApprovedUpload retrieves the most recent APPROVED upload for a
	// user, restricted to a vehicle when vehicleID is non-empty. Returns
	// (nil, nil) when no approved upload exists.
	GetLastApprovedUpload(ctx context.Context, userID, vehicleID string) (*models.Upload, error)

	// GetStuckUploads retrieves uploads that have been in PROCESSING for
	// longer than maxAge, so a supervisory sweep can re-enqueue them.
	GetStuckUploads(ctx context.Context, maxAge time.Duration) ([]models.Upload, error)
}

// UploadWriter defines the interface for the pipeline's upload mutations.
type UploadWriter interface {
	// CreateUpload persists a new upload row in PROCESSING.
	CreateUpload(ctx context.Context, upload *models.Upload) (*models.Upload, error)

	// CompleteUpload persists every derived field and moves the upload from
	// PROCESSING to COMPLETED with the given validation status. The write is
	// conditional on the row still being PROCESSING.
	CompleteUpload(ctx context.Context, upload *models.Upload) error

	// FailUpload moves the upload from PROCESSING to FAILED with the given
	// reason and marks it REJECTED.
	FailUpload(ctx context.Context, uploadID, reason string) error
}

// UploadStore combines the reader and writer interfaces.
type UploadStore interface {
	UploadReader
	UploadWriter
}
