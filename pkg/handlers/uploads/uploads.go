// Package uploads holds the HTTP handlers for the upload surface.
package uploads

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"

	openapi_types "github.com/oapi-codegen/runtime/types"

	"github.com/greenmiles/odometer-rewards/pkg/api"
	"github.com/greenmiles/odometer-rewards/pkg/mapping"
	"github.com/greenmiles/odometer-rewards/pkg/models"
	"github.com/greenmiles/odometer-rewards/pkg/pipeline"
	"github.com/greenmiles/odometer-rewards/pkg/storage"
)

// Ingestor is the slice of the pipeline the handler needs.
type Ingestor interface {
	Ingest(ctx context.Context, userID, vehicleID string, image []byte, contentType string) (*models.Upload, error)
}

// UploadsHandler holds the dependencies for upload-related handlers.
type UploadsHandler struct {
	Store    storage.ApiStore
	Pipeline Ingestor
	Logger   *slog.Logger
}

// NewUploadsHandler creates a new UploadsHandler.
func NewUploadsHandler(store storage.ApiStore, ingestor Ingestor, logger *slog.Logger) *UploadsHandler {
	return &UploadsHandler{Store: store, Pipeline: ingestor, Logger: logger}
}

// CreateUpload accepts a multipart odometer photo and returns the upload row
// while processing continues asynchronously.
func (h *UploadsHandler) CreateUpload(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(pipeline.MaxImageBytes); err != nil {
		http.Error(w, fmt.Sprintf("Invalid multipart form: %v", err), http.StatusBadRequest)
		return
	}

	userID := r.FormValue("user_id")
	if userID == "" {
		http.Error(w, "user_id is required", http.StatusBadRequest)
		return
	}
	vehicleID := r.FormValue("vehicle_id")

	file, header, err := r.FormFile("image")
	if err != nil {
		http.Error(w, "image file is required", http.StatusBadRequest)
		return
	}
	defer file.Close()

	image, err := io.ReadAll(io.LimitReader(file, pipeline.MaxImageBytes+1))
	if err != nil {
		http.Error(w, fmt.Sprintf("Failed to read image: %v", err), http.StatusBadRequest)
		return
	}

	upload, err := h.Pipeline.Ingest(r.Context(), userID, vehicleID, image, header.Header.Get("Content-Type"))
	if err != nil {
		switch {
		case errors.Is(err, pipeline.ErrImageTooLarge):
			http.Error(w, err.Error(), http.StatusRequestEntityTooLarge)
		case errors.Is(err, pipeline.ErrInvalidImageType), errors.Is(err, pipeline.ErrEmptyImage):
			http.Error(w, err.Error(), http.StatusBadRequest)
		default:
			h.Logger.Error("upload ingestion failed", "user_id", userID, "error", err)
			http.Error(w, fmt.Sprintf("Failed to ingest upload: %v", err), http.StatusInternalServerError)
		}
		return
	}

	apiUpload := mapping.ToApiUpload(upload)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusAccepted)
	if err := json.NewEncoder(w).Encode(apiUpload); err != nil {
		http.Error(w, fmt.Sprintf("Failed to write response: %v", err), http.StatusInternalServerError)
	}
}

// GetUploadById handles the logic for retrieving an upload by its ID.
func (h *UploadsHandler) GetUploadById(w http.ResponseWriter, r *http.Request, uploadId openapi_types.UUID) {
	upload, err := h.Store.GetUpload(r.Context(), uploadId.String())
	if err != nil {
		if errors.Is(err, storage.ErrUploadNotFound) {
			http.Error(w, "Upload not found", http.StatusNotFound)
			return
		}
		http.Error(w, fmt.Sprintf("Failed to retrieve upload: %v", err), http.StatusInternalServerError)
		return
	}

	apiUpload := mapping.ToApiUpload(upload)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(apiUpload); err != nil {
		http.Error(w, fmt.Sprintf("Failed to write response: %v", err), http.StatusInternalServerError)
	}
}

// ListUploadsByUserId handles the logic for listing a user's uploads.
func (h *UploadsHandler) ListUploadsByUserId(w http.ResponseWriter, r *http.Request, userId string) {
	uploads, err := h.Store.ListUploadsByUserID(r.Context(), userId)
	if err != nil {
		http.Error(w, fmt.Sprintf("Failed to retrieve uploads: %v", err), http.StatusInternalServerError)
		return
	}

	apiUploads := make([]*api.Upload, len(uploads))
	for i := range uploads {
		apiUploads[i] = mapping.ToApiUpload(&uploads[i])
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(apiUploads); err != nil {
		http.Error(w, fmt.Sprintf("Failed to write response: %v", err), http.StatusInternalServerError)
	}
}
