// Package handlers composes the per-surface HTTP handlers onto one router.
package handlers

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/greenmiles/odometer-rewards/pkg/audit"
	"github.com/greenmiles/odometer-rewards/pkg/handlers/accounts"
	"github.com/greenmiles/odometer-rewards/pkg/handlers/rewards"
	"github.com/greenmiles/odometer-rewards/pkg/handlers/uploads"
	"github.com/greenmiles/odometer-rewards/pkg/storage"
)

// ApiHandler holds the application's HTTP surface and its dependencies.
type ApiHandler struct {
	Uploads  *uploads.UploadsHandler
	Rewards  *rewards.RewardsHandler
	Accounts *accounts.AccountsHandler
}

// NewApiHandler creates a new ApiHandler wired to the storage layer, the
// ingestion pipeline, and the audit trail.
func NewApiHandler(store storage.ApiStore, ingestor uploads.Ingestor, recorder audit.Recorder, logger *slog.Logger) *ApiHandler {
	return &ApiHandler{
		Uploads:  uploads.NewUploadsHandler(store, ingestor, logger),
		Rewards:  rewards.NewRewardsHandler(store, recorder, logger),
		Accounts: accounts.NewAccountsHandler(store),
	}
}

// Mount attaches every route to the router.
func (h *ApiHandler) Mount(router chi.Router) {
	router.Post("/uploads", h.Uploads.CreateUpload)
	router.Get("/uploads/{uploadId}", withUUID("uploadId", h.Uploads.GetUploadById))
	router.Get("/users/{userId}/uploads", withParam("userId", h.Uploads.ListUploadsByUserId))

	router.Get("/rewards/{rewardId}", withUUID("rewardId", h.Rewards.GetRewardById))
	router.Post("/rewards/{rewardId}/retry", withUUID("rewardId", h.Rewards.RetryRewardById))
	router.Post("/rewards/{rewardId}/cancel", withUUID("rewardId", h.Rewards.CancelRewardById))
	router.Get("/users/{userId}/rewards", withParam("userId", h.Rewards.ListRewardsByUserId))

	router.Post("/accounts", h.Accounts.CreateAccount)
	router.Get("/accounts/{userId}", withParam("userId", h.Accounts.GetAccountByUserId))
}

// withUUID adapts a handler taking a UUID path parameter, rejecting malformed
// IDs before the handler runs.
func withUUID(name string, handler func(http.ResponseWriter, *http.Request, uuid.UUID)) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := uuid.Parse(chi.URLParam(r, name))
		if err != nil {
			http.Error(w, "Invalid "+name, http.StatusBadRequest)
			return
		}
		handler(w, r, id)
	}
}

// withParam adapts a handler taking a plain string path parameter.
func withParam(name string, handler func(http.ResponseWriter, *http.Request, string)) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		handler(w, r, chi.URLParam(r, name))
	}
}
