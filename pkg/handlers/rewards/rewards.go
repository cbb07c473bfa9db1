// Package rewards holds the HTTP handlers for the reward surface.
package rewards

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"

	openapi_types "github.com/oapi-codegen/runtime/types"

	"github.com/greenmiles/odometer-rewards/pkg/api"
	"github.com/greenmiles/odometer-rewards/pkg/audit"
	"github.com/greenmiles/odometer-rewards/pkg/mapping"
	"github.com/greenmiles/odometer-rewards/pkg/models"
	"github.com/greenmiles/odometer-rewards/pkg/storage"
)

// RewardsHandler holds the dependencies for reward-related handlers.
type RewardsHandler struct {
	Store  storage.ApiStore
	Audit  audit.Recorder
	Logger *slog.Logger
}

// NewRewardsHandler creates a new RewardsHandler.
func NewRewardsHandler(store storage.ApiStore, recorder audit.Recorder, logger *slog.Logger) *RewardsHandler {
	return &RewardsHandler{Store: store, Audit: recorder, Logger: logger}
}

// GetRewardById handles the logic for retrieving a reward by its ID.
func (h *RewardsHandler) GetRewardById(w http.ResponseWriter, r *http.Request, rewardId openapi_types.UUID) {
	reward, err := h.Store.GetReward(r.Context(), rewardId.String())
	if err != nil {
		if errors.Is(err, storage.ErrRewardNotFound) {
			http.Error(w, "Reward not found", http.StatusNotFound)
			return
		}
		http.Error(w, fmt.Sprintf("Failed to retrieve reward: %v", err), http.StatusInternalServerError)
		return
	}

	apiReward := mapping.ToApiReward(reward)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(apiReward); err != nil {
		http.Error(w, fmt.Sprintf("Failed to write response: %v", err), http.StatusInternalServerError)
	}
}

// ListRewardsByUserId handles the logic for listing a user's rewards,
// optionally narrowed by the "status" and "limit" query parameters.
func (h *RewardsHandler) ListRewardsByUserId(w http.ResponseWriter, r *http.Request, userId string) {
	filter := storage.RewardFilter{
		Status: models.RewardStatus(r.URL.Query().Get("status")),
	}
	if raw := r.URL.Query().Get("limit"); raw != "" {
		limit, err := strconv.ParseInt(raw, 10, 32)
		if err != nil || limit < 1 {
			http.Error(w, "Invalid limit", http.StatusBadRequest)
			return
		}
		filter.Limit = int32(limit)
	}

	rewards, err := h.Store.ListRewardsByUserID(r.Context(), userId, filter)
	if err != nil {
		http.Error(w, fmt.Sprintf("Failed to retrieve rewards: %v", err), http.StatusInternalServerError)
		return
	}

	apiRewards := make([]*api.Reward, len(rewards))
	for i := range rewards {
		apiRewards[i] = mapping.ToApiReward(&rewards[i])
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(apiRewards); err != nil {
		http.Error(w, fmt.Sprintf("Failed to write response: %v", err), http.StatusInternalServerError)
	}
}

// RetryRewardById resets a failed reward with remaining retry budget back to
// pending so the next sweep picks it up.
func (h *RewardsHandler) RetryRewardById(w http.ResponseWriter, r *http.Request, rewardId openapi_types.UUID) {
	if err := h.Store.RetryReward(r.Context(), rewardId.String()); err != nil {
		if errors.Is(err, storage.ErrRewardNotRetryable) {
			http.Error(w, err.Error(), http.StatusConflict)
			return
		}
		http.Error(w, fmt.Sprintf("Failed to retry reward: %v", err), http.StatusInternalServerError)
		return
	}

	h.record(r.Context(), audit.EventRewardRetried, rewardId.String())
	w.WriteHeader(http.StatusNoContent)
}

// CancelRewardById cancels a reward that has not yet been submitted
// on-ledger. Cancellation after submission is rejected.
func (h *RewardsHandler) CancelRewardById(w http.ResponseWriter, r *http.Request, rewardId openapi_types.UUID) {
	if err := h.Store.CancelReward(r.Context(), rewardId.String()); err != nil {
		if errors.Is(err, storage.ErrRewardNotCancellable) {
			http.Error(w, err.Error(), http.StatusConflict)
			return
		}
		http.Error(w, fmt.Sprintf("Failed to cancel reward: %v", err), http.StatusInternalServerError)
		return
	}

	h.record(r.Context(), audit.EventRewardCancelled, rewardId.String())
	w.WriteHeader(http.StatusNoContent)
}

// record appends an audit event for a reward transition, best-effort. The
// owning user is looked up so the trail stays queryable per user.
func (h *RewardsHandler) record(ctx context.Context, event, rewardID string) {
	userID := ""
	if reward, err := h.Store.GetReward(ctx, rewardID); err == nil {
		userID = reward.UserId
	}
	if err := h.Audit.Record(ctx, event, userID, map[string]string{"reward_id": rewardID}); err != nil {
		h.Logger.Warn("failed to record audit event", "event", event, "error", err)
	}
}
