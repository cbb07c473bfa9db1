package storage

import (
	"context"

	"github.com/greenmiles/odometer-rewards/pkg/models"
)

// RewardFilter narrows a reward listing.
type RewardFilter struct {
	Status models.RewardStatus
	Limit  int32
}

// RewardReader defines the interface for reading reward data.
type RewardReader interface {
	// GetReward retrieves a reward by its ID.
	GetReward(ctx context.Context, rewardID string) (*models.Reward, error)

	// ListRewardsByUserID retrieves a user's rewards, newest first.
	ListRewardsByUserID(ctx context.Context, userID string, filter RewardFilter) ([]models.Reward, error)
}

// RewardManager defines the interface for creating and managing rewards
// before distribution.
type RewardManager interface {
	// CreateReward persists a new reward in PENDING/NOT_SENT.
	CreateReward(ctx context.Context, reward *models.Reward) (*models.Reward, error)

	// RetryReward resets a FAILED reward with remaining retry budget back to
	// PENDING/NOT_SENT so the next sweep picks it up again.
	RetryReward(ctx context.Context, rewardID string) error

	// CancelReward cancels a reward that is still PENDING/NOT_SENT.
	CancelReward(ctx context.Context, rewardID string) error
}

// RewardStore combines the reader and manager interfaces.
type RewardStore interface {
	RewardReader
	RewardManager
}
