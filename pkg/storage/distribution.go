package storage

import (
	"context"

	"github.com/greenmiles/odometer-rewards/pkg/models"
)

// DistributionStore defines the privileged interface for the distribution
// sweep. The claim write doubles as a coarse lock: a reward claimed into
// PROCESSING/SENT by one sweep is invisible to the next sweep's selection
// query, which is what makes overlapping sweeps safe.
type DistributionStore interface {
	// ListDistributable retrieves up to limit rewards in PENDING/NOT_SENT,
	// oldest first.
	ListDistributable(ctx context.Context, limit int32) ([]models.Reward, error)

	// ClaimForDistribution atomically moves a reward from PENDING/NOT_SENT to
	// PROCESSING/SENT. Returns ErrRewardAlreadyClaimed if another sweep got
	// there first. The claim is recorded before the ledger submission so a
	// crash mid-submission cannot double-submit.
	ClaimForDistribution(ctx context.Context, rewardID string) error

	// RecordSubmission persists the ledger transaction reference on every
	// reward in a successfully submitted batch.
	RecordSubmission(ctx context.Context, rewardIDs []string, txRef string) error

	// FailSubmission moves every reward in a failed batch to FAILED/FAILED
	// with the given reason and increments its retry count.
	FailSubmission(ctx context.Context, rewardIDs []string, reason string) error
}

// ReconciliationStore defines the privileged interface for the confirmation
// sweep. ConfirmReward is the only code path that increases a user balance.
type ReconciliationStore interface {
	// ListSent retrieves all rewards in chain status SENT.
	ListSent(ctx context.Context) ([]models.Reward, error)

	// ConfirmReward atomically moves a reward from SENT to
	// COMPLETED/CONFIRMED, records the ledger receipt, and credits the
	// owner's balance by the reward amount. The transition and the credit
	// commit together or not at all; a reward that is no longer SENT yields
	// ErrRewardNotSent and no credit, which makes re-confirmation a no-op.
	ConfirmReward(ctx context.Context, reward *models.Reward, blockNumber, gasUsed int64) error

	// RevertReward moves a reward observed as reverted on-chain to
	// FAILED/FAILED with the given reason, eligible for retry while budget
	// remains.
	RevertReward(ctx context.Context, rewardID, reason string) error

	// TouchSentReward records a poll attempt on a reward that is not yet
	// final, without changing its state.
	TouchSentReward(ctx context.Context, rewardID string) error
}
