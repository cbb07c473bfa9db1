// Package distribution runs the two periodic sweeps that move rewards
// on-ledger: batch submission and confirmation reconciliation.
package distribution

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/greenmiles/odometer-rewards/pkg/audit"
	"github.com/greenmiles/odometer-rewards/pkg/chain"
	"github.com/greenmiles/odometer-rewards/pkg/models"
	"github.com/greenmiles/odometer-rewards/pkg/storage"
)

// sweepBatchSize caps how many rewards one sweep considers.
const sweepBatchSize = 100

// Distributor batches a user's pending rewards into a single ledger
// submission.
type Distributor struct {
	Store  storage.SweepStore
	Chain  chain.Client
	Audit  audit.Recorder
	Logger *slog.Logger
}

// NewDistributor creates a new Distributor.
func NewDistributor(store storage.SweepStore, chainClient chain.Client, recorder audit.Recorder, logger *slog.Logger) *Distributor {
	return &Distributor{Store: store, Chain: chainClient, Audit: recorder, Logger: logger}
}

// SweepPending selects distributable rewards oldest-first, groups them by
// owner, and submits one ledger transaction per owner. Each reward is
// claimed into PROCESSING/SENT before the submission goes out, so a crash
// mid-submission cannot double-submit on the next sweep. Safe to run on a
// timer and on demand; overlapping sweeps contend on the claim write, not on
// the submission.
func (d *Distributor) SweepPending(ctx context.Context) error {
	sweepsTotal.WithLabelValues("pending").Inc()

	pending, err := d.Store.ListDistributable(ctx, sweepBatchSize)
	if err != nil {
		return fmt.Errorf("failed to list distributable rewards: %w", err)
	}
	if len(pending) == 0 {
		return nil
	}

	// Group by user, preserving oldest-first order within each group.
	groups := make(map[string][]models.Reward)
	var order []string
	for _, reward := range pending {
		if _, seen := groups[reward.UserId]; !seen {
			order = append(order, reward.UserId)
		}
		groups[reward.UserId] = append(groups[reward.UserId], reward)
	}

	for _, userID := range order {
		if err := d.submitGroup(ctx, userID, groups[userID]); err != nil {
			d.Logger.Error("batch submission failed", "user_id", userID, "error", err)
		}
	}

	return nil
}

// submitGroup claims and submits one user's rewards as a single batch.
func (d *Distributor) submitGroup(ctx context.Context, userID string, group []models.Reward) error {
	account, err := d.Store.GetAccount(ctx, userID)
	if err != nil {
		if errors.Is(err, storage.ErrAccountNotFound) {
			// Rewards without an account are a data-integrity problem; leave
			// them PENDING so they distribute once the account exists.
			missingWallets.Inc()
			d.Logger.Warn("skipping rewards for user without account", "user_id", userID, "count", len(group))
			return nil
		}
		return fmt.Errorf("failed to load account for user %s: %w", userID, err)
	}
	if account.WalletAddress == "" {
		missingWallets.Inc()
		d.Logger.Warn("skipping rewards for user without wallet", "user_id", userID, "count", len(group))
		return nil
	}

	// Claim before submitting. A reward lost to a concurrent sweep drops out
	// of this batch; the winner's batch includes it.
	var claimed []models.Reward
	for _, reward := range group {
		if err := d.Store.ClaimForDistribution(ctx, reward.Id); err != nil {
			if errors.Is(err, storage.ErrRewardAlreadyClaimed) {
				d.Logger.Info("reward claimed by concurrent sweep", "reward_id", reward.Id)
				continue
			}
			return fmt.Errorf("failed to claim reward %s: %w", reward.Id, err)
		}
		claimed = append(claimed, reward)
	}
	if len(claimed) == 0 {
		return nil
	}

	claimedIDs := make([]string, len(claimed))
	batch := chain.Batch{WalletAddress: account.WalletAddress}
	for i, reward := range claimed {
		claimedIDs[i] = reward.Id
		batch.Items = append(batch.Items, chain.BatchItem{
			RewardID:    reward.Id,
			Amount:      reward.Amount,
			Miles:       reward.MilesDriven,
			CarbonGrams: reward.CarbonGrams,
			ProofRef:    reward.Proof.UploadId,
		})
	}

	txRef, err := d.Chain.SubmitBatch(ctx, batch)
	if err != nil {
		batchesFailed.Inc()
		if failErr := d.Store.FailSubmission(ctx, claimedIDs, err.Error()); failErr != nil {
			return fmt.Errorf("failed to record submission failure: %w", failErr)
		}
		return fmt.Errorf("ledger submission failed for user %s: %w", userID, err)
	}

	if err := d.Store.RecordSubmission(ctx, claimedIDs, txRef); err != nil {
		// The submission went out; the reconciler will still find these
		// rewards SENT but without a reference they cannot confirm. Surface
		// loudly.
		return fmt.Errorf("failed to record tx ref %s on rewards: %w", txRef, err)
	}

	batchesSubmitted.Inc()
	d.record(ctx, audit.EventRewardSubmitted, userID, map[string]any{
		"tx_ref":     txRef,
		"reward_ids": claimedIDs,
	})
	d.Logger.Info("submitted batch distribution", "user_id", userID, "tx_ref", txRef, "rewards", len(claimedIDs))

	return nil
}

func (d *Distributor) record(ctx context.Context, event, userID string, payload any) {
	if err := d.Audit.Record(ctx, event, userID, payload); err != nil {
		d.Logger.Warn("failed to record audit event", "event", event, "error", err)
	}
}
