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

// Reconciler polls the ledger for every SENT reward and finalizes it.
type Reconciler struct {
	Store  storage.SweepStore
	Chain  chain.Client
	Audit  audit.Recorder
	Logger *slog.Logger
}

// NewReconciler creates a new Reconciler.
func NewReconciler(store storage.SweepStore, chainClient chain.Client, recorder audit.Recorder, logger *slog.Logger) *Reconciler {
	return &Reconciler{Store: store, Chain: chainClient, Audit: recorder, Logger: logger}
}

// SweepSent polls the status of every reward in chain status SENT. Confirmed
// rewards are finalized and credited in one transactional write, keyed on the
// same transaction reference recorded at submission time, which makes
// re-confirming a reward a no-op. Transient polling errors only log; the
// reward stays SENT for the next sweep.
func (r *Reconciler) SweepSent(ctx context.Context) error {
	sweepsTotal.WithLabelValues("sent").Inc()

	sent, err := r.Store.ListSent(ctx)
	if err != nil {
		return fmt.Errorf("failed to list sent rewards: %w", err)
	}

	for _, reward := range sent {
		if err := r.reconcile(ctx, &reward); err != nil {
			r.Logger.Error("failed to reconcile reward", "reward_id", reward.Id, "error", err)
		}
	}

	return nil
}

func (r *Reconciler) reconcile(ctx context.Context, reward *models.Reward) error {
	if reward.Chain.TxRef == "" {
		// Claimed but the submission never recorded a reference. The claim
		// write happens before submission, so this is a crashed sweep; fail
		// the reward so the retry path can resubmit it.
		r.Logger.Warn("sent reward has no tx ref, failing for retry", "reward_id", reward.Id)
		return r.Store.RevertReward(ctx, reward.Id, "submission interrupted before tx ref was recorded")
	}

	status, err := r.Chain.GetTransactionStatus(ctx, reward.Chain.TxRef)
	if err != nil {
		// Transient. The reward stays SENT and the next sweep retries.
		r.Logger.Warn("ledger poll failed", "reward_id", reward.Id, "tx_ref", reward.Chain.TxRef, "error", err)
		return nil
	}

	switch status.State {
	case chain.TxConfirmed:
		if err := r.Store.ConfirmReward(ctx, reward, status.BlockNumber, status.GasUsed); err != nil {
			if errors.Is(err, storage.ErrRewardNotSent) {
				// Already confirmed by an earlier or concurrent sweep.
				return nil
			}
			return fmt.Errorf("failed to confirm reward: %w", err)
		}
		rewardsConfirmed.Inc()
		r.record(ctx, audit.EventRewardConfirmed, reward.UserId, map[string]any{
			"reward_id": reward.Id,
			"tx_ref":    reward.Chain.TxRef,
			"amount":    reward.Amount,
		})
		return nil

	case chain.TxReverted:
		reason := status.Reason
		if reason == "" {
			reason = "transaction reverted on-ledger"
		}
		if err := r.Store.RevertReward(ctx, reward.Id, reason); err != nil {
			if errors.Is(err, storage.ErrRewardNotSent) {
				return nil
			}
			return fmt.Errorf("failed to revert reward: %w", err)
		}
		rewardsReverted.Inc()
		r.record(ctx, audit.EventRewardFailed, reward.UserId, map[string]any{
			"reward_id": reward.Id,
			"tx_ref":    reward.Chain.TxRef,
			"reason":    reason,
		})
		return nil

	default:
		// Not final yet; only record the poll.
		return r.Store.TouchSentReward(ctx, reward.Id)
	}
}

func (r *Reconciler) record(ctx context.Context, event, userID string, payload any) {
	if err := r.Audit.Record(ctx, event, userID, payload); err != nil {
		r.Logger.Warn("failed to record audit event", "event", event, "error", err)
	}
}
