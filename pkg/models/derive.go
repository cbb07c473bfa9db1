package models

import (
	"fmt"
	"strconv"
)

// MaxDistributionRetries caps how many times a failed distribution may be
// re-attempted.
const MaxDistributionRetries = 3

// CanRetry reports whether a reward is eligible for another distribution
// attempt. Pure function over persisted fields.
func CanRetry(r *Reward) bool {
	return r.Status == RewardFailed && r.Chain.RetryCount < MaxDistributionRetries
}

// CanCancel reports whether a reward may still be cancelled. Cancellation is
// only possible before the reward has ever been submitted to the ledger.
func CanCancel(r *Reward) bool {
	return r.Status == RewardPending && r.ChainStatus == ChainNotSent
}

// CombinedState renders the product of the business and chain status axes,
// e.g. "PENDING/NOT_SENT".
func CombinedState(r *Reward) string {
	return fmt.Sprintf("%s/%s", r.Status, r.ChainStatus)
}

// FormatBalance renders a token balance as a decimal string with 8 fractional
// digits, the wire precision for all token amounts.
func FormatBalance(balance float64) string {
	return strconv.FormatFloat(balance, 'f', 8, 64)
}

// IsTerminalUpload reports whether an upload status is terminal.
func IsTerminalUpload(s UploadStatus) bool {
	return s == UploadCompleted || s == UploadFailed
}

// IsTerminalReward reports whether a reward can no longer change state.
// FAILED is terminal only once retries are exhausted.
func IsTerminalReward(r *Reward) bool {
	switch r.Status {
	case RewardCompleted, RewardCancelled:
		return true
	case RewardFailed:
		return r.Chain.RetryCount >= MaxDistributionRetries
	default:
		return false
	}
}
