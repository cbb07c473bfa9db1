package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCanRetry(t *testing.T) {
	t.Run("Retries Remaining", func(t *testing.T) {
		r := &Reward{Status: RewardFailed, Chain: ChainData{RetryCount: 2}}
		assert.True(t, CanRetry(r))
	})

	t.Run("Retries Exhausted", func(t *testing.T) {
		r := &Reward{Status: RewardFailed, Chain: ChainData{RetryCount: 3}}
		assert.False(t, CanRetry(r))
	})

	t.Run("Not Failed", func(t *testing.T) {
		r := &Reward{Status: RewardPending, Chain: ChainData{RetryCount: 0}}
		assert.False(t, CanRetry(r))
	})
}

func TestCanCancel(t *testing.T) {
	t.Run("Pending And Not Sent", func(t *testing.T) {
		r := &Reward{Status: RewardPending, ChainStatus: ChainNotSent}
		assert.True(t, CanCancel(r))
	})

	t.Run("Already Sent", func(t *testing.T) {
		r := &Reward{Status: RewardProcessing, ChainStatus: ChainSent}
		assert.False(t, CanCancel(r))
	})

	t.Run("Pending But Submitted", func(t *testing.T) {
		// Should not happen in practice, but the chain axis wins.
		r := &Reward{Status: RewardPending, ChainStatus: ChainSent}
		assert.False(t, CanCancel(r))
	})
}

func TestCombinedState(t *testing.T) {
	r := &Reward{Status: RewardProcessing, ChainStatus: ChainSent}
	assert.Equal(t, "PROCESSING/SENT", CombinedState(r))
}

func TestFormatBalance(t *testing.T) {
	assert.Equal(t, "1.50750050", FormatBalance(1.5075005))
	assert.Equal(t, "0.00000000", FormatBalance(0))
}

func TestIsTerminalReward(t *testing.T) {
	assert.True(t, IsTerminalReward(&Reward{Status: RewardCompleted}))
	assert.True(t, IsTerminalReward(&Reward{Status: RewardCancelled}))
	assert.True(t, IsTerminalReward(&Reward{Status: RewardFailed, Chain: ChainData{RetryCount: 3}}))
	assert.False(t, IsTerminalReward(&Reward{Status: RewardFailed, Chain: ChainData{RetryCount: 1}}))
	assert.False(t, IsTerminalReward(&Reward{Status: RewardPending}))
}
