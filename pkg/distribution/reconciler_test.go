package distribution

import (
	"context"
	"errors"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/greenmiles/odometer-rewards/pkg/audit"
	"github.com/greenmiles/odometer-rewards/pkg/chain"
	chainmocks "github.com/greenmiles/odometer-rewards/pkg/chain/mocks"
	"github.com/greenmiles/odometer-rewards/pkg/models"
	"github.com/greenmiles/odometer-rewards/pkg/storage"
	"github.com/greenmiles/odometer-rewards/pkg/storage/mocks"
)

func newReconciler(store *mocks.SweepStore, chainClient *chainmocks.Client) *Reconciler {
	return NewReconciler(store, chainClient, audit.NoOpRecorder{}, slog.Default())
}

func sentReward(id, txRef string) models.Reward {
	return models.Reward{
		Id:          id,
		UserId:      "user-1",
		Amount:      "1.50750050",
		Status:      models.RewardProcessing,
		ChainStatus: models.ChainSent,
		Chain:       models.ChainData{TxRef: txRef},
	}
}

func TestSweepSent(t *testing.T) {
	t.Run("Confirms And Credits", func(t *testing.T) {
		store := mocks.NewSweepStore(t)
		chainClient := chainmocks.NewClient(t)

		reward := sentReward("rew-1", "0xtx1")
		store.On("ListSent", mock.Anything).Return([]models.Reward{reward}, nil)
		chainClient.On("GetTransactionStatus", mock.Anything, "0xtx1").
			Return(&chain.TxStatus{State: chain.TxConfirmed, BlockNumber: 1234, GasUsed: 21000}, nil)
		store.On("ConfirmReward", mock.Anything, mock.MatchedBy(func(r *models.Reward) bool {
			return r.Id == "rew-1"
		}), int64(1234), int64(21000)).Return(nil)

		err := newReconciler(store, chainClient).SweepSent(context.Background())

		assert.NoError(t, err)
	})

	t.Run("Already Confirmed Is A No-Op", func(t *testing.T) {
		store := mocks.NewSweepStore(t)
		chainClient := chainmocks.NewClient(t)

		store.On("ListSent", mock.Anything).Return([]models.Reward{sentReward("rew-1", "0xtx1")}, nil)
		chainClient.On("GetTransactionStatus", mock.Anything, "0xtx1").
			Return(&chain.TxStatus{State: chain.TxConfirmed}, nil)
		store.On("ConfirmReward", mock.Anything, mock.Anything, mock.Anything, mock.Anything).
			Return(storage.ErrRewardNotSent)

		err := newReconciler(store, chainClient).SweepSent(context.Background())

		assert.NoError(t, err)
	})

	t.Run("Reverted Transaction Fails Reward", func(t *testing.T) {
		store := mocks.NewSweepStore(t)
		chainClient := chainmocks.NewClient(t)

		store.On("ListSent", mock.Anything).Return([]models.Reward{sentReward("rew-1", "0xtx1")}, nil)
		chainClient.On("GetTransactionStatus", mock.Anything, "0xtx1").
			Return(&chain.TxStatus{State: chain.TxReverted, Reason: "out of gas"}, nil)
		store.On("RevertReward", mock.Anything, "rew-1", "out of gas").Return(nil)

		err := newReconciler(store, chainClient).SweepSent(context.Background())

		assert.NoError(t, err)
		store.AssertNotCalled(t, "ConfirmReward", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Pending Transaction Only Touches", func(t *testing.T) {
		store := mocks.NewSweepStore(t)
		chainClient := chainmocks.NewClient(t)

		store.On("ListSent", mock.Anything).Return([]models.Reward{sentReward("rew-1", "0xtx1")}, nil)
		chainClient.On("GetTransactionStatus", mock.Anything, "0xtx1").
			Return(&chain.TxStatus{State: chain.TxPending}, nil)
		store.On("TouchSentReward", mock.Anything, "rew-1").Return(nil)

		err := newReconciler(store, chainClient).SweepSent(context.Background())

		assert.NoError(t, err)
	})

	t.Run("Transient Poll Error Leaves State Unchanged", func(t *testing.T) {
		store := mocks.NewSweepStore(t)
		chainClient := chainmocks.NewClient(t)

		store.On("ListSent", mock.Anything).Return([]models.Reward{sentReward("rew-1", "0xtx1")}, nil)
		chainClient.On("GetTransactionStatus", mock.Anything, "0xtx1").
			Return(nil, errors.New("rpc timeout"))

		err := newReconciler(store, chainClient).SweepSent(context.Background())

		assert.NoError(t, err)
		store.AssertNotCalled(t, "ConfirmReward", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
		store.AssertNotCalled(t, "RevertReward", mock.Anything, mock.Anything, mock.Anything)
		store.AssertNotCalled(t, "TouchSentReward", mock.Anything, mock.Anything)
	})

	t.Run("Sent Without Tx Ref Is Failed For Retry", func(t *testing.T) {
		store := mocks.NewSweepStore(t)
		chainClient := chainmocks.NewClient(t)

		store.On("ListSent", mock.Anything).Return([]models.Reward{sentReward("rew-1", "")}, nil)
		store.On("RevertReward", mock.Anything, "rew-1", mock.Anything).Return(nil)

		err := newReconciler(store, chainClient).SweepSent(context.Background())

		assert.NoError(t, err)
		chainClient.AssertNotCalled(t, "GetTransactionStatus", mock.Anything, mock.Anything)
	})

	t.Run("One Bad Reward Does Not Stop The Sweep", func(t *testing.T) {
		store := mocks.NewSweepStore(t)
		chainClient := chainmocks.NewClient(t)

		store.On("ListSent", mock.Anything).Return([]models.Reward{
			sentReward("rew-1", "0xtx1"),
			sentReward("rew-2", "0xtx2"),
		}, nil)
		chainClient.On("GetTransactionStatus", mock.Anything, "0xtx1").
			Return(&chain.TxStatus{State: chain.TxConfirmed}, nil)
		store.On("ConfirmReward", mock.Anything, mock.Anything, mock.Anything, mock.Anything).
			Return(errors.New("transaction conflict")).Once()
		chainClient.On("GetTransactionStatus", mock.Anything, "0xtx2").
			Return(&chain.TxStatus{State: chain.TxConfirmed}, nil)
		store.On("ConfirmReward", mock.Anything, mock.Anything, mock.Anything, mock.Anything).
			Return(nil).Once()

		err := newReconciler(store, chainClient).SweepSent(context.Background())

		assert.NoError(t, err)
		store.AssertNumberOfCalls(t, "ConfirmReward", 2)
	})
}
