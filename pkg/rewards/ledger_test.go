package rewards

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/greenmiles/odometer-rewards/pkg/models"
	"github.com/greenmiles/odometer-rewards/pkg/storage/mocks"
)

func TestAmount(t *testing.T) {
	// 150.5 x 0.01 + (2500.5 / 1000) x 0.001 = 1.505 + 0.0025005 = 1.5075005
	assert.Equal(t, "1.50750050", Amount(150.5, 2500.5))
	assert.Equal(t, "0.00000000", Amount(0, 0))
	assert.Equal(t, "1.00000000", Amount(100, 0))
	assert.Equal(t, "0.00100000", Amount(0, 1_000_000))
}

func TestAmount_Deterministic(t *testing.T) {
	first := Amount(150.5, 2500.5)
	for i := 0; i < 100; i++ {
		assert.Equal(t, first, Amount(150.5, 2500.5))
	}
}

func TestCreateUploadReward(t *testing.T) {
	proof := models.ProofData{UploadId: "up-1", ImageHash: "abc", Miles: 150.5, CarbonGrams: 2500.5}

	t.Run("Success", func(t *testing.T) {
		store := mocks.NewPipelineStore(t)
		store.On("CreateReward", mock.Anything, mock.MatchedBy(func(r *models.Reward) bool {
			return r.UserId == "user-1" &&
				r.Type == models.RewardTypeUpload &&
				r.Amount == "1.50750050" &&
				r.MilesDriven == 150.5 &&
				r.CarbonGrams == 2500.5 &&
				r.Proof.UploadId == "up-1" &&
				r.Id != ""
		})).Return(&models.Reward{Id: "rew-1"}, nil)

		reward, err := NewLedger(store).CreateUploadReward(context.Background(), "user-1", "up-1", 150.5, 2500.5, proof)

		assert.NoError(t, err)
		assert.Equal(t, "rew-1", reward.Id)
	})

	t.Run("Store Failure", func(t *testing.T) {
		store := mocks.NewPipelineStore(t)
		store.On("CreateReward", mock.Anything, mock.Anything).
			Return(nil, errors.New("write failed"))

		_, err := NewLedger(store).CreateUploadReward(context.Background(), "user-1", "up-1", 150.5, 2500.5, proof)

		assert.Error(t, err)
	})
}
