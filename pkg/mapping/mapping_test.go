package mapping

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/greenmiles/odometer-rewards/pkg/models"
)

func TestToApiReward(t *testing.T) {
	confirmedAt := time.Now()
	reward := &models.Reward{
		Id:          "rew-1",
		UserId:      "user-1",
		Type:        models.RewardTypeUpload,
		Amount:      "1.50750050",
		Status:      models.RewardCompleted,
		ChainStatus: models.ChainConfirmed,
		Chain: models.ChainData{
			TxRef:       "0xtx1",
			RetryCount:  1,
			ConfirmedAt: &confirmedAt,
		},
	}

	apiReward := ToApiReward(reward)

	assert.Equal(t, "rew-1", apiReward.Id)
	assert.Equal(t, "UPLOAD", apiReward.Type)
	assert.Equal(t, "1.50750050", apiReward.Amount)
	assert.Equal(t, "COMPLETED", apiReward.Status)
	assert.Equal(t, "CONFIRMED", apiReward.ChainStatus)
	assert.Equal(t, "0xtx1", apiReward.TxRef)
	assert.False(t, apiReward.CanRetry)
	assert.False(t, apiReward.CanCancel)
	assert.Equal(t, &confirmedAt, apiReward.ConfirmedAt)
}

func TestToApiReward_EligibilityFlags(t *testing.T) {
	failed := &models.Reward{
		Status:      models.RewardFailed,
		ChainStatus: models.ChainFailed,
		Chain:       models.ChainData{RetryCount: 2},
	}
	assert.True(t, ToApiReward(failed).CanRetry)

	exhausted := &models.Reward{
		Status:      models.RewardFailed,
		ChainStatus: models.ChainFailed,
		Chain:       models.ChainData{RetryCount: 3},
	}
	assert.False(t, ToApiReward(exhausted).CanRetry)

	pending := &models.Reward{
		Status:      models.RewardPending,
		ChainStatus: models.ChainNotSent,
	}
	assert.True(t, ToApiReward(pending).CanCancel)
}

func TestToApiAccount(t *testing.T) {
	account := &models.Account{
		UserId:        "user-1",
		WalletAddress: "0xwallet",
		TokenBalance:  1.5075005,
	}

	apiAccount := ToApiAccount(account)

	assert.Equal(t, "1.50750050", apiAccount.TokenBalance)
	assert.Equal(t, "0xwallet", apiAccount.WalletAddress)
}

func TestToApiUpload(t *testing.T) {
	final := 45231.0
	upload := &models.Upload{
		Id:                "up-1",
		Status:            models.UploadCompleted,
		ValidationStatus:  models.ValidationApproved,
		FinalMileage:      &final,
		MileageConfidence: 0.955,
		MileageDelta:      231,
		CarbonSavedKg:     27.72,
	}

	apiUpload := ToApiUpload(upload)

	assert.Equal(t, "COMPLETED", apiUpload.Status)
	assert.Equal(t, "APPROVED", apiUpload.ValidationStatus)
	assert.Equal(t, &final, apiUpload.FinalMileage)
	assert.Equal(t, 0.955, apiUpload.MileageConfidence)
	assert.Equal(t, 27.72, apiUpload.CarbonSavedKg)
}
