// Package mapping converts between domain models and API wire types.
package mapping

import (
	"github.com/greenmiles/odometer-rewards/pkg/api"
	"github.com/greenmiles/odometer-rewards/pkg/models"
)

// ToApiUpload converts a domain Upload model to an API Upload model.
func ToApiUpload(upload *models.Upload) *api.Upload {
	return &api.Upload{
		Id:                upload.Id,
		UserId:            upload.UserId,
		VehicleId:         upload.VehicleId,
		ImageUrl:          upload.ImageUrl,
		ThumbnailUrl:      upload.ThumbnailUrl,
		Status:            string(upload.Status),
		ValidationStatus:  string(upload.ValidationStatus),
		ExtractedMileage:  upload.ExtractedMileage,
		OcrConfidence:     upload.OcrConfidence,
		FinalMileage:      upload.FinalMileage,
		MileageConfidence: upload.MileageConfidence,
		MileageDelta:      upload.MileageDelta,
		CarbonSavedKg:     upload.CarbonSavedKg,
		FailureReason:     upload.FailureReason,
		CreatedAt:         upload.CreatedAt,
		UpdatedAt:         upload.UpdatedAt,
	}
}

// ToApiReward converts a domain Reward model to an API Reward model. The
// retry and cancel eligibility flags are derived here so clients never have
// to reimplement the state machine.
func ToApiReward(reward *models.Reward) *api.Reward {
	return &api.Reward{
		Id:            reward.Id,
		UserId:        reward.UserId,
		Type:          string(reward.Type),
		Amount:        reward.Amount,
		MilesDriven:   reward.MilesDriven,
		CarbonGrams:   reward.CarbonGrams,
		Status:        string(reward.Status),
		ChainStatus:   string(reward.ChainStatus),
		TxRef:         reward.Chain.TxRef,
		RetryCount:    reward.Chain.RetryCount,
		CanRetry:      models.CanRetry(reward),
		CanCancel:     models.CanCancel(reward),
		FailureReason: reward.FailureReason,
		ConfirmedAt:   reward.Chain.ConfirmedAt,
		CreatedAt:     reward.CreatedAt,
		UpdatedAt:     reward.UpdatedAt,
	}
}

// ToApiAccount converts a domain Account model to an API Account model. The
// balance is rendered with the token's fixed 8-decimal precision.
func ToApiAccount(account *models.Account) *api.Account {
	return &api.Account{
		UserId:        account.UserId,
		WalletAddress: account.WalletAddress,
		TokenBalance:  models.FormatBalance(account.TokenBalance),
		CreatedAt:     account.CreatedAt,
		UpdatedAt:     account.UpdatedAt,
	}
}

// ToDomainNewAccount converts an API NewAccount model to a domain Account
// model.
func ToDomainNewAccount(newAccount *api.NewAccount) *models.Account {
	return &models.Account{
		UserId:        newAccount.UserId,
		WalletAddress: newAccount.WalletAddress,
	}
}
