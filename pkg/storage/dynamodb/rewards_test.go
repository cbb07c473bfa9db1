package dynamodb

import (
	"context"
	"testing"

	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/greenmiles/odometer-rewards/pkg/models"
	"github.com/greenmiles/odometer-rewards/pkg/storage"
	"github.com/greenmiles/odometer-rewards/pkg/storage/dynamodb/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestCreateReward(t *testing.T) {
	mockClient := new(mocks.DynamoDBAPI)
	store := &Store{Client: mockClient, RewardsTableName: "rewards"}

	mockClient.On("PutItem", mock.Anything, mock.Anything).Once().Return(&dynamodb.PutItemOutput{}, nil)

	reward := &models.Reward{Id: "reward1", UserId: "user1", Amount: "1.50750050"}
	created, err := store.CreateReward(context.Background(), reward)

	assert.NoError(t, err)
	assert.Equal(t, models.RewardPending, created.Status)
	assert.Equal(t, models.ChainNotSent, created.ChainStatus)
	mockClient.AssertExpectations(t)
}

func TestCancelReward(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		mockClient := new(mocks.DynamoDBAPI)
		store := &Store{Client: mockClient, RewardsTableName: "rewards"}

		mockClient.On("UpdateItem", mock.Anything, mock.MatchedBy(func(input *dynamodb.UpdateItemInput) bool {
			return input.ConditionExpression != nil && *input.ConditionExpression == "#status = :pending AND chain_status = :not_sent"
		})).Once().Return(&dynamodb.UpdateItemOutput{}, nil)

		err := store.CancelReward(context.Background(), "reward1")

		assert.NoError(t, err)
		mockClient.AssertExpectations(t)
	})

	t.Run("Already Sent", func(t *testing.T) {
		mockClient := new(mocks.DynamoDBAPI)
		store := &Store{Client: mockClient, RewardsTableName: "rewards"}

		mockClient.On("UpdateItem", mock.Anything, mock.Anything).Return(nil, &types.ConditionalCheckFailedException{})

		err := store.CancelReward(context.Background(), "reward1")

		assert.ErrorIs(t, err, storage.ErrRewardNotCancellable)
		mockClient.AssertExpectations(t)
	})
}

func TestRetryReward(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		mockClient := new(mocks.DynamoDBAPI)
		store := &Store{Client: mockClient, RewardsTableName: "rewards"}

		mockClient.On("UpdateItem", mock.Anything, mock.MatchedBy(func(input *dynamodb.UpdateItemInput) bool {
			return input.ConditionExpression != nil && *input.ConditionExpression == "#status = :failed AND chain_data.retry_count < :max_retries"
		})).Once().Return(&dynamodb.UpdateItemOutput{}, nil)

		err := store.RetryReward(context.Background(), "reward1")

		assert.NoError(t, err)
		mockClient.AssertExpectations(t)
	})

	t.Run("Retries Exhausted", func(t *testing.T) {
		mockClient := new(mocks.DynamoDBAPI)
		store := &Store{Client: mockClient, RewardsTableName: "rewards"}

		mockClient.On("UpdateItem", mock.Anything, mock.Anything).Return(nil, &types.ConditionalCheckFailedException{})

		err := store.RetryReward(context.Background(), "reward1")

		assert.ErrorIs(t, err, storage.ErrRewardNotRetryable)
		mockClient.AssertExpectations(t)
	})
}

func TestGetReward_NotFound(t *testing.T) {
	mockClient := new(mocks.DynamoDBAPI)
	store := &Store{Client: mockClient, RewardsTableName: "rewards"}

	mockClient.On("GetItem", mock.Anything, mock.Anything).Return(&dynamodb.GetItemOutput{Item: nil}, nil)

	_, err := store.GetReward(context.Background(), "missing")

	assert.ErrorIs(t, err, storage.ErrRewardNotFound)
	mockClient.AssertExpectations(t)
}

func TestListRewardsByUserID_WithStatusFilter(t *testing.T) {
	mockClient := new(mocks.DynamoDBAPI)
	store := &Store{Client: mockClient, RewardsTableName: "rewards"}

	reward := models.Reward{Id: "reward1", UserId: "user1", Status: models.RewardFailed}
	rewardAV, _ := attributevalue.MarshalMap(reward)

	mockClient.On("Query", mock.Anything, mock.MatchedBy(func(input *dynamodb.QueryInput) bool {
		return input.FilterExpression != nil && *input.FilterExpression == "#status = :status"
	})).Once().Return(&dynamodb.QueryOutput{Items: []map[string]types.AttributeValue{rewardAV}}, nil)

	rewards, err := store.ListRewardsByUserID(context.Background(), "user1", storage.RewardFilter{Status: models.RewardFailed})

	assert.NoError(t, err)
	assert.Len(t, rewards, 1)
	mockClient.AssertExpectations(t)
}
