package dynamodb

import (
	"context"
	"errors"
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

func TestClaimForDistribution(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		mockClient := new(mocks.DynamoDBAPI)
		store := &Store{Client: mockClient, RewardsTableName: "rewards"}

		mockClient.On("UpdateItem", mock.Anything, mock.MatchedBy(func(input *dynamodb.UpdateItemInput) bool {
			// The claim must be conditional on PENDING/NOT_SENT.
			return input.ConditionExpression != nil && *input.ConditionExpression == "#status = :pending AND chain_status = :not_sent"
		})).Once().Return(&dynamodb.UpdateItemOutput{}, nil)

		err := store.ClaimForDistribution(context.Background(), "reward1")

		assert.NoError(t, err)
		mockClient.AssertExpectations(t)
	})

	t.Run("Already Claimed", func(t *testing.T) {
		mockClient := new(mocks.DynamoDBAPI)
		store := &Store{Client: mockClient, RewardsTableName: "rewards"}

		mockClient.On("UpdateItem", mock.Anything, mock.Anything).Return(nil, &types.ConditionalCheckFailedException{})

		err := store.ClaimForDistribution(context.Background(), "reward1")

		assert.ErrorIs(t, err, storage.ErrRewardAlreadyClaimed)
		mockClient.AssertExpectations(t)
	})

	t.Run("Update Fails", func(t *testing.T) {
		mockClient := new(mocks.DynamoDBAPI)
		store := &Store{Client: mockClient, RewardsTableName: "rewards"}

		mockClient.On("UpdateItem", mock.Anything, mock.Anything).Return(nil, errors.New("update failed"))

		err := store.ClaimForDistribution(context.Background(), "reward1")

		assert.Error(t, err)
		assert.Contains(t, err.Error(), "failed to claim reward")
		mockClient.AssertExpectations(t)
	})
}

func TestListDistributable(t *testing.T) {
	mockClient := new(mocks.DynamoDBAPI)
	store := &Store{Client: mockClient, RewardsTableName: "rewards"}

	pending := models.Reward{Id: "reward1", Status: models.RewardPending, ChainStatus: models.ChainNotSent}
	pendingAV, _ := attributevalue.MarshalMap(pending)

	mockClient.On("Query", mock.Anything, mock.MatchedBy(func(input *dynamodb.QueryInput) bool {
		// Oldest first, capped.
		return input.ScanIndexForward != nil && *input.ScanIndexForward && input.Limit != nil && *input.Limit == 100
	})).Once().Return(&dynamodb.QueryOutput{Items: []map[string]types.AttributeValue{pendingAV}}, nil)

	rewards, err := store.ListDistributable(context.Background(), 100)

	assert.NoError(t, err)
	assert.Len(t, rewards, 1)
	assert.Equal(t, "reward1", rewards[0].Id)
	mockClient.AssertExpectations(t)
}

func TestListSent(t *testing.T) {
	mockClient := new(mocks.DynamoDBAPI)
	store := &Store{Client: mockClient, RewardsTableName: "rewards"}

	first := models.Reward{Id: "r1", ChainStatus: models.ChainSent}
	second := models.Reward{Id: "r2", ChainStatus: models.ChainSent}
	firstAV, _ := attributevalue.MarshalMap(first)
	secondAV, _ := attributevalue.MarshalMap(second)

	// Rewards split across two pages are all returned.
	pageKey := map[string]types.AttributeValue{"id": &types.AttributeValueMemberS{Value: "r1"}}
	mockClient.On("Query", mock.Anything, mock.MatchedBy(func(input *dynamodb.QueryInput) bool {
		return input.ExclusiveStartKey == nil
	})).Once().Return(&dynamodb.QueryOutput{Items: []map[string]types.AttributeValue{firstAV}, LastEvaluatedKey: pageKey}, nil)
	mockClient.On("Query", mock.Anything, mock.MatchedBy(func(input *dynamodb.QueryInput) bool {
		return input.ExclusiveStartKey != nil
	})).Once().Return(&dynamodb.QueryOutput{Items: []map[string]types.AttributeValue{secondAV}}, nil)

	rewards, err := store.ListSent(context.Background())

	assert.NoError(t, err)
	assert.Len(t, rewards, 2)
	assert.Equal(t, "r1", rewards[0].Id)
	assert.Equal(t, "r2", rewards[1].Id)
	mockClient.AssertExpectations(t)
}

func TestFailSubmission(t *testing.T) {
	mockClient := new(mocks.DynamoDBAPI)
	store := &Store{Client: mockClient, RewardsTableName: "rewards"}

	// Every member of the batch fails together.
	mockClient.On("UpdateItem", mock.Anything, mock.Anything).Times(3).Return(&dynamodb.UpdateItemOutput{}, nil)

	err := store.FailSubmission(context.Background(), []string{"r1", "r2", "r3"}, "rpc unavailable")

	assert.NoError(t, err)
	mockClient.AssertExpectations(t)
}

func TestRevertReward_NotSent(t *testing.T) {
	mockClient := new(mocks.DynamoDBAPI)
	store := &Store{Client: mockClient, RewardsTableName: "rewards"}

	mockClient.On("UpdateItem", mock.Anything, mock.Anything).Return(nil, &types.ConditionalCheckFailedException{})

	err := store.RevertReward(context.Background(), "reward1", "reverted on-chain")

	assert.ErrorIs(t, err, storage.ErrRewardNotSent)
	mockClient.AssertExpectations(t)
}
