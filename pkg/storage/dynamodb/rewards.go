package dynamodb

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/greenmiles/odometer-rewards/pkg/models"
	"github.com/greenmiles/odometer-rewards/pkg/storage"
)

const (
	rewardUserIndex  = "user_id-created_at-index"
	rewardChainIndex = "chain_status-created_at-index"
)

// CreateReward persists a new reward in PENDING/NOT_SENT.
func (s *Store) CreateReward(ctx context.Context, reward *models.Reward) (*models.Reward, error) {
	now := time.Now()
	reward.Status = models.RewardPending
	reward.ChainStatus = models.ChainNotSent
	reward.CreatedAt = now
	reward.UpdatedAt = now

	rewardAV, err := attributevalue.MarshalMap(reward)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal reward: %w", err)
	}

	input := &dynamodb.PutItemInput{
		TableName:           aws.String(s.RewardsTableName),
		Item:                rewardAV,
		ConditionExpression: aws.String("attribute_not_exists(id)"),
	}

	if _, err := s.Client.PutItem(ctx, input); err != nil {
		return nil, fmt.Errorf("failed to create reward in DynamoDB: %w", err)
	}

	return reward, nil
}

// GetReward retrieves a reward from DynamoDB by its ID.
func (s *Store) GetReward(ctx context.Context, rewardID string) (*models.Reward, error) {
	key, err := attributevalue.MarshalMap(map[string]string{"id": rewardID})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal reward ID: %w", err)
	}

	input := &dynamodb.GetItemInput{
		TableName: aws.String(s.RewardsTableName),
		Key:       key,
	}

	result, err := s.Client.GetItem(ctx, input)
	if err != nil {
		return nil, fmt.Errorf("failed to get reward from DynamoDB: %w", err)
	}

	if result.Item == nil {
		return nil, storage.ErrRewardNotFound
	}

	var reward models.Reward
	if err := attributevalue.UnmarshalMap(result.Item, &reward); err != nil {
		return nil, fmt.Errorf("failed to unmarshal reward: %w", err)
	}

	return &reward, nil
}

// ListRewardsByUserID retrieves a user's rewards, newest first, optionally
// narrowed by status.
func (s *Store) ListRewardsByUserID(ctx context.Context, userID string, filter storage.RewardFilter) ([]models.Reward, error) {
	input := &dynamodb.QueryInput{
		TableName:              aws.String(s.RewardsTableName),
		IndexName:              aws.String(rewardUserIndex),
		KeyConditionExpression: aws.String("user_id = :userID"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":userID": &types.AttributeValueMemberS{Value: userID},
		},
		ScanIndexForward: aws.Bool(false),
	}

	if filter.Status != "" {
		input.FilterExpression = aws.String("#status = :status")
		input.ExpressionAttributeNames = map[string]string{"#status": "status"}
		input.ExpressionAttributeValues[":status"] = &types.AttributeValueMemberS{Value: string(filter.Status)}
	}
	if filter.Limit > 0 {
		input.Limit = aws.Int32(filter.Limit)
	}

	result, err := s.Client.Query(ctx, input)
	if err != nil {
		return nil, fmt.Errorf("failed to query rewards by user ID: %w", err)
	}

	var rewards []models.Reward
	if err := attributevalue.UnmarshalListOfMaps(result.Items, &rewards); err != nil {
		return nil, fmt.Errorf("failed to unmarshal rewards: %w", err)
	}

	return rewards, nil
}

// RetryReward resets a FAILED reward back to PENDING/NOT_SENT for the next
// sweep. The condition enforces both the FAILED state and the retry budget.
func (s *Store) RetryReward(ctx context.Context, rewardID string) error {
	now, err := attributevalue.Marshal(time.Now())
	if err != nil {
		return fmt.Errorf("failed to marshal timestamp: %w", err)
	}

	input := &dynamodb.UpdateItemInput{
		TableName: aws.String(s.RewardsTableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: rewardID},
		},
		UpdateExpression:    aws.String("SET #status = :pending, chain_status = :not_sent, chain_data.last_retry_at = :now, updated_at = :now REMOVE failure_reason, chain_data.tx_ref"),
		ConditionExpression: aws.String("#status = :failed AND chain_data.retry_count < :max_retries"),
		ExpressionAttributeNames: map[string]string{
			"#status": "status",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":pending":     &types.AttributeValueMemberS{Value: string(models.RewardPending)},
			":not_sent":    &types.AttributeValueMemberS{Value: string(models.ChainNotSent)},
			":failed":      &types.AttributeValueMemberS{Value: string(models.RewardFailed)},
			":max_retries": &types.AttributeValueMemberN{Value: fmt.Sprintf("%d", models.MaxDistributionRetries)},
			":now":         now,
		},
	}

	if _, err := s.Client.UpdateItem(ctx, input); err != nil {
		var condCheckFailed *types.ConditionalCheckFailedException
		if errors.As(err, &condCheckFailed) {
			return storage.ErrRewardNotRetryable
		}
		return fmt.Errorf("failed to retry reward: %w", err)
	}

	return nil
}

// CancelReward cancels a reward that has never been submitted. Once a reward
// is SENT the external submission is irreversible, so cancellation is
// rejected.
func (s *Store) CancelReward(ctx context.Context, rewardID string) error {
	now, err := attributevalue.Marshal(time.Now())
	if err != nil {
		return fmt.Errorf("failed to marshal timestamp: %w", err)
	}

	input := &dynamodb.UpdateItemInput{
		TableName: aws.String(s.RewardsTableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: rewardID},
		},
		UpdateExpression:    aws.String("SET #status = :cancelled, updated_at = :now"),
		ConditionExpression: aws.String("#status = :pending AND chain_status = :not_sent"),
		ExpressionAttributeNames: map[string]string{
			"#status": "status",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":cancelled": &types.AttributeValueMemberS{Value: string(models.RewardCancelled)},
			":pending":   &types.AttributeValueMemberS{Value: string(models.RewardPending)},
			":not_sent":  &types.AttributeValueMemberS{Value: string(models.ChainNotSent)},
			":now":       now,
		},
	}

	if _, err := s.Client.UpdateItem(ctx, input); err != nil {
		var condCheckFailed *types.ConditionalCheckFailedException
		if errors.As(err, &condCheckFailed) {
			return storage.ErrRewardNotCancellable
		}
		return fmt.Errorf("failed to cancel reward: %w", err)
	}

	return nil
}
