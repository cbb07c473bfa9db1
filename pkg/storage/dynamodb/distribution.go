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

// ListDistributable retrieves up to limit rewards in PENDING/NOT_SENT, oldest
// first. Cancelled rewards share the NOT_SENT chain status, so the business
// status is filtered as well.
func (s *Store) ListDistributable(ctx context.Context, limit int32) ([]models.Reward, error) {
	input := &dynamodb.QueryInput{
		TableName:              aws.String(s.RewardsTableName),
		IndexName:              aws.String(rewardChainIndex),
		KeyConditionExpression: aws.String("chain_status = :not_sent"),
		FilterExpression:       aws.String("#status = :pending"),
		ExpressionAttributeNames: map[string]string{
			"#status": "status",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":not_sent": &types.AttributeValueMemberS{Value: string(models.ChainNotSent)},
			":pending":  &types.AttributeValueMemberS{Value: string(models.RewardPending)},
		},
		ScanIndexForward: aws.Bool(true), // oldest first
		Limit:            aws.Int32(limit),
	}

	result, err := s.Client.Query(ctx, input)
	if err != nil {
		return nil, fmt.Errorf("failed to query distributable rewards: %w", err)
	}

	var rewards []models.Reward
	if err := attributevalue.UnmarshalListOfMaps(result.Items, &rewards); err != nil {
		return nil, fmt.Errorf("failed to unmarshal distributable rewards: %w", err)
	}

	return rewards, nil
}

// ClaimForDistribution atomically moves a reward from PENDING/NOT_SENT to
// PROCESSING/SENT. This write happens before the ledger submission: a crash
// after the claim leaves the reward SENT without a tx ref, which the
// reconciler surfaces, instead of a double submission.
func (s *Store) ClaimForDistribution(ctx context.Context, rewardID string) error {
	now, err := attributevalue.Marshal(time.Now())
	if err != nil {
		return fmt.Errorf("failed to marshal timestamp: %w", err)
	}

	input := &dynamodb.UpdateItemInput{
		TableName: aws.String(s.RewardsTableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: rewardID},
		},
		UpdateExpression:    aws.String("SET #status = :processing, chain_status = :sent, updated_at = :now"),
		ConditionExpression: aws.String("#status = :pending AND chain_status = :not_sent"),
		ExpressionAttributeNames: map[string]string{
			"#status": "status",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":processing": &types.AttributeValueMemberS{Value: string(models.RewardProcessing)},
			":sent":       &types.AttributeValueMemberS{Value: string(models.ChainSent)},
			":pending":    &types.AttributeValueMemberS{Value: string(models.RewardPending)},
			":not_sent":   &types.AttributeValueMemberS{Value: string(models.ChainNotSent)},
			":now":        now,
		},
	}

	if _, err := s.Client.UpdateItem(ctx, input); err != nil {
		var condCheckFailed *types.ConditionalCheckFailedException
		if errors.As(err, &condCheckFailed) {
			return storage.ErrRewardAlreadyClaimed
		}
		return fmt.Errorf("failed to claim reward for distribution: %w", err)
	}

	return nil
}

// RecordSubmission persists the ledger transaction reference on every reward
// in a successfully submitted batch.
func (s *Store) RecordSubmission(ctx context.Context, rewardIDs []string, txRef string) error {
	now, err := attributevalue.Marshal(time.Now())
	if err != nil {
		return fmt.Errorf("failed to marshal timestamp: %w", err)
	}

	for _, rewardID := range rewardIDs {
		input := &dynamodb.UpdateItemInput{
			TableName: aws.String(s.RewardsTableName),
			Key: map[string]types.AttributeValue{
				"id": &types.AttributeValueMemberS{Value: rewardID},
			},
			UpdateExpression:    aws.String("SET chain_data.tx_ref = :tx_ref, updated_at = :now"),
			ConditionExpression: aws.String("chain_status = :sent"),
			ExpressionAttributeValues: map[string]types.AttributeValue{
				":tx_ref": &types.AttributeValueMemberS{Value: txRef},
				":sent":   &types.AttributeValueMemberS{Value: string(models.ChainSent)},
				":now":    now,
			},
		}

		if _, err := s.Client.UpdateItem(ctx, input); err != nil {
			return fmt.Errorf("failed to record submission on reward %s: %w", rewardID, err)
		}
	}

	return nil
}

// FailSubmission moves every reward in a failed batch to FAILED/FAILED with
// the given reason and increments its retry count. All members of the batch
// fail together.
func (s *Store) FailSubmission(ctx context.Context, rewardIDs []string, reason string) error {
	now, err := attributevalue.Marshal(time.Now())
	if err != nil {
		return fmt.Errorf("failed to marshal timestamp: %w", err)
	}

	for _, rewardID := range rewardIDs {
		input := &dynamodb.UpdateItemInput{
			TableName: aws.String(s.RewardsTableName),
			Key: map[string]types.AttributeValue{
				"id": &types.AttributeValueMemberS{Value: rewardID},
			},
			UpdateExpression: aws.String("SET #status = :failed, chain_status = :chain_failed, failure_reason = :reason, chain_data.retry_count = chain_data.retry_count + :inc, chain_data.last_retry_at = :now, updated_at = :now"),
			ExpressionAttributeNames: map[string]string{
				"#status": "status",
			},
			ExpressionAttributeValues: map[string]types.AttributeValue{
				":failed":       &types.AttributeValueMemberS{Value: string(models.RewardFailed)},
				":chain_failed": &types.AttributeValueMemberS{Value: string(models.ChainFailed)},
				":reason":       &types.AttributeValueMemberS{Value: reason},
				":inc":          &types.AttributeValueMemberN{Value: "1"},
				":now":          now,
			},
		}

		if _, err := s.Client.UpdateItem(ctx, input); err != nil {
			return fmt.Errorf("failed to mark reward %s as failed: %w", rewardID, err)
		}
	}

	return nil
}

// ListSent retrieves all rewards awaiting confirmation.
func (s *Store) ListSent(ctx context.Context) ([]models.Reward, error) {
	input := &dynamodb.QueryInput{
		TableName:              aws.String(s.RewardsTableName),
		IndexName:              aws.String(rewardChainIndex),
		KeyConditionExpression: aws.String("chain_status = :sent"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":sent": &types.AttributeValueMemberS{Value: string(models.ChainSent)},
		},
		ScanIndexForward: aws.Bool(true),
	}

	// Every sent reward must be seen each sweep, so follow LastEvaluatedKey
	// across pages.
	var rewards []models.Reward
	for {
		result, err := s.Client.Query(ctx, input)
		if err != nil {
			return nil, fmt.Errorf("failed to query sent rewards: %w", err)
		}

		var page []models.Reward
		if err := attributevalue.UnmarshalListOfMaps(result.Items, &page); err != nil {
			return nil, fmt.Errorf("failed to unmarshal sent rewards: %w", err)
		}
		rewards = append(rewards, page...)

		if result.LastEvaluatedKey == nil {
			return rewards, nil
		}
		input.ExclusiveStartKey = result.LastEvaluatedKey
	}
}

// RevertReward moves a reward observed as reverted on-chain to FAILED/FAILED.
func (s *Store) RevertReward(ctx context.Context, rewardID, reason string) error {
	now, err := attributevalue.Marshal(time.Now())
	if err != nil {
		return fmt.Errorf("failed to marshal timestamp: %w", err)
	}

	input := &dynamodb.UpdateItemInput{
		TableName: aws.String(s.RewardsTableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: rewardID},
		},
		UpdateExpression:    aws.String("SET #status = :failed, chain_status = :chain_failed, failure_reason = :reason, chain_data.retry_count = chain_data.retry_count + :inc, chain_data.last_retry_at = :now, updated_at = :now"),
		ConditionExpression: aws.String("chain_status = :sent"),
		ExpressionAttributeNames: map[string]string{
			"#status": "status",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":failed":       &types.AttributeValueMemberS{Value: string(models.RewardFailed)},
			":chain_failed": &types.AttributeValueMemberS{Value: string(models.ChainFailed)},
			":reason":       &types.AttributeValueMemberS{Value: reason},
			":sent":         &types.AttributeValueMemberS{Value: string(models.ChainSent)},
			":inc":          &types.AttributeValueMemberN{Value: "1"},
			":now":          now,
		},
	}

	if _, err := s.Client.UpdateItem(ctx, input); err != nil {
		var condCheckFailed *types.ConditionalCheckFailedException
		if errors.As(err, &condCheckFailed) {
			return storage.ErrRewardNotSent
		}
		return fmt.Errorf("failed to revert reward: %w", err)
	}

	return nil
}

// TouchSentReward records a poll attempt without changing reward state.
func (s *Store) TouchSentReward(ctx context.Context, rewardID string) error {
	now, err := attributevalue.Marshal(time.Now())
	if err != nil {
		return fmt.Errorf("failed to marshal timestamp: %w", err)
	}

	input := &dynamodb.UpdateItemInput{
		TableName: aws.String(s.RewardsTableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: rewardID},
		},
		UpdateExpression: aws.String("SET chain_data.last_checked_at = :now"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":now": now,
		},
	}

	if _, err := s.Client.UpdateItem(ctx, input); err != nil {
		return fmt.Errorf("failed to touch sent reward: %w", err)
	}

	return nil
}
