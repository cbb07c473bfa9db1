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

// ConfirmReward performs the final atomic confirmation of a distributed
// reward. A single TransactWriteItems moves the reward from SENT to
// COMPLETED/CONFIRMED and credits the owner's balance, so the status
// transition and the credit commit together or not at all.
//
// Idempotency hangs on the chain_status condition: a reward that is already
// CONFIRMED fails the conditional check, the whole transaction cancels, and
// the balance is not credited a second time.
func (s *Store) ConfirmReward(ctx context.Context, reward *models.Reward, blockNumber, gasUsed int64) error {
	now := time.Now()
	nowAV, err := attributevalue.Marshal(now)
	if err != nil {
		return fmt.Errorf("failed to marshal confirmation timestamp: %w", err)
	}

	input := &dynamodb.TransactWriteItemsInput{
		TransactItems: []types.TransactWriteItem{
			{
				// Operation 1: Confirm the reward. The tx ref recorded at
				// submission time must still match what we polled.
				Update: &types.Update{
					TableName: aws.String(s.RewardsTableName),
					Key: map[string]types.AttributeValue{
						"id": &types.AttributeValueMemberS{Value: reward.Id},
					},
					UpdateExpression:    aws.String("SET #status = :completed, chain_status = :confirmed, chain_data.confirmed_at = :now, chain_data.block_number = :block, chain_data.gas_used = :gas, updated_at = :now"),
					ConditionExpression: aws.String("chain_status = :sent AND chain_data.tx_ref = :tx_ref"),
					ExpressionAttributeNames: map[string]string{
						"#status": "status",
					},
					ExpressionAttributeValues: map[string]types.AttributeValue{
						":completed": &types.AttributeValueMemberS{Value: string(models.RewardCompleted)},
						":confirmed": &types.AttributeValueMemberS{Value: string(models.ChainConfirmed)},
						":sent":      &types.AttributeValueMemberS{Value: string(models.ChainSent)},
						":tx_ref":    &types.AttributeValueMemberS{Value: reward.Chain.TxRef},
						":block":     &types.AttributeValueMemberN{Value: fmt.Sprintf("%d", blockNumber)},
						":gas":       &types.AttributeValueMemberN{Value: fmt.Sprintf("%d", gasUsed)},
						":now":       nowAV,
					},
				},
			},
			{
				// Operation 2: Credit the owner's balance. A server-side
				// increment, never a read-modify-write.
				Update: &types.Update{
					TableName: aws.String(s.AccountsTableName),
					Key: map[string]types.AttributeValue{
						"user_id": &types.AttributeValueMemberS{Value: reward.UserId},
					},
					UpdateExpression:    aws.String("SET token_balance = token_balance + :amount, updated_at = :now"),
					ConditionExpression: aws.String("attribute_exists(user_id)"),
					ExpressionAttributeValues: map[string]types.AttributeValue{
						":amount": &types.AttributeValueMemberN{Value: reward.Amount},
						":now":    nowAV,
					},
				},
			},
		},
	}

	if _, err := s.Client.TransactWriteItems(ctx, input); err != nil {
		var tce *types.TransactionCanceledException
		if errors.As(err, &tce) {
			if len(tce.CancellationReasons) > 0 && tce.CancellationReasons[0].Code != nil && *tce.CancellationReasons[0].Code == "ConditionalCheckFailed" {
				// Already confirmed (or failed) by an earlier sweep.
				return storage.ErrRewardNotSent
			}
		}
		return fmt.Errorf("failed to execute confirmation transaction: %w", err)
	}

	return nil
}
