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
	uploadUserIndex   = "user_id-created_at-index"
	uploadStatusIndex = "status-created_at-index"
)

// CreateUpload persists a new upload row. The conditional put guards against
// id collisions; the caller has already set status PROCESSING.
func (s *Store) CreateUpload(ctx context.Context, upload *models.Upload) (*models.Upload, error) {
	now := time.Now()
	upload.CreatedAt = now
	upload.UpdatedAt = now

	uploadAV, err := attributevalue.MarshalMap(upload)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal upload: %w", err)
	}

	input := &dynamodb.PutItemInput{
		TableName:           aws.String(s.UploadsTableName),
		Item:                uploadAV,
		ConditionExpression: aws.String("attribute_not_exists(id)"),
	}

	if _, err := s.Client.PutItem(ctx, input); err != nil {
		return nil, fmt.Errorf("failed to create upload in DynamoDB: %w", err)
	}

	return upload, nil
}

// GetUpload retrieves an upload from DynamoDB by its ID.
func (s *Store) GetUpload(ctx context.Context, uploadID string) (*models.Upload, error) {
	key, err := attributevalue.MarshalMap(map[string]string{"id": uploadID})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal upload ID: %w", err)
	}

	input := &dynamodb.GetItemInput{
		TableName: aws.String(s.UploadsTableName),
		Key:       key,
	}

	result, err := s.Client.GetItem(ctx, input)
	if err != nil {
		return nil, fmt.Errorf("failed to get upload from DynamoDB: %w", err)
	}

	if result.Item == nil {
		return nil, storage.ErrUploadNotFound
	}

	var upload models.Upload
	if err := attributevalue.UnmarshalMap(result.Item, &upload); err != nil {
		return nil, fmt.Errorf("failed to unmarshal upload: %w", err)
	}

	return &upload, nil
}

// ListUploadsByUserID retrieves all uploads for a specific user, newest first.
func (s *Store) ListUploadsByUserID(ctx context.Context, userID string) ([]models.Upload, error) {
	input := &dynamodb.QueryInput{
		TableName:              aws.String(s.UploadsTableName),
		IndexName:              aws.String(uploadUserIndex),
		KeyConditionExpression: aws.String("user_id = :userID"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":userID": &types.AttributeValueMemberS{Value: userID},
		},
		ScanIndexForward: aws.Bool(false),
	}

	result, err := s.Client.Query(ctx, input)
	if err != nil {
		return nil, fmt.Errorf("failed to query uploads by user ID: %w", err)
	}

	var uploads []models.Upload
	if err := attributevalue.UnmarshalListOfMaps(result.Items, &uploads); err != nil {
		return nil, fmt.Errorf("failed to unmarshal uploads: %w", err)
	}

	return uploads, nil
}

// GetLastApprovedUpload retrieves the most recent APPROVED upload for a user,
// restricted to one vehicle when vehicleID is non-empty. Returns (nil, nil)
// when no approved upload exists: the first reading establishes a baseline.
func (s *Store) GetLastApprovedUpload(ctx context.Context, userID, vehicleID string) (*models.Upload, error) {
	filter := "validation_status = :approved"
	values := map[string]types.AttributeValue{
		":userID":   &types.AttributeValueMemberS{Value: userID},
		":approved": &types.AttributeValueMemberS{Value: string(models.ValidationApproved)},
	}
	if vehicleID != "" {
		filter += " AND vehicle_id = :vehicleID"
		values[":vehicleID"] = &types.AttributeValueMemberS{Value: vehicleID}
	}

	input := &dynamodb.QueryInput{
		TableName:              aws.String(s.UploadsTableName),
		IndexName:              aws.String(uploadUserIndex),
		KeyConditionExpression: aws.String("user_id = :userID"),
		FilterExpression:       aws.String(filter),
		ExpressionAttributeValues: values,
		ScanIndexForward:       aws.Bool(false), // newest first
	}

	// The filter is applied after the page is read, so a page can come back
	// empty with more data behind it. Follow LastEvaluatedKey until a match
	// or the end of the index.
	for {
		result, err := s.Client.Query(ctx, input)
		if err != nil {
			return nil, fmt.Errorf("failed to query last approved upload: %w", err)
		}

		if len(result.Items) > 0 {
			var upload models.Upload
			if err := attributevalue.UnmarshalMap(result.Items[0], &upload); err != nil {
				return nil, fmt.Errorf("failed to unmarshal approved upload: %w", err)
			}
			return &upload, nil
		}

		if result.LastEvaluatedKey == nil {
			return nil, nil
		}
		input.ExclusiveStartKey = result.LastEvaluatedKey
	}
}

// GetStuckUploads retrieves uploads that have been in PROCESSING for longer
// than maxAge, so the supervisory sweep can re-enqueue them.
func (s *Store) GetStuckUploads(ctx context.Context, maxAge time.Duration) ([]models.Upload, error) {
	cutoffTime := time.Now().Add(-maxAge)
	cutoffTimeStr, err := cutoffTime.MarshalText()
	if err != nil {
		return nil, fmt.Errorf("failed to marshal cutoff time: %w", err)
	}

	input := &dynamodb.QueryInput{
		TableName:              aws.String(s.UploadsTableName),
		IndexName:              aws.String(uploadStatusIndex),
		KeyConditionExpression: aws.String("#status = :status"),
		FilterExpression:       aws.String("created_at < :cutoff"),
		ExpressionAttributeNames: map[string]string{
			"#status": "status",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":status": &types.AttributeValueMemberS{Value: string(models.UploadProcessing)},
			":cutoff": &types.AttributeValueMemberS{Value: string(cutoffTimeStr)},
		},
	}

	result, err := s.Client.Query(ctx, input)
	if err != nil {
		return nil, fmt.Errorf("failed to query for stuck uploads: %w", err)
	}

	var uploads []models.Upload
	if err := attributevalue.UnmarshalListOfMaps(result.Items, &uploads); err != nil {
		return nil, fmt.Errorf("failed to unmarshal stuck uploads: %w", err)
	}

	return uploads, nil
}

// CompleteUpload persists every derived field and moves the upload from
// PROCESSING to COMPLETED. The condition keeps a late writer from clobbering
// a row another invocation already terminalized.
func (s *Store) CompleteUpload(ctx context.Context, upload *models.Upload) error {
	upload.Status = models.UploadCompleted
	upload.UpdatedAt = time.Now()

	uploadAV, err := attributevalue.MarshalMap(upload)
	if err != nil {
		return fmt.Errorf("failed to marshal completed upload: %w", err)
	}

	input := &dynamodb.PutItemInput{
		TableName:           aws.String(s.UploadsTableName),
		Item:                uploadAV,
		ConditionExpression: aws.String("#status = :processing"),
		ExpressionAttributeNames: map[string]string{
			"#status": "status",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":processing": &types.AttributeValueMemberS{Value: string(models.UploadProcessing)},
		},
	}

	if _, err := s.Client.PutItem(ctx, input); err != nil {
		var condCheckFailed *types.ConditionalCheckFailedException
		if errors.As(err, &condCheckFailed) {
			return storage.ErrUploadAlreadyTerminal
		}
		return fmt.Errorf("failed to complete upload: %w", err)
	}

	return nil
}

// FailUpload moves the upload from PROCESSING to FAILED with the given reason.
func (s *Store) FailUpload(ctx context.Context, uploadID, reason string) error {
	now, err := attributevalue.Marshal(time.Now())
	if err != nil {
		return fmt.Errorf("failed to marshal timestamp: %w", err)
	}

	input := &dynamodb.UpdateItemInput{
		TableName: aws.String(s.UploadsTableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: uploadID},
		},
		UpdateExpression:    aws.String("SET #status = :failed, validation_status = :rejected, failure_reason = :reason, updated_at = :now"),
		ConditionExpression: aws.String("#status = :processing"),
		ExpressionAttributeNames: map[string]string{
			"#status": "status",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":failed":     &types.AttributeValueMemberS{Value: string(models.UploadFailed)},
			":rejected":   &types.AttributeValueMemberS{Value: string(models.ValidationRejected)},
			":reason":     &types.AttributeValueMemberS{Value: reason},
			":processing": &types.AttributeValueMemberS{Value: string(models.UploadProcessing)},
			":now":        now,
		},
	}

	if _, err := s.Client.UpdateItem(ctx, input); err != nil {
		var condCheckFailed *types.ConditionalCheckFailedException
		if errors.As(err, &condCheckFailed) {
			return storage.ErrUploadAlreadyTerminal
		}
		return fmt.Errorf("failed to mark upload as failed: %w", err)
	}

	return nil
}
