package dynamodb

import (
	"context"
	"testing"
	"time"

	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/greenmiles/odometer-rewards/pkg/models"
	"github.com/greenmiles/odometer-rewards/pkg/storage"
	"github.com/greenmiles/odometer-rewards/pkg/storage/dynamodb/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestGetLastApprovedUpload(t *testing.T) {
	t.Run("Found For Vehicle", func(t *testing.T) {
		mockClient := new(mocks.DynamoDBAPI)
		store := &Store{Client: mockClient, UploadsTableName: "uploads"}

		mileage := 44000.0
		prior := models.Upload{
			Id:               "upload0",
			UserId:           "user1",
			VehicleId:        "veh1",
			ValidationStatus: models.ValidationApproved,
			FinalMileage:     &mileage,
		}
		priorAV, _ := attributevalue.MarshalMap(prior)

		mockClient.On("Query", mock.Anything, mock.MatchedBy(func(input *dynamodb.QueryInput) bool {
			// Newest first, restricted to approved uploads of the vehicle.
			return input.ScanIndexForward != nil && !*input.ScanIndexForward &&
				*input.FilterExpression == "validation_status = :approved AND vehicle_id = :vehicleID"
		})).Once().Return(&dynamodb.QueryOutput{Items: []map[string]types.AttributeValue{priorAV}}, nil)

		upload, err := store.GetLastApprovedUpload(context.Background(), "user1", "veh1")

		assert.NoError(t, err)
		assert.NotNil(t, upload)
		assert.Equal(t, 44000.0, *upload.FinalMileage)
		mockClient.AssertExpectations(t)
	})

	t.Run("Match Beyond First Page", func(t *testing.T) {
		mockClient := new(mocks.DynamoDBAPI)
		store := &Store{Client: mockClient, UploadsTableName: "uploads"}

		mileage := 44000.0
		prior := models.Upload{
			Id:               "upload0",
			UserId:           "user1",
			ValidationStatus: models.ValidationApproved,
			FinalMileage:     &mileage,
		}
		priorAV, _ := attributevalue.MarshalMap(prior)

		// The first page is fully filtered out but points at a second one.
		pageKey := map[string]types.AttributeValue{"id": &types.AttributeValueMemberS{Value: "upload5"}}
		mockClient.On("Query", mock.Anything, mock.MatchedBy(func(input *dynamodb.QueryInput) bool {
			return input.ExclusiveStartKey == nil
		})).Once().Return(&dynamodb.QueryOutput{Items: nil, LastEvaluatedKey: pageKey}, nil)
		mockClient.On("Query", mock.Anything, mock.MatchedBy(func(input *dynamodb.QueryInput) bool {
			return input.ExclusiveStartKey != nil
		})).Once().Return(&dynamodb.QueryOutput{Items: []map[string]types.AttributeValue{priorAV}}, nil)

		upload, err := store.GetLastApprovedUpload(context.Background(), "user1", "")

		assert.NoError(t, err)
		assert.NotNil(t, upload)
		assert.Equal(t, 44000.0, *upload.FinalMileage)
		mockClient.AssertExpectations(t)
	})

	t.Run("No Prior Approved Upload", func(t *testing.T) {
		mockClient := new(mocks.DynamoDBAPI)
		store := &Store{Client: mockClient, UploadsTableName: "uploads"}

		mockClient.On("Query", mock.Anything, mock.Anything).Return(&dynamodb.QueryOutput{Items: nil}, nil)

		upload, err := store.GetLastApprovedUpload(context.Background(), "user1", "")

		assert.NoError(t, err)
		assert.Nil(t, upload)
		mockClient.AssertExpectations(t)
	})
}

func TestFailUpload(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		mockClient := new(mocks.DynamoDBAPI)
		store := &Store{Client: mockClient, UploadsTableName: "uploads"}

		mockClient.On("UpdateItem", mock.Anything, mock.MatchedBy(func(input *dynamodb.UpdateItemInput) bool {
			return *input.ConditionExpression == "#status = :processing"
		})).Once().Return(&dynamodb.UpdateItemOutput{}, nil)

		err := store.FailUpload(context.Background(), "upload1", "no odometer reading found")

		assert.NoError(t, err)
		mockClient.AssertExpectations(t)
	})

	t.Run("Already Terminal", func(t *testing.T) {
		mockClient := new(mocks.DynamoDBAPI)
		store := &Store{Client: mockClient, UploadsTableName: "uploads"}

		mockClient.On("UpdateItem", mock.Anything, mock.Anything).Return(nil, &types.ConditionalCheckFailedException{})

		err := store.FailUpload(context.Background(), "upload1", "boom")

		assert.ErrorIs(t, err, storage.ErrUploadAlreadyTerminal)
		mockClient.AssertExpectations(t)
	})
}

func TestGetStuckUploads(t *testing.T) {
	mockClient := new(mocks.DynamoDBAPI)
	store := &Store{Client: mockClient, UploadsTableName: "uploads"}

	stuck := models.Upload{Id: "upload1", Status: models.UploadProcessing}
	stuckAV, _ := attributevalue.MarshalMap(stuck)

	mockClient.On("Query", mock.Anything, mock.MatchedBy(func(input *dynamodb.QueryInput) bool {
		return *input.IndexName == uploadStatusIndex
	})).Once().Return(&dynamodb.QueryOutput{Items: []map[string]types.AttributeValue{stuckAV}}, nil)

	uploads, err := store.GetStuckUploads(context.Background(), 20*time.Minute)

	assert.NoError(t, err)
	assert.Len(t, uploads, 1)
	mockClient.AssertExpectations(t)
}
