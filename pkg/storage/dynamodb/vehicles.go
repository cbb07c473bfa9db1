package dynamodb

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/greenmiles/odometer-rewards/pkg/models"
	"github.com/greenmiles/odometer-rewards/pkg/storage"
)

const vehicleUserIndex = "user_id-index"

// GetVehicle retrieves a vehicle from DynamoDB by its ID.
func (s *Store) GetVehicle(ctx context.Context, vehicleID string) (*models.Vehicle, error) {
	key, err := attributevalue.MarshalMap(map[string]string{"id": vehicleID})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal vehicle ID: %w", err)
	}

	input := &dynamodb.GetItemInput{
		TableName: aws.String(s.VehiclesTableName),
		Key:       key,
	}

	result, err := s.Client.GetItem(ctx, input)
	if err != nil {
		return nil, fmt.Errorf("failed to get vehicle from DynamoDB: %w", err)
	}

	if result.Item == nil {
		return nil, storage.ErrVehicleNotFound
	}

	var vehicle models.Vehicle
	if err := attributevalue.UnmarshalMap(result.Item, &vehicle); err != nil {
		return nil, fmt.Errorf("failed to unmarshal vehicle: %w", err)
	}

	return &vehicle, nil
}

// ListVehiclesByUserID retrieves all active vehicles owned by a user.
func (s *Store) ListVehiclesByUserID(ctx context.Context, userID string) ([]models.Vehicle, error) {
	input := &dynamodb.QueryInput{
		TableName:              aws.String(s.VehiclesTableName),
		IndexName:              aws.String(vehicleUserIndex),
		KeyConditionExpression: aws.String("user_id = :userID"),
		FilterExpression:       aws.String("active = :active"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":userID": &types.AttributeValueMemberS{Value: userID},
			":active": &types.AttributeValueMemberBOOL{Value: true},
		},
	}

	result, err := s.Client.Query(ctx, input)
	if err != nil {
		return nil, fmt.Errorf("failed to query vehicles by user ID: %w", err)
	}

	var vehicles []models.Vehicle
	if err := attributevalue.UnmarshalListOfMaps(result.Items, &vehicles); err != nil {
		return nil, fmt.Errorf("failed to unmarshal vehicles: %w", err)
	}

	return vehicles, nil
}

// AddVehicleTotals atomically increments a vehicle's running totals. A
// server-side ADD keeps concurrent approvals for the same vehicle correct
// without a read-modify-write.
func (s *Store) AddVehicleTotals(ctx context.Context, vehicleID string, miles, carbonKg float64) error {
	now, err := attributevalue.Marshal(time.Now())
	if err != nil {
		return fmt.Errorf("failed to marshal timestamp: %w", err)
	}

	input := &dynamodb.UpdateItemInput{
		TableName: aws.String(s.VehiclesTableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: vehicleID},
		},
		UpdateExpression:    aws.String("ADD total_mileage :miles, total_carbon_kg :carbon SET updated_at = :now"),
		ConditionExpression: aws.String("attribute_exists(id)"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":miles":  &types.AttributeValueMemberN{Value: strconv.FormatFloat(miles, 'f', -1, 64)},
			":carbon": &types.AttributeValueMemberN{Value: strconv.FormatFloat(carbonKg, 'f', -1, 64)},
			":now":    now,
		},
	}

	if _, err := s.Client.UpdateItem(ctx, input); err != nil {
		return fmt.Errorf("failed to update vehicle totals: %w", err)
	}

	return nil
}
