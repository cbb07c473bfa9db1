package dynamodb

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/greenmiles/odometer-rewards/pkg/storage"
)

// DynamoDBAPI is the subset of the DynamoDB client used by the store. It
// exists so tests can substitute a mock.
type DynamoDBAPI interface {
	GetItem(ctx context.Context, params *dynamodb.GetItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.GetItemOutput, error)
	PutItem(ctx context.Context, params *dynamodb.PutItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error)
	UpdateItem(ctx context.Context, params *dynamodb.UpdateItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.UpdateItemOutput, error)
	Query(ctx context.Context, params *dynamodb.QueryInput, optFns ...func(*dynamodb.Options)) (*dynamodb.QueryOutput, error)
	TransactWriteItems(ctx context.Context, params *dynamodb.TransactWriteItemsInput, optFns ...func(*dynamodb.Options)) (*dynamodb.TransactWriteItemsOutput, error)
}

// Store implements the Storage interface using AWS DynamoDB.
type Store struct {
	Client            DynamoDBAPI
	UploadsTableName  string
	VehiclesTableName string
	RewardsTableName  string
	AccountsTableName string
}

// New creates a new Store.
func New(client DynamoDBAPI, uploadsTable, vehiclesTable, rewardsTable, accountsTable string) *Store {
	return &Store{
		Client:            client,
		UploadsTableName:  uploadsTable,
		VehiclesTableName: vehiclesTable,
		RewardsTableName:  rewardsTable,
		AccountsTableName: accountsTable,
	}
}

// Make sure we conform to the interface
var _ storage.Storage = (*Store)(nil)
