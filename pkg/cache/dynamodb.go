package cache

import (
	"context"
	"fmt"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
)

// DynamoDBAPI is the subset of the DynamoDB client the cache uses.
type DynamoDBAPI interface {
	GetItem(ctx context.Context, params *dynamodb.GetItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.GetItemOutput, error)
	PutItem(ctx context.Context, params *dynamodb.PutItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error)
}

// entry is one cached external-service result. Expiry is enforced on read as
// well as by the table's TTL attribute, since DynamoDB TTL deletion lags.
type entry struct {
	CacheKey  string `dynamodbav:"cache_key"`
	Value     string `dynamodbav:"value"`
	ExpiresAt int64  `dynamodbav:"ttl"`
}

// DynamoDBCache implements Cache on a DynamoDB table with a TTL attribute.
type DynamoDBCache struct {
	Client    DynamoDBAPI
	TableName string
}

// NewDynamoDBCache creates a new DynamoDBCache.
func NewDynamoDBCache(client DynamoDBAPI, tableName string) *DynamoDBCache {
	return &DynamoDBCache{Client: client, TableName: tableName}
}

// Make sure we conform to the interface
var _ Cache = (*DynamoDBCache)(nil)

// Get retrieves a cached value, treating expired entries as misses.
func (c *DynamoDBCache) Get(ctx context.Context, key string) (string, bool, error) {
	av, err := attributevalue.MarshalMap(map[string]string{"cache_key": key})
	if err != nil {
		return "", false, fmt.Errorf("failed to marshal cache key: %w", err)
	}

	result, err := c.Client.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(c.TableName),
		Key:       av,
	})
	if err != nil {
		return "", false, fmt.Errorf("failed to get cache entry: %w", err)
	}

	if result.Item == nil {
		return "", false, nil
	}

	var e entry
	if err := attributevalue.UnmarshalMap(result.Item, &e); err != nil {
		return "", false, fmt.Errorf("failed to unmarshal cache entry: %w", err)
	}

	if e.ExpiresAt <= time.Now().Unix() {
		return "", false, nil
	}

	return e.Value, true, nil
}

// Set stores a value with a TTL. Last-writer-wins.
func (c *DynamoDBCache) Set(ctx context.Context, key, value string, ttl time.Duration) error {
	e := entry{
		CacheKey:  key,
		Value:     value,
		ExpiresAt: time.Now().Add(ttl).Unix(),
	}

	av, err := attributevalue.MarshalMap(e)
	if err != nil {
		return fmt.Errorf("failed to marshal cache entry: %w", err)
	}

	if _, err := c.Client.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(c.TableName),
		Item:      av,
	}); err != nil {
		return fmt.Errorf("failed to put cache entry: %w", err)
	}

	return nil
}
