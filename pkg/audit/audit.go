// Package audit records an append-only trail of significant pipeline and
// distribution events.
package audit

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/google/uuid"

	"github.com/greenmiles/odometer-rewards/pkg/models"
)

// Event names recorded on the trail.
const (
	EventUploadIngested  = "upload.ingested"
	EventUploadCompleted = "upload.completed"
	EventUploadFailed    = "upload.failed"
	EventRewardCreated   = "reward.created"
	EventRewardSubmitted = "reward.submitted"
	EventRewardConfirmed = "reward.confirmed"
	EventRewardFailed    = "reward.failed"
	EventRewardRetried   = "reward.retried"
	EventRewardCancelled = "reward.cancelled"
)

// auditPartition is the fixed GSI partition that lets the whole trail be
// read back in timestamp order.
const auditPartition = "AUDIT_EVENTS"

// Recorder defines the interface for appending audit events. Recording is
// best-effort on the hot path; callers log failures and move on.
type Recorder interface {
	Record(ctx context.Context, event, userID string, payload any) error
}

// PutItemAPI is the subset of the DynamoDB client used by the recorder.
type PutItemAPI interface {
	PutItem(ctx context.Context, params *dynamodb.PutItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error)
}

// DynamoDBRecorder appends audit events to a DynamoDB table.
type DynamoDBRecorder struct {
	Client    PutItemAPI
	TableName string
}

// NewDynamoDBRecorder creates a new DynamoDBRecorder.
func NewDynamoDBRecorder(client PutItemAPI, tableName string) *DynamoDBRecorder {
	return &DynamoDBRecorder{Client: client, TableName: tableName}
}

// Make sure we conform to the interface
var _ Recorder = (*DynamoDBRecorder)(nil)

// Record appends one event. The payload is serialized to JSON; a payload
// that cannot serialize is recorded without one rather than dropped.
func (r *DynamoDBRecorder) Record(ctx context.Context, event, userID string, payload any) error {
	entry := models.AuditEvent{
		EventID:   uuid.New().String(),
		Event:     event,
		UserID:    userID,
		Timestamp: time.Now(),
		GSI1PK:    auditPartition,
	}
	if payload != nil {
		if data, err := json.Marshal(payload); err == nil {
			entry.Payload = string(data)
		}
	}

	item, err := attributevalue.MarshalMap(entry)
	if err != nil {
		return fmt.Errorf("failed to marshal audit event: %w", err)
	}

	_, err = r.Client.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: &r.TableName,
		Item:      item,
	})
	if err != nil {
		return fmt.Errorf("failed to record audit event %s: %w", event, err)
	}

	return nil
}

// NoOpRecorder discards every event. Used where no audit table is
// configured.
type NoOpRecorder struct{}

// Make sure we conform to the interface
var _ Recorder = (*NoOpRecorder)(nil)

// Record discards the event.
func (NoOpRecorder) Record(ctx context.Context, event, userID string, payload any) error {
	return nil
}
