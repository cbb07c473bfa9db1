package scheduler

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/sqs"
)

// SQSAPI is the subset of the SQS client used by the scheduler.
type SQSAPI interface {
	SendMessage(ctx context.Context, params *sqs.SendMessageInput, optFns ...func(*sqs.Options)) (*sqs.SendMessageOutput, error)
}

// ProcessingMessage is the queue payload consumed by the pipeline worker.
type ProcessingMessage struct {
	UploadID string `json:"upload_id"`
}

// SQSScheduler implements Scheduler using an SQS queue.
type SQSScheduler struct {
	Client   SQSAPI
	QueueURL string
}

// NewSQSScheduler creates a new SQSScheduler.
func NewSQSScheduler(client SQSAPI, queueURL string) *SQSScheduler {
	return &SQSScheduler{Client: client, QueueURL: queueURL}
}

// Make sure we conform to the interface
var _ Scheduler = (*SQSScheduler)(nil)

// ScheduleProcessing sends the upload ID to the processing queue.
func (s *SQSScheduler) ScheduleProcessing(ctx context.Context, uploadID string) error {
	body, err := json.Marshal(ProcessingMessage{UploadID: uploadID})
	if err != nil {
		return fmt.Errorf("failed to marshal processing message: %w", err)
	}

	_, err = s.Client.SendMessage(ctx, &sqs.SendMessageInput{
		QueueUrl:    aws.String(s.QueueURL),
		MessageBody: aws.String(string(body)),
	})
	if err != nil {
		return fmt.Errorf("failed to enqueue upload %s: %w", uploadID, err)
	}

	return nil
}
