package publishers

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/sqs"
)

type fakeSQSClient struct {
	input *sqs.SendMessageInput
	err   error
}

func (f *fakeSQSClient) SendMessage(_ context.Context, params *sqs.SendMessageInput, _ ...func(*sqs.Options)) (*sqs.SendMessageOutput, error) {
	f.input = params
	if f.err != nil {
		return nil, f.err
	}
	return &sqs.SendMessageOutput{MessageId: aws.String("msg-123")}, nil
}

func TestSQSPublisherSuccess(t *testing.T) {
	client := &fakeSQSClient{}
	pub := &sqsPublisher{
		id:       "queue",
		typ:      TypeSQS,
		queueURL: "https://sqs.example/queue",
		client:   client,
		log:      noopLogger{},
	}

	err := pub.Publish(context.Background(), Event{RecordID: "42", UserID: 7, Seconds: 3600})
	if err != nil {
		t.Fatalf("Publish: %v", err)
	}
	if client.input == nil {
		t.Fatalf("client was not called")
	}
	if got := aws.ToString(client.input.QueueUrl); got != "https://sqs.example/queue" {
		t.Fatalf("QueueUrl = %s", got)
	}
	attr, ok := client.input.MessageAttributes["record_id"]
	if !ok || attr.StringValue == nil || aws.ToString(attr.StringValue) != "42" {
		t.Fatalf("record_id attribute missing or wrong: %#v", attr)
	}
	if client.input.MessageBody == nil || !strings.Contains(aws.ToString(client.input.MessageBody), `"record_id":"42"`) {
		t.Fatalf("MessageBody missing record_id: %s", aws.ToString(client.input.MessageBody))
	}
}

func TestSQSPublisherError(t *testing.T) {
	client := &fakeSQSClient{err: errors.New("boom")}
	pub := &sqsPublisher{
		id:       "queue",
		typ:      TypeSQS,
		queueURL: "https://sqs.example/queue",
		client:   client,
		log:      noopLogger{},
	}

	if err := pub.Publish(context.Background(), Event{RecordID: "42"}); err == nil {
		t.Fatalf("expected error from SendMessage")
	}
}
