package publishers

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/sns"
)

type fakeSNSClient struct {
	input *sns.PublishInput
	err   error
}

func (f *fakeSNSClient) Publish(_ context.Context, params *sns.PublishInput, _ ...func(*sns.Options)) (*sns.PublishOutput, error) {
	f.input = params
	if f.err != nil {
		return nil, f.err
	}
	return &sns.PublishOutput{MessageId: aws.String("msg-123")}, nil
}

func TestSNSPublisherSuccess(t *testing.T) {
	client := &fakeSNSClient{}
	pub := &snsPublisher{
		id:       "topic",
		typ:      TypeSNS,
		topicARN: "arn:aws:sns:::topic",
		client:   client,
		log:      noopLogger{},
	}

	err := pub.Publish(context.Background(), Event{RecordID: "42", UserID: 7})
	if err != nil {
		t.Fatalf("Publish: %v", err)
	}
	if client.input == nil {
		t.Fatalf("client was not called")
	}
	if got := aws.ToString(client.input.TopicArn); got != "arn:aws:sns:::topic" {
		t.Fatalf("TopicArn = %s", got)
	}
	attr, ok := client.input.MessageAttributes["record_id"]
	if !ok || attr.StringValue == nil || aws.ToString(attr.StringValue) != "42" {
		t.Fatalf("record_id attribute missing or wrong: %#v", attr)
	}
	if attr.DataType == nil || aws.ToString(attr.DataType) != "String" {
		t.Fatalf("DataType should be String, got %#v", attr.DataType)
	}
	if client.input.Message == nil || !strings.Contains(aws.ToString(client.input.Message), `"record_id":"42"`) {
		t.Fatalf("Message missing record_id: %s", aws.ToString(client.input.Message))
	}
}

func TestSNSPublisherError(t *testing.T) {
	client := &fakeSNSClient{err: errors.New("boom")}
	pub := &snsPublisher{
		id:       "topic",
		typ:      TypeSNS,
		topicARN: "arn:aws:sns:::topic",
		client:   client,
		log:      noopLogger{},
	}

	if err := pub.Publish(context.Background(), Event{RecordID: "42"}); err == nil {
		t.Fatalf("expected error from Publish")
	}
}
