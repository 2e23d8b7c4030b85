package sinks

import (
	"context"
	"fmt"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	awscfg "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/sns"
	snstypes "github.com/aws/aws-sdk-go-v2/service/sns/types"
	"github.com/aws/aws-sdk-go-v2/service/sqs"
	sqstypes "github.com/aws/aws-sdk-go-v2/service/sqs/types"
)

// loadAWSConfig resolves the default chain for region. Static keys, when both
// are set, replace the chain's credentials.
func loadAWSConfig(ctx context.Context, c AWSConfig) (aws.Config, error) {
	opts := []func(*awscfg.LoadOptions) error{awscfg.WithRegion(c.Region)}
	if c.AccessKeyID != "" && c.SecretAccessKey != "" {
		opts = append(opts, awscfg.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(c.AccessKeyID, c.SecretAccessKey, c.SessionToken),
		))
	}
	cfg, err := awscfg.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return aws.Config{}, fmt.Errorf("load aws config: %w", err)
	}
	return cfg, nil
}

// isFIFO reports whether target needs a message group and deduplication id.
// The character is the group and the record version is the deduplication id.
func isFIFO(target string) bool { return strings.HasSuffix(target, ".fifo") }

type sqsAPI interface {
	SendMessage(ctx context.Context, params *sqs.SendMessageInput, optFns ...func(*sqs.Options)) (*sqs.SendMessageOutput, error)
}

type sqsSink struct {
	name     string
	queueURL string
	client   sqsAPI
}

func newSQSSink(ctx context.Context, name string, cfg SQSConfig) (*sqsSink, error) {
	awsCfg, err := loadAWSConfig(ctx, cfg.AWSConfig)
	if err != nil {
		return nil, err
	}
	return &sqsSink{name: name, queueURL: cfg.QueueURL, client: sqs.NewFromConfig(awsCfg)}, nil
}

func (s *sqsSink) Name() string { return s.name }

func (s *sqsSink) Deliver(ctx context.Context, evt Event) error {
	body, err := evt.payload()
	if err != nil {
		return fmt.Errorf("marshal event: %w", err)
	}

	attrs := make(map[string]sqstypes.MessageAttributeValue)
	for k, v := range evt.attributes() {
		attrs[k] = sqstypes.MessageAttributeValue{DataType: aws.String("String"), StringValue: aws.String(v)}
	}
	input := &sqs.SendMessageInput{
		QueueUrl:          aws.String(s.queueURL),
		MessageBody:       aws.String(string(body)),
		MessageAttributes: attrs,
	}
	if isFIFO(s.queueURL) {
		input.MessageGroupId = aws.String(evt.Character)
		input.MessageDeduplicationId = aws.String(evt.Version)
	}

	if _, err := s.client.SendMessage(ctx, input); err != nil {
		return fmt.Errorf("sqs send: %w", err)
	}
	return nil
}

type snsAPI interface {
	Publish(ctx context.Context, params *sns.PublishInput, optFns ...func(*sns.Options)) (*sns.PublishOutput, error)
}

type snsSink struct {
	name     string
	topicARN string
	client   snsAPI
}

func newSNSSink(ctx context.Context, name string, cfg SNSConfig) (*snsSink, error) {
	if cfg.Region == "" {
		cfg.Region = regionFromARN(cfg.TopicARN)
	}
	awsCfg, err := loadAWSConfig(ctx, cfg.AWSConfig)
	if err != nil {
		return nil, err
	}
	return &snsSink{name: name, topicARN: cfg.TopicARN, client: sns.NewFromConfig(awsCfg)}, nil
}

func (s *snsSink) Name() string { return s.name }

func (s *snsSink) Deliver(ctx context.Context, evt Event) error {
	body, err := evt.payload()
	if err != nil {
		return fmt.Errorf("marshal event: %w", err)
	}

	attrs := make(map[string]snstypes.MessageAttributeValue)
	for k, v := range evt.attributes() {
		attrs[k] = snstypes.MessageAttributeValue{DataType: aws.String("String"), StringValue: aws.String(v)}
	}
	input := &sns.PublishInput{
		TopicArn:          aws.String(s.topicARN),
		Message:           aws.String(string(body)),
		Subject:           aws.String(evt.Character),
		MessageAttributes: attrs,
	}
	if isFIFO(s.topicARN) {
		input.MessageGroupId = aws.String(evt.Character)
		input.MessageDeduplicationId = aws.String(evt.Version)
	}

	if _, err := s.client.Publish(ctx, input); err != nil {
		return fmt.Errorf("sns publish: %w", err)
	}
	return nil
}
