package sinks

import (
	"context"
	"fmt"

	"cloud.google.com/go/pubsub"
	"google.golang.org/api/option"
)

type pubsubSink struct {
	name   string
	client *pubsub.Client
	topic  *pubsub.Topic
}

func newPubSubSink(ctx context.Context, name string, cfg PubSubConfig) (*pubsubSink, error) {
	var opts []option.ClientOption
	if cfg.CredentialsFile != "" {
		opts = append(opts, option.WithCredentialsFile(cfg.CredentialsFile))
	}
	client, err := pubsub.NewClient(ctx, cfg.ProjectID, opts...)
	if err != nil {
		return nil, fmt.Errorf("create pubsub client: %w", err)
	}
	return &pubsubSink{name: name, client: client, topic: client.Topic(cfg.Topic)}, nil
}

func (p *pubsubSink) Name() string { return p.name }

// Deliver blocks until the server acknowledges the message.
func (p *pubsubSink) Deliver(ctx context.Context, evt Event) error {
	body, err := evt.payload()
	if err != nil {
		return fmt.Errorf("marshal event: %w", err)
	}
	if _, err := p.topic.Publish(ctx, &pubsub.Message{Data: body, Attributes: evt.attributes()}).Get(ctx); err != nil {
		return fmt.Errorf("pubsub publish: %w", err)
	}
	return nil
}

func (p *pubsubSink) Close() error {
	p.topic.Stop()
	return p.client.Close()
}
