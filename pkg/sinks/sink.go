package sinks

import (
	"context"
	"fmt"
)

// Sink delivers character events to one downstream destination.
type Sink interface {
	Name() string
	Deliver(ctx context.Context, evt Event) error
}

// Open builds the sink described by cfg.
func Open(ctx context.Context, cfg SinkConfig) (Sink, error) {
	switch cfg.Kind() {
	case KindHTTP:
		return newHTTPSink(cfg.Name, *cfg.HTTP), nil
	case KindSQS:
		return newSQSSink(ctx, cfg.Name, *cfg.SQS)
	case KindSNS:
		return newSNSSink(ctx, cfg.Name, *cfg.SNS)
	case KindPubSub:
		return newPubSubSink(ctx, cfg.Name, *cfg.PubSub)
	default:
		return nil, fmt.Errorf("sink %q: no destination configured", cfg.Name)
	}
}
