package sinks

import (
	"context"
	"encoding/json"
	"testing"

	"cloud.google.com/go/pubsub"
	"cloud.google.com/go/pubsub/pstest"
)

func TestPubSubSinkPublishes(t *testing.T) {
	// In-memory Pub/Sub emulator.
	server := pstest.NewServer()
	defer server.Close()
	t.Setenv("PUBSUB_EMULATOR_HOST", server.Addr)

	ctx := context.Background()
	admin, err := pubsub.NewClient(ctx, "test-project")
	if err != nil {
		t.Fatalf("create client: %v", err)
	}
	defer admin.Close()
	if _, err := admin.CreateTopic(ctx, "characters"); err != nil {
		t.Fatalf("create topic: %v", err)
	}

	sink, err := Open(ctx, SinkConfig{
		Name:   "pubsub",
		PubSub: &PubSubConfig{ProjectID: "test-project", Topic: "characters"},
	})
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer sink.(*pubsubSink).Close()

	if err := sink.Deliver(ctx, lukeEvent()); err != nil {
		t.Fatalf("Deliver: %v", err)
	}

	msgs := server.Messages()
	if len(msgs) != 1 {
		t.Fatalf("expected 1 message, got %d", len(msgs))
	}
	if msgs[0].Attributes["character"] != "Luke Skywalker" || msgs[0].Attributes["version"] != "rev-1" {
		t.Fatalf("unexpected attributes %v", msgs[0].Attributes)
	}
	var evt Event
	if err := json.Unmarshal(msgs[0].Data, &evt); err != nil {
		t.Fatalf("decode message: %v", err)
	}
	if evt.Record.Name != "Luke Skywalker" {
		t.Fatalf("unexpected record %+v", evt.Record)
	}
}
