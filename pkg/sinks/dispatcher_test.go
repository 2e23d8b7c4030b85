package sinks

import (
	"context"
	"errors"
	"testing"

	"github.com/Adda-Baaj/swapi-client/internal/domain"
)

type fakeSink struct {
	name   string
	err    error
	events []Event
	closed bool
}

func (f *fakeSink) Name() string { return f.name }

func (f *fakeSink) Deliver(_ context.Context, evt Event) error {
	f.events = append(f.events, evt)
	return f.err
}

func (f *fakeSink) Close() error { f.closed = true; return nil }

func TestDispatcherReportsEachSink(t *testing.T) {
	ok := &fakeSink{name: "ok"}
	down := &fakeSink{name: "down", err: errors.New("unavailable")}
	seen := &fakeSink{name: "seen"}
	d := NewDispatcher([]Sink{ok, down, seen})

	evt := NewEvent("Luke Skywalker", domain.Character{Name: "Luke Skywalker"}, "v1")
	results := d.Deliver(context.Background(), evt, func(sink string) bool { return sink == "seen" })

	if len(results) != 3 {
		t.Fatalf("expected 3 results, got %d", len(results))
	}
	if results[0].Err != nil || results[0].Skipped {
		t.Fatalf("ok sink: %+v", results[0])
	}
	if results[1].Err == nil || !errors.Is(results[1].Err, down.err) {
		t.Fatalf("down sink should carry its error: %+v", results[1])
	}
	if !results[2].Skipped || len(seen.events) != 0 {
		t.Fatalf("seen sink should be skipped: %+v", results[2])
	}
	if len(ok.events) != 1 || ok.events[0].Version != "v1" {
		t.Fatalf("ok sink events %+v", ok.events)
	}
}

func TestDispatcherCloseClosesSinks(t *testing.T) {
	a, b := &fakeSink{name: "a"}, &fakeSink{name: "b"}
	if err := NewDispatcher([]Sink{a, b}).Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}
	if !a.closed || !b.closed {
		t.Fatalf("expected both sinks closed")
	}
}

func TestNilDispatcherIsEmpty(t *testing.T) {
	var d *Dispatcher
	if d.Len() != 0 || d.Deliver(context.Background(), Event{}, nil) != nil || d.Close() != nil {
		t.Fatalf("nil dispatcher should be a no-op")
	}
}

func TestOpenAllBuildsHTTPSinks(t *testing.T) {
	d, err := OpenAll(context.Background(), []SinkConfig{
		{Name: "a", HTTP: &HTTPConfig{URL: "http://127.0.0.1:1/a"}},
		{Name: "b", HTTP: &HTTPConfig{URL: "http://127.0.0.1:1/b", Method: "put"}},
	})
	if err != nil {
		t.Fatalf("OpenAll: %v", err)
	}
	defer d.Close()
	if d.Len() != 2 {
		t.Fatalf("Len = %d", d.Len())
	}
	if m := d.sinks[1].(*httpSink).method; m != "PUT" {
		t.Fatalf("method = %q", m)
	}
}

func TestOpenRejectsEmptyConfig(t *testing.T) {
	if _, err := Open(context.Background(), SinkConfig{Name: "x"}); err == nil {
		t.Fatalf("expected error without destination")
	}
}
