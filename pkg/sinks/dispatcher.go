package sinks

import (
	"context"
	"errors"
	"fmt"
	"io"
)

// Delivery is the outcome of one event on one sink.
type Delivery struct {
	Sink    string
	Skipped bool
	Err     error
}

// Dispatcher hands each event to every sink in order.
type Dispatcher struct {
	sinks []Sink
}

// NewDispatcher wraps the provided sinks.
func NewDispatcher(sinks []Sink) *Dispatcher {
	return &Dispatcher{sinks: sinks}
}

// OpenAll opens every configured sink. Sinks opened before a failure are closed.
func OpenAll(ctx context.Context, cfgs []SinkConfig) (*Dispatcher, error) {
	d := &Dispatcher{}
	for _, cfg := range cfgs {
		s, err := Open(ctx, cfg)
		if err != nil {
			_ = d.Close()
			return nil, err
		}
		d.sinks = append(d.sinks, s)
	}
	return d, nil
}

// Len reports the number of sinks.
func (d *Dispatcher) Len() int {
	if d == nil {
		return 0
	}
	return len(d.sinks)
}

// Deliver sends evt to each sink for which skip reports false. A nil skip
// delivers everywhere. One failing sink never stops the others.
func (d *Dispatcher) Deliver(ctx context.Context, evt Event, skip func(sink string) bool) []Delivery {
	if d == nil {
		return nil
	}
	out := make([]Delivery, 0, len(d.sinks))
	for _, s := range d.sinks {
		res := Delivery{Sink: s.Name()}
		if skip != nil && skip(s.Name()) {
			res.Skipped = true
		} else if err := s.Deliver(ctx, evt); err != nil {
			res.Err = fmt.Errorf("sink %s: %w", s.Name(), err)
		}
		out = append(out, res)
	}
	return out
}

// Close releases sinks that hold connections.
func (d *Dispatcher) Close() error {
	if d == nil {
		return nil
	}
	var errs []error
	for _, s := range d.sinks {
		if c, ok := s.(io.Closer); ok {
			if err := c.Close(); err != nil {
				errs = append(errs, fmt.Errorf("close sink %s: %w", s.Name(), err))
			}
		}
	}
	return errors.Join(errs...)
}
