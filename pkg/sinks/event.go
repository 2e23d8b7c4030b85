package sinks

import (
	"encoding/json"
	"time"

	"github.com/Adda-Baaj/swapi-client/internal/domain"
)

// Event carries one fetched character record to the sinks. Version identifies
// the record revision and doubles as the idempotency key downstream.
type Event struct {
	Character string           `json:"character"`
	Version   string           `json:"version"`
	Record    domain.Character `json:"record"`
	FetchedAt time.Time        `json:"fetched_at"`
}

// NewEvent builds the event for a roster label and its fetched record.
func NewEvent(label string, record domain.Character, version string) Event {
	return Event{
		Character: label,
		Version:   version,
		Record:    record,
		FetchedAt: time.Now().UTC(),
	}
}

func (e Event) payload() ([]byte, error) {
	return json.Marshal(e)
}

// attributes are copied onto queue and topic messages so consumers can route
// without decoding the body.
func (e Event) attributes() map[string]string {
	attrs := map[string]string{"character": e.Character}
	if e.Version != "" {
		attrs["version"] = e.Version
	}
	if e.Record.URL != "" {
		attrs["record_url"] = e.Record.URL
	}
	return attrs
}
