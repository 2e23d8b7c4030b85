package app

import (
	"context"

	"github.com/Adda-Baaj/swapi-client/internal/domain"
	"github.com/Adda-Baaj/swapi-client/pkg/sinks"
	"github.com/Adda-Baaj/swapi-client/pkg/swapi"
)

// CharacterFetcher retrieves one roster entry.
type CharacterFetcher interface {
	Fetch(ctx context.Context, entry swapi.Entry) (domain.Character, error)
}

// Dispatcher forwards fetched records to every configured sink.
type Dispatcher interface {
	Deliver(ctx context.Context, evt sinks.Event, skip func(sink string) bool) []sinks.Delivery
	Len() int
	Close() error
}

// Ledger remembers which sinks already received a record version.
type Ledger interface {
	Delivered(sink, key string) (bool, error)
	MarkDelivered(sink, key string) error
	Close() error
}
