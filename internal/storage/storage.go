package storage

import (
	"crypto/sha1" //nolint:gosec // non-cryptographic key derivation
	"encoding/hex"
	"fmt"
	"strings"
	"time"

	"github.com/Adda-Baaj/swapi-client/internal/domain"
)

// Ledger remembers which sinks already received a character record version.
type Ledger interface {
	Delivered(sink, key string) (bool, error)
	MarkDelivered(sink, key string) error
	Close() error
}

const defaultTTL = 7 * 24 * time.Hour

// NewLedger creates the configured ledger backend.
func NewLedger(typ, path string, ttl time.Duration) (Ledger, error) {
	if ttl <= 0 {
		ttl = defaultTTL
	}
	switch strings.TrimSpace(strings.ToLower(typ)) {
	case "", "none":
		return noopLedger{}, nil
	case "bbolt":
		if strings.TrimSpace(path) == "" {
			return nil, fmt.Errorf("bbolt storage requires a path")
		}
		return openBolt(path, ttl)
	default:
		return nil, fmt.Errorf("unsupported storage type %q", typ)
	}
}

// RecordKey identifies one version of a character record. The record URL is
// preferred over the roster label, and the edited timestamp distinguishes versions.
func RecordKey(label string, c domain.Character) string {
	id := strings.TrimSpace(c.URL)
	if id == "" {
		id = strings.TrimSpace(label)
	}
	sum := sha1.Sum([]byte(id + "|" + strings.TrimSpace(c.Edited)))
	return hex.EncodeToString(sum[:])
}

type noopLedger struct{}

func (noopLedger) Delivered(string, string) (bool, error) { return false, nil }
func (noopLedger) MarkDelivered(string, string) error     { return nil }
func (noopLedger) Close() error                           { return nil }
