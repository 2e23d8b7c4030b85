package storage

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	bolt "go.etcd.io/bbolt"
)

// deliveries holds one nested bucket per sink; each key maps to its RFC 3339 expiry.
var deliveriesBucket = []byte("deliveries")

type boltLedger struct {
	db  *bolt.DB
	ttl time.Duration
	now func() time.Time
}

func openBolt(path string, ttl time.Duration) (*boltLedger, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("create storage directory: %w", err)
		}
	}
	db, err := bolt.Open(path, 0o600, &bolt.Options{Timeout: time.Second})
	if err != nil {
		return nil, fmt.Errorf("open bbolt db: %w", err)
	}

	l := &boltLedger{db: db, ttl: ttl, now: time.Now}
	if err := l.sweep(l.now()); err != nil {
		db.Close()
		return nil, fmt.Errorf("sweep ledger: %w", err)
	}
	return l, nil
}

func (l *boltLedger) Close() error { return l.db.Close() }

// Delivered reports whether sink received key and the entry has not expired.
func (l *boltLedger) Delivered(sink, key string) (bool, error) {
	now := l.now()
	var delivered bool
	err := l.db.View(func(tx *bolt.Tx) error {
		root := tx.Bucket(deliveriesBucket)
		if root == nil {
			return nil
		}
		b := root.Bucket([]byte(sink))
		if b == nil {
			return nil
		}
		delivered = live(b.Get([]byte(key)), now)
		return nil
	})
	return delivered, err
}

// MarkDelivered records key for sink until now plus the ledger TTL.
func (l *boltLedger) MarkDelivered(sink, key string) error {
	expiry := l.now().Add(l.ttl).UTC().Format(time.RFC3339)
	return l.db.Update(func(tx *bolt.Tx) error {
		root, err := tx.CreateBucketIfNotExists(deliveriesBucket)
		if err != nil {
			return err
		}
		b, err := root.CreateBucketIfNotExists([]byte(sink))
		if err != nil {
			return err
		}
		return b.Put([]byte(key), []byte(expiry))
	})
}

// sweep drops expired entries and sinks left without any.
func (l *boltLedger) sweep(now time.Time) error {
	return l.db.Update(func(tx *bolt.Tx) error {
		root := tx.Bucket(deliveriesBucket)
		if root == nil {
			return nil
		}
		var emptied [][]byte
		err := root.ForEachBucket(func(name []byte) error {
			b := root.Bucket(name)
			var expired [][]byte
			kept := 0
			if err := b.ForEach(func(k, v []byte) error {
				if live(v, now) {
					kept++
				} else {
					expired = append(expired, append([]byte(nil), k...))
				}
				return nil
			}); err != nil {
				return err
			}
			for _, k := range expired {
				if err := b.Delete(k); err != nil {
					return err
				}
			}
			if kept == 0 {
				emptied = append(emptied, append([]byte(nil), name...))
			}
			return nil
		})
		if err != nil {
			return err
		}
		for _, name := range emptied {
			if err := root.DeleteBucket(name); err != nil {
				return err
			}
		}
		return nil
	})
}

func live(value []byte, now time.Time) bool {
	if value == nil {
		return false
	}
	expiry, err := time.Parse(time.RFC3339, string(value))
	return err == nil && expiry.After(now)
}
