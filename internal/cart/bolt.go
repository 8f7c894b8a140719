package cart

import (
	"encoding/json"
	"fmt"

	bolt "go.etcd.io/bbolt"
)

const (
	bucketName = "session"
	// storageKey matches the slot used by earlier releases, so carts
	// persisted before an upgrade keep rehydrating.
	storageKey = "swag_cart_v1"
)

// boltStorage implements Storage on a local bbolt database: one bucket,
// one fixed key, JSON-encoded item list.
type boltStorage struct {
	db *bolt.DB
}

// NewBoltStorage creates a Storage backed by the given bolt database.
func NewBoltStorage(db *bolt.DB) (Storage, error) {
	err := db.Update(func(tx *bolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists([]byte(bucketName))
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create cart bucket: %w", err)
	}
	return &boltStorage{db: db}, nil
}

func (s *boltStorage) Load() ([]Item, error) {
	var raw []byte
	err := s.db.View(func(tx *bolt.Tx) error {
		if value := tx.Bucket([]byte(bucketName)).Get([]byte(storageKey)); value != nil {
			raw = append(raw, value...)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to read cart slot: %w", err)
	}
	if raw == nil {
		return nil, nil
	}
	var items []Item
	if err := json.Unmarshal(raw, &items); err != nil {
		return nil, fmt.Errorf("failed to decode persisted cart: %w", err)
	}
	return items, nil
}

func (s *boltStorage) Save(items []Item) error {
	raw, err := json.Marshal(items)
	if err != nil {
		return fmt.Errorf("failed to encode cart: %w", err)
	}
	err = s.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket([]byte(bucketName)).Put([]byte(storageKey), raw)
	})
	if err != nil {
		return fmt.Errorf("failed to write cart slot: %w", err)
	}
	return nil
}
