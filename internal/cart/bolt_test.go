package cart

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	bolt "go.etcd.io/bbolt"

	"github.com/swagcl/storefront/internal/catalog"
)

func openTestDB(t *testing.T) *bolt.DB {
	t.Helper()
	db, err := bolt.Open(filepath.Join(t.TempDir(), "cart.db"), 0o600, &bolt.Options{Timeout: time.Second})
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return db
}

func Test_BoltStorage_LoadWithoutValue(t *testing.T) {
	storage, err := NewBoltStorage(openTestDB(t))
	require.NoError(t, err)

	items, err := storage.Load()

	require.NoError(t, err)
	assert.Nil(t, items)
}

func Test_BoltStorage_RoundTrip(t *testing.T) {
	storage, err := NewBoltStorage(openTestDB(t))
	require.NoError(t, err)

	saved := []Item{
		{
			Product:    catalog.Product{ID: 4, Name: "Botella Térmica 500ml", SKU: "BOT-103", BasePrice: 6900},
			Quantity:   12,
			UnitPrice:  6400,
			TotalPrice: 76800,
		},
	}
	require.NoError(t, storage.Save(saved))

	loaded, err := storage.Load()

	require.NoError(t, err)
	assert.Equal(t, saved, loaded)
}

func Test_BoltStorage_MalformedValue(t *testing.T) {
	db := openTestDB(t)
	storage, err := NewBoltStorage(db)
	require.NoError(t, err)

	// scribble over the slot to simulate a corrupt persisted cart
	err = db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket([]byte(bucketName)).Put([]byte(storageKey), []byte("{not json"))
	})
	require.NoError(t, err)

	_, err = storage.Load()
	assert.Error(t, err)

	// the store degrades to an empty cart instead of failing
	store := NewStore(storage, testLogger())
	assert.Empty(t, store.Items())
}
