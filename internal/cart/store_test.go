package cart

import (
	"errors"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/swagcl/storefront/internal/catalog"
)

// faultyStorage simulates a broken persistence slot.
type faultyStorage struct {
	loadErr error
	saveErr error
	saves   int
}

func (s *faultyStorage) Load() ([]Item, error) { return nil, s.loadErr }

func (s *faultyStorage) Save([]Item) error {
	s.saves++
	return s.saveErr
}

func testLogger() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}

func tieredProduct() catalog.Product {
	return catalog.Product{
		ID:        2,
		Name:      "Botella Térmica 500ml",
		SKU:       "BOT-103",
		BasePrice: 2000,
		PriceBreaks: catalog.PriceBreaks{
			{MinQty: 5, Price: 1800},
			{MinQty: 10, Price: 1500},
		},
	}
}

func Test_Store_Add_MergesSameProduct(t *testing.T) {
	// given
	store := NewStore(NewMemoryStorage(), testLogger())
	p := tieredProduct()

	// when: same product added twice
	store.Add(p, 2)
	item := store.Add(p, 3)

	// then: exactly one item with the summed quantity, unit price
	// recomputed at the merged total
	items := store.Items()
	require.Len(t, items, 1)
	assert.Equal(t, 5, item.Quantity)
	assert.Equal(t, int64(1800), item.UnitPrice)
	assert.Equal(t, item.UnitPrice*5, item.TotalPrice)
	assert.Equal(t, 5, store.Count())
}

func Test_Store_Add_InvariantAfterEveryMutation(t *testing.T) {
	store := NewStore(NewMemoryStorage(), testLogger())
	p := tieredProduct()

	for i := 0; i < 4; i++ {
		store.Add(p, 3)
		items := store.Items()
		require.Len(t, items, 1)
		assert.Equal(t, items[0].UnitPrice*int64(items[0].Quantity), items[0].TotalPrice)
	}
}

func Test_Store_Add_DefaultsQuantityToOne(t *testing.T) {
	store := NewStore(NewMemoryStorage(), testLogger())

	item := store.Add(catalog.Product{ID: 9, BasePrice: 700}, 0)

	assert.Equal(t, 1, item.Quantity)
	assert.Equal(t, int64(700), item.TotalPrice)
}

func Test_Store_Add_PreservesInsertionOrder(t *testing.T) {
	store := NewStore(NewMemoryStorage(), testLogger())
	first := catalog.Product{ID: 1, Name: "Agenda", BasePrice: 1000}
	second := tieredProduct()

	store.Add(first, 1)
	store.Add(second, 1)
	store.Add(first, 4) // update must not reorder

	items := store.Items()
	require.Len(t, items, 2)
	assert.Equal(t, int64(1), items[0].ID)
	assert.Equal(t, int64(2), items[1].ID)
}

func Test_Store_Remove(t *testing.T) {
	store := NewStore(NewMemoryStorage(), testLogger())
	store.Add(tieredProduct(), 2)

	// removing a non-existent identifier leaves the list unchanged
	store.Remove(999)
	assert.Len(t, store.Items(), 1)

	store.Remove(2)
	assert.Empty(t, store.Items())
	assert.Equal(t, 0, store.Count())
}

func Test_Store_Clear(t *testing.T) {
	store := NewStore(NewMemoryStorage(), testLogger())
	store.Add(tieredProduct(), 2)
	store.Add(catalog.Product{ID: 7, BasePrice: 300}, 1)

	store.Clear()

	assert.Empty(t, store.Items())
	assert.Equal(t, 0, store.Count())
}

func Test_Store_RehydratesFromStorage(t *testing.T) {
	storage := NewMemoryStorage()
	first := NewStore(storage, testLogger())
	first.Add(tieredProduct(), 3)

	second := NewStore(storage, testLogger())

	items := second.Items()
	require.Len(t, items, 1)
	assert.Equal(t, 3, items[0].Quantity)
	assert.Equal(t, 3, second.Count())
}

func Test_Store_UnreadableSlotYieldsEmptyCart(t *testing.T) {
	storage := &faultyStorage{loadErr: errors.New("corrupt value")}

	store := NewStore(storage, testLogger())

	assert.Empty(t, store.Items())
}

func Test_Store_SaveFailureDoesNotFailMutation(t *testing.T) {
	storage := &faultyStorage{saveErr: errors.New("disk full")}
	store := NewStore(storage, testLogger())

	item := store.Add(tieredProduct(), 2)

	assert.Equal(t, 2, item.Quantity)
	assert.Len(t, store.Items(), 1)
	assert.Equal(t, 1, storage.saves)
}
