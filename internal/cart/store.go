package cart

import (
	"log/slog"
	"sync"

	"github.com/swagcl/storefront/internal/catalog"
)

// Store owns the session's cart items. Items keep their insertion order;
// updating an existing item never reorders the list. Every mutation is
// persisted through the Storage port synchronously and best-effort: a
// persistence failure costs durability, never the mutation itself.
type Store struct {
	mu      sync.Mutex
	items   []Item
	storage Storage
	logger  *slog.Logger
}

// NewStore creates a cart Store and rehydrates it from the storage slot.
// A missing or unreadable slot yields an empty cart, never an error.
func NewStore(storage Storage, logger *slog.Logger) *Store {
	s := &Store{
		storage: storage,
		logger:  logger.With("component", "cart"),
	}
	items, err := storage.Load()
	if err != nil {
		s.logger.Warn("Discarding unreadable persisted cart", "error", err)
		items = nil
	}
	s.items = items
	return s
}

// Add puts quantity units of the product into the cart. If an item for the
// product already exists, quantities are summed and the unit price is
// recomputed at the merged total quantity. Returns the resulting item.
func (s *Store) Add(p catalog.Product, quantity int) Item {
	if quantity < 1 {
		quantity = 1
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.items {
		if s.items[i].ID == p.ID {
			newQty := s.items[i].Quantity + quantity
			unitPrice := catalog.BestUnitPrice(p, newQty)
			s.items[i].Quantity = newQty
			s.items[i].UnitPrice = unitPrice
			s.items[i].TotalPrice = unitPrice * int64(newQty)
			s.persistLocked()
			return s.items[i]
		}
	}

	unitPrice := catalog.BestUnitPrice(p, quantity)
	item := Item{
		Product:    p,
		Quantity:   quantity,
		UnitPrice:  unitPrice,
		TotalPrice: unitPrice * int64(quantity),
	}
	s.items = append(s.items, item)
	s.persistLocked()
	return item
}

// Remove deletes the item for the given product ID. Removing an absent
// product is a no-op, not an error.
func (s *Store) Remove(productID int64) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.items {
		if s.items[i].ID == productID {
			s.items = append(s.items[:i], s.items[i+1:]...)
			s.persistLocked()
			return
		}
	}
}

// Clear empties the cart.
func (s *Store) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.items = nil
	s.persistLocked()
}

// Items returns a copy of the cart in display order.
func (s *Store) Items() []Item {
	s.mu.Lock()
	defer s.mu.Unlock()
	items := make([]Item, len(s.items))
	copy(items, s.items)
	return items
}

// Count is the sum of all item quantities.
func (s *Store) Count() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	count := 0
	for _, it := range s.items {
		count += it.Quantity
	}
	return count
}

func (s *Store) persistLocked() {
	items := make([]Item, len(s.items))
	copy(items, s.items)
	if err := s.storage.Save(items); err != nil {
		s.logger.Warn("Cart persistence failed, continuing without durability", "error", err)
	}
}
