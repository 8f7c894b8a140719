package cart

import "sync"

// Storage is the persistence port for the cart's item list. It abstracts
// the underlying key-value slot, allowing for different implementations
// (e.g. in-memory, bolt).
type Storage interface {
	// Load returns the previously persisted item list, or nil if none exists.
	Load() ([]Item, error)

	// Save persists the item list, replacing any previous value.
	Save(items []Item) error
}

// memoryStorage implements Storage in process memory.
type memoryStorage struct {
	mu    sync.Mutex
	items []Item
	set   bool
}

// NewMemoryStorage creates a volatile Storage, useful in tests and when no
// durable slot is configured.
func NewMemoryStorage() Storage {
	return &memoryStorage{}
}

func (s *memoryStorage) Load() ([]Item, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.set {
		return nil, nil
	}
	items := make([]Item, len(s.items))
	copy(items, s.items)
	return items, nil
}

func (s *memoryStorage) Save(items []Item) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.items = make([]Item, len(items))
	copy(s.items, items)
	s.set = true
	return nil
}
