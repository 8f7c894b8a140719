package catalog

import "sort"

// Store is the read-only, in-memory catalog. It abstracts the reference
// data behind lookups so callers never hold the backing slices.
type Store struct {
	products  []Product
	byID      map[int64]int
	suppliers []Supplier
}

// NewStore creates a catalog Store over the given reference data.
func NewStore(products []Product, suppliers []Supplier) *Store {
	byID := make(map[int64]int, len(products))
	for i, p := range products {
		byID[p.ID] = i
	}
	return &Store{
		products:  products,
		byID:      byID,
		suppliers: suppliers,
	}
}

// All returns a copy of the full product list.
func (s *Store) All() []Product {
	list := make([]Product, len(s.products))
	copy(list, s.products)
	return list
}

// FindByID retrieves a single product by its identifier.
// Returns ErrProductNotFound if no product exists with the given ID.
func (s *Store) FindByID(id int64) (*Product, error) {
	i, ok := s.byID[id]
	if !ok {
		return nil, ErrProductNotFound
	}
	p := s.products[i]
	return &p, nil
}

// Suppliers returns the supplier reference list.
func (s *Store) Suppliers() []Supplier {
	list := make([]Supplier, len(s.suppliers))
	copy(list, s.suppliers)
	return list
}

// Categories returns the distinct product categories, sorted.
func (s *Store) Categories() []string {
	seen := make(map[string]struct{})
	var categories []string
	for _, p := range s.products {
		if _, ok := seen[p.Category]; ok {
			continue
		}
		seen[p.Category] = struct{}{}
		categories = append(categories, p.Category)
	}
	sort.Strings(categories)
	return categories
}
