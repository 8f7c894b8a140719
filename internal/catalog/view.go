package catalog

import (
	"sync"
	"time"

	"github.com/swagcl/storefront/pkg/debounce"
)

// View holds the filter criteria of one browsing session and re-runs the
// pipeline whenever they change. Text-search updates are debounced: rapid
// keystrokes are coalesced and only the last value after the quiet period
// takes effect; superseded values are discarded.
type View struct {
	mu        sync.Mutex
	store     *Store
	spec      FilterSpec
	debouncer *debounce.Debouncer
	onApply   func([]Product)
}

// NewView creates a catalog view over the store. onApply is invoked with
// the fresh result after every effective criteria change; it may be nil.
func NewView(store *Store, quiet time.Duration, onApply func([]Product)) *View {
	if onApply == nil {
		onApply = func([]Product) {}
	}
	return &View{
		store:     store,
		debouncer: debounce.New(quiet),
		onApply:   onApply,
	}
}

// SetCategory updates the category selector and re-runs the pipeline.
func (v *View) SetCategory(category string) {
	v.update(func(s *FilterSpec) { s.Category = category })
}

// SetSupplier updates the supplier selector and re-runs the pipeline.
func (v *View) SetSupplier(supplier string) {
	v.update(func(s *FilterSpec) { s.Supplier = supplier })
}

// SetSort updates the sort key and re-runs the pipeline.
func (v *View) SetSort(sortKey string) {
	v.update(func(s *FilterSpec) { s.Sort = sortKey })
}

// SetPriceRange updates the price bounds and re-runs the pipeline.
// Nil means the corresponding bound is unset.
func (v *View) SetPriceRange(min, max *int64) {
	v.update(func(s *FilterSpec) {
		s.PriceMin = min
		s.PriceMax = max
	})
}

// SetQuery schedules a debounced search update. The criteria only record
// the query once the quiet period elapses without a newer value.
func (v *View) SetQuery(query string) {
	v.debouncer.Do(func() {
		v.update(func(s *FilterSpec) { s.Query = query })
	})
}

// Reset clears all criteria back to "no filter" and re-runs the pipeline.
func (v *View) Reset() {
	v.debouncer.Stop()
	v.update(func(s *FilterSpec) { *s = FilterSpec{} })
}

// Spec returns the currently effective filter criteria.
func (v *View) Spec() FilterSpec {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.spec
}

// Products runs the pipeline with the currently effective criteria.
func (v *View) Products() []Product {
	return Apply(v.store.All(), v.Spec())
}

// Close cancels any pending debounced update.
func (v *View) Close() {
	v.debouncer.Stop()
}

func (v *View) update(mutate func(*FilterSpec)) {
	v.mu.Lock()
	mutate(&v.spec)
	spec := v.spec
	onApply := v.onApply
	v.mu.Unlock()

	onApply(Apply(v.store.All(), spec))
}
