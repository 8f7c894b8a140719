package catalog

import (
	"sort"
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// All is the sentinel selector that disables category or supplier filtering.
const All = "all"

// Sort keys accepted by the pipeline. The bare "name", "price" and "stock"
// keys are aliases kept for the storefront's selector values.
const (
	SortName      = "name"
	SortNameAsc   = "name-asc"
	SortNameDesc  = "name-desc"
	SortPrice     = "price"
	SortPriceAsc  = "price-asc"
	SortPriceDesc = "price-desc"
	SortStock     = "stock"
)

// FilterSpec describes one catalog query. Zero values mean "no filter".
type FilterSpec struct {
	Category string `json:"category"`
	Supplier string `json:"supplier"`
	Query    string `json:"q"`
	Sort     string `json:"sort"`
	PriceMin *int64 `json:"priceMin"`
	PriceMax *int64 `json:"priceMax"`
}

// Apply runs the filter/sort pipeline over the catalog and returns the
// matching products in the requested order. The input slice is never
// mutated; stages narrow a defensive copy. An empty result is valid.
func Apply(products []Product, spec FilterSpec) []Product {
	filtered := make([]Product, len(products))
	copy(filtered, products)

	if spec.Category != "" && spec.Category != All {
		filtered = keep(filtered, func(p Product) bool { return p.Category == spec.Category })
	}
	if spec.Supplier != "" && spec.Supplier != All {
		filtered = keep(filtered, func(p Product) bool { return p.Supplier == spec.Supplier })
	}
	if spec.PriceMin != nil {
		filtered = keep(filtered, func(p Product) bool { return p.BasePrice >= *spec.PriceMin })
	}
	if spec.PriceMax != nil {
		filtered = keep(filtered, func(p Product) bool { return p.BasePrice <= *spec.PriceMax })
	}
	if query := strings.ToLower(strings.TrimSpace(spec.Query)); query != "" {
		filtered = keep(filtered, func(p Product) bool {
			return strings.Contains(strings.ToLower(p.Name), query) ||
				strings.Contains(strings.ToLower(p.SKU), query)
		})
	}

	switch spec.Sort {
	case SortName, SortNameAsc:
		c := newNameCollator()
		sort.SliceStable(filtered, func(i, j int) bool {
			return c.CompareString(filtered[i].Name, filtered[j].Name) < 0
		})
	case SortNameDesc:
		c := newNameCollator()
		sort.SliceStable(filtered, func(i, j int) bool {
			return c.CompareString(filtered[j].Name, filtered[i].Name) < 0
		})
	case SortPrice, SortPriceAsc:
		sort.SliceStable(filtered, func(i, j int) bool {
			return filtered[i].BasePrice < filtered[j].BasePrice
		})
	case SortPriceDesc:
		sort.SliceStable(filtered, func(i, j int) bool {
			return filtered[j].BasePrice < filtered[i].BasePrice
		})
	case SortStock:
		sort.SliceStable(filtered, func(i, j int) bool {
			return stockOf(filtered[j]) < stockOf(filtered[i])
		})
	default:
		// unrecognized keys leave the order unchanged
	}
	return filtered
}

// keep returns the elements matching pred, reusing the slice's backing array.
func keep(products []Product, pred func(Product) bool) []Product {
	kept := products[:0]
	for _, p := range products {
		if pred(p) {
			kept = append(kept, p)
		}
	}
	return kept
}

// newNameCollator builds a Spanish collator for locale-aware name ordering.
// Collators are not safe for concurrent use, so each Apply gets its own.
func newNameCollator() *collate.Collator {
	return collate.New(language.Spanish)
}

func stockOf(p Product) int {
	if p.Stock == nil {
		return 0
	}
	return *p.Stock
}
