// Package catalog holds the product reference data and the pure pricing,
// quantity and filtering logic of the storefront.
package catalog

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
)

// Product is a catalog entry. Records are static reference data: loaded
// once at startup and never mutated.
type Product struct {
	ID          int64       `json:"id" csv:"id"`
	Name        string      `json:"name" csv:"name"`
	SKU         string      `json:"sku" csv:"sku"`
	Category    string      `json:"category" csv:"category"`
	Supplier    string      `json:"supplier" csv:"supplier"`
	BasePrice   int64       `json:"basePrice" csv:"base_price"`
	Stock       *int        `json:"stock,omitempty" csv:"stock"`
	MinQuantity *int        `json:"minQuantity,omitempty" csv:"min_quantity"`
	MaxQuantity *int        `json:"maxQuantity,omitempty" csv:"max_quantity"`
	PriceBreaks PriceBreaks `json:"priceBreaks,omitempty" csv:"price_breaks"`
}

// PriceBreak is a quantity threshold at which a different unit price applies.
type PriceBreak struct {
	MinQty int   `json:"minQty"`
	Price  int64 `json:"price"`
}

// PriceBreaks is an ordered set of price breaks, ascending by MinQty.
// In CSV it is encoded as "minQty:price|minQty:price".
type PriceBreaks []PriceBreak

// UnmarshalCSV parses the pipe-separated break list used in catalog files.
func (p *PriceBreaks) UnmarshalCSV(field string) error {
	field = strings.TrimSpace(field)
	if field == "" {
		*p = nil
		return nil
	}
	var breaks PriceBreaks
	for _, part := range strings.Split(field, "|") {
		minStr, priceStr, found := strings.Cut(part, ":")
		if !found {
			return fmt.Errorf("malformed price break %q", part)
		}
		minQty, err := strconv.Atoi(strings.TrimSpace(minStr))
		if err != nil {
			return fmt.Errorf("malformed price break quantity %q: %w", minStr, err)
		}
		price, err := strconv.ParseInt(strings.TrimSpace(priceStr), 10, 64)
		if err != nil {
			return fmt.Errorf("malformed price break price %q: %w", priceStr, err)
		}
		breaks = append(breaks, PriceBreak{MinQty: minQty, Price: price})
	}
	if err := breaks.normalize(); err != nil {
		return err
	}
	*p = breaks
	return nil
}

// MarshalCSV renders the break list back into the catalog file encoding.
func (p PriceBreaks) MarshalCSV() (string, error) {
	parts := make([]string, len(p))
	for i, pb := range p {
		parts[i] = fmt.Sprintf("%d:%d", pb.MinQty, pb.Price)
	}
	return strings.Join(parts, "|"), nil
}

// normalize sorts breaks ascending by MinQty and rejects duplicate thresholds.
func (p PriceBreaks) normalize() error {
	sort.Slice(p, func(i, j int) bool { return p[i].MinQty < p[j].MinQty })
	for i := 1; i < len(p); i++ {
		if p[i].MinQty == p[i-1].MinQty {
			return fmt.Errorf("duplicate price break for quantity %d", p[i].MinQty)
		}
	}
	return nil
}

// Supplier is static reference metadata shown alongside the catalog.
type Supplier struct {
	ID   string `json:"id" csv:"id"`
	Name string `json:"name" csv:"name"`
}
