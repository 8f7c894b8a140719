package catalog

import "github.com/spf13/cast"

// fallbackMaxQuantity caps order quantities for products that declare
// neither a maximum nor a stock level.
const fallbackMaxQuantity = 10000

// Bounds is the inclusive valid quantity range for a product.
type Bounds struct {
	Min int `json:"min"`
	Max int `json:"max"`
}

// BoundsFor resolves a product's quantity range. Minimum defaults to 1.
// Maximum resolves in priority order: explicit maximum, stock, fallback.
func BoundsFor(p Product) Bounds {
	b := Bounds{Min: 1, Max: fallbackMaxQuantity}
	if p.MinQuantity != nil {
		b.Min = *p.MinQuantity
	}
	switch {
	case p.MaxQuantity != nil:
		b.Max = *p.MaxQuantity
	case p.Stock != nil:
		b.Max = *p.Stock
	}
	return b
}

// Clamp constrains a quantity into the product's valid range.
func Clamp(p Product, quantity int) int {
	b := BoundsFor(p)
	if quantity < b.Min {
		return b.Min
	}
	if quantity > b.Max {
		return b.Max
	}
	return quantity
}

// ClampRaw coerces a loosely typed quantity (form field, query parameter)
// and clamps it. Anything that does not parse as a number resolves to the
// product's minimum.
func ClampRaw(p Product, raw any) int {
	quantity, err := cast.ToIntE(raw)
	if err != nil {
		return BoundsFor(p).Min
	}
	return Clamp(p, quantity)
}
