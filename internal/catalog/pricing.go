package catalog

// BestUnitPrice returns the lowest unit price the given quantity qualifies
// for. Breaks whose MinQty exceeds the quantity do not apply; the base price
// is always a candidate, so the result is never above it. Pure and total for
// quantity >= 0; callers validate negative or fractional input.
func BestUnitPrice(p Product, quantity int) int64 {
	if len(p.PriceBreaks) == 0 {
		return p.BasePrice
	}
	best := p.BasePrice
	for _, pb := range p.PriceBreaks {
		if quantity >= pb.MinQty && pb.Price < best {
			best = pb.Price
		}
	}
	return best
}
