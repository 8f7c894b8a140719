package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func int64Ptr(v int64) *int64 { return &v }

func testCatalog() []Product {
	return []Product{
		{ID: 1, Name: "Agenda", SKU: "AGE-001", Category: "escritorio", Supplier: "promo-chile", BasePrice: 1000, Stock: intPtr(50)},
		{ID: 2, Name: "Botella", SKU: "BOT-002", Category: "botellas", Supplier: "sur-import", BasePrice: 2000, Stock: intPtr(300), PriceBreaks: PriceBreaks{{MinQty: 10, Price: 1800}, {MinQty: 50, Price: 1500}}},
		{ID: 3, Name: "Chapita", SKU: "CHA-003", Category: "escritorio", Supplier: "promo-chile", BasePrice: 500, Stock: intPtr(900)},
	}
}

func ids(products []Product) []int64 {
	out := make([]int64, len(products))
	for i, p := range products {
		out[i] = p.ID
	}
	return out
}

func Test_Apply_Filters(t *testing.T) {
	testCases := []struct {
		name     string
		spec     FilterSpec
		expected []int64
	}{
		{
			name:     "no criteria returns everything in order",
			spec:     FilterSpec{},
			expected: []int64{1, 2, 3},
		},
		{
			name:     "all sentinels disable selectors",
			spec:     FilterSpec{Category: All, Supplier: All},
			expected: []int64{1, 2, 3},
		},
		{
			name:     "category filter",
			spec:     FilterSpec{Category: "escritorio"},
			expected: []int64{1, 3},
		},
		{
			name:     "supplier filter",
			spec:     FilterSpec{Supplier: "sur-import"},
			expected: []int64{2},
		},
		{
			name:     "price range with descending price sort",
			spec:     FilterSpec{PriceMin: int64Ptr(800), PriceMax: int64Ptr(2000), Sort: SortPriceDesc},
			expected: []int64{2, 1},
		},
		{
			name:     "search matches name case folded",
			spec:     FilterSpec{Query: "  BOTE  "},
			expected: []int64{2},
		},
		{
			name:     "search matches SKU",
			spec:     FilterSpec{Query: "cha-0"},
			expected: []int64{3},
		},
		{
			name:     "empty query leaves list unchanged",
			spec:     FilterSpec{Query: "   "},
			expected: []int64{1, 2, 3},
		},
		{
			name:     "no match is an empty result, not an error",
			spec:     FilterSpec{Query: "xyz-not-present"},
			expected: []int64{},
		},
		{
			name:     "name descending",
			spec:     FilterSpec{Sort: SortNameDesc},
			expected: []int64{3, 2, 1},
		},
		{
			name:     "stock sorts highest first",
			spec:     FilterSpec{Sort: SortStock},
			expected: []int64{3, 2, 1},
		},
		{
			name:     "unknown sort key is a stable no-op",
			spec:     FilterSpec{Sort: "weight-asc"},
			expected: []int64{1, 2, 3},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got := Apply(testCatalog(), tc.spec)
			assert.Equal(t, tc.expected, ids(got))
		})
	}
}

func Test_Apply_Idempotent(t *testing.T) {
	spec := FilterSpec{Category: "escritorio", Query: "a", Sort: SortPriceAsc}
	once := Apply(testCatalog(), spec)
	twice := Apply(once, spec)
	assert.Equal(t, once, twice)
}

func Test_Apply_DoesNotMutateInput(t *testing.T) {
	products := testCatalog()
	_ = Apply(products, FilterSpec{Sort: SortPriceDesc, Category: "escritorio"})
	require.Equal(t, []int64{1, 2, 3}, ids(products))
}

func Test_Apply_LocaleAwareNameSort(t *testing.T) {
	products := []Product{
		{ID: 1, Name: "Ñandú de peluche"},
		{ID: 2, Name: "Zapato promocional"},
		{ID: 3, Name: "Naipe corporativo"},
	}
	got := Apply(products, FilterSpec{Sort: SortNameAsc})
	// Spanish collation places ñ between n and z, unlike byte order.
	assert.Equal(t, []int64{3, 1, 2}, ids(got))
}
