package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func tieredProduct() Product {
	return Product{
		ID:        2,
		Name:      "Gorro Snapback Bordado",
		SKU:       "GOR-014",
		BasePrice: 2000,
		PriceBreaks: PriceBreaks{
			{MinQty: 10, Price: 1800},
			{MinQty: 50, Price: 1500},
		},
	}
}

func Test_BestUnitPrice(t *testing.T) {
	testCases := []struct {
		name     string
		product  Product
		quantity int
		expected int64
	}{
		{
			name:     "no breaks returns base price",
			product:  Product{BasePrice: 1000},
			quantity: 500,
			expected: 1000,
		},
		{
			name:     "no breaks at zero quantity",
			product:  Product{BasePrice: 1000},
			quantity: 0,
			expected: 1000,
		},
		{
			name:     "below first tier returns base",
			product:  tieredProduct(),
			quantity: 5,
			expected: 2000,
		},
		{
			name:     "exactly at first tier",
			product:  tieredProduct(),
			quantity: 10,
			expected: 1800,
		},
		{
			name:     "beyond second tier",
			product:  tieredProduct(),
			quantity: 60,
			expected: 1500,
		},
		{
			name: "breaks above base never raise the price",
			product: Product{
				BasePrice:   900,
				PriceBreaks: PriceBreaks{{MinQty: 1, Price: 1200}},
			},
			quantity: 10,
			expected: 900,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, BestUnitPrice(tc.product, tc.quantity))
		})
	}
}

func Test_BestUnitPrice_NeverAboveBase(t *testing.T) {
	p := tieredProduct()
	for q := 0; q <= 200; q++ {
		assert.LessOrEqual(t, BestUnitPrice(p, q), p.BasePrice, "quantity %d", q)
	}
}
