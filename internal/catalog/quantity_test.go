package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func intPtr(v int) *int { return &v }

func Test_BoundsFor(t *testing.T) {
	testCases := []struct {
		name     string
		product  Product
		expected Bounds
	}{
		{
			name:     "defaults when nothing configured",
			product:  Product{},
			expected: Bounds{Min: 1, Max: 10000},
		},
		{
			name:     "explicit maximum wins over stock",
			product:  Product{MinQuantity: intPtr(5), MaxQuantity: intPtr(100), Stock: intPtr(400)},
			expected: Bounds{Min: 5, Max: 100},
		},
		{
			name:     "stock caps when no maximum",
			product:  Product{Stock: intPtr(250)},
			expected: Bounds{Min: 1, Max: 250},
		},
		{
			name:     "fallback ceiling when neither set",
			product:  Product{MinQuantity: intPtr(12)},
			expected: Bounds{Min: 12, Max: 10000},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, BoundsFor(tc.product))
		})
	}
}

func Test_Clamp(t *testing.T) {
	p := Product{MinQuantity: intPtr(10), MaxQuantity: intPtr(500)}

	testCases := []struct {
		name     string
		quantity int
		expected int
	}{
		{name: "below minimum raised", quantity: 3, expected: 10},
		{name: "negative raised", quantity: -7, expected: 10},
		{name: "within range unchanged", quantity: 120, expected: 120},
		{name: "above maximum lowered", quantity: 9000, expected: 500},
		{name: "at minimum", quantity: 10, expected: 10},
		{name: "at maximum", quantity: 500, expected: 500},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got := Clamp(p, tc.quantity)
			assert.Equal(t, tc.expected, got)
			b := BoundsFor(p)
			assert.GreaterOrEqual(t, got, b.Min)
			assert.LessOrEqual(t, got, b.Max)
		})
	}
}

func Test_ClampRaw(t *testing.T) {
	p := Product{MinQuantity: intPtr(10), MaxQuantity: intPtr(500)}

	testCases := []struct {
		name     string
		raw      any
		expected int
	}{
		{name: "numeric string", raw: "42", expected: 42},
		{name: "garbage string falls to minimum", raw: "abc", expected: 10},
		{name: "empty string falls to minimum", raw: "", expected: 10},
		{name: "json number", raw: float64(700), expected: 500},
		{name: "nil falls to minimum", raw: nil, expected: 10},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got := ClampRaw(p, tc.raw)
			assert.Equal(t, tc.expected, got)
			b := BoundsFor(p)
			assert.GreaterOrEqual(t, got, b.Min)
			assert.LessOrEqual(t, got, b.Max)
		})
	}
}
