package money

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_FormatCLP(t *testing.T) {
	testCases := []struct {
		name     string
		amount   int64
		display  Display
		expected string
	}{
		{name: "code display with grouping", amount: 12345, display: DisplayCode, expected: "CLP 12.345"},
		{name: "symbol display with grouping", amount: 12345, display: DisplaySymbol, expected: "$12.345"},
		{name: "zero", amount: 0, display: DisplayCode, expected: "CLP 0"},
		{name: "small amount has no separator", amount: 990, display: DisplayCode, expected: "CLP 990"},
		{name: "millions", amount: 1500000, display: DisplaySymbol, expected: "$1.500.000"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, FormatCLP(tc.amount, tc.display))
		})
	}
}
