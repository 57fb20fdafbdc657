package pricing_test

import (
	"testing"

	"github.com/Yaseeru/glowgroove/internal/entities"
	"github.com/Yaseeru/glowgroove/internal/pricing"
	"github.com/stretchr/testify/assert"
)

func TestCalculator_Calculate(t *testing.T) {
	calc := pricing.Default()

	testCases := []struct {
		name     string
		items    []pricing.Item
		discount float64
		want     entities.Pricing
	}{
		{
			name:  "flat shipping below threshold",
			items: []pricing.Item{{UnitPrice: 10, Quantity: 2}},
			want: entities.Pricing{
				Subtotal: 20,
				Tax:      1.6,
				Shipping: 5.99,
				Total:    27.59,
			},
		},
		{
			name:  "free shipping above threshold",
			items: []pricing.Item{{UnitPrice: 25.5, Quantity: 2}, {UnitPrice: 12, Quantity: 1}},
			want: entities.Pricing{
				Subtotal: 63,
				Tax:      5.04,
				Shipping: 0,
				Total:    68.04,
			},
		},
		{
			name:  "threshold is exclusive",
			items: []pricing.Item{{UnitPrice: 50, Quantity: 1}},
			want: entities.Pricing{
				Subtotal: 50,
				Tax:      4,
				Shipping: 5.99,
				Total:    59.99,
			},
		},
		{
			name:     "discount reduces total",
			items:    []pricing.Item{{UnitPrice: 40, Quantity: 2}},
			discount: 10,
			want: entities.Pricing{
				Subtotal: 80,
				Tax:      6.4,
				Shipping: 0,
				Discount: 10,
				Total:    76.4,
			},
		},
		{
			name:  "rounding to two decimals",
			items: []pricing.Item{{UnitPrice: 19.99, Quantity: 3}},
			want: entities.Pricing{
				Subtotal: 59.97,
				Tax:      4.8,
				Shipping: 0,
				Total:    64.77,
			},
		},
		{
			name: "empty cart prices to zero",
			want: entities.Pricing{Shipping: 5.99, Total: 5.99},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got := calc.Calculate(tc.items, tc.discount)
			assert.Equal(t, tc.want, got)
			assert.InDelta(t, got.Subtotal+got.Tax+got.Shipping-got.Discount, got.Total, 0.001)
		})
	}
}
