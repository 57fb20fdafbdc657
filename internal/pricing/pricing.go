package pricing

import (
	"math"

	"github.com/Yaseeru/glowgroove/internal/entities"
)

const (
	DefaultTaxRate          = 0.08
	DefaultShippingFee      = 5.99
	DefaultFreeShippingOver = 50.0
)

type Item struct {
	UnitPrice float64
	Quantity  int
}

// Calculator computes the pricing snapshot frozen onto an order at
// creation. It is pure: no state, no I/O.
type Calculator struct {
	TaxRate          float64
	ShippingFee      float64
	FreeShippingOver float64
}

func NewCalculator(taxRate, shippingFee, freeShippingOver float64) Calculator {
	return Calculator{
		TaxRate:          taxRate,
		ShippingFee:      shippingFee,
		FreeShippingOver: freeShippingOver,
	}
}

func Default() Calculator {
	return NewCalculator(DefaultTaxRate, DefaultShippingFee, DefaultFreeShippingOver)
}

// Calculate sums per-item subtotals, applies tax and the flat shipping fee
// (waived above the free-shipping threshold) and rounds every component to
// two decimal places before it is stored.
func (c Calculator) Calculate(items []Item, discount float64) entities.Pricing {
	var subtotal float64
	for _, item := range items {
		subtotal += item.UnitPrice * float64(item.Quantity)
	}

	tax := subtotal * c.TaxRate
	shipping := c.ShippingFee
	if subtotal > c.FreeShippingOver {
		shipping = 0
	}

	subtotal = round2(subtotal)
	tax = round2(tax)
	shipping = round2(shipping)
	discount = round2(discount)

	return entities.Pricing{
		Subtotal: subtotal,
		Tax:      tax,
		Shipping: shipping,
		Discount: discount,
		Total:    round2(subtotal + tax + shipping - discount),
	}
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
