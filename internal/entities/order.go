package entities

import (
	"bytes"
	"encoding/gob"
	"fmt"
	"math/rand"
	"time"
)

// OrderItem is a line item with the product name and unit price frozen at
// order-creation time. Catalog changes never touch an existing order.
type OrderItem struct {
	ID        string
	ProductID string
	Name      string
	Price     float64
	Quantity  int
	Image     string
}

type CustomerInfo struct {
	Name  string
	Email string
	Phone string
}

type Address struct {
	Street  string
	City    string
	State   string
	ZipCode string
	Country string
}

// Pricing is the monetary breakdown captured once at creation.
// Invariant: Total = Subtotal + Tax + Shipping - Discount.
type Pricing struct {
	Subtotal float64
	Tax      float64
	Shipping float64
	Discount float64
	Total    float64
}

type Order struct {
	ID          string
	OrderNumber string
	UserID      string

	Items           []OrderItem
	Customer        CustomerInfo
	ShippingAddress Address
	BillingAddress  Address
	Pricing         Pricing

	Status        Status
	PaymentStatus PaymentStatus

	// PaymentReference is the gateway transaction reference, unique across
	// orders. It is the idempotency key for payment reconciliation.
	PaymentReference string
	PaymentMethod    string

	// StockDeducted records whether this order's confirmation actually
	// decremented stock, so cancellation reverses exactly what was applied.
	StockDeducted bool

	Notes          string
	TrackingNumber string
	DeliveredAt    *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}

func (o *Order) TotalItems() int {
	total := 0
	for _, item := range o.Items {
		total += item.Quantity
	}
	return total
}

// NewOrderNumber generates a human-readable order number like GG-45271830-042.
func NewOrderNumber() string {
	ts := time.Now().UnixMilli() % 100_000_000
	return fmt.Sprintf("GG-%08d-%03d", ts, rand.Intn(1000))
}

func (o *Order) Marshal() ([]byte, error) {
	var buf bytes.Buffer
	enc := gob.NewEncoder(&buf)
	if err := enc.Encode(o); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (o *Order) Unmarshal(data []byte) error {
	buf := bytes.NewBuffer(data)
	dec := gob.NewDecoder(buf)
	return dec.Decode(o)
}

func init() {
	gob.Register(Order{})
	gob.Register(OrderItem{})
}

// OrderFilter narrows order queries. Zero values mean "no constraint".
type OrderFilter struct {
	UserID string
	Status Status
	Search string
	Limit  int
	Offset int
}

// StatusStat is one row of the admin per-status aggregation.
type StatusStat struct {
	Status      Status
	Count       int
	TotalAmount float64
}

// StatusUpdate carries admin-editable logistics metadata. Empty fields are
// left unchanged; this path never mutates stock.
// StatusUpdate carries the admin changes plus the statuses the caller
// validated against. The store applies a status change only while the row
// still holds the Prev value, so two racing updates cannot both win.
type StatusUpdate struct {
	Status            Status
	PrevStatus        Status
	PaymentStatus     PaymentStatus
	PrevPaymentStatus PaymentStatus
	TrackingNumber    string
	Notes             string
	DeliveredAt       *time.Time
}
