package entities

import "time"

// Product is the catalog snapshot the order core reads. Stock is mutated
// only through the atomic repo operations.
type Product struct {
	ID       string
	Name     string
	Price    float64
	Stock    int
	SKU      string
	Image    string
	IsActive bool

	CreatedAt time.Time
	UpdatedAt time.Time
}
