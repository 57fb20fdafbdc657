package repo

import (
	"database/sql"
	"time"

	"github.com/Yaseeru/glowgroove/internal/entities"
)

type Order struct {
	OrderID     string `db:"order_id"`
	OrderNumber string `db:"order_number"`
	UserID      string `db:"user_id"`

	CustomerName  string `db:"customer_name"`
	CustomerEmail string `db:"customer_email"`
	CustomerPhone string `db:"customer_phone"`

	ShippingStreet  string `db:"shipping_street"`
	ShippingCity    string `db:"shipping_city"`
	ShippingState   string `db:"shipping_state"`
	ShippingZip     string `db:"shipping_zip"`
	ShippingCountry string `db:"shipping_country"`

	BillingStreet  string `db:"billing_street"`
	BillingCity    string `db:"billing_city"`
	BillingState   string `db:"billing_state"`
	BillingZip     string `db:"billing_zip"`
	BillingCountry string `db:"billing_country"`

	Subtotal float64 `db:"subtotal"`
	Tax      float64 `db:"tax"`
	Shipping float64 `db:"shipping"`
	Discount float64 `db:"discount"`
	Total    float64 `db:"total"`

	Status           string         `db:"status"`
	PaymentStatus    string         `db:"payment_status"`
	PaymentReference sql.NullString `db:"payment_reference"`
	PaymentMethod    string         `db:"payment_method"`
	StockDeducted    bool           `db:"stock_deducted"`

	Notes          sql.NullString `db:"notes"`
	TrackingNumber sql.NullString `db:"tracking_number"`
	DeliveredAt    sql.NullTime   `db:"delivered_at"`

	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`
}

type OrderItem struct {
	ItemID    string         `db:"item_id"`
	OrderID   string         `db:"order_id"`
	ProductID string         `db:"product_id"`
	Name      string         `db:"name"`
	Price     float64        `db:"price"`
	Quantity  int            `db:"quantity"`
	Image     sql.NullString `db:"image"`
}

type Product struct {
	ProductID string         `db:"product_id"`
	Name      string         `db:"name"`
	Price     float64        `db:"price"`
	Stock     int            `db:"stock"`
	SKU       sql.NullString `db:"sku"`
	Image     sql.NullString `db:"image"`
	IsActive  bool           `db:"is_active"`
	CreatedAt time.Time      `db:"created_at"`
	UpdatedAt time.Time      `db:"updated_at"`
}

func OrderToEntity(o Order, items []OrderItem) entities.Order {
	order := entities.Order{
		ID:          o.OrderID,
		OrderNumber: o.OrderNumber,
		UserID:      o.UserID,
		Customer: entities.CustomerInfo{
			Name:  o.CustomerName,
			Email: o.CustomerEmail,
			Phone: o.CustomerPhone,
		},
		ShippingAddress: entities.Address{
			Street:  o.ShippingStreet,
			City:    o.ShippingCity,
			State:   o.ShippingState,
			ZipCode: o.ShippingZip,
			Country: o.ShippingCountry,
		},
		BillingAddress: entities.Address{
			Street:  o.BillingStreet,
			City:    o.BillingCity,
			State:   o.BillingState,
			ZipCode: o.BillingZip,
			Country: o.BillingCountry,
		},
		Pricing: entities.Pricing{
			Subtotal: o.Subtotal,
			Tax:      o.Tax,
			Shipping: o.Shipping,
			Discount: o.Discount,
			Total:    o.Total,
		},
		Status:           entities.Status(o.Status),
		PaymentStatus:    entities.PaymentStatus(o.PaymentStatus),
		PaymentReference: nullStringToString(o.PaymentReference),
		PaymentMethod:    o.PaymentMethod,
		StockDeducted:    o.StockDeducted,
		Notes:            nullStringToString(o.Notes),
		TrackingNumber:   nullStringToString(o.TrackingNumber),
		CreatedAt:        o.CreatedAt,
		UpdatedAt:        o.UpdatedAt,
	}

	if o.DeliveredAt.Valid {
		deliveredAt := o.DeliveredAt.Time
		order.DeliveredAt = &deliveredAt
	}

	order.Items = make([]entities.OrderItem, 0, len(items))
	for _, item := range items {
		order.Items = append(order.Items, ItemToEntity(item))
	}
	return order
}

func ItemToEntity(i OrderItem) entities.OrderItem {
	return entities.OrderItem{
		ID:        i.ItemID,
		ProductID: i.ProductID,
		Name:      i.Name,
		Price:     i.Price,
		Quantity:  i.Quantity,
		Image:     nullStringToString(i.Image),
	}
}

func ProductToEntity(p Product) entities.Product {
	return entities.Product{
		ID:        p.ProductID,
		Name:      p.Name,
		Price:     p.Price,
		Stock:     p.Stock,
		SKU:       nullStringToString(p.SKU),
		Image:     nullStringToString(p.Image),
		IsActive:  p.IsActive,
		CreatedAt: p.CreatedAt,
		UpdatedAt: p.UpdatedAt,
	}
}

func nullString(s string) sql.NullString {
	if s == "" {
		return sql.NullString{}
	}
	return sql.NullString{String: s, Valid: true}
}

func nullStringToString(s sql.NullString) string {
	if !s.Valid {
		return ""
	}
	return s.String
}

func nullTime(t *time.Time) sql.NullTime {
	if t == nil {
		return sql.NullTime{}
	}
	return sql.NullTime{Time: *t, Valid: true}
}
