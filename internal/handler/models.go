package handler

import (
	"time"

	"github.com/Yaseeru/glowgroove/internal/entities"
	"github.com/Yaseeru/glowgroove/internal/service"
)

type CreateOrderRequest struct {
	Items           []CreateOrderItem `json:"items" validate:"required,min=1,dive"`
	CustomerInfo    CustomerInfo      `json:"customerInfo" validate:"required"`
	ShippingAddress Address           `json:"shippingAddress" validate:"required"`
	BillingAddress  *Address          `json:"billingAddress,omitempty"`
	PaymentMethod   string            `json:"paymentMethod,omitempty" validate:"omitempty,oneof=credit_card debit_card paypal stripe cash_on_delivery paystack"`
	Notes           string            `json:"notes,omitempty" validate:"max=500"`
}

type CreateOrderItem struct {
	Product  string `json:"product" validate:"required"`
	Quantity int    `json:"quantity" validate:"required,gte=1"`
}

type CustomerInfo struct {
	Name  string `json:"name" validate:"required"`
	Email string `json:"email" validate:"required,email"`
	Phone string `json:"phone" validate:"required"`
}

type Address struct {
	Street  string `json:"street" validate:"required"`
	City    string `json:"city" validate:"required"`
	State   string `json:"state" validate:"required"`
	ZipCode string `json:"zipCode" validate:"required"`
	Country string `json:"country,omitempty"`
}

type UpdateStatusRequest struct {
	Status         string `json:"status,omitempty" validate:"omitempty,oneof=confirmed processing shipped delivered cancelled refunded"`
	PaymentStatus  string `json:"paymentStatus,omitempty" validate:"omitempty,oneof=pending completed failed refunded"`
	TrackingNumber string `json:"trackingNumber,omitempty"`
	Notes          string `json:"notes,omitempty" validate:"max=500"`
}

type InitiatePaymentRequest struct {
	OrderID string `json:"orderId" validate:"required"`
}

type WebhookRequest struct {
	Event string `json:"event"`
	Data  struct {
		Reference string `json:"reference"`
		Amount    int64  `json:"amount"`
		Customer  struct {
			Email string `json:"email"`
		} `json:"customer"`
	} `json:"data"`
}

// Order is the wire representation of an order
// swagger:model Order
type Order struct {
	ID               string       `json:"id"`
	OrderNumber      string       `json:"orderNumber"`
	User             string       `json:"user"`
	Items            []OrderItem  `json:"items"`
	CustomerInfo     CustomerInfo `json:"customerInfo"`
	ShippingAddress  Address      `json:"shippingAddress"`
	BillingAddress   Address      `json:"billingAddress"`
	Pricing          Pricing      `json:"pricing"`
	Status           string       `json:"status"`
	PaymentStatus    string       `json:"paymentStatus"`
	PaymentReference string       `json:"paymentReference,omitempty"`
	PaymentMethod    string       `json:"paymentMethod"`
	Notes            string       `json:"notes,omitempty"`
	TrackingNumber   string       `json:"trackingNumber,omitempty"`
	TotalItems       int          `json:"totalItems"`
	DeliveredAt      *time.Time   `json:"deliveredAt,omitempty"`
	CreatedAt        time.Time    `json:"createdAt"`
	UpdatedAt        time.Time    `json:"updatedAt"`
}

type OrderItem struct {
	ID       string  `json:"id"`
	Product  string  `json:"product"`
	Name     string  `json:"name"`
	Price    float64 `json:"price"`
	Quantity int     `json:"quantity"`
	Image    string  `json:"image,omitempty"`
}

type Pricing struct {
	Subtotal float64 `json:"subtotal"`
	Tax      float64 `json:"tax"`
	Shipping float64 `json:"shipping"`
	Discount float64 `json:"discount"`
	Total    float64 `json:"total"`
}

type Pagination struct {
	Current int  `json:"current"`
	Pages   int  `json:"pages"`
	Total   int  `json:"total"`
	HasNext bool `json:"hasNext"`
	HasPrev bool `json:"hasPrev"`
}

type StatusStat struct {
	Status      string  `json:"status"`
	Count       int     `json:"count"`
	TotalAmount float64 `json:"totalAmount"`
}

type PaymentInit struct {
	AuthorizationURL string `json:"authorization_url"`
	AccessCode       string `json:"access_code,omitempty"`
	Reference        string `json:"reference"`
}

func OrderEntityToJSON(o entities.Order) Order {
	items := make([]OrderItem, 0, len(o.Items))
	for _, item := range o.Items {
		items = append(items, OrderItem{
			ID:       item.ID,
			Product:  item.ProductID,
			Name:     item.Name,
			Price:    item.Price,
			Quantity: item.Quantity,
			Image:    item.Image,
		})
	}

	return Order{
		ID:          o.ID,
		OrderNumber: o.OrderNumber,
		User:        o.UserID,
		Items:       items,
		CustomerInfo: CustomerInfo{
			Name:  o.Customer.Name,
			Email: o.Customer.Email,
			Phone: o.Customer.Phone,
		},
		ShippingAddress:  addressToJSON(o.ShippingAddress),
		BillingAddress:   addressToJSON(o.BillingAddress),
		Pricing: Pricing{
			Subtotal: o.Pricing.Subtotal,
			Tax:      o.Pricing.Tax,
			Shipping: o.Pricing.Shipping,
			Discount: o.Pricing.Discount,
			Total:    o.Pricing.Total,
		},
		Status:           string(o.Status),
		PaymentStatus:    string(o.PaymentStatus),
		PaymentReference: o.PaymentReference,
		PaymentMethod:    o.PaymentMethod,
		Notes:            o.Notes,
		TrackingNumber:   o.TrackingNumber,
		TotalItems:       o.TotalItems(),
		DeliveredAt:      o.DeliveredAt,
		CreatedAt:        o.CreatedAt,
		UpdatedAt:        o.UpdatedAt,
	}
}

func addressToJSON(a entities.Address) Address {
	return Address{
		Street:  a.Street,
		City:    a.City,
		State:   a.State,
		ZipCode: a.ZipCode,
		Country: a.Country,
	}
}

func (r CreateOrderRequest) ToInput(userID string) service.CreateOrderInput {
	items := make([]service.CreateOrderItem, 0, len(r.Items))
	for _, item := range r.Items {
		items = append(items, service.CreateOrderItem{
			ProductID: item.Product,
			Quantity:  item.Quantity,
		})
	}

	in := service.CreateOrderInput{
		UserID: userID,
		Items:  items,
		Customer: entities.CustomerInfo{
			Name:  r.CustomerInfo.Name,
			Email: r.CustomerInfo.Email,
			Phone: r.CustomerInfo.Phone,
		},
		ShippingAddress: addressToEntity(r.ShippingAddress),
		PaymentMethod:   r.PaymentMethod,
		Notes:           r.Notes,
	}
	if r.BillingAddress != nil {
		billing := addressToEntity(*r.BillingAddress)
		in.BillingAddress = &billing
	}
	return in
}

func addressToEntity(a Address) entities.Address {
	country := a.Country
	if country == "" {
		country = "US"
	}
	return entities.Address{
		Street:  a.Street,
		City:    a.City,
		State:   a.State,
		ZipCode: a.ZipCode,
		Country: country,
	}
}

func ordersToJSON(orders []entities.Order) []Order {
	result := make([]Order, 0, len(orders))
	for _, o := range orders {
		result = append(result, OrderEntityToJSON(o))
	}
	return result
}

func paginationToJSON(p service.Pagination) Pagination {
	return Pagination{
		Current: p.Current,
		Pages:   p.Pages,
		Total:   p.Total,
		HasNext: p.HasNext,
		HasPrev: p.HasPrev,
	}
}

func statsToJSON(stats []entities.StatusStat) []StatusStat {
	result := make([]StatusStat, 0, len(stats))
	for _, s := range stats {
		result = append(result, StatusStat{
			Status:      string(s.Status),
			Count:       s.Count,
			TotalAmount: s.TotalAmount,
		})
	}
	return result
}
