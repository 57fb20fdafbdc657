package service

import (
	"context"

	"github.com/Yaseeru/glowgroove/internal/entities"
)

type OrderRepo interface {
	CreateOrder(ctx context.Context, o entities.Order) error
	GetOrderByID(ctx context.Context, orderID string) (entities.Order, error)
	GetOrderByReference(ctx context.Context, reference string) (entities.Order, error)
	ListOrders(ctx context.Context, f entities.OrderFilter) ([]entities.Order, int, error)
	StatusStats(ctx context.Context) ([]entities.StatusStat, error)

	// Conditional writes: the guard and the mutation are one statement.
	ClaimPaymentCompleted(ctx context.Context, orderID string) (bool, error)
	ClaimCancelled(ctx context.Context, orderID string) (claimed bool, stockDeducted bool, err error)
	ClearStockDeducted(ctx context.Context, orderID string) error

	SetPaymentReference(ctx context.Context, orderID, reference string) error
	UpdateStatus(ctx context.Context, orderID string, upd entities.StatusUpdate) error
}

type ProductRepo interface {
	GetByIDs(ctx context.Context, productIDs []string) ([]entities.Product, error)
	DecrementStock(ctx context.Context, productID string, quantity int) error
	IncrementStock(ctx context.Context, productID string, quantity int) error
}

// Notifier delivers customer email, best effort. Failures are logged and
// never affect order, payment or stock state.
type Notifier interface {
	Notify(ctx context.Context, recipient, subject, body string) error
}

type Cache interface {
	Get(key string) ([]byte, bool)
	Set(key string, value []byte)
	Delete(key string)
}

// Dedup is a fast-path guard for repeated webhook deliveries. It is
// advisory: correctness comes from the conditional claim in OrderRepo.
type Dedup interface {
	Seen(ctx context.Context, key string) (bool, error)
	Mark(ctx context.Context, key string) error
}

type PaymentInit struct {
	Reference        string
	AuthorizationURL string
	AccessCode       string
}

type PaymentVerification struct {
	Status string
	Amount float64
}

// Gateway is the external payment provider. Calls are time-bounded by the
// implementation.
type Gateway interface {
	Initialize(ctx context.Context, amountSubunits int64, email, callbackURL string) (PaymentInit, error)
	Verify(ctx context.Context, reference string) (PaymentVerification, error)
}
