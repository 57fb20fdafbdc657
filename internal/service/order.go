package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/Yaseeru/glowgroove/internal/entities"
	"github.com/Yaseeru/glowgroove/internal/pricing"
	"github.com/Yaseeru/glowgroove/pkg/trm"

	"github.com/google/uuid"
)

const notifyTimeout = 10 * time.Second

type CreateOrderItem struct {
	ProductID string
	Quantity  int
}

type CreateOrderInput struct {
	UserID          string
	Items           []CreateOrderItem
	Customer        entities.CustomerInfo
	ShippingAddress entities.Address
	BillingAddress  *entities.Address
	PaymentMethod   string
	Notes           string
}

type ListFilter struct {
	Status entities.Status
	Search string
	Page   int
	Limit  int
}

type Pagination struct {
	Current int
	Pages   int
	Total   int
	HasNext bool
	HasPrev bool
}

type UpdateStatusInput struct {
	Status         entities.Status
	PaymentStatus  entities.PaymentStatus
	TrackingNumber string
	Notes          string
}

type orderService struct {
	logger    *slog.Logger
	txManager trm.Manager
	orders    OrderRepo
	products  ProductRepo
	notifier  Notifier
	cache     Cache
	calc      pricing.Calculator
}

func NewOrderService(
	logger *slog.Logger,
	txManager trm.Manager,
	orders OrderRepo,
	products ProductRepo,
	notifier Notifier,
	cache Cache,
	calc pricing.Calculator,
) *orderService {
	return &orderService{
		logger:    logger.With(slog.String("service", "order")),
		txManager: txManager,
		orders:    orders,
		products:  products,
		notifier:  notifier,
		cache:     cache,
		calc:      calc,
	}
}

// CreateOrder validates the cart against the current catalog, freezes the
// pricing snapshot and persists the order in pending/pending. Stock is
// only checked here (advisory reservation), never mutated: deduction
// happens at payment confirmation.
func (s *orderService) CreateOrder(ctx context.Context, in CreateOrderInput) (entities.Order, error) {
	if len(in.Items) == 0 {
		return entities.Order{}, entities.ErrEmptyOrder
	}

	productIDs := make([]string, 0, len(in.Items))
	for _, item := range in.Items {
		productIDs = append(productIDs, item.ProductID)
	}

	products, err := s.products.GetByIDs(ctx, productIDs)
	if err != nil {
		return entities.Order{}, fmt.Errorf("failed to load products: %w", err)
	}
	productMap := make(map[string]entities.Product, len(products))
	for _, p := range products {
		productMap[p.ID] = p
	}

	items := make([]entities.OrderItem, 0, len(in.Items))
	priced := make([]pricing.Item, 0, len(in.Items))
	for _, item := range in.Items {
		product, ok := productMap[item.ProductID]
		if !ok {
			return entities.Order{}, fmt.Errorf("%w: %s", entities.ErrProductNotFound, item.ProductID)
		}
		if !product.IsActive {
			return entities.Order{}, fmt.Errorf("%w: %s", entities.ErrProductInactive, product.Name)
		}
		if product.Stock < item.Quantity {
			return entities.Order{}, fmt.Errorf("%w for %s: available %d", entities.ErrInsufficientStock, product.Name, product.Stock)
		}

		items = append(items, entities.OrderItem{
			ID:        uuid.NewString(),
			ProductID: product.ID,
			Name:      product.Name,
			Price:     product.Price,
			Quantity:  item.Quantity,
			Image:     product.Image,
		})
		priced = append(priced, pricing.Item{UnitPrice: product.Price, Quantity: item.Quantity})
	}

	billing := in.ShippingAddress
	if in.BillingAddress != nil {
		billing = *in.BillingAddress
	}

	paymentMethod := in.PaymentMethod
	if paymentMethod == "" {
		paymentMethod = "credit_card"
	}

	now := time.Now()
	order := entities.Order{
		ID:              uuid.NewString(),
		OrderNumber:     entities.NewOrderNumber(),
		UserID:          in.UserID,
		Items:           items,
		Customer:        in.Customer,
		ShippingAddress: in.ShippingAddress,
		BillingAddress:  billing,
		Pricing:         s.calc.Calculate(priced, 0),
		Status:          entities.StatusPending,
		PaymentStatus:   entities.PaymentPending,
		PaymentMethod:   paymentMethod,
		Notes:           in.Notes,
		CreatedAt:       now,
		UpdatedAt:       now,
	}

	err = s.txManager.Do(ctx, func(ctx context.Context) error {
		return s.orders.CreateOrder(ctx, order)
	})
	if err != nil {
		return entities.Order{}, fmt.Errorf("failed to create order: %w", err)
	}

	s.logger.InfoContext(ctx, "order created",
		slog.String("order_id", order.ID),
		slog.String("order_number", order.OrderNumber),
		slog.Float64("total", order.Pricing.Total),
	)

	s.dispatch(order.Customer.Email,
		"GlowGroove: Order Confirmation",
		fmt.Sprintf("Hi %s, thank you for your order %s! We'll notify you as soon as it's shipped.",
			order.Customer.Name, order.OrderNumber),
	)

	return order, nil
}

func (s *orderService) GetOrder(ctx context.Context, principal entities.Principal, orderID string) (entities.Order, error) {
	if data, ok := s.cache.Get(orderID); ok {
		var order entities.Order
		if err := order.Unmarshal(data); err == nil {
			if !principal.CanAccess(order.UserID) {
				return entities.Order{}, entities.ErrAccessDenied
			}
			return order, nil
		}
		s.cache.Delete(orderID)
	}

	order, err := s.orders.GetOrderByID(ctx, orderID)
	if err != nil {
		return entities.Order{}, err
	}
	if !principal.CanAccess(order.UserID) {
		return entities.Order{}, entities.ErrAccessDenied
	}

	if data, err := order.Marshal(); err == nil {
		s.cache.Set(orderID, data)
	}
	return order, nil
}

func (s *orderService) ListOrders(ctx context.Context, userID string, f ListFilter) ([]entities.Order, Pagination, error) {
	filter, page, limit := normalizeFilter(f, 10)
	filter.UserID = userID

	orders, total, err := s.orders.ListOrders(ctx, filter)
	if err != nil {
		return nil, Pagination{}, err
	}
	return orders, paginate(page, limit, total), nil
}

func (s *orderService) ListAllOrders(ctx context.Context, f ListFilter) ([]entities.Order, Pagination, []entities.StatusStat, error) {
	filter, page, limit := normalizeFilter(f, 20)

	orders, total, err := s.orders.ListOrders(ctx, filter)
	if err != nil {
		return nil, Pagination{}, nil, err
	}
	stats, err := s.orders.StatusStats(ctx)
	if err != nil {
		return nil, Pagination{}, nil, err
	}
	return orders, paginate(page, limit, total), stats, nil
}

// CancelOrder cancels an order the principal owns and restores stock if a
// confirmation had deducted it. The claim and the restock run in one
// transaction, so a racing confirmation either commits fully before the
// cancel (restock happens) or loses the row lock and finds the order
// cancelled (its claim affects zero rows).
func (s *orderService) CancelOrder(ctx context.Context, principal entities.Principal, orderID string) (entities.Order, error) {
	order, err := s.orders.GetOrderByID(ctx, orderID)
	if err != nil {
		return entities.Order{}, err
	}
	if !principal.CanAccess(order.UserID) {
		return entities.Order{}, entities.ErrAccessDenied
	}

	err = s.txManager.Do(ctx, func(ctx context.Context) error {
		claimed, stockDeducted, err := s.orders.ClaimCancelled(ctx, orderID)
		if err != nil {
			return err
		}
		if !claimed {
			return fmt.Errorf("cannot cancel order with status %q: %w", order.Status, entities.ErrInvalidTransition)
		}
		if !stockDeducted {
			return nil
		}
		for _, item := range order.Items {
			if err := s.products.IncrementStock(ctx, item.ProductID, item.Quantity); err != nil {
				return err
			}
		}
		return s.orders.ClearStockDeducted(ctx, orderID)
	})
	if err != nil {
		return entities.Order{}, err
	}

	s.cache.Delete(orderID)
	s.logger.InfoContext(ctx, "order cancelled", slog.String("order_id", orderID))

	s.dispatch(order.Customer.Email,
		fmt.Sprintf("Order Cancelled: #%s", order.OrderNumber),
		fmt.Sprintf("We've successfully cancelled your order %s. We hope to serve you again soon!", order.OrderNumber),
	)

	order.Status = entities.StatusCancelled
	order.StockDeducted = false
	return order, nil
}

// UpdateOrderStatus records admin logistics metadata. Transitions are
// validated against the lifecycle table; this path performs no stock
// mutation.
func (s *orderService) UpdateOrderStatus(ctx context.Context, orderID string, in UpdateStatusInput) (entities.Order, error) {
	order, err := s.orders.GetOrderByID(ctx, orderID)
	if err != nil {
		return entities.Order{}, err
	}

	upd := entities.StatusUpdate{
		TrackingNumber: in.TrackingNumber,
		Notes:          in.Notes,
	}

	if in.Status != "" && in.Status != order.Status {
		if !in.Status.Valid() || !order.Status.CanTransitionTo(in.Status) {
			return entities.Order{}, fmt.Errorf("%q -> %q: %w", order.Status, in.Status, entities.ErrInvalidTransition)
		}
		upd.Status = in.Status
		upd.PrevStatus = order.Status
		if in.Status == entities.StatusDelivered && order.DeliveredAt == nil {
			now := time.Now()
			upd.DeliveredAt = &now
		}
	}

	if in.PaymentStatus != "" && in.PaymentStatus != order.PaymentStatus {
		if !in.PaymentStatus.Valid() || !order.PaymentStatus.CanTransitionTo(in.PaymentStatus) {
			return entities.Order{}, fmt.Errorf("payment %q -> %q: %w", order.PaymentStatus, in.PaymentStatus, entities.ErrInvalidTransition)
		}
		upd.PaymentStatus = in.PaymentStatus
		upd.PrevPaymentStatus = order.PaymentStatus
	}

	if err := s.orders.UpdateStatus(ctx, orderID, upd); err != nil {
		return entities.Order{}, err
	}
	s.cache.Delete(orderID)

	if upd.Status != "" {
		order.Status = upd.Status
	}
	if upd.PaymentStatus != "" {
		order.PaymentStatus = upd.PaymentStatus
	}
	if upd.TrackingNumber != "" {
		order.TrackingNumber = upd.TrackingNumber
	}
	if upd.Notes != "" {
		order.Notes = upd.Notes
	}
	if upd.DeliveredAt != nil {
		order.DeliveredAt = upd.DeliveredAt
	}

	if upd.Status != "" && upd.Status.NotifiesCustomer() {
		body := fmt.Sprintf("Your GlowGroove order %s has been updated. Status: %s.", order.OrderNumber, order.Status)
		if order.TrackingNumber != "" {
			body += fmt.Sprintf(" Tracking: %s.", order.TrackingNumber)
		}
		s.dispatch(order.Customer.Email,
			fmt.Sprintf("Order Status Updated: %s", order.Status),
			body,
		)
	}

	return order, nil
}

// dispatch sends a notification without blocking or failing the caller.
// The context is detached so request cancellation cannot abort delivery.
func (s *orderService) dispatch(recipient, subject, body string) {
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), notifyTimeout)
		defer cancel()
		if err := s.notifier.Notify(ctx, recipient, subject, body); err != nil {
			s.logger.Error("failed to send notification",
				slog.String("recipient", recipient),
				slog.String("subject", subject),
				slog.Any("error", err),
			)
		}
	}()
}

func normalizeFilter(f ListFilter, defaultLimit int) (entities.OrderFilter, int, int) {
	page := f.Page
	if page < 1 {
		page = 1
	}
	limit := f.Limit
	if limit < 1 {
		limit = defaultLimit
	}
	return entities.OrderFilter{
		Status: f.Status,
		Search: f.Search,
		Limit:  limit,
		Offset: (page - 1) * limit,
	}, page, limit
}

func paginate(page, limit, total int) Pagination {
	pages := (total + limit - 1) / limit
	return Pagination{
		Current: page,
		Pages:   pages,
		Total:   total,
		HasNext: page < pages,
		HasPrev: page > 1,
	}
}
