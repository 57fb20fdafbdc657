package service

import (
	"context"
	"fmt"
	"log/slog"
	"math"
	"time"

	"github.com/Yaseeru/glowgroove/internal/entities"
	"github.com/Yaseeru/glowgroove/pkg/trm"
	"github.com/Yaseeru/glowgroove/pkg/utils"
)

// WebhookEvent is a gateway push, already signature-verified by the
// transport layer.
type WebhookEvent struct {
	Event     string
	Reference string
	Amount    float64
	Email     string
}

const eventChargeSuccess = "charge.success"

type paymentService struct {
	logger    *slog.Logger
	txManager trm.Manager
	orders    OrderRepo
	products  ProductRepo
	gateway   Gateway
	dedup     Dedup
	cache     Cache

	callbackURL string
}

func NewPaymentService(
	logger *slog.Logger,
	txManager trm.Manager,
	orders OrderRepo,
	products ProductRepo,
	gateway Gateway,
	dedup Dedup,
	cache Cache,
	callbackURL string,
) *paymentService {
	return &paymentService{
		logger:      logger.With(slog.String("service", "payment")),
		txManager:   txManager,
		orders:      orders,
		products:    products,
		gateway:     gateway,
		dedup:       dedup,
		cache:       cache,
		callbackURL: callbackURL,
	}
}

// InitializePayment starts a gateway transaction for the order's frozen
// total and stores the returned reference, the idempotency key every
// later confirmation resolves through.
func (s *paymentService) InitializePayment(ctx context.Context, principal entities.Principal, orderID string) (PaymentInit, error) {
	order, err := s.orders.GetOrderByID(ctx, orderID)
	if err != nil {
		return PaymentInit{}, err
	}
	if !principal.CanAccess(order.UserID) {
		return PaymentInit{}, entities.ErrAccessDenied
	}
	if order.PaymentStatus != entities.PaymentPending {
		return PaymentInit{}, fmt.Errorf("payment already %s: %w", order.PaymentStatus, entities.ErrInvalidTransition)
	}

	init, err := s.gateway.Initialize(ctx, toSubunits(order.Pricing.Total), order.Customer.Email, s.callbackURL)
	if err != nil {
		return PaymentInit{}, fmt.Errorf("%w: %v", entities.ErrGatewayUnavailable, err)
	}

	if err := s.orders.SetPaymentReference(ctx, orderID, init.Reference); err != nil {
		return PaymentInit{}, err
	}
	s.cache.Delete(orderID)

	s.logger.InfoContext(ctx, "payment initialized",
		slog.String("order_id", orderID),
		slog.String("reference", init.Reference),
	)
	return init, nil
}

// HandleWebhook processes a gateway push. Anything but a successful
// charge is ignored; duplicates short-circuit on the dedup store and are
// in any case absorbed by the conditional claim.
func (s *paymentService) HandleWebhook(ctx context.Context, event WebhookEvent) error {
	if event.Event != eventChargeSuccess {
		s.logger.DebugContext(ctx, "ignoring webhook event", slog.String("event", event.Event))
		return nil
	}

	if seen, err := s.dedup.Seen(ctx, event.Reference); err != nil {
		s.logger.WarnContext(ctx, "dedup check failed, falling through to claim", slog.Any("error", err))
	} else if seen {
		return nil
	}

	order, err := s.orders.GetOrderByReference(ctx, event.Reference)
	if err != nil {
		return err
	}

	if err := s.confirm(ctx, order); err != nil {
		return err
	}

	if err := s.dedup.Mark(ctx, event.Reference); err != nil {
		s.logger.WarnContext(ctx, "failed to mark webhook as seen", slog.Any("error", err))
	}
	return nil
}

// VerifyPayment pulls the transaction state from the gateway and, on a
// successful charge, runs the same confirmation the webhook would.
func (s *paymentService) VerifyPayment(ctx context.Context, principal entities.Principal, reference string) (entities.Order, error) {
	var verification PaymentVerification
	err := utils.Retry(utils.RetryConfig{
		MaxAttempts:  3,
		InitialDelay: 200 * time.Millisecond,
	}, func() error {
		var err error
		verification, err = s.gateway.Verify(ctx, reference)
		return err
	}, context.Canceled, context.DeadlineExceeded)
	if err != nil {
		return entities.Order{}, fmt.Errorf("%w: %v", entities.ErrGatewayUnavailable, err)
	}

	if verification.Status != "success" {
		return entities.Order{}, fmt.Errorf("transaction %s is %q: %w", reference, verification.Status, entities.ErrPaymentNotCompleted)
	}

	order, err := s.orders.GetOrderByReference(ctx, reference)
	if err != nil {
		return entities.Order{}, err
	}
	if !principal.CanAccess(order.UserID) {
		return entities.Order{}, entities.ErrAccessDenied
	}

	if err := s.confirm(ctx, order); err != nil {
		return entities.Order{}, err
	}
	return s.orders.GetOrderByID(ctx, order.ID)
}

// MarkPaymentSuccess is the internal confirmation entry point keyed by
// order id, used when the flow bypasses the gateway's async notification.
func (s *paymentService) MarkPaymentSuccess(ctx context.Context, principal entities.Principal, orderID string) (entities.Order, error) {
	order, err := s.orders.GetOrderByID(ctx, orderID)
	if err != nil {
		return entities.Order{}, err
	}
	if !principal.CanAccess(order.UserID) {
		return entities.Order{}, entities.ErrAccessDenied
	}

	if err := s.confirm(ctx, order); err != nil {
		return entities.Order{}, err
	}
	return s.orders.GetOrderByID(ctx, orderID)
}

// confirm is the single guarded confirmation all three entry points
// converge on. Inside one transaction it claims the pending payment and
// decrements stock per line item; a failed decrement rolls the whole
// attempt back so no partial deduction survives. A lost claim is a no-op
// when the payment is already completed and a rejection when the order
// left the confirmable states, e.g. it was cancelled first.
func (s *paymentService) confirm(ctx context.Context, order entities.Order) error {
	if order.PaymentStatus == entities.PaymentCompleted {
		return nil
	}

	var claimed bool
	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		var err error
		claimed, err = s.orders.ClaimPaymentCompleted(ctx, order.ID)
		if err != nil {
			return err
		}
		if !claimed {
			return nil
		}
		for _, item := range order.Items {
			if err := s.products.DecrementStock(ctx, item.ProductID, item.Quantity); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return err
	}

	s.cache.Delete(order.ID)

	if !claimed {
		cur, err := s.orders.GetOrderByID(ctx, order.ID)
		if err != nil {
			return err
		}
		if cur.PaymentStatus != entities.PaymentCompleted {
			return fmt.Errorf("order is %s, payment %s: %w",
				cur.Status, cur.PaymentStatus, entities.ErrInvalidTransition)
		}
		s.logger.DebugContext(ctx, "payment already processed", slog.String("order_id", order.ID))
		return nil
	}

	s.logger.InfoContext(ctx, "payment confirmed, stock deducted",
		slog.String("order_id", order.ID),
		slog.Int("items", len(order.Items)),
	)
	return nil
}

func toSubunits(amount float64) int64 {
	return int64(math.Round(amount * 100))
}
