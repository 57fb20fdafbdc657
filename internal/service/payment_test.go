package service_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/Yaseeru/glowgroove/internal/entities"
	"github.com/Yaseeru/glowgroove/internal/service"
	mocks "github.com/Yaseeru/glowgroove/internal/service/mocks"
	txMocks "github.com/Yaseeru/glowgroove/pkg/trm/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const callbackURL = "https://shop.example.com/payment/callback"

func pendingOrder() entities.Order {
	return entities.Order{
		ID:               "o1",
		UserID:           "user-1",
		OrderNumber:      "GG-00000001-001",
		Status:           entities.StatusPending,
		PaymentStatus:    entities.PaymentPending,
		PaymentReference: "ref-1",
		Items: []entities.OrderItem{
			{ProductID: "p1", Quantity: 2},
			{ProductID: "p2", Quantity: 1},
		},
		Customer: entities.CustomerInfo{Name: "Jane", Email: "jane@example.com"},
		Pricing:  entities.Pricing{Total: 59.98},
	}
}

func confirmedOrder() entities.Order {
	o := pendingOrder()
	o.Status = entities.StatusConfirmed
	o.PaymentStatus = entities.PaymentCompleted
	o.StockDeducted = true
	return o
}

func cancelledOrder() entities.Order {
	o := pendingOrder()
	o.Status = entities.StatusCancelled
	return o
}

func TestPaymentService_HandleWebhook(t *testing.T) {
	dbError := errors.New("db error")

	chargeSuccess := service.WebhookEvent{
		Event:     "charge.success",
		Reference: "ref-1",
		Amount:    59.98,
		Email:     "jane@example.com",
	}

	testCases := []struct {
		name         string
		event        service.WebhookEvent
		mockBehavior func(orders *mocks.MockOrderRepo, products *mocks.MockProductRepo, dedup *mocks.MockDedup, cache *mocks.MockCache)
		wantErr      error
	}{
		{
			name:  "confirms payment and deducts stock",
			event: chargeSuccess,
			mockBehavior: func(orders *mocks.MockOrderRepo, products *mocks.MockProductRepo, dedup *mocks.MockDedup, cache *mocks.MockCache) {
				dedup.EXPECT().Seen(mock.Anything, "ref-1").Return(false, nil).Once()
				orders.EXPECT().GetOrderByReference(mock.Anything, "ref-1").Return(pendingOrder(), nil).Once()
				orders.EXPECT().ClaimPaymentCompleted(mock.Anything, "o1").Return(true, nil).Once()
				products.EXPECT().DecrementStock(mock.Anything, "p1", 2).Return(nil).Once()
				products.EXPECT().DecrementStock(mock.Anything, "p2", 1).Return(nil).Once()
				cache.EXPECT().Delete("o1").Return().Once()
				dedup.EXPECT().Mark(mock.Anything, "ref-1").Return(nil).Once()
			},
		},
		{
			name:         "ignores other events",
			event:        service.WebhookEvent{Event: "charge.failed", Reference: "ref-1"},
			mockBehavior: func(*mocks.MockOrderRepo, *mocks.MockProductRepo, *mocks.MockDedup, *mocks.MockCache) {},
		},
		{
			name:  "duplicate short-circuits on dedup",
			event: chargeSuccess,
			mockBehavior: func(orders *mocks.MockOrderRepo, products *mocks.MockProductRepo, dedup *mocks.MockDedup, cache *mocks.MockCache) {
				dedup.EXPECT().Seen(mock.Anything, "ref-1").Return(true, nil).Once()
			},
		},
		{
			name:  "duplicate past dedup loses the claim and deducts nothing",
			event: chargeSuccess,
			mockBehavior: func(orders *mocks.MockOrderRepo, products *mocks.MockProductRepo, dedup *mocks.MockDedup, cache *mocks.MockCache) {
				dedup.EXPECT().Seen(mock.Anything, "ref-1").Return(false, nil).Once()
				orders.EXPECT().GetOrderByReference(mock.Anything, "ref-1").Return(pendingOrder(), nil).Once()
				orders.EXPECT().ClaimPaymentCompleted(mock.Anything, "o1").Return(false, nil).Once()
				cache.EXPECT().Delete("o1").Return().Once()
				orders.EXPECT().GetOrderByID(mock.Anything, "o1").Return(confirmedOrder(), nil).Once()
				dedup.EXPECT().Mark(mock.Anything, "ref-1").Return(nil).Once()
			},
		},
		{
			name:  "cancelled before the charge lands is rejected, not resurrected",
			event: chargeSuccess,
			mockBehavior: func(orders *mocks.MockOrderRepo, products *mocks.MockProductRepo, dedup *mocks.MockDedup, cache *mocks.MockCache) {
				dedup.EXPECT().Seen(mock.Anything, "ref-1").Return(false, nil).Once()
				orders.EXPECT().GetOrderByReference(mock.Anything, "ref-1").Return(cancelledOrder(), nil).Once()
				orders.EXPECT().ClaimPaymentCompleted(mock.Anything, "o1").Return(false, nil).Once()
				cache.EXPECT().Delete("o1").Return().Once()
				orders.EXPECT().GetOrderByID(mock.Anything, "o1").Return(cancelledOrder(), nil).Once()
			},
			wantErr: entities.ErrInvalidTransition,
		},
		{
			name:  "dedup outage falls through to the claim",
			event: chargeSuccess,
			mockBehavior: func(orders *mocks.MockOrderRepo, products *mocks.MockProductRepo, dedup *mocks.MockDedup, cache *mocks.MockCache) {
				dedup.EXPECT().Seen(mock.Anything, "ref-1").Return(false, errors.New("redis down")).Once()
				orders.EXPECT().GetOrderByReference(mock.Anything, "ref-1").Return(pendingOrder(), nil).Once()
				orders.EXPECT().ClaimPaymentCompleted(mock.Anything, "o1").Return(true, nil).Once()
				products.EXPECT().DecrementStock(mock.Anything, "p1", 2).Return(nil).Once()
				products.EXPECT().DecrementStock(mock.Anything, "p2", 1).Return(nil).Once()
				cache.EXPECT().Delete("o1").Return().Once()
				dedup.EXPECT().Mark(mock.Anything, "ref-1").Return(nil).Once()
			},
		},
		{
			name:  "unknown reference",
			event: chargeSuccess,
			mockBehavior: func(orders *mocks.MockOrderRepo, products *mocks.MockProductRepo, dedup *mocks.MockDedup, cache *mocks.MockCache) {
				dedup.EXPECT().Seen(mock.Anything, "ref-1").Return(false, nil).Once()
				orders.EXPECT().
					GetOrderByReference(mock.Anything, "ref-1").
					Return(entities.Order{}, entities.ErrOrderNotFound).Once()
			},
			wantErr: entities.ErrOrderNotFound,
		},
		{
			name:  "insufficient stock rolls the claim back",
			event: chargeSuccess,
			mockBehavior: func(orders *mocks.MockOrderRepo, products *mocks.MockProductRepo, dedup *mocks.MockDedup, cache *mocks.MockCache) {
				dedup.EXPECT().Seen(mock.Anything, "ref-1").Return(false, nil).Once()
				orders.EXPECT().GetOrderByReference(mock.Anything, "ref-1").Return(pendingOrder(), nil).Once()
				orders.EXPECT().ClaimPaymentCompleted(mock.Anything, "o1").Return(true, nil).Once()
				products.EXPECT().DecrementStock(mock.Anything, "p1", 2).Return(nil).Once()
				products.EXPECT().DecrementStock(mock.Anything, "p2", 1).Return(entities.ErrInsufficientStock).Once()
			},
			wantErr: entities.ErrInsufficientStock,
		},
		{
			name:  "claim query fails",
			event: chargeSuccess,
			mockBehavior: func(orders *mocks.MockOrderRepo, products *mocks.MockProductRepo, dedup *mocks.MockDedup, cache *mocks.MockCache) {
				dedup.EXPECT().Seen(mock.Anything, "ref-1").Return(false, nil).Once()
				orders.EXPECT().GetOrderByReference(mock.Anything, "ref-1").Return(pendingOrder(), nil).Once()
				orders.EXPECT().ClaimPaymentCompleted(mock.Anything, "o1").Return(false, dbError).Once()
			},
			wantErr: dbError,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			orders := mocks.NewMockOrderRepo(t)
			products := mocks.NewMockProductRepo(t)
			gateway := mocks.NewMockGateway(t)
			dedup := mocks.NewMockDedup(t)
			cache := mocks.NewMockCache(t)
			tx := txMocks.NewMockManager(t)
			logger := slog.New(slog.NewTextHandler(io.Discard, nil))

			passthroughTx(tx)
			tc.mockBehavior(orders, products, dedup, cache)

			svc := service.NewPaymentService(logger, tx, orders, products, gateway, dedup, cache, callbackURL)

			err := svc.HandleWebhook(context.Background(), tc.event)
			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestPaymentService_VerifyPayment(t *testing.T) {
	owner := entities.Principal{ID: "user-1", Role: entities.RoleUser}
	confirmed := confirmedOrder()

	testCases := []struct {
		name         string
		principal    entities.Principal
		mockBehavior func(orders *mocks.MockOrderRepo, products *mocks.MockProductRepo, gateway *mocks.MockGateway, cache *mocks.MockCache)
		wantErr      error
	}{
		{
			name:      "success confirms and returns updated order",
			principal: owner,
			mockBehavior: func(orders *mocks.MockOrderRepo, products *mocks.MockProductRepo, gateway *mocks.MockGateway, cache *mocks.MockCache) {
				gateway.EXPECT().
					Verify(mock.Anything, "ref-1").
					Return(service.PaymentVerification{Status: "success", Amount: 59.98}, nil).Once()
				orders.EXPECT().GetOrderByReference(mock.Anything, "ref-1").Return(pendingOrder(), nil).Once()
				orders.EXPECT().ClaimPaymentCompleted(mock.Anything, "o1").Return(true, nil).Once()
				products.EXPECT().DecrementStock(mock.Anything, "p1", 2).Return(nil).Once()
				products.EXPECT().DecrementStock(mock.Anything, "p2", 1).Return(nil).Once()
				cache.EXPECT().Delete("o1").Return().Once()
				orders.EXPECT().GetOrderByID(mock.Anything, "o1").Return(confirmed, nil).Once()
			},
		},
		{
			name:      "gateway retried then succeeds",
			principal: owner,
			mockBehavior: func(orders *mocks.MockOrderRepo, products *mocks.MockProductRepo, gateway *mocks.MockGateway, cache *mocks.MockCache) {
				gateway.EXPECT().
					Verify(mock.Anything, "ref-1").
					Return(service.PaymentVerification{}, errors.New("timeout")).Once()
				gateway.EXPECT().
					Verify(mock.Anything, "ref-1").
					Return(service.PaymentVerification{Status: "success", Amount: 59.98}, nil).Once()
				orders.EXPECT().GetOrderByReference(mock.Anything, "ref-1").Return(confirmed, nil).Once()
				orders.EXPECT().GetOrderByID(mock.Anything, "o1").Return(confirmed, nil).Once()
			},
		},
		{
			name:      "transaction not successful",
			principal: owner,
			mockBehavior: func(orders *mocks.MockOrderRepo, products *mocks.MockProductRepo, gateway *mocks.MockGateway, cache *mocks.MockCache) {
				gateway.EXPECT().
					Verify(mock.Anything, "ref-1").
					Return(service.PaymentVerification{Status: "abandoned"}, nil).Once()
			},
			wantErr: entities.ErrPaymentNotCompleted,
		},
		{
			name:      "gateway unavailable after retries",
			principal: owner,
			mockBehavior: func(orders *mocks.MockOrderRepo, products *mocks.MockProductRepo, gateway *mocks.MockGateway, cache *mocks.MockCache) {
				gateway.EXPECT().
					Verify(mock.Anything, "ref-1").
					Return(service.PaymentVerification{}, errors.New("timeout")).Times(3)
			},
			wantErr: entities.ErrGatewayUnavailable,
		},
		{
			name:      "expired deadline is not retried",
			principal: owner,
			mockBehavior: func(orders *mocks.MockOrderRepo, products *mocks.MockProductRepo, gateway *mocks.MockGateway, cache *mocks.MockCache) {
				gateway.EXPECT().
					Verify(mock.Anything, "ref-1").
					Return(service.PaymentVerification{}, context.DeadlineExceeded).Once()
			},
			wantErr: entities.ErrGatewayUnavailable,
		},
		{
			name:      "access denied",
			principal: entities.Principal{ID: "user-2", Role: entities.RoleUser},
			mockBehavior: func(orders *mocks.MockOrderRepo, products *mocks.MockProductRepo, gateway *mocks.MockGateway, cache *mocks.MockCache) {
				gateway.EXPECT().
					Verify(mock.Anything, "ref-1").
					Return(service.PaymentVerification{Status: "success"}, nil).Once()
				orders.EXPECT().GetOrderByReference(mock.Anything, "ref-1").Return(pendingOrder(), nil).Once()
			},
			wantErr: entities.ErrAccessDenied,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			orders := mocks.NewMockOrderRepo(t)
			products := mocks.NewMockProductRepo(t)
			gateway := mocks.NewMockGateway(t)
			dedup := mocks.NewMockDedup(t)
			cache := mocks.NewMockCache(t)
			tx := txMocks.NewMockManager(t)
			logger := slog.New(slog.NewTextHandler(io.Discard, nil))

			passthroughTx(tx)
			tc.mockBehavior(orders, products, gateway, cache)

			svc := service.NewPaymentService(logger, tx, orders, products, gateway, dedup, cache, callbackURL)

			got, err := svc.VerifyPayment(context.Background(), tc.principal, "ref-1")
			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, entities.PaymentCompleted, got.PaymentStatus)
			assert.True(t, got.StockDeducted)
		})
	}
}

func TestPaymentService_InitializePayment(t *testing.T) {
	owner := entities.Principal{ID: "user-1", Role: entities.RoleUser}

	testCases := []struct {
		name         string
		principal    entities.Principal
		mockBehavior func(orders *mocks.MockOrderRepo, gateway *mocks.MockGateway, cache *mocks.MockCache)
		wantErr      error
		want         service.PaymentInit
	}{
		{
			name:      "success converts total to subunits",
			principal: owner,
			mockBehavior: func(orders *mocks.MockOrderRepo, gateway *mocks.MockGateway, cache *mocks.MockCache) {
				orders.EXPECT().GetOrderByID(mock.Anything, "o1").Return(pendingOrder(), nil).Once()
				gateway.EXPECT().
					Initialize(mock.Anything, int64(5998), "jane@example.com", callbackURL).
					Return(service.PaymentInit{Reference: "ref-1", AuthorizationURL: "https://pay.example.com/x"}, nil).Once()
				orders.EXPECT().SetPaymentReference(mock.Anything, "o1", "ref-1").Return(nil).Once()
				cache.EXPECT().Delete("o1").Return().Once()
			},
			want: service.PaymentInit{Reference: "ref-1", AuthorizationURL: "https://pay.example.com/x"},
		},
		{
			name:      "already paid",
			principal: owner,
			mockBehavior: func(orders *mocks.MockOrderRepo, gateway *mocks.MockGateway, cache *mocks.MockCache) {
				paid := pendingOrder()
				paid.PaymentStatus = entities.PaymentCompleted
				orders.EXPECT().GetOrderByID(mock.Anything, "o1").Return(paid, nil).Once()
			},
			wantErr: entities.ErrInvalidTransition,
		},
		{
			name:      "gateway down",
			principal: owner,
			mockBehavior: func(orders *mocks.MockOrderRepo, gateway *mocks.MockGateway, cache *mocks.MockCache) {
				orders.EXPECT().GetOrderByID(mock.Anything, "o1").Return(pendingOrder(), nil).Once()
				gateway.EXPECT().
					Initialize(mock.Anything, int64(5998), "jane@example.com", callbackURL).
					Return(service.PaymentInit{}, errors.New("503")).Once()
			},
			wantErr: entities.ErrGatewayUnavailable,
		},
		{
			name:      "access denied",
			principal: entities.Principal{ID: "user-2", Role: entities.RoleUser},
			mockBehavior: func(orders *mocks.MockOrderRepo, gateway *mocks.MockGateway, cache *mocks.MockCache) {
				orders.EXPECT().GetOrderByID(mock.Anything, "o1").Return(pendingOrder(), nil).Once()
			},
			wantErr: entities.ErrAccessDenied,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			orders := mocks.NewMockOrderRepo(t)
			products := mocks.NewMockProductRepo(t)
			gateway := mocks.NewMockGateway(t)
			dedup := mocks.NewMockDedup(t)
			cache := mocks.NewMockCache(t)
			tx := txMocks.NewMockManager(t)
			logger := slog.New(slog.NewTextHandler(io.Discard, nil))

			tc.mockBehavior(orders, gateway, cache)

			svc := service.NewPaymentService(logger, tx, orders, products, gateway, dedup, cache, callbackURL)

			got, err := svc.InitializePayment(context.Background(), tc.principal, "o1")
			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestPaymentService_MarkPaymentSuccess(t *testing.T) {
	owner := entities.Principal{ID: "user-1", Role: entities.RoleUser}
	confirmed := confirmedOrder()

	t.Run("first call claims and deducts", func(t *testing.T) {
		orders := mocks.NewMockOrderRepo(t)
		products := mocks.NewMockProductRepo(t)
		gateway := mocks.NewMockGateway(t)
		dedup := mocks.NewMockDedup(t)
		cache := mocks.NewMockCache(t)
		tx := txMocks.NewMockManager(t)
		logger := slog.New(slog.NewTextHandler(io.Discard, nil))

		passthroughTx(tx)
		orders.EXPECT().GetOrderByID(mock.Anything, "o1").Return(pendingOrder(), nil).Once()
		orders.EXPECT().ClaimPaymentCompleted(mock.Anything, "o1").Return(true, nil).Once()
		products.EXPECT().DecrementStock(mock.Anything, "p1", 2).Return(nil).Once()
		products.EXPECT().DecrementStock(mock.Anything, "p2", 1).Return(nil).Once()
		cache.EXPECT().Delete("o1").Return().Once()
		orders.EXPECT().GetOrderByID(mock.Anything, "o1").Return(confirmed, nil).Once()

		svc := service.NewPaymentService(logger, tx, orders, products, gateway, dedup, cache, callbackURL)

		got, err := svc.MarkPaymentSuccess(context.Background(), owner, "o1")
		require.NoError(t, err)
		assert.Equal(t, entities.PaymentCompleted, got.PaymentStatus)
	})

	t.Run("cancelled order rejects confirmation", func(t *testing.T) {
		orders := mocks.NewMockOrderRepo(t)
		products := mocks.NewMockProductRepo(t)
		gateway := mocks.NewMockGateway(t)
		dedup := mocks.NewMockDedup(t)
		cache := mocks.NewMockCache(t)
		tx := txMocks.NewMockManager(t)
		logger := slog.New(slog.NewTextHandler(io.Discard, nil))

		passthroughTx(tx)
		orders.EXPECT().GetOrderByID(mock.Anything, "o1").Return(cancelledOrder(), nil).Once()
		orders.EXPECT().ClaimPaymentCompleted(mock.Anything, "o1").Return(false, nil).Once()
		cache.EXPECT().Delete("o1").Return().Once()
		orders.EXPECT().GetOrderByID(mock.Anything, "o1").Return(cancelledOrder(), nil).Once()

		svc := service.NewPaymentService(logger, tx, orders, products, gateway, dedup, cache, callbackURL)

		_, err := svc.MarkPaymentSuccess(context.Background(), owner, "o1")
		assert.ErrorIs(t, err, entities.ErrInvalidTransition)
		products.AssertNotCalled(t, "DecrementStock", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("repeat call is a no-op", func(t *testing.T) {
		orders := mocks.NewMockOrderRepo(t)
		products := mocks.NewMockProductRepo(t)
		gateway := mocks.NewMockGateway(t)
		dedup := mocks.NewMockDedup(t)
		cache := mocks.NewMockCache(t)
		tx := txMocks.NewMockManager(t)
		logger := slog.New(slog.NewTextHandler(io.Discard, nil))

		orders.EXPECT().GetOrderByID(mock.Anything, "o1").Return(confirmed, nil).Twice()

		svc := service.NewPaymentService(logger, tx, orders, products, gateway, dedup, cache, callbackURL)

		got, err := svc.MarkPaymentSuccess(context.Background(), owner, "o1")
		require.NoError(t, err)
		assert.Equal(t, entities.PaymentCompleted, got.PaymentStatus)
	})
}
