package handler_test

import (
	"crypto/hmac"
	"crypto/sha512"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/Yaseeru/glowgroove/internal/entities"
	"github.com/Yaseeru/glowgroove/internal/handler"
	mocks "github.com/Yaseeru/glowgroove/internal/handler/mocks"
	"github.com/Yaseeru/glowgroove/internal/middleware"
	"github.com/Yaseeru/glowgroove/internal/service"
	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const webhookSecret = "sk_test_secret"

func setupRouter(t *testing.T) (*mocks.MockOrderService, *mocks.MockPaymentService, *chi.Mux) {
	t.Helper()

	orderSvc := mocks.NewMockOrderService(t)
	paymentSvc := mocks.NewMockPaymentService(t)

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	h := handler.NewHTTPHandler(logger, orderSvc, paymentSvc, webhookSecret)

	r := chi.NewRouter()
	r.Use(middleware.Principal)
	h.Init(r)

	return orderSvc, paymentSvc, r
}

func asUser(req *http.Request, userID string) *http.Request {
	req.Header.Set("X-User-Id", userID)
	req.Header.Set("X-User-Role", "user")
	return req
}

func sign(body string) string {
	mac := hmac.New(sha512.New, []byte(webhookSecret))
	mac.Write([]byte(body))
	return hex.EncodeToString(mac.Sum(nil))
}

func TestHTTPHandler_CreateOrder(t *testing.T) {
	validBody := `{
		"items": [{"product": "p1", "quantity": 2}],
		"customerInfo": {"name": "Jane", "email": "jane@example.com", "phone": "+123"},
		"shippingAddress": {"street": "1 Main St", "city": "Lagos", "state": "LA", "zipCode": "100001"}
	}`

	testCases := []struct {
		name         string
		body         string
		authed       bool
		mockBehavior func(svc *mocks.MockOrderService)
		wantStatus   int
		wantBody     string
	}{
		{
			name:   "success",
			body:   validBody,
			authed: true,
			mockBehavior: func(svc *mocks.MockOrderService) {
				svc.EXPECT().
					CreateOrder(mock.Anything, mock.Anything).
					Return(entities.Order{ID: "o1", OrderNumber: "GG-00000001-001", UserID: "user-1"}, nil).Once()
			},
			wantStatus: http.StatusCreated,
			wantBody:   `"orderNumber":"GG-00000001-001"`,
		},
		{
			name:         "unauthenticated",
			body:         validBody,
			authed:       false,
			mockBehavior: func(svc *mocks.MockOrderService) {},
			wantStatus:   http.StatusUnauthorized,
			wantBody:     `"authentication required"`,
		},
		{
			name:         "missing items",
			body:         `{"customerInfo": {"name": "Jane", "email": "jane@example.com", "phone": "+123"}, "shippingAddress": {"street": "1 Main St", "city": "Lagos", "state": "LA", "zipCode": "100001"}}`,
			authed:       true,
			mockBehavior: func(svc *mocks.MockOrderService) {},
			wantStatus:   http.StatusBadRequest,
		},
		{
			name:   "insufficient stock",
			body:   validBody,
			authed: true,
			mockBehavior: func(svc *mocks.MockOrderService) {
				svc.EXPECT().
					CreateOrder(mock.Anything, mock.Anything).
					Return(entities.Order{}, entities.ErrInsufficientStock).Once()
			},
			wantStatus: http.StatusBadRequest,
		},
		{
			name:   "unknown product",
			body:   validBody,
			authed: true,
			mockBehavior: func(svc *mocks.MockOrderService) {
				svc.EXPECT().
					CreateOrder(mock.Anything, mock.Anything).
					Return(entities.Order{}, entities.ErrProductNotFound).Once()
			},
			wantStatus: http.StatusNotFound,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			orderSvc, _, r := setupRouter(t)
			tc.mockBehavior(orderSvc)

			req := httptest.NewRequest(http.MethodPost, "/api/orders", strings.NewReader(tc.body))
			if tc.authed {
				req = asUser(req, "user-1")
			}
			rr := httptest.NewRecorder()
			r.ServeHTTP(rr, req)

			assert.Equal(t, tc.wantStatus, rr.Code)
			if tc.wantBody != "" {
				assert.Contains(t, rr.Body.String(), tc.wantBody)
			}
		})
	}
}

func TestHTTPHandler_GetOrder(t *testing.T) {
	testCases := []struct {
		name         string
		mockBehavior func(svc *mocks.MockOrderService)
		wantStatus   int
		wantBody     string
	}{
		{
			name: "success",
			mockBehavior: func(svc *mocks.MockOrderService) {
				svc.EXPECT().
					GetOrder(mock.Anything, entities.Principal{ID: "user-1", Role: entities.RoleUser}, "o1").
					Return(entities.Order{ID: "o1", UserID: "user-1"}, nil).Once()
			},
			wantStatus: http.StatusOK,
			wantBody:   `"id":"o1"`,
		},
		{
			name: "not found",
			mockBehavior: func(svc *mocks.MockOrderService) {
				svc.EXPECT().
					GetOrder(mock.Anything, mock.Anything, "o1").
					Return(entities.Order{}, entities.ErrOrderNotFound).Once()
			},
			wantStatus: http.StatusNotFound,
			wantBody:   `"order not found"`,
		},
		{
			name: "access denied",
			mockBehavior: func(svc *mocks.MockOrderService) {
				svc.EXPECT().
					GetOrder(mock.Anything, mock.Anything, "o1").
					Return(entities.Order{}, entities.ErrAccessDenied).Once()
			},
			wantStatus: http.StatusForbidden,
		},
		{
			name: "internal error",
			mockBehavior: func(svc *mocks.MockOrderService) {
				svc.EXPECT().
					GetOrder(mock.Anything, mock.Anything, "o1").
					Return(entities.Order{}, errors.New("db error")).Once()
			},
			wantStatus: http.StatusInternalServerError,
			wantBody:   `"internal server error"`,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			orderSvc, _, r := setupRouter(t)
			tc.mockBehavior(orderSvc)

			req := asUser(httptest.NewRequest(http.MethodGet, "/api/orders/o1", nil), "user-1")
			rr := httptest.NewRecorder()
			r.ServeHTTP(rr, req)

			assert.Equal(t, tc.wantStatus, rr.Code)
			if tc.wantBody != "" {
				assert.Contains(t, rr.Body.String(), tc.wantBody)
			}
		})
	}
}

func TestHTTPHandler_CancelOrder(t *testing.T) {
	testCases := []struct {
		name         string
		mockBehavior func(svc *mocks.MockOrderService)
		wantStatus   int
	}{
		{
			name: "success",
			mockBehavior: func(svc *mocks.MockOrderService) {
				svc.EXPECT().
					CancelOrder(mock.Anything, mock.Anything, "o1").
					Return(entities.Order{ID: "o1", Status: entities.StatusCancelled}, nil).Once()
			},
			wantStatus: http.StatusOK,
		},
		{
			name: "already shipped",
			mockBehavior: func(svc *mocks.MockOrderService) {
				svc.EXPECT().
					CancelOrder(mock.Anything, mock.Anything, "o1").
					Return(entities.Order{}, entities.ErrInvalidTransition).Once()
			},
			wantStatus: http.StatusBadRequest,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			orderSvc, _, r := setupRouter(t)
			tc.mockBehavior(orderSvc)

			req := asUser(httptest.NewRequest(http.MethodPut, "/api/orders/o1/cancel", nil), "user-1")
			rr := httptest.NewRecorder()
			r.ServeHTTP(rr, req)

			assert.Equal(t, tc.wantStatus, rr.Code)
		})
	}
}

func TestHTTPHandler_ListAllOrders(t *testing.T) {
	t.Run("forbidden for regular users", func(t *testing.T) {
		_, _, r := setupRouter(t)

		req := asUser(httptest.NewRequest(http.MethodGet, "/api/orders/admin/all", nil), "user-1")
		rr := httptest.NewRecorder()
		r.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusForbidden, rr.Code)
	})

	t.Run("admin gets orders and stats", func(t *testing.T) {
		orderSvc, _, r := setupRouter(t)

		orderSvc.EXPECT().
			ListAllOrders(mock.Anything, mock.Anything).
			Return(
				[]entities.Order{{ID: "o1"}},
				service.Pagination{Current: 1, Pages: 1, Total: 1},
				[]entities.StatusStat{{Status: entities.StatusPending, Count: 1, TotalAmount: 59.98}},
				nil,
			).Once()

		req := httptest.NewRequest(http.MethodGet, "/api/orders/admin/all", nil)
		req.Header.Set("X-User-Id", "admin-1")
		req.Header.Set("X-User-Role", "admin")
		rr := httptest.NewRecorder()
		r.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
		assert.Contains(t, rr.Body.String(), `"stats"`)
	})
}

func TestHTTPHandler_PaystackWebhook(t *testing.T) {
	body := `{"event":"charge.success","data":{"reference":"ref-1","amount":5998,"customer":{"email":"jane@example.com"}}}`

	testCases := []struct {
		name         string
		signature    string
		mockBehavior func(svc *mocks.MockPaymentService)
		wantStatus   int
	}{
		{
			name:      "valid signature confirms",
			signature: sign(body),
			mockBehavior: func(svc *mocks.MockPaymentService) {
				svc.EXPECT().
					HandleWebhook(mock.Anything, service.WebhookEvent{
						Event:     "charge.success",
						Reference: "ref-1",
						Amount:    59.98,
						Email:     "jane@example.com",
					}).
					Return(nil).Once()
			},
			wantStatus: http.StatusOK,
		},
		{
			name:         "invalid signature rejected before any processing",
			signature:    "deadbeef",
			mockBehavior: func(svc *mocks.MockPaymentService) {},
			wantStatus:   http.StatusUnauthorized,
		},
		{
			name:         "missing signature rejected",
			signature:    "",
			mockBehavior: func(svc *mocks.MockPaymentService) {},
			wantStatus:   http.StatusUnauthorized,
		},
		{
			name:      "unknown reference still acknowledged",
			signature: sign(body),
			mockBehavior: func(svc *mocks.MockPaymentService) {
				svc.EXPECT().
					HandleWebhook(mock.Anything, mock.Anything).
					Return(entities.ErrOrderNotFound).Once()
			},
			wantStatus: http.StatusOK,
		},
		{
			name:      "cancelled order acknowledged without retry",
			signature: sign(body),
			mockBehavior: func(svc *mocks.MockPaymentService) {
				svc.EXPECT().
					HandleWebhook(mock.Anything, mock.Anything).
					Return(fmt.Errorf("order is cancelled, payment pending: %w", entities.ErrInvalidTransition)).Once()
			},
			wantStatus: http.StatusOK,
		},
		{
			name:      "processing failure returns 500 so the gateway retries",
			signature: sign(body),
			mockBehavior: func(svc *mocks.MockPaymentService) {
				svc.EXPECT().
					HandleWebhook(mock.Anything, mock.Anything).
					Return(errors.New("db error")).Once()
			},
			wantStatus: http.StatusInternalServerError,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, paymentSvc, r := setupRouter(t)
			tc.mockBehavior(paymentSvc)

			req := httptest.NewRequest(http.MethodPost, "/api/payments/paystack/webhook", strings.NewReader(body))
			if tc.signature != "" {
				req.Header.Set("X-Paystack-Signature", tc.signature)
			}
			rr := httptest.NewRecorder()
			r.ServeHTTP(rr, req)

			assert.Equal(t, tc.wantStatus, rr.Code)
		})
	}
}

func TestHTTPHandler_VerifyPayment(t *testing.T) {
	t.Run("missing reference", func(t *testing.T) {
		_, _, r := setupRouter(t)

		req := asUser(httptest.NewRequest(http.MethodGet, "/api/payments/verify", nil), "user-1")
		rr := httptest.NewRecorder()
		r.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})

	t.Run("success", func(t *testing.T) {
		_, paymentSvc, r := setupRouter(t)

		paymentSvc.EXPECT().
			VerifyPayment(mock.Anything, mock.Anything, "ref-1").
			Return(entities.Order{ID: "o1", PaymentStatus: entities.PaymentCompleted}, nil).Once()

		req := asUser(httptest.NewRequest(http.MethodGet, "/api/payments/verify?reference=ref-1", nil), "user-1")
		rr := httptest.NewRecorder()
		r.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)

		var resp map[string]any
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
		assert.Equal(t, true, resp["success"])
	})

	t.Run("gateway unavailable", func(t *testing.T) {
		_, paymentSvc, r := setupRouter(t)

		paymentSvc.EXPECT().
			VerifyPayment(mock.Anything, mock.Anything, "ref-1").
			Return(entities.Order{}, entities.ErrGatewayUnavailable).Once()

		req := asUser(httptest.NewRequest(http.MethodGet, "/api/payments/verify?reference=ref-1", nil), "user-1")
		rr := httptest.NewRecorder()
		r.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusBadGateway, rr.Code)
	})
}
