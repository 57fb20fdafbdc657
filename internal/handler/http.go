package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/Yaseeru/glowgroove/internal/entities"
	"github.com/Yaseeru/glowgroove/internal/middleware"
	"github.com/Yaseeru/glowgroove/internal/service"
	"github.com/Yaseeru/glowgroove/pkg/utils"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
)

type OrderService interface {
	CreateOrder(ctx context.Context, in service.CreateOrderInput) (entities.Order, error)
	GetOrder(ctx context.Context, principal entities.Principal, orderID string) (entities.Order, error)
	ListOrders(ctx context.Context, userID string, f service.ListFilter) ([]entities.Order, service.Pagination, error)
	ListAllOrders(ctx context.Context, f service.ListFilter) ([]entities.Order, service.Pagination, []entities.StatusStat, error)
	CancelOrder(ctx context.Context, principal entities.Principal, orderID string) (entities.Order, error)
	UpdateOrderStatus(ctx context.Context, orderID string, in service.UpdateStatusInput) (entities.Order, error)
}

type PaymentService interface {
	InitializePayment(ctx context.Context, principal entities.Principal, orderID string) (service.PaymentInit, error)
	HandleWebhook(ctx context.Context, event service.WebhookEvent) error
	VerifyPayment(ctx context.Context, principal entities.Principal, reference string) (entities.Order, error)
	MarkPaymentSuccess(ctx context.Context, principal entities.Principal, orderID string) (entities.Order, error)
}

type HTTPHandler struct {
	logger   *slog.Logger
	validate *validator.Validate

	orders   OrderService
	payments PaymentService

	webhookSecret []byte
}

func NewHTTPHandler(logger *slog.Logger, orders OrderService, payments PaymentService, webhookSecret string) *HTTPHandler {
	return &HTTPHandler{
		logger:        logger.With(slog.String("handler", "http")),
		validate:      validator.New(),
		orders:        orders,
		payments:      payments,
		webhookSecret: []byte(webhookSecret),
	}
}

func (h *HTTPHandler) Init(r chi.Router) {
	r.Route("/api/orders", func(r chi.Router) {
		r.Post("/", h.CreateOrder)
		r.Get("/", h.ListOrders)
		r.Get("/admin/all", h.ListAllOrders)
		r.Get("/{order_id}", h.GetOrder)
		r.Put("/{order_id}/status", h.UpdateOrderStatus)
		r.Put("/{order_id}/cancel", h.CancelOrder)
		r.Patch("/{order_id}/payment-success", h.MarkPaymentSuccess)
	})
	r.Route("/api/payments", func(r chi.Router) {
		r.Post("/paystack/initiate", h.InitiatePayment)
		r.Post("/paystack/webhook", h.PaystackWebhook)
		r.Get("/verify", h.VerifyPayment)
	})
}

// CreateOrder creates a new order.
// @Summary      Create order
// @Description  Validates the cart, freezes the pricing snapshot and persists a pending order. Stock is not deducted.
// @Tags         orders
// @Accept       json
// @Param        order  body  CreateOrderRequest  true  "Order payload"
// @Success      201  {object}  utils.DataResponse
// @Failure      400  {object}  utils.ValidationErrorResponse
// @Failure      401  {object}  utils.ErrorResponse
// @Router       /api/orders [post]
func (h *HTTPHandler) CreateOrder(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	principal, ok := middleware.PrincipalFromContext(ctx)
	if !ok {
		utils.WriteError(w, "authentication required", http.StatusUnauthorized)
		return
	}

	var req CreateOrderRequest
	if err := utils.DecodeBody(r, &req); err != nil {
		utils.WriteError(w, "invalid request body", http.StatusBadRequest)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		utils.WriteValidationError(w, err)
		return
	}

	order, err := h.orders.CreateOrder(ctx, req.ToInput(principal.ID))
	if err != nil {
		h.writeDomainError(ctx, w, err, "failed to create order")
		return
	}

	ordersCreated.Inc()
	utils.WriteMessage(w, "Order created successfully", map[string]any{"order": OrderEntityToJSON(order)}, http.StatusCreated)
}

// ListOrders returns the authenticated user's orders.
// @Summary      List own orders
// @Tags         orders
// @Param        page    query  int     false  "Page number"
// @Param        limit   query  int     false  "Page size"
// @Param        status  query  string  false  "Status filter"
// @Success      200  {object}  utils.DataResponse
// @Router       /api/orders [get]
func (h *HTTPHandler) ListOrders(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	principal, ok := middleware.PrincipalFromContext(ctx)
	if !ok {
		utils.WriteError(w, "authentication required", http.StatusUnauthorized)
		return
	}

	orders, pagination, err := h.orders.ListOrders(ctx, principal.ID, listFilterFromQuery(r))
	if err != nil {
		h.writeDomainError(ctx, w, err, "failed to list orders")
		return
	}

	utils.WriteData(w, map[string]any{
		"orders":     ordersToJSON(orders),
		"pagination": paginationToJSON(pagination),
	}, http.StatusOK)
}

// ListAllOrders returns every order with per-status stats. Admin only.
// @Summary      List all orders
// @Tags         orders
// @Param        page    query  int     false  "Page number"
// @Param        limit   query  int     false  "Page size"
// @Param        status  query  string  false  "Status filter"
// @Param        search  query  string  false  "Search order number, customer name or email"
// @Success      200  {object}  utils.DataResponse
// @Failure      403  {object}  utils.ErrorResponse
// @Router       /api/orders/admin/all [get]
func (h *HTTPHandler) ListAllOrders(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	principal, ok := middleware.PrincipalFromContext(ctx)
	if !ok {
		utils.WriteError(w, "authentication required", http.StatusUnauthorized)
		return
	}
	if !principal.Admin() {
		utils.WriteError(w, "access denied", http.StatusForbidden)
		return
	}

	orders, pagination, stats, err := h.orders.ListAllOrders(ctx, listFilterFromQuery(r))
	if err != nil {
		h.writeDomainError(ctx, w, err, "failed to list all orders")
		return
	}

	utils.WriteData(w, map[string]any{
		"orders":     ordersToJSON(orders),
		"pagination": paginationToJSON(pagination),
		"stats":      statsToJSON(stats),
	}, http.StatusOK)
}

// GetOrder returns a single order for its owner or an admin.
// @Summary      Get order
// @Tags         orders
// @Param        order_id  path  string  true  "Order ID"
// @Success      200  {object}  utils.DataResponse
// @Failure      403  {object}  utils.ErrorResponse
// @Failure      404  {object}  utils.ErrorResponse
// @Router       /api/orders/{order_id} [get]
func (h *HTTPHandler) GetOrder(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	principal, ok := middleware.PrincipalFromContext(ctx)
	if !ok {
		utils.WriteError(w, "authentication required", http.StatusUnauthorized)
		return
	}
	orderID := chi.URLParam(r, "order_id")

	order, err := h.orders.GetOrder(ctx, principal, orderID)
	if err != nil {
		h.writeDomainError(ctx, w, err, "failed to get order")
		return
	}

	utils.WriteData(w, map[string]any{"order": OrderEntityToJSON(order)}, http.StatusOK)
}

// UpdateOrderStatus records logistics metadata. Admin only.
// @Summary      Update order status
// @Tags         orders
// @Param        order_id  path  string               true  "Order ID"
// @Param        update    body  UpdateStatusRequest  true  "Status update"
// @Success      200  {object}  utils.DataResponse
// @Failure      400  {object}  utils.ErrorResponse
// @Failure      403  {object}  utils.ErrorResponse
// @Router       /api/orders/{order_id}/status [put]
func (h *HTTPHandler) UpdateOrderStatus(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	principal, ok := middleware.PrincipalFromContext(ctx)
	if !ok {
		utils.WriteError(w, "authentication required", http.StatusUnauthorized)
		return
	}
	if !principal.Admin() {
		utils.WriteError(w, "access denied", http.StatusForbidden)
		return
	}

	var req UpdateStatusRequest
	if err := utils.DecodeBody(r, &req); err != nil {
		utils.WriteError(w, "invalid request body", http.StatusBadRequest)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		utils.WriteValidationError(w, err)
		return
	}

	order, err := h.orders.UpdateOrderStatus(ctx, chi.URLParam(r, "order_id"), service.UpdateStatusInput{
		Status:         entities.Status(req.Status),
		PaymentStatus:  entities.PaymentStatus(req.PaymentStatus),
		TrackingNumber: req.TrackingNumber,
		Notes:          req.Notes,
	})
	if err != nil {
		h.writeDomainError(ctx, w, err, "failed to update order status")
		return
	}

	utils.WriteMessage(w, "Order status updated successfully", map[string]any{"order": OrderEntityToJSON(order)}, http.StatusOK)
}

// CancelOrder cancels an order and restores stock if it had been deducted.
// @Summary      Cancel order
// @Tags         orders
// @Param        order_id  path  string  true  "Order ID"
// @Success      200  {object}  utils.DataResponse
// @Failure      400  {object}  utils.ErrorResponse
// @Failure      403  {object}  utils.ErrorResponse
// @Failure      404  {object}  utils.ErrorResponse
// @Router       /api/orders/{order_id}/cancel [put]
func (h *HTTPHandler) CancelOrder(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	principal, ok := middleware.PrincipalFromContext(ctx)
	if !ok {
		utils.WriteError(w, "authentication required", http.StatusUnauthorized)
		return
	}

	order, err := h.orders.CancelOrder(ctx, principal, chi.URLParam(r, "order_id"))
	if err != nil {
		h.writeDomainError(ctx, w, err, "failed to cancel order")
		return
	}

	ordersCancelled.Inc()
	utils.WriteMessage(w, "Order cancelled successfully", map[string]any{"order": OrderEntityToJSON(order)}, http.StatusOK)
}

func (h *HTTPHandler) writeDomainError(ctx context.Context, w http.ResponseWriter, err error, logMsg string) {
	switch {
	case errors.Is(err, entities.ErrEmptyOrder),
		errors.Is(err, entities.ErrProductInactive),
		errors.Is(err, entities.ErrInvalidTransition),
		errors.Is(err, entities.ErrPaymentNotCompleted):
		utils.WriteError(w, err.Error(), http.StatusBadRequest)
	case errors.Is(err, entities.ErrInsufficientStock):
		insufficientStock.Inc()
		utils.WriteError(w, err.Error(), http.StatusBadRequest)
	case errors.Is(err, entities.ErrAccessDenied):
		utils.WriteError(w, "access denied", http.StatusForbidden)
	case errors.Is(err, entities.ErrOrderNotFound):
		utils.WriteError(w, "order not found", http.StatusNotFound)
	case errors.Is(err, entities.ErrProductNotFound):
		utils.WriteError(w, err.Error(), http.StatusNotFound)
	case errors.Is(err, entities.ErrGatewayUnavailable):
		utils.WriteError(w, "payment gateway unavailable", http.StatusBadGateway)
	default:
		h.logger.ErrorContext(ctx, logMsg, slog.Any("error", err))
		utils.WriteError(w, "internal server error", http.StatusInternalServerError)
	}
}

func listFilterFromQuery(r *http.Request) service.ListFilter {
	q := r.URL.Query()
	page, _ := strconv.Atoi(q.Get("page"))
	limit, _ := strconv.Atoi(q.Get("limit"))
	return service.ListFilter{
		Status: entities.Status(q.Get("status")),
		Search: q.Get("search"),
		Page:   page,
		Limit:  limit,
	}
}
