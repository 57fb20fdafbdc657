package handler

import (
	"crypto/hmac"
	"crypto/sha512"
	"encoding/hex"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"

	"github.com/Yaseeru/glowgroove/internal/entities"
	"github.com/Yaseeru/glowgroove/internal/middleware"
	"github.com/Yaseeru/glowgroove/internal/service"
	"github.com/Yaseeru/glowgroove/pkg/utils"

	"github.com/go-chi/chi/v5"
)

const headerPaystackSignature = "X-Paystack-Signature"

// InitiatePayment starts a Paystack checkout for a pending order.
// @Summary      Initiate payment
// @Tags         payments
// @Accept       json
// @Param        payment  body  InitiatePaymentRequest  true  "Order to pay for"
// @Success      200  {object}  utils.DataResponse
// @Failure      400  {object}  utils.ErrorResponse
// @Failure      403  {object}  utils.ErrorResponse
// @Failure      404  {object}  utils.ErrorResponse
// @Failure      502  {object}  utils.ErrorResponse
// @Router       /api/payments/paystack/initiate [post]
func (h *HTTPHandler) InitiatePayment(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	principal, ok := middleware.PrincipalFromContext(ctx)
	if !ok {
		utils.WriteError(w, "authentication required", http.StatusUnauthorized)
		return
	}

	var req InitiatePaymentRequest
	if err := utils.DecodeBody(r, &req); err != nil {
		utils.WriteError(w, "invalid request body", http.StatusBadRequest)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		utils.WriteValidationError(w, err)
		return
	}

	init, err := h.payments.InitializePayment(ctx, principal, req.OrderID)
	if err != nil {
		h.writeDomainError(ctx, w, err, "failed to initialize payment")
		return
	}

	utils.WriteData(w, PaymentInit{
		AuthorizationURL: init.AuthorizationURL,
		AccessCode:       init.AccessCode,
		Reference:        init.Reference,
	}, http.StatusOK)
}

// PaystackWebhook handles payment events pushed by Paystack. The raw
// body signature is verified before anything else happens; an unknown
// reference is acknowledged with 200 so the gateway stops retrying.
// @Summary      Paystack webhook
// @Tags         payments
// @Accept       json
// @Success      200  {object}  utils.DataResponse
// @Failure      401  {object}  utils.ErrorResponse
// @Router       /api/payments/paystack/webhook [post]
func (h *HTTPHandler) PaystackWebhook(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	body, err := io.ReadAll(r.Body)
	if err != nil {
		utils.WriteError(w, "failed to read body", http.StatusBadRequest)
		return
	}

	if !h.validSignature(body, r.Header.Get(headerPaystackSignature)) {
		webhooksRejected.Inc()
		h.logger.WarnContext(ctx, "webhook rejected: invalid signature")
		utils.WriteError(w, "invalid signature", http.StatusUnauthorized)
		return
	}

	var req WebhookRequest
	if err := json.Unmarshal(body, &req); err != nil {
		utils.WriteError(w, "invalid request body", http.StatusBadRequest)
		return
	}

	err = h.payments.HandleWebhook(ctx, service.WebhookEvent{
		Event:     req.Event,
		Reference: req.Data.Reference,
		Amount:    float64(req.Data.Amount) / 100,
		Email:     req.Data.Customer.Email,
	})
	switch {
	case errors.Is(err, entities.ErrOrderNotFound):
		h.logger.WarnContext(ctx, "webhook for unknown order", slog.String("reference", req.Data.Reference))
	case errors.Is(err, entities.ErrInvalidTransition):
		// The order can no longer be confirmed (e.g. cancelled before the
		// charge landed). Retrying won't change that, so acknowledge.
		h.logger.WarnContext(ctx, "webhook for unconfirmable order",
			slog.String("reference", req.Data.Reference), slog.Any("error", err))
	case err != nil:
		h.logger.ErrorContext(ctx, "failed to handle webhook", slog.Any("error", err))
		utils.WriteError(w, "internal server error", http.StatusInternalServerError)
		return
	default:
		paymentsConfirmed.WithLabelValues("webhook").Inc()
	}

	utils.WriteData(w, map[string]any{"received": true}, http.StatusOK)
}

// VerifyPayment re-checks a transaction with Paystack and confirms the
// order when the gateway reports success.
// @Summary      Verify payment
// @Tags         payments
// @Param        reference  query  string  true  "Paystack transaction reference"
// @Success      200  {object}  utils.DataResponse
// @Failure      400  {object}  utils.ErrorResponse
// @Failure      403  {object}  utils.ErrorResponse
// @Failure      404  {object}  utils.ErrorResponse
// @Failure      502  {object}  utils.ErrorResponse
// @Router       /api/payments/verify [get]
func (h *HTTPHandler) VerifyPayment(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	principal, ok := middleware.PrincipalFromContext(ctx)
	if !ok {
		utils.WriteError(w, "authentication required", http.StatusUnauthorized)
		return
	}

	reference := r.URL.Query().Get("reference")
	if reference == "" {
		utils.WriteError(w, "reference is required", http.StatusBadRequest)
		return
	}

	order, err := h.payments.VerifyPayment(ctx, principal, reference)
	if err != nil {
		h.writeDomainError(ctx, w, err, "failed to verify payment")
		return
	}

	paymentsConfirmed.WithLabelValues("verify").Inc()
	utils.WriteMessage(w, "Payment verified successfully", map[string]any{"order": OrderEntityToJSON(order)}, http.StatusOK)
}

// MarkPaymentSuccess confirms payment for an order directly. Used by
// gateways without webhooks, such as a manual bank transfer flow.
// @Summary      Mark payment successful
// @Tags         payments
// @Param        order_id  path  string  true  "Order ID"
// @Success      200  {object}  utils.DataResponse
// @Failure      403  {object}  utils.ErrorResponse
// @Failure      404  {object}  utils.ErrorResponse
// @Router       /api/orders/{order_id}/payment-success [patch]
func (h *HTTPHandler) MarkPaymentSuccess(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	principal, ok := middleware.PrincipalFromContext(ctx)
	if !ok {
		utils.WriteError(w, "authentication required", http.StatusUnauthorized)
		return
	}

	order, err := h.payments.MarkPaymentSuccess(ctx, principal, chi.URLParam(r, "order_id"))
	if err != nil {
		h.writeDomainError(ctx, w, err, "failed to mark payment successful")
		return
	}

	paymentsConfirmed.WithLabelValues("manual").Inc()
	utils.WriteMessage(w, "Payment recorded successfully", map[string]any{"order": OrderEntityToJSON(order)}, http.StatusOK)
}

func (h *HTTPHandler) validSignature(body []byte, signature string) bool {
	if signature == "" {
		return false
	}
	mac := hmac.New(sha512.New, h.webhookSecret)
	mac.Write(body)
	expected := hex.EncodeToString(mac.Sum(nil))
	return hmac.Equal([]byte(expected), []byte(signature))
}
