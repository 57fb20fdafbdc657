package entities

import "errors"

var (
	ErrOrderNotFound   = errors.New("order not found")
	ErrProductNotFound = errors.New("product not found")
	ErrProductInactive = errors.New("product is not available")
	ErrEmptyOrder      = errors.New("order must contain at least one item")

	ErrInsufficientStock = errors.New("insufficient stock")
	ErrInvalidTransition = errors.New("invalid status transition")

	ErrAccessDenied        = errors.New("access denied")
	ErrInvalidSignature    = errors.New("invalid webhook signature")
	ErrPaymentNotCompleted = errors.New("payment not completed")
	ErrGatewayUnavailable  = errors.New("payment gateway unavailable")
)
