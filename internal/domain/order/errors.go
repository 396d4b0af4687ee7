package order

import "errors"

var (
	ErrOrderNotFound           = errors.New("order not found")
	ErrOrderNumberRequired     = errors.New("order number is required")
	ErrPaymentMethodRequired   = errors.New("payment method is required")
	ErrInvalidQuantity         = errors.New("item quantity must be positive")
	ErrInvalidStatusTransition = errors.New("invalid status transition")
	ErrEmptyMessage            = errors.New("whatsapp message must not be empty")
)
