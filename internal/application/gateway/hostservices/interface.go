// Package hostservices declares the capabilities the gateway borrows from
// the host commerce platform. They are injected into use cases so nothing
// reaches into ambient globals.
package hostservices

import (
	"context"

	"wagate/internal/domain/order"
)

// StockService reduces stock levels for every line item on an order.
type StockService interface {
	ReduceLevels(ctx context.Context, o *order.Order) error
}

// CartService clears a customer's cart once the order is placed.
type CartService interface {
	Clear(ctx context.Context, cartID string) error
}

// EmailService delivers the on-hold instructions email to the customer.
type EmailService interface {
	SendOnHoldInstructions(ctx context.Context, to, subject, htmlBody, textBody string) error
}

// SiteInfo identifies the shop in generated messages.
type SiteInfo struct {
	Name string
	URL  string
}
