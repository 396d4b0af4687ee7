package order

import "context"

type Repository interface {
	Create(ctx context.Context, o *Order) error
	Update(ctx context.Context, o *Order) error
	GetByID(ctx context.Context, id uint) (*Order, error)
	GetByOrderNumber(ctx context.Context, orderNumber string) (*Order, error)
	// UpdateWhatsAppMessage persists only the cached message, used by the
	// order-detail surface when it regenerates a missing message.
	UpdateWhatsAppMessage(ctx context.Context, o *Order) error
}
