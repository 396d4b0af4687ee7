package order

import (
	"fmt"
	"time"

	vo "wagate/internal/domain/order/valueobjects"
	"wagate/internal/shared/biztime"
)

// Order is the checkout snapshot this gateway operates on. The host
// platform owns creation and the full lifecycle; this service only moves
// an order to on-hold and caches the generated WhatsApp message.
type Order struct {
	id            uint
	orderNumber   string
	status        vo.Status
	items         []Item
	total         vo.Money
	billing       vo.BillingContact
	paymentMethod string

	// whatsappMessage is nil until the first successful generation; once
	// set it is authoritative for redisplay.
	whatsappMessage *string

	notes     []string
	version   int
	createdAt time.Time
	updatedAt time.Time
}

func NewOrder(orderNumber string, items []Item, total vo.Money, billing vo.BillingContact, paymentMethod string) (*Order, error) {
	if orderNumber == "" {
		return nil, ErrOrderNumberRequired
	}
	if paymentMethod == "" {
		return nil, ErrPaymentMethodRequired
	}
	for _, item := range items {
		if item.Quantity <= 0 {
			return nil, fmt.Errorf("%w: %q", ErrInvalidQuantity, item.Name)
		}
	}

	now := biztime.NowUTC()
	return &Order{
		orderNumber:   orderNumber,
		status:        vo.StatusPending,
		items:         items,
		total:         total,
		billing:       billing,
		paymentMethod: paymentMethod,
		createdAt:     now,
		updatedAt:     now,
	}, nil
}

// PlaceOnHold transitions the order to on-hold with a status note.
// Placing an already on-hold order is a no-op so re-invoking payment
// processing does not stack transitions.
func (o *Order) PlaceOnHold(note string) error {
	if o.status == vo.StatusOnHold {
		return nil
	}
	if o.status.IsFinal() || o.status == vo.StatusProcessing {
		return fmt.Errorf("%w: from %s", ErrInvalidStatusTransition, o.status)
	}

	o.status = vo.StatusOnHold
	if note != "" {
		o.notes = append(o.notes, note)
	}
	o.updatedAt = biztime.NowUTC()
	o.version++

	return nil
}

// WhatsAppMessage returns the cached message and whether one is present.
func (o *Order) WhatsAppMessage() (string, bool) {
	if o.whatsappMessage == nil {
		return "", false
	}
	return *o.whatsappMessage, true
}

// SetWhatsAppMessage caches the generated message on the order.
func (o *Order) SetWhatsAppMessage(message string) error {
	if message == "" {
		return ErrEmptyMessage
	}
	o.whatsappMessage = &message
	o.updatedAt = biztime.NowUTC()
	o.version++
	return nil
}

// IsPaidVia reports whether the order selected the given payment method.
func (o *Order) IsPaidVia(gatewayID string) bool {
	return o.paymentMethod == gatewayID
}

func (o *Order) ID() uint {
	return o.id
}

func (o *Order) OrderNumber() string {
	return o.orderNumber
}

func (o *Order) Status() vo.Status {
	return o.status
}

func (o *Order) Items() []Item {
	return o.items
}

func (o *Order) Total() vo.Money {
	return o.total
}

func (o *Order) Billing() vo.BillingContact {
	return o.billing
}

func (o *Order) PaymentMethod() string {
	return o.paymentMethod
}

func (o *Order) Notes() []string {
	return o.notes
}

func (o *Order) Version() int {
	return o.version
}

func (o *Order) CreatedAt() time.Time {
	return o.createdAt
}

func (o *Order) UpdatedAt() time.Time {
	return o.updatedAt
}

// SetID sets the order ID after persistence (used by repository after Create).
func (o *Order) SetID(id uint) {
	o.id = id
}

// ReconstructParams carries the persisted fields back into an Order.
type ReconstructParams struct {
	ID              uint
	OrderNumber     string
	Status          vo.Status
	Items           []Item
	Total           vo.Money
	Billing         vo.BillingContact
	PaymentMethod   string
	WhatsAppMessage *string
	Notes           []string
	Version         int
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// Reconstruct rebuilds an Order from persistence without invariant checks.
func Reconstruct(p ReconstructParams) *Order {
	return &Order{
		id:              p.ID,
		orderNumber:     p.OrderNumber,
		status:          p.Status,
		items:           p.Items,
		total:           p.Total,
		billing:         p.Billing,
		paymentMethod:   p.PaymentMethod,
		whatsappMessage: p.WhatsAppMessage,
		notes:           p.Notes,
		version:         p.Version,
		createdAt:       p.CreatedAt,
		updatedAt:       p.UpdatedAt,
	}
}
