package gateway

import (
	"fmt"
	"regexp"
	"time"

	"wagate/internal/shared/biztime"
)

// GatewayID is the payment method identifier the host platform uses to
// route checkouts to this gateway.
const GatewayID = "whatsapp_payment"

// DefaultTemplate is the canonical message template. Placeholders are
// substituted verbatim before the message is percent-encoded.
const DefaultTemplate = "Halo, saya ingin memesan dari {website_name}:\n\n" +
	"{order_items}\n" +
	"Total: Rp {total}\n" +
	"Order ID: {order_id}\n" +
	"Nama: {customer_name}\n" +
	"Email: {customer_email}\n" +
	"Telepon: {customer_phone}\n" +
	"Alamat: {customer_address}\n\n" +
	"{website_url}"

const (
	DefaultTitle        = "WhatsApp Payment"
	DefaultDescription  = "Pay via WhatsApp. You will be redirected to WhatsApp to complete your payment."
	DefaultInstructions = "Please contact us via WhatsApp to complete your payment."
)

// Placeholders lists every token the template renderer recognizes.
var Placeholders = []string{
	"{website_name}",
	"{website_url}",
	"{order_id}",
	"{customer_name}",
	"{customer_phone}",
	"{customer_email}",
	"{customer_address}",
	"{total}",
	"{order_items}",
}

// placeholderPattern also matches case and digit variants so typos like
// {Total} or {order_id2} are rejected instead of surviving as literal text.
var placeholderPattern = regexp.MustCompile(`\{[A-Za-z0-9_]+\}`)

// Settings is the merchant-editable gateway configuration, persisted as a
// single row by the settings repository.
type Settings struct {
	enabled        bool
	title          string
	description    string
	whatsappNumber string
	instructions   string
	template       string
	enrichItems    bool
	version        int
	createdAt      time.Time
	updatedAt      time.Time
}

// DefaultSettings returns the settings seeded on first run. The WhatsApp
// number is intentionally empty; link rendering stays suppressed until
// the merchant fills it in.
func DefaultSettings() *Settings {
	now := biztime.NowUTC()
	return &Settings{
		enabled:      true,
		title:        DefaultTitle,
		description:  DefaultDescription,
		instructions: DefaultInstructions,
		template:     DefaultTemplate,
		version:      1,
		createdAt:    now,
		updatedAt:    now,
	}
}

// UpdateParams carries a full settings form submission.
type UpdateParams struct {
	Enabled        bool
	Title          string
	Description    string
	WhatsAppNumber string
	Instructions   string
	Template       string
	EnrichItems    bool
}

// Update applies a settings form submission. Beyond template token
// validation no field is validated; the spec leaves number format checks
// to the merchant.
func (s *Settings) Update(p UpdateParams) error {
	template := p.Template
	if template == "" {
		template = DefaultTemplate
	}
	if err := ValidateTemplate(template); err != nil {
		return err
	}

	s.enabled = p.Enabled
	s.title = p.Title
	s.description = p.Description
	s.whatsappNumber = p.WhatsAppNumber
	s.instructions = p.Instructions
	s.template = template
	s.enrichItems = p.EnrichItems
	s.updatedAt = biztime.NowUTC()
	s.version++

	return nil
}

// ValidateTemplate rejects templates containing unrecognized {token}
// forms, which would otherwise survive substitution as literal text.
func ValidateTemplate(template string) error {
	for _, token := range placeholderPattern.FindAllString(template, -1) {
		known := false
		for _, p := range Placeholders {
			if token == p {
				known = true
				break
			}
		}
		if !known {
			return fmt.Errorf("%w: %s", ErrUnknownPlaceholder, token)
		}
	}
	return nil
}

// HasWhatsAppNumber reports whether the merchant has configured a number.
func (s *Settings) HasWhatsAppNumber() bool {
	return s.whatsappNumber != ""
}

func (s *Settings) Enabled() bool {
	return s.enabled
}

func (s *Settings) Title() string {
	return s.title
}

func (s *Settings) Description() string {
	return s.description
}

func (s *Settings) WhatsAppNumber() string {
	return s.whatsappNumber
}

func (s *Settings) Instructions() string {
	return s.instructions
}

func (s *Settings) Template() string {
	return s.template
}

func (s *Settings) EnrichItems() bool {
	return s.enrichItems
}

func (s *Settings) Version() int {
	return s.version
}

func (s *Settings) CreatedAt() time.Time {
	return s.createdAt
}

func (s *Settings) UpdatedAt() time.Time {
	return s.updatedAt
}

// ReconstructParams carries persisted settings fields.
type ReconstructParams struct {
	Enabled        bool
	Title          string
	Description    string
	WhatsAppNumber string
	Instructions   string
	Template       string
	EnrichItems    bool
	Version        int
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// Reconstruct rebuilds Settings from persistence without validation.
func Reconstruct(p ReconstructParams) *Settings {
	return &Settings{
		enabled:        p.Enabled,
		title:          p.Title,
		description:    p.Description,
		whatsappNumber: p.WhatsAppNumber,
		instructions:   p.Instructions,
		template:       p.Template,
		enrichItems:    p.EnrichItems,
		version:        p.Version,
		createdAt:      p.CreatedAt,
		updatedAt:      p.UpdatedAt,
	}
}
